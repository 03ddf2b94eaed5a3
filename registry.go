package displayio

import (
	"fmt"
	"image"
	"sync"
)

// DisplayLimit is the default registry capacity.
const DisplayLimit = 4

// RegistryConfig describes the registry configuration.
type RegistryConfig struct {
	// Limit is the maximum number of live displays. Defaults to
	// DisplayLimit.
	Limit int

	// Pins tracks exclusive pin claims. Defaults to a registry-local claim
	// set keyed by pin name.
	Pins Pins
}

// Registry is a fixed-capacity pool of display slots. Displays live in the
// registry's arena for its entire lifetime; New hands out pointers into it
// and ReleaseAll invalidates them. The registry also drives the background
// refresh of every live display through Tick.
type Registry struct {
	mu    sync.Mutex
	pins  Pins
	slots []displaySlot
}

type displaySlot struct {
	used    bool
	display Display
}

// NewRegistry builds a registry with a fixed number of pre-sized slots.
func NewRegistry(config *RegistryConfig) *Registry {
	if config == nil {
		config = new(RegistryConfig)
	}
	limit := config.Limit
	if limit <= 0 {
		limit = DisplayLimit
	}
	pins := config.Pins
	if pins == nil {
		pins = newPinSet()
	}
	return &Registry{
		pins:  pins,
		slots: make([]displaySlot, limit),
	}
}

// Limit is the registry capacity.
func (r *Registry) Limit() int {
	return len(r.slots)
}

// New allocates a display slot, executes the init sequence against the bus
// and returns the live handle. The bus becomes exclusively owned by the
// display. Construction is all or nothing: on any failure the slot stays
// empty and a claimed backlight pin is released again.
func (r *Registry) New(bus Bus, initSequence []byte, config *Config) (*Display, error) {
	if bus == nil {
		return nil, fmt.Errorf("displayio: no bus given")
	}
	if config == nil || config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("displayio: display width and height must be set")
	}
	rotation, err := rotationFromDegrees(config.Rotation)
	if err != nil {
		return nil, err
	}
	cfg := config.withDefaults()

	r.mu.Lock()
	defer r.mu.Unlock()

	slot := -1
	for i := range r.slots {
		if !r.slots[i].used {
			slot = i
			break
		}
	}
	if slot < 0 {
		return nil, ErrTooManyDisplays
	}

	if cfg.Backlight != nil {
		if err := r.pins.Claim(cfg.Backlight); err != nil {
			return nil, err
		}
	}

	if err := runSequence(bus, initSequence); err != nil {
		if cfg.Backlight != nil {
			r.pins.Release(cfg.Backlight)
		}
		return nil, err
	}

	d := &r.slots[slot].display
	d.mu.Lock()
	if d.cond == nil {
		d.cond = sync.NewCond(&d.mu)
	}
	d.bus = bus
	d.width = cfg.Width
	d.height = cfg.Height
	d.colStart = cfg.ColStart
	d.rowStart = cfg.RowStart
	d.rotation = rotation
	d.colorDepth = cfg.ColorDepth
	d.setColumnCommand = cfg.SetColumnCommand
	d.setRowCommand = cfg.SetRowCommand
	d.writeRAMCommand = cfg.WriteRAMCommand
	d.verticalScrollCmd = cfg.SetVerticalScroll
	d.backlight = cfg.Backlight
	d.brightness = 1
	d.autoBrightness = false
	d.root = nil
	d.state = refreshIdle
	d.dirty = image.Rectangle{}
	d.frame = 0
	d.waitFrame = 0
	d.refreshErr = nil

	if d.backlight != nil {
		if err := d.applyBrightness(1); err != nil {
			d.cond = nil
			d.mu.Unlock()
			r.pins.Release(cfg.Backlight)
			return nil, err
		}
	}
	d.mu.Unlock()

	r.slots[slot].used = true
	return d, nil
}

// Tick runs one background scheduler step for every live display. The
// surrounding application calls this once per event-loop iteration.
func (r *Registry) Tick() {
	r.mu.Lock()
	live := make([]*Display, 0, len(r.slots))
	for i := range r.slots {
		if r.slots[i].used {
			live = append(live, &r.slots[i].display)
		}
	}
	r.mu.Unlock()

	for _, d := range live {
		d.tick()
	}
}

// ReleaseAll resets every slot to its initial empty state, releasing bus and
// backlight pin ownership. Handles obtained before this call become invalid:
// their blocking waiters wake with ErrReleased and further operations fail
// the same way.
func (r *Registry) ReleaseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.slots {
		if !r.slots[i].used {
			continue
		}
		d := &r.slots[i].display

		d.mu.Lock()
		if d.backlight != nil {
			r.pins.Release(d.backlight)
		}
		cond := d.cond
		d.cond = nil
		d.bus = nil
		d.root = nil
		d.backlight = nil
		d.width = 0
		d.height = 0
		d.colStart = 0
		d.rowStart = 0
		d.rotation = NoRotation
		d.colorDepth = 0
		d.setColumnCommand = 0
		d.setRowCommand = 0
		d.writeRAMCommand = 0
		d.verticalScrollCmd = 0
		d.brightness = 0
		d.autoBrightness = false
		d.state = refreshIdle
		d.dirty = image.Rectangle{}
		d.frame = 0
		d.waitFrame = 0
		d.refreshErr = nil
		if cond != nil {
			cond.Broadcast()
		}
		d.mu.Unlock()

		r.slots[i].used = false
	}
}
