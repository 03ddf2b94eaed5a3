package displayio

import (
	"fmt"
	"image"
	"sync"

	"periph.io/x/conn/v3/gpio"
)

// Default addressing commands, shared by most MIPI DCS style controllers.
const (
	DefaultSetColumnCommand = 0x2A // CASET
	DefaultSetRowCommand    = 0x2B // RASET
	DefaultWriteRAMCommand  = 0x2C // RAMWR
)

// Config is the display configuration.
type Config struct {
	// Width of the display in pixels. Required.
	Width int

	// Height of the display in pixels. Required.
	Height int

	// ColStart is the physical address of the first visible column.
	ColStart int

	// RowStart is the physical address of the first visible row.
	RowStart int

	// Rotation of the display in degrees clockwise, in 90 degree increments.
	Rotation int

	// ColorDepth is the number of bits transmitted per pixel. Defaults to 16.
	ColorDepth int

	// SetColumnCommand selects the column range of the update window.
	// Defaults to 0x2A.
	SetColumnCommand byte

	// SetRowCommand selects the row range of the update window. Defaults to
	// 0x2B.
	SetRowCommand byte

	// WriteRAMCommand starts a pixel write into the update window. Defaults
	// to 0x2C.
	WriteRAMCommand byte

	// SetVerticalScroll sets the first shown row, 0 when the panel has no
	// such command.
	SetVerticalScroll byte

	// Backlight pin, optional. Claimed exclusively for the display's
	// lifetime.
	Backlight gpio.PinOut
}

func (c *Config) withDefaults() Config {
	config := *c
	if config.ColorDepth == 0 {
		config.ColorDepth = 16
	}
	if config.SetColumnCommand == 0 {
		config.SetColumnCommand = DefaultSetColumnCommand
	}
	if config.SetRowCommand == 0 {
		config.SetRowCommand = DefaultSetRowCommand
	}
	if config.WriteRAMCommand == 0 {
		config.WriteRAMCommand = DefaultWriteRAMCommand
	}
	return config
}

// Display is one live panel, allocated from a Registry. The zero value is
// not usable; obtain displays from Registry.New.
//
// All methods are safe for concurrent use, but the cooperative contract of
// the original design still holds: Registry.New, Registry.ReleaseAll and
// Registry.Tick must not be assumed to interleave mid-operation.
type Display struct {
	mu   sync.Mutex
	cond *sync.Cond

	bus Bus

	width      int
	height     int
	colStart   int
	rowStart   int
	rotation   Rotation
	colorDepth int

	setColumnCommand  byte
	setRowCommand     byte
	writeRAMCommand   byte
	verticalScrollCmd byte

	backlight      gpio.PinOut
	brightness     float64
	autoBrightness bool

	root Group

	state      refreshState
	dirty      image.Rectangle
	frame      uint64
	waitFrame  uint64
	refreshErr error
}

func (d *Display) String() string {
	return fmt.Sprintf("Display %dx%d at %s", d.width, d.height, d.rotation)
}

// Bounds is the logical display bounding box, after rotation.
func (d *Display) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// Rotation is the panel orientation.
func (d *Display) Rotation() Rotation {
	return d.rotation
}

// ColorDepth is the number of bits transmitted per pixel.
func (d *Display) ColorDepth() int {
	return d.colorDepth
}

// Show switches the display to the given content root and schedules a full
// refresh. A nil root blanks the scheduler: refreshes complete without bus
// traffic until a root is shown again. The display never takes ownership of
// the root. Show on a released handle is a no-op.
func (d *Display) Show(root Group) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cond == nil {
		return
	}
	d.root = root
	d.dirty = d.Bounds()
	if d.state == refreshIdle {
		d.state = refreshPending
	}
}

// SetVerticalScroll sends the vertical scroll command with the given first
// shown row. Fails with ErrVerticalScroll when the display was constructed
// without one.
func (d *Display) SetVerticalScroll(row int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cond == nil {
		return ErrReleased
	}
	if d.verticalScrollCmd == 0 {
		return ErrVerticalScroll
	}
	return d.bus.SendCommand(d.verticalScrollCmd, []byte{byte(row >> 8), byte(row)})
}
