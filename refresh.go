package displayio

import (
	"image"
	"log"
)

// refreshState is the per-display scheduler state.
type refreshState uint8

const (
	refreshIdle refreshState = iota
	refreshPending
	refreshTransmitting
)

// RefreshSoon schedules a full-frame refresh and returns without waiting for
// it. Repeated calls before the next tick coalesce into a single refresh.
// An error recorded by an earlier background tick is returned here (once)
// instead of being raised asynchronously.
func (d *Display) RefreshSoon() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cond == nil {
		return ErrReleased
	}
	err := d.refreshErr
	d.refreshErr = nil
	d.dirty = d.Bounds()
	if d.state == refreshIdle {
		d.state = refreshPending
	}
	return err
}

// RefreshArea schedules a refresh of a sub-region. Regions from repeated
// calls are unioned into one update window. Requests outside the display
// bounds are ignored.
func (d *Display) RefreshArea(region image.Rectangle) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cond == nil {
		return ErrReleased
	}
	err := d.refreshErr
	d.refreshErr = nil
	region = region.Intersect(d.Bounds())
	if region.Empty() {
		return err
	}
	d.dirty = d.dirty.Union(region)
	if d.state == refreshIdle {
		d.state = refreshPending
	}
	return err
}

// FrameCount returns the number of completed refresh transmissions.
func (d *Display) FrameCount() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frame
}

// WaitForFrame blocks until the frame counter advances past the caller's
// last observed value and returns the current counter. When the caller
// already lags the counter by more than one frame the call returns
// immediately; a slow caller is never made to catch up frame by frame.
// Errors recorded by a background tick surface here.
func (d *Display) WaitForFrame() (uint64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cond == nil {
		return 0, ErrReleased
	}
	if err := d.refreshErr; err != nil {
		d.refreshErr = nil
		d.waitFrame = d.frame
		return d.frame, err
	}
	if d.frame > d.waitFrame+1 {
		d.waitFrame = d.frame
		return d.frame, nil
	}
	target := d.waitFrame + 1
	for d.frame < target && d.refreshErr == nil && d.cond != nil {
		d.cond.Wait()
	}
	if d.cond == nil {
		return 0, ErrReleased
	}
	if err := d.refreshErr; err != nil {
		d.refreshErr = nil
		d.waitFrame = d.frame
		return d.frame, err
	}
	d.waitFrame = d.frame
	return d.frame, nil
}

// tick runs one background scheduler step: when a refresh is pending it
// computes the update window, transmits the region and advances the frame
// counter. Bus I/O happens outside the display lock; at most one
// transmission is in flight per display and it always runs to completion.
func (d *Display) tick() {
	d.mu.Lock()
	if d.state != refreshPending {
		d.mu.Unlock()
		return
	}
	d.state = refreshTransmitting
	region := d.dirty
	if region.Empty() {
		region = d.Bounds()
	}
	// The dirty region is consumed here; anything marked dirty from now on
	// belongs to the next frame.
	d.dirty = image.Rectangle{}
	var (
		bus       = d.bus
		root      = d.root
		setColumn = d.setColumnCommand
		setRow    = d.setRowCommand
		writeRAM  = d.writeRAMCommand
	)
	cols, rows := computeWindow(region, d.rotation, d.colStart, d.rowStart)
	d.mu.Unlock()

	var err error
	if root != nil {
		if debug {
			log.Printf("displayio: refresh %s cols % 02x rows % 02x", region, cols, rows)
		}
		err = transmitRegion(bus, root, region, cols, rows, setColumn, setRow, writeRAM)
	}

	d.mu.Lock()
	if d.cond == nil {
		// Released while transmitting.
		d.mu.Unlock()
		return
	}
	// A refresh accepted while the transmission was in flight must not be
	// lost: a non-empty dirty region leaves the handle pending again.
	if d.dirty.Empty() {
		d.state = refreshIdle
	} else {
		d.state = refreshPending
	}
	if err != nil {
		d.refreshErr = err
	} else {
		d.frame++
	}
	d.cond.Broadcast()
	d.mu.Unlock()
}

func transmitRegion(bus Bus, root Group, region image.Rectangle, cols, rows [4]byte, setColumn, setRow, writeRAM byte) error {
	if err := bus.SendCommand(setColumn, cols[:]); err != nil {
		return err
	}
	if err := bus.SendCommand(setRow, rows[:]); err != nil {
		return err
	}
	if err := bus.SendCommand(writeRAM, nil); err != nil {
		return err
	}
	return bus.SendPixels(root.RegionPixels(region))
}
