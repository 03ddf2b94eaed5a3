package displayio

import (
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// Backlight PWM rate.
const backlightRate = 2 * physic.KiloHertz

// Brightness returns the backlight level in [0, 1]. Fails with ErrBrightness
// when the display has no backlight pin.
func (d *Display) Brightness() (float64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.backlight == nil {
		return 0, ErrBrightness
	}
	return d.brightness, nil
}

// SetBrightness sets the backlight level. Values are clamped to [0, 1].
// While auto brightness is on the value is remembered but not transmitted;
// it takes effect as soon as auto brightness is turned off. Fails with
// ErrBrightness when the display has no backlight pin.
func (d *Display) SetBrightness(v float64) error {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.backlight == nil {
		return ErrBrightness
	}
	d.brightness = v
	if d.autoBrightness {
		// An external mechanism owns the output right now.
		return nil
	}
	return d.applyBrightness(v)
}

// AutoBrightness reports whether the backlight level is auto adjusted.
func (d *Display) AutoBrightness() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.autoBrightness
}

// SetAutoBrightness toggles auto brightness. Turning it off reapplies the
// last explicitly requested level so no setting made while it was on is
// lost.
func (d *Display) SetAutoBrightness(auto bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	was := d.autoBrightness
	d.autoBrightness = auto
	if was && !auto && d.backlight != nil {
		return d.applyBrightness(d.brightness)
	}
	return nil
}

// applyBrightness transmits the level as a PWM duty cycle. Callers hold d.mu
// and have checked that a backlight pin is present.
func (d *Display) applyBrightness(v float64) error {
	duty := gpio.Duty(float64(gpio.DutyMax) * v)
	return d.backlight.PWM(duty, backlightRate)
}
