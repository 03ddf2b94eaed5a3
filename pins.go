package displayio

import "periph.io/x/conn/v3/gpio"

// Pins tracks exclusive claims on GPIO pins shared between displays and
// other peripherals. A pin handed to a display stays claimed until the
// registry releases it.
type Pins interface {
	// Claim reserves the pin, failing when it is invalid or already claimed.
	Claim(pin gpio.PinOut) error

	// Release returns the pin to the free pool.
	Release(pin gpio.PinOut)
}

// pinSet is the default Pins implementation, keyed by pin name.
type pinSet struct {
	claimed map[string]bool
}

func newPinSet() *pinSet {
	return &pinSet{claimed: make(map[string]bool)}
}

func (p *pinSet) Claim(pin gpio.PinOut) error {
	if pin == nil || pin == gpio.INVALID {
		return ErrBacklightPin
	}
	name := pin.Name()
	if p.claimed[name] {
		return ErrPinInUse
	}
	p.claimed[name] = true
	return nil
}

func (p *pinSet) Release(pin gpio.PinOut) {
	if pin == nil {
		return
	}
	delete(p.claimed, pin.Name())
}
