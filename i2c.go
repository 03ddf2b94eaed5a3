package displayio

import (
	"periph.io/x/conn/v3/i2c"
)

// Control bytes for the SSD1xxx style I²C framing.
const (
	i2cCommandPrefix = 0x00
	i2cDataPrefix    = 0x40
)

// I2CBus drives a panel over I²C using the common control-byte framing: a
// 0x00 prefix for command bytes and 0x40 for data.
type I2CBus struct {
	dev *i2c.Dev
}

// NewI2C wraps the I²C bus at the given device address.
func NewI2C(bus i2c.Bus, addr uint16) *I2CBus {
	return &I2CBus{dev: &i2c.Dev{Bus: bus, Addr: addr}}
}

func (b *I2CBus) String() string {
	return "I2C bus " + b.dev.String()
}

// SendCommand sends a command byte and its parameters in one transaction.
func (b *I2CBus) SendCommand(command byte, params []byte) error {
	w := make([]byte, 0, len(params)+2)
	w = append(w, i2cCommandPrefix, command)
	w = append(w, params...)
	return b.dev.Tx(w, nil)
}

// SendPixels streams pixel data.
func (b *I2CBus) SendPixels(data []byte) error {
	w := make([]byte, 0, len(data)+1)
	w = append(w, i2cDataPrefix)
	w = append(w, data...)
	return b.dev.Tx(w, nil)
}

var _ Bus = (*I2CBus)(nil)
