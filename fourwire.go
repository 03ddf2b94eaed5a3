package displayio

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// FourWire errors.
var (
	ErrDCPin    = errors.New("displayio: data/command (DC) GPIO pin is invalid")
	ErrResetPin = errors.New("displayio: reset GPIO pin is invalid")
)

// FourWireConfig describes the serial command/data bus configuration.
type FourWireConfig struct {
	// DC is the data/command select pin. Required.
	DC gpio.PinOut

	// Reset pin, optional. Required only for Reset.
	Reset gpio.PinOut

	// CS is the chip select pin, optional when the kernel driver owns it.
	CS gpio.PinOut

	// Speed is the SPI clock frequency. Defaults to 40MHz.
	Speed physic.Frequency

	// Mode is the SPI mode. Defaults to Mode0.
	Mode spi.Mode

	// BatchSize is the largest single SPI transfer. Defaults to 4096 bytes,
	// the common spidev limit.
	BatchSize int
}

// DefaultFourWireConfig are the default configuration values.
var DefaultFourWireConfig = FourWireConfig{
	Speed:     40 * physic.MegaHertz,
	Mode:      spi.Mode0,
	BatchSize: 4096,
}

// FourWire is a serial command/data bus: an SPI port plus a data/command
// select pin, the usual wiring for ST77xx and ILI93xx panels.
type FourWire struct {
	c       spi.Conn
	dc      gpio.PinOut
	dcLevel gpio.Level
	reset   gpio.PinOut
	cs      gpio.PinOut
	batch   int
}

// NewFourWire connects the SPI port and prepares the bus. The DC pin is
// required; reset and CS pins are optional.
func NewFourWire(p spi.Port, config *FourWireConfig) (*FourWire, error) {
	if config == nil {
		config = new(FourWireConfig)
		*config = DefaultFourWireConfig
	}
	if config.DC == nil || config.DC == gpio.INVALID {
		return nil, ErrDCPin
	}
	if config.Speed == 0 {
		config.Speed = DefaultFourWireConfig.Speed
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultFourWireConfig.BatchSize
	}

	c, err := p.Connect(config.Speed, config.Mode, 8)
	if err != nil {
		return nil, err
	}

	w := &FourWire{
		c:     c,
		dc:    config.DC,
		reset: config.Reset,
		cs:    config.CS,
		batch: config.BatchSize,
	}

	// Make the DC pin state known.
	w.dcLevel = gpio.High
	if err := w.updateDC(gpio.Low); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *FourWire) String() string {
	return fmt.Sprintf("FourWire bus %s", w.c)
}

// Reset performs a hardware reset pulse on the reset pin.
func (w *FourWire) Reset() error {
	if w.reset == nil || w.reset == gpio.INVALID {
		return ErrResetPin
	}
	if err := w.reset.Out(gpio.High); err != nil {
		return err
	}
	time.Sleep(100 * time.Millisecond)
	if err := w.reset.Out(gpio.Low); err != nil {
		return err
	}
	time.Sleep(100 * time.Millisecond)
	if err := w.reset.Out(gpio.High); err != nil {
		return err
	}
	time.Sleep(100 * time.Millisecond)
	return nil
}

func (w *FourWire) updateDC(level gpio.Level) error {
	if w.dcLevel == level {
		return nil
	}
	if err := w.dc.Out(level); err != nil {
		return err
	}
	w.dcLevel = level
	return nil
}

func (w *FourWire) updateCS(level gpio.Level) error {
	if w.cs == nil {
		return nil
	}
	return w.cs.Out(level)
}

// SendCommand sends a command byte with DC low, then its parameters with DC
// high.
func (w *FourWire) SendCommand(command byte, params []byte) (err error) {
	if err = w.updateCS(gpio.Low); err != nil {
		return
	}
	if err = w.updateDC(gpio.Low); err != nil {
		return
	}
	if err = w.c.Tx([]byte{command}, nil); err != nil {
		return
	}
	if len(params) > 0 {
		if err = w.updateDC(gpio.High); err != nil {
			return
		}
		if err = w.writeChunked(params); err != nil {
			return
		}
	}
	return w.updateCS(gpio.High)
}

// SendPixels streams pixel data with DC high.
func (w *FourWire) SendPixels(data []byte) (err error) {
	if len(data) == 0 {
		return
	}
	if err = w.updateCS(gpio.Low); err != nil {
		return
	}
	if err = w.updateDC(gpio.High); err != nil {
		return
	}
	if err = w.writeChunked(data); err != nil {
		return
	}
	return w.updateCS(gpio.High)
}

var _ Bus = (*FourWire)(nil)

func (w *FourWire) writeChunked(data []byte) error {
	for len(data) > 0 {
		n := len(data)
		if n > w.batch {
			n = w.batch
		}
		if err := w.c.Tx(data[:n], nil); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}
