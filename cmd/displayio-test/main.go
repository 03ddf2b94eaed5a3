// Command displayio-test brings up a panel and drives a simple animation
// through the background refresh scheduler.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"time"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/displayio"
	"github.com/BeatGlow/displayio/draw"
)

// st7789InitSequence is the bit-packed init sequence for ST7789 panels:
// command byte, meta byte (bit 7 = delay follows, bits 0-6 = parameter
// count), parameters, optional delay in milliseconds.
var st7789InitSequence = []byte{
	0x01, 0x80, 0x96, // SWRESET, 150ms
	0x11, 0x80, 0x78, // SLPOUT, 120ms
	0x3A, 0x81, 0x05, 0x0A, // COLMOD: 16-bit/pixel, 10ms
	0x36, 0x01, 0x00, // MADCTL
	0xB2, 0x02, 0x0C, 0x0C, // PORCTRL
	0xB7, 0x01, 0x35, // GCTRL
	0xBB, 0x01, 0x1A, // VCOMS
	0xC0, 0x01, 0x2C, // LCMCTRL
	0xC2, 0x01, 0x01, // VDVVRHEN
	0xC3, 0x01, 0x0B, // VRHS
	0xC4, 0x01, 0x20, // VDVSET
	0xC5, 0x01, 0x20, // VCMOFSET
	0xC6, 0x01, 0x0F, // FRCTR2: 60Hz
	0xD0, 0x02, 0xA4, 0xA1, // PWCTRL1
	0x21, 0x00, // INVON
	0xE0, 0x0E, 0x00, 0x19, 0x1E, 0x0A, 0x09, 0x15, 0x3D, 0x44, 0x51, 0x12, 0x03, 0x00, 0x3F, 0x3F, // PVGAMCTRL
	0xE1, 0x0E, 0x00, 0x18, 0x1E, 0x0A, 0x09, 0x25, 0x3F, 0x43, 0x52, 0x33, 0x03, 0x00, 0x3F, 0x3F, // NVGAMCTRL
	0x13, 0x00, // NORON
	0x29, 0x80, 0x78, // DISPON, 120ms
}

func main() {
	busFlag := flag.String("bus", "spi", "Bus type (spi or i2c)")
	spiPortFlag := flag.String("spi", "", "SPI port (default: first available)")
	i2cBusFlag := flag.String("i2c", "", "I²C bus (default: first available)")
	i2cAddrFlag := flag.Uint("i2c-addr", 0x3c, "I²C device address")
	dcPinFlag := flag.String("dc", "GPIO24", "Data/Command GPIO pin (DC)")
	resetPinFlag := flag.String("reset", "GPIO25", "Reset GPIO pin")
	blPinFlag := flag.String("bl", "GPIO19", "Backlight GPIO pin (empty: no backlight)")
	widthFlag := flag.Int("width", 240, "Display width")
	heightFlag := flag.Int("height", 240, "Display height")
	colStartFlag := flag.Int("colstart", 0, "First visible column")
	rowStartFlag := flag.Int("rowstart", 0, "First visible row")
	rotateFlag := flag.Int("rotate", 0, "Display rotation in degrees")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	var (
		bus displayio.Bus
		err error
	)
	switch *busFlag {
	case "spi":
		port, err := spireg.Open(*spiPortFlag)
		if err != nil {
			fatal(err)
		}
		defer port.Close()

		fourWire, err := displayio.NewFourWire(port, &displayio.FourWireConfig{
			DC:    gpioreg.ByName(*dcPinFlag),
			Reset: gpioreg.ByName(*resetPinFlag),
		})
		if err != nil {
			fatal(err)
		}
		if err = fourWire.Reset(); err != nil {
			fatal(err)
		}
		bus = fourWire
	case "i2c":
		i2cBus, err := i2creg.Open(*i2cBusFlag)
		if err != nil {
			fatal(err)
		}
		defer i2cBus.Close()
		bus = displayio.NewI2C(i2cBus, uint16(*i2cAddrFlag))
	default:
		fatal(fmt.Errorf("unsupported bus type %q", *busFlag))
	}
	fmt.Printf("using bus: %s\n", bus)

	config := &displayio.Config{
		Width:    *widthFlag,
		Height:   *heightFlag,
		ColStart: *colStartFlag,
		RowStart: *rowStartFlag,
		Rotation: *rotateFlag,
	}
	if *blPinFlag != "" {
		config.Backlight = gpioreg.ByName(*blPinFlag)
	}

	registry := displayio.NewRegistry(nil)
	defer registry.ReleaseAll()

	output, err := registry.New(bus, st7789InitSequence, config)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using display: %s\n", output)

	canvas := displayio.NewCanvas(*widthFlag, *heightFlag)
	output.Show(canvas)

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	fmt.Println("hit control-c to stop...")
	var offset int
	for {
		bounds := canvas.Bounds()
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				canvas.Set(x, y, color.RGBA{
					R: uint8(x + y + offset),
					G: uint8(x - y + offset),
					B: uint8(x + y - offset),
					A: 0xff,
				})
			}
		}
		draw.Rectangle(canvas, bounds, color.White)
		draw.Label(canvas, image.Pt(8, 20), color.White, draw.Basic,
			fmt.Sprintf("frame %d", offset))

		if err = output.RefreshSoon(); err != nil {
			fatal(err)
		}
		registry.Tick()
		if _, err = output.WaitForFrame(); err != nil {
			fatal(err)
		}

		offset++
		<-ticker.C
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
