// Package displayio drives pixel-addressable display panels over an abstract
// command/data bus.
//
// A Display is allocated from a fixed-capacity Registry and brought up by
// executing a bit-packed init sequence against its bus. Refreshes are
// scheduled, not performed, by the caller: RefreshSoon marks a frame pending
// and Registry.Tick, invoked once per event-loop iteration, performs the
// actual transmission in the background. WaitForFrame provides frame
// synchronization against the monotonic frame counter.
package displayio

import (
	"errors"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("DISPLAYIO_DEBUG") != ""
}

// Errors
var (
	// ErrRotation is returned when a display is constructed with a rotation
	// that is not one of 0, 90, 180 or 270 degrees.
	ErrRotation = errors.New("displayio: rotation must be in 90 degree increments")

	// ErrTooManyDisplays is returned when the registry has no free slot left.
	ErrTooManyDisplays = errors.New("displayio: too many displays")

	// ErrPinInUse is returned when a backlight pin is already claimed by
	// another display.
	ErrPinInUse = errors.New("displayio: backlight pin already in use")

	// ErrBacklightPin is returned when the backlight GPIO pin is invalid.
	ErrBacklightPin = errors.New("displayio: backlight GPIO pin is invalid")

	// ErrTruncatedInit is returned when an init sequence ends mid-record.
	ErrTruncatedInit = errors.New("displayio: truncated init sequence")

	// ErrBrightness is returned when brightness is read or set on a display
	// without a backlight.
	ErrBrightness = errors.New("displayio: brightness not adjustable")

	// ErrVerticalScroll is returned when the display was constructed without
	// a vertical scroll command.
	ErrVerticalScroll = errors.New("displayio: vertical scroll not configured")

	// ErrReleased is returned when a handle is used after ReleaseAll.
	ErrReleased = errors.New("displayio: display has been released")
)

// Rotation defines the panel orientation.
type Rotation uint8

// Supported rotations.
const (
	NoRotation Rotation = iota
	Rotate90            // Rotate 90° clock wise
	Rotate180           // Rotate 180°
	Rotate270           // Rotate 270° clock wise
)

func (r Rotation) String() string {
	switch r % 4 {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

// swapsAxes reports whether the rotation exchanges the column and row axes.
func (r Rotation) swapsAxes() bool {
	return r == Rotate90 || r == Rotate270
}

// rotationFromDegrees converts clockwise degrees to a Rotation.
func rotationFromDegrees(degrees int) (Rotation, error) {
	switch degrees {
	case 0:
		return NoRotation, nil
	case 90:
		return Rotate90, nil
	case 180:
		return Rotate180, nil
	case 270:
		return Rotate270, nil
	default:
		return NoRotation, ErrRotation
	}
}
