package displayio

// Bus is the transport interface for communicating with panel hardware.
//
// A bus is exclusively owned by the display it was handed to; two displays
// must never share one bus instance.
type Bus interface {
	String() string

	// SendCommand sends a command byte with optional parameter bytes.
	SendCommand(command byte, params []byte) error

	// SendPixels sends pixel data into the current address window.
	SendPixels(data []byte) error
}
