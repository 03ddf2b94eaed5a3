package displayio

import "image"

// computeWindow builds the column and row address payloads for a rectangular
// update region. Coordinates are inclusive start/end pairs, big-endian, the
// CASET/RASET argument layout shared by ST77xx and ILI93xx controllers.
//
// For 90° and 270° rotations the panel is scanned a quarter turn from the
// logical orientation, so the column command carries the logical row range
// and vice versa. colStart and rowStart shift every emitted column and row
// coordinate for panels whose visible area does not begin at physical
// address zero. The rotation is validated at construction; this assumes one
// of the four orthogonal values.
func computeWindow(region image.Rectangle, rotation Rotation, colStart, rowStart int) (cols, rows [4]byte) {
	x0, y0 := region.Min.X, region.Min.Y
	x1, y1 := region.Max.X-1, region.Max.Y-1
	if rotation.swapsAxes() {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}

	x0 += colStart
	x1 += colStart
	y0 += rowStart
	y1 += rowStart

	cols = [4]byte{byte(x0 >> 8), byte(x0), byte(x1 >> 8), byte(x1)}
	rows = [4]byte{byte(y0 >> 8), byte(y0), byte(y1 >> 8), byte(y1)}
	return
}
