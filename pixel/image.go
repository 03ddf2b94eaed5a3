package pixel

import (
	"encoding/binary"
	"image"
	"image/color"
)

// Buffer holds the packed pixel values.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent
	// pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

// RGB565Image is a 16-bits per pixel 5-6-5-bit RGB image, stored in the byte
// order the panel expects on the wire. Most serial panels want big-endian,
// the default.
type RGB565Image struct {
	Buffer
	Order binary.ByteOrder
}

func NewRGB565Image(w, h int) *RGB565Image {
	return &RGB565Image{
		Buffer: Buffer{
			Rect:   image.Rect(0, 0, w, h),
			Pix:    make([]byte, w*2*h),
			Stride: w * 2,
		},
		Order: binary.BigEndian,
	}
}

func (p *RGB565Image) ColorModel() color.Model {
	return RGB565Model
}

func (p *RGB565Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return RGB565{p.Order.Uint16(p.Pix[x*2+y*p.Stride:])}
}

func (p *RGB565Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Order.PutUint16(p.Pix[x*2+y*p.Stride:], rgb565Model(c).(RGB565).V)
}

func (p *RGB565Image) Fill(c color.Color) {
	var b [2]byte
	p.Order.PutUint16(b[:], rgb565Model(c).(RGB565).V)
	for i, l := 0, len(p.Pix); i < l; i += 2 {
		copy(p.Pix[i:], b[:])
	}
}

// Region returns the packed bytes for the given region, row-major. The full
// image is returned without copying; sub-regions are copied row by row. An
// empty intersection returns nil.
func (p *RGB565Image) Region(region image.Rectangle) []byte {
	region = region.Intersect(p.Rect)
	if region.Empty() {
		return nil
	}
	if region == p.Rect {
		return p.Pix
	}

	rowBytes := region.Dx() * 2
	out := make([]byte, 0, rowBytes*region.Dy())
	for y := region.Min.Y; y < region.Max.Y; y++ {
		offset := y*p.Stride + region.Min.X*2
		out = append(out, p.Pix[offset:offset+rowBytes]...)
	}
	return out
}
