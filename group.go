package displayio

import (
	"image"

	"github.com/BeatGlow/displayio/pixel"
)

// Group is the root of the content shown on a display. The display holds a
// non-owning reference; the caller keeps ownership and may swap the root at
// any time with Show.
//
// Implementations produce packed pixel bytes, ready for the bus, for any
// region of their bounds. The byte layout must match the display's color
// depth.
type Group interface {
	// Bounds is the content bounding box.
	Bounds() image.Rectangle

	// RegionPixels returns the packed pixel bytes for region, row-major.
	RegionPixels(region image.Rectangle) []byte
}

// Canvas is a drawable Group backed by a 16-bit RGB565 framebuffer. It
// implements draw.Image, so the draw package and image/draw both work on it.
type Canvas struct {
	*pixel.RGB565Image
}

// NewCanvas returns an empty canvas of the given size.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{RGB565Image: pixel.NewRGB565Image(w, h)}
}

// RegionPixels returns the packed RGB565 bytes for region.
func (c *Canvas) RegionPixels(region image.Rectangle) []byte {
	return c.Region(region)
}

var _ Group = (*Canvas)(nil)
