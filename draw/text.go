package draw

import (
	"image"
	"image/color"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Basic is a small fixed 7x13 font, always available.
var Basic font.Face = basicfont.Face7x13

// Face parses TrueType font data and returns a face at the given point size.
func Face(ttf []byte, size float64) (font.Face, error) {
	f, err := freetype.ParseFont(ttf)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size: size,
		DPI:  72,
	}), nil
}

// Label draws a single line of text with its baseline origin at p.
func Label(dst Image, p image.Point, c color.Color, face font.Face, text string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(p.X, p.Y),
	}
	d.DrawString(text)
}

// LabelWidth returns the advance width of text in pixels.
func LabelWidth(face font.Face, text string) int {
	return font.MeasureString(face, text).Ceil()
}
