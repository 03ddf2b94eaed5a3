package draw

import (
	"image"
	"image/color"
	"testing"
)

func TestLabel(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 64, 16))
	Label(dst, image.Pt(2, 12), color.White, Basic, "Hi")

	var set int
	for y := 0; y < 16; y++ {
		for x := 0; x < 64; x++ {
			if _, _, _, a := dst.At(x, y).RGBA(); a != 0 {
				set++
			}
		}
	}
	if set == 0 {
		t.Fatal("Label drew no pixels")
	}
}

func TestLabelWidth(t *testing.T) {
	if w := LabelWidth(Basic, ""); w != 0 {
		t.Errorf("empty string width is %d, expected 0", w)
	}
	// Face7x13 advances 7 pixels per glyph.
	if w := LabelWidth(Basic, "abc"); w != 21 {
		t.Errorf("width is %d, expected 21", w)
	}
}
