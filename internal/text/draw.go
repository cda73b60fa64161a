package text

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// LineSpacing is the extra gap between lines drawn by DrawLines.
const LineSpacing = 4

// Draw renders s with its baseline origin at (x, y).
func Draw(dst draw.Image, s string, face *Face, x, y float64, col color.Color) {
	if s == "" || face == nil {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face.glyphs,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	d.DrawString(s)
}

// DrawTop renders s with the top of its ascent box at (x, y).
func DrawTop(dst draw.Image, s string, face *Face, x, y float64, col color.Color) {
	if face == nil {
		return
	}
	Draw(dst, s, face, x, y+face.Metrics().Ascent, col)
}

// DrawLines renders each line of s below the previous one, starting with the
// top of the first ascent box at (x, y).
func DrawLines(dst draw.Image, s string, face *Face, x, y float64, col color.Color) {
	if face == nil {
		return
	}
	step := face.Metrics().LineHeight + LineSpacing
	for i, line := range strings.Split(s, "\n") {
		DrawTop(dst, line, face, x, y+float64(i)*step, col)
	}
}

// Measure returns the shaped advance of s and the face line height.
func Measure(s string, face *Face) (width, height float64) {
	if s == "" || face == nil {
		return 0, 0
	}
	return face.Advance(s), face.Metrics().LineHeight
}
