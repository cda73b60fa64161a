package brandkit

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/brandkit/internal/paint"
	"github.com/gogpu/brandkit/internal/text"
)

// FontStyle selects one of the embedded faces.
type FontStyle uint8

const (
	FontRegular FontStyle = iota
	FontBold
)

// Fonts holds the parsed font sources used by the composers. Fonts is
// read-only and may be shared across runs.
type Fonts struct {
	regular *text.FontSource
	bold    *text.FontSource
}

// DefaultFonts returns the embedded Go Regular and Go Bold fonts.
func DefaultFonts() (*Fonts, error) {
	regular, err := text.Regular()
	if err != nil {
		return nil, err
	}
	bold, err := text.Bold()
	if err != nil {
		return nil, err
	}
	return &Fonts{regular: regular, bold: bold}, nil
}

// face creates a face; the caller closes it.
func (f *Fonts) face(style FontStyle, size float64) (*text.Face, error) {
	if f == nil {
		return nil, ErrNoFonts
	}
	src := f.regular
	if style == FontBold {
		src = f.bold
	}
	return src.Face(size)
}

// shape is the fill and optional inner stroke of a rectangle or oval.
// A zero Fill alpha draws no fill; a zero StrokeWidth draws no stroke.
type shape struct {
	Fill        color.NRGBA
	Stroke      color.NRGBA
	StrokeWidth float64
}

// canvas draws onto an NRGBA buffer. Coordinates are pixels from the
// top-left corner; boxes are half-open [x0, x1)×[y0, y1).
type canvas struct {
	dst *image.NRGBA
}

func newCanvas(r *Raster) canvas {
	return canvas{dst: r.img}
}

func (c canvas) rect(x0, y0, x1, y1 float64, s shape) {
	if s.Fill.A != 0 {
		paint.FillRect(c.dst, x0, y0, x1, y1, s.Fill)
	}
	if s.StrokeWidth > 0 {
		paint.StrokeRect(c.dst, x0, y0, x1, y1, s.StrokeWidth, s.Stroke)
	}
}

func (c canvas) oval(x0, y0, x1, y1 float64, s shape) {
	if s.Fill.A != 0 {
		paint.FillEllipse(c.dst, x0, y0, x1, y1, s.Fill)
	}
	if s.StrokeWidth > 0 {
		paint.StrokeEllipse(c.dst, x0, y0, x1, y1, s.StrokeWidth, s.Stroke)
	}
}

// composite draws src source-over with its top-left corner at (x, y).
func (c canvas) composite(src image.Image, x, y int) {
	b := src.Bounds()
	dr := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	xdraw.Draw(c.dst, dr, src, b.Min, xdraw.Over)
}

// label draws s with the top of its ascent box at (x, y). Embedded newlines
// start new lines.
func (c canvas) label(s string, face *text.Face, x, y float64, col color.NRGBA) {
	text.DrawLines(c.dst, s, face, x, y, col)
}

// shadowLabel draws s in shadow colour offset by (d, d), then in col.
func (c canvas) shadowLabel(s string, face *text.Face, x, y, d float64, col, shadow color.NRGBA) {
	text.DrawTop(c.dst, s, face, x+d, y+d, shadow)
	text.DrawTop(c.dst, s, face, x, y, col)
}
