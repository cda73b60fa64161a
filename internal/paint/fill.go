package paint

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// Fill rasterizes path with anti-aliasing and composites col onto dst using
// source-over. Path coordinates are relative to dst.Bounds().Min.
func Fill(dst draw.Image, path *Path, col color.Color) {
	if path == nil || len(path.elements) == 0 {
		return
	}
	b := dst.Bounds()
	if b.Empty() {
		return
	}

	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over

	open := false
	for _, e := range path.elements {
		switch e.kind {
		case kindMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(f32(e.p.X), f32(e.p.Y))
			open = true
		case kindLineTo:
			z.LineTo(f32(e.p.X), f32(e.p.Y))
		case kindCubicTo:
			z.CubeTo(f32(e.c1.X), f32(e.c1.Y), f32(e.c2.X), f32(e.c2.Y), f32(e.p.X), f32(e.p.Y))
		case kindClose:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}

	z.Draw(dst, b, image.NewUniform(col), image.Point{})
}

// FillRect fills the rectangle (x0, y0)-(x1, y1).
func FillRect(dst draw.Image, x0, y0, x1, y1 float64, col color.Color) {
	p := NewPath()
	p.Rectangle(x0, y0, x1, y1)
	Fill(dst, p, col)
}

// StrokeRect draws a band of the given width just inside the rectangle edge.
func StrokeRect(dst draw.Image, x0, y0, x1, y1, width float64, col color.Color) {
	if width <= 0 {
		return
	}
	p := NewPath()
	p.RectangleRing(x0, y0, x1, y1, width)
	Fill(dst, p, col)
}

// FillEllipse fills the ellipse inscribed in the box (x0, y0)-(x1, y1).
func FillEllipse(dst draw.Image, x0, y0, x1, y1 float64, col color.Color) {
	p := NewPath()
	p.Ellipse((x0+x1)/2, (y0+y1)/2, (x1-x0)/2, (y1-y0)/2)
	Fill(dst, p, col)
}

// StrokeEllipse draws a band of the given width just inside the ellipse
// inscribed in the box (x0, y0)-(x1, y1).
func StrokeEllipse(dst draw.Image, x0, y0, x1, y1, width float64, col color.Color) {
	if width <= 0 {
		return
	}
	p := NewPath()
	p.EllipseRing((x0+x1)/2, (y0+y1)/2, (x1-x0)/2, (y1-y0)/2, width)
	Fill(dst, p, col)
}

func f32(v float64) float32 {
	return float32(v)
}
