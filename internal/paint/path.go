// Package paint rasterizes simple vector shapes onto NRGBA buffers.
//
// Paths are built from move, line and cubic Bézier elements and filled with
// golang.org/x/image/vector. Strokes are expressed as rings: an outer contour
// followed by an inner contour wound the opposite way, which leaves the inner
// area uncovered under the rasterizer's nonzero accumulation.
package paint

// kappa is the control-point distance for approximating a quarter circle
// with one cubic Bézier curve.
const kappa = 0.5522847498307936

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

type elementKind uint8

const (
	kindMoveTo elementKind = iota
	kindLineTo
	kindCubicTo
	kindClose
)

// element is one path command. Unused points are zero.
type element struct {
	kind elementKind
	c1   Point
	c2   Point
	p    Point
}

// Path is a sequence of closed or open subpaths.
type Path struct {
	elements []element
	start    Point
	current  Point
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{elements: make([]element, 0, 16)}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, element{kind: kindMoveTo, p: pt})
	p.start = pt
	p.current = pt
}

// LineTo adds a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, element{kind: kindLineTo, p: pt})
	p.current = pt
}

// CubicTo adds a cubic Bézier segment ending at (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, element{
		kind: kindCubicTo,
		c1:   Pt(c1x, c1y),
		c2:   Pt(c2x, c2y),
		p:    pt,
	})
	p.current = pt
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, element{kind: kindClose})
	p.current = p.start
}

// Len returns the number of path elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// CurrentPoint returns the end point of the last element.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Rectangle adds the closed rectangle with corners (x0, y0) and (x1, y1),
// wound clockwise on screen.
func (p *Path) Rectangle(x0, y0, x1, y1 float64) {
	p.rectangle(x0, y0, x1, y1, false)
}

func (p *Path) rectangle(x0, y0, x1, y1 float64, reverse bool) {
	p.MoveTo(x0, y0)
	if reverse {
		p.LineTo(x0, y1)
		p.LineTo(x1, y1)
		p.LineTo(x1, y0)
	} else {
		p.LineTo(x1, y0)
		p.LineTo(x1, y1)
		p.LineTo(x0, y1)
	}
	p.Close()
}

// Ellipse adds the closed ellipse centred at (cx, cy), wound clockwise on
// screen.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	p.ellipse(cx, cy, rx, ry, false)
}

func (p *Path) ellipse(cx, cy, rx, ry float64, reverse bool) {
	ox := rx * kappa
	oy := ry * kappa

	p.MoveTo(cx+rx, cy)
	if reverse {
		p.CubicTo(cx+rx, cy-oy, cx+ox, cy-ry, cx, cy-ry)
		p.CubicTo(cx-ox, cy-ry, cx-rx, cy-oy, cx-rx, cy)
		p.CubicTo(cx-rx, cy+oy, cx-ox, cy+ry, cx, cy+ry)
		p.CubicTo(cx+ox, cy+ry, cx+rx, cy+oy, cx+rx, cy)
	} else {
		p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
		p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
		p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
		p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	}
	p.Close()
}

// RectangleRing adds a rectangular band of the given width lying inside the
// rectangle (x0, y0)-(x1, y1). A width that would close the ring yields the
// full rectangle.
func (p *Path) RectangleRing(x0, y0, x1, y1, width float64) {
	p.rectangle(x0, y0, x1, y1, false)
	if 2*width >= x1-x0 || 2*width >= y1-y0 {
		return
	}
	p.rectangle(x0+width, y0+width, x1-width, y1-width, true)
}

// EllipseRing adds an elliptical band of the given width lying inside the
// ellipse centred at (cx, cy) with radii rx and ry.
func (p *Path) EllipseRing(cx, cy, rx, ry, width float64) {
	p.ellipse(cx, cy, rx, ry, false)
	if width >= rx || width >= ry {
		return
	}
	p.ellipse(cx, cy, rx-width, ry-width, true)
}
