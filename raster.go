package brandkit

import (
	"image"
	"image/color"
	"io"

	xdraw "golang.org/x/image/draw"

	bkimage "github.com/gogpu/brandkit/internal/image"
)

// Layout is the channel layout of a Raster.
type Layout uint8

const (
	// LayoutRGBA keeps per-pixel alpha.
	LayoutRGBA Layout = iota

	// LayoutRGB is fully opaque; alpha is always 255.
	LayoutRGB
)

// String returns "RGBA" or "RGB".
func (l Layout) String() string {
	switch l {
	case LayoutRGBA:
		return "RGBA"
	case LayoutRGB:
		return "RGB"
	default:
		return "Unknown"
	}
}

// Raster is a pixel buffer with non-premultiplied 8-bit channels.
// It implements image.Image.
type Raster struct {
	img    *image.NRGBA
	layout Layout
}

// NewRaster allocates a raster. RGBA rasters start fully transparent, RGB
// rasters start opaque black.
func NewRaster(width, height int, layout Layout) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if layout == LayoutRGB {
		for i := 3; i < len(img.Pix); i += 4 {
			img.Pix[i] = 0xff
		}
	}
	return &Raster{img: img, layout: layout}, nil
}

// newFilledRaster allocates a raster cleared to c. The layout is RGB when c
// is opaque.
func newFilledRaster(width, height int, c color.NRGBA) (*Raster, error) {
	layout := LayoutRGBA
	if c.A == 0xff {
		layout = LayoutRGB
	}
	r, err := NewRaster(width, height, layout)
	if err != nil {
		return nil, err
	}
	r.Clear(c)
	return r, nil
}

// fromNRGBA wraps img without copying; img must start at the origin.
func fromNRGBA(img *image.NRGBA, layout Layout) *Raster {
	return &Raster{img: img, layout: layout}
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.img.Rect.Dx() }

// Height returns the raster height in pixels.
func (r *Raster) Height() int { return r.img.Rect.Dy() }

// Layout returns the channel layout.
func (r *Raster) Layout() Layout { return r.layout }

// NRGBA returns the underlying buffer. Writes through it must keep an RGB
// raster opaque.
func (r *Raster) NRGBA() *image.NRGBA { return r.img }

// Bounds implements image.Image.
func (r *Raster) Bounds() image.Rectangle { return r.img.Rect }

// ColorModel implements image.Image.
func (r *Raster) ColorModel() color.Model { return color.NRGBAModel }

// At implements image.Image.
func (r *Raster) At(x, y int) color.Color { return r.img.NRGBAAt(x, y) }

// Pixel returns the colour at (x, y).
func (r *Raster) Pixel(x, y int) color.NRGBA { return r.img.NRGBAAt(x, y) }

// Clear sets every pixel to c.
func (r *Raster) Clear(c color.NRGBA) {
	pix := r.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

// Opaque reports whether every pixel has alpha 255.
func (r *Raster) Opaque() bool {
	return r.img.Opaque()
}

// Flatten composites r source-over onto an opaque bg and returns a new RGB
// raster of the same size.
func (r *Raster) Flatten(bg color.NRGBA) *Raster {
	bg.A = 0xff
	out, _ := newFilledRaster(r.Width(), r.Height(), bg)
	xdraw.Draw(out.img, out.img.Rect, r.img, r.img.Rect.Min, xdraw.Over)
	return out
}

// EncodePNG writes the raster as PNG. Opaque rasters are stored without an
// alpha channel.
func (r *Raster) EncodePNG(w io.Writer) error {
	return bkimage.EncodePNG(w, r.img)
}

// SavePNG writes the raster to path, creating parent directories.
func (r *Raster) SavePNG(path string) error {
	return bkimage.SavePNG(path, r.img)
}
