package brandkit

import (
	"fmt"
	"image/color"
)

// RenderIcon resamples logo into a size×size RGBA icon, preserving its
// aspect ratio and alpha.
func RenderIcon(logo *Raster, size int) (*Raster, error) {
	return Resample(logo, size, size)
}

// RenderSquareIcon renders the icon over an opaque bg canvas. The result is
// an RGB raster with no transparent pixels.
func RenderSquareIcon(logo *Raster, size int, bg color.NRGBA) (*Raster, error) {
	icon, err := RenderIcon(logo, size)
	if err != nil {
		return nil, err
	}
	return icon.Flatten(bg), nil
}

// IconFileName returns "icon-{size}.png".
func IconFileName(size int) string {
	return fmt.Sprintf("icon-%d.png", size)
}

// SquareIconFileName returns "icon-{size}-square.png".
func SquareIconFileName(size int) string {
	return fmt.Sprintf("icon-%d-square.png", size)
}
