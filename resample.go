package brandkit

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// FitSize returns the largest size with the aspect ratio of srcW×srcH that
// fits inside boxW×boxH. Both results are at least 1.
func FitSize(srcW, srcH, boxW, boxH int) (w, h int) {
	if srcW <= 0 || srcH <= 0 || boxW <= 0 || boxH <= 0 {
		return 0, 0
	}
	scale := math.Min(float64(boxW)/float64(srcW), float64(boxH)/float64(srcH))
	w = max(1, min(boxW, int(math.Round(float64(srcW)*scale))))
	h = max(1, min(boxH, int(math.Round(float64(srcH)*scale))))
	return w, h
}

// Resample scales src with a Lanczos filter to fit inside width×height
// without changing its aspect ratio, and centres the result on a transparent
// width×height raster.
func Resample(src image.Image, width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	b := src.Bounds()
	w, h := FitSize(b.Dx(), b.Dy(), width, height)
	if w == 0 {
		return nil, ErrInvalidDimensions
	}

	scaled := imaging.Resize(src, w, h, imaging.Lanczos)
	if w == width && h == height {
		return fromNRGBA(scaled, LayoutRGBA), nil
	}

	canvas := imaging.New(width, height, color.Transparent)
	canvas = imaging.Paste(canvas, scaled, image.Pt((width-w)/2, (height-h)/2))
	return fromNRGBA(canvas, LayoutRGBA), nil
}

// normalize converts any decoded image to an RGBA raster at the origin.
func normalize(src image.Image) *Raster {
	return fromNRGBA(imaging.Clone(src), LayoutRGBA)
}
