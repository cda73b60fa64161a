package brandkit

import (
	"image/color"
	"math"
)

// GradientStop is a colour at a fractional position along the vertical axis.
type GradientStop struct {
	Offset float64
	Color  color.NRGBA
}

// Band thresholds of the default three-band gradient.
const (
	bandMid = 0.33
	bandEnd = 0.66
)

// BandStops returns the default cyclic gradient: start→mid over [0, 0.33),
// mid→end over [0.33, 0.66) and end→start over [0.66, 1].
func BandStops(p Palette) []GradientStop {
	return []GradientStop{
		{Offset: 0, Color: p.Color(GradientStart)},
		{Offset: bandMid, Color: p.Color(GradientMid)},
		{Offset: bandEnd, Color: p.Color(GradientEnd)},
		{Offset: 1, Color: p.Color(GradientStart)},
	}
}

func validateStops(stops []GradientStop) error {
	if len(stops) < 2 || stops[0].Offset != 0 || stops[len(stops)-1].Offset != 1 {
		return ErrInvalidStops
	}
	for i := 1; i < len(stops); i++ {
		if stops[i].Offset <= stops[i-1].Offset {
			return ErrInvalidStops
		}
	}
	return nil
}

// GradientColorAt returns the colour of the row at fractional position
// ratio. Channels are interpolated on the 0-255 scale and rounded down.
// stops must satisfy the RenderGradient preconditions.
func GradientColorAt(stops []GradientStop, ratio float64) color.NRGBA {
	i := 0
	for i < len(stops)-2 && ratio >= stops[i+1].Offset {
		i++
	}
	s0, s1 := stops[i], stops[i+1]
	t := (ratio - s0.Offset) / (s1.Offset - s0.Offset)
	return color.NRGBA{
		R: lerpChannel(s0.Color.R, s1.Color.R, t),
		G: lerpChannel(s0.Color.G, s1.Color.G, t),
		B: lerpChannel(s0.Color.B, s1.Color.B, t),
		A: 0xff,
	}
}

// lerpChannel computes floor(c0*(1-t) + c1*t) clamped to a byte.
func lerpChannel(c0, c1 uint8, t float64) uint8 {
	v := math.Floor(float64(c0)*(1-t) + float64(c1)*t)
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}

// RenderGradient fills a new opaque raster with horizontal bands: row y takes
// GradientColorAt(stops, y/height) and every pixel of the row is written.
func RenderGradient(width, height int, stops []GradientStop) (*Raster, error) {
	if err := validateStops(stops); err != nil {
		return nil, err
	}
	r, err := NewRaster(width, height, LayoutRGB)
	if err != nil {
		return nil, err
	}

	img := r.img
	for y := 0; y < height; y++ {
		c := GradientColorAt(stops, float64(y)/float64(height))
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width; x++ {
			i := x * 4
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = c.A
		}
	}
	return r, nil
}
