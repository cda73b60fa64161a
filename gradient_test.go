package brandkit

import (
	"errors"
	"image/color"
	"testing"
)

func TestGradientColorAtBands(t *testing.T) {
	p := DefaultPalette()
	stops := BandStops(p)

	tests := []struct {
		name  string
		ratio float64
		want  color.NRGBA
	}{
		{"start", 0, p.Color(GradientStart)},
		{"mid", 0.33, p.Color(GradientMid)},
		{"end", 0.66, p.Color(GradientEnd)},
		{"cyclic", 1.0, p.Color(GradientStart)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GradientColorAt(stops, tt.ratio); got != tt.want {
				t.Errorf("GradientColorAt(%v) = %v, want %v", tt.ratio, got, tt.want)
			}
		})
	}
}

func TestGradientColorAtMidpoint(t *testing.T) {
	a := color.NRGBA{R: 0, G: 100, B: 200, A: 255}
	b := color.NRGBA{R: 200, G: 100, B: 0, A: 255}
	stops := []GradientStop{{0, a}, {1, b}}

	got := GradientColorAt(stops, 0.5)
	want := color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	if got != want {
		t.Errorf("GradientColorAt(0.5) = %v, want %v", got, want)
	}
}

func TestLerpChannelFloors(t *testing.T) {
	// 10*0.75 + 11*0.25 = 10.25
	if got := lerpChannel(10, 11, 0.25); got != 10 {
		t.Errorf("lerpChannel(10, 11, 0.25) = %d, want 10", got)
	}
	if got := lerpChannel(0, 255, 1); got != 255 {
		t.Errorf("lerpChannel(0, 255, 1) = %d, want 255", got)
	}
}

func TestRenderGradientRows(t *testing.T) {
	p := DefaultPalette()
	r, err := RenderGradient(7, 300, BandStops(p))
	if err != nil {
		t.Fatalf("RenderGradient: %v", err)
	}
	if r.Width() != 7 || r.Height() != 300 {
		t.Fatalf("size = %dx%d, want 7x300", r.Width(), r.Height())
	}
	if r.Layout() != LayoutRGB || !r.Opaque() {
		t.Error("gradient raster should be opaque RGB")
	}

	rows := []struct {
		y    int
		want color.NRGBA
	}{
		{0, p.Color(GradientStart)},
		{99, p.Color(GradientMid)},
		{198, p.Color(GradientEnd)},
	}
	for _, row := range rows {
		for x := 0; x < r.Width(); x++ {
			if got := r.Pixel(x, row.y); got != row.want {
				t.Errorf("pixel(%d,%d) = %v, want %v", x, row.y, got, row.want)
			}
		}
	}

	// The last row sits just before the cyclic return to the start colour.
	last := r.Pixel(0, 299)
	start := p.Color(GradientStart)
	if absDiff(last.R, start.R) > 3 || absDiff(last.G, start.G) > 3 || absDiff(last.B, start.B) > 3 {
		t.Errorf("last row = %v, want close to %v", last, start)
	}
}

func TestRenderGradientErrors(t *testing.T) {
	p := DefaultPalette()
	tests := []struct {
		name   string
		w, h   int
		stops  []GradientStop
		target error
	}{
		{"zero width", 0, 10, BandStops(p), ErrInvalidDimensions},
		{"negative height", 10, -1, BandStops(p), ErrInvalidDimensions},
		{"single stop", 10, 10, []GradientStop{{0, p.Color(Primary)}}, ErrInvalidStops},
		{"not starting at zero", 10, 10, []GradientStop{{0.1, p.Color(Primary)}, {1, p.Color(Accent)}}, ErrInvalidStops},
		{"not ending at one", 10, 10, []GradientStop{{0, p.Color(Primary)}, {0.9, p.Color(Accent)}}, ErrInvalidStops},
		{"not increasing", 10, 10, []GradientStop{{0, p.Color(Primary)}, {0.5, p.Color(Dark)}, {0.5, p.Color(Light)}, {1, p.Color(Accent)}}, ErrInvalidStops},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RenderGradient(tt.w, tt.h, tt.stops)
			if !errors.Is(err, tt.target) {
				t.Errorf("RenderGradient() error = %v, want %v", err, tt.target)
			}
		})
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
