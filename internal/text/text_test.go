package text

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func mustFace(t *testing.T, size float64) *Face {
	t.Helper()
	src, err := Regular()
	if err != nil {
		t.Fatalf("Regular() error: %v", err)
	}
	face, err := src.Face(size)
	if err != nil {
		t.Fatalf("Face(%v) error: %v", size, err)
	}
	t.Cleanup(func() { _ = face.Close() })
	return face
}

func TestEmbeddedSources(t *testing.T) {
	tests := []struct {
		name string
		load func() (*FontSource, error)
		want string
	}{
		{"regular", Regular, "Go Regular"},
		{"bold", Bold, "Go Bold"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := tt.load()
			if err != nil {
				t.Fatalf("load error: %v", err)
			}
			if src.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", src.Name(), tt.want)
			}
			again, _ := tt.load()
			if again != src {
				t.Error("embedded source is parsed more than once")
			}
		})
	}
}

func TestNewFontSourceEmpty(t *testing.T) {
	if _, err := NewFontSource("empty", nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
}

func TestNewFontSourceGarbage(t *testing.T) {
	if _, err := NewFontSource("junk", []byte("not a font")); err == nil {
		t.Error("NewFontSource(junk) returned nil error")
	}
}

func TestFaceInvalidSize(t *testing.T) {
	src, err := Bold()
	if err != nil {
		t.Fatal(err)
	}
	for _, size := range []float64{0, -12} {
		if _, err := src.Face(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Face(%v) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestAdvance(t *testing.T) {
	face := mustFace(t, 24)

	if got := face.Advance(""); got != 0 {
		t.Errorf("Advance(\"\") = %v, want 0", got)
	}
	one := face.Advance("H")
	two := face.Advance("HH")
	if one <= 0 {
		t.Fatalf("Advance(H) = %v, want > 0", one)
	}
	if two < 1.9*one || two > 2.1*one {
		t.Errorf("Advance(HH) = %v, want about %v", two, 2*one)
	}

	big := mustFace(t, 48)
	if got := big.Advance("H"); got < 1.9*one || got > 2.1*one {
		t.Errorf("Advance at 48px = %v, want about %v", got, 2*one)
	}
}

func TestMetrics(t *testing.T) {
	m := mustFace(t, 20).Metrics()
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Errorf("Metrics() = %+v, want positive ascent and descent", m)
	}
	if m.LineHeight < m.Ascent {
		t.Errorf("LineHeight %v smaller than Ascent %v", m.LineHeight, m.Ascent)
	}
}

func TestMeasure(t *testing.T) {
	face := mustFace(t, 20)
	if w, h := Measure("", face); w != 0 || h != 0 {
		t.Errorf("Measure(\"\") = (%v, %v), want (0, 0)", w, h)
	}
	w, h := Measure("HeadForge", face)
	if w <= 0 || h <= 0 {
		t.Errorf("Measure(HeadForge) = (%v, %v), want positive", w, h)
	}
}

func TestInkBounds(t *testing.T) {
	face := mustFace(t, 40)
	b := face.InkBounds("H")
	if b.Empty() {
		t.Fatal("InkBounds(H) is empty")
	}
	// Capital letters sit on the baseline and rise above it.
	if b.Min.Y >= 0 || b.Max.Y > 1 {
		t.Errorf("InkBounds(H) = %v, want glyph above baseline", b)
	}
}

func TestDrawPaintsPixels(t *testing.T) {
	face := mustFace(t, 32)
	img := image.NewNRGBA(image.Rect(0, 0, 100, 50))
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	DrawTop(img, "H", face, 10, 5, white)

	painted := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			painted++
		}
	}
	if painted == 0 {
		t.Fatal("DrawTop painted no pixels")
	}
	// Nothing above the ascent box.
	for x := 0; x < 100; x++ {
		for y := 0; y < 5; y++ {
			if img.NRGBAAt(x, y).A != 0 {
				t.Fatalf("pixel (%d, %d) painted above the ascent box", x, y)
			}
		}
	}
}

func TestDrawLines(t *testing.T) {
	face := mustFace(t, 12)
	img := image.NewNRGBA(image.Rect(0, 0, 120, 80))
	DrawLines(img, "A\nB\nC", face, 2, 2, color.Black)

	step := face.Metrics().LineHeight + LineSpacing
	lastTop := int(2 + 2*step)
	found := false
	for x := 0; x < 120 && !found; x++ {
		for y := lastTop; y < 80; y++ {
			if img.NRGBAAt(x, y).A != 0 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("third line was not drawn below the first two")
	}
}

func TestDrawNilFace(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	Draw(img, "x", nil, 0, 0, color.Black)
	DrawTop(img, "x", nil, 0, 0, color.Black)
	DrawLines(img, "x", nil, 0, 0, color.Black)
	for _, v := range img.Pix {
		if v != 0 {
			t.Fatal("drawing with nil face modified the image")
		}
	}
}
