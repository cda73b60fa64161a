package brandkit

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	bkimage "github.com/gogpu/brandkit/internal/image"
)

func TestRenderIconSizes(t *testing.T) {
	logo := solidLogo(512, 512, red)
	for _, size := range DefaultIconSizes {
		r, err := RenderIcon(logo, size)
		if err != nil {
			t.Fatalf("RenderIcon(%d): %v", size, err)
		}
		if r.Width() != size || r.Height() != size {
			t.Errorf("RenderIcon(%d) = %dx%d", size, r.Width(), r.Height())
		}
		if r.Layout() != LayoutRGBA {
			t.Errorf("RenderIcon(%d) layout = %s", size, r.Layout())
		}
	}
}

func TestRenderSquareIconOpaque(t *testing.T) {
	// Transparent border around an opaque core.
	logo, _ := NewRaster(64, 64, LayoutRGBA)
	newCanvas(logo).rect(16, 16, 48, 48, shape{Fill: red})

	primary := DefaultPalette().Color(Primary)
	for _, size := range []int{16, 32, 48} {
		r, err := RenderSquareIcon(logo, size, primary)
		if err != nil {
			t.Fatalf("RenderSquareIcon(%d): %v", size, err)
		}
		if r.Layout() != LayoutRGB || !r.Opaque() {
			t.Errorf("square %d is not opaque RGB", size)
		}
		if got := r.Pixel(0, 0); got != primary {
			t.Errorf("square %d corner = %v, want %v", size, got, primary)
		}
	}
}

func TestRenderSquareIconFullyTransparentLogo(t *testing.T) {
	logo, _ := NewRaster(32, 32, LayoutRGBA)
	bg := color.NRGBA{R: 1, G: 2, B: 3, A: 255}
	r, err := RenderSquareIcon(logo, 16, bg)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if got := r.Pixel(x, y); got != bg {
				t.Fatalf("pixel(%d,%d) = %v, want %v", x, y, got, bg)
			}
		}
	}
}

func TestIconFileNames(t *testing.T) {
	if got := IconFileName(16); got != "icon-16.png" {
		t.Errorf("IconFileName(16) = %q", got)
	}
	if got := SquareIconFileName(48); got != "icon-48-square.png" {
		t.Errorf("SquareIconFileName(48) = %q", got)
	}
}

func TestGenerateIconsEndToEnd(t *testing.T) {
	dir := t.TempDir()
	g, err := New(WithAssetsDir(dir))
	if err != nil {
		t.Fatal(err)
	}

	logo := LogoResult{Image: solidLogo(512, 512, red)}
	artifacts := g.GenerateIcons(logo)
	if len(artifacts) != 11 {
		t.Fatalf("GenerateIcons produced %d artifacts, want 11", len(artifacts))
	}

	squares := 0
	for _, a := range artifacts {
		if !a.OK() {
			t.Errorf("%s failed: %v", a.Path, a.Err)
			continue
		}
		img, err := bkimage.Load(a.Path)
		if err != nil {
			t.Errorf("Load(%s): %v", a.Path, err)
			continue
		}
		if a.Kind == KindSquareIcon {
			squares++
			if !imageOpaque(img) {
				t.Errorf("%s has transparent pixels", a.Path)
			}
		}
		if filepath.Dir(a.Path) != filepath.Join(dir, "icons") {
			t.Errorf("%s written outside the icons directory", a.Path)
		}
	}
	if squares != 3 {
		t.Errorf("square variants = %d, want 3", squares)
	}

	for _, size := range DefaultIconSizes {
		img, err := bkimage.Load(filepath.Join(dir, "icons", IconFileName(size)))
		if err != nil {
			t.Fatalf("icon %d: %v", size, err)
		}
		if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
			t.Errorf("icon %d is %dx%d", size, b.Dx(), b.Dy())
		}
	}
}

// imageOpaque reports whether every pixel of img has full alpha.
func imageOpaque(img image.Image) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}
