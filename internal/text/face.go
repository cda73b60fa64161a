package text

import (
	"image"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Metrics holds vertical font metrics in pixels.
type Metrics struct {
	Ascent     float64
	Descent    float64
	LineHeight float64
}

// Face is a font source at a fixed pixel size.
//
// Face is not safe for concurrent use: both the glyph rasterizer and the
// shaper keep mutable scratch state.
type Face struct {
	source *FontSource
	size   float64
	glyphs font.Face
	shaper shaping.HarfbuzzShaper
}

// Face creates a face at size pixels (72 DPI, so points equal pixels).
func (s *FontSource) Face(size float64) (*Face, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	glyphs, err := opentype.NewFace(s.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	return &Face{source: s, size: size, glyphs: glyphs}, nil
}

// Size returns the face size in pixels.
func (f *Face) Size() float64 {
	return f.size
}

// Source returns the font the face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Metrics returns the vertical metrics of the face.
func (f *Face) Metrics() Metrics {
	m := f.glyphs.Metrics()
	return Metrics{
		Ascent:     fixedToFloat(m.Ascent),
		Descent:    fixedToFloat(m.Descent),
		LineHeight: fixedToFloat(m.Height),
	}
}

// Advance returns the shaped horizontal advance of s in pixels.
func (f *Face) Advance(s string) float64 {
	if s == "" {
		return 0
	}
	runes := []rune(s)
	out := f.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(f.source.shaped),
		Size:      floatToFixed(f.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})
	return fixedToFloat(out.Advance)
}

// InkBounds returns the pixel bounds of the glyphs of s drawn with the
// baseline origin at (0, 0).
func (f *Face) InkBounds(s string) image.Rectangle {
	b, _ := font.BoundString(f.glyphs, s)
	return image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
}

// Close releases the glyph rasterizer.
func (f *Face) Close() error {
	return f.glyphs.Close()
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
