package brandkit

import (
	"math"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	bkimage "github.com/gogpu/brandkit/internal/image"
	"github.com/gogpu/brandkit/internal/text"
)

// PlaceholderSize is the edge length of the synthesized logo.
const PlaceholderSize = 512

// placeholderStroke is the white border width of the placeholder square.
const placeholderStroke = 4

// LogoResult is the outcome of loading the master logo. Image is never nil.
// When the file could not be used, Placeholder is true and Reason holds the
// load error.
type LogoResult struct {
	Image       *Raster
	Placeholder bool
	Reason      error
}

// LoadLogo decodes the logo at path and normalises it to RGBA. Any open or
// decode failure yields a placeholder logo instead of an error.
func LoadLogo(path string, p Palette, fonts *Fonts, brand Brand) LogoResult {
	img, err := bkimage.Load(path)
	if err == nil {
		return LogoResult{Image: normalize(img)}
	}

	Logger().Warn("logo unavailable, using placeholder", "path", path, "err", err)
	placeholder, perr := PlaceholderLogo(p, fonts, brand, PlaceholderSize)
	if perr != nil {
		// Fonts failed; an unlabelled square still satisfies callers.
		Logger().Warn("placeholder label unavailable", "err", perr)
		placeholder = placeholderSquare(p, PlaceholderSize)
	}
	return LogoResult{Image: placeholder, Placeholder: true, Reason: err}
}

// PlaceholderLogo synthesizes a size×size logo: a primary-coloured square
// inset by size/8 with a white border and the brand's initial in white,
// centred. The output depends only on its arguments.
func PlaceholderLogo(p Palette, fonts *Fonts, brand Brand, size int) (*Raster, error) {
	if size <= 0 {
		return nil, ErrInvalidDimensions
	}
	r := placeholderSquare(p, size)

	glyph := placeholderGlyph(brand.Title)
	if glyph == "" {
		return r, nil
	}
	face, err := fonts.face(FontBold, float64(size/3))
	if err != nil {
		return nil, err
	}
	defer func() { _ = face.Close() }()

	ink := face.InkBounds(glyph)
	x := float64((size-ink.Dx())/2 - ink.Min.X)
	y := float64((size-ink.Dy())/2 - ink.Min.Y)
	text.Draw(r.img, glyph, face, x, y, p.Color(White))
	return r, nil
}

func placeholderSquare(p Palette, size int) *Raster {
	r, _ := NewRaster(size, size, LayoutRGBA)
	margin := float64(size / 8)
	edge := float64(size) - margin
	newCanvas(r).rect(margin, margin, edge, edge, shape{
		Fill:        p.Color(Primary),
		Stroke:      p.Color(White),
		StrokeWidth: math.Min(placeholderStroke, float64(size)/16),
	})
	return r
}

// placeholderGlyph returns the upper-cased first letter of title.
func placeholderGlyph(title string) string {
	r, n := utf8.DecodeRuneInString(title)
	if n == 0 || r == utf8.RuneError {
		return ""
	}
	return cases.Upper(language.Und).String(string(r))
}
