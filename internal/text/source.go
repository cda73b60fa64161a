// Package text loads fonts, measures strings and draws them onto images.
//
// Glyph outlines are rendered with golang.org/x/image/font/opentype. Advance
// widths come from HarfBuzz shaping in github.com/go-text/typesetting so that
// kerning is accounted for when text is centred. The Go fonts are embedded, so
// output never depends on fonts installed on the host.
package text

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontSource is a parsed font file. One FontSource creates faces at any size.
// FontSource is read-only after creation and safe for concurrent use.
type FontSource struct {
	name   string
	parsed *opentype.Font
	shaped *gotext.Font
}

// NewFontSource parses TTF or OTF data.
func NewFontSource(name string, data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse %s: %w", name, err)
	}

	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse %s for shaping: %w", name, err)
	}

	return &FontSource{
		name:   name,
		parsed: parsed,
		shaped: face.Font,
	}, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("text: read font: %w", err)
	}
	return NewFontSource(filepath.Base(path), data)
}

// Name returns the name the source was created with.
func (s *FontSource) Name() string {
	return s.name
}

var (
	regularOnce = sync.OnceValues(func() (*FontSource, error) {
		return NewFontSource("Go Regular", goregular.TTF)
	})
	boldOnce = sync.OnceValues(func() (*FontSource, error) {
		return NewFontSource("Go Bold", gobold.TTF)
	})
)

// Regular returns the embedded Go Regular font.
func Regular() (*FontSource, error) {
	return regularOnce()
}

// Bold returns the embedded Go Bold font.
func Bold() (*FontSource, error) {
	return boldOnce()
}
