package brandkit

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorName is one of the fixed semantic palette entries.
type ColorName uint8

// Semantic colour names.
const (
	Primary ColorName = iota
	Secondary
	Accent
	Success
	Warning
	Error
	Info
	Light
	Dark
	White
	Black
	GradientStart
	GradientMid
	GradientEnd

	colorNameCount
)

var colorNames = [colorNameCount]string{
	Primary:       "primary",
	Secondary:     "secondary",
	Accent:        "accent",
	Success:       "success",
	Warning:       "warning",
	Error:         "error",
	Info:          "info",
	Light:         "light",
	Dark:          "dark",
	White:         "white",
	Black:         "black",
	GradientStart: "gradient_start",
	GradientMid:   "gradient_mid",
	GradientEnd:   "gradient_end",
}

// String returns the palette key, e.g. "gradient_start".
func (n ColorName) String() string {
	if n >= colorNameCount {
		return fmt.Sprintf("ColorName(%d)", uint8(n))
	}
	return colorNames[n]
}

// ColorNames returns every palette name in declaration order.
func ColorNames() []ColorName {
	names := make([]ColorName, colorNameCount)
	for i := range names {
		names[i] = ColorName(i)
	}
	return names
}

// defaultHex is the built-in palette.
var defaultHex = map[string]string{
	"primary":        "#667eea",
	"secondary":      "#764ba2",
	"accent":         "#f093fb",
	"success":        "#22c55e",
	"warning":        "#f59e0b",
	"error":          "#ef4444",
	"info":           "#06b6d4",
	"light":          "#f8fafc",
	"dark":           "#1e293b",
	"white":          "#ffffff",
	"black":          "#0f172a",
	"gradient_start": "#667eea",
	"gradient_mid":   "#764ba2",
	"gradient_end":   "#f093fb",
}

// Palette maps every ColorName to an opaque colour. The zero value is all
// transparent black; use DefaultPalette or ParsePalette.
type Palette struct {
	colors [colorNameCount]color.NRGBA
}

// DefaultPalette returns the built-in palette.
func DefaultPalette() Palette {
	p, err := ParsePalette(defaultHex)
	if err != nil {
		panic(err) // defaultHex is a compile-time constant table
	}
	return p
}

// ParsePalette builds a palette from "#rrggbb" strings keyed by palette name.
// Every name must be present and no other keys are accepted.
func ParsePalette(hex map[string]string) (Palette, error) {
	var p Palette
	byName := make(map[string]ColorName, colorNameCount)
	for _, n := range ColorNames() {
		byName[n.String()] = n
	}

	keys := make([]string, 0, len(hex))
	for k := range hex {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, ok := byName[k]; !ok {
			return Palette{}, fmt.Errorf("%w: %q", ErrUnknownColor, k)
		}
	}

	for _, n := range ColorNames() {
		s, ok := hex[n.String()]
		if !ok {
			return Palette{}, &ConfigError{Field: "palette." + n.String(), Reason: "missing"}
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return Palette{}, &ConfigError{Field: "palette." + n.String(), Reason: err.Error()}
		}
		r, g, b := c.RGB255()
		p.colors[n] = color.NRGBA{R: r, G: g, B: b, A: 0xff}
	}
	return p, nil
}

// Color returns the colour for n. Unknown names return transparent black.
func (p Palette) Color(n ColorName) color.NRGBA {
	if n >= colorNameCount {
		return color.NRGBA{}
	}
	return p.colors[n]
}

// Hex returns the colour for n as "#rrggbb".
func (p Palette) Hex(n ColorName) string {
	c := p.Color(n)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
