package brandkit

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/srwiley/oksvg"
)

// VectorIconSize is the edge length of the SVG icon and its embedded raster.
const VectorIconSize = 128

// VectorFileName is the SVG icon file name.
const VectorFileName = "icon.svg"

// errPlaceholderLogo is the fallback reason when there is no real logo.
var errPlaceholderLogo = errors.New("brandkit: master logo unavailable")

// VectorIcon is the emitted SVG document. When Fallback is true the
// document is the procedural wordmark variant and Reason says why the raster
// embed was not used.
type VectorIcon struct {
	Document string
	Fallback bool
	Reason   error
}

type vectorData struct {
	Size      int
	Stops     [3]string
	Image     string
	Wordmark  [2]string
	Dots      [4][2]int
	TextColor string
}

var vectorTemplate = template.Must(template.New("icon.svg").Parse(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="{{.Size}}" height="{{.Size}}" viewBox="0 0 {{.Size}} {{.Size}}" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <linearGradient id="gradient" x1="0%" y1="0%" x2="100%" y2="100%">
      <stop offset="0%" stop-color="{{index .Stops 0}}" stop-opacity="1"/>
      <stop offset="50%" stop-color="{{index .Stops 1}}" stop-opacity="1"/>
      <stop offset="100%" stop-color="{{index .Stops 2}}" stop-opacity="1"/>
    </linearGradient>
  </defs>
  <rect width="{{.Size}}" height="{{.Size}}" rx="20" fill="url(#gradient)"/>
{{- if .Image}}
  <image x="0" y="0" width="{{.Size}}" height="{{.Size}}" href="data:image/png;base64,{{.Image}}"/>
{{- else}}
  <text x="64" y="45" font-family="Arial, sans-serif" font-size="24" font-weight="bold" text-anchor="middle" fill="{{.TextColor}}">{{index .Wordmark 0 | html}}</text>
  <text x="64" y="75" font-family="Arial, sans-serif" font-size="24" font-weight="bold" text-anchor="middle" fill="{{.TextColor}}">{{index .Wordmark 1 | html}}</text>
{{- range .Dots}}
  <circle cx="{{index . 0}}" cy="{{index . 1}}" r="3" fill="{{$.TextColor}}" opacity="0.6"/>
{{- end}}
{{- end}}
</svg>
`))

// fallbackDots are the decorative dot centres near the icon corners.
var fallbackDots = [4][2]int{{32, 32}, {96, 32}, {32, 96}, {96, 96}}

// EmitVectorIcon builds the SVG icon. A real logo is resampled to 128×128
// and embedded as base64 PNG over the gradient background; a placeholder
// logo, or any failure to encode the raster, yields the procedural variant.
func EmitVectorIcon(logo LogoResult, p Palette, brand Brand) VectorIcon {
	data := vectorData{
		Size:      VectorIconSize,
		Stops:     [3]string{p.Hex(Primary), p.Hex(Secondary), p.Hex(Accent)},
		TextColor: p.Hex(White),
	}

	reason := logo.Reason
	if logo.Placeholder || logo.Image == nil {
		if reason == nil {
			reason = errPlaceholderLogo
		}
	} else {
		payload, err := embedPayload(logo.Image)
		if err == nil {
			data.Image = payload
			doc, err := renderVector(data)
			if err == nil {
				return VectorIcon{Document: doc}
			}
			reason = err
		} else {
			reason = err
		}
	}

	data.Image = ""
	data.Wordmark = brand.Wordmark
	data.Dots = fallbackDots
	doc, err := renderVector(data)
	if err != nil {
		// strings.Builder does not fail and the fallback data is static.
		panic(err)
	}
	return VectorIcon{Document: doc, Fallback: true, Reason: reason}
}

// embedPayload resamples the logo and returns it as base64 PNG.
func embedPayload(logo *Raster) (string, error) {
	r, err := Resample(logo, VectorIconSize, VectorIconSize)
	if err != nil {
		return "", fmt.Errorf("resample logo: %w", err)
	}
	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func renderVector(data vectorData) (string, error) {
	var sb strings.Builder
	if err := vectorTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("brandkit: render svg: %w", err)
	}
	return sb.String(), nil
}

// ParseVectorIcon decodes doc as SVG. Elements the decoder does not draw
// (text, embedded images) are skipped rather than rejected.
func ParseVectorIcon(doc string) (*oksvg.SvgIcon, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(doc), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("brandkit: decode svg: %w", err)
	}
	return icon, nil
}
