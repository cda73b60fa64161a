package brandkit

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	bkimage "github.com/gogpu/brandkit/internal/image"
)

// Output subdirectories.
const (
	iconsDir       = "icons"
	imagesDir      = "images"
	sharedDir      = "shared"
	promotionalDir = "promotional-images"

	// HeaderBannerName is the header banner file name under <assets>/images.
	HeaderBannerName = "banner.png"
)

// Generator produces every artifact of one configuration. It holds no
// mutable state and may be reused.
type Generator struct {
	cfg   Config
	fonts *Fonts
}

// New applies opts over the defaults and validates the result. A malformed
// configuration is reported as a *ConfigError before anything is rendered.
func New(opts ...Option) (*Generator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fonts, err := DefaultFonts()
	if err != nil {
		return nil, fmt.Errorf("brandkit: load fonts: %w", err)
	}
	return &Generator{cfg: cfg, fonts: fonts}, nil
}

// Config returns a copy of the generator configuration.
func (g *Generator) Config() Config {
	cfg := g.cfg
	cfg.IconSizes = append([]int(nil), g.cfg.IconSizes...)
	cfg.Platforms = append([]Platform(nil), g.cfg.Platforms...)
	return cfg
}

// LoadLogo loads the configured master logo, falling back to a placeholder.
func (g *Generator) LoadLogo() LogoResult {
	return LoadLogo(g.cfg.LogoPath, g.cfg.Palette, g.fonts, g.cfg.Brand)
}

// GenerateIcons writes one icon per configured size and an opaque square
// variant for sizes up to SquareIconMaxSize.
func (g *Generator) GenerateIcons(logo LogoResult) []Artifact {
	var out []Artifact
	for _, size := range g.cfg.IconSizes {
		out = append(out, g.emit(g.iconPath(IconFileName(size)), KindIcon, func() (*Raster, error) {
			return RenderIcon(logo.Image, size)
		}))
		if size <= SquareIconMaxSize {
			out = append(out, g.emit(g.iconPath(SquareIconFileName(size)), KindSquareIcon, func() (*Raster, error) {
				return RenderSquareIcon(logo.Image, size, g.cfg.Palette.Color(Primary))
			}))
		}
	}
	return out
}

// GenerateVectorIcon writes icon.svg. The document is decoded before it is
// written; a document that does not decode is not written.
func (g *Generator) GenerateVectorIcon(logo LogoResult) Artifact {
	start := time.Now()
	a := Artifact{Path: g.iconPath(VectorFileName), Kind: KindVectorIcon}

	icon := EmitVectorIcon(logo, g.cfg.Palette, g.cfg.Brand)
	if icon.Fallback {
		Logger().Warn("vector icon uses procedural fallback", "reason", icon.Reason)
	}
	if _, err := ParseVectorIcon(icon.Document); err != nil {
		return g.finish(a, start, err)
	}
	err := bkimage.WriteFile(a.Path, func(w io.Writer) error {
		_, err := io.WriteString(w, icon.Document)
		return err
	})
	return g.finish(a, start, err)
}

// GenerateBanners writes one store banner per configured platform.
func (g *Generator) GenerateBanners(logo LogoResult) []Artifact {
	out := make([]Artifact, 0, len(g.cfg.Platforms))
	for _, p := range g.cfg.Platforms {
		out = append(out, g.emit(g.bannerPath(p.Name), KindBanner, func() (*Raster, error) {
			return ComposeBanner(logo.Image, p.Width, p.Height, g.cfg.Palette, g.fonts, g.cfg.Brand)
		}))
	}
	return out
}

// GenerateHeaderBanner writes the transparent header banner.
func (g *Generator) GenerateHeaderBanner(logo LogoResult) Artifact {
	path := filepath.Join(g.cfg.AssetsDir, imagesDir, HeaderBannerName)
	return g.emit(path, KindHeaderBanner, func() (*Raster, error) {
		return ComposeHeaderBanner(logo.Image, g.cfg.HeaderBannerWidth, g.cfg.HeaderBannerHeight)
	})
}

// GenerateScreenshots writes the popup and options mockups.
func (g *Generator) GenerateScreenshots() []Artifact {
	mockups := []struct {
		name string
		m    *Mockup
	}{
		{PopupScreenshotName, PopupMockup(g.cfg.Palette, g.fonts, g.cfg.Brand)},
		{OptionsScreenshotName, OptionsMockup(g.cfg.Palette, g.fonts, g.cfg.Brand)},
	}
	out := make([]Artifact, 0, len(mockups))
	for _, mk := range mockups {
		out = append(out, g.emit(g.promotionalPath(mk.name), KindScreenshot, mk.m.Render))
	}
	return out
}

// GenerateAll loads the logo once and produces every artifact.
func (g *Generator) GenerateAll() *Report {
	r := &Report{Logo: g.LoadLogo()}
	r.Add(g.GenerateIcons(r.Logo)...)
	r.Add(g.GenerateVectorIcon(r.Logo))
	r.Add(g.GenerateBanners(r.Logo)...)
	r.Add(g.GenerateHeaderBanner(r.Logo))
	r.Add(g.GenerateScreenshots()...)

	Logger().Info("generation complete",
		"written", len(r.Succeeded()),
		"failed", len(r.Failed()),
		"placeholder", r.Logo.Placeholder)
	return r
}

func (g *Generator) iconPath(name string) string {
	return filepath.Join(g.cfg.AssetsDir, iconsDir, name)
}

func (g *Generator) bannerPath(platform string) string {
	if platform == SharedPlatform {
		return g.promotionalPath(BannerFileName(platform))
	}
	return filepath.Join(g.cfg.StoreDir, platform, BannerFileName(platform))
}

func (g *Generator) promotionalPath(name string) string {
	return filepath.Join(g.cfg.StoreDir, sharedDir, promotionalDir, name)
}

// emit renders one raster artifact and saves it to path.
func (g *Generator) emit(path string, kind Kind, render func() (*Raster, error)) Artifact {
	start := time.Now()
	a := Artifact{Path: path, Kind: kind}

	r, err := render()
	if err != nil {
		return g.finish(a, start, fmt.Errorf("render %s: %w", kind, err))
	}
	return g.finish(a, start, r.SavePNG(path))
}

func (g *Generator) finish(a Artifact, start time.Time, err error) Artifact {
	a.Err = err
	Logger().Debug("artifact", "kind", a.Kind.String(), "path", a.Path, "elapsed", time.Since(start))
	if err != nil {
		Logger().Warn("artifact failed", "kind", a.Kind.String(), "path", a.Path, "err", err)
		return a
	}
	Logger().Info("artifact written", "kind", a.Kind.String(), "path", a.Path)
	return a
}
