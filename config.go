package brandkit

import (
	"fmt"
	"path/filepath"
)

// SquareIconMaxSize is the largest icon edge that also gets an opaque
// "-square" variant.
const SquareIconMaxSize = 48

// DefaultIconSizes is the icon size table, smallest first.
var DefaultIconSizes = []int{16, 32, 48, 64, 96, 128, 256, 512}

// SharedPlatform is written to the shared promotional directory instead of a
// per-platform directory.
const SharedPlatform = "promotional"

// Platform is one store listing with its banner dimensions.
type Platform struct {
	Name   string
	Width  int
	Height int
}

// DefaultPlatforms is the platform table in output order.
var DefaultPlatforms = []Platform{
	{Name: "chrome", Width: 1280, Height: 800},
	{Name: "firefox", Width: 1260, Height: 600},
	{Name: "edge", Width: 1280, Height: 720},
	{Name: SharedPlatform, Width: 1920, Height: 1080},
}

// Brand holds the fixed strings drawn into artifacts.
type Brand struct {
	// Title is the product name. Its first letter is the placeholder glyph.
	Title string
	// Subtitle is drawn under the title on store banners.
	Subtitle string
	// Wordmark is the two-line name used by the procedural vector icon.
	Wordmark [2]string
}

// DefaultBrand returns the built-in brand strings.
func DefaultBrand() Brand {
	return Brand{
		Title:    "HeadForge",
		Subtitle: "Professional Code Header Generator",
		Wordmark: [2]string{"Head", "Forge"},
	}
}

// Default locations, relative to the working directory.
const (
	DefaultLogoPath  = "src/assets/images/logo.png"
	DefaultAssetsDir = "src/assets"
	DefaultStoreDir  = "store"
)

// Default header banner size.
const (
	DefaultHeaderBannerWidth  = 600
	DefaultHeaderBannerHeight = 100
)

// Config is the validated configuration of one generation run.
type Config struct {
	LogoPath  string
	AssetsDir string
	StoreDir  string

	Palette   Palette
	Brand     Brand
	IconSizes []int
	Platforms []Platform

	HeaderBannerWidth  int
	HeaderBannerHeight int
}

func defaultConfig() Config {
	return Config{
		LogoPath:           DefaultLogoPath,
		AssetsDir:          DefaultAssetsDir,
		StoreDir:           DefaultStoreDir,
		Palette:            DefaultPalette(),
		Brand:              DefaultBrand(),
		IconSizes:          append([]int(nil), DefaultIconSizes...),
		Platforms:          append([]Platform(nil), DefaultPlatforms...),
		HeaderBannerWidth:  DefaultHeaderBannerWidth,
		HeaderBannerHeight: DefaultHeaderBannerHeight,
	}
}

// Validate reports the first malformed entry as a *ConfigError.
func (c *Config) Validate() error {
	if c.AssetsDir == "" {
		return &ConfigError{Field: "assets_dir", Reason: "empty"}
	}
	if c.StoreDir == "" {
		return &ConfigError{Field: "store_dir", Reason: "empty"}
	}

	if len(c.IconSizes) == 0 {
		return &ConfigError{Field: "icon_sizes", Reason: "empty"}
	}
	seenSize := make(map[int]bool, len(c.IconSizes))
	for _, s := range c.IconSizes {
		if s <= 0 {
			return &ConfigError{Field: "icon_sizes", Reason: fmt.Sprintf("non-positive size %d", s)}
		}
		if seenSize[s] {
			return &ConfigError{Field: "icon_sizes", Reason: fmt.Sprintf("duplicate size %d", s)}
		}
		seenSize[s] = true
	}

	if len(c.Platforms) == 0 {
		return &ConfigError{Field: "platforms", Reason: "empty"}
	}
	seenPlatform := make(map[string]bool, len(c.Platforms))
	for _, p := range c.Platforms {
		if p.Name == "" || p.Name != filepath.Base(p.Name) || p.Name == "." || p.Name == ".." {
			return &ConfigError{Field: "platforms", Reason: fmt.Sprintf("invalid name %q", p.Name)}
		}
		if p.Width <= 0 || p.Height <= 0 {
			return &ConfigError{
				Field:  "platforms." + p.Name,
				Reason: fmt.Sprintf("non-positive dimensions %dx%d", p.Width, p.Height),
			}
		}
		if seenPlatform[p.Name] {
			return &ConfigError{Field: "platforms", Reason: fmt.Sprintf("duplicate platform %q", p.Name)}
		}
		seenPlatform[p.Name] = true
	}

	if c.HeaderBannerWidth <= headerPadX || c.HeaderBannerHeight <= headerPadY {
		return &ConfigError{
			Field: "header_banner",
			Reason: fmt.Sprintf("dimensions %dx%d leave no room for the logo",
				c.HeaderBannerWidth, c.HeaderBannerHeight),
		}
	}

	if c.Brand.Title == "" {
		return &ConfigError{Field: "brand.title", Reason: "empty"}
	}
	if c.Brand.Wordmark[0] == "" && c.Brand.Wordmark[1] == "" {
		return &ConfigError{Field: "brand.wordmark", Reason: "empty"}
	}
	return nil
}
