package brandkit

// Option configures a Generator during creation.
//
// Example:
//
//	g, err := brandkit.New(
//	    brandkit.WithLogoPath("art/logo.png"),
//	    brandkit.WithStoreDir("dist/store"),
//	)
type Option func(*Config)

// WithLogoPath sets the master logo location. A missing file is not an
// error: the generator falls back to a placeholder logo.
func WithLogoPath(path string) Option {
	return func(c *Config) {
		c.LogoPath = path
	}
}

// WithAssetsDir sets the root for icons and the header banner.
func WithAssetsDir(dir string) Option {
	return func(c *Config) {
		c.AssetsDir = dir
	}
}

// WithStoreDir sets the root for store banners and screenshots.
func WithStoreDir(dir string) Option {
	return func(c *Config) {
		c.StoreDir = dir
	}
}

// WithPalette replaces the palette.
func WithPalette(p Palette) Option {
	return func(c *Config) {
		c.Palette = p
	}
}

// WithBrand replaces the brand strings.
func WithBrand(b Brand) Option {
	return func(c *Config) {
		c.Brand = b
	}
}

// WithIconSizes replaces the icon size table.
func WithIconSizes(sizes ...int) Option {
	return func(c *Config) {
		c.IconSizes = append([]int(nil), sizes...)
	}
}

// WithPlatforms replaces the platform table.
func WithPlatforms(platforms ...Platform) Option {
	return func(c *Config) {
		c.Platforms = append([]Platform(nil), platforms...)
	}
}

// WithHeaderBannerSize sets the header banner dimensions.
func WithHeaderBannerSize(width, height int) Option {
	return func(c *Config) {
		c.HeaderBannerWidth = width
		c.HeaderBannerHeight = height
	}
}
