package brandkit

import (
	"fmt"
)

// Banner layout constants.
const (
	bannerLogoLift      = 20
	bannerHaloMargin    = 20
	bannerHaloStroke    = 3
	bannerTitleSize     = 48
	bannerSubtitleSize  = 24
	bannerTitleOffset   = 60
	bannerLineGap       = 60
	bannerTitleShadow   = 2
	bannerSubtitleShade = 1
	bannerDotRadius     = 8
	bannerDotStroke     = 2
	bannerDotCount      = 5
)

// ComposeBanner renders a width×height store banner: the band gradient, the
// logo on a white halo, the brand title and subtitle with drop shadows, and
// two rows of decorative dots. The result is opaque.
func ComposeBanner(logo *Raster, width, height int, p Palette, fonts *Fonts, brand Brand) (*Raster, error) {
	banner, err := RenderGradient(width, height, BandStops(p))
	if err != nil {
		return nil, err
	}
	c := newCanvas(banner)

	size := min(width, height) / 4
	logoX := (width - size) / 2
	logoY := (height-size)/2 - bannerLogoLift
	if size > 0 {
		haloX := float64(logoX - bannerHaloMargin/2)
		haloY := float64(logoY - bannerHaloMargin/2)
		halo := float64(size + bannerHaloMargin)
		c.oval(haloX, haloY, haloX+halo, haloY+halo, shape{
			Fill:        p.Color(White),
			Stroke:      p.Color(Primary),
			StrokeWidth: bannerHaloStroke,
		})

		icon, err := Resample(logo, size, size)
		if err != nil {
			return nil, fmt.Errorf("banner logo: %w", err)
		}
		c.composite(icon, logoX, logoY)
	}

	if err := bannerText(c, width, height, p, fonts, brand); err != nil {
		return nil, err
	}
	bannerDots(c, width, height, p)
	return banner, nil
}

func bannerText(c canvas, width, height int, p Palette, fonts *Fonts, brand Brand) error {
	titleFace, err := fonts.face(FontBold, bannerTitleSize)
	if err != nil {
		return err
	}
	defer func() { _ = titleFace.Close() }()

	subFace, err := fonts.face(FontRegular, bannerSubtitleSize)
	if err != nil {
		return err
	}
	defer func() { _ = subFace.Close() }()

	white, black := p.Color(White), p.Color(Black)

	titleY := height/2 + bannerTitleOffset
	titleX := (width - int(titleFace.Advance(brand.Title))) / 2
	c.shadowLabel(brand.Title, titleFace, float64(titleX), float64(titleY), bannerTitleShadow, white, black)

	if brand.Subtitle != "" {
		subY := titleY + bannerLineGap
		subX := (width - int(subFace.Advance(brand.Subtitle))) / 2
		c.shadowLabel(brand.Subtitle, subFace, float64(subX), float64(subY), bannerSubtitleShade, white, black)
	}
	return nil
}

func bannerDots(c canvas, width, height int, p Palette) {
	s := shape{
		Fill:        p.Color(White),
		Stroke:      p.Color(Primary),
		StrokeWidth: bannerDotStroke,
	}
	r := float64(bannerDotRadius)
	for _, y := range [2]int{height / 8, height - height/8} {
		for i := range bannerDotCount {
			x := float64((width / 6) * (i + 1))
			c.oval(x-r, float64(y)-r, x+r, float64(y)+r, s)
		}
	}
}

// BannerFileName returns "banner-{platform}.png".
func BannerFileName(platform string) string {
	return "banner-" + platform + ".png"
}
