package brandkit

// Header banner padding: the logo fits inside the banner shrunk by these
// amounts.
const (
	headerPadX = 60
	headerPadY = 20
)

// ComposeHeaderBanner renders the transparent width×height banner shown at
// the top of the extension popup. The logo is fitted inside
// (width-60)×(height-20) with its aspect ratio preserved and centred.
func ComposeHeaderBanner(logo *Raster, width, height int) (*Raster, error) {
	if width <= headerPadX || height <= headerPadY {
		return nil, ErrInvalidDimensions
	}
	w, h := FitSize(logo.Width(), logo.Height(), width-headerPadX, height-headerPadY)
	fitted, err := Resample(logo, w, h)
	if err != nil {
		return nil, err
	}

	banner, err := NewRaster(width, height, LayoutRGBA)
	if err != nil {
		return nil, err
	}
	newCanvas(banner).composite(fitted, (width-w)/2, (height-h)/2)
	return banner, nil
}
