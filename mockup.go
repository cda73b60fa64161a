package brandkit

import (
	"fmt"
	"image/color"

	"github.com/gogpu/brandkit/internal/text"
)

// ElementKind selects how an Element is drawn.
type ElementKind uint8

const (
	// ElementBox is a rectangle with an optional inner stroke.
	ElementBox ElementKind = iota
	// ElementOval is an ellipse inscribed in its box.
	ElementOval
	// ElementLabel is text with the top of its first line at (X0, Y0).
	ElementLabel
)

// Element is one drawing instruction of a Mockup. Boxes and ovals use the
// half-open box [X0, X1)×[Y0, Y1); labels use only X0 and Y0.
type Element struct {
	Kind ElementKind

	X0, Y0, X1, Y1 float64

	Fill        color.NRGBA
	Stroke      color.NRGBA
	StrokeWidth float64

	Text     string
	Font     FontStyle
	FontSize float64
}

// Box returns a rectangle element.
func Box(x0, y0, x1, y1 float64, fill color.NRGBA) Element {
	return Element{Kind: ElementBox, X0: x0, Y0: y0, X1: x1, Y1: y1, Fill: fill}
}

// Oval returns an ellipse element inscribed in the given box.
func Oval(x0, y0, x1, y1 float64, fill color.NRGBA) Element {
	return Element{Kind: ElementOval, X0: x0, Y0: y0, X1: x1, Y1: y1, Fill: fill}
}

// Label returns a text element. Newlines in s start new lines.
func Label(x, y float64, s string, style FontStyle, size float64, col color.NRGBA) Element {
	return Element{Kind: ElementLabel, X0: x, Y0: y, Text: s, Font: style, FontSize: size, Fill: col}
}

// Outlined returns a copy of e with an inner stroke.
func (e Element) Outlined(col color.NRGBA, width float64) Element {
	e.Stroke = col
	e.StrokeWidth = width
	return e
}

// Mockup is a declarative UI screenshot: an opaque background and the
// elements drawn over it in order.
type Mockup struct {
	Width      int
	Height     int
	Background color.NRGBA
	Elements   []Element
	Fonts      *Fonts
}

// Add appends elements.
func (m *Mockup) Add(e ...Element) {
	m.Elements = append(m.Elements, e...)
}

// Render draws the mockup into a new RGB raster.
func (m *Mockup) Render() (*Raster, error) {
	r, err := newFilledRaster(m.Width, m.Height, opaque(m.Background))
	if err != nil {
		return nil, err
	}
	c := newCanvas(r)

	type faceKey struct {
		style FontStyle
		size  float64
	}
	faces := make(map[faceKey]*text.Face)
	defer func() {
		for _, f := range faces {
			_ = f.Close()
		}
	}()

	for i, e := range m.Elements {
		s := shape{Fill: e.Fill, Stroke: e.Stroke, StrokeWidth: e.StrokeWidth}
		switch e.Kind {
		case ElementBox:
			c.rect(e.X0, e.Y0, e.X1, e.Y1, s)
		case ElementOval:
			c.oval(e.X0, e.Y0, e.X1, e.Y1, s)
		case ElementLabel:
			key := faceKey{e.Font, e.FontSize}
			face, ok := faces[key]
			if !ok {
				face, err = m.Fonts.face(e.Font, e.FontSize)
				if err != nil {
					return nil, fmt.Errorf("element %d: %w", i, err)
				}
				faces[key] = face
			}
			c.label(e.Text, face, e.X0, e.Y0, e.Fill)
		default:
			return nil, fmt.Errorf("element %d: unknown kind %d", i, e.Kind)
		}
	}
	return r, nil
}

func opaque(c color.NRGBA) color.NRGBA {
	c.A = 0xff
	return c
}

// column hands out vertical slots: each slot starts at the running offset,
// which then advances by the slot height plus spacing.
type column struct {
	offset  float64
	spacing float64
}

func (c *column) next(height float64) float64 {
	y := c.offset
	c.offset += height + c.spacing
	return y
}

// Screenshot file names.
const (
	PopupScreenshotName   = "popup-screenshot.png"
	OptionsScreenshotName = "options-screenshot.png"
)

// PopupFields are the form field labels of the popup mockup.
var PopupFields = []string{"File Name", "Project", "Author", "Version", "Language"}

// OptionsSections are the section titles of the options mockup.
var OptionsSections = []string{"General Settings", "Behavior Settings", "Export Settings", "Theme Settings"}

const popupPreview = "/*\n * sample-file.js\n * My Project\n * @author Developer\n */"

// PopupMockup lays out the 400×600 extension popup: a primary header with a
// logo disc and title, five form fields, a dark code preview and a
// "Generate Header" button.
func PopupMockup(p Palette, fonts *Fonts, brand Brand) *Mockup {
	const (
		width, height = 400, 600
		header        = 60
		logo          = 32
		logoX         = 20
		fieldHeight   = 40
		fieldSpacing  = 10
		fontSize      = 20
		margin        = 20
	)
	m := &Mockup{Width: width, Height: height, Background: p.Color(Light), Fonts: fonts}
	white, dark := p.Color(White), p.Color(Dark)

	logoY := float64((header - logo) / 2)
	m.Add(
		Box(0, 0, width, header, p.Color(Primary)),
		Oval(logoX, logoY, logoX+logo, logoY+logo, white),
		Label(logoX+logo+10, logoY+5, brand.Title, FontRegular, fontSize, white),
	)

	fields := column{offset: header + 20, spacing: fieldSpacing}
	for _, name := range PopupFields {
		y := fields.next(fieldHeight)
		m.Add(
			Box(margin, y, width-margin, y+fieldHeight, white).Outlined(p.Color(Secondary), 1),
			Label(margin+5, y+5, name, FontRegular, fontSize, dark),
		)
	}

	previewY := fields.offset + 20
	m.Add(
		Box(margin, previewY, width-margin, height-80, dark).Outlined(p.Color(Primary), 2),
		Label(margin+5, previewY+10, popupPreview, FontRegular, fontSize, white),
	)

	buttonY := float64(height - 60)
	m.Add(
		Box(margin, buttonY, width-margin, buttonY+40, p.Color(Success)),
		Label(width/2-50, buttonY+10, "Generate Header", FontRegular, fontSize, white),
	)
	return m
}

// OptionsMockup lays out the 800×600 options page: a primary header with a
// logo disc, title and subtitle, and four settings sections of three items
// each. The last section runs past the bottom edge and is clipped.
func OptionsMockup(p Palette, fonts *Fonts, brand Brand) *Mockup {
	const (
		width, height  = 800, 600
		header         = 80
		logo           = 48
		logoX          = 20
		sectionHeight  = 120
		sectionSpacing = 20
		itemHeight     = 20
		itemSpacing    = 5
		titleSize      = 24
		subtitleSize   = 14
	)
	m := &Mockup{Width: width, Height: height, Background: p.Color(Light), Fonts: fonts}
	white, dark, light := p.Color(White), p.Color(Dark), p.Color(Light)
	secondary := p.Color(Secondary)

	logoY := float64((header - logo) / 2)
	textX := float64(logoX + logo + 15)
	m.Add(
		Box(0, 0, width, header, p.Color(Primary)),
		Oval(logoX, logoY, logoX+logo, logoY+logo, white),
		Label(textX, logoY, brand.Title+" Settings", FontRegular, titleSize, white),
		Label(textX, logoY+30, "Configure your preferences", FontRegular, subtitleSize, white),
	)

	sections := column{offset: header + 20, spacing: sectionSpacing}
	for _, title := range OptionsSections {
		y := sections.next(sectionHeight)
		m.Add(
			Box(20, y, width-20, y+sectionHeight, white).Outlined(secondary, 1),
			Label(30, y+10, title, FontRegular, titleSize, dark),
		)

		items := column{offset: y + 40, spacing: itemSpacing}
		for i := range 3 {
			iy := items.next(itemHeight)
			m.Add(
				Box(30, iy, width-30, iy+itemHeight, light).Outlined(secondary, 1),
				Label(35, iy+2, fmt.Sprintf("Setting %d", i+1), FontRegular, subtitleSize, dark),
			)
		}
	}
	return m
}
