package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
)

var (
	headerNavItems  = []string{"Home", "About", "Services", "Contact"}
	bottomNavTabs   = []string{"Home", "Search", "Profile", "More"}
	sidebarNavItems = []string{"Dashboard", "Analytics", "Users", "Settings"}
	footerLinks     = []string{"Privacy", "Terms", "Contact", "About"}
)

// PNGRenderer rasterizes a layout into the bitmap the client previews.
// Everything is drawn with a fixed bitmap font and solid fills, so the
// output is deterministic across platforms.
type PNGRenderer struct {
	face font.Face
}

func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{face: basicfont.Face7x13}
}

func (r *PNGRenderer) Render(layout models.Layout, style models.Style) ([]byte, error) {
	c := newCanvas(layout.Width, layout.Height, PaletteFor(style), r.face)

	for _, component := range layout.Components {
		c.drawComponent(component, layout.Width)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, c.img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderBase64 returns the PNG bytes in the encoding the API ships to
// clients.
func (r *PNGRenderer) RenderBase64(layout models.Layout, style models.Style) (string, error) {
	data, err := r.Render(layout, style)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

func (c *canvas) drawComponent(comp models.Component, canvasWidth int) {
	if comp.Width <= 0 || comp.Height <= 0 {
		return
	}

	switch comp.Type {
	case models.ComponentHeader:
		c.drawHeader(comp, canvasWidth)
	case models.ComponentNavigation:
		c.drawNavigation(comp)
	case models.ComponentHero:
		c.drawHero(comp)
	case models.ComponentContent:
		c.drawContent(comp)
	case models.ComponentSidebar:
		c.drawSidebar(comp)
	case models.ComponentFooter:
		c.drawFooter(comp)
	case models.ComponentForm:
		c.drawFormField(comp)
	case models.ComponentButton:
		c.drawButton(comp)
	case models.ComponentCard:
		c.drawCard(comp)
	case models.ComponentChart:
		c.drawChart(comp)
	default:
		c.drawGeneric(comp)
	}

	// Annotation above the component, clipped away on the top row.
	c.text(comp.X, comp.Y-16, comp.Label, c.palette.Accent)
}

func (c *canvas) drawHeader(comp models.Component, canvasWidth int) {
	x, y, w, h := comp.X, comp.Y, comp.Width, comp.Height

	if comp.Label == "Status Bar" {
		c.fillRect(x, y, w, h, c.palette.Bg)
		c.strokeRect(x, y, w, h, c.palette.LineWidth, c.palette.Border)
		return
	}

	c.strokeRect(x, y, w, h, c.palette.LineWidth, c.palette.Border)

	// Full-width headers carry a logo box and menu items; centered ones
	// (form titles) stay plain.
	if x == 0 && w == canvasWidth {
		logoW := min(120, w/4)
		c.strokeRect(x+16, y+12, logoW, h-24, 1, c.palette.Accent)
		c.text(x+20, y+h/2-6, "LOGO", c.palette.Text)

		const itemWidth = 80
		startX := x + w - len(headerNavItems)*itemWidth - 20
		for i, item := range headerNavItems {
			c.text(startX+i*itemWidth, y+h/2-6, item, c.palette.Text)
		}
	}
}

func (c *canvas) drawNavigation(comp models.Component) {
	x, y, w, h := comp.X, comp.Y, comp.Width, comp.Height

	c.strokeRect(x, y, w, h, c.palette.LineWidth, c.palette.Border)

	switch comp.Label {
	case "Bottom Navigation":
		tabWidth := w / len(bottomNavTabs)
		for i, tab := range bottomNavTabs {
			tabX := x + i*tabWidth
			if i > 0 {
				c.fillRect(tabX, y, 1, h, c.palette.Border)
			}
			c.textCentered(tabX, y+h/2-6, tabWidth, tab, c.palette.Text)
		}
	case "Navigation Header":
		c.text(x+16, y+h/2-6, "< Back", c.palette.Accent)
		c.textCentered(x, y+h/2-6, w, "Screen Title", c.palette.Text)
	}
}

func (c *canvas) drawHero(comp models.Component) {
	x, y, w, h := comp.X, comp.Y, comp.Width, comp.Height

	c.fillRect(x, y, w, h, c.palette.BgLight)
	c.strokeRect(x, y, w, h, c.palette.LineWidth, c.palette.Border)

	imgH := h / 2
	c.strokeRect(x+40, y+40, w-80, imgH, 1, c.palette.Border)
	c.textCentered(x+40, y+40+imgH/2-6, w-80, "Hero Image", c.palette.TextLight)

	c.text(x+40, y+h/2+20, "Main Headline", c.palette.Text)
	c.text(x+40, y+h/2+50, "Supporting text and description", c.palette.Text)

	c.fillRect(x+40, y+h/2+80, 120, 40, c.palette.Accent)
	c.textCentered(x+40, y+h/2+80+14, 120, "Get Started", white)
}

func (c *canvas) drawContent(comp models.Component) {
	x, y, w, h := comp.X, comp.Y, comp.Width, comp.Height

	c.strokeRect(x, y, w, h, c.palette.LineWidth, c.palette.Border)

	// Placeholder text lines with varied lengths.
	const lineHeight = 20
	lines := min(h/lineHeight-2, 10)
	for i := 0; i < lines; i++ {
		lineY := y + 20 + i*lineHeight
		lineW := w - 60
		if i%3 == 0 {
			lineW = w - 40
		}
		c.fillRect(x+20, lineY, lineW, 2, c.palette.TextLight)
	}
}

func (c *canvas) drawSidebar(comp models.Component) {
	x, y, w, h := comp.X, comp.Y, comp.Width, comp.Height

	c.fillRect(x, y, w, h, c.palette.BgLight)
	c.strokeRect(x, y, w, h, c.palette.LineWidth, c.palette.Border)

	if comp.Label == "Navigation Sidebar" {
		const itemHeight = 40
		for i, item := range sidebarNavItems {
			itemY := y + 20 + i*itemHeight
			if i == 0 {
				c.fillRect(x+8, itemY-4, w-16, 28, c.palette.AccentLight)
			}
			c.text(x+16, itemY, item, c.palette.Text)
		}
	}
}

func (c *canvas) drawFooter(comp models.Component) {
	x, y, w, h := comp.X, comp.Y, comp.Width, comp.Height

	c.fillRect(x, y, w, h, c.palette.Bg)
	c.strokeRect(x, y, w, h, c.palette.LineWidth, c.palette.Border)

	const linkWidth = 80
	for i, link := range footerLinks {
		c.text(x+20+i*linkWidth, y+20, link, c.palette.Text)
	}
	c.text(x+20, y+h-30, "© 2024 Company Name", c.palette.TextLight)
}

func (c *canvas) drawFormField(comp models.Component) {
	x, y, w, h := comp.X, comp.Y, comp.Width, comp.Height

	c.fillRect(x, y, w, h, white)
	c.strokeRect(x, y, w, h, 1, c.palette.Border)
	c.text(x+12, y+h/2-6, comp.Label, c.palette.TextLight)
}

func (c *canvas) drawButton(comp models.Component) {
	x, y, w, h := comp.X, comp.Y, comp.Width, comp.Height

	c.fillRect(x, y, w, h, c.palette.Accent)
	c.textCentered(x, y+h/2-6, w, comp.Label, white)
}

func (c *canvas) drawCard(comp models.Component) {
	x, y, w, h := comp.X, comp.Y, comp.Width, comp.Height

	c.fillRect(x, y, w, h, white)
	c.strokeRect(x, y, w, h, 1, c.palette.Border)

	imgH := h / 2
	c.fillRect(x+8, y+8, w-16, imgH, c.palette.BgLight)
	c.strokeRect(x+8, y+8, w-16, imgH, 1, c.palette.Border)
	c.textCentered(x+8, y+8+imgH/2-6, w-16, "Image", c.palette.TextLight)

	c.text(x+12, y+h/2+10, "Card Title", c.palette.Text)
	c.text(x+12, y+h-30, "$99.99", c.palette.Accent)
}

func (c *canvas) drawChart(comp models.Component) {
	x, y, w, h := comp.X, comp.Y, comp.Width, comp.Height

	c.fillRect(x, y, w, h, white)
	c.strokeRect(x, y, w, h, c.palette.LineWidth, c.palette.Border)

	c.text(x+12, y+12, comp.Label, c.palette.Text)

	areaY := y + 40
	areaH := h - 60

	switch {
	case strings.Contains(comp.Label, "Line"):
		points := [][2]int{
			{x + 20, areaY + areaH - 20},
			{x + w/3, areaY + 30},
			{x + 2*w/3, areaY + areaH/2},
			{x + w - 20, areaY + 20},
		}
		for i := 0; i < len(points)-1; i++ {
			c.line(points[i][0], points[i][1], points[i+1][0], points[i+1][1], 2, c.palette.Accent)
		}
	case strings.Contains(comp.Label, "Bar"):
		const bars = 4
		barWidth := (w-40)/bars - 10
		for i := 0; i < bars; i++ {
			barX := x + 20 + i*(barWidth+10)
			barHeight := (i + 1) * areaH / (bars + 1)
			c.fillRect(barX, areaY+areaH-barHeight, barWidth, barHeight, c.palette.Accent)
		}
	default:
		c.textCentered(x, y+h/2-6, w, "Chart Data", c.palette.TextLight)
	}
}

func (c *canvas) drawGeneric(comp models.Component) {
	x, y, w, h := comp.X, comp.Y, comp.Width, comp.Height

	c.strokeRect(x, y, w, h, c.palette.LineWidth, c.palette.Border)
	c.textCentered(x, y+h/2-6, w, strings.ToUpper(string(comp.Type)), c.palette.Text)
}
