package render

import (
	"fmt"
	"image/color"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
)

// Palette carries the drawing colors and stroke width for one wireframe
// style. Both renderers read from the same palette so the PNG and the SVG
// of a wireframe always agree.
type Palette struct {
	LineWidth   int
	Border      color.RGBA
	Text        color.RGBA
	TextLight   color.RGBA
	Bg          color.RGBA
	BgLight     color.RGBA
	Accent      color.RGBA
	AccentLight color.RGBA
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

var white = rgb(0xff, 0xff, 0xff)

// PaletteFor maps a style to its palette. Low-fi is the base look; the
// other styles override stroke weight and tone.
func PaletteFor(style models.Style) Palette {
	p := Palette{
		LineWidth:   2,
		Border:      rgb(0x33, 0x33, 0x33),
		Text:        rgb(0x33, 0x33, 0x33),
		TextLight:   rgb(0x66, 0x66, 0x66),
		Bg:          rgb(0xf8, 0xf9, 0xfa),
		BgLight:     rgb(0xf1, 0xf3, 0xf4),
		Accent:      rgb(0x00, 0x7b, 0xff),
		AccentLight: rgb(0xe3, 0xf2, 0xfd),
	}

	switch style {
	case models.StyleHighFi:
		p.LineWidth = 1
		p.Border = rgb(0xde, 0xe2, 0xe6)
		p.Bg = white
		p.BgLight = rgb(0xf8, 0xf9, 0xfa)
	case models.StyleMobile:
		p.LineWidth = 1
		p.Bg = white
	case models.StyleWeb:
		p.LineWidth = 1
		p.Border = rgb(0x66, 0x66, 0x66)
		p.Text = rgb(0x44, 0x44, 0x44)
	}

	return p
}

func hexString(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
