package render

import (
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// SVGRenderer builds the vector form of a wireframe. Output is fully
// deterministic: the same layout and style always produce byte-identical
// markup, and labels are escaped so the document stays well-formed.
type SVGRenderer struct{}

func NewSVGRenderer() *SVGRenderer {
	return &SVGRenderer{}
}

func (r *SVGRenderer) Render(layout models.Layout, style models.Style) string {
	palette := PaletteFor(style)

	parts := []string{
		fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`, layout.Width, layout.Height),
		"<defs>",
		"<style>",
		fmt.Sprintf(".wireframe-border { fill: none; stroke: %s; stroke-width: %d; }", hexString(palette.Border), palette.LineWidth),
		fmt.Sprintf(".wireframe-text { font-family: Arial, sans-serif; font-size: 12px; fill: %s; }", hexString(palette.Text)),
		fmt.Sprintf(".wireframe-bg { fill: %s; stroke: %s; stroke-width: 1; }", hexString(palette.Bg), hexString(palette.Border)),
		fmt.Sprintf(".wireframe-accent { fill: %s; }", hexString(palette.Accent)),
		"</style>",
		"</defs>",
	}

	for i, component := range layout.Components {
		parts = append(parts, componentToSVG(i, component))
	}

	parts = append(parts, "</svg>")

	return strings.Join(parts, "\n")
}

func componentToSVG(index int, component models.Component) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<g id="%s-%d">`, component.Type, index)
	fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" class="wireframe-border"/>`,
		component.X, component.Y, component.Width, component.Height)
	fmt.Fprintf(&b, `<text x="%d" y="%d" class="wireframe-text">%s</text>`,
		component.X+8, component.Y+20, xmlEscaper.Replace(component.Label))
	b.WriteString("</g>")

	return b.String()
}
