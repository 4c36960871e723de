package layout

import (
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
)

// BlogComposer lays out an article page: header on top, post list in a
// wide column, sidebar on the right.
type BlogComposer struct{}

func (c *BlogComposer) Compose(spec Spec) []models.Component {
	var layout []models.Component
	currentY := 0

	if spec.has(models.ComponentHeader) {
		layout = append(layout, models.Component{
			Type:   models.ComponentHeader,
			Label:  "Blog Header",
			X:      0,
			Y:      currentY,
			Width:  spec.Width,
			Height: 80,
		})
		currentY += 80 + Spacing
	}

	const sidebarWidth = 300
	contentWidth := spec.Width - sidebarWidth - 3*Margin
	columnHeight := clampHeight(spec.Height - currentY - 100)

	if spec.has(models.ComponentContent) {
		layout = append(layout, models.Component{
			Type:   models.ComponentContent,
			Label:  "Blog Posts",
			X:      Margin,
			Y:      currentY,
			Width:  contentWidth,
			Height: columnHeight,
		})
	}

	if spec.has(models.ComponentSidebar) {
		layout = append(layout, models.Component{
			Type:   models.ComponentSidebar,
			Label:  "Blog Sidebar",
			X:      spec.Width - sidebarWidth - Margin,
			Y:      currentY,
			Width:  sidebarWidth,
			Height: columnHeight,
		})
	}

	return layout
}
