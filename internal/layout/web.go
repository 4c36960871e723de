package layout

import (
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
)

// WebComposer lays out a standard website: header, optional navigation
// bar, main content, footer pinned to the bottom. It also serves as the
// fallback for layout types without a dedicated composer.
type WebComposer struct{}

func (c *WebComposer) Compose(spec Spec) []models.Component {
	var layout []models.Component
	currentY := 0

	hasHeader := spec.has(models.ComponentHeader)
	if hasHeader {
		layout = append(layout, models.Component{
			Type:   models.ComponentHeader,
			Label:  "Site Header",
			X:      0,
			Y:      currentY,
			Width:  spec.Width,
			Height: 80,
		})
		currentY += 80
	}

	// A separate nav bar only makes sense below a header.
	if hasHeader && spec.has(models.ComponentNavigation) {
		layout = append(layout, models.Component{
			Type:   models.ComponentNavigation,
			Label:  "Main Navigation",
			X:      0,
			Y:      currentY,
			Width:  spec.Width,
			Height: 50,
		})
		currentY += 50 + Spacing
	}

	if spec.has(models.ComponentContent) {
		layout = append(layout, models.Component{
			Type:   models.ComponentContent,
			Label:  "Main Content",
			X:      Margin,
			Y:      currentY,
			Width:  spec.Width - 2*Margin,
			Height: clampHeight(spec.Height - currentY - 120),
		})
	}

	if spec.has(models.ComponentFooter) {
		layout = append(layout, models.Component{
			Type:   models.ComponentFooter,
			Label:  "Site Footer",
			X:      0,
			Y:      spec.Height - 100,
			Width:  spec.Width,
			Height: 100,
		})
	}

	return layout
}
