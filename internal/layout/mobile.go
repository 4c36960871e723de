package layout

import (
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
)

// MobileComposer lays out a native app screen: status bar and navigation
// header on top, scrollable content, tab bar pinned to the bottom.
type MobileComposer struct{}

func (c *MobileComposer) Compose(spec Spec) []models.Component {
	var layout []models.Component
	currentY := 0

	if spec.has(models.ComponentHeader) {
		layout = append(layout, models.Component{
			Type:   models.ComponentHeader,
			Label:  "Status Bar",
			X:      0,
			Y:      currentY,
			Width:  spec.Width,
			Height: 44,
		})
		currentY += 44

		layout = append(layout, models.Component{
			Type:   models.ComponentNavigation,
			Label:  "Navigation Header",
			X:      0,
			Y:      currentY,
			Width:  spec.Width,
			Height: 56,
		})
		currentY += 56 + Spacing
	}

	if spec.has(models.ComponentContent) {
		// Content always leaves room for the tab bar.
		layout = append(layout, models.Component{
			Type:   models.ComponentContent,
			Label:  "Main Content",
			X:      Margin,
			Y:      currentY,
			Width:  spec.Width - 2*Margin,
			Height: clampHeight(spec.Height - currentY - 80),
		})
	}

	if spec.has(models.ComponentNavigation) {
		layout = append(layout, models.Component{
			Type:   models.ComponentNavigation,
			Label:  "Bottom Navigation",
			X:      0,
			Y:      spec.Height - 80,
			Width:  spec.Width,
			Height: 80,
		})
	}

	return layout
}
