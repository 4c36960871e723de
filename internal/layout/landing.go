package layout

import (
	"fmt"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
)

var landingSections = []string{"Features", "Benefits", "Testimonials"}

// LandingComposer lays out a marketing page: header, full-width hero,
// three content sections, footer.
type LandingComposer struct{}

func (c *LandingComposer) Compose(spec Spec) []models.Component {
	var layout []models.Component
	currentY := 0

	if spec.has(models.ComponentHeader) {
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

	if spec.has(models.ComponentHero) {
		layout = append(layout, models.Component{
			Type:   models.ComponentHero,
			Label:  "Hero Section",
			X:      0,
			Y:      currentY,
			Width:  spec.Width,
			Height: 400,
		})
		currentY += 400 + Spacing
	}

	if spec.has(models.ComponentContent) {
		const sectionHeight = 300
		for _, name := range landingSections {
			layout = append(layout, models.Component{
				Type:   models.ComponentContent,
				Label:  fmt.Sprintf("%s Section", name),
				X:      Margin,
				Y:      currentY,
				Width:  spec.Width - 2*Margin,
				Height: sectionHeight,
			})
			currentY += sectionHeight + Spacing
		}
	}

	if spec.has(models.ComponentFooter) {
		layout = append(layout, models.Component{
			Type:   models.ComponentFooter,
			Label:  "Site Footer",
			X:      0,
			Y:      currentY,
			Width:  spec.Width,
			Height: 120,
		})
	}

	return layout
}
