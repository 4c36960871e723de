package layout

import (
	"fmt"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
)

// EcommerceComposer lays out a store page: header, category navigation,
// and a responsive grid of product cards.
type EcommerceComposer struct{}

func (c *EcommerceComposer) Compose(spec Spec) []models.Component {
	var layout []models.Component
	currentY := 0

	if spec.has(models.ComponentHeader) {
		layout = append(layout, models.Component{
			Type:   models.ComponentHeader,
			Label:  "Store Header",
			X:      0,
			Y:      currentY,
			Width:  spec.Width,
			Height: 80,
		})
		currentY += 80
	}

	if spec.has(models.ComponentNavigation) {
		layout = append(layout, models.Component{
			Type:   models.ComponentNavigation,
			Label:  "Category Navigation",
			X:      0,
			Y:      currentY,
			Width:  spec.Width,
			Height: 50,
		})
		currentY += 50 + Spacing
	}

	if spec.has(models.ComponentCard) {
		perRow := 2
		switch {
		case spec.Width > 1000:
			perRow = 4
		case spec.Width > 600:
			perRow = 3
		}

		cardWidth := (spec.Width - 2*Margin - (perRow-1)*Spacing) / perRow
		cardHeight := cardWidth + 100 // room for title, price, rating

		const rows = 3
		for row := 0; row < rows; row++ {
			for col := 0; col < perRow; col++ {
				layout = append(layout, models.Component{
					Type:   models.ComponentCard,
					Label:  fmt.Sprintf("Product %d", row*perRow+col+1),
					X:      Margin + col*(cardWidth+Spacing),
					Y:      currentY + row*(cardHeight+Spacing),
					Width:  cardWidth,
					Height: cardHeight,
				})
			}
		}
	}

	return layout
}
