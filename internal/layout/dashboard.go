package layout

import (
	"math"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
)

const dashboardChartCount = 4

var chartLabels = []string{"Line Chart", "Bar Chart", "Pie Chart", "Area Chart", "Metric Card"}

// DashboardComposer lays out an admin screen: top header, navigation
// sidebar, and a grid of charts in the remaining content area.
type DashboardComposer struct{}

func (c *DashboardComposer) Compose(spec Spec) []models.Component {
	var layout []models.Component

	if spec.has(models.ComponentHeader) {
		layout = append(layout, models.Component{
			Type:   models.ComponentHeader,
			Label:  "Dashboard Header",
			X:      0,
			Y:      0,
			Width:  spec.Width,
			Height: 60,
		})
	}

	const sidebarWidth = 250
	contentX := 0
	contentWidth := spec.Width

	if spec.has(models.ComponentSidebar) {
		layout = append(layout, models.Component{
			Type:   models.ComponentSidebar,
			Label:  "Navigation Sidebar",
			X:      0,
			Y:      60,
			Width:  sidebarWidth,
			Height: clampHeight(spec.Height - 60),
		})
		contentX = sidebarWidth + Spacing
		contentWidth = spec.Width - sidebarWidth - Spacing
	}

	if spec.has(models.ComponentChart) {
		layout = append(layout, chartGrid(
			contentX+Margin,
			60+Margin,
			contentWidth-2*Margin,
			spec.Height-60-2*Margin,
			dashboardChartCount,
		)...)
	}

	return layout
}

// chartGrid fills the content area with evenly sized charts, two columns
// up to four charts, three beyond.
func chartGrid(x, y, width, height, count int) []models.Component {
	cols := 2
	if count > 4 {
		cols = 3
	}
	rows := int(math.Ceil(float64(count) / float64(cols)))

	chartWidth := (width - (cols-1)*Spacing) / cols
	chartHeight := clampHeight((height - (rows-1)*Spacing) / rows)

	charts := make([]models.Component, 0, count)
	for i := 0; i < count; i++ {
		row := i / cols
		col := i % cols

		charts = append(charts, models.Component{
			Type:   models.ComponentChart,
			Label:  chartLabels[i%len(chartLabels)],
			X:      x + col*(chartWidth+Spacing),
			Y:      y + row*(chartHeight+Spacing),
			Width:  chartWidth,
			Height: chartHeight,
		})
	}

	return charts
}
