package layout

import (
	"slices"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
)

// Canvas geometry shared by every composer.
const (
	GridSize = 8
	Margin   = 20
	Spacing  = 16
)

// Spec is the input to a composer: the canvas and the components the
// prompt analysis asked for, already sorted by stacking priority.
type Spec struct {
	Width      int
	Height     int
	Style      models.Style
	Components []models.ComponentType
}

func (s Spec) has(t models.ComponentType) bool {
	return slices.Contains(s.Components, t)
}

type Composer interface {
	Compose(spec Spec) []models.Component
}

// clampHeight keeps small canvases from producing negative extents.
// The renderer skips zero-height components.
func clampHeight(h int) int {
	if h < 0 {
		return 0
	}
	return h
}
