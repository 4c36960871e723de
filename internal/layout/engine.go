package layout

import (
	"sort"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
	"github.com/rs/zerolog"
)

// Engine positions components on the canvas. Each layout type has its own
// composer; unknown types fall back to the standard web composer.
type Engine struct {
	composers map[models.LayoutType]Composer
	fallback  Composer
	logger    *zerolog.Logger
}

func NewEngine(logger *zerolog.Logger) *Engine {
	web := &WebComposer{}

	return &Engine{
		composers: map[models.LayoutType]Composer{
			models.LayoutMobileApp:   &MobileComposer{},
			models.LayoutDashboard:   &DashboardComposer{},
			models.LayoutLandingPage: &LandingComposer{},
			models.LayoutForm:        &FormComposer{},
			models.LayoutEcommerce:   &EcommerceComposer{},
			models.LayoutBlog:        &BlogComposer{},
			models.LayoutWebDesktop:  web,
			models.LayoutWebMobile:   web,
		},
		fallback: web,
		logger:   logger,
	}
}

// Compose builds the full layout for the given type. The component list is
// copied and sorted by priority so callers can pass analysis output as-is.
func (e *Engine) Compose(layoutType models.LayoutType, spec Spec) models.Layout {
	sorted := make([]models.ComponentType, len(spec.Components))
	copy(sorted, spec.Components)
	sort.Slice(sorted, func(i, j int) bool {
		return models.ComponentPriority(sorted[i]) < models.ComponentPriority(sorted[j])
	})
	spec.Components = sorted

	composer, ok := e.composers[layoutType]
	if !ok {
		e.logger.Warn().Str("layout_type", string(layoutType)).Msg("Unknown layout type, using web layout")
		composer = e.fallback
	}

	components := composer.Compose(spec)

	e.logger.Debug().
		Str("layout_type", string(layoutType)).
		Int("component_count", len(components)).
		Int("width", spec.Width).
		Int("height", spec.Height).
		Msg("Layout composed")

	return models.Layout{
		Type:       layoutType,
		Width:      spec.Width,
		Height:     spec.Height,
		Components: components,
	}
}
