package analyzer

import (
	"sort"
	"sync"
	"time"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
	"github.com/rs/zerolog"
)

// Detector inspects a normalized prompt and reports what it found.
type Detector interface {
	Detect(prompt string) Signal
}

// Signal is one detector's contribution to the analysis. Only the fields a
// detector is responsible for are populated.
type Signal struct {
	Name         string
	LayoutScores map[models.LayoutType]int
	Components   []models.ComponentType
	Style        models.Style
	Requirements []string
	Duration     time.Duration
}

const (
	baseConfidence     = 0.5
	layoutBoostPerHit  = 0.1
	maxLayoutBoost     = 0.3
	componentBoostEach = 0.05
	maxComponentBoost  = 0.2
)

type Analyzer struct {
	detectors []Detector
	logger    *zerolog.Logger
}

// NewAnalyzer wires the default detector set.
func NewAnalyzer(logger *zerolog.Logger) *Analyzer {
	return &Analyzer{
		detectors: []Detector{
			NewLayoutDetector(),
			NewComponentDetector(),
			NewStyleDetector(),
			NewRequirementDetector(),
		},
		logger: logger,
	}
}

// Analyze extracts layout, components, style preference and requirements
// from a natural language prompt.
func (a *Analyzer) Analyze(prompt string) models.PromptAnalysis {
	normalized := normalizePrompt(prompt)

	signals := a.runDetectors(normalized)

	analysis := a.aggregate(signals)

	a.logger.Debug().
		Str("layout", string(analysis.LayoutType)).
		Int("components", len(analysis.Components)).
		Float64("confidence", analysis.Confidence).
		Msg("Prompt analyzed")

	return analysis
}

func (a *Analyzer) runDetectors(prompt string) []Signal {
	results := make(chan Signal, len(a.detectors))
	var wg sync.WaitGroup

	for _, detector := range a.detectors {
		wg.Add(1)
		go func(d Detector) {
			defer wg.Done()
			results <- d.Detect(prompt)
		}(detector)
	}

	wg.Wait()
	close(results)

	var signals []Signal
	for sig := range results {
		signals = append(signals, sig)
	}

	return signals
}

func (a *Analyzer) aggregate(signals []Signal) models.PromptAnalysis {
	var (
		layoutScores = map[models.LayoutType]int{}
		detected     = map[models.ComponentType]bool{}
		style        models.Style
		requirements []string
	)

	for _, sig := range signals {
		for layout, score := range sig.LayoutScores {
			layoutScores[layout] += score
		}
		for _, c := range sig.Components {
			detected[c] = true
		}
		if sig.Style != "" {
			style = sig.Style
		}
		requirements = append(requirements, sig.Requirements...)
	}

	layout := pickLayout(layoutScores)

	// Detected components are merged with the ones a layout implies, so a
	// bare "landing page" prompt still gets a hero and a footer.
	for _, c := range impliedComponents(layout) {
		detected[c] = true
	}

	components := make([]models.ComponentType, 0, len(detected))
	for c := range detected {
		components = append(components, c)
	}
	sortComponents(components)

	width, height := suggestedDimensions(layout)

	layoutBoost := layoutBoostPerHit * float64(layoutScores[layout])
	if layoutBoost > maxLayoutBoost {
		layoutBoost = maxLayoutBoost
	}
	componentBoost := componentBoostEach * float64(len(components))
	if componentBoost > maxComponentBoost {
		componentBoost = maxComponentBoost
	}
	confidence := baseConfidence + layoutBoost + componentBoost
	if confidence > 1.0 {
		confidence = 1.0
	}

	sort.Strings(requirements)

	return models.PromptAnalysis{
		LayoutType:      layout,
		Components:      components,
		DetectedStyle:   style,
		Confidence:      confidence,
		SuggestedWidth:  width,
		SuggestedHeight: height,
		Requirements:    requirements,
	}
}

// layoutOrder fixes the tie-break order for layout scoring.
var layoutOrder = []models.LayoutType{
	models.LayoutLandingPage,
	models.LayoutDashboard,
	models.LayoutEcommerce,
	models.LayoutForm,
	models.LayoutBlog,
	models.LayoutMobileApp,
	models.LayoutWebMobile,
	models.LayoutWebDesktop,
}

func pickLayout(scores map[models.LayoutType]int) models.LayoutType {
	best := models.LayoutWebDesktop
	bestScore := 0

	for _, layout := range layoutOrder {
		if scores[layout] > bestScore {
			best = layout
			bestScore = scores[layout]
		}
	}

	return best
}

func impliedComponents(layout models.LayoutType) []models.ComponentType {
	switch layout {
	case models.LayoutWebDesktop:
		return []models.ComponentType{models.ComponentHeader, models.ComponentNavigation, models.ComponentContent, models.ComponentFooter}
	case models.LayoutWebMobile:
		return []models.ComponentType{models.ComponentHeader, models.ComponentNavigation, models.ComponentContent}
	case models.LayoutMobileApp:
		return []models.ComponentType{models.ComponentHeader, models.ComponentNavigation, models.ComponentContent}
	case models.LayoutDashboard:
		return []models.ComponentType{models.ComponentHeader, models.ComponentSidebar, models.ComponentContent, models.ComponentChart}
	case models.LayoutLandingPage:
		return []models.ComponentType{models.ComponentHeader, models.ComponentHero, models.ComponentContent, models.ComponentFooter}
	case models.LayoutForm:
		return []models.ComponentType{models.ComponentHeader, models.ComponentForm, models.ComponentButton}
	case models.LayoutEcommerce:
		return []models.ComponentType{models.ComponentHeader, models.ComponentNavigation, models.ComponentContent, models.ComponentCard, models.ComponentFooter}
	case models.LayoutBlog:
		return []models.ComponentType{models.ComponentHeader, models.ComponentNavigation, models.ComponentContent, models.ComponentSidebar, models.ComponentFooter}
	}
	return []models.ComponentType{models.ComponentHeader, models.ComponentContent}
}

func suggestedDimensions(layout models.LayoutType) (int, int) {
	switch layout {
	case models.LayoutWebDesktop:
		return 1200, 800
	case models.LayoutWebMobile:
		return 375, 667
	case models.LayoutMobileApp:
		return 375, 812
	case models.LayoutDashboard:
		return 1440, 900
	case models.LayoutLandingPage:
		return 1200, 1200
	case models.LayoutForm:
		return 600, 800
	case models.LayoutEcommerce:
		return 1200, 1000
	case models.LayoutBlog:
		return 800, 1000
	}
	return 1200, 800
}

func sortComponents(components []models.ComponentType) {
	sort.Slice(components, func(i, j int) bool {
		return models.ComponentPriority(components[i]) < models.ComponentPriority(components[j])
	})
}
