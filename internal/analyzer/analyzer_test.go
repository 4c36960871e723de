package analyzer

import (
	"testing"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestAnalyzer_Analyze(t *testing.T) {
	a := NewAnalyzer(newTestLogger())

	tests := []struct {
		name           string
		prompt         string
		expectedLayout models.LayoutType
		mustContain    []models.ComponentType
		description    string
	}{
		{
			name:           "login form",
			prompt:         "Login page with email field, password field, and submit button",
			expectedLayout: models.LayoutForm,
			mustContain:    []models.ComponentType{models.ComponentForm, models.ComponentButton},
			description:    "login/field/submit keywords should select the form layout",
		},
		{
			name:           "dashboard with charts",
			prompt:         "Admin dashboard with analytics charts and metrics",
			expectedLayout: models.LayoutDashboard,
			mustContain:    []models.ComponentType{models.ComponentChart, models.ComponentSidebar},
			description:    "dashboard keywords dominate, sidebar implied",
		},
		{
			name:           "mobile app screen",
			prompt:         "Mobile app screen with bottom navigation and touch friendly cards",
			expectedLayout: models.LayoutMobileApp,
			mustContain:    []models.ComponentType{models.ComponentHeader, models.ComponentNavigation},
			description:    "mobile/app/touch keywords select mobile-app",
		},
		{
			name:           "landing page",
			prompt:         "Marketing landing page with hero section and testimonials",
			expectedLayout: models.LayoutLandingPage,
			mustContain:    []models.ComponentType{models.ComponentHero, models.ComponentFooter},
			description:    "landing/marketing/hero keywords select landing-page",
		},
		{
			name:           "ecommerce catalog",
			prompt:         "Online store with a product catalog and shopping cart",
			expectedLayout: models.LayoutEcommerce,
			mustContain:    []models.ComponentType{models.ComponentCard, models.ComponentNavigation},
			description:    "store/product/cart keywords select ecommerce",
		},
		{
			name:           "plain prompt falls back to web desktop",
			prompt:         "something generic",
			expectedLayout: models.LayoutWebDesktop,
			mustContain:    []models.ComponentType{models.ComponentHeader, models.ComponentContent},
			description:    "no keywords means web-desktop with the implied component floor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := a.Analyze(tt.prompt)

			if analysis.LayoutType != tt.expectedLayout {
				t.Errorf("Expected layout %s, got %s", tt.expectedLayout, analysis.LayoutType)
			}

			have := make(map[models.ComponentType]bool)
			for _, c := range analysis.Components {
				have[c] = true
			}
			for _, want := range tt.mustContain {
				if !have[want] {
					t.Errorf("Expected component %s in analysis, got %v", want, analysis.Components)
				}
			}

			if analysis.Confidence < 0.5 || analysis.Confidence > 1.0 {
				t.Errorf("Confidence should be between 0.5 and 1.0, got %f", analysis.Confidence)
			}

			if analysis.SuggestedWidth <= 0 || analysis.SuggestedHeight <= 0 {
				t.Errorf("Expected positive suggested dimensions, got %dx%d", analysis.SuggestedWidth, analysis.SuggestedHeight)
			}

			t.Logf("Prompt: %q -> layout=%s components=%v confidence=%.2f", tt.prompt, analysis.LayoutType, analysis.Components, analysis.Confidence)
		})
	}
}

func TestAnalyzer_Analyze_Deterministic(t *testing.T) {
	a := NewAnalyzer(newTestLogger())
	prompt := "Dashboard with charts, tables and a search bar"

	first := a.Analyze(prompt)
	for i := 0; i < 5; i++ {
		next := a.Analyze(prompt)

		if next.LayoutType != first.LayoutType {
			t.Fatalf("Expected stable layout %s, got %s on run %d", first.LayoutType, next.LayoutType, i)
		}
		if len(next.Components) != len(first.Components) {
			t.Fatalf("Expected stable component count %d, got %d on run %d", len(first.Components), len(next.Components), i)
		}
		for j := range next.Components {
			if next.Components[j] != first.Components[j] {
				t.Fatalf("Expected stable component order, got %v vs %v", next.Components, first.Components)
			}
		}
	}
}

func TestAnalyzer_ConfidenceGrowsWithSignal(t *testing.T) {
	a := NewAnalyzer(newTestLogger())

	weak := a.Analyze("a page")
	strong := a.Analyze("Admin dashboard with analytics charts, metrics and kpi overview")

	if strong.Confidence <= weak.Confidence {
		t.Errorf("Expected richer prompt to score higher confidence: weak=%.2f strong=%.2f", weak.Confidence, strong.Confidence)
	}
}

func TestPickLayout_TieBreakIsStable(t *testing.T) {
	scores := map[models.LayoutType]int{
		models.LayoutBlog: 2,
		models.LayoutForm: 2,
	}

	for i := 0; i < 10; i++ {
		if got := pickLayout(scores); got != models.LayoutForm {
			t.Fatalf("Expected form to win the tie (fixed order), got %s", got)
		}
	}
}

func TestSuggestedDimensions(t *testing.T) {
	tests := []struct {
		layout models.LayoutType
		width  int
		height int
	}{
		{models.LayoutWebDesktop, 1200, 800},
		{models.LayoutWebMobile, 375, 667},
		{models.LayoutMobileApp, 375, 812},
		{models.LayoutDashboard, 1440, 900},
		{models.LayoutLandingPage, 1200, 1200},
		{models.LayoutForm, 600, 800},
		{models.LayoutEcommerce, 1200, 1000},
		{models.LayoutBlog, 800, 1000},
	}

	for _, tt := range tests {
		w, h := suggestedDimensions(tt.layout)
		if w != tt.width || h != tt.height {
			t.Errorf("Expected %dx%d for %s, got %dx%d", tt.width, tt.height, tt.layout, w, h)
		}
	}
}
