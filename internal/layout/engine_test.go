package layout

import (
	"reflect"
	"testing"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
	"github.com/rs/zerolog"
)

func newTestEngine() *Engine {
	logger := zerolog.Nop()
	return NewEngine(&logger)
}

func TestEngine_ComposeForm(t *testing.T) {
	engine := newTestEngine()

	layout := engine.Compose(models.LayoutForm, Spec{
		Width:  600,
		Height: 800,
		Style:  models.StyleLowFi,
		Components: []models.ComponentType{
			models.ComponentHeader,
			models.ComponentForm,
			models.ComponentButton,
		},
	})

	// Title, four fields, submit button.
	if len(layout.Components) != 6 {
		t.Fatalf("Component count: %d, want: 6", len(layout.Components))
	}

	title := layout.Components[0]
	if title.Label != "Form Title" {
		t.Errorf("First label: %s, want: Form Title", title.Label)
	}
	if title.X != 100 || title.Width != 400 {
		t.Errorf("Title position: x=%d w=%d, want: x=100 w=400", title.X, title.Width)
	}

	fields := []string{"Email Address", "Password", "Confirm Password", "Full Name"}
	for i, want := range fields {
		got := layout.Components[i+1]
		if got.Label != want {
			t.Errorf("Field %d label: %s, want: %s", i, got.Label, want)
		}
		if got.Height != 48 {
			t.Errorf("Field %d height: %d, want: 48", i, got.Height)
		}
	}

	button := layout.Components[5]
	if button.Label != "Submit Button" {
		t.Errorf("Last label: %s, want: Submit Button", button.Label)
	}
	// Title ends at y=120, four field rows of 64 each, plus the 16 gap.
	if button.Y != 120+4*64+16 {
		t.Errorf("Button y: %d, want: %d", button.Y, 120+4*64+16)
	}
}

func TestEngine_ComposeMobile(t *testing.T) {
	engine := newTestEngine()

	layout := engine.Compose(models.LayoutMobileApp, Spec{
		Width:  375,
		Height: 812,
		Style:  models.StyleMobile,
		Components: []models.ComponentType{
			models.ComponentHeader,
			models.ComponentNavigation,
			models.ComponentContent,
		},
	})

	if len(layout.Components) != 4 {
		t.Fatalf("Component count: %d, want: 4", len(layout.Components))
	}

	statusBar := layout.Components[0]
	if statusBar.Label != "Status Bar" || statusBar.Y != 0 || statusBar.Height != 44 {
		t.Errorf("Status bar: %+v", statusBar)
	}

	navHeader := layout.Components[1]
	if navHeader.Y != 44 || navHeader.Height != 56 {
		t.Errorf("Navigation header: y=%d h=%d, want: y=44 h=56", navHeader.Y, navHeader.Height)
	}

	content := layout.Components[2]
	if content.Y != 116 {
		t.Errorf("Content y: %d, want: 116", content.Y)
	}
	if content.Height != 812-116-80 {
		t.Errorf("Content height: %d, want: %d", content.Height, 812-116-80)
	}

	bottomNav := layout.Components[3]
	if bottomNav.Label != "Bottom Navigation" || bottomNav.Y != 812-80 {
		t.Errorf("Bottom navigation: %+v", bottomNav)
	}
}

func TestEngine_ComposeDashboard(t *testing.T) {
	engine := newTestEngine()

	layout := engine.Compose(models.LayoutDashboard, Spec{
		Width:  1440,
		Height: 900,
		Style:  models.StyleWeb,
		Components: []models.ComponentType{
			models.ComponentHeader,
			models.ComponentSidebar,
			models.ComponentChart,
		},
	})

	// Header, sidebar, four charts.
	if len(layout.Components) != 6 {
		t.Fatalf("Component count: %d, want: 6", len(layout.Components))
	}

	sidebar := layout.Components[1]
	if sidebar.Width != 250 || sidebar.Y != 60 || sidebar.Height != 840 {
		t.Errorf("Sidebar: %+v", sidebar)
	}

	charts := layout.Components[2:]
	wantLabels := []string{"Line Chart", "Bar Chart", "Pie Chart", "Area Chart"}
	for i, chart := range charts {
		if chart.Type != models.ComponentChart {
			t.Errorf("Chart %d type: %s", i, chart.Type)
		}
		if chart.Label != wantLabels[i] {
			t.Errorf("Chart %d label: %s, want: %s", i, chart.Label, wantLabels[i])
		}
	}

	// Two columns: charts 0 and 2 share an x, charts 0 and 1 share a y.
	if charts[0].X != charts[2].X || charts[1].X != charts[3].X {
		t.Errorf("Chart columns not aligned: %+v", charts)
	}
	if charts[0].Y != charts[1].Y || charts[2].Y != charts[3].Y {
		t.Errorf("Chart rows not aligned: %+v", charts)
	}
}

func TestEngine_ComposeLanding(t *testing.T) {
	engine := newTestEngine()

	layout := engine.Compose(models.LayoutLandingPage, Spec{
		Width:  1200,
		Height: 1200,
		Style:  models.StyleLowFi,
		Components: []models.ComponentType{
			models.ComponentHeader,
			models.ComponentHero,
			models.ComponentContent,
			models.ComponentFooter,
		},
	})

	// Header, hero, three sections, footer.
	if len(layout.Components) != 6 {
		t.Fatalf("Component count: %d, want: 6", len(layout.Components))
	}

	hero := layout.Components[1]
	if hero.Label != "Hero Section" || hero.Y != 80 || hero.Height != 400 {
		t.Errorf("Hero: %+v", hero)
	}

	sections := []string{"Features Section", "Benefits Section", "Testimonials Section"}
	for i, want := range sections {
		got := layout.Components[i+2]
		if got.Label != want {
			t.Errorf("Section %d label: %s, want: %s", i, got.Label, want)
		}
	}

	footer := layout.Components[5]
	if footer.Y != 496+3*316 {
		t.Errorf("Footer y: %d, want: %d", footer.Y, 496+3*316)
	}
}

func TestEngine_ComposeEcommerceGrid(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name       string
		width      int
		wantPerRow int
	}{
		{name: "Wide canvas", width: 1200, wantPerRow: 4},
		{name: "Medium canvas", width: 800, wantPerRow: 3},
		{name: "Narrow canvas", width: 500, wantPerRow: 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			layout := engine.Compose(models.LayoutEcommerce, Spec{
				Width:      test.width,
				Height:     1000,
				Style:      models.StyleWeb,
				Components: []models.ComponentType{models.ComponentCard},
			})

			wantCards := test.wantPerRow * 3
			if len(layout.Components) != wantCards {
				t.Fatalf("Card count: %d, want: %d", len(layout.Components), wantCards)
			}

			first := layout.Components[0]
			if first.Label != "Product 1" {
				t.Errorf("First card label: %s, want: Product 1", first.Label)
			}

			// Cards in the same row share a y; the row is perRow wide.
			secondRow := layout.Components[test.wantPerRow]
			if secondRow.Y <= first.Y {
				t.Errorf("Second row y: %d, want greater than %d", secondRow.Y, first.Y)
			}
		})
	}
}

func TestEngine_ComposeBlog(t *testing.T) {
	engine := newTestEngine()

	layout := engine.Compose(models.LayoutBlog, Spec{
		Width:  800,
		Height: 1000,
		Style:  models.StyleLowFi,
		Components: []models.ComponentType{
			models.ComponentHeader,
			models.ComponentContent,
			models.ComponentSidebar,
		},
	})

	if len(layout.Components) != 3 {
		t.Fatalf("Component count: %d, want: 3", len(layout.Components))
	}

	content := layout.Components[1]
	if content.Label != "Blog Posts" {
		t.Errorf("Content label: %s, want: Blog Posts", content.Label)
	}
	if content.Width != 800-300-60 {
		t.Errorf("Content width: %d, want: %d", content.Width, 800-300-60)
	}

	sidebar := layout.Components[2]
	if sidebar.Label != "Blog Sidebar" {
		t.Errorf("Sidebar label: %s, want: Blog Sidebar", sidebar.Label)
	}
	if sidebar.X != 800-300-20 {
		t.Errorf("Sidebar x: %d, want: %d", sidebar.X, 800-300-20)
	}
	if sidebar.Height != content.Height {
		t.Errorf("Column heights differ: sidebar=%d content=%d", sidebar.Height, content.Height)
	}
}

func TestEngine_WebNavigationRequiresHeader(t *testing.T) {
	engine := newTestEngine()

	withHeader := engine.Compose(models.LayoutWebDesktop, Spec{
		Width:  1200,
		Height: 800,
		Style:  models.StyleWeb,
		Components: []models.ComponentType{
			models.ComponentHeader,
			models.ComponentNavigation,
			models.ComponentContent,
		},
	})
	if len(withHeader.Components) != 3 {
		t.Errorf("With header: %d components, want: 3", len(withHeader.Components))
	}

	withoutHeader := engine.Compose(models.LayoutWebDesktop, Spec{
		Width:  1200,
		Height: 800,
		Style:  models.StyleWeb,
		Components: []models.ComponentType{
			models.ComponentNavigation,
			models.ComponentContent,
		},
	})
	for _, c := range withoutHeader.Components {
		if c.Type == models.ComponentNavigation {
			t.Errorf("Navigation placed without a header: %+v", c)
		}
	}
}

func TestEngine_UnknownTypeFallsBackToWeb(t *testing.T) {
	engine := newTestEngine()

	layout := engine.Compose(models.LayoutType("kiosk"), Spec{
		Width:      1200,
		Height:     800,
		Style:      models.StyleWeb,
		Components: []models.ComponentType{models.ComponentHeader, models.ComponentFooter},
	})

	if len(layout.Components) != 2 {
		t.Fatalf("Component count: %d, want: 2", len(layout.Components))
	}
	if layout.Components[0].Label != "Site Header" {
		t.Errorf("First label: %s, want: Site Header", layout.Components[0].Label)
	}
}

func TestEngine_SmallCanvasClampsHeights(t *testing.T) {
	engine := newTestEngine()

	layout := engine.Compose(models.LayoutMobileApp, Spec{
		Width:  200,
		Height: 200,
		Style:  models.StyleMobile,
		Components: []models.ComponentType{
			models.ComponentHeader,
			models.ComponentNavigation,
			models.ComponentContent,
		},
	})

	for _, c := range layout.Components {
		if c.Height < 0 {
			t.Errorf("Negative height: %+v", c)
		}
	}
}

func TestEngine_SortsComponentsBeforeComposing(t *testing.T) {
	engine := newTestEngine()

	// Footer listed first must still land last.
	layout := engine.Compose(models.LayoutWebDesktop, Spec{
		Width:  1200,
		Height: 800,
		Style:  models.StyleWeb,
		Components: []models.ComponentType{
			models.ComponentFooter,
			models.ComponentContent,
			models.ComponentHeader,
		},
	})

	if len(layout.Components) != 3 {
		t.Fatalf("Component count: %d, want: 3", len(layout.Components))
	}
	if layout.Components[0].Type != models.ComponentHeader {
		t.Errorf("First component: %s, want: header", layout.Components[0].Type)
	}
	if layout.Components[2].Type != models.ComponentFooter {
		t.Errorf("Last component: %s, want: footer", layout.Components[2].Type)
	}
}

func TestEngine_ComposeIsDeterministic(t *testing.T) {
	engine := newTestEngine()

	spec := Spec{
		Width:  1200,
		Height: 800,
		Style:  models.StyleLowFi,
		Components: []models.ComponentType{
			models.ComponentHeader,
			models.ComponentNavigation,
			models.ComponentContent,
			models.ComponentFooter,
		},
	}

	first := engine.Compose(models.LayoutWebDesktop, spec)
	second := engine.Compose(models.LayoutWebDesktop, spec)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Layouts differ between runs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
