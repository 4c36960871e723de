package analyzer

import (
	"time"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
)

// layoutKeywords maps each layout type to the phrases that suggest it.
var layoutKeywords = map[models.LayoutType][]string{
	models.LayoutLandingPage: {
		"landing", "homepage", "home page", "marketing", "hero section",
		"call to action", "cta", "features", "testimonials",
	},
	models.LayoutDashboard: {
		"dashboard", "admin", "analytics", "charts", "metrics", "stats",
		"data visualization", "kpi", "overview", "control panel",
	},
	models.LayoutEcommerce: {
		"shop", "store", "ecommerce", "e-commerce", "product", "cart",
		"checkout", "payment", "catalog", "inventory", "buy", "purchase",
	},
	models.LayoutForm: {
		"form", "signup", "sign up", "register", "login", "contact",
		"survey", "questionnaire", "input", "fields", "submit",
	},
	models.LayoutBlog: {
		"blog", "article", "post", "news", "content", "reading",
		"publication", "journal", "magazine",
	},
	models.LayoutMobileApp: {
		"mobile", "app", "ios", "android", "phone", "touch",
		"swipe", "tab bar", "navigation bar", "mobile first",
	},
	models.LayoutWebMobile: {
		"responsive", "mobile web", "mobile version", "phone web",
		"mobile responsive", "mobile friendly",
	},
}

type LayoutDetector struct{}

func NewLayoutDetector() *LayoutDetector {
	return &LayoutDetector{}
}

// Detect scores each layout type by counting keyword hits. The web-desktop
// default is applied during aggregation when nothing scores.
func (d *LayoutDetector) Detect(prompt string) Signal {
	now := time.Now()
	tokens := tokenSet(tokenize(prompt))

	scores := map[models.LayoutType]int{}
	for layout, keywords := range layoutKeywords {
		if score := countKeywords(prompt, tokens, keywords); score > 0 {
			scores[layout] = score
		}
	}

	return Signal{
		Name:         "layout-detector",
		LayoutScores: scores,
		Duration:     time.Since(now),
	}
}
