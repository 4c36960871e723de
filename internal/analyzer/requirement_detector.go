package analyzer

import (
	"time"
)

// requirementKeywords maps requirement flags to the phrases that raise them.
var requirementKeywords = []struct {
	name     string
	keywords []string
}{
	{"responsive", []string{"responsive", "mobile friendly", "adaptive"}},
	{"dark_mode", []string{"dark", "dark mode", "night mode"}},
	{"accessibility", []string{"accessible", "a11y", "accessibility"}},
	{"animations", []string{"animated", "animation", "interactive"}},
	{"search", []string{"search"}},
	{"user_auth", []string{"login", "signup", "register", "auth"}},
	{"social_features", []string{"social", "share", "like", "comment"}},
	{"ecommerce", []string{"cart", "checkout", "payment", "buy"}},
}

type RequirementDetector struct{}

func NewRequirementDetector() *RequirementDetector {
	return &RequirementDetector{}
}

func (d *RequirementDetector) Detect(prompt string) Signal {
	now := time.Now()
	tokens := tokenSet(tokenize(prompt))

	var requirements []string
	for _, req := range requirementKeywords {
		if anyKeyword(prompt, tokens, req.keywords) {
			requirements = append(requirements, req.name)
		}
	}

	return Signal{
		Name:         "requirement-detector",
		Requirements: requirements,
		Duration:     time.Since(now),
	}
}
