package analyzer

import (
	"time"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
)

// styleOrder fixes the precedence when several style keywords appear.
var styleOrder = []models.Style{
	models.StyleLowFi,
	models.StyleHighFi,
	models.StyleMobile,
	models.StyleWeb,
}

var styleKeywords = map[models.Style][]string{
	models.StyleLowFi: {
		"simple", "basic", "minimal", "clean", "low fidelity",
		"sketch", "rough", "wireframe",
	},
	models.StyleHighFi: {
		"detailed", "polished", "refined", "high fidelity",
		"professional", "complete", "finished",
	},
	models.StyleMobile: {
		"mobile", "phone", "ios", "android", "touch", "mobile first",
	},
	models.StyleWeb: {
		"website", "web page", "desktop", "browser", "web app",
	},
}

type StyleDetector struct{}

func NewStyleDetector() *StyleDetector {
	return &StyleDetector{}
}

// Detect reports a style preference, or an empty style when the prompt
// carries no preference (the requested style wins then).
func (d *StyleDetector) Detect(prompt string) Signal {
	now := time.Now()
	tokens := tokenSet(tokenize(prompt))

	var detected models.Style
	for _, style := range styleOrder {
		if anyKeyword(prompt, tokens, styleKeywords[style]) {
			detected = style
			break
		}
	}

	return Signal{
		Name:     "style-detector",
		Style:    detected,
		Duration: time.Since(now),
	}
}
