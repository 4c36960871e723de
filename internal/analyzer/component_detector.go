package analyzer

import (
	"time"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
)

var componentKeywords = map[models.ComponentType][]string{
	models.ComponentHeader: {
		"header", "top bar", "navigation bar", "nav bar", "menu bar",
		"title bar", "brand", "logo area",
	},
	models.ComponentNavigation: {
		"navigation", "nav", "navbar", "menu", "sidebar", "side menu",
		"breadcrumb", "tabs", "links",
	},
	models.ComponentHero: {
		"hero", "banner", "main banner", "featured", "spotlight",
		"hero section", "main visual", "key visual",
	},
	models.ComponentForm: {
		"form", "input", "field", "text field", "email field",
		"password", "submit", "button", "checkbox", "radio",
	},
	models.ComponentContent: {
		"content", "main content", "body", "text", "paragraph",
		"description", "details", "information",
	},
	models.ComponentSidebar: {
		"sidebar", "side panel", "aside", "secondary nav",
		"filters", "categories",
	},
	models.ComponentFooter: {
		"footer", "bottom", "copyright", "links", "contact info",
		"social media", "newsletter",
	},
	models.ComponentCard: {
		"card", "tile", "box", "panel", "item", "product card",
		"feature card", "info card",
	},
	models.ComponentList: {
		"list", "items", "menu items", "options", "choices",
		"catalog", "directory",
	},
	models.ComponentTable: {
		"table", "grid", "data table", "spreadsheet", "rows",
		"columns", "data grid",
	},
	models.ComponentChart: {
		"chart", "graph", "visualization", "analytics", "metrics",
		"statistics", "data viz", "plot",
	},
	models.ComponentImage: {
		"image", "photo", "picture", "gallery", "thumbnail",
		"media", "visual", "illustration",
	},
}

type ComponentDetector struct{}

func NewComponentDetector() *ComponentDetector {
	return &ComponentDetector{}
}

func (d *ComponentDetector) Detect(prompt string) Signal {
	now := time.Now()
	tokens := tokenSet(tokenize(prompt))

	var found []models.ComponentType
	for component, keywords := range componentKeywords {
		if anyKeyword(prompt, tokens, keywords) {
			found = append(found, component)
		}
	}

	return Signal{
		Name:       "component-detector",
		Components: found,
		Duration:   time.Since(now),
	}
}
