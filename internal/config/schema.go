package config

import (
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
)

// TemplateCatalog is the full set of starter templates served by the API
type TemplateCatalog struct {
	Templates []WireframeTemplate `yaml:"templates" json:"templates"`
}

// WireframeTemplate describes one starter layout a client can copy into a
// generation request
type WireframeTemplate struct {
	ID          string                 `yaml:"id" json:"id"`
	Name        string                 `yaml:"name" json:"name"`
	Description string                 `yaml:"description" json:"description"`
	LayoutType  models.LayoutType      `yaml:"layout_type" json:"layout_type"`
	Components  []models.ComponentType `yaml:"components" json:"components"`
	Width       int                    `yaml:"width" json:"width"`
	Height      int                    `yaml:"height" json:"height"`
	PreviewURL  string                 `yaml:"preview_url" json:"preview_url"`
	Tags        []string               `yaml:"tags" json:"tags"`
}

func (c *TemplateCatalog) Validate() error {
	seen := make(map[models.LayoutType]string)

	for i, tpl := range c.Templates {
		if strings.TrimSpace(tpl.ID) == "" {
			return fmt.Errorf("template %d: id is required", i)
		}
		if strings.TrimSpace(tpl.Name) == "" {
			return fmt.Errorf("template %s: name is required", tpl.ID)
		}
		if !tpl.LayoutType.Valid() {
			return fmt.Errorf("template %s: unknown layout type %q", tpl.ID, tpl.LayoutType)
		}
		if previous, dup := seen[tpl.LayoutType]; dup {
			return fmt.Errorf("template %s: layout type %q already used by %s", tpl.ID, tpl.LayoutType, previous)
		}
		seen[tpl.LayoutType] = tpl.ID

		if tpl.Width <= 0 || tpl.Height <= 0 {
			return fmt.Errorf("template %s: dimensions must be positive", tpl.ID)
		}
		for _, component := range tpl.Components {
			if !component.Valid() {
				return fmt.Errorf("template %s: unknown component type %q", tpl.ID, component)
			}
		}
	}

	return nil
}
