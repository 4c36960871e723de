package api

import (
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/cache"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/config"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/diffusion"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/generator"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
)

type HealthResponse struct {
	Status      string `json:"status" description:"Service status, ok even in fallback-only mode"`
	AppName     string `json:"app_name" description:"Application name"`
	Version     string `json:"version" description:"Application version"`
	Device      string `json:"device" description:"Where diffusion runs: remote or none"`
	AIAvailable bool   `json:"ai_available" description:"Whether a diffusion backend is configured"`
	AILoaded    bool   `json:"ai_loaded" description:"Whether the diffusion backend is loaded"`
	Provider    string `json:"provider,omitempty" description:"Configured diffusion provider"`
	Mode        string `json:"mode" description:"AI-enhanced or Algorithmic wireframes"`
}

type StylesResponse struct {
	Styles []models.StyleDescriptor `json:"styles"`
}

type LayoutTypesResponse struct {
	LayoutTypes []models.LayoutTypeDescriptor `json:"layout_types"`
}

type AnalyzeRequest struct {
	Prompt string `json:"prompt" description:"Natural language description of the UI"`
}

// AnalyzeSuggestions is the analysis restated as request parameters a client
// can feed straight into generation.
type AnalyzeSuggestions struct {
	LayoutType models.LayoutType      `json:"layout_type"`
	Style      models.Style           `json:"style"`
	Width      int                    `json:"width"`
	Height     int                    `json:"height"`
	Components []models.ComponentType `json:"components"`
}

type AnalyzeResponse struct {
	Analysis    models.PromptAnalysis `json:"analysis"`
	Suggestions AnalyzeSuggestions    `json:"suggestions"`
}

type TemplatesResponse struct {
	Templates []config.WireframeTemplate `json:"templates"`
}

type AIActionResponse struct {
	Message string           `json:"message"`
	Status  diffusion.Status `json:"status"`
}

type StatsResponse struct {
	generator.StatsSnapshot
	Cache cache.Stats `json:"cache"`
}
