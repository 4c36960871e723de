package api

import (
	"net/http"
	"strings"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/analyzer"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/cache"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/config"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/diffusion"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/generator"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
	"github.com/rs/zerolog"
)

type Handler struct {
	generator *generator.Generator
	analyzer  *analyzer.Analyzer
	diffusion *diffusion.Manager
	cache     cache.Cache
	templates *config.TemplateCatalog
	appName   string
	version   string
	logger    *zerolog.Logger
}

func NewHandler(
	gen *generator.Generator,
	promptAnalyzer *analyzer.Analyzer,
	diffusionManager *diffusion.Manager,
	responseCache cache.Cache,
	templates *config.TemplateCatalog,
	appName string,
	version string,
	logger *zerolog.Logger,
) *Handler {
	return &Handler{
		generator: gen,
		analyzer:  promptAnalyzer,
		diffusion: diffusionManager,
		cache:     responseCache,
		templates: templates,
		appName:   appName,
		version:   version,
		logger:    logger,
	}
}

// POST /api/v1/generate-wireframe
// Body: WireframeRequest
// Returns: WireframeResponse
func (h *Handler) GenerateWireframe(req *restful.Request, resp *restful.Response) {
	var wireframeRequest models.WireframeRequest
	if err := req.ReadEntity(&wireframeRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("style", string(wireframeRequest.Style)).
		Int("prompt_length", len(wireframeRequest.Prompt)).
		Msg("Start wireframe generation")

	ctx := req.Request.Context()

	wireframe, err := h.generator.Generate(ctx, wireframeRequest)
	if err != nil {
		if middleware.IsValidationError(err) {
			middleware.HandleError(resp, err, http.StatusBadRequest)
			return
		}
		h.logger.Error().Err(err).Msg("Wireframe generation failed")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	h.logger.Info().
		Str("id", wireframe.ID).
		Str("layout_type", string(wireframe.LayoutType)).
		Str("mode", wireframe.Metadata.Mode).
		Float64("generation_time", wireframe.GenerationTime).
		Msg("Wireframe generation complete")

	resp.WriteHeaderAndEntity(http.StatusOK, wireframe)
}

// GET /api/v1/wireframe-styles
func (h *Handler) WireframeStyles(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, StylesResponse{Styles: models.AllStyles()})
}

// GET /api/v1/layout-types
func (h *Handler) LayoutTypes(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, LayoutTypesResponse{LayoutTypes: models.AllLayoutTypes()})
}

// POST /api/v1/analyze-prompt
// Body: AnalyzeRequest
// Returns: AnalyzeResponse with the analysis and ready-to-use suggestions
func (h *Handler) AnalyzePrompt(req *restful.Request, resp *restful.Response) {
	var analyzeRequest AnalyzeRequest
	if err := req.ReadEntity(&analyzeRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(analyzeRequest.Prompt) == "" {
		middleware.HandleError(resp, middleware.ErrEmptyPrompt, http.StatusBadRequest)
		return
	}
	if len(analyzeRequest.Prompt) > models.MaxPromptLength {
		middleware.HandleError(resp, middleware.ErrPromptTooLong, http.StatusBadRequest)
		return
	}

	analysis := h.analyzer.Analyze(analyzeRequest.Prompt)

	style := analysis.DetectedStyle
	if style == "" {
		style = models.StyleLowFi
	}

	resp.WriteHeaderAndEntity(http.StatusOK, AnalyzeResponse{
		Analysis: analysis,
		Suggestions: AnalyzeSuggestions{
			LayoutType: analysis.LayoutType,
			Style:      style,
			Width:      analysis.SuggestedWidth,
			Height:     analysis.SuggestedHeight,
			Components: analysis.Components,
		},
	})
}

// GET /api/v1/templates
func (h *Handler) Templates(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, TemplatesResponse{Templates: h.templates.Templates})
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	status := h.diffusion.Status()

	device := "none"
	mode := "Algorithmic wireframes"
	if status.Available {
		device = "remote"
		mode = "AI-enhanced"
	}

	healthResponse := HealthResponse{
		Status:      "ok",
		AppName:     h.appName,
		Version:     h.version,
		Device:      device,
		AIAvailable: status.Available,
		AILoaded:    status.Loaded,
		Provider:    status.Provider,
		Mode:        mode,
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

// GET /api/v1/ai/status
func (h *Handler) AIStatus(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, h.diffusion.Status())
}

// POST /api/v1/ai/load-models
// Probes the configured backend and marks it ready. Idempotent: loading an
// already loaded backend is a no-op, and provider "none" reports unavailable
// without erroring.
func (h *Handler) AILoadModels(req *restful.Request, resp *restful.Response) {
	if !h.diffusion.Available() {
		resp.WriteHeaderAndEntity(http.StatusOK, AIActionResponse{
			Message: "No diffusion backend configured",
			Status:  h.diffusion.Status(),
		})
		return
	}

	ctx := req.Request.Context()
	if err := h.diffusion.Load(ctx); err != nil {
		h.logger.Error().Err(err).Msg("Failed to load diffusion backend")
		middleware.HandleError(resp, err, http.StatusBadGateway)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, AIActionResponse{
		Message: "Diffusion backend loaded",
		Status:  h.diffusion.Status(),
	})
}

// POST /api/v1/ai/unload-models
func (h *Handler) AIUnloadModels(req *restful.Request, resp *restful.Response) {
	h.diffusion.Unload()

	resp.WriteHeaderAndEntity(http.StatusOK, AIActionResponse{
		Message: "Diffusion backend unloaded",
		Status:  h.diffusion.Status(),
	})
}

// GET /api/v1/stats
func (h *Handler) Stats(req *restful.Request, resp *restful.Response) {
	ctx := req.Request.Context()

	resp.WriteHeaderAndEntity(http.StatusOK, StatsResponse{
		StatsSnapshot: h.generator.Stats(),
		Cache:         h.cache.Stats(ctx),
	})
}
