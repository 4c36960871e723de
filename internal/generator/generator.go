package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/cache"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/diffusion"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/layout"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
)

// PromptAnalyzer turns a natural language prompt into a normalized analysis
type PromptAnalyzer interface {
	Analyze(prompt string) models.PromptAnalysis
}

// LayoutComposer places components on the canvas for a layout type
type LayoutComposer interface {
	Compose(layoutType models.LayoutType, spec layout.Spec) models.Layout
}

// SVGRenderer produces the vector rendition of a composed layout
type SVGRenderer interface {
	Render(layout models.Layout, style models.Style) string
}

// ImageRenderer produces the deterministic raster rendition of a composed layout
type ImageRenderer interface {
	RenderBase64(layout models.Layout, style models.Style) (string, error)
}

// Enhancer runs the optional diffusion pass over the deterministic image
type Enhancer interface {
	Status() diffusion.Status
	Generate(ctx context.Context, request diffusion.ImageRequest) (*diffusion.ImageResponse, error)
}

// ResponseCache stores assembled responses keyed by the normalized request
type ResponseCache interface {
	Get(ctx context.Context, key string) (*models.WireframeResponse, bool)
	Set(ctx context.Context, key string, response *models.WireframeResponse)
}

const (
	ModeAI       = "ai"
	ModeFallback = "fallback"
)

type Generator struct {
	analyzer PromptAnalyzer
	composer LayoutComposer
	svg      SVGRenderer
	raster   ImageRenderer
	enhancer Enhancer
	cache    ResponseCache
	stats    *Tracker
	logger   *zerolog.Logger
}

func NewGenerator(
	analyzer PromptAnalyzer,
	composer LayoutComposer,
	svg SVGRenderer,
	raster ImageRenderer,
	enhancer Enhancer,
	responseCache ResponseCache,
	logger *zerolog.Logger,
) *Generator {
	return &Generator{
		analyzer: analyzer,
		composer: composer,
		svg:      svg,
		raster:   raster,
		enhancer: enhancer,
		cache:    responseCache,
		stats:    NewTracker(),
		logger:   logger,
	}
}

func (g *Generator) Stats() StatsSnapshot {
	return g.stats.Snapshot()
}

// Generate runs the full pipeline: analyze, compose, render, optionally
// enhance. After validation passes, a failed AI pass degrades to the
// deterministic wireframe instead of failing the request.
func (g *Generator) Generate(ctx context.Context, request models.WireframeRequest) (*models.WireframeResponse, error) {
	started := time.Now()

	// Suggested dimensions only apply when the caller left both unset.
	useSuggested := request.Width == 0 && request.Height == 0

	request.SetDefaults()
	if err := request.Validate(); err != nil {
		return nil, err
	}

	key := cache.Key(request)
	if cached, ok := g.cache.Get(ctx, key); ok {
		g.stats.RecordCacheHit()

		response := *cached
		response.GenerationTime = time.Since(started).Seconds()
		response.Metadata.Cached = true

		g.logger.Info().Str("id", response.ID).Msg("Serving wireframe from cache")
		return &response, nil
	}
	g.stats.RecordCacheMiss()

	analysis := g.analyzer.Analyze(request.Prompt)

	width, height := request.Width, request.Height
	if useSuggested && analysis.SuggestedWidth > 0 && analysis.SuggestedHeight > 0 {
		width, height = analysis.SuggestedWidth, analysis.SuggestedHeight
	}

	composed := g.composer.Compose(analysis.LayoutType, layout.Spec{
		Width:      width,
		Height:     height,
		Style:      request.Style,
		Components: analysis.Components,
	})

	svgCode := g.svg.Render(composed, request.Style)

	imageBase64, err := g.raster.RenderBase64(composed, request.Style)
	if err != nil {
		return nil, fmt.Errorf("failed to render wireframe: %w", err)
	}

	mode := ModeFallback
	model := ""
	if g.enhancer != nil {
		if status := g.enhancer.Status(); status.Loaded {
			enhanced, err := g.enhancer.Generate(ctx, diffusion.ImageRequest{
				Prompt:         diffusion.EnhancePrompt(request.Prompt),
				NegativePrompt: diffusion.NegativePrompt,
				InitImage:      imageBase64,
				Width:          width,
				Height:         height,
				Steps:          request.InferenceSteps,
				GuidanceScale:  request.GuidanceScale,
			})

			switch {
			case err != nil:
				g.stats.RecordAIFailure()
				g.logger.Warn().Err(err).Msg("AI enhancement failed, keeping deterministic wireframe")
			case enhanced.ImageBase64 != "":
				imageBase64 = enhanced.ImageBase64
				mode = ModeAI
				model = status.Model
			}
		}
	}

	names := make([]string, 0, len(composed.Components))
	for _, component := range composed.Components {
		names = append(names, component.Label)
	}

	response := &models.WireframeResponse{
		ID:          uuid.New().String(),
		ImageBase64: imageBase64,
		SVGCode:     svgCode,
		LayoutType:  composed.Type,
		Style:       request.Style,
		Components:  names,
		Metadata: models.GenerationMetadata{
			Mode:           mode,
			Model:          model,
			Prompt:         request.Prompt,
			ComponentCount: len(composed.Components),
			CanvasSize:     fmt.Sprintf("%dx%d", composed.Width, composed.Height),
		},
		GenerationTime: time.Since(started).Seconds(),
	}

	g.cache.Set(ctx, key, response)
	g.stats.RecordGeneration(composed.Type, request.Style, mode == ModeAI, response.GenerationTime)

	g.logger.Info().
		Str("id", response.ID).
		Str("layout", string(composed.Type)).
		Str("mode", mode).
		Float64("seconds", response.GenerationTime).
		Msg("Wireframe generated")

	return response, nil
}
