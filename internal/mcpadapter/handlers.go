package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/analyzer"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/generator"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
)

// GenerateInput is the MCP tool input schema (matches HTTP API field names).
type GenerateInput struct {
	Prompt         string  `json:"prompt" jsonschema:"natural language description of the UI"`
	Style          string  `json:"style,omitempty" jsonschema:"wireframe style: low-fi, high-fi, mobile, or web (default: low-fi)"`
	Width          int     `json:"width,omitempty" jsonschema:"image width in pixels (200-2000, default: 512)"`
	Height         int     `json:"height,omitempty" jsonschema:"image height in pixels (200-2000, default: 512)"`
	InferenceSteps int     `json:"inference_steps,omitempty" jsonschema:"diffusion inference steps (1-50, default: 20)"`
	GuidanceScale  float64 `json:"guidance_scale,omitempty" jsonschema:"diffusion guidance scale (1.0-20.0, default: 7.5)"`
}

// AnalyzeInput is the MCP tool input schema for prompt analysis only.
type AnalyzeInput struct {
	Prompt string `json:"prompt" jsonschema:"natural language description of the UI"`
}

// NewGenerateHandler returns a tool handler that renders through the given
// generator. Pass the returned function to mcp.AddTool.
func NewGenerateHandler(gen *generator.Generator) func(context.Context, *mcp.CallToolRequest, GenerateInput) (*mcp.CallToolResult, models.WireframeResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, models.WireframeResponse, error) {
		return GenerateWireframe(ctx, gen, req, input)
	}
}

// GenerateWireframe runs the full generation pipeline and returns the result.
func GenerateWireframe(
	ctx context.Context,
	gen *generator.Generator,
	req *mcp.CallToolRequest,
	input GenerateInput,
) (*mcp.CallToolResult, models.WireframeResponse, error) {
	request := models.WireframeRequest{
		Prompt:         input.Prompt,
		Style:          models.Style(input.Style),
		Width:          input.Width,
		Height:         input.Height,
		InferenceSteps: input.InferenceSteps,
		GuidanceScale:  input.GuidanceScale,
	}

	wireframe, err := gen.Generate(ctx, request)
	if err != nil {
		return nil, models.WireframeResponse{}, err
	}
	return nil, *wireframe, nil
}

// NewAnalyzeHandler returns a tool handler for prompt analysis.
// Pass the returned function to mcp.AddTool.
func NewAnalyzeHandler(promptAnalyzer *analyzer.Analyzer) func(context.Context, *mcp.CallToolRequest, AnalyzeInput) (*mcp.CallToolResult, models.PromptAnalysis, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeInput) (*mcp.CallToolResult, models.PromptAnalysis, error) {
		return AnalyzePrompt(ctx, promptAnalyzer, req, input)
	}
}

// AnalyzePrompt runs keyword analysis without rendering anything.
func AnalyzePrompt(
	ctx context.Context,
	promptAnalyzer *analyzer.Analyzer,
	req *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, models.PromptAnalysis, error) {
	if input.Prompt == "" {
		return nil, models.PromptAnalysis{}, middleware.ErrEmptyPrompt
	}
	if len(input.Prompt) > models.MaxPromptLength {
		return nil, models.PromptAnalysis{}, middleware.ErrPromptTooLong
	}

	return nil, promptAnalyzer.Analyze(input.Prompt), nil
}
