package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/diffusion"
)

func (c *Client) GenerateImage(ctx context.Context, request diffusion.ImageRequest) (*diffusion.ImageResponse, error) {
	// The images API has no conditioning input or negative prompt; the
	// composed layout only steers generation through the prompt text.
	params := openai.ImageGenerateParams{
		Prompt:         request.Prompt,
		Model:          openai.ImageModel(c.ModelID),
		N:              openai.Int(1),
		ResponseFormat: openai.ImageGenerateParamsResponseFormatB64JSON,
		Size:           nearestSize(request.Width, request.Height),
	}

	output, err := c.Client.Images.Generate(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("unable to invoke image model: %w", err)
	}

	if len(output.Data) == 0 {
		return nil, fmt.Errorf("no images in response")
	}

	return &diffusion.ImageResponse{
		ImageBase64:  output.Data[0].B64JSON,
		FinishReason: "stop",
	}, nil
}

// GenerateImageWithRetry relies on the SDK's own retry policy.
func (c *Client) GenerateImageWithRetry(ctx context.Context, request diffusion.ImageRequest) (*diffusion.ImageResponse, error) {
	return c.GenerateImage(ctx, request)
}

func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.Client.Models.Get(ctx, c.ModelID); err != nil {
		return fmt.Errorf("model %s not reachable: %w", c.ModelID, err)
	}
	return nil
}

// nearestSize maps the requested canvas onto the fixed set of square
// sizes the images API accepts.
func nearestSize(width, height int) openai.ImageGenerateParamsSize {
	longest := max(width, height)

	switch {
	case longest <= 256:
		return openai.ImageGenerateParamsSize256x256
	case longest <= 512:
		return openai.ImageGenerateParamsSize512x512
	default:
		return openai.ImageGenerateParamsSize1024x1024
	}
}
