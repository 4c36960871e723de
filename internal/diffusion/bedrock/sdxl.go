package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/diffusion"
)

// High strength keeps the composed layout visible through the diffusion
// pass when an init image is supplied.
const defaultImageStrength = 0.65

type sdxlTextPrompt struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
}

type sdxlRequest struct {
	TextPrompts   []sdxlTextPrompt `json:"text_prompts"`
	InitImage     string           `json:"init_image,omitempty"`
	ImageStrength float64          `json:"image_strength,omitempty"`
	CfgScale      float64          `json:"cfg_scale"`
	Steps         int              `json:"steps"`
	Width         int              `json:"width,omitempty"`
	Height        int              `json:"height,omitempty"`
}

type sdxlResponse struct {
	Result    string `json:"result"`
	Artifacts []struct {
		Base64       string `json:"base64"`
		FinishReason string `json:"finishReason"`
	} `json:"artifacts"`
}

func (c *Client) GenerateImage(ctx context.Context, request diffusion.ImageRequest) (*diffusion.ImageResponse, error) {
	prompts := []sdxlTextPrompt{
		{Text: request.Prompt, Weight: 1.0},
	}
	if request.NegativePrompt != "" {
		prompts = append(prompts, sdxlTextPrompt{Text: request.NegativePrompt, Weight: -1.0})
	}

	payload := sdxlRequest{
		TextPrompts: prompts,
		CfgScale:    request.GuidanceScale,
		Steps:       request.Steps,
	}

	// Image-to-image derives dimensions from the init image; width and
	// height are only accepted on text-to-image.
	if request.InitImage != "" {
		payload.InitImage = request.InitImage
		payload.ImageStrength = defaultImageStrength
	} else {
		payload.Width = request.Width
		payload.Height = request.Height
	}

	bytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("unable to serialize sdxl request: %w", err)
	}

	output, err := c.Client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     &c.ModelID,
		Body:        bytes,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to invoke sdxl model: %w", err)
	}

	var response sdxlResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bedrock response: %w", err)
	}

	if len(response.Artifacts) == 0 {
		return nil, fmt.Errorf("no artifacts in response")
	}

	artifact := response.Artifacts[0]
	return &diffusion.ImageResponse{
		ImageBase64:  artifact.Base64,
		FinishReason: artifact.FinishReason,
	}, nil
}

func (c *Client) GenerateImageWithRetry(ctx context.Context, request diffusion.ImageRequest) (*diffusion.ImageResponse, error) {
	var lastErr error

	for attempt := 0; attempt < c.MaxRetries; attempt++ {
		response, err := c.GenerateImage(ctx, request)
		if err == nil {
			return response, nil
		}

		lastErr = err

		if !isRetryableError(err) {
			return nil, fmt.Errorf("non-retryable error: %w", err)
		}

		delay := calculateBackoff(attempt, c.InitialDelay, c.MaxDelay)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
			continue
		}
	}

	return nil, fmt.Errorf("max retries %d exceeded: %w", c.MaxRetries, lastErr)
}

// Ping has no lightweight bedrock counterpart; credential problems
// surface on the first invoke.
func (c *Client) Ping(ctx context.Context) error {
	return nil
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()

	// 1. Throttling errors
	if strings.Contains(errStr, "ThrottlingException") ||
		strings.Contains(errStr, "TooManyRequestsException") ||
		strings.Contains(errStr, "Rate exceeded") {
		return true
	}

	// 2. Service errors (5xx)
	if strings.Contains(errStr, "InternalServerException") ||
		strings.Contains(errStr, "ServiceUnavailableException") ||
		strings.Contains(errStr, "500") ||
		strings.Contains(errStr, "503") {
		return true
	}

	// 3. Network errors
	if strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "EOF") ||
		strings.Contains(errStr, "timeout") {
		return true
	}

	// Non-retryable errors (4xx client errors, validation errors, etc.)
	return false
}

func calculateBackoff(attempt int, initialDelay, maxDelay time.Duration) time.Duration {
	backoff := float64(initialDelay) * math.Pow(2, float64(attempt))

	if backoff > float64(maxDelay) {
		backoff = float64(maxDelay)
	}

	jitter := backoff * 0.2 * (2*rand.Float64() - 1) // Random value between -20% and +20%
	backoff += jitter

	return time.Duration(backoff)
}
