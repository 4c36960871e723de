package sdapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/diffusion"
)

// Low denoising keeps the composed layout visible through the diffusion
// pass when an init image is supplied.
const defaultDenoisingStrength = 0.35

// Client talks to an AUTOMATIC1111-compatible Stable Diffusion web API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(baseURL string, apiKey string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("sdapi base URL is required")
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

type generationRequest struct {
	Prompt            string   `json:"prompt"`
	NegativePrompt    string   `json:"negative_prompt,omitempty"`
	InitImages        []string `json:"init_images,omitempty"`
	DenoisingStrength float64  `json:"denoising_strength,omitempty"`
	Steps             int      `json:"steps"`
	CfgScale          float64  `json:"cfg_scale"`
	Width             int      `json:"width"`
	Height            int      `json:"height"`
}

type generationResponse struct {
	Images []string `json:"images"`
	Info   string   `json:"info"`
}

func (c *Client) GenerateImage(ctx context.Context, request diffusion.ImageRequest) (*diffusion.ImageResponse, error) {
	payload := generationRequest{
		Prompt:         request.Prompt,
		NegativePrompt: request.NegativePrompt,
		Steps:          request.Steps,
		CfgScale:       request.GuidanceScale,
		Width:          request.Width,
		Height:         request.Height,
	}

	endpoint := c.baseURL + "/sdapi/v1/txt2img"
	if request.InitImage != "" {
		payload.InitImages = []string{request.InitImage}
		payload.DenoisingStrength = defaultDenoisingStrength
		endpoint = c.baseURL + "/sdapi/v1/img2img"
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	c.authorize(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(body))
	}

	var result generationResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Images) == 0 {
		return nil, fmt.Errorf("no images in response")
	}

	return &diffusion.ImageResponse{
		ImageBase64:  result.Images[0],
		FinishReason: "success",
	}, nil
}

// GenerateImageWithRetry does not add a retry loop; a failed generation
// degrades to the deterministic renderer instead of stacking latency on
// a local server.
func (c *Client) GenerateImageWithRetry(ctx context.Context, request diffusion.ImageRequest) (*diffusion.ImageResponse, error) {
	return c.GenerateImage(ctx, request)
}

func (c *Client) Ping(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/sdapi/v1/sd-models", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.authorize(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to reach sdapi: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return nil
}
