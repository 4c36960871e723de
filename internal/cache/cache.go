// Package cache stores generated wireframe responses keyed by the
// normalized request, so repeated prompts skip the full pipeline.
package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
)

type Cache interface {
	Get(ctx context.Context, key string) (*models.WireframeResponse, bool)
	Set(ctx context.Context, key string, response *models.WireframeResponse)
	Stats(ctx context.Context) Stats
}

type Stats struct {
	Provider string `json:"provider"`
	Enabled  bool   `json:"enabled"`
	Entries  int    `json:"entries"`
	TTL      int    `json:"ttl_seconds"`
}

// Key covers every request field that influences the generated image.
func Key(request models.WireframeRequest) string {
	canonical := fmt.Sprintf("%s|%s|%d|%d|%d|%g",
		request.Prompt, request.Style, request.Width, request.Height,
		request.InferenceSteps, request.GuidanceScale)

	sum := md5.Sum([]byte(canonical))
	return hex.EncodeToString(sum[:])
}
