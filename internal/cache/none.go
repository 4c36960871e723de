package cache

import (
	"context"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
)

// NoopCache disables caching without branching at call sites.
type NoopCache struct{}

func (NoopCache) Get(ctx context.Context, key string) (*models.WireframeResponse, bool) {
	return nil, false
}

func (NoopCache) Set(ctx context.Context, key string, response *models.WireframeResponse) {}

func (NoopCache) Stats(ctx context.Context) Stats {
	return Stats{Provider: "none"}
}
