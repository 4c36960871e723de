package diffusion

import (
	"context"
)

// ImageClient is an interface for invoking diffusion backends
// This allows mocking in tests without making real API calls
type ImageClient interface {
	GenerateImage(ctx context.Context, request ImageRequest) (*ImageResponse, error)
	GenerateImageWithRetry(ctx context.Context, request ImageRequest) (*ImageResponse, error)
	Ping(ctx context.Context) error
}
