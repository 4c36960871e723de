package bedrock

import (
	"errors"
	"testing"
	"time"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "throttling", err: errors.New("ThrottlingException: rate exceeded"), want: true},
		{name: "too many requests", err: errors.New("429 TooManyRequestsException"), want: true},
		{name: "service unavailable", err: errors.New("ServiceUnavailableException"), want: true},
		{name: "internal server", err: errors.New("InternalServerException"), want: true},
		{name: "timeout", err: errors.New("dial tcp: i/o timeout"), want: true},
		{name: "connection reset", err: errors.New("read tcp: connection reset by peer"), want: true},
		{name: "validation", err: errors.New("ValidationException: invalid model id"), want: false},
		{name: "access denied", err: errors.New("AccessDeniedException"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryableError(tt.err); got != tt.want {
				t.Errorf("isRetryableError(%v): %v, want: %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff(t *testing.T) {
	initialDelay := 100 * time.Millisecond
	maxDelay := 2 * time.Second

	previous := time.Duration(0)
	for attempt := 0; attempt < 4; attempt++ {
		delay := calculateBackoff(attempt, initialDelay, maxDelay)
		if delay <= 0 {
			t.Fatalf("attempt %d: non-positive delay %v", attempt, delay)
		}
		if delay <= previous {
			t.Errorf("attempt %d: delay %v did not grow from %v", attempt, delay, previous)
		}
		previous = delay
	}

	// Far attempts saturate at the cap, give or take jitter.
	ceiling := time.Duration(float64(maxDelay) * 1.2)
	if delay := calculateBackoff(20, initialDelay, maxDelay); delay > ceiling {
		t.Errorf("saturated delay %v exceeds jittered cap %v", delay, ceiling)
	}
}
