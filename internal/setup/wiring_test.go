package setup

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "CORS_ALLOWED_ORIGINS", "AI_PROVIDER", "CACHE_PROVIDER",
		"CACHE_TTL_SECONDS", "CACHE_MAX_ENTRIES", "RATE_LIMIT_RPS", "AI_AUTOLOAD",
	} {
		os.Unsetenv(key)
	}

	cfg := LoadConfig()

	if cfg.Port != "8000" {
		t.Errorf("Expected port 8000, got %s", cfg.Port)
	}
	if cfg.AIProvider != "none" {
		t.Errorf("Expected provider none, got %s", cfg.AIProvider)
	}
	if cfg.CacheProvider != "memory" {
		t.Errorf("Expected memory cache, got %s", cfg.CacheProvider)
	}
	if cfg.CacheTTL != time.Hour {
		t.Errorf("Expected 1h cache TTL, got %s", cfg.CacheTTL)
	}
	if cfg.CacheMaxEntries != 100 {
		t.Errorf("Expected 100 cache entries, got %d", cfg.CacheMaxEntries)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Errorf("Expected wildcard CORS origin, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.RateLimitRPS != 0 {
		t.Errorf("Expected rate limiting off, got %f", cfg.RateLimitRPS)
	}
	if cfg.AIAutoload {
		t.Error("Expected autoload off by default")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Unsetenv("PORT")
	os.Setenv("AI_PROVIDER", "sdapi")
	defer os.Unsetenv("AI_PROVIDER")
	os.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, http://localhost:5173")
	defer os.Unsetenv("CORS_ALLOWED_ORIGINS")
	os.Setenv("CACHE_TTL_SECONDS", "120")
	defer os.Unsetenv("CACHE_TTL_SECONDS")
	os.Setenv("AI_AUTOLOAD", "true")
	defer os.Unsetenv("AI_AUTOLOAD")

	cfg := LoadConfig()

	if cfg.Port != "9000" {
		t.Errorf("Expected port 9000, got %s", cfg.Port)
	}
	if cfg.AIProvider != "sdapi" {
		t.Errorf("Expected provider sdapi, got %s", cfg.AIProvider)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
		t.Errorf("Expected two parsed origins, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.CacheTTL != 2*time.Minute {
		t.Errorf("Expected 2m cache TTL, got %s", cfg.CacheTTL)
	}
	if !cfg.AIAutoload {
		t.Error("Expected autoload on")
	}
}

func TestWire_FallbackOnly(t *testing.T) {
	logger := zerolog.Nop()
	cfg := &Config{
		AIProvider:      "none",
		CacheProvider:   "memory",
		CacheTTL:        time.Hour,
		CacheMaxEntries: 10,
	}

	deps, err := Wire(context.Background(), cfg, &logger)
	if err != nil {
		t.Fatalf("Wire: %v", err)
	}

	if deps.Generator == nil || deps.Analyzer == nil || deps.Diffusion == nil || deps.Cache == nil {
		t.Fatal("Expected all dependencies wired")
	}
	if deps.Diffusion.Available() {
		t.Error("Expected no diffusion backend with provider none")
	}
	if len(deps.Templates.Templates) == 0 {
		t.Error("Expected the built-in template catalog")
	}
}

func TestWire_SDAPIProvider(t *testing.T) {
	logger := zerolog.Nop()
	cfg := &Config{
		AIProvider:      "sdapi",
		SDAPIBaseURL:    "http://localhost:7860",
		SDModelID:       "sd-v1-5",
		CacheProvider:   "memory",
		CacheTTL:        time.Hour,
		CacheMaxEntries: 10,
	}

	deps, err := Wire(context.Background(), cfg, &logger)
	if err != nil {
		t.Fatalf("Wire: %v", err)
	}

	// The client is constructed eagerly but nothing is probed until load.
	if !deps.Diffusion.Available() {
		t.Error("Expected an available diffusion backend")
	}
	if status := deps.Diffusion.Status(); status.Loaded {
		t.Error("Backend must not be loaded without autoload")
	}
}

func TestWire_UnknownProvider(t *testing.T) {
	logger := zerolog.Nop()
	cfg := &Config{
		AIProvider:      "midjourney",
		CacheProvider:   "memory",
		CacheTTL:        time.Hour,
		CacheMaxEntries: 10,
	}

	if _, err := Wire(context.Background(), cfg, &logger); err == nil {
		t.Fatal("Expected error for unknown AI provider")
	}
}

func TestWire_UnknownCacheProvider(t *testing.T) {
	logger := zerolog.Nop()
	cfg := &Config{
		AIProvider:    "none",
		CacheProvider: "memcached",
	}

	if _, err := Wire(context.Background(), cfg, &logger); err == nil {
		t.Fatal("Expected error for unknown cache provider")
	}
}
