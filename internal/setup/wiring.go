package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/analyzer"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/cache"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/config"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/diffusion"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/diffusion/bedrock"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/diffusion/openai"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/diffusion/sdapi"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/generator"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/layout"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/render"
	"github.com/rs/zerolog"
)

const (
	AppName = "AI Wireframing Tool"
	Version = "1.0.0"
)

type Config struct {
	Port               string
	CORSAllowedOrigins []string
	AIProvider         string // bedrock, openai, sdapi, none
	AWSRegion          string
	SDModelID          string
	SDAPIBaseURL       string
	SDAPIAPIKey        string
	OpenAIKey          string
	AIAutoload         bool
	CacheProvider      string
	RedisAddr          string
	RedisPassword      string
	CacheTTL           time.Duration
	CacheMaxEntries    int
	RateLimitRPS       float64
	LogLevel           string
}

type Dependencies struct {
	Generator *generator.Generator
	Analyzer  *analyzer.Analyzer
	Diffusion *diffusion.Manager
	Cache     cache.Cache
	Templates *config.TemplateCatalog
	Logger    *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		Port:               getEnv("PORT", "8000"),
		CORSAllowedOrigins: splitOrigins(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		AIProvider:         getEnv("AI_PROVIDER", "none"),
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		SDModelID:          getEnv("SD_MODEL_ID", "stability.stable-diffusion-xl-v1"),
		SDAPIBaseURL:       getEnv("SDAPI_BASE_URL", "http://localhost:7860"),
		SDAPIAPIKey:        getEnv("SDAPI_API_KEY", ""),
		OpenAIKey:          getEnv("OPEN_AI_KEY", ""),
		AIAutoload:         getEnvBool("AI_AUTOLOAD", false),
		CacheProvider:      getEnv("CACHE_PROVIDER", "memory"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		CacheTTL:           time.Duration(getEnvInt("CACHE_TTL_SECONDS", 3600)) * time.Second,
		CacheMaxEntries:    getEnvInt("CACHE_MAX_ENTRIES", 100),
		RateLimitRPS:       getEnvFloat("RATE_LIMIT_RPS", 0),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}

// Wire builds the full generation stack from configuration. The diffusion
// backend is optional; everything downstream of it degrades to the
// deterministic renderer.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	templates, err := config.LoadTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to load template catalog: %w", err)
	}

	responseCache, err := cache.New(ctx, &cache.Config{
		Provider:      cfg.CacheProvider,
		TTL:           cfg.CacheTTL,
		MaxEntries:    cfg.CacheMaxEntries,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create response cache: %w", err)
	}

	imageClient, err := createImageClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	manager := diffusion.NewManager(imageClient, cfg.AIProvider, cfg.SDModelID, logger)

	// Autoload probes the backend at startup so the first request does not
	// pay for it. A failed probe is not fatal.
	if cfg.AIAutoload && manager.Available() {
		if err := manager.Load(ctx); err != nil {
			logger.Warn().Err(err).Msg("Diffusion backend autoload failed, continuing in fallback mode")
		}
	}

	promptAnalyzer := analyzer.NewAnalyzer(logger)

	gen := generator.NewGenerator(
		promptAnalyzer,
		layout.NewEngine(logger),
		render.NewSVGRenderer(),
		render.NewPNGRenderer(),
		manager,
		responseCache,
		logger,
	)

	return &Dependencies{
		Generator: gen,
		Analyzer:  promptAnalyzer,
		Diffusion: manager,
		Cache:     responseCache,
		Templates: templates,
		Logger:    logger,
	}, nil
}

func createImageClient(ctx context.Context, cfg *Config) (diffusion.ImageClient, error) {
	switch cfg.AIProvider {
	case "bedrock":
		client, err := bedrock.NewClient(ctx, cfg.AWSRegion, cfg.SDModelID)
		if err != nil {
			return nil, fmt.Errorf("failed to create Bedrock client: %w", err)
		}
		return client, nil

	case "openai":
		client, err := openai.NewClient(cfg.OpenAIKey, cfg.SDModelID)
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
		}
		return client, nil

	case "sdapi":
		client, err := sdapi.NewClient(cfg.SDAPIBaseURL, cfg.SDAPIAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create SD API client: %w", err)
		}
		return client, nil

	case "none", "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown AI provider: %s", cfg.AIProvider)
	}
}

func splitOrigins(value string) []string {
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}
