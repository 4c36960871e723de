package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/api"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/page"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/setup/logger"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	_ "go.uber.org/automaxprocs"
)

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       setup.AppName,
			Description: "Natural language UI descriptions to wireframes",
			Version:     setup.Version,
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
		{TagProps: spec.TagProps{Name: "wireframe", Description: "Wireframe generation"}},
		{TagProps: spec.TagProps{Name: "ai", Description: "Diffusion backend lifecycle"}},
		{TagProps: spec.TagProps{Name: "stats", Description: "Usage statistics"}},
	}
}

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	log.Info().Msg("Starting Wireframe Agent API Server")

	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	cfg := setup.LoadConfig()
	appLogger := logger.New(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	deps, err := setup.Wire(ctx, cfg, &appLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	log.Info().
		Str("ai_provider", cfg.AIProvider).
		Str("cache_provider", cfg.CacheProvider).
		Bool("ai_available", deps.Diffusion.Available()).
		Msg("Generation stack wired")

	// API
	handler := api.NewHandler(
		deps.Generator,
		deps.Analyzer,
		deps.Diffusion,
		deps.Cache,
		deps.Templates,
		setup.AppName,
		setup.Version,
		deps.Logger,
	)

	container := restful.NewContainer()

	// Add filters
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)
	container.Filter(middleware.RateLimit(cfg.RateLimitRPS, int(cfg.RateLimitRPS)))

	// register API
	api.RegisterRoutes(container, handler)

	config := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       "/api/v1/openapi.json",
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}

	container.Add(restfulspec.NewOpenAPIService(config))

	// Embedded client page at the root, API under /api/
	mux := http.NewServeMux()
	mux.Handle("/api/", container)
	mux.Handle("/", page.Handler(page.Params{AppName: setup.AppName, Version: setup.Version}, deps.Logger))

	// Setup CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("address", addr).Msg("Starting server")

	server := http.Server{
		Addr:         addr,
		Handler:      corsHandler.Handler(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("Wireframe Agent stopped")
}
