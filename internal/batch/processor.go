package batch

import (
	"context"
	"time"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/generator"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Result is one line of the results.jsonl summary. Wireframe carries the
// rendered artifacts for the writer and stays out of the summary.
type Result struct {
	ID       string            `json:"id"`
	Prompt   string            `json:"prompt"`
	Layout   models.LayoutType `json:"layout,omitempty"`
	Duration float64           `json:"duration_seconds"`
	Error    string            `json:"error,omitempty"`

	Wireframe *models.WireframeResponse `json:"-"`
}

type Processor struct {
	generator *generator.Generator
	workers   int
	logger    *zerolog.Logger
}

func NewProcessor(gen *generator.Generator, workers int, logger *zerolog.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		generator: gen,
		workers:   workers,
		logger:    logger,
	}
}

// Process renders the records through a bounded worker pool. The results
// channel closes once every record has been handled; ordering follows
// completion, not input order.
func (p *Processor) Process(ctx context.Context, records []InputRecord) <-chan Result {
	results := make(chan Result)

	go func() {
		defer close(results)

		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(p.workers)

		for _, record := range records {
			if record.Error != nil {
				p.logger.Warn().Int("line", record.LineNumber).Msg("Skipping malformed record")
				continue
			}

			g.Go(func() error {
				results <- p.processOne(ctx, record)
				return nil
			})
		}

		g.Wait()
	}()

	return results
}

func (p *Processor) processOne(ctx context.Context, record InputRecord) Result {
	started := time.Now()

	wireframe, err := p.generator.Generate(ctx, record.Request)
	if err != nil {
		p.logger.Error().
			Err(err).
			Int("line", record.LineNumber).
			Msg("Wireframe generation failed")

		return Result{
			Prompt:   record.Request.Prompt,
			Duration: time.Since(started).Seconds(),
			Error:    err.Error(),
		}
	}

	return Result{
		ID:        wireframe.ID,
		Prompt:    record.Request.Prompt,
		Layout:    wireframe.LayoutType,
		Duration:  wireframe.GenerationTime,
		Wireframe: wireframe,
	}
}
