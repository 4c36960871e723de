package redis

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/generator"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type Consumer struct {
	client       *redis.Client
	stream       string
	groupID      string
	consumerName string
	generator    *generator.Generator
	outputDir    string
	logger       *zerolog.Logger
}

func NewConsumer(client *redis.Client, stream string, groupID string, consumerName string, gen *generator.Generator, outputDir string, logger *zerolog.Logger) *Consumer {
	return &Consumer{
		client:       client,
		stream:       stream,
		groupID:      groupID,
		consumerName: consumerName,
		generator:    gen,
		outputDir:    outputDir,
		logger:       logger,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.groupID, "0").Err()
	if err != nil && err.Error() != "BUSYGROUP Consumer Group name already exists" {
		return err
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.stream).
		Str("group", c.groupID).
		Str("consumer", c.consumerName).
		Str("output_dir", c.outputDir).
		Msg("Consumer started")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		msgs, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.groupID,
			Consumer: c.consumerName,
			Streams:  []string{c.stream, ">"},
			Count:    1,
			Block:    2 * time.Second,
		}).Result()

		if err != nil {
			if errors.Is(err, redis.Nil) {
				// timeout, no message -> loop again
				continue
			}

			if ctx.Err() != nil {
				return ctx.Err() // context cancelled during block
			}

			c.logger.Error().Err(err).Msg("Failed to read from stream")
			continue
		}

		for _, msg := range msgs[0].Messages {
			c.process(ctx, msg)
		}
	}
}

func (c *Consumer) Stop() error {
	// No-op
	return nil

}

func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	c.logger.Info().Str("id", msg.ID).Msg("Message received")

	// decode json
	payload, ok := msg.Values["payload"].(string)
	if !ok {
		c.logger.Error().Str("id", msg.ID).Msg("Missing payload field")
		c.ack(ctx, msg.ID)
		return
	}

	var request models.WireframeRequest
	if err := json.Unmarshal([]byte(payload), &request); err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to decode message")
		c.ack(ctx, msg.ID) // bad message, ACK to skip it
		return
	}

	wireframe, err := c.generator.Generate(ctx, request)
	if err != nil {
		if middleware.IsValidationError(err) {
			// Invalid requests never become valid; ACK so they are not
			// redelivered forever.
			c.logger.Error().Err(err).Str("id", msg.ID).Msg("Invalid wireframe request")
			c.ack(ctx, msg.ID)
			return
		}

		// Transient failure: leave unacked so the entry is redelivered.
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Wireframe generation failed")
		return
	}

	if err := c.writeOutputs(wireframe); err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to write wireframe files")
		return
	}

	c.logger.Info().
		Str("id", msg.ID).
		Str("wireframe_id", wireframe.ID).
		Str("layout", string(wireframe.LayoutType)).
		Float64("seconds", wireframe.GenerationTime).
		Msg("Wireframe rendered")

	c.ack(ctx, msg.ID)

}

func (c *Consumer) writeOutputs(wireframe *models.WireframeResponse) error {
	svgPath := filepath.Join(c.outputDir, wireframe.ID+".svg")
	if err := os.WriteFile(svgPath, []byte(wireframe.SVGCode), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", svgPath, err)
	}

	png, err := base64.StdEncoding.DecodeString(wireframe.ImageBase64)
	if err != nil {
		return fmt.Errorf("failed to decode PNG payload: %w", err)
	}

	pngPath := filepath.Join(c.outputDir, wireframe.ID+".png")
	if err := os.WriteFile(pngPath, png, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", pngPath, err)
	}

	return nil
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	if err := c.client.XAck(ctx, c.stream, c.groupID, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ACK message")
	}
}
