package redis

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
	"github.com/rs/zerolog"
)

/*
TEST 1: Write Rendered Wireframe Files
Purpose: Verify that a generated wireframe is persisted as an SVG file and
a decoded PNG file named after the wireframe ID.
*/
func TestConsumer_WriteOutputs(t *testing.T) {
	dir := t.TempDir()
	logger := zerolog.Nop()

	pngBytes := []byte("\x89PNG\r\n\x1a\nfake-image-data")
	wireframe := &models.WireframeResponse{
		ID:          "wf-123",
		SVGCode:     `<svg xmlns="http://www.w3.org/2000/svg"></svg>`,
		ImageBase64: base64.StdEncoding.EncodeToString(pngBytes),
	}

	consumer := &Consumer{outputDir: dir, logger: &logger}
	if err := consumer.writeOutputs(wireframe); err != nil {
		t.Fatalf("writeOutputs failed: %v", err)
	}

	svg, err := os.ReadFile(filepath.Join(dir, "wf-123.svg"))
	if err != nil {
		t.Fatalf("Expected SVG file, got error: %v", err)
	}
	if string(svg) != wireframe.SVGCode {
		t.Errorf("Expected SVG file to match SVGCode, got %q", svg)
	}

	png, err := os.ReadFile(filepath.Join(dir, "wf-123.png"))
	if err != nil {
		t.Fatalf("Expected PNG file, got error: %v", err)
	}
	if !bytes.Equal(png, pngBytes) {
		t.Errorf("Expected PNG file to match decoded payload, got %d bytes", len(png))
	}
}

/*
TEST 2: Reject Corrupt PNG Payload
Purpose: Verify that an undecodable base64 payload surfaces an error instead
of writing a corrupt file.
*/
func TestConsumer_WriteOutputs_BadBase64(t *testing.T) {
	dir := t.TempDir()
	logger := zerolog.Nop()

	wireframe := &models.WireframeResponse{
		ID:          "wf-bad",
		SVGCode:     "<svg></svg>",
		ImageBase64: "not valid base64!!!",
	}

	consumer := &Consumer{outputDir: dir, logger: &logger}
	if err := consumer.writeOutputs(wireframe); err == nil {
		t.Error("Expected error for corrupt base64 payload, got nil")
	}

	if _, err := os.Stat(filepath.Join(dir, "wf-bad.png")); !os.IsNotExist(err) {
		t.Error("Expected no PNG file for corrupt payload")
	}
}
