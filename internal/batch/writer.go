package batch

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatBoth = "both"
)

// Writer persists rendered wireframes under a directory and appends one
// summary line per result to results.jsonl.
type Writer struct {
	dir     string
	format  string
	summary *os.File
	encoder *json.Encoder
	logger  *zerolog.Logger
}

func NewWriter(dir string, format string, logger *zerolog.Logger) (*Writer, error) {
	switch format {
	case FormatSVG, FormatPNG, FormatBoth:
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	summary, err := os.Create(filepath.Join(dir, "results.jsonl"))
	if err != nil {
		return nil, fmt.Errorf("failed to create summary file: %w", err)
	}

	return &Writer{
		dir:     dir,
		format:  format,
		summary: summary,
		encoder: json.NewEncoder(summary),
		logger:  logger,
	}, nil
}

func (w *Writer) Write(result Result) error {
	if result.Wireframe != nil {
		if err := w.writeArtifacts(result); err != nil {
			return err
		}
	}

	return w.encoder.Encode(result)
}

func (w *Writer) writeArtifacts(result Result) error {
	wireframe := result.Wireframe

	if w.format == FormatSVG || w.format == FormatBoth {
		path := filepath.Join(w.dir, wireframe.ID+".svg")
		if err := os.WriteFile(path, []byte(wireframe.SVGCode), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	if w.format == FormatPNG || w.format == FormatBoth {
		png, err := base64.StdEncoding.DecodeString(wireframe.ImageBase64)
		if err != nil {
			return fmt.Errorf("failed to decode PNG payload for %s: %w", wireframe.ID, err)
		}

		path := filepath.Join(w.dir, wireframe.ID+".png")
		if err := os.WriteFile(path, png, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	return nil
}

func (w *Writer) Close() error {
	return w.summary.Close()
}
