package batch

import (
	"bufio"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
)

func sampleResult() Result {
	return Result{
		ID:       "wf-1",
		Prompt:   "login form",
		Layout:   models.LayoutForm,
		Duration: 0.01,
		Wireframe: &models.WireframeResponse{
			ID:          "wf-1",
			SVGCode:     "<svg></svg>",
			ImageBase64: base64.StdEncoding.EncodeToString([]byte("\x89PNG-data")),
		},
	}
}

func TestWriter_Both(t *testing.T) {
	dir := t.TempDir()

	writer, err := NewWriter(dir, FormatBoth, newTestLogger())
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	if err := writer.Write(sampleResult()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	for _, name := range []string{"wf-1.svg", "wf-1.png", "results.jsonl"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Expected %s to exist, got %v", name, err)
		}
	}
}

func TestWriter_SVGOnly(t *testing.T) {
	dir := t.TempDir()

	writer, err := NewWriter(dir, FormatSVG, newTestLogger())
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	defer writer.Close()

	if err := writer.Write(sampleResult()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "wf-1.svg")); err != nil {
		t.Error("Expected SVG file to exist")
	}
	if _, err := os.Stat(filepath.Join(dir, "wf-1.png")); !os.IsNotExist(err) {
		t.Error("Expected no PNG file for svg format")
	}
}

func TestWriter_SummaryLine(t *testing.T) {
	dir := t.TempDir()

	writer, err := NewWriter(dir, FormatBoth, newTestLogger())
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	failed := Result{Prompt: "   ", Duration: 0.001, Error: "prompt cannot be empty"}
	if err := writer.Write(sampleResult()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := writer.Write(failed); err != nil {
		t.Fatalf("Write failed for error result: %v", err)
	}
	writer.Close()

	f, err := os.Open(filepath.Join(dir, "results.jsonl"))
	if err != nil {
		t.Fatalf("Failed to open summary: %v", err)
	}
	defer f.Close()

	var lines []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("Malformed summary line: %v", err)
		}
		lines = append(lines, entry)
	}

	if len(lines) != 2 {
		t.Fatalf("Expected 2 summary lines, got %d", len(lines))
	}
	if lines[0]["id"] != "wf-1" {
		t.Errorf("Expected id wf-1, got %v", lines[0]["id"])
	}
	if _, ok := lines[0]["svg_code"]; ok {
		t.Error("Summary line should not embed the rendered wireframe")
	}
	if lines[1]["error"] != "prompt cannot be empty" {
		t.Errorf("Expected error message in summary, got %v", lines[1]["error"])
	}
}

func TestWriter_UnsupportedFormat(t *testing.T) {
	if _, err := NewWriter(t.TempDir(), "pdf", newTestLogger()); err == nil {
		t.Error("Expected error for unsupported format")
	}
}
