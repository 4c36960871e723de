package render

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"testing"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
)

func TestPNGRenderer_Render(t *testing.T) {
	renderer := NewPNGRenderer()

	data, err := renderer.Render(testLayout(), models.StyleLowFi)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Output does not decode as PNG: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 600 || bounds.Dy() != 800 {
		t.Errorf("Canvas size: %dx%d, want: 600x800", bounds.Dx(), bounds.Dy())
	}

	// Something must have been drawn on the white canvas.
	drawn := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 4 {
		for x := bounds.Min.X; x < bounds.Max.X; x += 4 {
			r, g, b, _ := img.At(x, y).RGBA()
			if r != 0xffff || g != 0xffff || b != 0xffff {
				drawn++
			}
		}
	}
	if drawn == 0 {
		t.Error("Canvas is entirely white, no components drawn")
	}
}

func TestPNGRenderer_RenderAllStyles(t *testing.T) {
	renderer := NewPNGRenderer()
	layout := testLayout()

	for _, style := range []models.Style{models.StyleLowFi, models.StyleHighFi, models.StyleMobile, models.StyleWeb} {
		t.Run(string(style), func(t *testing.T) {
			data, err := renderer.Render(layout, style)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if _, err := png.Decode(bytes.NewReader(data)); err != nil {
				t.Fatalf("Output does not decode as PNG: %v", err)
			}
		})
	}
}

func TestPNGRenderer_RenderBase64(t *testing.T) {
	renderer := NewPNGRenderer()

	encoded, err := renderer.RenderBase64(testLayout(), models.StyleLowFi)
	if err != nil {
		t.Fatalf("RenderBase64: %v", err)
	}
	if encoded == "" {
		t.Fatal("Empty base64 payload")
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("Payload is not valid base64: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("Decoded payload is not a PNG: %v", err)
	}
}

func TestPNGRenderer_SkipsZeroHeightComponents(t *testing.T) {
	renderer := NewPNGRenderer()

	layout := models.Layout{
		Type:   models.LayoutMobileApp,
		Width:  200,
		Height: 200,
		Components: []models.Component{
			{Type: models.ComponentHeader, Label: "Status Bar", X: 0, Y: 0, Width: 200, Height: 44},
			{Type: models.ComponentContent, Label: "Main Content", X: 20, Y: 116, Width: 160, Height: 0},
		},
	}

	data, err := renderer.Render(layout, models.StyleMobile)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("Output does not decode as PNG: %v", err)
	}
}

func TestPNGRenderer_Deterministic(t *testing.T) {
	renderer := NewPNGRenderer()
	layout := testLayout()

	first, err := renderer.Render(layout, models.StyleHighFi)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := renderer.Render(layout, models.StyleHighFi)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("PNG output differs between identical renders")
	}
}
