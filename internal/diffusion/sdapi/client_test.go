package sdapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/diffusion"
)

func TestClient_GenerateImageTxt2Img(t *testing.T) {
	var captured generationRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sdapi/v1/txt2img" {
			t.Errorf("Path: %s, want: /sdapi/v1/txt2img", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("Decode request: %v", err)
		}
		json.NewEncoder(w).Encode(generationResponse{Images: []string{"aW1hZ2U="}})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	resp, err := client.GenerateImage(context.Background(), diffusion.ImageRequest{
		Prompt:         "wireframe, ui design, clean layout, login form",
		NegativePrompt: diffusion.NegativePrompt,
		Width:          800,
		Height:         600,
		Steps:          20,
		GuidanceScale:  7.5,
	})
	if err != nil {
		t.Fatalf("GenerateImage: %v", err)
	}

	if resp.ImageBase64 != "aW1hZ2U=" {
		t.Errorf("ImageBase64: %s", resp.ImageBase64)
	}
	if captured.Prompt != "wireframe, ui design, clean layout, login form" {
		t.Errorf("Prompt: %s", captured.Prompt)
	}
	if captured.Width != 800 || captured.Height != 600 {
		t.Errorf("Dimensions: %dx%d, want: 800x600", captured.Width, captured.Height)
	}
	if captured.Steps != 20 || captured.CfgScale != 7.5 {
		t.Errorf("Sampler settings: steps=%d cfg=%v", captured.Steps, captured.CfgScale)
	}
	if len(captured.InitImages) != 0 {
		t.Errorf("InitImages sent on txt2img: %v", captured.InitImages)
	}
}

func TestClient_GenerateImageImg2Img(t *testing.T) {
	var captured generationRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sdapi/v1/img2img" {
			t.Errorf("Path: %s, want: /sdapi/v1/img2img", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("Decode request: %v", err)
		}
		json.NewEncoder(w).Encode(generationResponse{Images: []string{"cmVzdWx0"}})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	resp, err := client.GenerateImage(context.Background(), diffusion.ImageRequest{
		Prompt:    "wireframe, ui design, clean layout, dashboard",
		InitImage: "YmFzZQ==",
		Width:     1200,
		Height:    800,
		Steps:     20,
	})
	if err != nil {
		t.Fatalf("GenerateImage: %v", err)
	}

	if resp.ImageBase64 != "cmVzdWx0" {
		t.Errorf("ImageBase64: %s", resp.ImageBase64)
	}
	if len(captured.InitImages) != 1 || captured.InitImages[0] != "YmFzZQ==" {
		t.Errorf("InitImages: %v", captured.InitImages)
	}
	if captured.DenoisingStrength != defaultDenoisingStrength {
		t.Errorf("DenoisingStrength: %v, want: %v", captured.DenoisingStrength, defaultDenoisingStrength)
	}
}

func TestClient_GenerateImageServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "CUDA out of memory", http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	_, err = client.GenerateImage(context.Background(), diffusion.ImageRequest{Prompt: "hero section"})
	if err == nil {
		t.Fatal("GenerateImage succeeded on a 500 response")
	}
	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "CUDA out of memory") {
		t.Errorf("Error: %v", err)
	}
}

func TestClient_SendsAPIKey(t *testing.T) {
	var authorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(generationResponse{Images: []string{"aW1hZ2U="}})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "secret-key")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.GenerateImage(context.Background(), diffusion.ImageRequest{Prompt: "navbar"}); err != nil {
		t.Fatalf("GenerateImage: %v", err)
	}

	if authorization != "Bearer secret-key" {
		t.Errorf("Authorization header: %q, want: %q", authorization, "Bearer secret-key")
	}
}

func TestClient_GenerateImageEmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generationResponse{})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	_, err = client.GenerateImage(context.Background(), diffusion.ImageRequest{Prompt: "pricing table"})
	if err == nil {
		t.Fatal("GenerateImage succeeded with no images in the response")
	}
}

func TestClient_Ping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "healthy", status: http.StatusOK, wantErr: false},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/sdapi/v1/sd-models" {
					t.Errorf("Path: %s, want: /sdapi/v1/sd-models", r.URL.Path)
				}
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client, err := NewClient(server.URL, "")
			if err != nil {
				t.Fatalf("NewClient: %v", err)
			}
			if err := client.Ping(context.Background()); (err != nil) != tt.wantErr {
				t.Errorf("Ping error: %v, wantErr: %v", err, tt.wantErr)
			}
		})
	}
}
