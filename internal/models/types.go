package models

import (
	"strings"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/api/middleware"
)

type Style string

const (
	StyleLowFi  Style = "low-fi"
	StyleHighFi Style = "high-fi"
	StyleMobile Style = "mobile"
	StyleWeb    Style = "web"
)

func (s Style) Valid() bool {
	switch s {
	case StyleLowFi, StyleHighFi, StyleMobile, StyleWeb:
		return true
	}
	return false
}

type LayoutType string

const (
	LayoutWebDesktop  LayoutType = "web-desktop"
	LayoutWebMobile   LayoutType = "web-mobile"
	LayoutMobileApp   LayoutType = "mobile-app"
	LayoutDashboard   LayoutType = "dashboard"
	LayoutLandingPage LayoutType = "landing-page"
	LayoutForm        LayoutType = "form"
	LayoutEcommerce   LayoutType = "ecommerce"
	LayoutBlog        LayoutType = "blog"
)

type ComponentType string

const (
	ComponentHeader     ComponentType = "header"
	ComponentNavigation ComponentType = "navigation"
	ComponentHero       ComponentType = "hero"
	ComponentSidebar    ComponentType = "sidebar"
	ComponentContent    ComponentType = "content"
	ComponentFooter     ComponentType = "footer"
	ComponentForm       ComponentType = "form"
	ComponentButton     ComponentType = "button"
	ComponentImage      ComponentType = "image"
	ComponentText       ComponentType = "text"
	ComponentCard       ComponentType = "card"
	ComponentList       ComponentType = "list"
	ComponentTable      ComponentType = "table"
	ComponentChart      ComponentType = "chart"
)

// AllComponentTypes lists every component the layout engine can place.
func AllComponentTypes() []ComponentType {
	return []ComponentType{
		ComponentHeader, ComponentNavigation, ComponentHero, ComponentSidebar,
		ComponentContent, ComponentFooter, ComponentForm, ComponentButton,
		ComponentImage, ComponentText, ComponentCard, ComponentList,
		ComponentTable, ComponentChart,
	}
}

func (c ComponentType) Valid() bool {
	for _, known := range AllComponentTypes() {
		if c == known {
			return true
		}
	}
	return false
}

// componentPriority orders components top to bottom the way layouts stack
// them: chrome first, media and actions late, footer last.
var componentPriority = map[ComponentType]int{
	ComponentHeader:     1,
	ComponentNavigation: 2,
	ComponentHero:       3,
	ComponentSidebar:    4,
	ComponentContent:    5,
	ComponentForm:       6,
	ComponentCard:       7,
	ComponentList:       8,
	ComponentTable:      9,
	ComponentChart:      10,
	ComponentImage:      11,
	ComponentText:       12,
	ComponentButton:     13,
	ComponentFooter:     14,
}

func ComponentPriority(c ComponentType) int {
	if p, ok := componentPriority[c]; ok {
		return p
	}
	return 99
}

// Request/response limits and defaults.
const (
	MaxPromptLength = 1000
	MinDimension    = 200
	MaxDimension    = 2000
	MinSteps        = 1
	MaxSteps        = 50
	MinGuidance     = 1.0
	MaxGuidance     = 20.0

	DefaultWidth    = 512
	DefaultHeight   = 512
	DefaultSteps    = 20
	DefaultGuidance = 7.5
)

// Input message
type WireframeRequest struct {
	Prompt         string  `json:"prompt" description:"Natural language description of the UI"`
	Style          Style   `json:"style,omitempty" description:"Wireframe style: low-fi, high-fi, mobile, web (default: low-fi)"`
	Width          int     `json:"width,omitempty" description:"Image width in pixels (200-2000, default: 512)"`
	Height         int     `json:"height,omitempty" description:"Image height in pixels (200-2000, default: 512)"`
	InferenceSteps int     `json:"inference_steps,omitempty" description:"Diffusion inference steps (1-50, default: 20)"`
	GuidanceScale  float64 `json:"guidance_scale,omitempty" description:"Diffusion guidance scale (1.0-20.0, default: 7.5)"`
}

func (r *WireframeRequest) SetDefaults() {
	if r.Style == "" {
		r.Style = StyleLowFi
	}

	if r.Width == 0 {
		r.Width = DefaultWidth
	}

	if r.Height == 0 {
		r.Height = DefaultHeight
	}

	if r.InferenceSteps == 0 {
		r.InferenceSteps = DefaultSteps
	}

	if r.GuidanceScale == 0 {
		r.GuidanceScale = DefaultGuidance
	}
}

func (r *WireframeRequest) Validate() error {
	if strings.TrimSpace(r.Prompt) == "" {
		return middleware.ErrEmptyPrompt
	}

	if len(r.Prompt) > MaxPromptLength {
		return middleware.ErrPromptTooLong
	}

	if !r.Style.Valid() {
		return middleware.ErrUnknownStyle
	}

	if r.Width < MinDimension || r.Width > MaxDimension {
		return middleware.ErrInvalidDimensions
	}

	if r.Height < MinDimension || r.Height > MaxDimension {
		return middleware.ErrInvalidDimensions
	}

	if r.InferenceSteps < MinSteps || r.InferenceSteps > MaxSteps {
		return middleware.ErrInvalidSteps
	}

	if r.GuidanceScale < MinGuidance || r.GuidanceScale > MaxGuidance {
		return middleware.ErrInvalidGuidance
	}
	return nil
}

type GenerationMetadata struct {
	Mode           string `json:"mode" description:"Generation mode: ai or fallback"`
	Model          string `json:"model,omitempty" description:"Diffusion model used, when mode is ai"`
	Cached         bool   `json:"cached" description:"Whether the response was served from cache"`
	Prompt         string `json:"prompt" description:"Prompt the wireframe was generated from"`
	ComponentCount int    `json:"component_count" description:"Number of components placed on the canvas"`
	CanvasSize     string `json:"canvas_size" description:"Rendered canvas size, WxH"`
}

// Final output returned to the client
type WireframeResponse struct {
	ID             string             `json:"id"`
	ImageBase64    string             `json:"image_base64"`
	SVGCode        string             `json:"svg_code"`
	LayoutType     LayoutType         `json:"layout_type"`
	Style          Style              `json:"style"`
	Components     []string           `json:"components"`
	GenerationTime float64            `json:"generation_time"`
	Metadata       GenerationMetadata `json:"metadata"`
}

// Normalized internal object produced by prompt analysis
type PromptAnalysis struct {
	LayoutType      LayoutType      `json:"layout_type"`
	Components      []ComponentType `json:"components"`
	DetectedStyle   Style           `json:"detected_style"`
	Confidence      float64         `json:"confidence"`
	SuggestedWidth  int             `json:"suggested_width"`
	SuggestedHeight int             `json:"suggested_height"`
	Requirements    []string        `json:"requirements,omitempty"`
}

// A component placed on the canvas by the layout engine
type Component struct {
	Type   ComponentType `json:"type"`
	Label  string        `json:"label"`
	X      int           `json:"x"`
	Y      int           `json:"y"`
	Width  int           `json:"width"`
	Height int           `json:"height"`
}

type Layout struct {
	Type       LayoutType  `json:"type"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Components []Component `json:"components"`
}

type StyleDescriptor struct {
	ID          Style  `json:"id" description:"Style identifier"`
	Name        string `json:"name" description:"Display name"`
	Description string `json:"description" description:"What the style looks like"`
}

// AllStyles returns the static style catalog. The four entries are part of
// the API contract and never change at runtime.
func AllStyles() []StyleDescriptor {
	return []StyleDescriptor{
		{ID: StyleLowFi, Name: "Low Fidelity", Description: "Simple black and white wireframe with basic shapes"},
		{ID: StyleHighFi, Name: "High Fidelity", Description: "Detailed wireframe with more realistic proportions"},
		{ID: StyleMobile, Name: "Mobile Optimized", Description: "Mobile-first wireframe design"},
		{ID: StyleWeb, Name: "Web Optimized", Description: "Desktop web wireframe design"},
	}
}

type LayoutTypeDescriptor struct {
	ID          LayoutType `json:"id" description:"Layout type identifier"`
	Name        string     `json:"name" description:"Display name"`
	Description string     `json:"description" description:"Typical use of the layout"`
}

func AllLayoutTypes() []LayoutTypeDescriptor {
	return []LayoutTypeDescriptor{
		{ID: LayoutWebDesktop, Name: "Web Desktop", Description: "Standard desktop website layout"},
		{ID: LayoutWebMobile, Name: "Web Mobile", Description: "Responsive website layout at phone widths"},
		{ID: LayoutMobileApp, Name: "Mobile App", Description: "Native mobile application screen"},
		{ID: LayoutDashboard, Name: "Dashboard", Description: "Admin dashboard with sidebar and metric cards"},
		{ID: LayoutLandingPage, Name: "Landing Page", Description: "Marketing page with hero and content sections"},
		{ID: LayoutForm, Name: "Form", Description: "Centered form with labeled fields and a submit button"},
		{ID: LayoutEcommerce, Name: "E-commerce", Description: "Product listing with category navigation"},
		{ID: LayoutBlog, Name: "Blog", Description: "Article layout with content column and sidebar"},
	}
}

func (l LayoutType) Valid() bool {
	for _, known := range AllLayoutTypes() {
		if l == known.ID {
			return true
		}
	}
	return false
}
