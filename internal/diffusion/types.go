package diffusion

// ImageRequest is the provider-neutral generation input. InitImage is a
// base64 PNG of the composed wireframe; providers that support
// image-to-image condition on it so the layout survives the diffusion
// pass.
type ImageRequest struct {
	Prompt         string
	NegativePrompt string
	InitImage      string
	Width          int
	Height         int
	Steps          int
	GuidanceScale  float64
}

type ImageResponse struct {
	ImageBase64  string
	FinishReason string
}

// NegativePrompt steers every backend away from photorealistic output.
const NegativePrompt = "photo, realistic, colorful, detailed, complex, cluttered, messy"

// EnhancePrompt prefixes the user prompt with the wireframe conditioning
// terms the models are steered with.
func EnhancePrompt(prompt string) string {
	return "wireframe, ui design, clean layout, " + prompt
}
