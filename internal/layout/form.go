package layout

import (
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
)

var formFields = []string{"Email Address", "Password", "Confirm Password", "Full Name"}

// FormComposer lays out a centered signup-style form: title, a column of
// input fields, and a submit button.
type FormComposer struct{}

func (c *FormComposer) Compose(spec Spec) []models.Component {
	var layout []models.Component

	formWidth := min(400, spec.Width-2*Margin)
	formX := (spec.Width - formWidth) / 2
	currentY := Margin * 2

	if spec.has(models.ComponentHeader) {
		layout = append(layout, models.Component{
			Type:   models.ComponentHeader,
			Label:  "Form Title",
			X:      formX,
			Y:      currentY,
			Width:  formWidth,
			Height: 60,
		})
		currentY += 80
	}

	if spec.has(models.ComponentForm) {
		for _, name := range formFields {
			layout = append(layout, models.Component{
				Type:   models.ComponentForm,
				Label:  name,
				X:      formX,
				Y:      currentY,
				Width:  formWidth,
				Height: 48,
			})
			currentY += 48 + Spacing
		}
	}

	if spec.has(models.ComponentButton) {
		layout = append(layout, models.Component{
			Type:   models.ComponentButton,
			Label:  "Submit Button",
			X:      formX,
			Y:      currentY + Spacing,
			Width:  formWidth,
			Height: 48,
		})
	}

	return layout
}
