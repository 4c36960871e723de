package middleware

import (
	"errors"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

// Validation errors returned by request models. Handlers map these to 400.
var (
	ErrEmptyPrompt       = errors.New("prompt must not be empty")
	ErrPromptTooLong     = errors.New("prompt exceeds maximum length of 1000 characters")
	ErrUnknownStyle      = errors.New("style must be one of: low-fi, high-fi, mobile, web")
	ErrInvalidDimensions = errors.New("width and height must be between 200 and 2000 pixels")
	ErrInvalidSteps      = errors.New("inference_steps must be between 1 and 50")
	ErrInvalidGuidance   = errors.New("guidance_scale must be between 1.0 and 20.0")
)

type ErrorResponse struct {
	Error   string `json:"error" description:"Error message"`
	Code    int    `json:"code" description:"HTTP status code"`
	Details string `json:"details,omitempty" description:"Additional error details"`
}

// HandleError writes err as a structured error body with the given status.
func HandleError(resp *restful.Response, err error, status int) {
	errorResponse := ErrorResponse{
		Error: err.Error(),
		Code:  status,
	}

	if writeErr := resp.WriteHeaderAndEntity(status, errorResponse); writeErr != nil {
		log.Error().Err(writeErr).Msg("Failed to write error response")
	}
}

// IsValidationError reports whether err is one of the request validation
// sentinels, so callers can reject before any generation work.
func IsValidationError(err error) bool {
	for _, sentinel := range []error{
		ErrEmptyPrompt,
		ErrPromptTooLong,
		ErrUnknownStyle,
		ErrInvalidDimensions,
		ErrInvalidSteps,
		ErrInvalidGuidance,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
