package api

// GenerationRequest represents an inbound image generation request. It is
// decoded by decodeGenerationRequest, not by its struct tags.
type GenerationRequest struct {
	Prompt string `json:"prompt"`
	Type   string `json:"type"`
	// Size is accepted for compatibility but not applied to generation.
	Size string `json:"size"`
}

// GenerationResponse represents a successful generation
type GenerationResponse struct {
	Success bool   `json:"success"`
	Image   string `json:"image"`
	Prompt  string `json:"prompt"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string  `json:"error"`
	Details *string `json:"details,omitempty"`
	Message *string `json:"message,omitempty"`
}

const (
	errMethodNotAllowed = "Method not allowed"
	errPromptRequired   = "Prompt is required"
	errAPIKeyMissing    = "API key not configured"
	errGenerationFailed = "Image generation failed"
	errInternalServer   = "Internal server error"
	defaultSize         = "512x512"
	dataURIPrefix       = "data:image/png;base64,"
	requestIDHeader     = "X-Request-Id"
)
