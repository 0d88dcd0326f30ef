package api

import (
	"astroguru-backend-go/internal/models"
)

// ErrorResponse is a generic structure for returning errors via API.
type ErrorResponse struct {
	Error   string `json:"error"`             // A high-level error message
	Details string `json:"details,omitempty"` // More specific details, if available
}

// SuccessResponse is a generic structure for simple success messages.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ReadingResponse carries the sanitized HTML text of one generation call.
type ReadingResponse struct {
	Reading string `json:"reading"`
}

// ProfileResponse is the authenticated user's profile plus the derived
// admin flag. The flag is recomputed from the live token email per
// request; it is never stored.
type ProfileResponse struct {
	*models.UserProfile
	IsAdmin bool `json:"isAdmin"`
}
