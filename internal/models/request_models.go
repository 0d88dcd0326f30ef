package models

// SignupRequest represents the request body for creating a new account.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// ChatReadingRequest represents the request body for the multi-turn
// advanced reading endpoint. History is replayed in order before the new
// turn; Images belong to the new turn only.
type ChatReadingRequest struct {
	Message string        `json:"message" binding:"required"`
	Images  []string      `json:"images,omitempty"` // data-URI encoded
	History []ChatMessage `json:"history,omitempty"`
	Lang    string        `json:"lang,omitempty"` // "si" or anything else for English
}

// HoroscopeReadingRequest represents the request body for a single-shot
// horoscope reading.
type HoroscopeReadingRequest struct {
	HoroscopeData
	Lang string `json:"lang,omitempty"`
}

// PorondamReadingRequest represents the request body for a single-shot
// compatibility reading.
type PorondamReadingRequest struct {
	PorondamData
	Lang string `json:"lang,omitempty"`
}

// ManuscriptReadingRequest represents the request body for analysing a
// single ancient manuscript image.
type ManuscriptReadingRequest struct {
	Image string `json:"image" binding:"required"` // data-URI encoded
	Lang  string `json:"lang,omitempty"`
}

// SetGeminiKeyRequest represents the admin request body for storing the
// shared Gemini API key.
type SetGeminiKeyRequest struct {
	Key string `json:"key" binding:"required"`
}

// CreateNotificationRequest represents the admin request body for
// broadcasting a notification.
type CreateNotificationRequest struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
}
