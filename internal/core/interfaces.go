package core

import (
	"context"

	"astroguru-backend-go/internal/models"
)

// ReadingService defines the four astrology reading operations backed by
// the external generation API.
type ReadingService interface {
	// AnalyzeHoroscopeAdvanced runs the multi-turn reading: prior
	// conversation turns (text plus inline images) are replayed before the
	// new turn.
	AnalyzeHoroscopeAdvanced(ctx context.Context, req models.ChatReadingRequest) (string, error)
	GetHoroscopeReading(ctx context.Context, data models.HoroscopeData, lang string) (string, error)
	GetPorondamReading(ctx context.Context, data models.PorondamData, lang string) (string, error)
	AnalyzeAncientManuscript(ctx context.Context, imageDataURI, lang string) (string, error)
}

// SettingsService resolves the Gemini API key and manages the shared
// configuration document on behalf of administrators.
type SettingsService interface {
	// ResolveGeminiKey never fails: store errors degrade to the
	// environment default and are reported through the Warning field.
	ResolveGeminiKey(ctx context.Context) KeyResolution
	GetKeyStatus(ctx context.Context) KeyStatus
	SetGeminiKey(ctx context.Context, adminUID, key string) error
	DeleteGeminiKey(ctx context.Context, adminUID string) error
}

// UserService defines account and profile operations.
type UserService interface {
	// Signup creates the Firebase account and then writes the profile
	// document. A profile-write failure after account creation leaves the
	// account standing and propagates the error.
	Signup(ctx context.Context, req models.SignupRequest) (*models.UserProfile, error)
	// GetOrCreate ensures a profile document exists for an authenticated
	// user (covers accounts created through the client SDK).
	GetOrCreate(ctx context.Context, uid, email, displayName string) (*models.UserProfile, bool, error)
	GetByID(ctx context.Context, uid string) (*models.UserProfile, error)
	List(ctx context.Context) ([]*models.UserProfile, error)
}

// NotificationService defines broadcast notification operations.
type NotificationService interface {
	Create(ctx context.Context, adminUID string, req models.CreateNotificationRequest) (*models.Notification, error)
	List(ctx context.Context) ([]*models.Notification, error)
	Delete(ctx context.Context, adminUID, id string) error
}

// AuditService defines the interface for audit logging operations.
type AuditService interface {
	CreateAuditLog(ctx context.Context, logEntry models.AuditLog) error
}

// AuthAccounts abstracts the external auth provider's account creation so
// the signup flow can be tested without Firebase.
type AuthAccounts interface {
	CreateUser(ctx context.Context, email, password, displayName string) (uid string, err error)
}
