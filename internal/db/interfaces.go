package db

import (
	"context"

	"astroguru-backend-go/internal/models"
)

// UserRepository defines the interface for user-profile storage operations.
type UserRepository interface {
	GetByID(ctx context.Context, uid string) (*models.UserProfile, error)
	Create(ctx context.Context, user *models.UserProfile) error
	List(ctx context.Context) ([]*models.UserProfile, error)
}

// SettingsRepository defines the interface for the singleton configuration
// document at settings/global_config.
type SettingsRepository interface {
	GetGlobalConfig(ctx context.Context) (*models.GlobalConfig, error)
	SetGeminiKey(ctx context.Context, key string) error
	// DeleteGeminiKey removes the geminiApiKey field. Deleting an absent
	// field or an absent document is a no-op, not an error.
	DeleteGeminiKey(ctx context.Context) error
}

// NotificationRepository defines the interface for broadcast notification
// storage operations.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) (string, error)
	List(ctx context.Context) ([]*models.Notification, error)
	Delete(ctx context.Context, id string) error
}

// AuditRepository defines the interface for audit log storage operations.
type AuditRepository interface {
	Create(ctx context.Context, logEntry models.AuditLog) error
}
