package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"astroguru-backend-go/internal/models"
)

const (
	settingsCollection = "settings"
	globalConfigDoc    = "global_config"
	geminiKeyField     = "geminiApiKey"
)

// firestoreSettingsRepository implements the SettingsRepository interface
// against the singleton settings/global_config document.
type firestoreSettingsRepository struct {
	client *firestore.Client
}

// NewFirestoreSettingsRepository creates a new instance of firestoreSettingsRepository.
func NewFirestoreSettingsRepository(client *firestore.Client) SettingsRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for SettingsRepository.")
	}
	return &firestoreSettingsRepository{client: client}
}

// GetGlobalConfig retrieves the singleton configuration document.
// A missing document maps to ErrNotFound.
func (r *firestoreSettingsRepository) GetGlobalConfig(ctx context.Context) (*models.GlobalConfig, error) {
	docSnap, err := r.client.Collection(settingsCollection).Doc(globalConfigDoc).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("global config document not found: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get global config: %w", err)
	}

	var cfg models.GlobalConfig
	if err := docSnap.DataTo(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode global config: %w", err)
	}
	return &cfg, nil
}

// SetGeminiKey stores the shared Gemini API key, creating the document if
// necessary. Last write wins; no version check is performed.
func (r *firestoreSettingsRepository) SetGeminiKey(ctx context.Context, key string) error {
	_, err := r.client.Collection(settingsCollection).Doc(globalConfigDoc).Set(ctx,
		map[string]interface{}{geminiKeyField: key}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to set gemini key: %w", err)
	}
	return nil
}

// DeleteGeminiKey removes the geminiApiKey field from the configuration
// document. A missing document (and therefore a missing field) is treated
// as an idempotent no-op.
func (r *firestoreSettingsRepository) DeleteGeminiKey(ctx context.Context) error {
	_, err := r.client.Collection(settingsCollection).Doc(globalConfigDoc).Update(ctx,
		[]firestore.Update{{Path: geminiKeyField, Value: firestore.Delete}})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			// Nothing to delete.
			return nil
		}
		return fmt.Errorf("failed to delete gemini key: %w", err)
	}
	return nil
}
