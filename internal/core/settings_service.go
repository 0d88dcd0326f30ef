package core

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"astroguru-backend-go/internal/config"
	"astroguru-backend-go/internal/db"
)

// Key resolution sources.
const (
	KeySourceEnvironment = "environment"
	KeySourceFirestore   = "firestore"
)

// KeyResolution is the outcome of resolving the Gemini API key. Warning is
// non-empty when the settings document could not be read and the resolver
// degraded to the environment default.
type KeyResolution struct {
	Key     string
	Source  string
	Warning string
}

// KeyStatus is the admin-facing view of the active key. Only the last four
// characters are ever exposed.
type KeyStatus struct {
	Configured bool   `json:"configured"`
	Source     string `json:"source,omitempty"`
	LastFour   string `json:"lastFour,omitempty"`
	Warning    string `json:"warning,omitempty"`
}

// settingsService implements the SettingsService interface.
type settingsService struct {
	settingsRepo db.SettingsRepository
	auditService AuditService
	appConfig    *config.Config
	logger       *zap.Logger
}

// NewSettingsService creates a new SettingsService instance.
func NewSettingsService(settingsRepo db.SettingsRepository, auditService AuditService, appConfig *config.Config, logger *zap.Logger) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		auditService: auditService,
		appConfig:    appConfig,
		logger:       logger,
	}
}

// ResolveGeminiKey produces the best-effort API key for constructing the
// generation client. The environment default is the starting point; a
// non-empty key in the settings document overrides it. Store failures
// never fail the resolution: the result degrades to the default and
// carries a warning so callers (and tests) can observe the degradation.
func (s *settingsService) ResolveGeminiKey(ctx context.Context) KeyResolution {
	res := KeyResolution{
		Key:    s.appConfig.DefaultGeminiKey(),
		Source: KeySourceEnvironment,
	}

	cfg, err := s.settingsRepo.GetGlobalConfig(ctx)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			// No document yet; the environment default stands.
			return res
		}
		res.Warning = "settings document unavailable, using environment key"
		s.logger.Warn("Gemini key resolution degraded to environment default", zap.Error(err))
		return res
	}

	if cfg.GeminiAPIKey != "" {
		res.Key = cfg.GeminiAPIKey
		res.Source = KeySourceFirestore
	}
	return res
}

// GetKeyStatus reports whether a key is active and its masked tail.
func (s *settingsService) GetKeyStatus(ctx context.Context) KeyStatus {
	res := s.ResolveGeminiKey(ctx)
	status := KeyStatus{Warning: res.Warning}
	if res.Key == "" {
		return status
	}
	status.Configured = true
	status.Source = res.Source
	status.LastFour = lastFour(res.Key)
	return status
}

// SetGeminiKey stores a new shared key. Last write wins.
func (s *settingsService) SetGeminiKey(ctx context.Context, adminUID, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if err := s.settingsRepo.SetGeminiKey(ctx, key); err != nil {
		return fmt.Errorf("failed to store gemini key: %w", err)
	}
	s.audit(ctx, adminUID, "GEMINI_KEY_SET")
	return nil
}

// DeleteGeminiKey clears the shared key so the environment default (if
// any) applies again. Deleting an absent key is a no-op.
func (s *settingsService) DeleteGeminiKey(ctx context.Context, adminUID string) error {
	if err := s.settingsRepo.DeleteGeminiKey(ctx); err != nil {
		return fmt.Errorf("failed to delete gemini key: %w", err)
	}
	s.audit(ctx, adminUID, "GEMINI_KEY_DELETE")
	return nil
}

// audit records the admin action best-effort; an audit failure never fails
// the underlying operation.
func (s *settingsService) audit(ctx context.Context, adminUID, action string) {
	if s.auditService == nil {
		return
	}
	entry := newAuditLog(adminUID, action, "")
	if err := s.auditService.CreateAuditLog(ctx, entry); err != nil {
		s.logger.Warn("Failed to write audit log", zap.String("action", action), zap.Error(err))
	}
}

func lastFour(key string) string {
	if len(key) <= 4 {
		return key
	}
	return key[len(key)-4:]
}
