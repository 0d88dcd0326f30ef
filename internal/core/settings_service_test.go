package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"astroguru-backend-go/internal/config"
	"astroguru-backend-go/internal/db"
	"astroguru-backend-go/internal/models"
)

func newSettingsServiceForTest(repo *fakeSettingsRepo, audit *fakeAuditService, cfg *config.Config) SettingsService {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return NewSettingsService(repo, audit, cfg, zap.NewNop())
}

func TestResolveGeminiKeyEnvironmentDefault(t *testing.T) {
	repo := &fakeSettingsRepo{cfg: &models.GlobalConfig{}}
	svc := newSettingsServiceForTest(repo, nil, &config.Config{GeminiAPIKey: "env-key-1234"})

	res := svc.ResolveGeminiKey(context.Background())

	assert.Equal(t, "env-key-1234", res.Key)
	assert.Equal(t, KeySourceEnvironment, res.Source)
	assert.Empty(t, res.Warning)
}

func TestResolveGeminiKeyDocumentOverridesEnvironment(t *testing.T) {
	repo := &fakeSettingsRepo{cfg: &models.GlobalConfig{GeminiAPIKey: "stored-key-5678"}}
	svc := newSettingsServiceForTest(repo, nil, &config.Config{GeminiAPIKey: "env-key-1234"})

	res := svc.ResolveGeminiKey(context.Background())

	assert.Equal(t, "stored-key-5678", res.Key)
	assert.Equal(t, KeySourceFirestore, res.Source)
	assert.Empty(t, res.Warning)
}

func TestResolveGeminiKeyGoogleAPIKeyFallback(t *testing.T) {
	repo := &fakeSettingsRepo{cfg: &models.GlobalConfig{}}
	svc := newSettingsServiceForTest(repo, nil, &config.Config{GoogleAPIKey: "google-key-9999"})

	res := svc.ResolveGeminiKey(context.Background())

	assert.Equal(t, "google-key-9999", res.Key)
	assert.Equal(t, KeySourceEnvironment, res.Source)
}

func TestResolveGeminiKeyMissingDocumentIsNotDegraded(t *testing.T) {
	repo := &fakeSettingsRepo{getErr: errNotFoundWrapped("global_config")}
	svc := newSettingsServiceForTest(repo, nil, &config.Config{GeminiAPIKey: "env-key-1234"})

	res := svc.ResolveGeminiKey(context.Background())

	assert.Equal(t, "env-key-1234", res.Key)
	assert.Equal(t, KeySourceEnvironment, res.Source)
	assert.Empty(t, res.Warning, "an absent document is normal, not a degradation")
}

func TestResolveGeminiKeyStoreFailureDegradesWithWarning(t *testing.T) {
	repo := &fakeSettingsRepo{getErr: errors.New("firestore unavailable")}
	svc := newSettingsServiceForTest(repo, nil, &config.Config{GeminiAPIKey: "env-key-1234"})

	res := svc.ResolveGeminiKey(context.Background())

	assert.Equal(t, "env-key-1234", res.Key)
	assert.Equal(t, KeySourceEnvironment, res.Source)
	assert.NotEmpty(t, res.Warning)
}

func TestResolveGeminiKeyNothingConfigured(t *testing.T) {
	repo := &fakeSettingsRepo{cfg: &models.GlobalConfig{}}
	svc := newSettingsServiceForTest(repo, nil, &config.Config{})

	res := svc.ResolveGeminiKey(context.Background())

	assert.Empty(t, res.Key)
	assert.Equal(t, KeySourceEnvironment, res.Source)
}

func TestGetKeyStatusMasksAllButLastFour(t *testing.T) {
	repo := &fakeSettingsRepo{cfg: &models.GlobalConfig{GeminiAPIKey: "AIzaSyExample1234"}}
	svc := newSettingsServiceForTest(repo, nil, &config.Config{})

	status := svc.GetKeyStatus(context.Background())

	assert.True(t, status.Configured)
	assert.Equal(t, KeySourceFirestore, status.Source)
	assert.Equal(t, "1234", status.LastFour)
	assert.NotContains(t, status.LastFour, "AIzaSy")
}

func TestGetKeyStatusUnconfigured(t *testing.T) {
	repo := &fakeSettingsRepo{cfg: &models.GlobalConfig{}}
	svc := newSettingsServiceForTest(repo, nil, &config.Config{})

	status := svc.GetKeyStatus(context.Background())

	assert.False(t, status.Configured)
	assert.Empty(t, status.Source)
	assert.Empty(t, status.LastFour)
}

func TestSetGeminiKeyRejectsEmptyKey(t *testing.T) {
	repo := &fakeSettingsRepo{}
	audit := &fakeAuditService{}
	svc := newSettingsServiceForTest(repo, audit, nil)

	err := svc.SetGeminiKey(context.Background(), "admin-uid", "")

	require.Error(t, err)
	assert.Empty(t, audit.entries)
}

func TestSetGeminiKeyStoresAndAudits(t *testing.T) {
	repo := &fakeSettingsRepo{}
	audit := &fakeAuditService{}
	svc := newSettingsServiceForTest(repo, audit, nil)

	err := svc.SetGeminiKey(context.Background(), "admin-uid", "new-key-4321")

	require.NoError(t, err)
	assert.Equal(t, "new-key-4321", repo.cfg.GeminiAPIKey)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, "GEMINI_KEY_SET", audit.entries[0].Action)
	assert.Equal(t, "admin-uid", audit.entries[0].UserID)
}

func TestSetGeminiKeyAuditFailureDoesNotFailOperation(t *testing.T) {
	repo := &fakeSettingsRepo{}
	audit := &fakeAuditService{createErr: errors.New("audit store down")}
	svc := newSettingsServiceForTest(repo, audit, nil)

	err := svc.SetGeminiKey(context.Background(), "admin-uid", "new-key-4321")

	require.NoError(t, err)
	assert.Equal(t, "new-key-4321", repo.cfg.GeminiAPIKey)
}

func TestDeleteGeminiKeyAudits(t *testing.T) {
	repo := &fakeSettingsRepo{cfg: &models.GlobalConfig{GeminiAPIKey: "old-key"}}
	audit := &fakeAuditService{}
	svc := newSettingsServiceForTest(repo, audit, nil)

	err := svc.DeleteGeminiKey(context.Background(), "admin-uid")

	require.NoError(t, err)
	assert.Empty(t, repo.cfg.GeminiAPIKey)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, "GEMINI_KEY_DELETE", audit.entries[0].Action)
}

func TestDeleteGeminiKeyWithoutDocumentIsIdempotent(t *testing.T) {
	// The repository treats a missing field or document as already deleted.
	repo := &fakeSettingsRepo{}
	svc := newSettingsServiceForTest(repo, &fakeAuditService{}, nil)

	require.NoError(t, svc.DeleteGeminiKey(context.Background(), "admin-uid"))
	require.NoError(t, svc.DeleteGeminiKey(context.Background(), "admin-uid"))
	assert.Equal(t, 2, repo.deleteCalls)
}

func TestDeleteThenResolveFallsBackToEnvironment(t *testing.T) {
	repo := &fakeSettingsRepo{cfg: &models.GlobalConfig{GeminiAPIKey: "stored-key"}}
	svc := newSettingsServiceForTest(repo, &fakeAuditService{}, &config.Config{GeminiAPIKey: "env-key"})

	require.NoError(t, svc.DeleteGeminiKey(context.Background(), "admin-uid"))

	res := svc.ResolveGeminiKey(context.Background())
	assert.Equal(t, "env-key", res.Key)
	assert.Equal(t, KeySourceEnvironment, res.Source)
}

func TestLastFourShortKey(t *testing.T) {
	assert.Equal(t, "abc", lastFour("abc"))
	assert.Equal(t, "abcd", lastFour("abcd"))
	assert.Equal(t, "bcde", lastFour("abcde"))
}

// Guard that fakeSettingsRepo keeps satisfying the repository contract.
var _ db.SettingsRepository = (*fakeSettingsRepo)(nil)
