package core

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"astroguru-backend-go/internal/db"
	"astroguru-backend-go/internal/models"
)

// errNotFoundWrapped mimics how the repositories wrap the sentinel.
func errNotFoundWrapped(id string) error {
	return fmt.Errorf("document '%s': %w", id, db.ErrNotFound)
}

// fakeSettingsRepo is an in-memory db.SettingsRepository.
type fakeSettingsRepo struct {
	cfg       *models.GlobalConfig
	getErr    error
	setErr    error
	deleteErr error

	deleteCalls int
}

func (f *fakeSettingsRepo) GetGlobalConfig(ctx context.Context) (*models.GlobalConfig, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.cfg, nil
}

func (f *fakeSettingsRepo) SetGeminiKey(ctx context.Context, key string) error {
	if f.setErr != nil {
		return f.setErr
	}
	if f.cfg == nil {
		f.cfg = &models.GlobalConfig{}
	}
	f.cfg.GeminiAPIKey = key
	return nil
}

func (f *fakeSettingsRepo) DeleteGeminiKey(ctx context.Context) error {
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if f.cfg != nil {
		f.cfg.GeminiAPIKey = ""
	}
	return nil
}

// fakeUserRepo is an in-memory db.UserRepository.
type fakeUserRepo struct {
	users     map[string]*models.UserProfile
	getErr    error
	createErr error
	listErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.UserProfile)}
}

func (f *fakeUserRepo) GetByID(ctx context.Context, uid string) (*models.UserProfile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	user, ok := f.users[uid]
	if !ok {
		return nil, errNotFoundWrapped(uid)
	}
	return user, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.UserProfile) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.users[user.UID] = user
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*models.UserProfile, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*models.UserProfile, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

// fakeNotificationRepo is an in-memory db.NotificationRepository.
type fakeNotificationRepo struct {
	notifications map[string]*models.Notification
	createErr     error
	deleteErr     error
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[string]*models.Notification)}
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *models.Notification) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.notifications[n.ID] = n
	return n.ID, nil
}

func (f *fakeNotificationRepo) List(ctx context.Context) ([]*models.Notification, error) {
	out := make([]*models.Notification, 0, len(f.notifications))
	for _, n := range f.notifications {
		out = append(out, n)
	}
	return out, nil
}

func (f *fakeNotificationRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.notifications[id]; !ok {
		return errNotFoundWrapped(id)
	}
	delete(f.notifications, id)
	return nil
}

// fakeAuthAccounts records signup attempts.
type fakeAuthAccounts struct {
	uid       string
	createErr error

	created []string // emails passed to CreateUser
}

func (f *fakeAuthAccounts) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, email)
	return f.uid, nil
}

// fakeAuditService captures audit entries.
type fakeAuditService struct {
	entries   []models.AuditLog
	createErr error
}

func (f *fakeAuditService) CreateAuditLog(ctx context.Context, logEntry models.AuditLog) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.entries = append(f.entries, logEntry)
	return nil
}

// fakeSettings is a canned SettingsService for reading-service tests.
type fakeSettings struct {
	resolution KeyResolution
}

func (f *fakeSettings) ResolveGeminiKey(ctx context.Context) KeyResolution { return f.resolution }
func (f *fakeSettings) GetKeyStatus(ctx context.Context) KeyStatus         { return KeyStatus{} }
func (f *fakeSettings) SetGeminiKey(ctx context.Context, adminUID, key string) error {
	return errors.New("not implemented")
}
func (f *fakeSettings) DeleteGeminiKey(ctx context.Context, adminUID string) error {
	return errors.New("not implemented")
}

// fakeGenerator captures the outbound request and returns canned output.
type fakeGenerator struct {
	text string
	err  error

	model    string
	contents []*genai.Content
	cfg      *genai.GenerateContentConfig
	calls    int
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	f.calls++
	f.model = model
	f.contents = contents
	f.cfg = cfg
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}
