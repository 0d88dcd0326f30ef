package core

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"astroguru-backend-go/internal/db"
	"astroguru-backend-go/internal/models"
)

func TestNotificationCreateAssignsIDAndTimestamp(t *testing.T) {
	repo := newFakeNotificationRepo()
	audit := &fakeAuditService{}
	svc := NewNotificationService(repo, audit, zap.NewNop())

	n, err := svc.Create(context.Background(), "admin-uid", models.CreateNotificationRequest{
		Title:   "Poya Day Special",
		Message: "Free porondam readings this full moon.",
	})

	require.NoError(t, err)
	_, parseErr := uuid.Parse(n.ID)
	assert.NoError(t, parseErr, "notification ID must be a UUID")
	assert.Equal(t, "Poya Day Special", n.Title)
	assert.Equal(t, "Free porondam readings this full moon.", n.Message)
	assert.False(t, n.Timestamp.IsZero())
	assert.Contains(t, repo.notifications, n.ID)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, "NOTIFICATION_CREATE", audit.entries[0].Action)
	assert.Equal(t, n.ID, audit.entries[0].TargetID)
}

func TestNotificationCreateRepositoryErrorPropagates(t *testing.T) {
	repo := newFakeNotificationRepo()
	repo.createErr = errors.New("firestore unavailable")
	audit := &fakeAuditService{}
	svc := NewNotificationService(repo, audit, zap.NewNop())

	_, err := svc.Create(context.Background(), "admin-uid", models.CreateNotificationRequest{Title: "t", Message: "m"})

	require.Error(t, err)
	assert.Empty(t, audit.entries, "failed creations are not audited")
}

func TestNotificationDelete(t *testing.T) {
	repo := newFakeNotificationRepo()
	repo.notifications["n-1"] = &models.Notification{ID: "n-1", Title: "old"}
	audit := &fakeAuditService{}
	svc := NewNotificationService(repo, audit, zap.NewNop())

	require.NoError(t, svc.Delete(context.Background(), "admin-uid", "n-1"))

	assert.NotContains(t, repo.notifications, "n-1")
	require.Len(t, audit.entries, 1)
	assert.Equal(t, "NOTIFICATION_DELETE", audit.entries[0].Action)
	assert.Equal(t, "n-1", audit.entries[0].TargetID)
}

func TestNotificationDeleteMissingMapsNotFound(t *testing.T) {
	svc := NewNotificationService(newFakeNotificationRepo(), &fakeAuditService{}, zap.NewNop())

	err := svc.Delete(context.Background(), "admin-uid", "missing-id")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestNotificationList(t *testing.T) {
	repo := newFakeNotificationRepo()
	repo.notifications["a"] = &models.Notification{ID: "a"}
	repo.notifications["b"] = &models.Notification{ID: "b"}
	svc := NewNotificationService(repo, nil, zap.NewNop())

	out, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, out, 2)
}

var _ db.NotificationRepository = (*fakeNotificationRepo)(nil)
