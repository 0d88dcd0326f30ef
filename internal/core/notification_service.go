package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"astroguru-backend-go/internal/db"
	"astroguru-backend-go/internal/models"
)

// ErrNotificationNotFound is returned when a notification does not exist.
var ErrNotificationNotFound = errors.New("notification not found")

// notificationService implements the NotificationService interface.
type notificationService struct {
	notificationRepo db.NotificationRepository
	auditService     AuditService
	logger           *zap.Logger
}

// NewNotificationService creates a new NotificationService instance.
func NewNotificationService(notificationRepo db.NotificationRepository, auditService AuditService, logger *zap.Logger) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		auditService:     auditService,
		logger:           logger,
	}
}

// Create broadcasts a new notification.
func (s *notificationService) Create(ctx context.Context, adminUID string, req models.CreateNotificationRequest) (*models.Notification, error) {
	n := &models.Notification{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Message:   req.Message,
		Timestamp: time.Now().UTC(),
	}
	if _, err := s.notificationRepo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	s.audit(ctx, adminUID, "NOTIFICATION_CREATE", n.ID)
	return n, nil
}

// List returns all broadcasts, newest first.
func (s *notificationService) List(ctx context.Context) ([]*models.Notification, error) {
	notifications, err := s.notificationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// Delete removes a single broadcast.
func (s *notificationService) Delete(ctx context.Context, adminUID, id string) error {
	if err := s.notificationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: id '%s'", ErrNotificationNotFound, id)
		}
		return fmt.Errorf("failed to delete notification '%s': %w", id, err)
	}
	s.audit(ctx, adminUID, "NOTIFICATION_DELETE", id)
	return nil
}

func (s *notificationService) audit(ctx context.Context, adminUID, action, targetID string) {
	if s.auditService == nil {
		return
	}
	if err := s.auditService.CreateAuditLog(ctx, newAuditLog(adminUID, action, targetID)); err != nil {
		s.logger.Warn("Failed to write audit log", zap.String("action", action), zap.Error(err))
	}
}
