package core

import (
	"context"
	"fmt"
	"time"

	"astroguru-backend-go/internal/db"
	"astroguru-backend-go/internal/models"
)

// auditService implements the AuditService interface.
type auditService struct {
	auditRepo db.AuditRepository
}

// NewAuditService creates a new AuditService instance.
func NewAuditService(auditRepo db.AuditRepository) AuditService {
	return &auditService{
		auditRepo: auditRepo,
	}
}

// CreateAuditLog creates a new audit log entry.
func (s *auditService) CreateAuditLog(ctx context.Context, logEntry models.AuditLog) error {
	if s.auditRepo == nil {
		return fmt.Errorf("AuditRepository not initialized in AuditService")
	}
	if err := s.auditRepo.Create(ctx, logEntry); err != nil {
		return fmt.Errorf("failed to create audit log via repository: %w", err)
	}
	return nil
}

// newAuditLog builds a log entry for an admin action. Timestamp is set
// here as a fallback; Firestore's serverTimestamp overrides it on write.
func newAuditLog(adminUID, action, targetID string) models.AuditLog {
	return models.AuditLog{
		Timestamp: time.Now().UTC(),
		UserID:    adminUID,
		Action:    action,
		TargetID:  targetID,
	}
}
