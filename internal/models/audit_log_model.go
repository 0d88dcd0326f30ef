package models

import "time"

// AuditLog records an administrative action (key rotation, broadcast,
// user listing) for later review.
type AuditLog struct {
	ID        string                 `json:"id" firestore:"-"`
	Timestamp time.Time              `json:"timestamp" firestore:"timestamp,serverTimestamp"`
	UserID    string                 `json:"userId" firestore:"userId"` // who performed the action
	Action    string                 `json:"action" firestore:"action"` // e.g. "GEMINI_KEY_SET", "NOTIFICATION_CREATE"
	TargetID  string                 `json:"targetId,omitempty" firestore:"targetId,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty" firestore:"details,omitempty"`
}
