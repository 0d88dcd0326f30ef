package models

import "time"

// UserProfile represents a user in the system.
// The Firebase Auth UID is used as the Firestore document ID.
type UserProfile struct {
	UID      string    `json:"uid" firestore:"-"`
	Name     string    `json:"name" firestore:"name"`
	Email    string    `json:"email" firestore:"email"`
	JoinedAt time.Time `json:"joinedAt" firestore:"joinedAt,serverTimestamp"`
}
