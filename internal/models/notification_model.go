package models

import "time"

// Notification is an admin broadcast shown to every user.
type Notification struct {
	ID        string    `json:"id" firestore:"-"`
	Title     string    `json:"title" firestore:"title"`
	Message   string    `json:"message" firestore:"message"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp,serverTimestamp"`
}
