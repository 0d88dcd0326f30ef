package db

import (
	"context"
	"fmt"
	"log"

	"firebase.google.com/go/v4/auth"
)

// FirebaseAuthAccounts wraps the Firebase Admin SDK's account creation.
// It satisfies core.AuthAccounts.
type FirebaseAuthAccounts struct {
	client *auth.Client
}

// NewFirebaseAuthAccounts creates a new FirebaseAuthAccounts instance.
func NewFirebaseAuthAccounts(client *auth.Client) *FirebaseAuthAccounts {
	if client == nil {
		log.Fatal("Firebase Auth client is not initialized for FirebaseAuthAccounts.")
	}
	return &FirebaseAuthAccounts{client: client}
}

// CreateUser registers a new email/password account and returns its UID.
func (a *FirebaseAuthAccounts) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password)
	if displayName != "" {
		params = params.DisplayName(displayName)
	}

	record, err := a.client.CreateUser(ctx, params)
	if err != nil {
		return "", fmt.Errorf("firebase CreateUser: %w", err)
	}
	return record.UID, nil
}
