package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"astroguru-backend-go/internal/models"
)

const usersCollection = "users"

// ErrNotFound is a common error for when a document is not found in Firestore.
var ErrNotFound = errors.New("document not found")

// firestoreUserRepository implements the UserRepository interface using Firestore.
type firestoreUserRepository struct {
	client *firestore.Client
}

// NewFirestoreUserRepository creates a new instance of firestoreUserRepository.
func NewFirestoreUserRepository(client *firestore.Client) UserRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for UserRepository.")
	}
	return &firestoreUserRepository{client: client}
}

// Create adds a new user profile document to Firestore.
// The user.UID (Firebase Auth UID) is used as the Firestore document ID.
// JoinedAt is populated server-side via the serverTimestamp tag.
func (r *firestoreUserRepository) Create(ctx context.Context, user *models.UserProfile) error {
	if user.UID == "" {
		return errors.New("user UID cannot be empty for Create operation")
	}
	_, err := r.client.Collection(usersCollection).Doc(user.UID).Create(ctx, user)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return fmt.Errorf("user with UID '%s' already exists: %w", user.UID, err)
		}
		return fmt.Errorf("failed to create user with UID '%s': %w", user.UID, err)
	}
	return nil
}

// GetByID retrieves a user profile document from Firestore by its UID.
func (r *firestoreUserRepository) GetByID(ctx context.Context, uid string) (*models.UserProfile, error) {
	if uid == "" {
		return nil, errors.New("uid cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("user with UID '%s' not found: %w", uid, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user with UID '%s': %w", uid, err)
	}

	var user models.UserProfile
	if err := docSnap.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user data for UID '%s': %w", uid, err)
	}
	user.UID = docSnap.Ref.ID // Ensure UID is populated from the document reference ID

	return &user, nil
}

// List retrieves every user profile document, newest first. The admin user
// panel has no pagination, so this reads the whole collection in one pass.
func (r *firestoreUserRepository) List(ctx context.Context) ([]*models.UserProfile, error) {
	iter := r.client.Collection(usersCollection).OrderBy("joinedAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var users []*models.UserProfile
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate users: %w", err)
		}

		var user models.UserProfile
		if err := doc.DataTo(&user); err != nil {
			// Log and skip problematic document rather than failing the whole listing.
			log.Printf("Error decoding user data (UID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		user.UID = doc.Ref.ID
		users = append(users, &user)
	}

	return users, nil
}
