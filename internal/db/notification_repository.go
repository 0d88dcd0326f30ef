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

const notificationsCollection = "notifications"

// firestoreNotificationRepository implements the NotificationRepository
// interface using Firestore.
type firestoreNotificationRepository struct {
	client *firestore.Client
}

// NewFirestoreNotificationRepository creates a new instance of firestoreNotificationRepository.
func NewFirestoreNotificationRepository(client *firestore.Client) NotificationRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for NotificationRepository.")
	}
	return &firestoreNotificationRepository{client: client}
}

// Create adds a new notification document. The caller supplies the ID
// (a UUID assigned by the service layer); Timestamp is populated
// server-side via the serverTimestamp tag.
func (r *firestoreNotificationRepository) Create(ctx context.Context, n *models.Notification) (string, error) {
	if n.ID == "" {
		return "", errors.New("notification ID cannot be empty for Create operation")
	}
	_, err := r.client.Collection(notificationsCollection).Doc(n.ID).Create(ctx, n)
	if err != nil {
		return "", fmt.Errorf("failed to create notification: %w", err)
	}
	return n.ID, nil
}

// List retrieves all broadcast notifications, newest first.
func (r *firestoreNotificationRepository) List(ctx context.Context) ([]*models.Notification, error) {
	iter := r.client.Collection(notificationsCollection).OrderBy("timestamp", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var notifications []*models.Notification
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate notifications: %w", err)
		}

		var n models.Notification
		if err := doc.DataTo(&n); err != nil {
			log.Printf("Error decoding notification data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		n.ID = doc.Ref.ID
		notifications = append(notifications, &n)
	}

	return notifications, nil
}

// Delete removes a notification document.
func (r *firestoreNotificationRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("notification ID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(notificationsCollection).Doc(id).Delete(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("notification with ID '%s' not found for deletion: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to delete notification with ID '%s': %w", id, err)
	}
	return nil
}
