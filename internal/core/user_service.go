package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"astroguru-backend-go/internal/db"
	"astroguru-backend-go/internal/models"
)

// ErrUserNotFound is returned when a user profile is not found.
var ErrUserNotFound = errors.New("user not found")

// userService implements the UserService interface.
type userService struct {
	userRepo db.UserRepository
	accounts AuthAccounts
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo db.UserRepository, accounts AuthAccounts) UserService {
	return &userService{
		userRepo: userRepo,
		accounts: accounts,
	}
}

// Signup registers the credential with the auth provider, then writes the
// profile document. There is no compensating transaction: if the profile
// write fails after the account was created, the account is left standing
// and the underlying error propagates to the caller.
func (s *userService) Signup(ctx context.Context, req models.SignupRequest) (*models.UserProfile, error) {
	if s.accounts == nil {
		return nil, errors.New("AuthAccounts not initialized in UserService")
	}

	uid, err := s.accounts.CreateUser(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth account for '%s': %w", req.Email, err)
	}

	profile := &models.UserProfile{
		UID:      uid,
		Name:     displayNameOrEmailPrefix(req.Name, req.Email),
		Email:    req.Email,
		JoinedAt: time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("account %s created but profile write failed: %w", uid, err)
	}
	return profile, nil
}

// GetOrCreate retrieves a profile by UID, creating it when absent. Returns
// the profile and a boolean indicating whether it was created.
func (s *userService) GetOrCreate(ctx context.Context, uid, email, displayName string) (*models.UserProfile, bool, error) {
	if s.userRepo == nil {
		return nil, false, errors.New("UserRepository not initialized in UserService")
	}

	user, err := s.userRepo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			newUser := &models.UserProfile{
				UID:      uid,
				Name:     displayNameOrEmailPrefix(displayName, email),
				Email:    email,
				JoinedAt: time.Now().UTC(),
			}
			if createErr := s.userRepo.Create(ctx, newUser); createErr != nil {
				return nil, false, fmt.Errorf("failed to create profile (uid: %s) after not found: %w", uid, createErr)
			}
			return newUser, true, nil
		}
		return nil, false, fmt.Errorf("failed to get user by UID '%s' from repository: %w", uid, err)
	}

	return user, false, nil
}

// GetByID retrieves a user profile by UID.
func (s *userService) GetByID(ctx context.Context, uid string) (*models.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: uid '%s'", ErrUserNotFound, uid)
		}
		return nil, fmt.Errorf("failed to get user by UID '%s' from repository: %w", uid, err)
	}
	return user, nil
}

// List returns every user profile for the admin panel.
func (s *userService) List(ctx context.Context) ([]*models.UserProfile, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users from repository: %w", err)
	}
	return users, nil
}

// displayNameOrEmailPrefix falls back to the email local-part when the
// account has no display name.
func displayNameOrEmailPrefix(name, email string) string {
	if name != "" {
		return name
	}
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
