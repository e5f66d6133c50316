package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmynk/ridecrew/internal/models"
)

var ErrUnknownUser = errors.New("unknown user")

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping how a rider proves who they are without
// changing the service layer code.
type Authenticator interface {
	// Authenticate resolves the credential to a user.
	// Returns ErrUnknownUser if the credential does not match anyone.
	Authenticate(ctx context.Context, credential string) (*models.User, error)
}

// UserStorage defines the user lookups the authenticator needs.
type UserStorage interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// RosterAuthenticator signs riders in by picking themselves from the fixed
// roster of seeded users. The credential is the user ID.
type RosterAuthenticator struct {
	storage UserStorage
}

// NewRosterAuthenticator creates a new roster-based authenticator.
func NewRosterAuthenticator(storage UserStorage) *RosterAuthenticator {
	return &RosterAuthenticator{storage: storage}
}

// Authenticate looks the user up by ID.
func (a *RosterAuthenticator) Authenticate(ctx context.Context, credential string) (*models.User, error) {
	if credential == "" {
		return nil, ErrUnknownUser
	}

	user, err := a.storage.GetUser(ctx, credential)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrUnknownUser
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	return user, nil
}
