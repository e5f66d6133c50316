// Package storage provides abstractions for the ride data store.
package storage

import (
	"context"

	"github.com/mmynk/ridecrew/internal/models"
)

// Store defines the interface for user, ride and chat storage.
// This abstraction allows swapping storage backends without changing the
// service layer. Lookups of missing records return an error wrapping
// models.ErrNotFound.
type Store interface {
	// CreateUser persists a new user. The ID is generated if empty.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, userID string) (*models.User, error)

	// ListUsers returns all users ordered by name.
	ListUsers(ctx context.Context) ([]models.User, error)

	// CreateRide persists a new ride including its roster and ratings.
	CreateRide(ctx context.Context, ride *models.Ride) error

	// GetRide retrieves a ride by ID.
	GetRide(ctx context.Context, rideID string) (*models.Ride, error)

	// ListRides returns every ride, newest first by creation time.
	ListRides(ctx context.Context) ([]models.Ride, error)

	// UpdateRide replaces a stored ride with the given value.
	UpdateRide(ctx context.Context, ride *models.Ride) error

	// AppendMessage adds a message to a ride's chat log.
	AppendMessage(ctx context.Context, msg *models.Message) error

	// ListMessages returns a ride's messages in insertion order.
	ListMessages(ctx context.Context, rideID string) ([]models.Message, error)

	// LastMessageTimestamp returns the newest timestamp in a ride's chat
	// log, or 0 when the log is empty.
	LastMessageTimestamp(ctx context.Context, rideID string) (int64, error)

	// Close releases any resources held by the store.
	Close() error
}
