package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/ridecrew/internal/models"
)

const userColumns = `id, name, phone, email, photo, preferred_ride_type, emergency_name, emergency_phone, created_at`

// CreateUser inserts a new user into the database.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt == 0 {
		user.CreatedAt = time.Now().Unix()
	}

	var emergencyName, emergencyPhone sql.NullString
	if user.EmergencyContact != nil {
		emergencyName = nullString(user.EmergencyContact.Name)
		emergencyPhone = nullString(user.EmergencyContact.Phone)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.Name,
		user.Phone,
		user.Email,
		user.Photo,
		string(user.PreferredRideType),
		emergencyName,
		emergencyPhone,
		user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUser retrieves a user by ID.
func (s *SQLiteStore) GetUser(ctx context.Context, userID string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`,
		userID,
	)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", userID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// ListUsers returns all users ordered by name.
func (s *SQLiteStore) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(sc scanner) (*models.User, error) {
	user := &models.User{}
	var rideType string
	var emergencyName, emergencyPhone sql.NullString
	if err := sc.Scan(
		&user.ID,
		&user.Name,
		&user.Phone,
		&user.Email,
		&user.Photo,
		&rideType,
		&emergencyName,
		&emergencyPhone,
		&user.CreatedAt,
	); err != nil {
		return nil, err
	}
	user.PreferredRideType = models.RideType(rideType)
	if emergencyPhone.Valid {
		user.EmergencyContact = &models.EmergencyContact{
			Name:  emergencyName.String,
			Phone: emergencyPhone.String,
		}
	}
	return user, nil
}
