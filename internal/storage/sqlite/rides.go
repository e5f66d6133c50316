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

const rideColumns = `id, name, description, destination_name, maps_link, date_ms, reminder, status, created_by, distance_km, duration, created_at`

// CreateRide persists a new ride with its roster and ratings.
func (s *SQLiteStore) CreateRide(ctx context.Context, ride *models.Ride) error {
	if ride.ID == "" {
		ride.ID = uuid.New().String()
	}
	if ride.CreatedAt == 0 {
		ride.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	distance, duration := statsColumns(ride.Stats)
	_, err = tx.ExecContext(ctx,
		`INSERT INTO rides (`+rideColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ride.ID, ride.Name, ride.Description, ride.Destination.Name, ride.Destination.MapsLink,
		ride.Date.UnixMilli(), string(ride.Reminder), string(ride.Status), ride.CreatedBy,
		distance, duration, ride.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ride: %w", err)
	}

	if err := insertRideChildren(ctx, tx, ride); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// UpdateRide overwrites the stored ride, roster and ratings in one transaction.
func (s *SQLiteStore) UpdateRide(ctx context.Context, ride *models.Ride) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	distance, duration := statsColumns(ride.Stats)
	result, err := tx.ExecContext(ctx,
		`UPDATE rides SET name = ?, description = ?, destination_name = ?, maps_link = ?, date_ms = ?,
		 reminder = ?, status = ?, distance_km = ?, duration = ? WHERE id = ?`,
		ride.Name, ride.Description, ride.Destination.Name, ride.Destination.MapsLink, ride.Date.UnixMilli(),
		string(ride.Reminder), string(ride.Status), distance, duration, ride.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update ride: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("ride %s: %w", ride.ID, models.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM ride_participants WHERE ride_id = ?", ride.ID); err != nil {
		return fmt.Errorf("failed to clear participants: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM ride_ratings WHERE ride_id = ?", ride.ID); err != nil {
		return fmt.Errorf("failed to clear ratings: %w", err)
	}
	if err := insertRideChildren(ctx, tx, ride); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func insertRideChildren(ctx context.Context, tx *sql.Tx, ride *models.Ride) error {
	for i, userID := range ride.Participants {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO ride_participants (ride_id, user_id, position) VALUES (?, ?, ?)",
			ride.ID, userID, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	for i, r := range ride.Ratings {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO ride_ratings (ride_id, user_id, rating, position) VALUES (?, ?, ?, ?)",
			ride.ID, r.UserID, r.Value, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert rating: %w", err)
		}
	}

	return nil
}

// GetRide retrieves a ride by ID, including roster and ratings.
func (s *SQLiteStore) GetRide(ctx context.Context, rideID string) (*models.Ride, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+rideColumns+` FROM rides WHERE id = ?`, rideID)
	ride, err := scanRide(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("ride %s: %w", rideID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}

	rides := []models.Ride{*ride}
	if err := s.loadRideChildren(ctx, rides); err != nil {
		return nil, err
	}
	return &rides[0], nil
}

// ListRides returns every ride, newest first.
func (s *SQLiteStore) ListRides(ctx context.Context) ([]models.Ride, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+rideColumns+` FROM rides ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list rides: %w", err)
	}

	var rides []models.Ride
	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan ride: %w", err)
		}
		rides = append(rides, *ride)
	}
	// Close before loading children: an in-memory store has a single connection.
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rides: %w", err)
	}

	if err := s.loadRideChildren(ctx, rides); err != nil {
		return nil, err
	}
	return rides, nil
}

// loadRideChildren fills Participants and Ratings for rides in place.
func (s *SQLiteStore) loadRideChildren(ctx context.Context, rides []models.Ride) error {
	if len(rides) == 0 {
		return nil
	}

	index := make(map[string]int, len(rides))
	args := make([]any, len(rides))
	for i, r := range rides {
		index[r.ID] = i
		args[i] = r.ID
	}
	in := placeholders(len(rides))

	rows, err := s.db.QueryContext(ctx,
		`SELECT ride_id, user_id FROM ride_participants WHERE ride_id IN (`+in+`) ORDER BY ride_id, position`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to get participants: %w", err)
	}
	for rows.Next() {
		var rideID, userID string
		if err := rows.Scan(&rideID, &userID); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan participant: %w", err)
		}
		i := index[rideID]
		rides[i].Participants = append(rides[i].Participants, userID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate participants: %w", err)
	}

	rows, err = s.db.QueryContext(ctx,
		`SELECT ride_id, user_id, rating FROM ride_ratings WHERE ride_id IN (`+in+`) ORDER BY ride_id, position`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to get ratings: %w", err)
	}
	for rows.Next() {
		var rideID string
		var r models.Rating
		if err := rows.Scan(&rideID, &r.UserID, &r.Value); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan rating: %w", err)
		}
		i := index[rideID]
		rides[i].Ratings = append(rides[i].Ratings, r)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate ratings: %w", err)
	}

	return nil
}

func scanRide(sc scanner) (*models.Ride, error) {
	ride := &models.Ride{}
	var dateMs int64
	var reminder, status string
	var distance sql.NullFloat64
	var duration sql.NullString
	if err := sc.Scan(
		&ride.ID,
		&ride.Name,
		&ride.Description,
		&ride.Destination.Name,
		&ride.Destination.MapsLink,
		&dateMs,
		&reminder,
		&status,
		&ride.CreatedBy,
		&distance,
		&duration,
		&ride.CreatedAt,
	); err != nil {
		return nil, err
	}
	ride.Date = time.UnixMilli(dateMs).UTC()
	ride.Reminder = models.Reminder(reminder)
	ride.Status = models.RideStatus(status)
	if distance.Valid || duration.Valid {
		ride.Stats = &models.RideStats{DistanceKm: distance.Float64, Duration: duration.String}
	}
	return ride, nil
}

// statsColumns maps optional stats to nullable column values.
func statsColumns(stats *models.RideStats) (sql.NullFloat64, sql.NullString) {
	if stats == nil {
		return sql.NullFloat64{}, sql.NullString{}
	}
	return sql.NullFloat64{Float64: stats.DistanceKm, Valid: true}, sql.NullString{String: stats.Duration, Valid: true}
}
