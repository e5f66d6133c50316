package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/ridecrew/internal/models"
)

// AppendMessage inserts a chat message. The seq column keeps insertion order
// for messages sharing a timestamp.
func (s *SQLiteStore) AppendMessage(ctx context.Context, msg *models.Message) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO messages (id, ride_id, sender_id, text, timestamp_ms) VALUES (?, ?, ?, ?, ?)",
		msg.ID, msg.RideID, msg.SenderID, msg.Text, msg.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}

	return nil
}

// ListMessages returns a ride's messages in insertion order.
func (s *SQLiteStore) ListMessages(ctx context.Context, rideID string) ([]models.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, ride_id, sender_id, text, timestamp_ms FROM messages WHERE ride_id = ? ORDER BY seq",
		rideID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.RideID, &m.SenderID, &m.Text, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}

	return messages, nil
}

// LastMessageTimestamp returns the newest timestamp in a ride's chat log.
func (s *SQLiteStore) LastMessageTimestamp(ctx context.Context, rideID string) (int64, error) {
	var ts int64
	err := s.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(timestamp_ms), 0) FROM messages WHERE ride_id = ?",
		rideID,
	).Scan(&ts)
	if err != nil {
		return 0, fmt.Errorf("failed to get last message timestamp: %w", err)
	}
	return ts, nil
}
