// Package chatlog implements the append-only per-ride group chat.
package chatlog

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/ridecrew/internal/models"
)

// MaxTextLength caps the size of a single message body.
const MaxTextLength = 2000

// NewMessage builds the next message for rideID. lastTimestamp is the newest
// timestamp already in the log (0 for an empty log); the new message is
// stamped strictly after it even if the wall clock has not advanced.
func NewMessage(rideID, senderID, text string, lastTimestamp int64, now time.Time) (models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Message{}, fmt.Errorf("%w: message text is empty", models.ErrValidation)
	}
	if len(text) > MaxTextLength {
		return models.Message{}, fmt.Errorf("%w: message exceeds %d bytes", models.ErrValidation, MaxTextLength)
	}
	if rideID == "" || senderID == "" {
		return models.Message{}, fmt.Errorf("%w: ride and sender are required", models.ErrValidation)
	}

	ts := now.UnixMilli()
	if ts <= lastTimestamp {
		ts = lastTimestamp + 1
	}

	return models.Message{
		ID:        uuid.New().String(),
		RideID:    rideID,
		SenderID:  senderID,
		Text:      text,
		Timestamp: ts,
	}, nil
}

// ForRide returns rideID's messages oldest first. Messages with equal
// timestamps keep their order in the input.
func ForRide(messages []models.Message, rideID string) []models.Message {
	var out []models.Message
	for _, m := range messages {
		if m.RideID == rideID {
			out = append(out, m)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Message) int {
		switch {
		case a.Timestamp < b.Timestamp:
			return -1
		case a.Timestamp > b.Timestamp:
			return 1
		}
		return 0
	})
	return out
}

// CanPost reports whether senderID may post to ride's chat. Only participants
// may post, and the chat closes once the ride is completed or cancelled.
func CanPost(ride models.Ride, senderID string) error {
	if !ride.HasParticipant(senderID) {
		return fmt.Errorf("%w: only participants can post to the ride chat", models.ErrForbidden)
	}
	if ride.Status.Terminal() {
		return fmt.Errorf("%w: chat is closed for %s rides", models.ErrInvalidState, ride.Status)
	}
	return nil
}
