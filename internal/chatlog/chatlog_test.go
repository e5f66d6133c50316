package chatlog

import (
	"errors"
	"testing"
	"time"

	"github.com/mmynk/ridecrew/internal/models"
)

func TestNewMessage(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)

	tests := []struct {
		name    string
		text    string
		last    int64
		wantTS  int64
		wantErr bool
	}{
		{name: "first message", text: "hello", last: 0, wantTS: now.UnixMilli()},
		{name: "trims whitespace", text: "  see you there \n", last: 0, wantTS: now.UnixMilli()},
		{name: "clock behind log", text: "hi", last: now.UnixMilli() + 50, wantTS: now.UnixMilli() + 51},
		{name: "same millisecond", text: "hi", last: now.UnixMilli(), wantTS: now.UnixMilli() + 1},
		{name: "empty", text: "", wantErr: true},
		{name: "whitespace only", text: " \t\n ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := NewMessage("r1", "u1", tt.text, tt.last, now)
			if tt.wantErr {
				if !errors.Is(err, models.ErrValidation) {
					t.Fatalf("expected ErrValidation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewMessage failed: %v", err)
			}
			if msg.ID == "" {
				t.Error("expected message ID")
			}
			if msg.Timestamp != tt.wantTS {
				t.Errorf("timestamp = %d, want %d", msg.Timestamp, tt.wantTS)
			}
			if msg.Text == "" || msg.Text[0] == ' ' {
				t.Errorf("text not trimmed: %q", msg.Text)
			}
		})
	}
}

func TestNewMessage_TooLong(t *testing.T) {
	long := make([]byte, MaxTextLength+1)
	for i := range long {
		long[i] = 'x'
	}
	if _, err := NewMessage("r1", "u1", string(long), 0, time.Now()); !errors.Is(err, models.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestForRide(t *testing.T) {
	messages := []models.Message{
		{ID: "3", RideID: "r1", Timestamp: 30},
		{ID: "x", RideID: "r2", Timestamp: 5},
		{ID: "1", RideID: "r1", Timestamp: 10},
		{ID: "2a", RideID: "r1", Timestamp: 20},
		{ID: "2b", RideID: "r1", Timestamp: 20},
	}

	got := ForRide(messages, "r1")
	want := []string{"1", "2a", "2b", "3"}
	if len(got) != len(want) {
		t.Fatalf("got %d messages, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, id)
		}
	}

	// Restartable: a second call yields the same sequence and the input is untouched.
	again := ForRide(messages, "r1")
	for i := range got {
		if again[i].ID != got[i].ID {
			t.Errorf("second call differs at %d", i)
		}
	}
	if messages[0].ID != "3" {
		t.Error("input reordered")
	}
}

func TestCanPost(t *testing.T) {
	ride := models.Ride{CreatedBy: "a", Participants: []string{"a", "b"}, Status: models.StatusUpcoming}

	if err := CanPost(ride, "b"); err != nil {
		t.Errorf("participant rejected: %v", err)
	}
	if err := CanPost(ride, "c"); !errors.Is(err, models.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}

	ride.Status = models.StatusOngoing
	if err := CanPost(ride, "a"); err != nil {
		t.Errorf("ongoing ride chat rejected: %v", err)
	}

	ride.Status = models.StatusCompleted
	if err := CanPost(ride, "a"); !errors.Is(err, models.ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}
}
