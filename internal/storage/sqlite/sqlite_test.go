package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/mmynk/ridecrew/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "ridecrew-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func seedUsers(t *testing.T, store *SQLiteStore, ids ...string) {
	t.Helper()
	for _, id := range ids {
		if err := store.CreateUser(context.Background(), &models.User{ID: id, Name: "User " + id}); err != nil {
			t.Fatalf("CreateUser(%s) failed: %v", id, err)
		}
	}
}

func TestSQLiteStore_Users(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateUser generates ID", func(t *testing.T) {
		user := &models.User{Name: "Zayed", PreferredRideType: models.RideTypeATV}
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
		if user.ID == "" {
			t.Error("Expected user ID to be generated")
		}
		if user.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("GetUser round-trips emergency contact", func(t *testing.T) {
		user := &models.User{
			ID:                "u-ec",
			Name:              "Amal",
			Phone:             "+966500000002",
			Email:             "amal@example.com",
			PreferredRideType: models.RideTypeMotorcycle,
			EmergencyContact:  &models.EmergencyContact{Name: "Saad", Phone: "+966500000003"},
		}
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		got, err := store.GetUser(ctx, "u-ec")
		if err != nil {
			t.Fatalf("GetUser failed: %v", err)
		}
		if got.Name != "Amal" || got.PreferredRideType != models.RideTypeMotorcycle {
			t.Errorf("got %+v", got)
		}
		if got.EmergencyContact == nil || got.EmergencyContact.Phone != "+966500000003" {
			t.Errorf("emergency contact = %+v", got.EmergencyContact)
		}
	})

	t.Run("GetUser without emergency contact", func(t *testing.T) {
		seedUsers(t, store, "u-plain")
		got, err := store.GetUser(ctx, "u-plain")
		if err != nil {
			t.Fatalf("GetUser failed: %v", err)
		}
		if got.EmergencyContact != nil {
			t.Errorf("expected nil emergency contact, got %+v", got.EmergencyContact)
		}
	})

	t.Run("GetUser not found", func(t *testing.T) {
		_, err := store.GetUser(ctx, "missing")
		if !errors.Is(err, models.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListUsers", func(t *testing.T) {
		users, err := store.ListUsers(ctx)
		if err != nil {
			t.Fatalf("ListUsers failed: %v", err)
		}
		if len(users) != 3 {
			t.Errorf("expected 3 users, got %d", len(users))
		}
	})
}

func TestSQLiteStore_Rides(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedUsers(t, store, "alice", "bob", "carol")

	date := time.Date(2025, 7, 4, 6, 30, 0, 0, time.UTC)
	newRide := func() *models.Ride {
		return &models.Ride{
			Name:         "Sunrise Loop",
			Description:  "Easy pace",
			Destination:  models.Destination{Name: "Edge of the World", MapsLink: "https://maps.example.com/edge"},
			Date:         date,
			Reminder:     models.ReminderOneDay,
			Status:       models.StatusUpcoming,
			CreatedBy:    "alice",
			Participants: []string{"alice", "carol", "bob"},
		}
	}

	t.Run("CreateRide and GetRide", func(t *testing.T) {
		ride := newRide()
		if err := store.CreateRide(ctx, ride); err != nil {
			t.Fatalf("CreateRide failed: %v", err)
		}
		if ride.ID == "" {
			t.Fatal("Expected ride ID to be generated")
		}

		got, err := store.GetRide(ctx, ride.ID)
		if err != nil {
			t.Fatalf("GetRide failed: %v", err)
		}
		if got.Name != "Sunrise Loop" || got.Destination.Name != "Edge of the World" {
			t.Errorf("got %+v", got)
		}
		if !got.Date.Equal(date) {
			t.Errorf("date = %v, want %v", got.Date, date)
		}
		if !slices.Equal(got.Participants, []string{"alice", "carol", "bob"}) {
			t.Errorf("participants = %v, roster order not preserved", got.Participants)
		}
		if got.Stats != nil {
			t.Errorf("expected nil stats, got %+v", got.Stats)
		}
	})

	t.Run("UpdateRide replaces roster, ratings and stats", func(t *testing.T) {
		ride := newRide()
		if err := store.CreateRide(ctx, ride); err != nil {
			t.Fatalf("CreateRide failed: %v", err)
		}

		ride.Status = models.StatusCompleted
		ride.Participants = []string{"alice", "bob"}
		ride.Ratings = []models.Rating{{UserID: "bob", Value: 4}, {UserID: "alice", Value: 5}}
		ride.Stats = &models.RideStats{DistanceKm: 87.2, Duration: "3h 10m"}
		if err := store.UpdateRide(ctx, ride); err != nil {
			t.Fatalf("UpdateRide failed: %v", err)
		}

		got, err := store.GetRide(ctx, ride.ID)
		if err != nil {
			t.Fatalf("GetRide failed: %v", err)
		}
		if got.Status != models.StatusCompleted {
			t.Errorf("status = %s", got.Status)
		}
		if !slices.Equal(got.Participants, []string{"alice", "bob"}) {
			t.Errorf("participants = %v", got.Participants)
		}
		if !slices.Equal(got.Ratings, ride.Ratings) {
			t.Errorf("ratings = %+v", got.Ratings)
		}
		if got.Stats == nil || *got.Stats != *ride.Stats {
			t.Errorf("stats = %+v", got.Stats)
		}
	})

	t.Run("UpdateRide not found", func(t *testing.T) {
		ride := newRide()
		ride.ID = "missing"
		if err := store.UpdateRide(ctx, ride); !errors.Is(err, models.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("GetRide not found", func(t *testing.T) {
		if _, err := store.GetRide(ctx, "missing"); !errors.Is(err, models.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListRides loads rosters", func(t *testing.T) {
		rides, err := store.ListRides(ctx)
		if err != nil {
			t.Fatalf("ListRides failed: %v", err)
		}
		if len(rides) != 2 {
			t.Fatalf("expected 2 rides, got %d", len(rides))
		}
		for _, r := range rides {
			if !r.HasParticipant(r.CreatedBy) {
				t.Errorf("ride %s missing creator in roster %v", r.ID, r.Participants)
			}
		}
	})
}

func TestSQLiteStore_Messages(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedUsers(t, store, "alice", "bob")

	ride := &models.Ride{
		Name:         "Night Ride",
		Destination:  models.Destination{Name: "Old Town"},
		Date:         time.Now().Add(time.Hour),
		Reminder:     models.ReminderNone,
		Status:       models.StatusUpcoming,
		CreatedBy:    "alice",
		Participants: []string{"alice", "bob"},
	}
	if err := store.CreateRide(ctx, ride); err != nil {
		t.Fatalf("CreateRide failed: %v", err)
	}

	ts, err := store.LastMessageTimestamp(ctx, ride.ID)
	if err != nil {
		t.Fatalf("LastMessageTimestamp failed: %v", err)
	}
	if ts != 0 {
		t.Errorf("expected 0 for empty log, got %d", ts)
	}

	for i, text := range []string{"first", "second", "third"} {
		msg := &models.Message{RideID: ride.ID, SenderID: "bob", Text: text, Timestamp: int64(100 + i)}
		if err := store.AppendMessage(ctx, msg); err != nil {
			t.Fatalf("AppendMessage failed: %v", err)
		}
		if msg.ID == "" {
			t.Error("Expected message ID to be generated")
		}
	}

	messages, err := store.ListMessages(ctx, ride.ID)
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if len(messages) != 3 || messages[0].Text != "first" || messages[2].Text != "third" {
		t.Errorf("messages = %+v", messages)
	}

	ts, err = store.LastMessageTimestamp(ctx, ride.ID)
	if err != nil {
		t.Fatalf("LastMessageTimestamp failed: %v", err)
	}
	if ts != 102 {
		t.Errorf("last timestamp = %d, want 102", ts)
	}
}

func TestNew_InMemory(t *testing.T) {
	store, err := New(MemoryPath)
	if err != nil {
		t.Fatalf("New(:memory:) failed: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	seedUsers(t, store, "alice")

	// Each query must see the same database.
	for i := 0; i < 3; i++ {
		users, err := store.ListUsers(ctx)
		if err != nil {
			t.Fatalf("ListUsers failed: %v", err)
		}
		if len(users) != 1 {
			t.Fatalf("expected 1 user, got %d", len(users))
		}
	}
}
