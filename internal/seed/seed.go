// Package seed loads the fixed rider roster and sample rides into an empty store.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/ridecrew/internal/models"
	"github.com/mmynk/ridecrew/internal/storage"
)

// Users returns the fixed set of riders.
func Users(now time.Time) []models.User {
	created := now.Add(-90 * 24 * time.Hour).Unix()
	return []models.User{
		{
			ID: "u1", Name: "Khalid Al-Harbi", Phone: "+966501234567", Email: "khalid@example.com",
			Photo: "https://i.pravatar.cc/150?u=u1", PreferredRideType: models.RideTypeMotorcycle,
			EmergencyContact: &models.EmergencyContact{Name: "Noura Al-Harbi", Phone: "+966507654321"},
			CreatedAt:        created,
		},
		{
			ID: "u2", Name: "Sara Al-Qahtani", Phone: "+966502345678", Email: "sara@example.com",
			Photo: "https://i.pravatar.cc/150?u=u2", PreferredRideType: models.RideTypeATV,
			EmergencyContact: &models.EmergencyContact{Name: "Fahad Al-Qahtani", Phone: "+966508765432"},
			CreatedAt:        created,
		},
		{
			ID: "u3", Name: "Omar Al-Zahrani", Phone: "+966503456789", Email: "omar@example.com",
			Photo: "https://i.pravatar.cc/150?u=u3", PreferredRideType: models.RideTypeSideBySide,
			CreatedAt: created,
		},
		{
			ID: "u4", Name: "Lina Al-Otaibi", Phone: "+966504567890", Email: "lina@example.com",
			Photo: "https://i.pravatar.cc/150?u=u4", PreferredRideType: models.RideTypeBicycle,
			EmergencyContact: &models.EmergencyContact{Name: "Reem Al-Otaibi", Phone: "+966509876543"},
			CreatedAt:        created,
		},
		{
			ID: "u5", Name: "Faisal Al-Dosari", Phone: "+966505678901", Email: "faisal@example.com",
			Photo: "https://i.pravatar.cc/150?u=u5", PreferredRideType: models.RideTypeOffroadTruck,
			CreatedAt: created,
		},
	}
}

// Rides returns sample rides dated relative to now so the discover, upcoming
// and past views all have content.
func Rides(now time.Time) []models.Ride {
	day := 24 * time.Hour
	at := func(offset time.Duration, hour int) time.Time {
		d := now.Add(offset).UTC()
		return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC)
	}
	created := now.Add(-30 * day).Unix()

	return []models.Ride{
		{
			ID: "r1", Name: "Red Sands Dune Run",
			Description: "Morning ATV session across the red dunes east of the city.",
			Destination: models.Destination{Name: "Red Sands", MapsLink: "https://www.google.com/maps/search/?api=1&query=Red+Sands"},
			Date:        at(3*day, 6), Reminder: models.ReminderOneDay, Status: models.StatusUpcoming,
			CreatedBy: "u2", Participants: []string{"u2", "u3"}, CreatedAt: created,
		},
		{
			ID: "r2", Name: "Edge of the World Cruise",
			Description: "Scenic motorcycle ride out to the cliffs. Bring water.",
			Destination: models.Destination{Name: "Edge of the World", MapsLink: "https://www.google.com/maps/search/?api=1&query=Edge+of+the+World"},
			Date:        at(7*day, 15), Reminder: models.ReminderOneHour, Status: models.StatusUpcoming,
			CreatedBy: "u1", Participants: []string{"u1"}, CreatedAt: created,
		},
		{
			ID: "r3", Name: "Wadi Hanifa Bike Loop",
			Description: "Relaxed cycling loop along the wadi trail.",
			Destination: models.Destination{Name: "Wadi Hanifa", MapsLink: "https://www.google.com/maps/search/?api=1&query=Wadi+Hanifa"},
			Date:        at(-5*day, 7), Reminder: models.ReminderNone, Status: models.StatusCompleted,
			CreatedBy: "u4", Participants: []string{"u4", "u1", "u2"},
			Ratings:   []models.Rating{{UserID: "u1", Value: 5}, {UserID: "u2", Value: 4}},
			Stats:     &models.RideStats{DistanceKm: 32.5, Duration: "2h 15m"},
			CreatedAt: created,
		},
		{
			ID: "r4", Name: "Thumamah Trail Day",
			Description: "Side-by-side trail day in the Thumamah park.",
			Destination: models.Destination{Name: "Thumamah", MapsLink: "https://www.google.com/maps/search/?api=1&query=Thumamah"},
			Date:        at(0, 5), Reminder: models.ReminderOneHour, Status: models.StatusOngoing,
			CreatedBy: "u3", Participants: []string{"u3", "u5", "u1"}, CreatedAt: created,
		},
		{
			ID: "r5", Name: "Desert Camp Convoy",
			Description: "Off-road trucks convoy to the weekend camp.",
			Destination: models.Destination{Name: "Nafud Desert", MapsLink: "https://www.google.com/maps/search/?api=1&query=Nafud+Desert"},
			Date:        at(10*day, 16), Reminder: models.ReminderOneDay, Status: models.StatusUpcoming,
			CreatedBy: "u5", Participants: []string{"u5", "u2"}, CreatedAt: created,
		},
	}
}

// Messages returns sample chat lines for the seeded rides.
func Messages(now time.Time) []models.Message {
	base := now.Add(-2 * time.Hour).UnixMilli()
	minute := time.Minute.Milliseconds()
	return []models.Message{
		{ID: "m1", RideID: "r1", SenderID: "u2", Text: "Meet at the gas station at 5:30!", Timestamp: base},
		{ID: "m2", RideID: "r1", SenderID: "u3", Text: "Sounds good, I'll bring extra fuel.", Timestamp: base + 5*minute},
		{ID: "m3", RideID: "r4", SenderID: "u3", Text: "We're on the trail, regroup at the first checkpoint.", Timestamp: base + 10*minute},
		{ID: "m4", RideID: "r4", SenderID: "u5", Text: "Copy that.", Timestamp: base + 12*minute},
	}
}

// Load inserts the seed data when the store has no users yet. It reports
// whether anything was inserted.
func Load(ctx context.Context, store storage.Store, now time.Time) (bool, error) {
	existing, err := store.ListUsers(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check existing users: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("Store already populated, skipping seed", "users", len(existing))
		return false, nil
	}

	users := Users(now)
	for i := range users {
		if err := store.CreateUser(ctx, &users[i]); err != nil {
			return false, fmt.Errorf("failed to seed user %s: %w", users[i].ID, err)
		}
	}

	rides := Rides(now)
	for i := range rides {
		if err := store.CreateRide(ctx, &rides[i]); err != nil {
			return false, fmt.Errorf("failed to seed ride %s: %w", rides[i].ID, err)
		}
	}

	messages := Messages(now)
	for i := range messages {
		if err := store.AppendMessage(ctx, &messages[i]); err != nil {
			return false, fmt.Errorf("failed to seed message %s: %w", messages[i].ID, err)
		}
	}

	slog.Info("Seed data loaded", "users", len(users), "rides", len(rides), "messages", len(messages))
	return true, nil
}
