package lifecycle

import (
	"slices"
	"time"

	"github.com/mmynk/ridecrew/internal/models"
)

// Discoverable returns upcoming rides userID has not joined and that have not
// started yet, soonest first.
func Discoverable(rides []models.Ride, userID string, now time.Time) []models.Ride {
	out := filter(rides, func(r models.Ride) bool {
		return r.Status == models.StatusUpcoming &&
			!r.HasParticipant(userID) &&
			!r.Date.Before(now)
	})
	sortByDate(out, false)
	return out
}

// MyUpcoming returns the upcoming rides userID is on, soonest first.
func MyUpcoming(rides []models.Ride, userID string, now time.Time) []models.Ride {
	out := filter(rides, func(r models.Ride) bool {
		return r.HasParticipant(userID) &&
			r.Status == models.StatusUpcoming &&
			!r.Date.Before(now)
	})
	sortByDate(out, false)
	return out
}

// MyPast returns the rides userID is on that have either passed their date or
// left the Upcoming state, most recent first. Ongoing rides land here too.
func MyPast(rides []models.Ride, userID string, now time.Time) []models.Ride {
	out := filter(rides, func(r models.Ride) bool {
		return r.HasParticipant(userID) &&
			(r.Date.Before(now) || r.Status != models.StatusUpcoming)
	})
	sortByDate(out, true)
	return out
}

// PotentialParticipants returns the users not yet on the ride's roster.
func PotentialParticipants(ride models.Ride, users []models.User) []models.User {
	var out []models.User
	for _, u := range users {
		if !ride.HasParticipant(u.ID) {
			out = append(out, u)
		}
	}
	return out
}

func filter(rides []models.Ride, keep func(models.Ride) bool) []models.Ride {
	var out []models.Ride
	for _, r := range rides {
		if keep(r) {
			out = append(out, r.Clone())
		}
	}
	return out
}

func sortByDate(rides []models.Ride, desc bool) {
	slices.SortStableFunc(rides, func(a, b models.Ride) int {
		if desc {
			return b.Date.Compare(a.Date)
		}
		return a.Date.Compare(b.Date)
	})
}
