// Package lifecycle implements the ride state machine and roster rules.
//
// Every function takes a ride by value and returns an updated copy, or the
// zero ride and an error. Inputs are never modified, so callers persist the
// result only on success.
package lifecycle

import (
	"fmt"
	"math"
	"slices"

	"github.com/mmynk/ridecrew/internal/models"
)

// transitions lists the statuses reachable from each non-terminal status.
var transitions = map[models.RideStatus][]models.RideStatus{
	models.StatusUpcoming: {models.StatusOngoing, models.StatusCancelled},
	models.StatusOngoing:  {models.StatusCompleted},
}

// Join adds userID to the roster of an upcoming ride. Joining twice is a no-op.
func Join(ride models.Ride, userID string) (models.Ride, error) {
	if userID == "" {
		return models.Ride{}, fmt.Errorf("%w: user is required", models.ErrValidation)
	}
	if ride.Status != models.StatusUpcoming {
		return models.Ride{}, fmt.Errorf("%w: cannot join a ride that is %s", models.ErrInvalidState, ride.Status)
	}

	out := ride.Clone()
	if !out.HasParticipant(userID) {
		out.Participants = append(out.Participants, userID)
	}
	return out, nil
}

// Leave removes userID from the roster of an upcoming ride.
// The creator can never leave.
func Leave(ride models.Ride, userID string) (models.Ride, error) {
	if userID == ride.CreatedBy {
		return models.Ride{}, fmt.Errorf("%w: the creator cannot leave their own ride", models.ErrForbidden)
	}
	if ride.Status != models.StatusUpcoming {
		return models.Ride{}, fmt.Errorf("%w: cannot leave a ride that is %s", models.ErrInvalidState, ride.Status)
	}

	out := ride.Clone()
	out.Participants = slices.DeleteFunc(out.Participants, func(id string) bool { return id == userID })
	return out, nil
}

// AddParticipant lets the creator put targetID on the roster.
func AddParticipant(ride models.Ride, actorID, targetID string) (models.Ride, error) {
	if err := checkRosterEdit(ride, actorID); err != nil {
		return models.Ride{}, err
	}
	return Join(ride, targetID)
}

// RemoveParticipant lets the creator take targetID off the roster.
func RemoveParticipant(ride models.Ride, actorID, targetID string) (models.Ride, error) {
	if err := checkRosterEdit(ride, actorID); err != nil {
		return models.Ride{}, err
	}
	return Leave(ride, targetID)
}

func checkRosterEdit(ride models.Ride, actorID string) error {
	if actorID != ride.CreatedBy {
		return fmt.Errorf("%w: only the creator can edit the roster", models.ErrUnauthorized)
	}
	if ride.Status != models.StatusUpcoming {
		return fmt.Errorf("%w: roster is locked once a ride is %s", models.ErrInvalidState, ride.Status)
	}
	return nil
}

// AdvanceStatus moves the ride to next. Only the creator may do this, and
// only along Upcoming -> Ongoing -> Completed or Upcoming -> Cancelled.
func AdvanceStatus(ride models.Ride, actorID string, next models.RideStatus) (models.Ride, error) {
	if actorID != ride.CreatedBy {
		return models.Ride{}, fmt.Errorf("%w: only the creator can change the ride status", models.ErrUnauthorized)
	}
	if ride.Status.Terminal() {
		return models.Ride{}, fmt.Errorf("%w: ride is already %s", models.ErrInvalidState, ride.Status)
	}
	if !next.Valid() {
		return models.Ride{}, fmt.Errorf("%w: unknown status %q", models.ErrValidation, next)
	}
	if !slices.Contains(transitions[ride.Status], next) {
		return models.Ride{}, fmt.Errorf("%w: cannot go from %s to %s", models.ErrInvalidState, ride.Status, next)
	}

	out := ride.Clone()
	out.Status = next
	return out, nil
}

// Cancel calls off an upcoming ride.
func Cancel(ride models.Ride, actorID string) (models.Ride, error) {
	return AdvanceStatus(ride, actorID, models.StatusCancelled)
}

// Rate records userID's rating of a completed ride, replacing any earlier
// rating by the same user.
func Rate(ride models.Ride, userID string, value int) (models.Ride, error) {
	if value < 1 || value > 5 {
		return models.Ride{}, fmt.Errorf("%w: rating must be between 1 and 5, got %d", models.ErrValidation, value)
	}
	if ride.Status != models.StatusCompleted {
		return models.Ride{}, fmt.Errorf("%w: only completed rides can be rated", models.ErrInvalidState)
	}
	if !ride.HasParticipant(userID) {
		return models.Ride{}, fmt.Errorf("%w: only participants can rate a ride", models.ErrForbidden)
	}

	out := ride.Clone()
	for i := range out.Ratings {
		if out.Ratings[i].UserID == userID {
			out.Ratings[i].Value = value
			return out, nil
		}
	}
	out.Ratings = append(out.Ratings, models.Rating{UserID: userID, Value: value})
	return out, nil
}

// RecordStats stores distance and duration on a completed ride.
func RecordStats(ride models.Ride, actorID string, stats models.RideStats) (models.Ride, error) {
	if actorID != ride.CreatedBy {
		return models.Ride{}, fmt.Errorf("%w: only the creator can record ride stats", models.ErrUnauthorized)
	}
	if math.IsNaN(stats.DistanceKm) || math.IsInf(stats.DistanceKm, 0) || stats.DistanceKm < 0 {
		return models.Ride{}, fmt.Errorf("%w: distance must be a non-negative number", models.ErrValidation)
	}
	if ride.Status != models.StatusCompleted {
		return models.Ride{}, fmt.Errorf("%w: stats can only be recorded for completed rides", models.ErrInvalidState)
	}

	out := ride.Clone()
	out.Stats = &stats
	return out, nil
}

// AverageRating returns the mean rating rounded to one decimal place.
// ok is false when the ride has no ratings.
func AverageRating(ride models.Ride) (avg float64, ok bool) {
	if len(ride.Ratings) == 0 {
		return 0, false
	}
	sum := 0
	for _, r := range ride.Ratings {
		sum += r.Value
	}
	mean := float64(sum) / float64(len(ride.Ratings))
	return math.Round(mean*10) / 10, true
}
