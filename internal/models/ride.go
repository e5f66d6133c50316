package models

import (
	"slices"
	"time"
)

// RideStatus is the lifecycle state of a ride.
type RideStatus string

const (
	StatusUpcoming  RideStatus = "Upcoming"
	StatusOngoing   RideStatus = "Ongoing"
	StatusCompleted RideStatus = "Completed"
	StatusCancelled RideStatus = "Cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s RideStatus) Valid() bool {
	switch s {
	case StatusUpcoming, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible from s.
func (s RideStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Reminder is the advisory reminder setting of a ride. Nothing schedules
// reminders; the value is stored and returned to clients.
type Reminder string

const (
	ReminderNone    Reminder = "none"
	ReminderOneHour Reminder = "1h"
	ReminderOneDay  Reminder = "24h"
)

// DefaultReminder is applied when a ride is created without a reminder.
const DefaultReminder = ReminderOneHour

// Rating is one participant's 1-5 score for a completed ride.
type Rating struct {
	UserID string
	Value  int
}

// RideStats holds figures recorded after a ride is completed.
type RideStats struct {
	// DistanceKm is the distance covered in kilometers.
	DistanceKm float64

	// Duration is a free-form duration such as "2h 30m".
	Duration string
}

// Ride represents a scheduled group outing.
type Ride struct {
	// ID is the unique identifier for the ride (UUID format).
	ID string

	// Name is the display name of the ride.
	Name string

	// Description is free text shown on the ride's page.
	Description string

	// Destination is where the ride heads. Only Name and MapsLink are kept.
	Destination Destination

	// Date is the instant the ride starts.
	Date time.Time

	// Reminder is the advisory reminder setting.
	Reminder Reminder

	// Status is the lifecycle state.
	Status RideStatus

	// CreatedBy is the user ID of the ride's creator. The creator is always
	// a participant.
	CreatedBy string

	// Participants is the roster in join order. IDs are unique.
	Participants []string

	// Ratings holds at most one rating per user, in first-rated order.
	Ratings []Rating

	// Stats is nil until recorded on a completed ride.
	Stats *RideStats

	// CreatedAt is the Unix timestamp when the ride was created.
	CreatedAt int64
}

// HasParticipant reports whether userID is on the roster.
func (r Ride) HasParticipant(userID string) bool {
	return slices.Contains(r.Participants, userID)
}

// RatingBy returns the rating userID gave, if any.
func (r Ride) RatingBy(userID string) (int, bool) {
	for _, rt := range r.Ratings {
		if rt.UserID == userID {
			return rt.Value, true
		}
	}
	return 0, false
}

// Clone returns a deep copy of r so that callers can modify slices and
// pointers without touching the original.
func (r Ride) Clone() Ride {
	c := r
	c.Participants = slices.Clone(r.Participants)
	c.Ratings = slices.Clone(r.Ratings)
	if r.Stats != nil {
		stats := *r.Stats
		c.Stats = &stats
	}
	return c
}
