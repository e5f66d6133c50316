package models

// RideType is the kind of vehicle a rider prefers.
type RideType string

const (
	RideTypeMotorcycle   RideType = "Motorcycle"
	RideTypeATV          RideType = "ATV"
	RideTypeSideBySide   RideType = "Side-by-Side"
	RideTypeBicycle      RideType = "Bicycle"
	RideTypeOffroadTruck RideType = "Off-road Truck"
)

// EmergencyContact is the person a rider's location gets shared with in an
// emergency.
type EmergencyContact struct {
	Name  string
	Phone string
}

// User represents a rider.
//
// Users are seeded at startup and are immutable afterwards; there is no
// profile edit flow.
type User struct {
	// ID is the unique identifier for the user.
	ID string

	// Name is the display name of the user.
	Name string

	// Phone is the user's phone number.
	Phone string

	// Email is the user's email address.
	Email string

	// Photo is a URL to the user's avatar.
	Photo string

	// PreferredRideType is the vehicle the user usually rides.
	PreferredRideType RideType

	// EmergencyContact is nil when the user has not set one.
	EmergencyContact *EmergencyContact

	// CreatedAt is the Unix timestamp when the user was created.
	CreatedAt int64
}
