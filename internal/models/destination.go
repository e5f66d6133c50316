package models

// Destination is where a ride is headed.
type Destination struct {
	// Name is a short display name for the place.
	Name string

	// Description is a one-sentence description of the destination.
	// Rides only keep Name and MapsLink; Description is filled by lookups.
	Description string

	// MapsLink is an opaque URI that opens the place in a map viewer.
	MapsLink string
}
