// Package api defines the ridecrew.v1 request and response messages exchanged
// over Connect. Field names follow protobuf's Go conventions and the JSON
// names follow protojson (lowerCamelCase), so clients see the same wire shape
// a generated package would produce.
package api

import "time"

type EmergencyContact struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type User struct {
	Id                string            `json:"id,omitempty"`
	Name              string            `json:"name,omitempty"`
	Phone             string            `json:"phone,omitempty"`
	Email             string            `json:"email,omitempty"`
	Photo             string            `json:"photo,omitempty"`
	PreferredRideType string            `json:"preferredRideType,omitempty"`
	EmergencyContact  *EmergencyContact `json:"emergencyContact,omitempty"`
	CreatedAt         int64             `json:"createdAt,omitempty"`
}

type Destination struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	MapsLink    string `json:"mapsLink,omitempty"`
}

type Rating struct {
	UserId string `json:"userId,omitempty"`
	Value  int32  `json:"value,omitempty"`
}

type RideStats struct {
	DistanceKm float64 `json:"distanceKm"`
	Duration   string  `json:"duration,omitempty"`
}

type Ride struct {
	Id           string       `json:"id,omitempty"`
	Name         string       `json:"name,omitempty"`
	Description  string       `json:"description,omitempty"`
	Destination  *Destination `json:"destination,omitempty"`
	Date         time.Time    `json:"date"`
	Reminder     string       `json:"reminder,omitempty"`
	Status       string       `json:"status,omitempty"`
	CreatedBy    string       `json:"createdBy,omitempty"`
	Participants []string     `json:"participants,omitempty"`
	Ratings      []*Rating    `json:"ratings,omitempty"`
	Stats        *RideStats   `json:"stats,omitempty"`
	// AverageRating is set only when at least one rating exists.
	AverageRating *float64 `json:"averageRating,omitempty"`
	CreatedAt     int64    `json:"createdAt,omitempty"`
}

type Message struct {
	Id         string `json:"id,omitempty"`
	RideId     string `json:"rideId,omitempty"`
	SenderId   string `json:"senderId,omitempty"`
	SenderName string `json:"senderName,omitempty"`
	Text       string `json:"text,omitempty"`
	Timestamp  int64  `json:"timestamp,omitempty"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UserService

type ListUsersResponse struct {
	Users []*User `json:"users,omitempty"`
}

type GetUserRequest struct {
	UserId string `json:"userId,omitempty"`
}

func (x *GetUserRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type GetUserResponse struct {
	User *User `json:"user,omitempty"`
}

// AuthService

type LoginRequest struct {
	UserId string `json:"userId,omitempty"`
}

type LoginResponse struct {
	User  *User  `json:"user,omitempty"`
	Token string `json:"token,omitempty"`
}

type GetCurrentUserResponse struct {
	User *User `json:"user,omitempty"`
}

// RideService

type CreateRideRequest struct {
	Name            string    `json:"name,omitempty"`
	Description     string    `json:"description,omitempty"`
	DestinationName string    `json:"destinationName,omitempty"`
	MapsLink        string    `json:"mapsLink,omitempty"`
	Date            time.Time `json:"date"`
	Reminder        string    `json:"reminder,omitempty"`
}

type CreateRideResponse struct {
	Ride *Ride `json:"ride,omitempty"`
}

type GetRideRequest struct {
	RideId string `json:"rideId,omitempty"`
}

func (x *GetRideRequest) GetRideId() string {
	if x != nil {
		return x.RideId
	}
	return ""
}

type GetRideResponse struct {
	Ride *Ride `json:"ride,omitempty"`
	// PotentialParticipants lists users not yet on the roster. Filled only
	// for the ride's creator while the ride is upcoming.
	PotentialParticipants []*User `json:"potentialParticipants,omitempty"`
}

type ListDiscoverableRidesResponse struct {
	Rides []*Ride `json:"rides,omitempty"`
}

type ListMyRidesResponse struct {
	Upcoming []*Ride `json:"upcoming,omitempty"`
	Past     []*Ride `json:"past,omitempty"`
}

// RideRequest names a ride acted on by the calling user (join, leave, cancel).
type RideRequest struct {
	RideId string `json:"rideId,omitempty"`
}

func (x *RideRequest) GetRideId() string {
	if x != nil {
		return x.RideId
	}
	return ""
}

// RideResponse carries the ride after a successful mutation.
type RideResponse struct {
	Ride *Ride `json:"ride,omitempty"`
}

// ParticipantRequest names a roster member to add or remove.
type ParticipantRequest struct {
	RideId string `json:"rideId,omitempty"`
	UserId string `json:"userId,omitempty"`
}

type AdvanceStatusRequest struct {
	RideId string `json:"rideId,omitempty"`
	Status string `json:"status,omitempty"`
}

type RateRideRequest struct {
	RideId string `json:"rideId,omitempty"`
	Value  int32  `json:"value,omitempty"`
}

type RecordRideStatsRequest struct {
	RideId     string  `json:"rideId,omitempty"`
	DistanceKm float64 `json:"distanceKm"`
	Duration   string  `json:"duration,omitempty"`
}

type ResolveDestinationRequest struct {
	Query    string    `json:"query,omitempty"`
	Location *Location `json:"location,omitempty"`
}

type ResolveDestinationResponse struct {
	Destination *Destination `json:"destination,omitempty"`
}

type ShareEmergencyLocationRequest struct {
	Location *Location `json:"location,omitempty"`
	Message  string    `json:"message,omitempty"`
}

type ShareEmergencyLocationResponse struct {
	ContactName  string `json:"contactName,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
	Body         string `json:"body,omitempty"`
	SmsLink      string `json:"smsLink,omitempty"`
}

// ChatService

type PostMessageRequest struct {
	RideId string `json:"rideId,omitempty"`
	Text   string `json:"text,omitempty"`
}

type PostMessageResponse struct {
	Message *Message `json:"message,omitempty"`
}

type ListMessagesRequest struct {
	RideId string `json:"rideId,omitempty"`
}

func (x *ListMessagesRequest) GetRideId() string {
	if x != nil {
		return x.RideId
	}
	return ""
}

type ListMessagesResponse struct {
	Messages []*Message `json:"messages,omitempty"`
}
