package service

import (
	"github.com/mmynk/ridecrew/internal/lifecycle"
	"github.com/mmynk/ridecrew/internal/models"
	"github.com/mmynk/ridecrew/pkg/api"
)

func toAPIUser(u *models.User) *api.User {
	if u == nil {
		return nil
	}
	out := &api.User{
		Id:                u.ID,
		Name:              u.Name,
		Phone:             u.Phone,
		Email:             u.Email,
		Photo:             u.Photo,
		PreferredRideType: string(u.PreferredRideType),
		CreatedAt:         u.CreatedAt,
	}
	if u.EmergencyContact != nil {
		out.EmergencyContact = &api.EmergencyContact{
			Name:  u.EmergencyContact.Name,
			Phone: u.EmergencyContact.Phone,
		}
	}
	return out
}

func toAPIUsers(users []models.User) []*api.User {
	out := make([]*api.User, len(users))
	for i := range users {
		out[i] = toAPIUser(&users[i])
	}
	return out
}

func toAPIDestination(d models.Destination) *api.Destination {
	return &api.Destination{
		Name:        d.Name,
		Description: d.Description,
		MapsLink:    d.MapsLink,
	}
}

func toAPIRide(r *models.Ride) *api.Ride {
	if r == nil {
		return nil
	}
	out := &api.Ride{
		Id:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Destination:  toAPIDestination(r.Destination),
		Date:         r.Date,
		Reminder:     string(r.Reminder),
		Status:       string(r.Status),
		CreatedBy:    r.CreatedBy,
		Participants: append([]string(nil), r.Participants...),
		CreatedAt:    r.CreatedAt,
	}
	for _, rating := range r.Ratings {
		out.Ratings = append(out.Ratings, &api.Rating{UserId: rating.UserID, Value: int32(rating.Value)})
	}
	if r.Stats != nil {
		out.Stats = &api.RideStats{DistanceKm: r.Stats.DistanceKm, Duration: r.Stats.Duration}
	}
	if avg, ok := lifecycle.AverageRating(*r); ok {
		out.AverageRating = &avg
	}
	return out
}

func toAPIRides(rides []models.Ride) []*api.Ride {
	out := make([]*api.Ride, len(rides))
	for i := range rides {
		out[i] = toAPIRide(&rides[i])
	}
	return out
}

func toAPIMessage(m models.Message, senderName string) *api.Message {
	return &api.Message{
		Id:         m.ID,
		RideId:     m.RideID,
		SenderId:   m.SenderID,
		SenderName: senderName,
		Text:       m.Text,
		Timestamp:  m.Timestamp,
	}
}
