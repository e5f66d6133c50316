package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mmynk/ridecrew/internal/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Draft holds the user-supplied attributes of a new ride.
type Draft struct {
	Name            string          `validate:"required"`
	Description     string          `validate:"max=2000"`
	DestinationName string          `validate:"required"`
	MapsLink        string          `validate:"max=2048"`
	Date            time.Time       `validate:"required"`
	Reminder        models.Reminder `validate:"omitempty,oneof=none 1h 24h"`
}

// CreateRide builds a new ride owned by creatorID. The ride starts Upcoming
// with the creator as its only participant.
func CreateRide(creatorID string, draft Draft, now time.Time) (models.Ride, error) {
	if creatorID == "" {
		return models.Ride{}, fmt.Errorf("%w: creator is required", models.ErrValidation)
	}

	draft.Name = strings.TrimSpace(draft.Name)
	draft.DestinationName = strings.TrimSpace(draft.DestinationName)
	draft.Description = strings.TrimSpace(draft.Description)
	if err := validate.Struct(draft); err != nil {
		return models.Ride{}, fmt.Errorf("%w: %s", models.ErrValidation, describe(err))
	}

	reminder := draft.Reminder
	if reminder == "" {
		reminder = models.DefaultReminder
	}

	return models.Ride{
		ID:          uuid.New().String(),
		Name:        draft.Name,
		Description: draft.Description,
		Destination: models.Destination{
			Name:     draft.DestinationName,
			MapsLink: draft.MapsLink,
		},
		Date:         draft.Date.UTC().Truncate(time.Millisecond),
		Reminder:     reminder,
		Status:       models.StatusUpcoming,
		CreatedBy:    creatorID,
		Participants: []string{creatorID},
		CreatedAt:    now.Unix(),
	}, nil
}

// describe flattens validator errors into "field: rule" pairs.
func describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			parts = append(parts, fmt.Sprintf("%s is required", fe.Field()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}
