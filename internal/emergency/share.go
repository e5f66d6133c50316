// Package emergency builds the location-share link sent to a rider's
// emergency contact.
package emergency

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/mmynk/ridecrew/internal/destination"
	"github.com/mmynk/ridecrew/internal/models"
)

// ErrNoContact is returned when the user has no emergency contact set.
var ErrNoContact = errors.New("no emergency contact set in profile")

// DefaultMessage prefixes the location link in the SMS body.
const DefaultMessage = "Emergency! I need help. My current location is:"

// Share is a ready-to-open SMS link addressed to a user's emergency contact.
type Share struct {
	ContactName  string
	ContactPhone string
	Body         string
	SMSLink      string
}

// BuildShare returns the SMS share for user at loc.
func BuildShare(user models.User, loc destination.Coordinate, message string) (Share, error) {
	if user.EmergencyContact == nil || user.EmergencyContact.Phone == "" {
		return Share{}, ErrNoContact
	}
	if err := loc.Validate(); err != nil {
		return Share{}, err
	}
	if message == "" {
		message = DefaultMessage
	}

	body := fmt.Sprintf("%s %s", message, destination.PointLink(loc))
	return Share{
		ContactName:  user.EmergencyContact.Name,
		ContactPhone: user.EmergencyContact.Phone,
		Body:         body,
		SMSLink:      fmt.Sprintf("sms:%s?body=%s", user.EmergencyContact.Phone, escapeBody(body)),
	}, nil
}

// escapeBody percent-encodes s for an sms: URI. Messaging apps decode the
// body as RFC 3986, where "+" is a literal plus, so spaces become %20.
func escapeBody(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
