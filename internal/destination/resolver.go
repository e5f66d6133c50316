// Package destination defines the contract for turning a free-text place
// query into a named, linkable destination.
package destination

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/mmynk/ridecrew/internal/models"
)

var (
	// ErrLookupFailed is returned when the underlying lookup service errors.
	ErrLookupFailed = errors.New("failed to find destination, please try a different search")

	// ErrNoFix is returned when no usable geographic position was supplied.
	ErrNoFix = errors.New("no location fix available")
)

// Coordinate is a WGS84 position.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Validate returns ErrNoFix unless c is a real position on the globe.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) ||
		c.Latitude < -90 || c.Latitude > 90 ||
		c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: invalid coordinate (%v, %v)", ErrNoFix, c.Latitude, c.Longitude)
	}
	return nil
}

// Resolver looks up a destination near a position.
//
// Implementations must wrap service failures in ErrLookupFailed and must not
// retry; callers bound the call with ctx.
type Resolver interface {
	Resolve(ctx context.Context, query string, loc Coordinate) (models.Destination, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, query string, loc Coordinate) (models.Destination, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(ctx context.Context, query string, loc Coordinate) (models.Destination, error) {
	return f(ctx, query, loc)
}

// Lookup validates the inputs, then calls r. Errors from r that are not
// already ErrLookupFailed are wrapped in it.
func Lookup(ctx context.Context, r Resolver, query string, loc Coordinate) (models.Destination, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return models.Destination{}, fmt.Errorf("%w: destination query is empty", models.ErrValidation)
	}
	if err := loc.Validate(); err != nil {
		return models.Destination{}, err
	}

	dest, err := r.Resolve(ctx, query, loc)
	if err != nil {
		if errors.Is(err, ErrLookupFailed) {
			return models.Destination{}, err
		}
		return models.Destination{}, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	if dest.Name == "" {
		dest.Name = query
	}
	if dest.MapsLink == "" {
		dest.MapsLink = SearchLink(query)
	}
	return dest, nil
}

// SearchLink returns a map search URL for query.
func SearchLink(query string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(query)
}

// PointLink returns a map URL that drops a pin at c.
func PointLink(c Coordinate) string {
	return fmt.Sprintf("https://www.google.com/maps?q=%g,%g", c.Latitude, c.Longitude)
}

// MapSearchResolver resolves any query to a map search for it. It never
// fails and needs no network access.
type MapSearchResolver struct{}

// Resolve implements Resolver.
func (MapSearchResolver) Resolve(ctx context.Context, query string, _ Coordinate) (models.Destination, error) {
	if err := ctx.Err(); err != nil {
		return models.Destination{}, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	return models.Destination{
		Name:        query,
		Description: "Could not find specific location details, but it sounds like a great ride!",
		MapsLink:    SearchLink(query),
	}, nil
}
