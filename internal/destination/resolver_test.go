package destination

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/mmynk/ridecrew/internal/models"
)

var here = Coordinate{Latitude: 24.7136, Longitude: 46.6753}

func TestLookup_MapSearch(t *testing.T) {
	dest, err := Lookup(context.Background(), MapSearchResolver{}, "  Red Sands dunes ", here)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if dest.Name != "Red Sands dunes" {
		t.Errorf("name = %q", dest.Name)
	}
	if !strings.Contains(dest.MapsLink, "query=Red+Sands+dunes") {
		t.Errorf("maps link = %q", dest.MapsLink)
	}
	if dest.Description == "" {
		t.Error("expected a description")
	}
}

func TestLookup_Errors(t *testing.T) {
	failing := ResolverFunc(func(context.Context, string, Coordinate) (models.Destination, error) {
		return models.Destination{}, errors.New("upstream 503")
	})

	tests := []struct {
		name    string
		r       Resolver
		query   string
		loc     Coordinate
		wantErr error
	}{
		{name: "empty query", r: MapSearchResolver{}, query: " ", loc: here, wantErr: models.ErrValidation},
		{name: "latitude out of range", r: MapSearchResolver{}, query: "x", loc: Coordinate{Latitude: 91}, wantErr: ErrNoFix},
		{name: "NaN longitude", r: MapSearchResolver{}, query: "x", loc: Coordinate{Longitude: math.NaN()}, wantErr: ErrNoFix},
		{name: "service error", r: failing, query: "x", loc: here, wantErr: ErrLookupFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Lookup(context.Background(), tt.r, tt.query, tt.loc)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLookup_NoFixIsNotLookupFailure(t *testing.T) {
	_, err := Lookup(context.Background(), MapSearchResolver{}, "x", Coordinate{Latitude: -100})
	if errors.Is(err, ErrLookupFailed) {
		t.Error("missing fix reported as lookup failure")
	}
}

func TestLookup_FillsMissingFields(t *testing.T) {
	sparse := ResolverFunc(func(context.Context, string, Coordinate) (models.Destination, error) {
		return models.Destination{Description: "Sand for days."}, nil
	})
	dest, err := Lookup(context.Background(), sparse, "Red Sands", here)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if dest.Name != "Red Sands" || dest.MapsLink != SearchLink("Red Sands") {
		t.Errorf("got %+v", dest)
	}
}

func TestMapSearchResolver_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Lookup(ctx, MapSearchResolver{}, "x", here); !errors.Is(err, ErrLookupFailed) {
		t.Errorf("expected ErrLookupFailed, got %v", err)
	}
}

func TestPointLink(t *testing.T) {
	got := PointLink(Coordinate{Latitude: 24.5, Longitude: 46.25})
	if got != "https://www.google.com/maps?q=24.5,46.25" {
		t.Errorf("got %q", got)
	}
}
