package lifecycle

import (
	"testing"
	"time"

	"github.com/mmynk/ridecrew/internal/models"
)

func ids(rides []models.Ride) []string {
	out := make([]string, len(rides))
	for i, r := range rides {
		out[i] = r.ID
	}
	return out
}

func equalIDs(t *testing.T, got []models.Ride, want ...string) {
	t.Helper()
	g := ids(got)
	if len(g) != len(want) {
		t.Fatalf("got %v, want %v", g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("got %v, want %v", g, want)
		}
	}
}

func fixtureRides() []models.Ride {
	day := 24 * time.Hour
	return []models.Ride{
		{ID: "later", Status: models.StatusUpcoming, CreatedBy: "a", Participants: []string{"a"}, Date: now.Add(3 * day)},
		{ID: "soon", Status: models.StatusUpcoming, CreatedBy: "a", Participants: []string{"a"}, Date: now.Add(day)},
		{ID: "joined", Status: models.StatusUpcoming, CreatedBy: "a", Participants: []string{"a", "u"}, Date: now.Add(2 * day)},
		{ID: "stale", Status: models.StatusUpcoming, CreatedBy: "a", Participants: []string{"a", "u"}, Date: now.Add(-day)},
		{ID: "stale-open", Status: models.StatusUpcoming, CreatedBy: "a", Participants: []string{"a"}, Date: now.Add(-day)},
		{ID: "ongoing", Status: models.StatusOngoing, CreatedBy: "a", Participants: []string{"a", "u"}, Date: now.Add(4 * day)},
		{ID: "done", Status: models.StatusCompleted, CreatedBy: "a", Participants: []string{"a", "u"}, Date: now.Add(-3 * day)},
		{ID: "cancelled", Status: models.StatusCancelled, CreatedBy: "a", Participants: []string{"a"}, Date: now.Add(day)},
		{ID: "now", Status: models.StatusUpcoming, CreatedBy: "u", Participants: []string{"u"}, Date: now},
	}
}

func TestDiscoverable(t *testing.T) {
	rides := fixtureRides()
	got := Discoverable(rides, "u", now)
	equalIDs(t, got, "soon", "later")

	for _, r := range got {
		if r.HasParticipant("u") {
			t.Errorf("ride %s already joined", r.ID)
		}
		if r.Date.Before(now) {
			t.Errorf("ride %s is in the past", r.ID)
		}
		if r.Status != models.StatusUpcoming {
			t.Errorf("ride %s is %s", r.ID, r.Status)
		}
	}
}

func TestDiscoverable_IncludesRideStartingNow(t *testing.T) {
	got := Discoverable(fixtureRides(), "a", now)
	equalIDs(t, got, "now")
}

func TestMyUpcoming(t *testing.T) {
	got := MyUpcoming(fixtureRides(), "u", now)
	equalIDs(t, got, "now", "joined")
}

func TestMyPast(t *testing.T) {
	got := MyPast(fixtureRides(), "u", now)
	// Ongoing rides are listed with past rides even when dated in the future.
	equalIDs(t, got, "ongoing", "stale", "done")
}

func TestViews_DoNotAliasInput(t *testing.T) {
	rides := fixtureRides()
	got := Discoverable(rides, "u", now)
	got[0].Participants[0] = "mutated"
	if rides[1].Participants[0] != "a" {
		t.Error("view shares participant slice with input")
	}
}

func TestPotentialParticipants(t *testing.T) {
	ride := models.Ride{CreatedBy: "a", Participants: []string{"a", "b"}}
	users := []models.User{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}

	got := PotentialParticipants(ride, users)
	if len(got) != 2 || got[0].ID != "c" || got[1].ID != "d" {
		t.Errorf("got %+v, want c and d", got)
	}
}
