package service

import (
	"context"
	"slices"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/ridecrew/internal/models"
	"github.com/mmynk/ridecrew/pkg/api"
)

// TestRideScenario drives one ride from creation to rating through the RPC
// surface, with u1 as the creator and u2 as a rider.
func TestRideScenario(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	creator := env.rides(t, "u1")
	rider := env.rides(t, "u2")

	created, err := creator.CreateRide(ctx, connect.NewRequest(&api.CreateRideRequest{
		Name:            "Tomorrow's Loop",
		DestinationName: "Wadi Hanifa",
		Date:            testNow.Add(24 * time.Hour),
	}))
	if err != nil {
		t.Fatalf("CreateRide failed: %v", err)
	}
	rideID := created.Msg.Ride.Id
	if created.Msg.Ride.Status != string(models.StatusUpcoming) {
		t.Fatalf("status = %s", created.Msg.Ride.Status)
	}

	joined, err := rider.JoinRide(ctx, connect.NewRequest(&api.RideRequest{RideId: rideID}))
	if err != nil {
		t.Fatalf("JoinRide failed: %v", err)
	}
	if !slices.Equal(joined.Msg.Ride.Participants, []string{"u1", "u2"}) {
		t.Fatalf("participants = %v", joined.Msg.Ride.Participants)
	}

	if _, err := creator.AdvanceStatus(ctx, connect.NewRequest(&api.AdvanceStatusRequest{RideId: rideID, Status: "Ongoing"})); err != nil {
		t.Fatalf("AdvanceStatus(Ongoing) failed: %v", err)
	}

	_, err = rider.AdvanceStatus(ctx, connect.NewRequest(&api.AdvanceStatusRequest{RideId: rideID, Status: "Completed"}))
	assertCode(t, err, connect.CodePermissionDenied)
	if got := env.storedRide(t, rideID).Status; got != models.StatusOngoing {
		t.Fatalf("status after rejected advance = %s", got)
	}

	if _, err := creator.AdvanceStatus(ctx, connect.NewRequest(&api.AdvanceStatusRequest{RideId: rideID, Status: "Completed"})); err != nil {
		t.Fatalf("AdvanceStatus(Completed) failed: %v", err)
	}

	rated, err := rider.RateRide(ctx, connect.NewRequest(&api.RateRideRequest{RideId: rideID, Value: 5}))
	if err != nil {
		t.Fatalf("RateRide failed: %v", err)
	}
	ratings := rated.Msg.Ride.Ratings
	if len(ratings) != 1 || ratings[0].UserId != "u2" || ratings[0].Value != 5 {
		t.Errorf("ratings = %+v", ratings)
	}
	if rated.Msg.Ride.AverageRating == nil || *rated.Msg.Ride.AverageRating != 5.0 {
		t.Errorf("average = %v, want 5.0", rated.Msg.Ride.AverageRating)
	}

	_, err = creator.AdvanceStatus(ctx, connect.NewRequest(&api.AdvanceStatusRequest{RideId: rideID, Status: "Ongoing"}))
	assertCode(t, err, connect.CodeFailedPrecondition)

	stored := env.storedRide(t, rideID)
	if !stored.HasParticipant(stored.CreatedBy) {
		t.Error("creator missing from roster")
	}

	// One series per status reached: Ongoing and Completed.
	n, err := testutil.GatherAndCount(env.metrics.Registry(), "ridecrew_ride_status_changes_total")
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	if n != 2 {
		t.Errorf("status change series = %d, want 2", n)
	}
}
