package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/ridecrew/internal/destination"
	"github.com/mmynk/ridecrew/internal/emergency"
	"github.com/mmynk/ridecrew/internal/lifecycle"
	"github.com/mmynk/ridecrew/internal/metrics"
	"github.com/mmynk/ridecrew/internal/models"
	"github.com/mmynk/ridecrew/internal/storage"
	"github.com/mmynk/ridecrew/pkg/api"
	"github.com/mmynk/ridecrew/pkg/api/apiconnect"
)

// RideService implements the Connect RideService. Every mutation loads the
// ride, applies one lifecycle operation and saves the result only if the
// operation succeeded.
type RideService struct {
	apiconnect.UnimplementedRideServiceHandler
	store         storage.Store
	resolver      destination.Resolver
	metrics       *metrics.Metrics
	lookupTimeout time.Duration
	now           func() time.Time

	// mu serializes load-apply-save cycles so concurrent edits of one ride
	// cannot overwrite each other.
	mu sync.Mutex
}

// NewRideService creates a new RideService. A zero lookupTimeout leaves
// destination lookups bounded only by the request context.
func NewRideService(store storage.Store, resolver destination.Resolver, m *metrics.Metrics, lookupTimeout time.Duration) *RideService {
	return &RideService{
		store:         store,
		resolver:      resolver,
		metrics:       m,
		lookupTimeout: lookupTimeout,
		now:           time.Now,
	}
}

// mutate applies op to the stored ride and persists the result.
func (s *RideService) mutate(ctx context.Context, rideID string, op func(models.Ride) (models.Ride, error)) (*models.Ride, error) {
	if rideID == "" {
		return nil, fmt.Errorf("%w: ride_id required", models.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ride, err := s.store.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	updated, err := op(*ride)
	if err != nil {
		return nil, err
	}

	if err := s.store.UpdateRide(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// rideResponse logs a mutation outcome and builds the shared response.
func rideResponse(op string, ride *models.Ride, err error) (*connect.Response[api.RideResponse], error) {
	if err != nil {
		slog.Error(op+" failed", "error", err)
		return nil, toConnectError(err)
	}
	slog.Info(op+" successful", "ride_id", ride.ID, "status", ride.Status, "participants", len(ride.Participants))
	return connect.NewResponse(&api.RideResponse{Ride: toAPIRide(ride)}), nil
}

// CreateRide creates a ride owned by the acting user.
func (s *RideService) CreateRide(ctx context.Context, req *connect.Request[api.CreateRideRequest]) (*connect.Response[api.CreateRideResponse], error) {
	actor, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}

	slog.Info("CreateRide request received",
		"name", req.Msg.Name,
		"destination", req.Msg.DestinationName,
		"created_by", actor,
	)

	ride, err := lifecycle.CreateRide(actor, lifecycle.Draft{
		Name:            req.Msg.Name,
		Description:     req.Msg.Description,
		DestinationName: req.Msg.DestinationName,
		MapsLink:        req.Msg.MapsLink,
		Date:            req.Msg.Date,
		Reminder:        models.Reminder(req.Msg.Reminder),
	}, s.now())
	if err != nil {
		slog.Warn("CreateRide rejected", "error", err)
		return nil, toConnectError(err)
	}

	if err := s.store.CreateRide(ctx, &ride); err != nil {
		slog.Error("CreateRide failed", "error", err)
		return nil, toConnectError(err)
	}
	s.metrics.RideCreated()

	slog.Info("Ride created", "ride_id", ride.ID)

	return connect.NewResponse(&api.CreateRideResponse{
		Ride: toAPIRide(&ride),
	}), nil
}

// GetRide retrieves a ride by ID. The creator of an upcoming ride also gets
// the riders who could still be added to it.
func (s *RideService) GetRide(ctx context.Context, req *connect.Request[api.GetRideRequest]) (*connect.Response[api.GetRideResponse], error) {
	actor, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}
	rideID := req.Msg.GetRideId()
	slog.Info("GetRide request received", "ride_id", rideID)

	if rideID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("ride_id required"))
	}

	ride, err := s.store.GetRide(ctx, rideID)
	if err != nil {
		slog.Error("GetRide failed", "ride_id", rideID, "error", err)
		return nil, toConnectError(err)
	}

	resp := &api.GetRideResponse{Ride: toAPIRide(ride)}
	if ride.CreatedBy == actor && ride.Status == models.StatusUpcoming {
		users, err := s.store.ListUsers(ctx)
		if err != nil {
			slog.Error("GetRide failed - could not list users", "ride_id", rideID, "error", err)
			return nil, toConnectError(err)
		}
		resp.PotentialParticipants = toAPIUsers(lifecycle.PotentialParticipants(*ride, users))
	}

	return connect.NewResponse(resp), nil
}

// ListDiscoverableRides returns upcoming rides the acting user could join,
// soonest first.
func (s *RideService) ListDiscoverableRides(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.ListDiscoverableRidesResponse], error) {
	actor, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ListDiscoverableRides request received", "user_id", actor)

	rides, err := s.store.ListRides(ctx)
	if err != nil {
		slog.Error("ListDiscoverableRides failed", "error", err)
		return nil, toConnectError(err)
	}

	discoverable := lifecycle.Discoverable(rides, actor, s.now())
	slog.Info("ListDiscoverableRides successful", "count", len(discoverable))

	return connect.NewResponse(&api.ListDiscoverableRidesResponse{
		Rides: toAPIRides(discoverable),
	}), nil
}

// ListMyRides returns the acting user's upcoming and past rides.
func (s *RideService) ListMyRides(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.ListMyRidesResponse], error) {
	actor, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ListMyRides request received", "user_id", actor)

	rides, err := s.store.ListRides(ctx)
	if err != nil {
		slog.Error("ListMyRides failed", "error", err)
		return nil, toConnectError(err)
	}

	now := s.now()
	upcoming := lifecycle.MyUpcoming(rides, actor, now)
	past := lifecycle.MyPast(rides, actor, now)
	slog.Info("ListMyRides successful", "upcoming", len(upcoming), "past", len(past))

	return connect.NewResponse(&api.ListMyRidesResponse{
		Upcoming: toAPIRides(upcoming),
		Past:     toAPIRides(past),
	}), nil
}

// JoinRide adds the acting user to an upcoming ride.
func (s *RideService) JoinRide(ctx context.Context, req *connect.Request[api.RideRequest]) (*connect.Response[api.RideResponse], error) {
	actor, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("JoinRide request received", "ride_id", req.Msg.GetRideId(), "user_id", actor)

	ride, err := s.mutate(ctx, req.Msg.GetRideId(), func(r models.Ride) (models.Ride, error) {
		return lifecycle.Join(r, actor)
	})
	if err == nil {
		s.metrics.RosterChanged("join")
	}
	return rideResponse("JoinRide", ride, err)
}

// LeaveRide removes the acting user from an upcoming ride.
func (s *RideService) LeaveRide(ctx context.Context, req *connect.Request[api.RideRequest]) (*connect.Response[api.RideResponse], error) {
	actor, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("LeaveRide request received", "ride_id", req.Msg.GetRideId(), "user_id", actor)

	ride, err := s.mutate(ctx, req.Msg.GetRideId(), func(r models.Ride) (models.Ride, error) {
		return lifecycle.Leave(r, actor)
	})
	if err == nil {
		s.metrics.RosterChanged("leave")
	}
	return rideResponse("LeaveRide", ride, err)
}

// AddParticipant lets the creator add a known rider to the roster.
func (s *RideService) AddParticipant(ctx context.Context, req *connect.Request[api.ParticipantRequest]) (*connect.Response[api.RideResponse], error) {
	actor, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("AddParticipant request received",
		"ride_id", req.Msg.RideId,
		"user_id", req.Msg.UserId,
		"actor", actor,
	)

	if req.Msg.UserId == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("user_id required"))
	}
	if _, err := s.store.GetUser(ctx, req.Msg.UserId); err != nil {
		slog.Error("AddParticipant failed - unknown user", "user_id", req.Msg.UserId, "error", err)
		return nil, toConnectError(err)
	}

	ride, err := s.mutate(ctx, req.Msg.RideId, func(r models.Ride) (models.Ride, error) {
		return lifecycle.AddParticipant(r, actor, req.Msg.UserId)
	})
	if err == nil {
		s.metrics.RosterChanged("add")
	}
	return rideResponse("AddParticipant", ride, err)
}

// RemoveParticipant lets the creator remove a rider from the roster.
func (s *RideService) RemoveParticipant(ctx context.Context, req *connect.Request[api.ParticipantRequest]) (*connect.Response[api.RideResponse], error) {
	actor, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("RemoveParticipant request received",
		"ride_id", req.Msg.RideId,
		"user_id", req.Msg.UserId,
		"actor", actor,
	)

	ride, err := s.mutate(ctx, req.Msg.RideId, func(r models.Ride) (models.Ride, error) {
		return lifecycle.RemoveParticipant(r, actor, req.Msg.UserId)
	})
	if err == nil {
		s.metrics.RosterChanged("remove")
	}
	return rideResponse("RemoveParticipant", ride, err)
}

// AdvanceStatus moves a ride to the requested status.
func (s *RideService) AdvanceStatus(ctx context.Context, req *connect.Request[api.AdvanceStatusRequest]) (*connect.Response[api.RideResponse], error) {
	actor, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}
	next := models.RideStatus(req.Msg.Status)
	slog.Info("AdvanceStatus request received", "ride_id", req.Msg.RideId, "status", next, "actor", actor)

	ride, err := s.mutate(ctx, req.Msg.RideId, func(r models.Ride) (models.Ride, error) {
		return lifecycle.AdvanceStatus(r, actor, next)
	})
	if err == nil {
		s.metrics.StatusChanged(string(ride.Status))
	}
	return rideResponse("AdvanceStatus", ride, err)
}

// CancelRide cancels an upcoming ride.
func (s *RideService) CancelRide(ctx context.Context, req *connect.Request[api.RideRequest]) (*connect.Response[api.RideResponse], error) {
	actor, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CancelRide request received", "ride_id", req.Msg.GetRideId(), "actor", actor)

	ride, err := s.mutate(ctx, req.Msg.GetRideId(), func(r models.Ride) (models.Ride, error) {
		return lifecycle.Cancel(r, actor)
	})
	if err == nil {
		s.metrics.StatusChanged(string(ride.Status))
	}
	return rideResponse("CancelRide", ride, err)
}

// RateRide records the acting user's rating of a completed ride.
func (s *RideService) RateRide(ctx context.Context, req *connect.Request[api.RateRideRequest]) (*connect.Response[api.RideResponse], error) {
	actor, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("RateRide request received", "ride_id", req.Msg.RideId, "value", req.Msg.Value, "user_id", actor)

	ride, err := s.mutate(ctx, req.Msg.RideId, func(r models.Ride) (models.Ride, error) {
		return lifecycle.Rate(r, actor, int(req.Msg.Value))
	})
	if err == nil {
		s.metrics.RideRated()
	}
	return rideResponse("RateRide", ride, err)
}

// RecordRideStats attaches distance and duration to a completed ride.
func (s *RideService) RecordRideStats(ctx context.Context, req *connect.Request[api.RecordRideStatsRequest]) (*connect.Response[api.RideResponse], error) {
	actor, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("RecordRideStats request received",
		"ride_id", req.Msg.RideId,
		"distance_km", req.Msg.DistanceKm,
		"duration", req.Msg.Duration,
	)

	ride, err := s.mutate(ctx, req.Msg.RideId, func(r models.Ride) (models.Ride, error) {
		return lifecycle.RecordStats(r, actor, models.RideStats{
			DistanceKm: req.Msg.DistanceKm,
			Duration:   req.Msg.Duration,
		})
	})
	return rideResponse("RecordRideStats", ride, err)
}

// ResolveDestination turns a free-text query near the caller's position into
// a destination suggestion for the create form.
func (s *RideService) ResolveDestination(ctx context.Context, req *connect.Request[api.ResolveDestinationRequest]) (*connect.Response[api.ResolveDestinationResponse], error) {
	if _, err := actingUser(ctx); err != nil {
		return nil, err
	}
	slog.Info("ResolveDestination request received", "query", req.Msg.Query)

	loc, err := coordinate(req.Msg.Location)
	if err != nil {
		s.metrics.Lookup("no_fix")
		return nil, toConnectError(err)
	}

	if s.lookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.lookupTimeout)
		defer cancel()
	}

	dest, err := destination.Lookup(ctx, s.resolver, req.Msg.Query, loc)
	if err != nil {
		slog.Warn("ResolveDestination failed", "query", req.Msg.Query, "error", err)
		s.metrics.Lookup(lookupResult(err))
		return nil, toConnectError(err)
	}
	s.metrics.Lookup("ok")

	return connect.NewResponse(&api.ResolveDestinationResponse{
		Destination: toAPIDestination(dest),
	}), nil
}

// ShareEmergencyLocation builds the SMS link that sends the acting user's
// position to their emergency contact.
func (s *RideService) ShareEmergencyLocation(ctx context.Context, req *connect.Request[api.ShareEmergencyLocationRequest]) (*connect.Response[api.ShareEmergencyLocationResponse], error) {
	actor, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ShareEmergencyLocation request received", "user_id", actor)

	loc, err := coordinate(req.Msg.Location)
	if err != nil {
		return nil, toConnectError(err)
	}

	user, err := s.store.GetUser(ctx, actor)
	if err != nil {
		slog.Error("ShareEmergencyLocation failed", "user_id", actor, "error", err)
		return nil, toConnectError(err)
	}

	share, err := emergency.BuildShare(*user, loc, req.Msg.Message)
	if err != nil {
		slog.Warn("ShareEmergencyLocation rejected", "user_id", actor, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.ShareEmergencyLocationResponse{
		ContactName:  share.ContactName,
		ContactPhone: share.ContactPhone,
		Body:         share.Body,
		SmsLink:      share.SMSLink,
	}), nil
}

// lookupResult labels a failed destination lookup for metrics.
func lookupResult(err error) string {
	switch {
	case errors.Is(err, destination.ErrLookupFailed):
		return "failed"
	case errors.Is(err, destination.ErrNoFix):
		return "no_fix"
	default:
		return "invalid"
	}
}

func coordinate(loc *api.Location) (destination.Coordinate, error) {
	if loc == nil {
		return destination.Coordinate{}, fmt.Errorf("%w: location required", destination.ErrNoFix)
	}
	c := destination.Coordinate{Latitude: loc.Latitude, Longitude: loc.Longitude}
	return c, c.Validate()
}
