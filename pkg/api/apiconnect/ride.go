package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/ridecrew/pkg/api"
)

const (
	RideServiceCreateRideProcedure             = "/ridecrew.v1.RideService/CreateRide"
	RideServiceGetRideProcedure                = "/ridecrew.v1.RideService/GetRide"
	RideServiceListDiscoverableRidesProcedure  = "/ridecrew.v1.RideService/ListDiscoverableRides"
	RideServiceListMyRidesProcedure            = "/ridecrew.v1.RideService/ListMyRides"
	RideServiceJoinRideProcedure               = "/ridecrew.v1.RideService/JoinRide"
	RideServiceLeaveRideProcedure              = "/ridecrew.v1.RideService/LeaveRide"
	RideServiceAddParticipantProcedure         = "/ridecrew.v1.RideService/AddParticipant"
	RideServiceRemoveParticipantProcedure      = "/ridecrew.v1.RideService/RemoveParticipant"
	RideServiceAdvanceStatusProcedure          = "/ridecrew.v1.RideService/AdvanceStatus"
	RideServiceCancelRideProcedure             = "/ridecrew.v1.RideService/CancelRide"
	RideServiceRateRideProcedure               = "/ridecrew.v1.RideService/RateRide"
	RideServiceRecordRideStatsProcedure        = "/ridecrew.v1.RideService/RecordRideStats"
	RideServiceResolveDestinationProcedure     = "/ridecrew.v1.RideService/ResolveDestination"
	RideServiceShareEmergencyLocationProcedure = "/ridecrew.v1.RideService/ShareEmergencyLocation"
)

// RideServiceHandler is implemented by servers of ridecrew.v1.RideService.
type RideServiceHandler interface {
	CreateRide(context.Context, *connect.Request[api.CreateRideRequest]) (*connect.Response[api.CreateRideResponse], error)
	GetRide(context.Context, *connect.Request[api.GetRideRequest]) (*connect.Response[api.GetRideResponse], error)
	ListDiscoverableRides(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.ListDiscoverableRidesResponse], error)
	ListMyRides(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.ListMyRidesResponse], error)
	JoinRide(context.Context, *connect.Request[api.RideRequest]) (*connect.Response[api.RideResponse], error)
	LeaveRide(context.Context, *connect.Request[api.RideRequest]) (*connect.Response[api.RideResponse], error)
	AddParticipant(context.Context, *connect.Request[api.ParticipantRequest]) (*connect.Response[api.RideResponse], error)
	RemoveParticipant(context.Context, *connect.Request[api.ParticipantRequest]) (*connect.Response[api.RideResponse], error)
	AdvanceStatus(context.Context, *connect.Request[api.AdvanceStatusRequest]) (*connect.Response[api.RideResponse], error)
	CancelRide(context.Context, *connect.Request[api.RideRequest]) (*connect.Response[api.RideResponse], error)
	RateRide(context.Context, *connect.Request[api.RateRideRequest]) (*connect.Response[api.RideResponse], error)
	RecordRideStats(context.Context, *connect.Request[api.RecordRideStatsRequest]) (*connect.Response[api.RideResponse], error)
	ResolveDestination(context.Context, *connect.Request[api.ResolveDestinationRequest]) (*connect.Response[api.ResolveDestinationResponse], error)
	ShareEmergencyLocation(context.Context, *connect.Request[api.ShareEmergencyLocationRequest]) (*connect.Response[api.ShareEmergencyLocationResponse], error)
}

// NewRideServiceHandler builds an HTTP handler from the service implementation.
func NewRideServiceHandler(svc RideServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerDefaults(opts)
	createRide := connect.NewUnaryHandler(RideServiceCreateRideProcedure, svc.CreateRide, opts...)
	getRide := connect.NewUnaryHandler(RideServiceGetRideProcedure, svc.GetRide, opts...)
	listDiscoverableRides := connect.NewUnaryHandler(RideServiceListDiscoverableRidesProcedure, svc.ListDiscoverableRides, opts...)
	listMyRides := connect.NewUnaryHandler(RideServiceListMyRidesProcedure, svc.ListMyRides, opts...)
	joinRide := connect.NewUnaryHandler(RideServiceJoinRideProcedure, svc.JoinRide, opts...)
	leaveRide := connect.NewUnaryHandler(RideServiceLeaveRideProcedure, svc.LeaveRide, opts...)
	addParticipant := connect.NewUnaryHandler(RideServiceAddParticipantProcedure, svc.AddParticipant, opts...)
	removeParticipant := connect.NewUnaryHandler(RideServiceRemoveParticipantProcedure, svc.RemoveParticipant, opts...)
	advanceStatus := connect.NewUnaryHandler(RideServiceAdvanceStatusProcedure, svc.AdvanceStatus, opts...)
	cancelRide := connect.NewUnaryHandler(RideServiceCancelRideProcedure, svc.CancelRide, opts...)
	rateRide := connect.NewUnaryHandler(RideServiceRateRideProcedure, svc.RateRide, opts...)
	recordRideStats := connect.NewUnaryHandler(RideServiceRecordRideStatsProcedure, svc.RecordRideStats, opts...)
	resolveDestination := connect.NewUnaryHandler(RideServiceResolveDestinationProcedure, svc.ResolveDestination, opts...)
	shareEmergencyLocation := connect.NewUnaryHandler(RideServiceShareEmergencyLocationProcedure, svc.ShareEmergencyLocation, opts...)
	return "/" + RideServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case RideServiceCreateRideProcedure:
			createRide.ServeHTTP(w, r)
		case RideServiceGetRideProcedure:
			getRide.ServeHTTP(w, r)
		case RideServiceListDiscoverableRidesProcedure:
			listDiscoverableRides.ServeHTTP(w, r)
		case RideServiceListMyRidesProcedure:
			listMyRides.ServeHTTP(w, r)
		case RideServiceJoinRideProcedure:
			joinRide.ServeHTTP(w, r)
		case RideServiceLeaveRideProcedure:
			leaveRide.ServeHTTP(w, r)
		case RideServiceAddParticipantProcedure:
			addParticipant.ServeHTTP(w, r)
		case RideServiceRemoveParticipantProcedure:
			removeParticipant.ServeHTTP(w, r)
		case RideServiceAdvanceStatusProcedure:
			advanceStatus.ServeHTTP(w, r)
		case RideServiceCancelRideProcedure:
			cancelRide.ServeHTTP(w, r)
		case RideServiceRateRideProcedure:
			rateRide.ServeHTTP(w, r)
		case RideServiceRecordRideStatsProcedure:
			recordRideStats.ServeHTTP(w, r)
		case RideServiceResolveDestinationProcedure:
			resolveDestination.ServeHTTP(w, r)
		case RideServiceShareEmergencyLocationProcedure:
			shareEmergencyLocation.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedRideServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedRideServiceHandler struct{}

func (UnimplementedRideServiceHandler) CreateRide(context.Context, *connect.Request[api.CreateRideRequest]) (*connect.Response[api.CreateRideResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ridecrew.v1.RideService.CreateRide is not implemented"))
}

func (UnimplementedRideServiceHandler) GetRide(context.Context, *connect.Request[api.GetRideRequest]) (*connect.Response[api.GetRideResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ridecrew.v1.RideService.GetRide is not implemented"))
}

func (UnimplementedRideServiceHandler) ListDiscoverableRides(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.ListDiscoverableRidesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ridecrew.v1.RideService.ListDiscoverableRides is not implemented"))
}

func (UnimplementedRideServiceHandler) ListMyRides(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.ListMyRidesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ridecrew.v1.RideService.ListMyRides is not implemented"))
}

func (UnimplementedRideServiceHandler) JoinRide(context.Context, *connect.Request[api.RideRequest]) (*connect.Response[api.RideResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ridecrew.v1.RideService.JoinRide is not implemented"))
}

func (UnimplementedRideServiceHandler) LeaveRide(context.Context, *connect.Request[api.RideRequest]) (*connect.Response[api.RideResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ridecrew.v1.RideService.LeaveRide is not implemented"))
}

func (UnimplementedRideServiceHandler) AddParticipant(context.Context, *connect.Request[api.ParticipantRequest]) (*connect.Response[api.RideResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ridecrew.v1.RideService.AddParticipant is not implemented"))
}

func (UnimplementedRideServiceHandler) RemoveParticipant(context.Context, *connect.Request[api.ParticipantRequest]) (*connect.Response[api.RideResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ridecrew.v1.RideService.RemoveParticipant is not implemented"))
}

func (UnimplementedRideServiceHandler) AdvanceStatus(context.Context, *connect.Request[api.AdvanceStatusRequest]) (*connect.Response[api.RideResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ridecrew.v1.RideService.AdvanceStatus is not implemented"))
}

func (UnimplementedRideServiceHandler) CancelRide(context.Context, *connect.Request[api.RideRequest]) (*connect.Response[api.RideResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ridecrew.v1.RideService.CancelRide is not implemented"))
}

func (UnimplementedRideServiceHandler) RateRide(context.Context, *connect.Request[api.RateRideRequest]) (*connect.Response[api.RideResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ridecrew.v1.RideService.RateRide is not implemented"))
}

func (UnimplementedRideServiceHandler) RecordRideStats(context.Context, *connect.Request[api.RecordRideStatsRequest]) (*connect.Response[api.RideResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ridecrew.v1.RideService.RecordRideStats is not implemented"))
}

func (UnimplementedRideServiceHandler) ResolveDestination(context.Context, *connect.Request[api.ResolveDestinationRequest]) (*connect.Response[api.ResolveDestinationResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ridecrew.v1.RideService.ResolveDestination is not implemented"))
}

func (UnimplementedRideServiceHandler) ShareEmergencyLocation(context.Context, *connect.Request[api.ShareEmergencyLocationRequest]) (*connect.Response[api.ShareEmergencyLocationResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ridecrew.v1.RideService.ShareEmergencyLocation is not implemented"))
}

// RideServiceClient is a client for the ridecrew.v1.RideService service.
type RideServiceClient interface {
	CreateRide(context.Context, *connect.Request[api.CreateRideRequest]) (*connect.Response[api.CreateRideResponse], error)
	GetRide(context.Context, *connect.Request[api.GetRideRequest]) (*connect.Response[api.GetRideResponse], error)
	ListDiscoverableRides(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.ListDiscoverableRidesResponse], error)
	ListMyRides(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.ListMyRidesResponse], error)
	JoinRide(context.Context, *connect.Request[api.RideRequest]) (*connect.Response[api.RideResponse], error)
	LeaveRide(context.Context, *connect.Request[api.RideRequest]) (*connect.Response[api.RideResponse], error)
	AddParticipant(context.Context, *connect.Request[api.ParticipantRequest]) (*connect.Response[api.RideResponse], error)
	RemoveParticipant(context.Context, *connect.Request[api.ParticipantRequest]) (*connect.Response[api.RideResponse], error)
	AdvanceStatus(context.Context, *connect.Request[api.AdvanceStatusRequest]) (*connect.Response[api.RideResponse], error)
	CancelRide(context.Context, *connect.Request[api.RideRequest]) (*connect.Response[api.RideResponse], error)
	RateRide(context.Context, *connect.Request[api.RateRideRequest]) (*connect.Response[api.RideResponse], error)
	RecordRideStats(context.Context, *connect.Request[api.RecordRideStatsRequest]) (*connect.Response[api.RideResponse], error)
	ResolveDestination(context.Context, *connect.Request[api.ResolveDestinationRequest]) (*connect.Response[api.ResolveDestinationResponse], error)
	ShareEmergencyLocation(context.Context, *connect.Request[api.ShareEmergencyLocationRequest]) (*connect.Response[api.ShareEmergencyLocationResponse], error)
}

// NewRideServiceClient constructs a client for the ridecrew.v1.RideService service.
func NewRideServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) RideServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientDefaults(opts)
	return &rideServiceClient{
		createRide:             connect.NewClient[api.CreateRideRequest, api.CreateRideResponse](httpClient, baseURL+RideServiceCreateRideProcedure, opts...),
		getRide:                connect.NewClient[api.GetRideRequest, api.GetRideResponse](httpClient, baseURL+RideServiceGetRideProcedure, opts...),
		listDiscoverableRides:  connect.NewClient[emptypb.Empty, api.ListDiscoverableRidesResponse](httpClient, baseURL+RideServiceListDiscoverableRidesProcedure, opts...),
		listMyRides:            connect.NewClient[emptypb.Empty, api.ListMyRidesResponse](httpClient, baseURL+RideServiceListMyRidesProcedure, opts...),
		joinRide:               connect.NewClient[api.RideRequest, api.RideResponse](httpClient, baseURL+RideServiceJoinRideProcedure, opts...),
		leaveRide:              connect.NewClient[api.RideRequest, api.RideResponse](httpClient, baseURL+RideServiceLeaveRideProcedure, opts...),
		addParticipant:         connect.NewClient[api.ParticipantRequest, api.RideResponse](httpClient, baseURL+RideServiceAddParticipantProcedure, opts...),
		removeParticipant:      connect.NewClient[api.ParticipantRequest, api.RideResponse](httpClient, baseURL+RideServiceRemoveParticipantProcedure, opts...),
		advanceStatus:          connect.NewClient[api.AdvanceStatusRequest, api.RideResponse](httpClient, baseURL+RideServiceAdvanceStatusProcedure, opts...),
		cancelRide:             connect.NewClient[api.RideRequest, api.RideResponse](httpClient, baseURL+RideServiceCancelRideProcedure, opts...),
		rateRide:               connect.NewClient[api.RateRideRequest, api.RideResponse](httpClient, baseURL+RideServiceRateRideProcedure, opts...),
		recordRideStats:        connect.NewClient[api.RecordRideStatsRequest, api.RideResponse](httpClient, baseURL+RideServiceRecordRideStatsProcedure, opts...),
		resolveDestination:     connect.NewClient[api.ResolveDestinationRequest, api.ResolveDestinationResponse](httpClient, baseURL+RideServiceResolveDestinationProcedure, opts...),
		shareEmergencyLocation: connect.NewClient[api.ShareEmergencyLocationRequest, api.ShareEmergencyLocationResponse](httpClient, baseURL+RideServiceShareEmergencyLocationProcedure, opts...),
	}
}

type rideServiceClient struct {
	createRide             *connect.Client[api.CreateRideRequest, api.CreateRideResponse]
	getRide                *connect.Client[api.GetRideRequest, api.GetRideResponse]
	listDiscoverableRides  *connect.Client[emptypb.Empty, api.ListDiscoverableRidesResponse]
	listMyRides            *connect.Client[emptypb.Empty, api.ListMyRidesResponse]
	joinRide               *connect.Client[api.RideRequest, api.RideResponse]
	leaveRide              *connect.Client[api.RideRequest, api.RideResponse]
	addParticipant         *connect.Client[api.ParticipantRequest, api.RideResponse]
	removeParticipant      *connect.Client[api.ParticipantRequest, api.RideResponse]
	advanceStatus          *connect.Client[api.AdvanceStatusRequest, api.RideResponse]
	cancelRide             *connect.Client[api.RideRequest, api.RideResponse]
	rateRide               *connect.Client[api.RateRideRequest, api.RideResponse]
	recordRideStats        *connect.Client[api.RecordRideStatsRequest, api.RideResponse]
	resolveDestination     *connect.Client[api.ResolveDestinationRequest, api.ResolveDestinationResponse]
	shareEmergencyLocation *connect.Client[api.ShareEmergencyLocationRequest, api.ShareEmergencyLocationResponse]
}

func (c *rideServiceClient) CreateRide(ctx context.Context, req *connect.Request[api.CreateRideRequest]) (*connect.Response[api.CreateRideResponse], error) {
	return c.createRide.CallUnary(ctx, req)
}

func (c *rideServiceClient) GetRide(ctx context.Context, req *connect.Request[api.GetRideRequest]) (*connect.Response[api.GetRideResponse], error) {
	return c.getRide.CallUnary(ctx, req)
}

func (c *rideServiceClient) ListDiscoverableRides(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.ListDiscoverableRidesResponse], error) {
	return c.listDiscoverableRides.CallUnary(ctx, req)
}

func (c *rideServiceClient) ListMyRides(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.ListMyRidesResponse], error) {
	return c.listMyRides.CallUnary(ctx, req)
}

func (c *rideServiceClient) JoinRide(ctx context.Context, req *connect.Request[api.RideRequest]) (*connect.Response[api.RideResponse], error) {
	return c.joinRide.CallUnary(ctx, req)
}

func (c *rideServiceClient) LeaveRide(ctx context.Context, req *connect.Request[api.RideRequest]) (*connect.Response[api.RideResponse], error) {
	return c.leaveRide.CallUnary(ctx, req)
}

func (c *rideServiceClient) AddParticipant(ctx context.Context, req *connect.Request[api.ParticipantRequest]) (*connect.Response[api.RideResponse], error) {
	return c.addParticipant.CallUnary(ctx, req)
}

func (c *rideServiceClient) RemoveParticipant(ctx context.Context, req *connect.Request[api.ParticipantRequest]) (*connect.Response[api.RideResponse], error) {
	return c.removeParticipant.CallUnary(ctx, req)
}

func (c *rideServiceClient) AdvanceStatus(ctx context.Context, req *connect.Request[api.AdvanceStatusRequest]) (*connect.Response[api.RideResponse], error) {
	return c.advanceStatus.CallUnary(ctx, req)
}

func (c *rideServiceClient) CancelRide(ctx context.Context, req *connect.Request[api.RideRequest]) (*connect.Response[api.RideResponse], error) {
	return c.cancelRide.CallUnary(ctx, req)
}

func (c *rideServiceClient) RateRide(ctx context.Context, req *connect.Request[api.RateRideRequest]) (*connect.Response[api.RideResponse], error) {
	return c.rateRide.CallUnary(ctx, req)
}

func (c *rideServiceClient) RecordRideStats(ctx context.Context, req *connect.Request[api.RecordRideStatsRequest]) (*connect.Response[api.RideResponse], error) {
	return c.recordRideStats.CallUnary(ctx, req)
}

func (c *rideServiceClient) ResolveDestination(ctx context.Context, req *connect.Request[api.ResolveDestinationRequest]) (*connect.Response[api.ResolveDestinationResponse], error) {
	return c.resolveDestination.CallUnary(ctx, req)
}

func (c *rideServiceClient) ShareEmergencyLocation(ctx context.Context, req *connect.Request[api.ShareEmergencyLocationRequest]) (*connect.Response[api.ShareEmergencyLocationResponse], error) {
	return c.shareEmergencyLocation.CallUnary(ctx, req)
}
