// Package apiconnect wires the ridecrew.v1 services to Connect: procedure
// names, handler interfaces, HTTP handler constructors and typed clients.
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
	// UserServiceName is the fully-qualified name of the UserService service.
	UserServiceName = "ridecrew.v1.UserService"
	// AuthServiceName is the fully-qualified name of the AuthService service.
	AuthServiceName = "ridecrew.v1.AuthService"
	// RideServiceName is the fully-qualified name of the RideService service.
	RideServiceName = "ridecrew.v1.RideService"
	// ChatServiceName is the fully-qualified name of the ChatService service.
	ChatServiceName = "ridecrew.v1.ChatService"
)

const (
	UserServiceListUsersProcedure = "/ridecrew.v1.UserService/ListUsers"
	UserServiceGetUserProcedure   = "/ridecrew.v1.UserService/GetUser"
)

// UserServiceHandler is implemented by servers of ridecrew.v1.UserService.
type UserServiceHandler interface {
	ListUsers(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.ListUsersResponse], error)
	GetUser(context.Context, *connect.Request[api.GetUserRequest]) (*connect.Response[api.GetUserResponse], error)
}

// NewUserServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewUserServiceHandler(svc UserServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerDefaults(opts)
	listUsers := connect.NewUnaryHandler(UserServiceListUsersProcedure, svc.ListUsers, opts...)
	getUser := connect.NewUnaryHandler(UserServiceGetUserProcedure, svc.GetUser, opts...)
	return "/" + UserServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case UserServiceListUsersProcedure:
			listUsers.ServeHTTP(w, r)
		case UserServiceGetUserProcedure:
			getUser.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedUserServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedUserServiceHandler struct{}

func (UnimplementedUserServiceHandler) ListUsers(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.ListUsersResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ridecrew.v1.UserService.ListUsers is not implemented"))
}

func (UnimplementedUserServiceHandler) GetUser(context.Context, *connect.Request[api.GetUserRequest]) (*connect.Response[api.GetUserResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ridecrew.v1.UserService.GetUser is not implemented"))
}

// UserServiceClient is a client for the ridecrew.v1.UserService service.
type UserServiceClient interface {
	ListUsers(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.ListUsersResponse], error)
	GetUser(context.Context, *connect.Request[api.GetUserRequest]) (*connect.Response[api.GetUserResponse], error)
}

// NewUserServiceClient constructs a client for the ridecrew.v1.UserService
// service. baseURL is the server root, e.g. http://localhost:8080.
func NewUserServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) UserServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientDefaults(opts)
	return &userServiceClient{
		listUsers: connect.NewClient[emptypb.Empty, api.ListUsersResponse](httpClient, baseURL+UserServiceListUsersProcedure, opts...),
		getUser:   connect.NewClient[api.GetUserRequest, api.GetUserResponse](httpClient, baseURL+UserServiceGetUserProcedure, opts...),
	}
}

type userServiceClient struct {
	listUsers *connect.Client[emptypb.Empty, api.ListUsersResponse]
	getUser   *connect.Client[api.GetUserRequest, api.GetUserResponse]
}

func (c *userServiceClient) ListUsers(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.ListUsersResponse], error) {
	return c.listUsers.CallUnary(ctx, req)
}

func (c *userServiceClient) GetUser(ctx context.Context, req *connect.Request[api.GetUserRequest]) (*connect.Response[api.GetUserResponse], error) {
	return c.getUser.CallUnary(ctx, req)
}
