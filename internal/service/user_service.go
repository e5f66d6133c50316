package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/ridecrew/internal/storage"
	"github.com/mmynk/ridecrew/pkg/api"
	"github.com/mmynk/ridecrew/pkg/api/apiconnect"
)

// UserService implements the Connect UserService. It exposes the fixed rider
// roster so clients can render names, avatars and the login picker.
type UserService struct {
	apiconnect.UnimplementedUserServiceHandler
	store storage.Store
}

// NewUserService creates a new UserService with the given storage backend.
func NewUserService(store storage.Store) *UserService {
	return &UserService{store: store}
}

// ListUsers returns every rider.
func (s *UserService) ListUsers(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.ListUsersResponse], error) {
	slog.Info("ListUsers request received")

	users, err := s.store.ListUsers(ctx)
	if err != nil {
		slog.Error("ListUsers failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("ListUsers successful", "count", len(users))

	return connect.NewResponse(&api.ListUsersResponse{
		Users: toAPIUsers(users),
	}), nil
}

// GetUser retrieves a rider by ID.
func (s *UserService) GetUser(ctx context.Context, req *connect.Request[api.GetUserRequest]) (*connect.Response[api.GetUserResponse], error) {
	userID := req.Msg.GetUserId()
	slog.Info("GetUser request received", "user_id", userID)

	if userID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("user_id required"))
	}

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		slog.Error("GetUser failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.GetUserResponse{
		User: toAPIUser(user),
	}), nil
}
