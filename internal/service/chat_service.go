package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/ridecrew/internal/chatlog"
	"github.com/mmynk/ridecrew/internal/metrics"
	"github.com/mmynk/ridecrew/internal/storage"
	"github.com/mmynk/ridecrew/pkg/api"
	"github.com/mmynk/ridecrew/pkg/api/apiconnect"
)

// ChatService implements the Connect ChatService: the per-ride group chat.
type ChatService struct {
	apiconnect.UnimplementedChatServiceHandler
	store   storage.Store
	metrics *metrics.Metrics
	now     func() time.Time

	// mu keeps read-last-timestamp and append atomic.
	mu sync.Mutex
}

// NewChatService creates a new ChatService with the given storage backend.
func NewChatService(store storage.Store, m *metrics.Metrics) *ChatService {
	return &ChatService{store: store, metrics: m, now: time.Now}
}

// PostMessage appends the acting user's message to a ride's chat.
func (s *ChatService) PostMessage(ctx context.Context, req *connect.Request[api.PostMessageRequest]) (*connect.Response[api.PostMessageResponse], error) {
	actor, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("PostMessage request received", "ride_id", req.Msg.RideId, "sender_id", actor)

	if req.Msg.RideId == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("ride_id required"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ride, err := s.store.GetRide(ctx, req.Msg.RideId)
	if err != nil {
		slog.Error("PostMessage failed", "ride_id", req.Msg.RideId, "error", err)
		return nil, toConnectError(err)
	}
	if err := chatlog.CanPost(*ride, actor); err != nil {
		slog.Warn("PostMessage rejected", "ride_id", ride.ID, "sender_id", actor, "error", err)
		return nil, toConnectError(err)
	}

	last, err := s.store.LastMessageTimestamp(ctx, ride.ID)
	if err != nil {
		slog.Error("PostMessage failed - could not read chat log", "ride_id", ride.ID, "error", err)
		return nil, toConnectError(err)
	}

	msg, err := chatlog.NewMessage(ride.ID, actor, req.Msg.Text, last, s.now())
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := s.store.AppendMessage(ctx, &msg); err != nil {
		slog.Error("PostMessage failed", "ride_id", ride.ID, "error", err)
		return nil, toConnectError(err)
	}
	s.metrics.MessagePosted()

	slog.Info("Message posted", "message_id", msg.ID, "ride_id", ride.ID)

	return connect.NewResponse(&api.PostMessageResponse{
		Message: toAPIMessage(msg, s.senderName(ctx, actor)),
	}), nil
}

// ListMessages returns a ride's chat, oldest first.
func (s *ChatService) ListMessages(ctx context.Context, req *connect.Request[api.ListMessagesRequest]) (*connect.Response[api.ListMessagesResponse], error) {
	if _, err := actingUser(ctx); err != nil {
		return nil, err
	}
	rideID := req.Msg.GetRideId()
	slog.Info("ListMessages request received", "ride_id", rideID)

	if rideID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("ride_id required"))
	}

	if _, err := s.store.GetRide(ctx, rideID); err != nil {
		slog.Error("ListMessages failed", "ride_id", rideID, "error", err)
		return nil, toConnectError(err)
	}

	messages, err := s.store.ListMessages(ctx, rideID)
	if err != nil {
		slog.Error("ListMessages failed", "ride_id", rideID, "error", err)
		return nil, toConnectError(err)
	}

	users, err := s.store.ListUsers(ctx)
	if err != nil {
		slog.Error("ListMessages failed - could not list users", "error", err)
		return nil, toConnectError(err)
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	ordered := chatlog.ForRide(messages, rideID)
	out := make([]*api.Message, len(ordered))
	for i, m := range ordered {
		out[i] = toAPIMessage(m, names[m.SenderID])
	}

	slog.Info("ListMessages successful", "ride_id", rideID, "count", len(out))

	return connect.NewResponse(&api.ListMessagesResponse{
		Messages: out,
	}), nil
}

func (s *ChatService) senderName(ctx context.Context, userID string) string {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return ""
	}
	return user.Name
}
