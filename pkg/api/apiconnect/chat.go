package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/ridecrew/pkg/api"
)

const (
	ChatServicePostMessageProcedure  = "/ridecrew.v1.ChatService/PostMessage"
	ChatServiceListMessagesProcedure = "/ridecrew.v1.ChatService/ListMessages"
)

// ChatServiceHandler is implemented by servers of ridecrew.v1.ChatService.
type ChatServiceHandler interface {
	PostMessage(context.Context, *connect.Request[api.PostMessageRequest]) (*connect.Response[api.PostMessageResponse], error)
	ListMessages(context.Context, *connect.Request[api.ListMessagesRequest]) (*connect.Response[api.ListMessagesResponse], error)
}

// NewChatServiceHandler builds an HTTP handler from the service implementation.
func NewChatServiceHandler(svc ChatServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerDefaults(opts)
	postMessage := connect.NewUnaryHandler(ChatServicePostMessageProcedure, svc.PostMessage, opts...)
	listMessages := connect.NewUnaryHandler(ChatServiceListMessagesProcedure, svc.ListMessages, opts...)
	return "/" + ChatServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ChatServicePostMessageProcedure:
			postMessage.ServeHTTP(w, r)
		case ChatServiceListMessagesProcedure:
			listMessages.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedChatServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedChatServiceHandler struct{}

func (UnimplementedChatServiceHandler) PostMessage(context.Context, *connect.Request[api.PostMessageRequest]) (*connect.Response[api.PostMessageResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ridecrew.v1.ChatService.PostMessage is not implemented"))
}

func (UnimplementedChatServiceHandler) ListMessages(context.Context, *connect.Request[api.ListMessagesRequest]) (*connect.Response[api.ListMessagesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ridecrew.v1.ChatService.ListMessages is not implemented"))
}

// ChatServiceClient is a client for the ridecrew.v1.ChatService service.
type ChatServiceClient interface {
	PostMessage(context.Context, *connect.Request[api.PostMessageRequest]) (*connect.Response[api.PostMessageResponse], error)
	ListMessages(context.Context, *connect.Request[api.ListMessagesRequest]) (*connect.Response[api.ListMessagesResponse], error)
}

// NewChatServiceClient constructs a client for the ridecrew.v1.ChatService service.
func NewChatServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ChatServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientDefaults(opts)
	return &chatServiceClient{
		postMessage:  connect.NewClient[api.PostMessageRequest, api.PostMessageResponse](httpClient, baseURL+ChatServicePostMessageProcedure, opts...),
		listMessages: connect.NewClient[api.ListMessagesRequest, api.ListMessagesResponse](httpClient, baseURL+ChatServiceListMessagesProcedure, opts...),
	}
}

type chatServiceClient struct {
	postMessage  *connect.Client[api.PostMessageRequest, api.PostMessageResponse]
	listMessages *connect.Client[api.ListMessagesRequest, api.ListMessagesResponse]
}

func (c *chatServiceClient) PostMessage(ctx context.Context, req *connect.Request[api.PostMessageRequest]) (*connect.Response[api.PostMessageResponse], error) {
	return c.postMessage.CallUnary(ctx, req)
}

func (c *chatServiceClient) ListMessages(ctx context.Context, req *connect.Request[api.ListMessagesRequest]) (*connect.Response[api.ListMessagesResponse], error) {
	return c.listMessages.CallUnary(ctx, req)
}
