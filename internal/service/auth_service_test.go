package service

import (
	"context"
	"net/http"
	"testing"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/ridecrew/pkg/api"
	"github.com/mmynk/ridecrew/pkg/api/apiconnect"
)

func TestUserService(t *testing.T) {
	env := setupTestServer(t)
	client := apiconnect.NewUserServiceClient(http.DefaultClient, env.url)
	ctx := context.Background()

	t.Run("ListUsers returns the roster", func(t *testing.T) {
		resp, err := client.ListUsers(ctx, connect.NewRequest(&emptypb.Empty{}))
		if err != nil {
			t.Fatalf("ListUsers failed: %v", err)
		}
		if len(resp.Msg.Users) != 5 {
			t.Errorf("expected 5 users, got %d", len(resp.Msg.Users))
		}
	})

	t.Run("GetUser", func(t *testing.T) {
		resp, err := client.GetUser(ctx, connect.NewRequest(&api.GetUserRequest{UserId: "u1"}))
		if err != nil {
			t.Fatalf("GetUser failed: %v", err)
		}
		if resp.Msg.User.Name != "Khalid Al-Harbi" {
			t.Errorf("unexpected user: %+v", resp.Msg.User)
		}
		if resp.Msg.User.EmergencyContact == nil {
			t.Error("expected emergency contact")
		}
	})

	t.Run("GetUser not found", func(t *testing.T) {
		_, err := client.GetUser(ctx, connect.NewRequest(&api.GetUserRequest{UserId: "nobody"}))
		assertCode(t, err, connect.CodeNotFound)
	})

	t.Run("GetUser requires id", func(t *testing.T) {
		_, err := client.GetUser(ctx, connect.NewRequest(&api.GetUserRequest{}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})
}

func TestAuthService(t *testing.T) {
	env := setupTestServer(t)
	client := apiconnect.NewAuthServiceClient(http.DefaultClient, env.url)
	ctx := context.Background()

	t.Run("Login issues a usable token", func(t *testing.T) {
		resp, err := client.Login(ctx, connect.NewRequest(&api.LoginRequest{UserId: "u3"}))
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if resp.Msg.Token == "" {
			t.Fatal("expected token")
		}

		claims, err := env.jwt.Validate(resp.Msg.Token)
		if err != nil {
			t.Fatalf("token did not validate: %v", err)
		}
		if claims.UserID() != "u3" {
			t.Errorf("claims user = %q, want u3", claims.UserID())
		}

		req := connect.NewRequest(&emptypb.Empty{})
		req.Header().Set("Authorization", "Bearer "+resp.Msg.Token)
		me, err := client.GetCurrentUser(ctx, req)
		if err != nil {
			t.Fatalf("GetCurrentUser failed: %v", err)
		}
		if me.Msg.User.Id != "u3" || me.Msg.User.Name != "Omar Al-Zahrani" {
			t.Errorf("unexpected current user: %+v", me.Msg.User)
		}
	})

	t.Run("Login unknown user", func(t *testing.T) {
		_, err := client.Login(ctx, connect.NewRequest(&api.LoginRequest{UserId: "u99"}))
		assertCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("Login requires user id", func(t *testing.T) {
		_, err := client.Login(ctx, connect.NewRequest(&api.LoginRequest{}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("GetCurrentUser without token", func(t *testing.T) {
		_, err := client.GetCurrentUser(ctx, connect.NewRequest(&emptypb.Empty{}))
		assertCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("ride calls without token", func(t *testing.T) {
		rides := apiconnect.NewRideServiceClient(http.DefaultClient, env.url)
		_, err := rides.ListDiscoverableRides(ctx, connect.NewRequest(&emptypb.Empty{}))
		assertCode(t, err, connect.CodeUnauthenticated)
	})
}
