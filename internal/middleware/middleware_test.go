package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/ridecrew/internal/auth"
	"github.com/mmynk/ridecrew/internal/metrics"
	"github.com/mmynk/ridecrew/internal/models"
)

// captureUser is a terminal UnaryFunc recording the acting user it saw.
func captureUser(seen *string) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		*seen = GetUserID(ctx)
		return connect.NewResponse(&emptypb.Empty{}), nil
	}
}

func requestWithAuth(header string) *connect.Request[emptypb.Empty] {
	req := connect.NewRequest(&emptypb.Empty{})
	if header != "" {
		req.Header().Set("Authorization", header)
	}
	return req
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("secret", time.Hour)
	token, err := jwtManager.Generate(&models.User{ID: "u1", Name: "Khalid"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	tests := []struct {
		name     string
		header   string
		wantCode connect.Code
		wantUser string
	}{
		{"valid token", "Bearer " + token, 0, "u1"},
		{"missing header", "", connect.CodeUnauthenticated, ""},
		{"wrong scheme", "Basic " + token, connect.CodeUnauthenticated, ""},
		{"garbage token", "Bearer not-a-jwt", connect.CodeUnauthenticated, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			_, err := RequireAuth(jwtManager)(captureUser(&seen))(context.Background(), requestWithAuth(tt.header))
			if tt.wantCode == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			} else if connect.CodeOf(err) != tt.wantCode {
				t.Fatalf("code = %v, want %v", connect.CodeOf(err), tt.wantCode)
			}
			if seen != tt.wantUser {
				t.Errorf("acting user = %q, want %q", seen, tt.wantUser)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("secret", time.Hour)
	token, _ := jwtManager.Generate(&models.User{ID: "u2", Name: "Sara"})

	var seen string
	if _, err := OptionalAuth(jwtManager)(captureUser(&seen))(context.Background(), requestWithAuth("Bearer "+token)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != "u2" {
		t.Errorf("acting user = %q, want u2", seen)
	}

	seen = "unset"
	if _, err := OptionalAuth(jwtManager)(captureUser(&seen))(context.Background(), requestWithAuth("Bearer bogus")); err != nil {
		t.Fatalf("invalid token should not fail the call: %v", err)
	}
	if seen != "" {
		t.Errorf("acting user = %q, want empty", seen)
	}
}

func TestWithUser(t *testing.T) {
	ctx := WithUser(context.Background(), "u3", "Omar")
	if GetUserID(ctx) != "u3" || GetName(ctx) != "Omar" {
		t.Errorf("got %q/%q", GetUserID(ctx), GetName(ctx))
	}
	if GetUserID(context.Background()) != "" {
		t.Error("expected empty user for bare context")
	}
}

func TestLoggingInterceptor_RecordsOutcome(t *testing.T) {
	m := metrics.New()
	failing := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("ride missing"))
	}

	_, err := LoggingInterceptor(m)(failing)(context.Background(), connect.NewRequest(&emptypb.Empty{}))
	if connect.CodeOf(err) != connect.CodeNotFound {
		t.Fatalf("error not passed through: %v", err)
	}

	n, err := testutil.GatherAndCount(m.Registry(), "ridecrew_rpc_requests_total")
	if err != nil {
		t.Fatalf("failed to gather: %v", err)
	}
	if n != 1 {
		t.Errorf("rpc series = %d, want 1", n)
	}

	// A nil Metrics only logs.
	if _, err := LoggingInterceptor(nil)(failing)(context.Background(), connect.NewRequest(&emptypb.Empty{})); err == nil {
		t.Error("expected error")
	}
}

func TestLoggingInterceptor_LogsAuthenticatedUser(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	jwtManager := auth.NewJWTManager("secret", time.Hour)
	token, err := jwtManager.Generate(&models.User{ID: "u1", Name: "Khalid"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var seen string
	chain := LoggingInterceptor(nil)(RequireAuth(jwtManager)(captureUser(&seen)))
	if _, err := chain(context.Background(), requestWithAuth("Bearer "+token)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != "u1" {
		t.Errorf("acting user = %q, want u1", seen)
	}
	if !strings.Contains(buf.String(), "user_id=u1") {
		t.Errorf("log line missing user_id=u1: %s", buf.String())
	}

	buf.Reset()
	if _, err := chain(context.Background(), requestWithAuth("")); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(buf.String(), "user_id=\"\"") {
		t.Errorf("rejected call should log an empty user_id: %s", buf.String())
	}
}
