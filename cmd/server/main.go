package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/ridecrew/internal/auth"
	"github.com/mmynk/ridecrew/internal/config"
	"github.com/mmynk/ridecrew/internal/destination"
	"github.com/mmynk/ridecrew/internal/metrics"
	"github.com/mmynk/ridecrew/internal/middleware"
	"github.com/mmynk/ridecrew/internal/seed"
	"github.com/mmynk/ridecrew/internal/service"
	"github.com/mmynk/ridecrew/internal/storage/sqlite"
	"github.com/mmynk/ridecrew/pkg/api/apiconnect"
	"github.com/mmynk/ridecrew/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Setup()

	if cfg.UsingDevSecret() {
		slog.Warn("JWT_SECRET not set, using development secret")
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	if cfg.Seed {
		seeded, err := seed.Load(context.Background(), store, time.Now())
		if err != nil {
			slog.Error("Failed to seed storage", "error", err)
			os.Exit(1)
		}
		if seeded {
			slog.Info("Seed data loaded")
		}
	}

	m := metrics.New()
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	// Logging runs outside auth so rejected calls are logged and counted too.
	logRPC := connect.WithInterceptors(middleware.LoggingInterceptor(m))
	requireAuth := connect.WithInterceptors(middleware.RequireAuth(jwtManager))
	optionalAuth := connect.WithInterceptors(middleware.OptionalAuth(jwtManager))

	mux := http.NewServeMux()

	userPath, userHandler := apiconnect.NewUserServiceHandler(service.NewUserService(store), logRPC)
	mux.Handle(userPath, userHandler)

	authSvc := service.NewAuthService(auth.NewRosterAuthenticator(store), jwtManager, store, slog.Default())
	authPath, authHandler := apiconnect.NewAuthServiceHandler(authSvc, logRPC, optionalAuth)
	mux.Handle(authPath, authHandler)

	rideSvc := service.NewRideService(store, destination.MapSearchResolver{}, m, cfg.LookupTimeout)
	ridePath, rideHandler := apiconnect.NewRideServiceHandler(rideSvc, logRPC, requireAuth)
	mux.Handle(ridePath, rideHandler)

	chatPath, chatHandler := apiconnect.NewChatServiceHandler(service.NewChatService(store, m), logRPC, requireAuth)
	mux.Handle(chatPath, chatHandler)

	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	handler := h2c.NewHandler(loggingMiddleware(corsMiddleware(mux)), &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Connect server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}

// loggingMiddleware logs all incoming HTTP requests at debug level. RPC
// outcomes are logged by the Connect interceptor.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
