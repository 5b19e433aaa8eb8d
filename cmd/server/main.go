package main

import (
	"context"
	"errors"
	"flag"
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

	"github.com/adarkz/YellowCarGame-chef/internal/auth"
	"github.com/adarkz/YellowCarGame-chef/internal/blob"
	"github.com/adarkz/YellowCarGame-chef/internal/blob/localfs"
	"github.com/adarkz/YellowCarGame-chef/internal/config"
	"github.com/adarkz/YellowCarGame-chef/internal/game"
	"github.com/adarkz/YellowCarGame-chef/internal/metrics"
	"github.com/adarkz/YellowCarGame-chef/internal/middleware"
	"github.com/adarkz/YellowCarGame-chef/internal/service"
	"github.com/adarkz/YellowCarGame-chef/internal/storage"
	"github.com/adarkz/YellowCarGame-chef/internal/storage/postgres"
	"github.com/adarkz/YellowCarGame-chef/internal/storage/sqlite"
	"github.com/adarkz/YellowCarGame-chef/pkg/api/yellowcarv1/yellowcarv1connect"
	"github.com/adarkz/YellowCarGame-chef/pkg/logging"
)

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	logger := logging.Setup(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	blobs, err := localfs.New(cfg.BlobDir)
	if err != nil {
		return err
	}
	slog.Info("Blob store initialized", "path", cfg.BlobDir)

	secret := cfg.JWTSecret
	if secret == "" {
		secret, err = auth.GenerateSecret()
		if err != nil {
			return err
		}
		slog.Warn("YELLOWCAR_JWT_SECRET not set, using an ephemeral secret; sessions and upload URLs will not survive a restart")
	}

	m := metrics.New()
	mux := http.NewServeMux()

	uploads := blob.NewUploads(blobs, blob.Config{
		Secret:   secret,
		TTL:      cfg.UploadTTL,
		BaseURL:  cfg.PublicURL,
		MaxBytes: cfg.MaxUploadBytes,
	}, m)
	uploads.Register(mux)

	jwtManager := auth.NewJWTManager(secret, cfg.SessionTTL)
	authenticator := auth.NewPasswordAuthenticator(store)
	g := game.New(store, uploads, game.WithObserver(m))

	// OptionalAuth runs first so the logging and metrics interceptors see
	// the resolved user.
	interceptors := connect.WithInterceptors(
		middleware.OptionalAuth(jwtManager),
		middleware.LoggingInterceptor(),
		m.Interceptor(),
	)
	mux.Handle(yellowcarv1connect.NewAuthServiceHandler(
		service.NewAuthService(authenticator, jwtManager, logger), interceptors))
	mux.Handle(yellowcarv1connect.NewCarServiceHandler(
		service.NewCarService(g, uploads), interceptors))
	mux.Handle(yellowcarv1connect.NewFriendServiceHandler(
		service.NewFriendService(g), interceptors))

	if cfg.MetricsEnabled {
		mux.Handle("GET /metrics", m.Handler())
	}

	static, err := staticHandler(cfg.StaticDir)
	if err != nil {
		return err
	}
	mux.Handle("/", static)

	// h2c serves HTTP/2 without TLS, which Connect clients may use.
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2c.NewHandler(loggingMiddleware(corsMiddleware(mux)), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", cfg.Addr, "url", cfg.PublicURL)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}

func openStore(cfg config.Config) (storage.Store, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		store, err := postgres.New(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		slog.Info("Storage initialized", "driver", cfg.DBDriver)
		return store, nil
	default:
		store, err := sqlite.New(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		slog.Info("Storage initialized", "driver", cfg.DBDriver, "database", cfg.DBPath)
		return store, nil
	}
}
