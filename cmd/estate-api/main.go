package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/estate-api/internal/config"
	"github.com/deppfellow/estate-api/internal/handler"
	"github.com/deppfellow/estate-api/internal/logger"
	"github.com/deppfellow/estate-api/internal/router"
	"github.com/deppfellow/estate-api/internal/server"
	"github.com/deppfellow/estate-api/internal/service"
)

const shutdownTimeout = 30 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		// Config may not be loaded yet, so this logger is built by hand.
		bootstrap := zerolog.New(os.Stderr).With().Timestamp().Str("service", config.ServiceName).Logger()
		bootstrap.Fatal().Err(err).Msg("estate-api stopped")
	}
}

// run serves until ctx is cancelled, then shuts down gracefully.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	services := service.NewServices(srv)
	handlers := handler.NewHandlers(srv, services)
	srv.SetupHTTPServer(router.NewRouter(srv, handlers))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = srv.Shutdown(context.Background())
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server exited properly")
	return nil
}
