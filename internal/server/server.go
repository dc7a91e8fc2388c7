// Package server holds the application container: configuration, loggers,
// the Redis client, the submission queue and the HTTP server, with their
// start and shutdown logic.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/deppfellow/estate-api/internal/config"
	"github.com/deppfellow/estate-api/internal/lib/job"
	loggerPkg "github.com/deppfellow/estate-api/internal/logger"
)

// Server holds the resources shared by middleware, handlers and services.
// It is not the HTTP server itself; that one is built by SetupHTTPServer.
type Server struct {
	Config *config.Config
	Logger *zerolog.Logger

	// LoggerService holds the optional New Relic application.
	LoggerService *loggerPkg.LoggerService

	// Redis backs the health check. The job client keeps its own pool.
	Redis *redis.Client

	// Job enqueues validated submissions.
	Job *job.JobService

	httpServer *http.Server
}

// New builds the Redis client and the job client.
//
// Redis being unreachable at startup is logged, not fatal: the validation
// routes still answer and submissions fail until Redis comes back.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Address,
	})

	if loggerService.GetApplication() != nil {
		redisClient.AddHook(nrredis.NewHook(redisClient.Options()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error().Err(err).Msg("failed to connect to Redis, continuing without it")
	}

	return &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		Redis:         redisClient,
		Job:           job.NewJobService(logger, cfg),
	}, nil
}

// SetupHTTPServer configures the net/http server around handler.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start blocks serving HTTP until the server is shut down.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests until ctx expires, then closes the job
// client, Redis and the New Relic agent.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	if s.Job != nil {
		s.Job.Stop()
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			return fmt.Errorf("failed to close redis client: %w", err)
		}
	}

	if s.LoggerService != nil {
		s.LoggerService.Shutdown()
	}

	return nil
}
