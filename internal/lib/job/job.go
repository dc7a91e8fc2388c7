// Package job hands validated submissions to the back office through an
// Asynq queue stored in Redis. The workers consuming the queue live outside
// this service.
package job

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deppfellow/estate-api/internal/config"
)

// Enqueuer is the part of *asynq.Client the service uses.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// JobService enqueues submission tasks.
type JobService struct {
	client Enqueuer
	logger *zerolog.Logger
}

// NewJobService creates a JobService backed by the Redis address in cfg.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: cfg.Redis.Address,
	})
	return NewJobServiceWithClient(logger, client)
}

// NewJobServiceWithClient wraps an existing Enqueuer.
func NewJobServiceWithClient(logger *zerolog.Logger, client Enqueuer) *JobService {
	return &JobService{
		client: client,
		logger: logger,
	}
}

// Enqueue pushes task and returns the stored task info.
func (j *JobService) Enqueue(ctx context.Context, task *asynq.Task) (*asynq.TaskInfo, error) {
	info, err := j.client.EnqueueContext(ctx, task)
	if err != nil {
		j.logger.Error().
			Err(err).
			Str("type", task.Type()).
			Msg("failed to enqueue task")
		return nil, errors.Wrapf(err, "enqueue %s", task.Type())
	}

	j.logger.Debug().
		Str("type", task.Type()).
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Msg("task enqueued")

	return info, nil
}

// Stop closes the Redis connections used for enqueueing.
func (j *JobService) Stop() {
	j.logger.Info().Msg("closing job client")
	if err := j.client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}
