package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/estate-api/internal/lib/job"
)

type recordingQueue struct {
	tasks []*asynq.Task
	err   error
}

func (q *recordingQueue) Enqueue(_ context.Context, task *asynq.Task) (*asynq.TaskInfo, error) {
	if q.err != nil {
		return nil, q.err
	}
	q.tasks = append(q.tasks, task)
	return &asynq.TaskInfo{ID: "t", Type: task.Type(), Queue: job.QueueFor(task.Type())}, nil
}

func newTestService(q enqueuer) *SubmissionService {
	s := NewSubmissionService(q)
	s.now = func() time.Time { return time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC) }
	s.newID = func() string { return "0b7d6c3e-2f41-4c55-9a0e-6f1c2f0d9a11" }
	return s
}

func decode(t *testing.T, task *asynq.Task) job.SubmissionPayload {
	t.Helper()
	var p job.SubmissionPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	return p
}

func TestSubmit(t *testing.T) {
	q := &recordingQueue{}
	s := newTestService(q)

	receipt, err := s.Submit(context.Background(), KindProperty, "7c9e6679-7425-40de-944b-e07fc1f90ae7", map[string]string{"title": "Nice House"})
	require.NoError(t, err)

	assert.Equal(t, &Receipt{
		ID:         "0b7d6c3e-2f41-4c55-9a0e-6f1c2f0d9a11",
		Kind:       KindProperty,
		ResourceID: "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		Queue:      job.QueueDefault,
		AcceptedAt: time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC),
	}, receipt)

	require.Len(t, q.tasks, 1)
	assert.Equal(t, job.TaskProperty, q.tasks[0].Type())

	p := decode(t, q.tasks[0])
	assert.Equal(t, "property", p.Kind)
	assert.Equal(t, "Nice House", p.Data["title"])
}

func TestSubmitUnknownKind(t *testing.T) {
	s := newTestService(&recordingQueue{})

	_, err := s.Submit(context.Background(), Kind("login"), "", nil)
	assert.Error(t, err)
}

func TestSubmitQueueError(t *testing.T) {
	down := errors.New("redis down")
	s := newTestService(&recordingQueue{err: down})

	_, err := s.Submit(context.Background(), KindInquiry, "", map[string]string{})
	assert.ErrorIs(t, err, down)
}

func TestSubmitRegistrationHashesPassword(t *testing.T) {
	q := &recordingQueue{}
	s := newTestService(q)

	receipt, err := s.SubmitRegistration(context.Background(), "Jane", "jane@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, job.QueueCritical, receipt.Queue)

	p := decode(t, q.tasks[0])
	assert.NotContains(t, p.Data, "password")
	assert.NotContains(t, string(q.tasks[0].Payload()), "secret1")
	assert.Equal(t, PasswordScheme, p.Data["password_scheme"])
	assert.True(t, CheckPassword(p.Data["password_hash"], "secret1"))
	assert.False(t, CheckPassword(p.Data["password_hash"], "secret2"))
}

func TestHashPasswordLongerThanBcryptLimit(t *testing.T) {
	long := strings.Repeat("a", 73)

	hash, err := HashPassword(long)
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, long))
	assert.False(t, CheckPassword(hash, long[:72]))
}
