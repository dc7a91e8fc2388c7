package service

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/deppfellow/estate-api/internal/lib/job"
)

// Kind names an accepted submission. Values match the rule set names.
type Kind string

const (
	KindRegistration Kind = "registration"
	KindInquiry      Kind = "inquiry"
	KindProperty     Kind = "property"
	KindBlogPost     Kind = "blog-post"
)

var kindTasks = map[Kind]string{
	KindRegistration: job.TaskRegistration,
	KindInquiry:      job.TaskInquiry,
	KindProperty:     job.TaskProperty,
	KindBlogPost:     job.TaskBlogPost,
}

// Receipt is returned to the client once a submission is queued.
type Receipt struct {
	ID         string    `json:"id"`
	Kind       Kind      `json:"kind"`
	ResourceID string    `json:"resource_id,omitempty"`
	Queue      string    `json:"queue"`
	AcceptedAt time.Time `json:"accepted_at"`
}

type enqueuer interface {
	Enqueue(ctx context.Context, task *asynq.Task) (*asynq.TaskInfo, error)
}

// SubmissionService turns validated payloads into queued tasks.
type SubmissionService struct {
	queue enqueuer
	now   func() time.Time
	newID func() string
}

func NewSubmissionService(queue enqueuer) *SubmissionService {
	return &SubmissionService{
		queue: queue,
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.New().String() },
	}
}

// Submit queues data under kind. resourceID is set for updates of an
// existing listing or post.
func (s *SubmissionService) Submit(ctx context.Context, kind Kind, resourceID string, data map[string]string) (*Receipt, error) {
	taskType, ok := kindTasks[kind]
	if !ok {
		return nil, fmt.Errorf("unknown submission kind %q", kind)
	}

	payload := job.SubmissionPayload{
		ID:         s.newID(),
		Kind:       string(kind),
		ResourceID: resourceID,
		AcceptedAt: s.now(),
		Data:       data,
	}

	task, err := job.NewSubmissionTask(taskType, payload)
	if err != nil {
		return nil, fmt.Errorf("build %s task: %w", kind, err)
	}

	info, err := s.queue.Enqueue(ctx, task)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("submission_id", payload.ID).
		Str("kind", string(kind)).
		Str("queue", info.Queue).
		Msg("submission queued")

	return &Receipt{
		ID:         payload.ID,
		Kind:       kind,
		ResourceID: resourceID,
		Queue:      info.Queue,
		AcceptedAt: payload.AcceptedAt,
	}, nil
}

// PasswordScheme names how password_hash is derived, for the consumers
// that verify it later.
const PasswordScheme = "bcrypt-sha256"

// SubmitRegistration queues a sign-up. The password never leaves this
// process in clear text; only its hash is queued.
func (s *SubmissionService) SubmitRegistration(ctx context.Context, name, email, password string) (*Receipt, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	return s.Submit(ctx, KindRegistration, "", map[string]string{
		"name":            name,
		"email":           email,
		"password_hash":   hash,
		"password_scheme": PasswordScheme,
	})
}

// HashPassword bcrypts the base64 SHA-256 digest of password. bcrypt only
// reads 72 bytes, and the rules put no upper bound on password length.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(prehash(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches a HashPassword result.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), prehash(password)) == nil
}

func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}
