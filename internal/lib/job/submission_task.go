package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

// Task types, one per accepted submission kind.
const (
	TaskRegistration = "submission:registration"
	TaskInquiry      = "submission:inquiry"
	TaskProperty     = "submission:property"
	TaskBlogPost     = "submission:blog-post"
)

var taskQueues = map[string]string{
	TaskRegistration: QueueCritical,
	TaskInquiry:      QueueCritical,
	TaskProperty:     QueueDefault,
	TaskBlogPost:     QueueDefault,
}

// SubmissionPayload is the JSON stored in Redis for every submission task.
type SubmissionPayload struct {
	ID         string            `json:"id"`
	Kind       string            `json:"kind"`
	ResourceID string            `json:"resource_id,omitempty"`
	AcceptedAt time.Time         `json:"accepted_at"`
	Data       map[string]string `json:"data"`
}

// QueueFor returns the queue a task type is routed to.
func QueueFor(taskType string) string {
	if q, ok := taskQueues[taskType]; ok {
		return q
	}
	return QueueDefault
}

// NewSubmissionTask builds the task for a validated submission. The payload
// ID doubles as the Asynq task ID, so re-enqueueing the same submission is
// rejected by Asynq as a duplicate.
func NewSubmissionTask(taskType string, p SubmissionPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		taskType,
		payload,
		asynq.TaskID(p.ID),
		asynq.MaxRetry(3),
		asynq.Queue(QueueFor(taskType)),
		asynq.Timeout(30*time.Second),
	), nil
}
