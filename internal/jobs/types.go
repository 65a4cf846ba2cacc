// Package jobs defines the asynchronous batch-import job model and the
// queue abstractions the worker runs on.
package jobs

import (
	"context"
	"time"
)

// JobType distinguishes job kinds on the queue.
type JobType string

const (
	// JobTypeParseBatch imports one SMS backup dump.
	JobTypeParseBatch JobType = "parse_batch"
)

// JobStatus is the lifecycle state of a job.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusRetrying  JobStatus = "retrying"
)

// ParseBatchJob imports one backup dump: a local file path or a
// gs://bucket/object URI.
type ParseBatchJob struct {
	// JobID is the unique identifier, assigned on publish when blank.
	JobID string `json:"job_id"`

	// Source locates the dump to import.
	Source string `json:"source"`

	Status JobStatus `json:"status"`

	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// Error holds the last failure message.
	Error string `json:"error,omitempty"`

	RetryCount int `json:"retry_count"`
	MaxRetries int `json:"max_retries"`

	// Parsed / Skipped / Malformed are filled in by the worker once the
	// import completes, for operator visibility.
	Parsed    int `json:"parsed"`
	Skipped   int `json:"skipped"`
	Malformed int `json:"malformed"`
}

// Job is the queue-facing view of any job type.
type Job interface {
	GetID() string
	GetType() JobType
	GetStatus() JobStatus
}

func (j *ParseBatchJob) GetID() string        { return j.JobID }
func (j *ParseBatchJob) GetType() JobType     { return JobTypeParseBatch }
func (j *ParseBatchJob) GetStatus() JobStatus { return j.Status }

// Publisher enqueues jobs. The in-memory queue is the only current
// implementation; the interface leaves room for Cloud Tasks or Pub/Sub.
type Publisher interface {
	PublishParseBatch(ctx context.Context, job *ParseBatchJob) error
	Close() error
}

// Consumer drains the queue, invoking the handler per job.
type Consumer interface {
	Start(ctx context.Context, handler JobHandler) error

	// Stop waits for in-flight jobs before returning.
	Stop(ctx context.Context) error
}

// JobHandler processes one job. A returned error triggers retry until
// MaxRetries is exhausted.
type JobHandler func(ctx context.Context, job Job) error

// JobStore tracks job state for status queries.
type JobStore interface {
	SaveJob(ctx context.Context, job *ParseBatchJob) error
	GetJob(ctx context.Context, jobID string) (*ParseBatchJob, error)
	ListJobs(ctx context.Context, filter JobFilter) ([]*ParseBatchJob, error)
	UpdateJobStatus(ctx context.Context, jobID string, status JobStatus, errorMsg string) error
}

// JobFilter narrows ListJobs results.
type JobFilter struct {
	// Source filters by dump location.
	Source string

	Status JobStatus

	Limit  int
	Offset int
}
