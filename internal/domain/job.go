package domain

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the current status of a download job.
type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusProcessing JobStatus = "processing"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
)

// DownloadJob tracks one invocation of the download driver. Jobs live only in
// memory for the lifetime of the process; there is no persistence.
//
// Cancellation of a running job is not supported: the only way to stop the
// underlying yt-dlp process is to stop the whole application.
type DownloadJob struct {
	ID           string            `json:"id"`
	URL          string            `json:"url"`
	Args         []string          `json:"args"`
	Status       JobStatus         `json:"status"`
	Progress     *ProgressSnapshot `json:"progress,omitempty"`
	ErrorMessage string            `json:"error_message,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	StartedAt    *time.Time        `json:"started_at,omitempty"`
	CompletedAt  *time.Time        `json:"completed_at,omitempty"`
}

// NewDownloadJob creates a queued download job.
func NewDownloadJob(url string, args []string) *DownloadJob {
	return &DownloadJob{
		ID:        uuid.New().String(),
		URL:       url,
		Args:      args,
		Status:    StatusQueued,
		CreatedAt: time.Now(),
	}
}

// MarkProcessing marks the job as processing.
func (j *DownloadJob) MarkProcessing() {
	j.Status = StatusProcessing
	now := time.Now()
	j.StartedAt = &now
}

// MarkCompleted marks the job as completed.
func (j *DownloadJob) MarkCompleted() {
	j.Status = StatusCompleted
	now := time.Now()
	j.CompletedAt = &now
}

// MarkFailed marks the job as failed.
func (j *DownloadJob) MarkFailed(err error) {
	j.Status = StatusFailed
	j.ErrorMessage = err.Error()
	now := time.Now()
	j.CompletedAt = &now
}

// IsTerminal reports whether the job reached a final state.
func (j *DownloadJob) IsTerminal() bool {
	return j.Status == StatusCompleted || j.Status == StatusFailed
}
