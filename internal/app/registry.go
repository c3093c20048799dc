package app

import (
	"fmt"
	"sort"
	"sync"

	"github.com/yourusername/vidgrab-go/internal/domain"
)

// JobRegistry is an in-memory record of download jobs for the lifetime of the
// process. Nothing is persisted; a restart forgets all history.
type JobRegistry struct {
	mu   sync.RWMutex
	jobs map[string]*domain.DownloadJob
}

// NewJobRegistry creates an empty registry.
func NewJobRegistry() *JobRegistry {
	return &JobRegistry{
		jobs: make(map[string]*domain.DownloadJob),
	}
}

// Add registers a job.
func (r *JobRegistry) Add(job *domain.DownloadJob) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = job
}

// Get returns a copy of the job with the given id.
func (r *JobRegistry) Get(id string) (*domain.DownloadJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job not found: %s", id)
	}
	snapshot := *job
	return &snapshot, nil
}

// List returns copies of all jobs, newest first.
func (r *JobRegistry) List() []*domain.DownloadJob {
	r.mu.RLock()
	defer r.mu.RUnlock()

	jobs := make([]*domain.DownloadJob, 0, len(r.jobs))
	for _, job := range r.jobs {
		snapshot := *job
		jobs = append(jobs, &snapshot)
	}

	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})

	return jobs
}

// Update applies fn to the job with the given id under the registry lock.
func (r *JobRegistry) Update(id string, fn func(*domain.DownloadJob)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job, ok := r.jobs[id]; ok {
		fn(job)
	}
}
