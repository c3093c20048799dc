package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/vidgrab-go/internal/domain"
)

func TestJobRegistry_AddAndGet(t *testing.T) {
	registry := NewJobRegistry()
	job := domain.NewDownloadJob("https://example.com/v", nil)

	registry.Add(job)

	got, err := registry.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)
	assert.Equal(t, domain.StatusQueued, got.Status)
}

func TestJobRegistry_GetUnknown(t *testing.T) {
	registry := NewJobRegistry()

	_, err := registry.Get("nope")
	assert.Error(t, err)
}

func TestJobRegistry_GetReturnsCopy(t *testing.T) {
	registry := NewJobRegistry()
	job := domain.NewDownloadJob("https://example.com/v", nil)
	registry.Add(job)

	got, err := registry.Get(job.ID)
	require.NoError(t, err)
	got.Status = domain.StatusFailed

	fresh, err := registry.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusQueued, fresh.Status)
}

func TestJobRegistry_Update(t *testing.T) {
	registry := NewJobRegistry()
	job := domain.NewDownloadJob("https://example.com/v", nil)
	registry.Add(job)

	registry.Update(job.ID, func(j *domain.DownloadJob) { j.MarkProcessing() })

	got, err := registry.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusProcessing, got.Status)
}

func TestJobRegistry_ListNewestFirst(t *testing.T) {
	registry := NewJobRegistry()

	older := domain.NewDownloadJob("https://example.com/a", nil)
	older.CreatedAt = time.Now().Add(-time.Minute)
	newer := domain.NewDownloadJob("https://example.com/b", nil)

	registry.Add(older)
	registry.Add(newer)

	jobs := registry.List()
	require.Len(t, jobs, 2)
	assert.Equal(t, newer.ID, jobs[0].ID)
	assert.Equal(t, older.ID, jobs[1].ID)
}
