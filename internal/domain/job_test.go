package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDownloadJob(t *testing.T) {
	job := NewDownloadJob("https://example.com/watch?v=abc", []string{"-f", "best"})

	require.NotEmpty(t, job.ID)
	assert.Equal(t, StatusQueued, job.Status)
	assert.Equal(t, "https://example.com/watch?v=abc", job.URL)
	assert.Equal(t, []string{"-f", "best"}, job.Args)
	assert.False(t, job.CreatedAt.IsZero())
	assert.Nil(t, job.StartedAt)
	assert.Nil(t, job.CompletedAt)
	assert.False(t, job.IsTerminal())
}

func TestDownloadJob_Lifecycle(t *testing.T) {
	job := NewDownloadJob("https://example.com/v", nil)

	job.MarkProcessing()
	assert.Equal(t, StatusProcessing, job.Status)
	require.NotNil(t, job.StartedAt)
	assert.False(t, job.IsTerminal())

	job.MarkCompleted()
	assert.Equal(t, StatusCompleted, job.Status)
	require.NotNil(t, job.CompletedAt)
	assert.True(t, job.IsTerminal())
}

func TestDownloadJob_MarkFailed(t *testing.T) {
	job := NewDownloadJob("https://example.com/v", nil)

	job.MarkProcessing()
	job.MarkFailed(errors.New("process exited with failure"))

	assert.Equal(t, StatusFailed, job.Status)
	assert.Equal(t, "process exited with failure", job.ErrorMessage)
	require.NotNil(t, job.CompletedAt)
	assert.True(t, job.IsTerminal())
}

func TestNewDownloadJob_UniqueIDs(t *testing.T) {
	a := NewDownloadJob("https://example.com/a", nil)
	b := NewDownloadJob("https://example.com/b", nil)
	assert.NotEqual(t, a.ID, b.ID)
}
