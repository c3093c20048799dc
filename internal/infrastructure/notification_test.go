package infrastructure

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/vidgrab-go/internal/domain"
	"go.uber.org/zap/zaptest"
)

func TestFailureMessage_IncludesError(t *testing.T) {
	msg := failureMessage("https://youtube.com/watch?v=abc", errors.New("yt-dlp exited with failure"))

	assert.Contains(t, msg, "https://youtube.com/watch?v=abc")
	assert.Contains(t, msg, "yt-dlp exited with failure")
}

func TestFailureMessage_TruncatesLongError(t *testing.T) {
	long := errors.New(strings.Repeat("x", 200))

	msg := failureMessage("https://example.com/v", long)

	assert.Contains(t, msg, "...")
	assert.Less(t, len(msg), 140)
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "abcde...", truncateString("abcdefgh", 5))
}

func TestNotificationService_DisabledIsNoop(t *testing.T) {
	service := NewNotificationService(&domain.NotificationConfig{Enabled: false}, zaptest.NewLogger(t))

	require.NoError(t, service.Send("Title", "message"))
}

func TestNotificationService_UnknownMethod(t *testing.T) {
	service := NewNotificationService(&domain.NotificationConfig{
		Enabled: true,
		Method:  "carrier-pigeon",
	}, zaptest.NewLogger(t))

	require.NoError(t, service.Send("Title", "message"))
}
