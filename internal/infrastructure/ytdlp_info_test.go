package infrastructure

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/vidgrab-go/internal/domain"
	"go.uber.org/zap/zaptest"
)

const sampleInfoJSON = `{"id":"dQw4w9WgXcQ","title":"Test Video","duration":212.5,"thumbnail":"https://i.ytimg.com/vi/dQw4w9WgXcQ/hq720.jpg","formats":[` +
	`{"format_id":"140","ext":"m4a","vcodec":"none","acodec":"mp4a.40.2","filesize":3400000},` +
	`{"format_id":"137","ext":"mp4","height":1080,"width":1920,"vcodec":"avc1.640028","acodec":"none"},` +
	`{"format_id":"248","ext":"webm","height":1080,"width":1920,"vcodec":"vp9","acodec":"none","filesize":52000000},` +
	`{"format_id":"22","ext":"mp4","height":720,"width":1280,"vcodec":"avc1.64001F","acodec":"mp4a.40.2","filesize":41000000}` +
	`]}`

// fakeYTDLP writes an executable shell script standing in for yt-dlp.
func fakeYTDLP(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script mock")
	}
	path := filepath.Join(t.TempDir(), "yt-dlp")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755))
	return path
}

func newTestRunner(t *testing.T, binary string) *YTDLPRunner {
	t.Helper()
	return NewYTDLPRunner(&domain.YTDLPConfig{
		Binary:             binary,
		Impersonate:        "chrome",
		UserAgent:          "test-agent",
		CookiesFromBrowser: "chrome",
	}, zaptest.NewLogger(t))
}

func TestFetchVideoInfo_Success(t *testing.T) {
	binary := fakeYTDLP(t, `cat <<'EOF'
`+sampleInfoJSON+`
EOF`)
	runner := newTestRunner(t, binary)

	info, err := runner.FetchVideoInfo("https://youtube.com/watch?v=dQw4w9WgXcQ")

	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", info.ID)
	assert.Equal(t, "Test Video", info.Title)
	assert.Equal(t, 212.5, info.Duration)
	assert.Len(t, info.Formats, 4)

	// 1080 deduped with the filesize-bearing format as representative
	require.Len(t, info.Resolutions, 2)
	assert.Equal(t, domain.ResolutionOption{Height: 1080, Label: "1080p", FormatID: "248"}, info.Resolutions[0])
	assert.Equal(t, domain.ResolutionOption{Height: 720, Label: "720p", FormatID: "22"}, info.Resolutions[1])
}

func TestFetchVideoInfo_SkipsGarbageLines(t *testing.T) {
	binary := fakeYTDLP(t, `echo "WARNING: something"
echo '`+sampleInfoJSON+`'`)
	runner := newTestRunner(t, binary)

	info, err := runner.FetchVideoInfo("https://youtube.com/watch?v=dQw4w9WgXcQ")

	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", info.ID)
}

func TestFetchVideoInfo_RateLimited(t *testing.T) {
	binary := fakeYTDLP(t, `echo "ERROR: HTTP Error 429: Too Many Requests" >&2
exit 1`)
	runner := newTestRunner(t, binary)

	_, err := runner.FetchVideoInfo("https://youtube.com/watch?v=abc")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProcessExecution)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "request interval")
}

func TestFetchVideoInfo_EmptyOutput(t *testing.T) {
	binary := fakeYTDLP(t, `exit 0`)
	runner := newTestRunner(t, binary)

	_, err := runner.FetchVideoInfo("https://youtube.com/watch?v=abc")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParseFailure)
}

func TestFetchVideoInfo_BinaryMissing(t *testing.T) {
	runner := newTestRunner(t, filepath.Join(t.TempDir(), "missing"))

	_, err := runner.FetchVideoInfo("https://youtube.com/watch?v=abc")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProcessLaunch)
}

func TestParseVideoInfo_MissingFieldsDefault(t *testing.T) {
	info, err := parseVideoInfo(`{"formats":[{"format_id":"22","height":720,"vcodec":"avc1"}]}` + "\n")

	require.NoError(t, err)
	assert.Equal(t, "", info.ID)
	assert.Equal(t, "", info.Title)
	assert.Equal(t, 0.0, info.Duration)
	assert.Equal(t, "", info.Thumbnail)
	require.Len(t, info.Formats, 1)
	assert.Equal(t, "", info.Formats[0].Ext)
	assert.Nil(t, info.Formats[0].Filesize)
}

func TestParseVideoInfo_NoValidRecord(t *testing.T) {
	_, err := parseVideoInfo("not json\nstill not json\n")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParseFailure)
}
