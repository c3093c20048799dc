package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func i64Ptr(i int64) *int64   { return &i }

func TestExtractAvailableResolutions_DedupedAndSorted(t *testing.T) {
	formats := []VideoFormat{
		{FormatID: "18", Height: i64Ptr(360), Vcodec: strPtr("avc1"), Filesize: i64Ptr(1000)},
		{FormatID: "22", Height: i64Ptr(720), Vcodec: strPtr("avc1")},
		{FormatID: "137", Height: i64Ptr(1080), Vcodec: strPtr("avc1")},
		{FormatID: "248", Height: i64Ptr(1080), Vcodec: strPtr("vp9"), Filesize: i64Ptr(5000)},
		{FormatID: "313", Height: i64Ptr(2160), Vcodec: strPtr("vp9"), Filesize: i64Ptr(9000)},
	}

	options := ExtractAvailableResolutions(formats)

	require.Len(t, options, 4)

	// At most one entry per height, strictly descending
	seen := make(map[int64]bool)
	for i, opt := range options {
		assert.False(t, seen[opt.Height], "duplicate height %d", opt.Height)
		seen[opt.Height] = true
		if i > 0 {
			assert.Greater(t, options[i-1].Height, opt.Height)
		}
	}

	assert.Equal(t, int64(2160), options[0].Height)
	assert.Equal(t, "4K", options[0].Label)
	assert.Equal(t, int64(360), options[3].Height)
	assert.Equal(t, "360p", options[3].Label)
}

func TestExtractAvailableResolutions_PrefersKnownFilesize(t *testing.T) {
	formats := []VideoFormat{
		{FormatID: "137", Height: i64Ptr(1080), Vcodec: strPtr("avc1")},
		{FormatID: "248", Height: i64Ptr(1080), Vcodec: strPtr("vp9"), Filesize: i64Ptr(5000)},
	}

	options := ExtractAvailableResolutions(formats)

	require.Len(t, options, 1)
	assert.Equal(t, "248", options[0].FormatID)
}

func TestExtractAvailableResolutions_FirstSeenWhenNoFilesize(t *testing.T) {
	formats := []VideoFormat{
		{FormatID: "137", Height: i64Ptr(1080), Vcodec: strPtr("avc1")},
		{FormatID: "248", Height: i64Ptr(1080), Vcodec: strPtr("vp9")},
	}

	options := ExtractAvailableResolutions(formats)

	require.Len(t, options, 1)
	assert.Equal(t, "137", options[0].FormatID)
}

func TestExtractAvailableResolutions_ExcludesAudioOnly(t *testing.T) {
	formats := []VideoFormat{
		{FormatID: "140", Height: i64Ptr(0), Vcodec: strPtr("none"), Acodec: strPtr("mp4a")},
		{FormatID: "139", Vcodec: strPtr("none")},
		{FormatID: "nocodec", Height: i64Ptr(480)}, // missing vcodec, treated like "none"
		{FormatID: "noheight", Vcodec: strPtr("avc1")},
	}

	options := ExtractAvailableResolutions(formats)

	assert.Empty(t, options)
}

func TestExtractAvailableResolutions_Empty(t *testing.T) {
	assert.Empty(t, ExtractAvailableResolutions(nil))
}

func TestResolutionLabel(t *testing.T) {
	tests := []struct {
		height   int64
		expected string
	}{
		{4320, "8K"},
		{2880, "5K"},
		{2160, "4K"},
		{1440, "2K"},
		{1080, "1080p"},
		{720, "720p"},
		{480, "480p"},
		{360, "360p"},
		{240, "240p"},
		{144, "144p"},
		{608, "608p"},
		{1088, "1088p"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ResolutionLabel(tt.height))
	}
}

func TestVideoFormat_HasVideo(t *testing.T) {
	assert.True(t, VideoFormat{Vcodec: strPtr("avc1")}.HasVideo())
	assert.False(t, VideoFormat{Vcodec: strPtr("none")}.HasVideo())
	assert.False(t, VideoFormat{}.HasVideo())
}
