package domain

import (
	"fmt"
	"sort"
)

// VideoFormat is one encoded rendition of a video as reported by yt-dlp.
// Optional fields are pointers so that absence in the JSON record survives
// parsing instead of collapsing into a zero value.
type VideoFormat struct {
	FormatID string  `json:"format_id"`
	Height   *int64  `json:"height,omitempty"`
	Width    *int64  `json:"width,omitempty"`
	Ext      string  `json:"ext"`
	Filesize *int64  `json:"filesize,omitempty"`
	Vcodec   *string `json:"vcodec,omitempty"`
	Acodec   *string `json:"acodec,omitempty"`
}

// HasVideo reports whether the format carries a video stream. yt-dlp marks
// audio-only formats with vcodec "none"; a missing vcodec is treated the same.
func (f VideoFormat) HasVideo() bool {
	return f.Vcodec != nil && *f.Vcodec != "none"
}

// ResolutionOption is a per-height summary derived from a format list.
type ResolutionOption struct {
	Height   int64  `json:"height"`
	Label    string `json:"label"`
	FormatID string `json:"format_id"`
}

// VideoInfo is the aggregate result of a metadata fetch. Constructed once and
// returned to the caller; never mutated afterwards.
type VideoInfo struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Duration    float64            `json:"duration"`
	Thumbnail   string             `json:"thumbnail"`
	Formats     []VideoFormat      `json:"formats"`
	Resolutions []ResolutionOption `json:"resolutions"`
}

// ProgressSnapshot is a point-in-time reading parsed from yt-dlp's live
// output during a download. Speed and ETA are display strings, passed through
// exactly as yt-dlp printed them.
type ProgressSnapshot struct {
	Percent float64 `json:"percent"`
	Speed   string  `json:"speed"`
	ETA     string  `json:"eta"`
}

// resolutionLabels maps well-known heights to their conventional names.
// Anything else is labelled "{height}p".
var resolutionLabels = map[int64]string{
	4320: "8K",
	2880: "5K",
	2160: "4K",
	1440: "2K",
	1080: "1080p",
	720:  "720p",
	480:  "480p",
	360:  "360p",
	240:  "240p",
	144:  "144p",
}

// ResolutionLabel returns the display label for a height.
func ResolutionLabel(height int64) string {
	if label, ok := resolutionLabels[height]; ok {
		return label
	}
	return fmt.Sprintf("%dp", height)
}

// ExtractAvailableResolutions dedupes a format list into one entry per
// distinct height, sorted by descending height. Only formats with a video
// stream and a known height are considered. When several formats share a
// height, one with a known filesize is preferred as the representative.
func ExtractAvailableResolutions(formats []VideoFormat) []ResolutionOption {
	byHeight := make(map[int64]VideoFormat)
	for _, f := range formats {
		if !f.HasVideo() || f.Height == nil {
			continue
		}
		h := *f.Height
		current, seen := byHeight[h]
		if !seen {
			byHeight[h] = f
			continue
		}
		if current.Filesize == nil && f.Filesize != nil {
			byHeight[h] = f
		}
	}

	options := make([]ResolutionOption, 0, len(byHeight))
	for height, f := range byHeight {
		options = append(options, ResolutionOption{
			Height:   height,
			Label:    ResolutionLabel(height),
			FormatID: f.FormatID,
		})
	}

	sort.Slice(options, func(i, j int) bool {
		return options[i].Height > options[j].Height
	})

	return options
}
