package infrastructure

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/yourusername/vidgrab-go/internal/domain"
	"go.uber.org/zap"
)

// rawVideoInfo mirrors the yt-dlp --dump-json record, with every field
// optional. Missing fields degrade to neutral defaults instead of failing the
// whole fetch.
type rawVideoInfo struct {
	ID        *string     `json:"id"`
	Title     *string     `json:"title"`
	Duration  *float64    `json:"duration"`
	Thumbnail *string     `json:"thumbnail"`
	Formats   []rawFormat `json:"formats"`
}

type rawFormat struct {
	FormatID *string `json:"format_id"`
	Height   *int64  `json:"height"`
	Width    *int64  `json:"width"`
	Ext      *string `json:"ext"`
	Filesize *int64  `json:"filesize"`
	Vcodec   *string `json:"vcodec"`
	Acodec   *string `json:"acodec"`
}

// FetchVideoInfo runs yt-dlp once in --dump-json mode and returns the parsed
// metadata. On a non-zero exit the stderr text is classified via
// FormatYTDLPError. The first stdout line that parses as a JSON record wins;
// with --flat-playlist that is the first playlist entry.
func (r *YTDLPRunner) FetchVideoInfo(url string) (*domain.VideoInfo, error) {
	binary, err := r.locate()
	if err != nil {
		return nil, err
	}

	args := []string{
		"--dump-json",
		"--no-warnings",
		"--flat-playlist",
		"--impersonate", r.config.Impersonate,
		"--user-agent", r.config.UserAgent,
		"--cookies-from-browser", r.config.CookiesFromBrowser,
		url,
	}

	r.logger.Info("Fetching video info",
		zap.String("url", url),
		zap.String("binary", binary))
	r.logger.Debug("yt-dlp command", zap.String("cmd", ShellEscapeCommand(binary, args...)))

	cmd := exec.Command(binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			return nil, fmt.Errorf("%w: %v", domain.ErrProcessLaunch, err)
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrProcessExecution,
			FormatYTDLPError(stderr.String()))
	}

	info, err := parseVideoInfo(stdout.String())
	if err != nil {
		return nil, err
	}

	r.logger.Info("Video info fetched",
		zap.String("id", info.ID),
		zap.String("title", info.Title),
		zap.Int("formats", len(info.Formats)))

	return info, nil
}

// parseVideoInfo finds the first line of output that is a valid JSON record
// and converts it, substituting defaults for missing fields.
func parseVideoInfo(output string) (*domain.VideoInfo, error) {
	lines := strings.Split(output, "\n")

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var raw rawVideoInfo
		if err := json.Unmarshal([]byte(line), &raw); err != nil {
			continue
		}

		info := &domain.VideoInfo{
			ID:        stringOr(raw.ID, ""),
			Title:     stringOr(raw.Title, ""),
			Duration:  floatOr(raw.Duration, 0),
			Thumbnail: stringOr(raw.Thumbnail, ""),
			Formats:   make([]domain.VideoFormat, 0, len(raw.Formats)),
		}
		for _, f := range raw.Formats {
			info.Formats = append(info.Formats, domain.VideoFormat{
				FormatID: stringOr(f.FormatID, ""),
				Height:   f.Height,
				Width:    f.Width,
				Ext:      stringOr(f.Ext, ""),
				Filesize: f.Filesize,
				Vcodec:   f.Vcodec,
				Acodec:   f.Acodec,
			})
		}
		info.Resolutions = domain.ExtractAvailableResolutions(info.Formats)

		return info, nil
	}

	return nil, fmt.Errorf("%w: no valid metadata record in output", domain.ErrParseFailure)
}

func stringOr(s *string, def string) string {
	if s != nil {
		return *s
	}
	return def
}

func floatOr(f *float64, def float64) float64 {
	if f != nil {
		return *f
	}
	return def
}
