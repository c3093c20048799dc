package infrastructure

import (
	"strconv"
	"strings"

	"github.com/yourusername/vidgrab-go/internal/domain"
)

// speedUnits are the throughput unit substrings recognized when falling back
// from "at"-token extraction. No unit conversion is performed; the speed is a
// display string.
var speedUnits = []string{"KiB/s", "MiB/s", "GiB/s", "KB/s", "MB/s", "GB/s", "B/s"}

// ParseProgressLine extracts a progress snapshot from one line of yt-dlp
// output. Typical input:
//
//	[download]  42.0% of 125.89MiB at  5.82MiB/s ETA 00:12
//
// Lines with neither a "[download]" marker nor a percent sign are not
// candidates. A line with no parseable percent never yields a snapshot, even
// if it carries a speed or ETA.
func ParseProgressLine(line string) (domain.ProgressSnapshot, bool) {
	if !strings.Contains(line, "[download]") && !strings.Contains(line, "%") {
		return domain.ProgressSnapshot{}, false
	}

	parts := strings.Fields(line)

	percent, ok := extractPercent(parts)
	if !ok {
		return domain.ProgressSnapshot{}, false
	}

	return domain.ProgressSnapshot{
		Percent: percent,
		Speed:   extractSpeed(parts),
		ETA:     extractETA(parts),
	}, true
}

func extractPercent(parts []string) (float64, bool) {
	for _, p := range parts {
		if !strings.Contains(p, "%") {
			continue
		}
		percent, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
		if err != nil {
			return 0, false
		}
		return percent, true
	}
	return 0, false
}

func extractSpeed(parts []string) string {
	for i, p := range parts {
		if p == "at" && i+1 < len(parts) {
			speed := parts[i+1]
			// yt-dlp sometimes splits the value and its unit into two tokens.
			if i+2 < len(parts) && strings.HasSuffix(parts[i+2], "/s") {
				speed += parts[i+2]
			}
			return speed
		}
	}
	for _, p := range parts {
		for _, unit := range speedUnits {
			if strings.Contains(p, unit) {
				return p
			}
		}
	}
	return ""
}

func extractETA(parts []string) string {
	for i, p := range parts {
		if p == "ETA" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	for _, p := range parts {
		if strings.Count(p, ":") == 2 {
			return p
		}
	}
	return ""
}
