package domain

import "errors"

// Error kinds surfaced by the yt-dlp runner. Every message is display-ready;
// nothing is retried automatically.
var (
	// ErrExecutableNotFound means no yt-dlp binary could be located on this host.
	ErrExecutableNotFound = errors.New("yt-dlp executable not found")

	// ErrProcessLaunch wraps the OS error when yt-dlp could not be spawned.
	ErrProcessLaunch = errors.New("failed to launch yt-dlp")

	// ErrProcessExecution means yt-dlp ran but exited non-zero.
	ErrProcessExecution = errors.New("yt-dlp exited with failure")

	// ErrOutputCapture means a stdout/stderr pipe could not be obtained.
	ErrOutputCapture = errors.New("failed to capture yt-dlp output")

	// ErrParseFailure means no line of yt-dlp's output held a valid metadata record.
	ErrParseFailure = errors.New("failed to parse video metadata")
)
