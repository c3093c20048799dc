package infrastructure

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/yourusername/vidgrab-go/internal/domain"
	"go.uber.org/zap"
)

// DownloadVideo spawns yt-dlp with the caller-supplied arguments verbatim and
// blocks until the process exits. Stdout and stderr are drained by two
// detached goroutines: recognized progress lines go to the progress sink,
// every stderr line goes to the diagnostic sink. The goroutines are not
// joined before returning, so a final stray notification may trail the
// result.
//
// The pipes are created here rather than via cmd.StdoutPipe, which Wait
// would close at process exit, racing the detached readers out of buffered
// output. The readers own the read ends and drain them to EOF no matter when
// the process exits.
//
// There is no way to cancel a running download short of killing the process
// externally; no timeout is enforced.
func (r *YTDLPRunner) DownloadVideo(url string, args []string, progress domain.ProgressSink, diag domain.DiagnosticSink) error {
	if progress == nil {
		progress = domain.NopProgressSink{}
	}
	if diag == nil {
		diag = domain.NopDiagnosticSink{}
	}

	binary, err := r.locate()
	if err != nil {
		return err
	}

	r.logger.Info("Starting download",
		zap.String("url", url),
		zap.String("binary", binary))
	r.logger.Debug("yt-dlp command", zap.String("cmd", ShellEscapeCommand(binary, args...)))

	cmd := exec.Command(binary, args...)

	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("%w: stdout: %v", domain.ErrOutputCapture, err)
	}
	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		stdoutR.Close()
		stdoutW.Close()
		return fmt.Errorf("%w: stderr: %v", domain.ErrOutputCapture, err)
	}
	cmd.Stdout = stdoutW
	cmd.Stderr = stderrW

	if err := cmd.Start(); err != nil {
		stdoutR.Close()
		stdoutW.Close()
		stderrR.Close()
		stderrW.Close()
		return fmt.Errorf("%w: %v", domain.ErrProcessLaunch, err)
	}

	// The child holds its own copies of the write ends; closing ours makes
	// the readers see EOF once the process exits.
	stdoutW.Close()
	stderrW.Close()

	go func() {
		defer stdoutR.Close()
		r.drainStdout(stdoutR, progress)
	}()
	go func() {
		defer stderrR.Close()
		r.drainStderr(stderrR, diag)
	}()

	if err := cmd.Wait(); err != nil {
		r.logger.Error("Download failed", zap.String("url", url), zap.Error(err))
		return fmt.Errorf("%w: process exited with failure", domain.ErrProcessExecution)
	}

	r.logger.Info("Download completed", zap.String("url", url))
	progress.Completed()
	return nil
}

// drainStdout reads yt-dlp's stdout line by line, forwarding recognized
// progress lines and logging the rest.
func (r *YTDLPRunner) drainStdout(stdout io.Reader, progress domain.ProgressSink) {
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if snapshot, ok := ParseProgressLine(line); ok {
			progress.Progress(snapshot)
			continue
		}
		r.logger.Debug("yt-dlp output", zap.String("line", line))
	}
}

// drainStderr forwards every stderr line to the diagnostic sink,
// unconditionally, to aid post-hoc debugging.
func (r *YTDLPRunner) drainStderr(stderr io.Reader, diag domain.DiagnosticSink) {
	scanner := bufio.NewScanner(stderr)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		diag.Diagnostic(line)
		r.logger.Debug("yt-dlp stderr", zap.String("line", line))
	}
}
