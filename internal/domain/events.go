package domain

// ProgressSink receives progress snapshots and the completion event for a
// download. Calls are fire-and-forget: the download driver never waits for a
// sink, so a late snapshot may arrive after the final result is reported.
type ProgressSink interface {
	Progress(snapshot ProgressSnapshot)
	Completed()
}

// DiagnosticSink receives yt-dlp's stderr lines, forwarded unconditionally on
// both success and failure to aid post-hoc debugging.
type DiagnosticSink interface {
	Diagnostic(line string)
}

// NopProgressSink discards everything. Used when a caller has no UI to notify.
type NopProgressSink struct{}

func (NopProgressSink) Progress(ProgressSnapshot) {}
func (NopProgressSink) Completed()                {}

// NopDiagnosticSink discards diagnostic lines.
type NopDiagnosticSink struct{}

func (NopDiagnosticSink) Diagnostic(string) {}

// MultiProgressSink fans out to several sinks in order.
type MultiProgressSink []ProgressSink

func (m MultiProgressSink) Progress(snapshot ProgressSnapshot) {
	for _, s := range m {
		s.Progress(snapshot)
	}
}

func (m MultiProgressSink) Completed() {
	for _, s := range m {
		s.Completed()
	}
}
