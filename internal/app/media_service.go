package app

import (
	"github.com/yourusername/vidgrab-go/internal/domain"
	"github.com/yourusername/vidgrab-go/internal/infrastructure"
	"go.uber.org/zap"
)

// MediaRunner is the part of the yt-dlp runner the service depends on.
// Satisfied by infrastructure.YTDLPRunner; tests substitute fakes.
type MediaRunner interface {
	FetchVideoInfo(url string) (*domain.VideoInfo, error)
	DownloadVideo(url string, args []string, progress domain.ProgressSink, diag domain.DiagnosticSink) error
}

// EventBroadcaster pushes download events to connected UI clients.
// Implementations must not block; events are fire-and-forget.
type EventBroadcaster interface {
	BroadcastProgress(jobID string, snapshot domain.ProgressSnapshot)
	BroadcastDiagnostic(jobID string, line string)
	BroadcastCompleted(jobID string)
	BroadcastFailed(jobID string, message string)
}

// MediaService exposes the two operations the UI calls: fetch metadata for a
// URL and drive a download of it.
type MediaService struct {
	runner      MediaRunner
	registry    *JobRegistry
	broadcaster EventBroadcaster
	notifier    *infrastructure.NotificationService
	logger      *zap.Logger
}

// NewMediaService creates a new media service. broadcaster and notifier may
// be nil when no UI is attached.
func NewMediaService(
	runner MediaRunner,
	registry *JobRegistry,
	broadcaster EventBroadcaster,
	notifier *infrastructure.NotificationService,
	logger *zap.Logger,
) *MediaService {
	return &MediaService{
		runner:      runner,
		registry:    registry,
		broadcaster: broadcaster,
		notifier:    notifier,
		logger:      logger,
	}
}

// GetVideoInfo fetches metadata for a video URL. Synchronous; the result is
// complete when it returns.
func (s *MediaService) GetVideoInfo(url string) (*domain.VideoInfo, error) {
	return s.runner.FetchVideoInfo(url)
}

// StartDownload registers a download job and runs it in the background.
// Progress, diagnostics, and the terminal result are delivered through the
// broadcaster; the returned job carries the id to watch.
func (s *MediaService) StartDownload(url string, args []string) *domain.DownloadJob {
	job := domain.NewDownloadJob(url, args)
	s.registry.Add(job)

	go s.runDownload(job.ID, url, args)

	snapshot := *job
	return &snapshot
}

func (s *MediaService) runDownload(jobID, url string, args []string) {
	s.registry.Update(jobID, func(j *domain.DownloadJob) { j.MarkProcessing() })

	progress := &jobProgressSink{service: s, jobID: jobID}
	diag := &jobDiagnosticSink{service: s, jobID: jobID}

	err := s.runner.DownloadVideo(url, args, progress, diag)
	if err != nil {
		s.registry.Update(jobID, func(j *domain.DownloadJob) { j.MarkFailed(err) })
		if s.broadcaster != nil {
			s.broadcaster.BroadcastFailed(jobID, err.Error())
		}
		if s.notifier != nil {
			s.notifier.NotifyDownloadFailed(url, err)
		}
		return
	}

	s.registry.Update(jobID, func(j *domain.DownloadJob) { j.MarkCompleted() })
	if s.notifier != nil {
		s.notifier.NotifyDownloadCompleted(url)
	}
}

// Job returns the current state of a download job.
func (s *MediaService) Job(id string) (*domain.DownloadJob, error) {
	return s.registry.Get(id)
}

// Jobs returns all download jobs, newest first.
func (s *MediaService) Jobs() []*domain.DownloadJob {
	return s.registry.List()
}

// jobProgressSink records snapshots on the job and forwards them to the
// broadcaster. Completed fires before the job is marked terminal in the
// registry; ordering between the two is best-effort.
type jobProgressSink struct {
	service *MediaService
	jobID   string
}

func (p *jobProgressSink) Progress(snapshot domain.ProgressSnapshot) {
	p.service.registry.Update(p.jobID, func(j *domain.DownloadJob) {
		j.Progress = &snapshot
	})
	if p.service.broadcaster != nil {
		p.service.broadcaster.BroadcastProgress(p.jobID, snapshot)
	}
}

func (p *jobProgressSink) Completed() {
	if p.service.broadcaster != nil {
		p.service.broadcaster.BroadcastCompleted(p.jobID)
	}
}

type jobDiagnosticSink struct {
	service *MediaService
	jobID   string
}

func (d *jobDiagnosticSink) Diagnostic(line string) {
	if d.service.broadcaster != nil {
		d.service.broadcaster.BroadcastDiagnostic(d.jobID, line)
	}
}
