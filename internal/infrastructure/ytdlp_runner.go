package infrastructure

import (
	"github.com/yourusername/vidgrab-go/internal/domain"
	"go.uber.org/zap"
)

// YTDLPRunner invokes the external yt-dlp binary for metadata fetches and
// downloads. All state is request-scoped; the runner itself is safe for
// concurrent use.
type YTDLPRunner struct {
	config *domain.YTDLPConfig
	logger *zap.Logger
}

// NewYTDLPRunner creates a new runner.
func NewYTDLPRunner(config *domain.YTDLPConfig, logger *zap.Logger) *YTDLPRunner {
	return &YTDLPRunner{
		config: config,
		logger: logger,
	}
}

// locate resolves the yt-dlp binary, honoring the configured override.
func (r *YTDLPRunner) locate() (string, error) {
	return LocateYTDLP(r.config.Binary)
}
