package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/vidgrab-go/internal/app"
	"github.com/yourusername/vidgrab-go/internal/domain"
	"go.uber.org/zap"
)

// VideoHandler handles video metadata and download HTTP requests
type VideoHandler struct {
	service *app.MediaService
	logger  *zap.Logger
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(service *app.MediaService, logger *zap.Logger) *VideoHandler {
	return &VideoHandler{
		service: service,
		logger:  logger,
	}
}

// VideoInfoRequest represents a request to fetch video metadata
type VideoInfoRequest struct {
	URL string `json:"url" binding:"required"`
}

// DownloadRequest represents a request to start a download. Args are passed
// to yt-dlp verbatim; the server does not validate them.
type DownloadRequest struct {
	URL  string   `json:"url" binding:"required"`
	Args []string `json:"args" binding:"required"`
}

// GetVideoInfo handles POST /api/v1/videos/info
func (h *VideoHandler) GetVideoInfo(c *gin.Context) {
	var req VideoInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := h.service.GetVideoInfo(req.URL)
	if err != nil {
		h.logger.Error("Failed to fetch video info",
			zap.String("url", req.URL),
			zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, info)
}

// StartDownload handles POST /api/v1/videos/download
func (h *VideoHandler) StartDownload(c *gin.Context) {
	var req DownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job := h.service.StartDownload(req.URL, req.Args)

	c.JSON(http.StatusAccepted, job)
}

// GetDownload handles GET /api/v1/downloads/:id
func (h *VideoHandler) GetDownload(c *gin.Context) {
	job, err := h.service.Job(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "download not found"})
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListDownloads handles GET /api/v1/downloads
func (h *VideoHandler) ListDownloads(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Jobs())
}

// statusForError maps runner error kinds to HTTP statuses. Everything is
// display-ready text; the UI shows the body as-is.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrExecutableNotFound):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrParseFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
