package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/vidgrab-go/internal/infrastructure"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	ytdlpBinary string
}

// NewHealthHandler creates a new health handler. ytdlpBinary is the
// configured override, empty when the locator search applies.
func NewHealthHandler(ytdlpBinary string) *HealthHandler {
	return &HealthHandler{
		ytdlpBinary: ytdlpBinary,
	}
}

// HealthResponse represents a health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	YTDLP   struct {
		Found bool   `json:"found"`
		Path  string `json:"path,omitempty"`
	} `json:"ytdlp"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}
	if path, err := infrastructure.LocateYTDLP(h.ytdlpBinary); err == nil {
		response.YTDLP.Found = true
		response.YTDLP.Path = path
	}

	c.JSON(http.StatusOK, response)
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if _, err := infrastructure.LocateYTDLP(h.ytdlpBinary); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
