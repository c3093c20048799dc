package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yourusername/vidgrab-go/internal/domain"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // local desktop UI only
	},
}

// Event is one message on the UI event stream.
type Event struct {
	Type      string  `json:"type"` // progress, diagnostic, completed, failed
	JobID     string  `json:"job_id"`
	Percent   float64 `json:"percent,omitempty"`
	Speed     string  `json:"speed,omitempty"`
	ETA       string  `json:"eta,omitempty"`
	Line      string  `json:"line,omitempty"`
	Message   string  `json:"message,omitempty"`
	Timestamp int64   `json:"timestamp"`
}

// EventHub broadcasts download events to connected WebSocket clients.
// Broadcasts never block: a client that cannot keep up has events dropped.
type EventHub struct {
	logger  *zap.Logger
	mu      sync.RWMutex
	clients map[*websocket.Conn]chan Event
}

// NewEventHub creates a new event hub
func NewEventHub(logger *zap.Logger) *EventHub {
	return &EventHub{
		logger:  logger,
		clients: make(map[*websocket.Conn]chan Event),
	}
}

// HandleWebSocket handles GET /api/v1/events, upgrading the connection and
// streaming events until the client disconnects.
func (h *EventHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade WebSocket", zap.Error(err))
		return
	}
	defer conn.Close()

	events := make(chan Event, 100)

	h.mu.Lock()
	h.clients[conn] = events
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	h.logger.Info("Event client connected",
		zap.String("remote_addr", c.Request.RemoteAddr))

	// Drain client messages so pings and close frames are processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case event := <-events:
			if err := conn.WriteJSON(event); err != nil {
				h.logger.Debug("Failed to send event", zap.Error(err))
				return
			}

		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-done:
			return
		}
	}
}

// broadcast fans an event out to all clients without blocking.
func (h *EventHub) broadcast(event Event) {
	event.Timestamp = time.Now().UnixMilli()

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, events := range h.clients {
		select {
		case events <- event:
		default:
			// Slow client; drop the event.
		}
	}
}

// BroadcastProgress implements app.EventBroadcaster.
func (h *EventHub) BroadcastProgress(jobID string, snapshot domain.ProgressSnapshot) {
	h.broadcast(Event{
		Type:    "progress",
		JobID:   jobID,
		Percent: snapshot.Percent,
		Speed:   snapshot.Speed,
		ETA:     snapshot.ETA,
	})
}

// BroadcastDiagnostic implements app.EventBroadcaster.
func (h *EventHub) BroadcastDiagnostic(jobID string, line string) {
	h.broadcast(Event{
		Type:  "diagnostic",
		JobID: jobID,
		Line:  line,
	})
}

// BroadcastCompleted implements app.EventBroadcaster.
func (h *EventHub) BroadcastCompleted(jobID string) {
	h.broadcast(Event{
		Type:  "completed",
		JobID: jobID,
	})
}

// BroadcastFailed implements app.EventBroadcaster.
func (h *EventHub) BroadcastFailed(jobID string, message string) {
	h.broadcast(Event{
		Type:    "failed",
		JobID:   jobID,
		Message: message,
	})
}
