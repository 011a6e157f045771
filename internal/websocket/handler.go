package websocket

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/config"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/response"
)

const (
	path             = "/ws"
	handshakeTimeout = 10 * time.Second
)

// Handler upgrades renderer connections and hands them to the hub
type Handler struct {
	config         config.WebSocketConfig
	allowedOrigins []string
	hub            *Hub
	upgrader       websocket.Upgrader
	logger         *zap.Logger
}

// NewHandler creates a new WebSocket handler. Origins follow the CORS allow list.
func NewHandler(cfg config.WebSocketConfig, cors config.CORSConfig, hub *Hub, logger *zap.Logger) *Handler {
	h := &Handler{
		config:         cfg,
		allowedOrigins: cors.AllowedOrigins,
		hub:            hub,
		logger:         logger,
	}

	h.upgrader = websocket.Upgrader{
		ReadBufferSize:   cfg.ReadBufferSize,
		WriteBufferSize:  cfg.WriteBufferSize,
		HandshakeTimeout: handshakeTimeout,
		CheckOrigin:      h.checkOrigin,
	}
	return h
}

// RegisterRoutes registers WebSocket routes when the hub is enabled
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	if !h.config.Enabled {
		return
	}
	router.GET(path, h.handleWebSocket)
	router.GET(path+"/status", h.handleStatus)
}

// handleWebSocket upgrades the request. The domains query parameter lists the
// rooms to join, defaulting to every domain.
func (h *Handler) handleWebSocket(c *gin.Context) {
	rooms, ok := parseRooms(c.Query("domains"))
	if !ok {
		c.JSON(http.StatusBadRequest, response.NewError[any]("unknown content domain"))
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("Failed to upgrade connection", zap.Error(err))
		return
	}

	client := NewClient(h.hub, conn, rooms, h.logger)
	if !h.hub.Register(client) {
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		conn.Close()
		return
	}

	client.Send(NewEventMessage(EventConnected, map[string]interface{}{
		"clientId": client.ID,
		"domains":  rooms,
	}))

	go client.WritePump()
	go client.ReadPump()
}

func parseRooms(raw string) ([]string, bool) {
	if strings.TrimSpace(raw) == "" {
		return []string{AllDomains}, true
	}
	seen := make(map[string]bool)
	rooms := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		room := strings.ToLower(strings.TrimSpace(part))
		if room == "" || seen[room] {
			continue
		}
		if !ValidRoom(room) {
			return nil, false
		}
		seen[room] = true
		rooms = append(rooms, room)
	}
	if len(rooms) == 0 {
		return []string{AllDomains}, true
	}
	return rooms, true
}

func (h *Handler) handleStatus(c *gin.Context) {
	metrics := h.hub.GetMetrics()

	c.JSON(http.StatusOK, response.NewSuccessWithData(gin.H{
		"activeConnections": metrics.ActiveConnections,
		"totalConnections":  metrics.TotalConnections,
		"totalMessages":     metrics.TotalMessages,
		"totalBroadcasts":   metrics.TotalBroadcasts,
		"droppedBroadcasts": metrics.DroppedBroadcasts,
		"activeRooms":       metrics.TotalRooms,
	}))
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(h.allowedOrigins) == 0 {
		return true
	}
	for _, allowed := range h.allowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

// GetHub returns the hub
func (h *Handler) GetHub() *Hub {
	return h.hub
}
