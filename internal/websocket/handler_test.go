package websocket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/config"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testWebSocketConfig() config.WebSocketConfig {
	return config.WebSocketConfig{Enabled: true, ReadBufferSize: 1024, WriteBufferSize: 1024}
}

func newTestServer(t *testing.T, cors config.CORSConfig) (*httptest.Server, *Hub) {
	t.Helper()
	hub := newTestHub(t)
	handler := NewHandler(testWebSocketConfig(), cors, hub, zap.NewNop())

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, hub
}

func dial(t *testing.T, srv *httptest.Server, query string) *gorillaws.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/ws" + query
	conn, _, err := gorillaws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *gorillaws.Conn) map[string]interface{} {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg map[string]interface{}
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestHandler_RegisterRoutes_Disabled(t *testing.T) {
	cfg := testWebSocketConfig()
	cfg.Enabled = false
	handler := NewHandler(cfg, config.CORSConfig{}, NewHub(zap.NewNop(), nil), zap.NewNop())

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))
	assert.Empty(t, router.Routes())
}

func TestHandler_StreamsContentChanges(t *testing.T) {
	srv, hub := newTestServer(t, config.CORSConfig{})
	conn := dial(t, srv, "?domains=home,about")

	welcome := readMessage(t, conn)
	assert.Equal(t, EventConnected, welcome["event"])

	hub.Publish(service.ChangeEvent{Domain: "navbar", Action: service.ActionUpdated})
	hub.Publish(service.ChangeEvent{Domain: "about", Section: "whatWeDo", Action: service.ActionUpdated, Version: 2})

	msg := readMessage(t, conn)
	assert.Equal(t, EventContentChanged, msg["event"])
	assert.Equal(t, "about", msg["room"])
	data, ok := msg["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "whatWeDo", data["section"])
	assert.Equal(t, float64(2), data["version"])
}

func TestHandler_SubscribeOverSocket(t *testing.T) {
	srv, hub := newTestServer(t, config.CORSConfig{})
	conn := dial(t, srv, "?domains=home")
	readMessage(t, conn)

	require.NoError(t, conn.WriteJSON(Message{Type: MessageTypeSubscribe, Data: "courses"}))
	ack := readMessage(t, conn)
	assert.Equal(t, string(MessageTypeAck), ack["type"])

	hub.Publish(service.ChangeEvent{Domain: "courses", Action: service.ActionUpdated})
	assert.Equal(t, "courses", readMessage(t, conn)["room"])
}

func TestHandler_RejectsUnknownDomain(t *testing.T) {
	srv, _ := newTestServer(t, config.CORSConfig{})

	resp, err := http.Get(srv.URL + "/api/v1/ws?domains=users")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_Status(t *testing.T) {
	srv, hub := newTestServer(t, config.CORSConfig{})
	conn := dial(t, srv, "")
	readMessage(t, conn)

	resp, err := http.Get(srv.URL + "/api/v1/ws/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1), hub.GetMetrics().ActiveConnections)
}

func TestHandler_CheckOrigin(t *testing.T) {
	handler := NewHandler(testWebSocketConfig(),
		config.CORSConfig{AllowedOrigins: []string{"https://refermegroup.com"}},
		NewHub(zap.NewNop(), nil), zap.NewNop())

	tests := []struct {
		origin string
		want   bool
	}{
		{"", true},
		{"https://refermegroup.com", true},
		{"https://evil.example", false},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/ws", nil)
		if tt.origin != "" {
			req.Header.Set("Origin", tt.origin)
		}
		assert.Equal(t, tt.want, handler.checkOrigin(req), tt.origin)
	}
}

func TestParseRooms(t *testing.T) {
	rooms, ok := parseRooms("")
	assert.True(t, ok)
	assert.Equal(t, []string{AllDomains}, rooms)

	rooms, ok = parseRooms(" Home, about,home ,")
	assert.True(t, ok)
	assert.Equal(t, []string{"home", "about"}, rooms)

	_, ok = parseRooms("home,jobs")
	assert.False(t, ok)
}

func TestHandler_HubStoppedClosesConnection(t *testing.T) {
	hub := NewHub(zap.NewNop(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	handler := NewHandler(testWebSocketConfig(), config.CORSConfig{}, hub, zap.NewNop())
	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))
	srv := httptest.NewServer(router)
	defer srv.Close()

	conn := dial(t, srv, "")
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, gorillaws.IsCloseError(err, gorillaws.CloseGoingAway), "got %v", err)
}
