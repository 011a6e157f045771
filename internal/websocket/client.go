package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Renderers only send control messages
	maxMessageSize = 4096

	sendBufferSize = 64
)

// Client is one connected renderer
type Client struct {
	ID           string
	initialRooms []string
	hub          *Hub
	conn         *websocket.Conn
	send         chan *Message
	logger       *zap.Logger

	mu     sync.Mutex
	closed bool
}

// NewClient creates a client that joins rooms as soon as it registers
func NewClient(hub *Hub, conn *websocket.Conn, rooms []string, logger *zap.Logger) *Client {
	return &Client{
		ID:           uuid.New().String(),
		initialRooms: rooms,
		hub:          hub,
		conn:         conn,
		send:         make(chan *Message, sendBufferSize),
		logger:       logger,
	}
}

// ReadPump reads control messages until the connection fails
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("WebSocket read error",
					zap.String("client_id", c.ID),
					zap.Error(err),
				)
			}
			return
		}

		var message Message
		if err := json.Unmarshal(data, &message); err != nil {
			c.Send(newErrorMessage("malformed message"))
			continue
		}
		c.handleMessage(&message)
	}
}

// WritePump writes hub messages and keepalive pings to the connection
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(message); err != nil {
				c.logger.Warn("Failed to write message",
					zap.String("client_id", c.ID),
					zap.Error(err),
				)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleMessage(message *Message) {
	switch message.Type {
	case MessageTypePing:
		c.Send(&Message{Type: MessageTypePong, Timestamp: time.Now()})

	case MessageTypeSubscribe, MessageTypeUnsubscribe:
		room, ok := message.Data.(string)
		if !ok || !ValidRoom(room) {
			c.Send(newErrorMessage("unknown content domain"))
			return
		}
		action := "subscribed"
		if message.Type == MessageTypeSubscribe {
			c.hub.JoinRoom(c, room)
		} else {
			c.hub.LeaveRoom(c, room)
			action = "unsubscribed"
		}
		c.Send(&Message{
			Type:      MessageTypeAck,
			Room:      room,
			Data:      map[string]string{"action": action, "room": room},
			Timestamp: time.Now(),
		})

	default:
		c.logger.Debug("Unknown message type",
			zap.String("client_id", c.ID),
			zap.String("type", string(message.Type)),
		)
	}
}

// Send queues a message without blocking
func (c *Client) Send(message *Message) {
	if !c.trySend(message) {
		c.logger.Warn("Client send buffer full",
			zap.String("client_id", c.ID),
		)
	}
}

// trySend queues a message unless the buffer is full. Messages to a closed
// client are discarded.
func (c *Client) trySend(message *Message) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return true
	}
	select {
	case c.send <- message:
		return true
	default:
		return false
	}
}

// closeSend closes the send channel once, ending WritePump
func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}
