package websocket

import (
	"time"

	"github.com/google/uuid"
)

// MessageType represents the type of WebSocket message
type MessageType string

const (
	MessageTypeEvent       MessageType = "event"
	MessageTypePing        MessageType = "ping"
	MessageTypePong        MessageType = "pong"
	MessageTypeError       MessageType = "error"
	MessageTypeSubscribe   MessageType = "subscribe"
	MessageTypeUnsubscribe MessageType = "unsubscribe"
	MessageTypeAck         MessageType = "ack"
)

// Event names carried by MessageTypeEvent messages
const (
	EventConnected      = "connected"
	EventContentChanged = "content.changed"
)

// Message represents a WebSocket message
type Message struct {
	ID        string      `json:"id,omitempty"`
	Type      MessageType `json:"type"`
	Event     string      `json:"event,omitempty"`
	Room      string      `json:"room,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewMessage creates a new message
func NewMessage(msgType MessageType, data interface{}) *Message {
	return &Message{
		ID:        uuid.New().String(),
		Type:      msgType,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewEventMessage creates a new event message
func NewEventMessage(event string, data interface{}) *Message {
	msg := NewMessage(MessageTypeEvent, data)
	msg.Event = event
	return msg
}

func newErrorMessage(text string) *Message {
	return NewMessage(MessageTypeError, map[string]string{"error": text})
}
