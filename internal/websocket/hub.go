package websocket

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/content"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
)

// AllDomains is the room receiving changes of every content domain
const AllDomains = "*"

const connectionType = "websocket"

// ConnectionObserver is told about connections opening and closing
type ConnectionObserver interface {
	IncrementConnections(connType string)
	DecrementConnections(connType string)
}

// Hub fans content change events out to connected renderers. Every content
// domain is a room; a client joins the rooms of the documents it renders.
type Hub struct {
	clients map[*Client]bool
	rooms   map[string]map[*Client]bool

	broadcast  chan *Message
	register   chan *Client
	unregister chan *Client
	joinRoom   chan *RoomOperation
	leaveRoom  chan *RoomOperation
	done       chan struct{}

	mutex    sync.RWMutex
	logger   *zap.Logger
	observer ConnectionObserver
	metrics  *HubMetrics
}

var _ service.ChangePublisher = (*Hub)(nil)

// HubMetrics holds hub metrics
type HubMetrics struct {
	TotalConnections  int64
	ActiveConnections int64
	TotalMessages     int64
	TotalBroadcasts   int64
	DroppedBroadcasts int64
	TotalRooms        int
	mutex             sync.RWMutex
}

// RoomOperation represents a room join/leave operation
type RoomOperation struct {
	Client *Client
	Room   string
}

// NewHub creates a new hub. observer may be nil.
func NewHub(logger *zap.Logger, observer ConnectionObserver) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		rooms:      make(map[string]map[*Client]bool),
		broadcast:  make(chan *Message, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		joinRoom:   make(chan *RoomOperation),
		leaveRoom:  make(chan *RoomOperation),
		done:       make(chan struct{}),
		logger:     logger,
		observer:   observer,
		metrics:    &HubMetrics{},
	}
}

// ValidRoom reports whether room names a content domain or AllDomains
func ValidRoom(room string) bool {
	if room == AllDomains {
		return true
	}
	_, ok := content.Lookup(room)
	return ok
}

// Run serves hub operations until ctx is cancelled, then disconnects every client
func (h *Hub) Run(ctx context.Context) {
	defer h.shutdown()
	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case op := <-h.joinRoom:
			h.handleJoinRoom(op)

		case op := <-h.leaveRoom:
			h.handleLeaveRoom(op)

		case message := <-h.broadcast:
			h.handleBroadcast(message)
		}
	}
}

func (h *Hub) shutdown() {
	close(h.done)

	h.mutex.Lock()
	defer h.mutex.Unlock()
	for client := range h.clients {
		client.closeSend()
		h.connectionClosed()
	}
	h.clients = make(map[*Client]bool)
	h.rooms = make(map[string]map[*Client]bool)
}

func (h *Hub) registerClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.clients[client] = true
	for _, room := range client.initialRooms {
		h.addToRoom(client, room)
	}

	h.metrics.mutex.Lock()
	h.metrics.TotalConnections++
	h.metrics.ActiveConnections++
	h.metrics.TotalRooms = len(h.rooms)
	h.metrics.mutex.Unlock()
	if h.observer != nil {
		h.observer.IncrementConnections(connectionType)
	}

	h.logger.Debug("Client registered",
		zap.String("client_id", client.ID),
		zap.Strings("rooms", client.initialRooms),
	)
}

func (h *Hub) unregisterClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	client.closeSend()

	for room, clients := range h.rooms {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.rooms, room)
		}
	}
	h.connectionClosed()

	h.logger.Debug("Client unregistered", zap.String("client_id", client.ID))
}

// connectionClosed updates counters; callers hold h.mutex
func (h *Hub) connectionClosed() {
	h.metrics.mutex.Lock()
	h.metrics.ActiveConnections--
	h.metrics.TotalRooms = len(h.rooms)
	h.metrics.mutex.Unlock()
	if h.observer != nil {
		h.observer.DecrementConnections(connectionType)
	}
}

// addToRoom adds a client to a room; callers hold h.mutex
func (h *Hub) addToRoom(client *Client, room string) {
	if _, ok := h.rooms[room]; !ok {
		h.rooms[room] = make(map[*Client]bool)
	}
	h.rooms[room][client] = true
}

func (h *Hub) handleJoinRoom(op *RoomOperation) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if !h.clients[op.Client] {
		return
	}
	h.addToRoom(op.Client, op.Room)

	h.metrics.mutex.Lock()
	h.metrics.TotalRooms = len(h.rooms)
	h.metrics.mutex.Unlock()

	h.logger.Debug("Client joined room",
		zap.String("client_id", op.Client.ID),
		zap.String("room", op.Room),
	)
}

func (h *Hub) handleLeaveRoom(op *RoomOperation) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if clients, ok := h.rooms[op.Room]; ok {
		delete(clients, op.Client)
		if len(clients) == 0 {
			delete(h.rooms, op.Room)
		}
	}

	h.metrics.mutex.Lock()
	h.metrics.TotalRooms = len(h.rooms)
	h.metrics.mutex.Unlock()

	h.logger.Debug("Client left room",
		zap.String("client_id", op.Client.ID),
		zap.String("room", op.Room),
	)
}

// handleBroadcast delivers a message once to every client in its room or in
// the AllDomains room. A message without a room goes to everyone.
func (h *Hub) handleBroadcast(message *Message) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	h.metrics.mutex.Lock()
	h.metrics.TotalBroadcasts++
	h.metrics.mutex.Unlock()

	targets := h.clients
	if message.Room != "" {
		targets = make(map[*Client]bool)
		for client := range h.rooms[message.Room] {
			targets[client] = true
		}
		for client := range h.rooms[AllDomains] {
			targets[client] = true
		}
	}

	for client := range targets {
		if !client.trySend(message) {
			h.logger.Warn("Client send buffer full",
				zap.String("client_id", client.ID),
			)
			continue
		}
		h.metrics.mutex.Lock()
		h.metrics.TotalMessages++
		h.metrics.mutex.Unlock()
	}
}

// Publish broadcasts a content change to the room of its domain. It never
// blocks the writer: when the hub is saturated or stopped the event is dropped.
func (h *Hub) Publish(event service.ChangeEvent) {
	message := NewEventMessage(EventContentChanged, event)
	message.Room = event.Domain

	select {
	case <-h.done:
		return
	default:
	}
	select {
	case h.broadcast <- message:
	default:
		h.metrics.mutex.Lock()
		h.metrics.DroppedBroadcasts++
		h.metrics.mutex.Unlock()
		h.logger.Warn("Change event dropped, hub is saturated",
			zap.String("domain", event.Domain),
			zap.String("action", event.Action),
		)
	}
}

// Register hands a client to the hub. It reports false once the hub has stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a client and closes its send channel
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// JoinRoom adds a client to a room
func (h *Hub) JoinRoom(client *Client, room string) {
	select {
	case h.joinRoom <- &RoomOperation{Client: client, Room: room}:
	case <-h.done:
	}
}

// LeaveRoom removes a client from a room
func (h *Hub) LeaveRoom(client *Client, room string) {
	select {
	case h.leaveRoom <- &RoomOperation{Client: client, Room: room}:
	case <-h.done:
	}
}

// GetClientCount returns the number of active clients
func (h *Hub) GetClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// GetRoomCount returns the number of active rooms
func (h *Hub) GetRoomCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.rooms)
}

// GetRoomClientCount returns the number of clients in a room
func (h *Hub) GetRoomClientCount(room string) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.rooms[room])
}

// GetMetrics returns a copy of the hub metrics
func (h *Hub) GetMetrics() HubMetrics {
	h.metrics.mutex.RLock()
	defer h.metrics.mutex.RUnlock()
	return HubMetrics{
		TotalConnections:  h.metrics.TotalConnections,
		ActiveConnections: h.metrics.ActiveConnections,
		TotalMessages:     h.metrics.TotalMessages,
		TotalBroadcasts:   h.metrics.TotalBroadcasts,
		DroppedBroadcasts: h.metrics.DroppedBroadcasts,
		TotalRooms:        h.metrics.TotalRooms,
	}
}
