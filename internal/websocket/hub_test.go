package websocket

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/testutil"
)

type countingObserver struct {
	open chan int
}

func (o *countingObserver) IncrementConnections(string) { o.open <- 1 }
func (o *countingObserver) DecrementConnections(string) { o.open <- -1 }

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	h := NewHub(zap.NewNop(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	go h.Run(ctx)
	t.Cleanup(cancel)
	return h
}

func receive(t *testing.T, c *Client) *Message {
	t.Helper()
	select {
	case msg := <-c.send:
		return msg
	case <-time.After(time.Second):
		t.Fatal("no message received")
		return nil
	}
}

func assertNoMessage(t *testing.T, c *Client) {
	t.Helper()
	select {
	case msg := <-c.send:
		t.Fatalf("unexpected message %+v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNewHub(t *testing.T) {
	h := NewHub(zap.NewNop(), nil)
	assert.Equal(t, 0, h.GetClientCount())
	assert.Equal(t, 0, h.GetRoomCount())
	assert.Equal(t, int64(0), h.GetMetrics().TotalConnections)
}

func TestValidRoom(t *testing.T) {
	assert.True(t, ValidRoom(AllDomains))
	assert.True(t, ValidRoom("about"))
	assert.False(t, ValidRoom("users"))
	assert.False(t, ValidRoom(""))
}

func TestHub_PublishRoutesByDomain(t *testing.T) {
	h := newTestHub(t)
	home := NewClient(h, nil, []string{"home"}, zap.NewNop())
	about := NewClient(h, nil, []string{"about"}, zap.NewNop())
	everything := NewClient(h, nil, []string{AllDomains}, zap.NewNop())
	for _, c := range []*Client{home, about, everything} {
		require.True(t, h.Register(c))
	}

	h.Publish(service.ChangeEvent{Domain: "home", Section: "services", Action: service.ActionUpdated, Version: 4})

	msg := receive(t, home)
	assert.Equal(t, MessageTypeEvent, msg.Type)
	assert.Equal(t, EventContentChanged, msg.Event)
	assert.Equal(t, "home", msg.Room)
	event, ok := msg.Data.(service.ChangeEvent)
	require.True(t, ok)
	assert.Equal(t, "services", event.Section)
	assert.Equal(t, int64(4), event.Version)

	assert.Equal(t, "home", receive(t, everything).Room)
	assertNoMessage(t, about)

	assert.Equal(t, 3, h.GetClientCount())
	assert.Equal(t, 1, h.GetRoomClientCount("home"))
}

func TestHub_JoinAndLeaveRooms(t *testing.T) {
	h := newTestHub(t)
	c := NewClient(h, nil, []string{"navbar"}, zap.NewNop())
	require.True(t, h.Register(c))

	h.JoinRoom(c, "footer")
	h.Publish(service.ChangeEvent{Domain: "footer", Action: service.ActionUpdated})
	assert.Equal(t, "footer", receive(t, c).Room)

	h.LeaveRoom(c, "footer")
	h.Publish(service.ChangeEvent{Domain: "footer", Action: service.ActionUpdated})
	h.Publish(service.ChangeEvent{Domain: "navbar", Action: service.ActionUpdated})
	// Broadcasts are processed in order, so the navbar event arrives first
	assert.Equal(t, "navbar", receive(t, c).Room)
	assert.Equal(t, 0, h.GetRoomClientCount("footer"))
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	obs := &countingObserver{open: make(chan int, 4)}
	h := NewHub(zap.NewNop(), obs)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	c := NewClient(h, nil, []string{"home"}, zap.NewNop())
	require.True(t, h.Register(c))
	assert.Equal(t, 1, <-obs.open)

	h.Unregister(c)
	_, open := <-c.send
	assert.False(t, open)
	assert.Equal(t, -1, <-obs.open)
	assert.Equal(t, 0, h.GetRoomCount())

	// Sending to a closed client is a no-op
	assert.NotPanics(t, func() { c.Send(NewMessage(MessageTypePong, nil)) })
}

func TestHub_StopDisconnectsClients(t *testing.T) {
	h := NewHub(zap.NewNop(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	var stopped atomic.Bool
	go func() {
		h.Run(ctx)
		stopped.Store(true)
	}()

	c := NewClient(h, nil, []string{AllDomains}, zap.NewNop())
	require.True(t, h.Register(c))
	cancel()
	require.True(t, testutil.AssertEventually(t, time.Second, stopped.Load, "hub did not stop"))

	_, open := <-c.send
	assert.False(t, open)
	assert.False(t, h.Register(NewClient(h, nil, nil, zap.NewNop())))
	assert.NotPanics(t, func() {
		h.Publish(service.ChangeEvent{Domain: "home"})
		h.Unregister(c)
	})
}

func TestHub_PublishNeverBlocks(t *testing.T) {
	h := NewHub(zap.NewNop(), nil)

	var done atomic.Bool
	go func() {
		for i := 0; i < cap(h.broadcast)+10; i++ {
			h.Publish(service.ChangeEvent{Domain: "home"})
		}
		done.Store(true)
	}()

	testutil.WaitForCondition(t, time.Second, done.Load, "Publish blocked without a running hub")
	assert.Equal(t, int64(10), h.GetMetrics().DroppedBroadcasts)
}

func TestClient_HandleMessage(t *testing.T) {
	h := newTestHub(t)
	c := NewClient(h, nil, nil, zap.NewNop())
	require.True(t, h.Register(c))

	c.handleMessage(&Message{Type: MessageTypePing})
	assert.Equal(t, MessageTypePong, receive(t, c).Type)

	c.handleMessage(&Message{Type: MessageTypeSubscribe, Data: "courses"})
	ack := receive(t, c)
	assert.Equal(t, MessageTypeAck, ack.Type)
	assert.Equal(t, "courses", ack.Room)
	assert.Equal(t, 1, h.GetRoomClientCount("courses"))

	c.handleMessage(&Message{Type: MessageTypeSubscribe, Data: "users"})
	assert.Equal(t, MessageTypeError, receive(t, c).Type)

	c.handleMessage(&Message{Type: MessageTypeUnsubscribe, Data: "courses"})
	assert.Equal(t, map[string]string{"action": "unsubscribed", "room": "courses"}, receive(t, c).Data)
	assert.Equal(t, 0, h.GetRoomClientCount("courses"))
}

func TestNewEventMessage(t *testing.T) {
	msg := NewEventMessage(EventConnected, map[string]string{"clientId": "abc"})
	assert.Equal(t, MessageTypeEvent, msg.Type)
	assert.Equal(t, EventConnected, msg.Event)
	assert.NotEmpty(t, msg.ID)
	assert.False(t, msg.Timestamp.IsZero())
}
