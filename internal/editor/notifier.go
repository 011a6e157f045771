package editor

import (
	"sync"
	"time"
)

// DefaultNotificationTTL is how long a notification stays visible
const DefaultNotificationTTL = 3 * time.Second

// Level classifies a notification
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notification is a transient banner message
type Notification struct {
	Level     Level
	Message   string
	ExpiresAt time.Time
}

// Notifier holds auto-expiring notifications
type Notifier struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items []Notification
}

// NewNotifier creates a notifier; a non-positive ttl uses DefaultNotificationTTL
func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &Notifier{ttl: ttl, now: time.Now}
}

// Notify posts a message
func (n *Notifier) Notify(level Level, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pruneLocked()
	n.items = append(n.items, Notification{Level: level, Message: message, ExpiresAt: n.now().Add(n.ttl)})
}

// Success posts a success message
func (n *Notifier) Success(message string) { n.Notify(LevelSuccess, message) }

// Error posts an error message
func (n *Notifier) Error(message string) { n.Notify(LevelError, message) }

// Active returns the notifications that have not expired, oldest first
func (n *Notifier) Active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pruneLocked()
	return append([]Notification(nil), n.items...)
}

func (n *Notifier) pruneLocked() {
	now := n.now()
	kept := n.items[:0]
	for _, item := range n.items {
		if now.Before(item.ExpiresAt) {
			kept = append(kept, item)
		}
	}
	n.items = kept
}
