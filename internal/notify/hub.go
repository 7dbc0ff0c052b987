// internal/notify/hub.go
package notify

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Hub tracks one live notification channel per user and implements
// Notifier over them. The transport handler registers a buffered
// out-channel when a user connects and removes it on disconnect; the
// hub itself never blocks on a slow consumer.
type Hub struct {
	log *logrus.Logger

	mu    sync.Mutex
	conns map[int64]*conn
}

type conn struct {
	out    chan Message
	cancel func()
}

// NewHub returns an empty hub.
func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		log:   logger,
		conns: make(map[int64]*conn),
	}
}

// Add registers a user's outgoing channel, replacing and cancelling
// any previous connection for the same user.
func (h *Hub) Add(userID int64, out chan Message, cancel func()) {
	h.mu.Lock()
	old, ok := h.conns[userID]
	h.conns[userID] = &conn{out: out, cancel: cancel}
	h.mu.Unlock()

	if ok {
		h.log.WithField("user_id", userID).Info("replacing existing notification connection")
		if old.cancel != nil {
			old.cancel()
		}
	}
}

// Remove drops the user's channel if it is still the one registered.
func (h *Hub) Remove(userID int64, out chan Message) {
	h.mu.Lock()
	if c, ok := h.conns[userID]; ok && c.out == out {
		delete(h.conns, userID)
	}
	h.mu.Unlock()
}

// Notify pushes text onto the user's channel without blocking. It
// fails when the user has no live connection or the buffer is full;
// callers treat that as a recoverable delivery failure.
func (h *Hub) Notify(ctx context.Context, userID int64, text string) error {
	h.mu.Lock()
	c, ok := h.conns[userID]
	h.mu.Unlock()

	if !ok {
		return fmt.Errorf("user %d has no active connection", userID)
	}

	msg := Message{Type: "notification", Text: text}
	select {
	case c.out <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return fmt.Errorf("outgoing queue full for user %d", userID)
	}
}
