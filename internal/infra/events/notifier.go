// Package events keeps the in-process subscribers of auth state changes.
package events

import (
	"log/slog"
	"sync"

	"hive/internal/domain/entity"
	"hive/internal/domain/service"

	"github.com/google/uuid"
)

type subscription struct {
	id       uint64
	listener service.AuthListener
}

type authNotifier struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[uuid.UUID][]subscription
	logger *slog.Logger
}

// NewAuthNotifier creates an empty notifier.
func NewAuthNotifier(logger *slog.Logger) service.AuthNotifier {
	return &authNotifier{
		subs:   make(map[uuid.UUID][]subscription),
		logger: logger,
	}
}

func (n *authNotifier) Subscribe(userID uuid.UUID, listener service.AuthListener) func() {
	n.mu.Lock()
	n.nextID++
	id := n.nextID
	n.subs[userID] = append(n.subs[userID], subscription{id: id, listener: listener})
	n.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() { n.remove(userID, id) })
	}
}

func (n *authNotifier) remove(userID uuid.UUID, id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	subs := n.subs[userID]
	for i, s := range subs {
		if s.id == id {
			subs = append(subs[:i:i], subs[i+1:]...)

			break
		}
	}
	if len(subs) == 0 {
		delete(n.subs, userID)

		return
	}
	n.subs[userID] = subs
}

// Notify calls listeners synchronously, outside the lock, so a listener may unsubscribe itself.
func (n *authNotifier) Notify(event entity.AuthEvent) {
	n.mu.RLock()
	listeners := make([]service.AuthListener, 0, len(n.subs[event.UserID]))
	for _, s := range n.subs[event.UserID] {
		listeners = append(listeners, s.listener)
	}
	n.mu.RUnlock()

	n.logger.Debug("Auth event",
		slog.String("type", string(event.Type)),
		slog.String("userID", event.UserID.String()),
		slog.Int("listeners", len(listeners)),
	)

	for _, listener := range listeners {
		listener(event)
	}
}
