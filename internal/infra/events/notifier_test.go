package events

import (
	"io"
	"log/slog"
	"testing"

	"hive/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthNotifier(t *testing.T) {
	notifier := NewAuthNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)))
	alice, bob := uuid.New(), uuid.New()

	var aliceEvents, bobEvents []entity.AuthEventType
	unsubscribeAlice := notifier.Subscribe(alice, func(e entity.AuthEvent) { aliceEvents = append(aliceEvents, e.Type) })
	notifier.Subscribe(bob, func(e entity.AuthEvent) { bobEvents = append(bobEvents, e.Type) })

	notifier.Notify(entity.AuthEvent{Type: entity.AuthEventSignedIn, UserID: alice})
	notifier.Notify(entity.AuthEvent{Type: entity.AuthEventUserUpdated, UserID: bob})

	unsubscribeAlice()
	unsubscribeAlice()
	notifier.Notify(entity.AuthEvent{Type: entity.AuthEventSignedOut, UserID: alice})

	assert.Equal(t, []entity.AuthEventType{entity.AuthEventSignedIn}, aliceEvents)
	assert.Equal(t, []entity.AuthEventType{entity.AuthEventUserUpdated}, bobEvents)
}

func TestAuthNotifier_MultipleListenersPerUser(t *testing.T) {
	notifier := NewAuthNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)))
	user := uuid.New()

	first, second := 0, 0
	unsubscribeFirst := notifier.Subscribe(user, func(entity.AuthEvent) { first++ })
	notifier.Subscribe(user, func(entity.AuthEvent) { second++ })

	notifier.Notify(entity.AuthEvent{Type: entity.AuthEventTokenRefreshed, UserID: user})
	unsubscribeFirst()
	notifier.Notify(entity.AuthEvent{Type: entity.AuthEventTokenRefreshed, UserID: user})

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestAuthNotifier_ListenerMayUnsubscribeItself(t *testing.T) {
	notifier := NewAuthNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)))
	user := uuid.New()

	calls := 0
	var unsubscribe func()
	unsubscribe = notifier.Subscribe(user, func(entity.AuthEvent) {
		calls++
		unsubscribe()
	})

	notifier.Notify(entity.AuthEvent{Type: entity.AuthEventSignedOut, UserID: user})
	notifier.Notify(entity.AuthEvent{Type: entity.AuthEventSignedOut, UserID: user})

	assert.Equal(t, 1, calls)
}
