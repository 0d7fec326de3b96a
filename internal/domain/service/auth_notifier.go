package service

import (
	"hive/internal/domain/entity"

	"github.com/google/uuid"
)

// AuthListener receives auth state changes of one account.
type AuthListener func(event entity.AuthEvent)

// AuthNotifier fans auth state changes out to the listeners of each account.
type AuthNotifier interface {
	// Subscribe registers listener for userID and returns a function removing it.
	Subscribe(userID uuid.UUID, listener AuthListener) (unsubscribe func())

	// Notify delivers event to every listener registered for event.UserID.
	Notify(event entity.AuthEvent)
}
