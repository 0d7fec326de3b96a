package usecase

import (
	"hive/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the signed-in member behind a collection mutation.
type Actor struct {
	UserID uuid.UUID
	Roles  entity.Roles
}

// ID returns the user ID as recorded on change events, or "" for an anonymous actor.
func (a Actor) ID() string {
	if a.UserID == uuid.Nil {
		return ""
	}

	return a.UserID.String()
}

// CanReset reports whether the actor may reset shared collections.
func (a Actor) CanReset() bool {
	return a.Roles.Has(entity.RoleModerator)
}
