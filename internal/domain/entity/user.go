// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account of the hub. The public part of it (username, avatar) is the
// profile that other members see next to listings, rides and partner cards.
type User struct {
	ID        uuid.UUID `json:"id"`                   // The Global Unique Identifier (GUID) for the user.
	Email     string    `json:"email"`                // Login identifier and the destination of password reset links.
	Username  string    `json:"username"`             // Display name, unique across the hub. Empty until chosen.
	AvatarURL string    `json:"avatar_url,omitempty"` // Optional profile picture.
	Roles     Roles     `json:"roles"`                // Granted roles; every account holds RoleMember.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileUpdate carries the profile fields a member may change about themselves.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Username  *string
	AvatarURL *string
}

// Apply copies the non-nil fields onto the user and reports whether anything changed.
func (p ProfileUpdate) Apply(user *User) bool {
	changed := false
	if p.Username != nil && *p.Username != user.Username {
		user.Username = *p.Username
		changed = true
	}
	if p.AvatarURL != nil && *p.AvatarURL != user.AvatarURL {
		user.AvatarURL = *p.AvatarURL
		changed = true
	}

	return changed
}
