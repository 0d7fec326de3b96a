package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Identity tables. Primary keys are UUIDv7 assigned before insert, so the same
// schema migrates on PostgreSQL and SQLite alike.

type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"size:255;not null;uniqueIndex:idx_users_email"`
	Username  *string   `gorm:"size:50;uniqueIndex:idx_users_username"`
	AvatarURL string    `gorm:"type:text"`
	Roles     string    `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Authentications []AuthenticationModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(*gorm.DB) error { return assignID(&m.ID) }

// AuthenticationModel is one login credential. For the email provider
// ProviderUserID is the normalized address.
type AuthenticationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider       string    `gorm:"size:50;not null;uniqueIndex:idx_auth_provider_subject"`
	ProviderUserID string    `gorm:"size:255;not null;uniqueIndex:idx_auth_provider_subject"`
	PasswordHash   string    `gorm:"size:255"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (AuthenticationModel) TableName() string { return "user_authentications" }

func (m *AuthenticationModel) BeforeCreate(*gorm.DB) error { return assignID(&m.ID) }

// RefreshTokenModel is one session; only the token hash is kept.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_refresh_user_expiry"`
	TokenHash string    `gorm:"size:255;not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null;index:idx_refresh_user_expiry"`
	CreatedAt time.Time
}

func (RefreshTokenModel) TableName() string { return "refresh_tokens" }

func (m *RefreshTokenModel) BeforeCreate(*gorm.DB) error { return assignID(&m.ID) }

func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	v7, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = v7

	return nil
}
