package usecase

import (
	"context"

	"hive/internal/domain/entity"
	"hive/internal/domain/matching"
)

// AddGamePartnerInput defines a new game partner card.
type AddGamePartnerInput struct {
	UserName     string             `json:"userName" validate:"required"`
	Avatar       string             `json:"avatar,omitempty" validate:"omitempty,url"`
	Games        []entity.GameSkill `json:"games" validate:"min=1,dive"`
	Availability []string           `json:"availability"`
	Bio          string             `json:"bio"`
}

// GamePartnerOptions lists the choices offered by the partner form.
type GamePartnerOptions struct {
	SkillLevels  []string `json:"skillLevels"`
	Availability []string `json:"availability"`
}

// GamePartnerUsecase defines the game partner finder.
type GamePartnerUsecase interface {
	List(ctx context.Context, filter matching.GamePartnerFilter) ([]entity.GamePartner, error)
	Options() GamePartnerOptions
	AddPartner(ctx context.Context, actor Actor, input *AddGamePartnerInput) ([]entity.GamePartner, error)
	RemovePartner(ctx context.Context, actor Actor, id string) ([]entity.GamePartner, error)

	// AddGame adds game to a partner at Beginner level.
	AddGame(ctx context.Context, actor Actor, id, game string) ([]entity.GamePartner, error)

	// SetSkill changes the level of one of the partner's games.
	SetSkill(ctx context.Context, actor Actor, id, game, level string) ([]entity.GamePartner, error)

	RemoveGame(ctx context.Context, actor Actor, id, game string) ([]entity.GamePartner, error)
	Reset(ctx context.Context, actor Actor) ([]entity.GamePartner, error)
}
