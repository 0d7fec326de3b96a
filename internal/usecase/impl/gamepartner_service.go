package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"hive/internal/domain/collection"
	"hive/internal/domain/constants"
	"hive/internal/domain/entity"
	"hive/internal/domain/matching"
	"hive/internal/domain/repository"
	"hive/internal/domain/seed"
	"hive/internal/domain/service"
	"hive/internal/usecase"

	"go.uber.org/fx"
)

type gamePartnerService struct {
	partners *sharedCollection[entity.GamePartner]
}

// GamePartnerServiceParams holds dependencies for GamePartnerService, injected by Fx.
type GamePartnerServiceParams struct {
	fx.In

	Partners  repository.DocumentStore[[]entity.GamePartner]
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewGamePartnerService creates the game partner finder.
func NewGamePartnerService(params GamePartnerServiceParams) usecase.GamePartnerUsecase {
	return &gamePartnerService{
		partners: newSharedCollection(constants.KeyGamePartners, params.Partners, seed.GamePartners, params.Publisher, params.Logger),
	}
}

func (srv *gamePartnerService) List(ctx context.Context, filter matching.GamePartnerFilter) ([]entity.GamePartner, error) {
	partners, err := srv.partners.load(ctx)
	if err != nil {
		return nil, err
	}

	return matching.FilterGamePartners(partners, filter), nil
}

func (srv *gamePartnerService) Options() usecase.GamePartnerOptions {
	return usecase.GamePartnerOptions{
		SkillLevels:  slices.Clone(entity.SkillLevels),
		Availability: slices.Clone(entity.AvailabilityOptions),
	}
}

func (srv *gamePartnerService) AddPartner(ctx context.Context, actor usecase.Actor, input *usecase.AddGamePartnerInput) ([]entity.GamePartner, error) {
	partner := entity.GamePartner{
		ID:           entity.NewRecordID(),
		UserID:       actor.ID(),
		UserName:     strings.TrimSpace(input.UserName),
		Avatar:       input.Avatar,
		Availability: nonNil(input.Availability),
		Bio:          input.Bio,
	}
	// Duplicate games keep their first level.
	for _, g := range input.Games {
		if partner.HasGame(g.Game) {
			continue
		}
		partner.Games = append(partner.Games, entity.GameSkill{Game: strings.TrimSpace(g.Game), SkillLevel: g.SkillLevel})
	}

	return srv.partners.mutate(ctx, actor, service.CollectionActionAdded, partner.ID, prepend(partner))
}

func (srv *gamePartnerService) RemovePartner(ctx context.Context, actor usecase.Actor, id string) ([]entity.GamePartner, error) {
	return srv.partners.mutate(ctx, actor, service.CollectionActionRemoved, id, removeByID[entity.GamePartner](id))
}

func (srv *gamePartnerService) AddGame(ctx context.Context, actor usecase.Actor, id, game string) ([]entity.GamePartner, error) {
	return srv.partners.mutate(ctx, actor, service.CollectionActionUpdated, id,
		editPartner(id, func(p entity.GamePartner) entity.GamePartner { return p.AddGame(game) }))
}

func (srv *gamePartnerService) SetSkill(ctx context.Context, actor usecase.Actor, id, game, level string) ([]entity.GamePartner, error) {
	return srv.partners.mutate(ctx, actor, service.CollectionActionUpdated, id,
		editPartner(id, func(p entity.GamePartner) entity.GamePartner { return p.SetSkill(game, level) }))
}

func (srv *gamePartnerService) RemoveGame(ctx context.Context, actor usecase.Actor, id, game string) ([]entity.GamePartner, error) {
	return srv.partners.mutate(ctx, actor, service.CollectionActionUpdated, id,
		editPartner(id, func(p entity.GamePartner) entity.GamePartner { return p.RemoveGame(game) }))
}

func (srv *gamePartnerService) Reset(ctx context.Context, actor usecase.Actor) ([]entity.GamePartner, error) {
	return srv.partners.reset(ctx, actor)
}

// editPartner applies fn to the partner carrying id and reports a change only
// when the game list actually differs.
func editPartner(id string, fn func(entity.GamePartner) entity.GamePartner) mutation[entity.GamePartner] {
	return func(items []entity.GamePartner) ([]entity.GamePartner, bool) {
		current, ok := collection.Find(items, id)
		if !ok {
			return items, false
		}
		if slices.Equal(fn(current).Games, current.Games) {
			return items, false
		}

		return collection.Update(items, id, fn), true
	}
}
