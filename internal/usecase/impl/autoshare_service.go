package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"hive/internal/domain/constants"
	"hive/internal/domain/entity"
	"hive/internal/domain/matching"
	"hive/internal/domain/repository"
	"hive/internal/domain/seed"
	"hive/internal/domain/service"
	"hive/internal/usecase"

	"go.uber.org/fx"
)

type autoShareService struct {
	shares *sharedCollection[entity.AutoShare]
}

// AutoShareServiceParams holds dependencies for AutoShareService, injected by Fx.
type AutoShareServiceParams struct {
	fx.In

	Shares    repository.DocumentStore[[]entity.AutoShare]
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewAutoShareService creates the ride sharing board.
func NewAutoShareService(params AutoShareServiceParams) usecase.AutoShareUsecase {
	return &autoShareService{
		shares: newSharedCollection(constants.KeyAutoShares, params.Shares, seed.AutoShares, params.Publisher, params.Logger),
	}
}

func (srv *autoShareService) List(ctx context.Context, filter matching.AutoShareFilter) ([]entity.AutoShare, error) {
	shares, err := srv.shares.load(ctx)
	if err != nil {
		return nil, err
	}

	return matching.FilterAutoShares(shares, filter), nil
}

func (srv *autoShareService) Options() usecase.AutoShareOptions {
	return usecase.AutoShareOptions{
		Days:         slices.Clone(entity.Weekdays),
		VehicleTypes: slices.Clone(entity.VehicleTypes),
	}
}

func (srv *autoShareService) AddShare(ctx context.Context, actor usecase.Actor, input *usecase.AddAutoShareInput) ([]entity.AutoShare, error) {
	share := entity.AutoShare{
		ID:             entity.NewRecordID(),
		UserID:         actor.ID(),
		UserName:       strings.TrimSpace(input.UserName),
		StartLocation:  strings.TrimSpace(input.StartLocation),
		Destination:    strings.TrimSpace(input.Destination),
		DepartureTime:  input.DepartureTime,
		ReturnTime:     input.ReturnTime,
		VehicleType:    input.VehicleType,
		SeatsAvailable: input.SeatsAvailable,
		Days:           orderedDays(input.Days),
		Notes:          input.Notes,
	}
	// Seats only mean something for cars.
	if !share.OffersSeats() {
		share.SeatsAvailable = 0
	}

	return srv.shares.mutate(ctx, actor, service.CollectionActionAdded, share.ID, prepend(share))
}

func (srv *autoShareService) RemoveShare(ctx context.Context, actor usecase.Actor, id string) ([]entity.AutoShare, error) {
	return srv.shares.mutate(ctx, actor, service.CollectionActionRemoved, id, removeByID[entity.AutoShare](id))
}

func (srv *autoShareService) Reset(ctx context.Context, actor usecase.Actor) ([]entity.AutoShare, error) {
	return srv.shares.reset(ctx, actor)
}

// orderedDays removes duplicates and sorts days Monday first.
func orderedDays(days []string) []string {
	out := make([]string, 0, len(days))
	for _, day := range entity.Weekdays {
		if slices.Contains(days, day) {
			out = append(out, day)
		}
	}

	return out
}
