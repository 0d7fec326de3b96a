package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"hive/internal/domain/collection"
	"hive/internal/domain/constants"
	"hive/internal/domain/entity"
	domainerrors "hive/internal/domain/errors"
	"hive/internal/domain/matching"
	"hive/internal/domain/repository"
	"hive/internal/domain/seed"
	"hive/internal/domain/service"
	"hive/internal/errors"
	"hive/internal/usecase"

	"go.uber.org/fx"
)

type rentalService struct {
	items         *sharedCollection[entity.RentItem]
	qrcodeService service.QRCodeService
}

// RentalServiceParams holds dependencies for RentalService, injected by Fx.
type RentalServiceParams struct {
	fx.In

	Items         repository.DocumentStore[[]entity.RentItem]
	Publisher     service.EventPublisher
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewRentalService creates the item rental board.
func NewRentalService(params RentalServiceParams) usecase.RentalUsecase {
	return &rentalService{
		items:         newSharedCollection(constants.KeyRentItems, params.Items, seed.RentItems, params.Publisher, params.Logger),
		qrcodeService: params.QRCodeService,
	}
}

func (srv *rentalService) List(ctx context.Context, filter matching.RentalFilter) ([]entity.RentItem, error) {
	items, err := srv.items.load(ctx)
	if err != nil {
		return nil, err
	}

	return matching.FilterRentals(items, filter), nil
}

func (srv *rentalService) Options() usecase.RentalOptions {
	return usecase.RentalOptions{
		Categories: slices.Clone(entity.RentCategories),
		Conditions: slices.Clone(entity.RentConditions),
		Durations:  slices.Clone(entity.RentDurations),
	}
}

func (srv *rentalService) AddItem(ctx context.Context, actor usecase.Actor, input *usecase.AddRentItemInput) ([]entity.RentItem, error) {
	item := entity.RentItem{
		ID:           entity.NewRecordID(),
		Name:         strings.TrimSpace(input.Name),
		OwnerID:      actor.ID(),
		OwnerName:    strings.TrimSpace(input.OwnerName),
		Category:     input.Category,
		Condition:    input.Condition,
		RentAmount:   input.RentAmount,
		RentDuration: input.RentDuration,
		Description:  input.Description,
		ImageURL:     input.ImageURL,
		Available:    true,
	}
	if item.ImageURL == "" {
		item.ImageURL = entity.DefaultRentImageURL
	}

	return srv.items.mutate(ctx, actor, service.CollectionActionAdded, item.ID, prepend(item))
}

func (srv *rentalService) RemoveItem(ctx context.Context, actor usecase.Actor, id string) ([]entity.RentItem, error) {
	return srv.items.mutate(ctx, actor, service.CollectionActionRemoved, id, removeByID[entity.RentItem](id))
}

func (srv *rentalService) ToggleAvailable(ctx context.Context, actor usecase.Actor, id string) ([]entity.RentItem, error) {
	return srv.items.mutate(ctx, actor, service.CollectionActionUpdated, id,
		toggleByID[entity.RentItem](id, entity.RentFieldAvailable))
}

func (srv *rentalService) ListingQRCode(ctx context.Context, id string) ([]byte, error) {
	items, err := srv.items.load(ctx)
	if err != nil {
		return nil, err
	}

	if _, ok := collection.Find(items, id); !ok {
		return nil, errors.Wrapf(domainerrors.ErrNotFound, "rental listing %s not found", id)
	}

	png, err := srv.qrcodeService.GenerateListingQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate listing QR code")
	}

	return png, nil
}

func (srv *rentalService) Reset(ctx context.Context, actor usecase.Actor) ([]entity.RentItem, error) {
	return srv.items.reset(ctx, actor)
}
