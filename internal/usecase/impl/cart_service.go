package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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

type cartService struct {
	items *sharedCollection[entity.CartItem]
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	Items     repository.DocumentStore[[]entity.CartItem]
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewCartService creates the shared shopping cart.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		items: newSharedCollection(constants.KeyCartItems, params.Items, seed.CartItems, params.Publisher, params.Logger),
	}
}

func (srv *cartService) List(ctx context.Context, filter matching.CartFilter) (*usecase.CartView, error) {
	items, err := srv.items.load(ctx)
	if err != nil {
		return nil, err
	}

	return newCartView(items, filter), nil
}

func (srv *cartService) AddItem(ctx context.Context, actor usecase.Actor, input *usecase.AddCartItemInput) (*usecase.CartView, error) {
	item := entity.CartItem{
		ID:       entity.NewRecordID(),
		Name:     strings.TrimSpace(input.Name),
		Quantity: input.Quantity,
		Price:    input.Price,
		AddedBy:  strings.TrimSpace(input.AddedBy),
		AddedOn:  time.Now().UTC(),
	}

	return srv.view(srv.items.mutate(ctx, actor, service.CollectionActionAdded, item.ID, prepend(item)))
}

func (srv *cartService) RemoveItem(ctx context.Context, actor usecase.Actor, id string) (*usecase.CartView, error) {
	return srv.view(srv.items.mutate(ctx, actor, service.CollectionActionRemoved, id, removeByID[entity.CartItem](id)))
}

func (srv *cartService) ToggleCompleted(ctx context.Context, actor usecase.Actor, id string) (*usecase.CartView, error) {
	return srv.view(srv.items.mutate(ctx, actor, service.CollectionActionUpdated, id,
		toggleByID[entity.CartItem](id, entity.CartFieldCompleted)))
}

func (srv *cartService) ClearCompleted(ctx context.Context, actor usecase.Actor) (*usecase.CartView, error) {
	return srv.view(srv.items.mutate(ctx, actor, service.CollectionActionCleared, "", clearCompleted))
}

func (srv *cartService) Reset(ctx context.Context, actor usecase.Actor) (*usecase.CartView, error) {
	return srv.view(srv.items.reset(ctx, actor))
}

func (srv *cartService) view(items []entity.CartItem, err error) (*usecase.CartView, error) {
	if err != nil {
		return nil, err
	}

	return newCartView(items, matching.CartFilter{}), nil
}

func clearCompleted(items []entity.CartItem) ([]entity.CartItem, bool) {
	next := collection.ClearWhere(items, func(item entity.CartItem) bool {
		return item.Completed
	})

	return next, len(next) != len(items)
}

func newCartView(items []entity.CartItem, filter matching.CartFilter) *usecase.CartView {
	selected := matching.FilterCart(items, filter)

	return &usecase.CartView{
		Items:         selected,
		Summary:       matching.SummarizeCart(items),
		FilteredTotal: matching.CartTotal(selected),
	}
}
