package usecase

import (
	"context"

	"hive/internal/domain/entity"
	"hive/internal/domain/matching"
)

// AddCartItemInput defines a new shopping list line.
type AddCartItemInput struct {
	Name     string  `json:"name" validate:"required"`
	Quantity int     `json:"quantity" validate:"gte=1"`
	Price    float64 `json:"price" validate:"gte=0"`
	AddedBy  string  `json:"addedBy" validate:"required"`
}

// CartView is the shopping list as shown: the selected lines, the summary of
// the whole list and the total of the selection.
type CartView struct {
	Items         []entity.CartItem    `json:"items"`
	Summary       matching.CartSummary `json:"summary"`
	FilteredTotal float64              `json:"filteredTotal"`
}

// CartUsecase defines the shared shopping cart.
type CartUsecase interface {
	List(ctx context.Context, filter matching.CartFilter) (*CartView, error)
	AddItem(ctx context.Context, actor Actor, input *AddCartItemInput) (*CartView, error)
	RemoveItem(ctx context.Context, actor Actor, id string) (*CartView, error)
	ToggleCompleted(ctx context.Context, actor Actor, id string) (*CartView, error)
	ClearCompleted(ctx context.Context, actor Actor) (*CartView, error)
	Reset(ctx context.Context, actor Actor) (*CartView, error)
}
