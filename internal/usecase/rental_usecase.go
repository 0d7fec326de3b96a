package usecase

import (
	"context"

	"hive/internal/domain/entity"
	"hive/internal/domain/matching"
)

// AddRentItemInput defines a new rental listing.
type AddRentItemInput struct {
	Name         string  `json:"name" validate:"required"`
	OwnerName    string  `json:"ownerName" validate:"required"`
	Category     string  `json:"category" validate:"required"`
	Condition    string  `json:"condition"`
	RentAmount   float64 `json:"rentAmount" validate:"gte=0"`
	RentDuration string  `json:"rentDuration"`
	Description  string  `json:"description"`
	ImageURL     string  `json:"imageUrl" validate:"omitempty,url"`
}

// RentalOptions lists the choices offered by the listing form.
type RentalOptions struct {
	Categories []string `json:"categories"`
	Conditions []string `json:"conditions"`
	Durations  []string `json:"durations"`
}

// RentalUsecase defines the item rental board.
type RentalUsecase interface {
	List(ctx context.Context, filter matching.RentalFilter) ([]entity.RentItem, error)
	Options() RentalOptions
	AddItem(ctx context.Context, actor Actor, input *AddRentItemInput) ([]entity.RentItem, error)
	RemoveItem(ctx context.Context, actor Actor, id string) ([]entity.RentItem, error)

	// ToggleAvailable rents out or returns the item.
	ToggleAvailable(ctx context.Context, actor Actor, id string) ([]entity.RentItem, error)

	// ListingQRCode renders a PNG share code for an existing listing.
	ListingQRCode(ctx context.Context, id string) ([]byte, error)

	Reset(ctx context.Context, actor Actor) ([]entity.RentItem, error)
}
