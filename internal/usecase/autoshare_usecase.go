package usecase

import (
	"context"

	"hive/internal/domain/entity"
	"hive/internal/domain/matching"
)

// AddAutoShareInput defines a new shared ride.
type AddAutoShareInput struct {
	UserName       string   `json:"userName" validate:"required"`
	StartLocation  string   `json:"startLocation" validate:"required"`
	Destination    string   `json:"destination" validate:"required"`
	DepartureTime  string   `json:"departureTime" validate:"required,hhmm"`
	ReturnTime     string   `json:"returnTime" validate:"omitempty,hhmm"`
	VehicleType    string   `json:"vehicleType" validate:"required"`
	SeatsAvailable int      `json:"seatsAvailable" validate:"gte=0,lte=8"`
	Days           []string `json:"days" validate:"min=1,dive,weekday"`
	Notes          string   `json:"notes"`
}

// AutoShareOptions lists the choices offered by the ride form.
type AutoShareOptions struct {
	Days         []string `json:"days"`
	VehicleTypes []string `json:"vehicleTypes"`
}

// AutoShareUsecase defines ride sharing.
type AutoShareUsecase interface {
	List(ctx context.Context, filter matching.AutoShareFilter) ([]entity.AutoShare, error)
	Options() AutoShareOptions
	AddShare(ctx context.Context, actor Actor, input *AddAutoShareInput) ([]entity.AutoShare, error)
	RemoveShare(ctx context.Context, actor Actor, id string) ([]entity.AutoShare, error)
	Reset(ctx context.Context, actor Actor) ([]entity.AutoShare, error)
}
