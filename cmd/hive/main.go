// Command hive serves the community hub API.
package main

import (
	"context"

	"hive/config"
	"hive/internal/delivery"
	"hive/internal/delivery/api"
	"hive/internal/delivery/api/middleware"
	"hive/internal/delivery/api/router/handler"
	"hive/internal/domain/entity"
	"hive/internal/infra/auth"
	"hive/internal/infra/events"
	logs "hive/internal/infra/log"
	"hive/internal/infra/mail"
	"hive/internal/infra/persistence/document"
	"hive/internal/infra/persistence/postgres"
	"hive/internal/infra/persistence/store"
	"hive/internal/infra/pubsub"
	"hive/internal/infra/qrcode"
	"hive/internal/infra/validation"
	"hive/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		platform,
		identity,
		collections,
		httpAPI,
		fx.Invoke(delivery.Run),
	).Run()
}

//nolint:gochecknoglobals
var platform = fx.Provide(
	config.New,
	logs.New,
	context.Background,
	validation.New,
	postgres.New,
	store.NewKVStore,
)

// Accounts, sessions and the auth event stream.
//
//nolint:gochecknoglobals
var identity = fx.Options(
	fx.Provide(
		postgres.NewUserRepository,
		postgres.NewAuthRepository,
		postgres.NewRefreshTokenRepository,
		postgres.NewTransactionManager,
		auth.NewBcryptHasher,
		auth.NewJWTService,
		events.NewAuthNotifier,
		mail.NewMailer,
		impl.NewAccountService,
	),
)

// The shared collections, each in its own typed document, and the feed
// their change events end up in.
//
//nolint:gochecknoglobals
var collections = fx.Options(
	pubsub.Module,
	fx.Provide(
		qrcode.FromConfig,
		document.New[[]entity.RoommateCandidate],
		document.New[entity.RoommateSeekerProfile],
		document.New[[]entity.CartItem],
		document.New[[]entity.RentItem],
		document.New[[]entity.AutoShare],
		document.New[[]entity.GamePartner],
		document.New[[]entity.Activity],
		impl.NewRoommateService,
		impl.NewCartService,
		impl.NewRentalService,
		impl.NewAutoShareService,
		impl.NewGamePartnerService,
		impl.NewActivityService,
	),
)

//nolint:gochecknoglobals
var httpAPI = fx.Provide(
	middleware.NewAuthMiddleware,
	middleware.NewErrorMiddleware,
	handler.NewEventHub,
	handler.NewAccountHandler,
	handler.NewRoommateHandler,
	handler.NewCartHandler,
	handler.NewRentalHandler,
	handler.NewRideHandler,
	handler.NewGamePartnerHandler,
	handler.NewActivityHandler,
	delivery.AsDelivery(api.NewServer),
)
