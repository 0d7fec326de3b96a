// Command hiveworker records collection change events into the activity
// feed. Events arrive as Pub/Sub pushes on /push or from a NATS queue group.
package main

import (
	"context"

	"hive/config"
	"hive/internal/delivery"
	"hive/internal/delivery/worker"
	"hive/internal/delivery/worker/handler"
	"hive/internal/domain/constants"
	"hive/internal/domain/entity"
	logs "hive/internal/infra/log"
	"hive/internal/infra/persistence/document"
	"hive/internal/infra/persistence/postgres"
	"hive/internal/infra/persistence/store"
	"hive/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			storeDB,
			store.NewKVStore,
			document.New[[]entity.Activity],
			impl.NewActivityService,
			handler.NewPushHandler,
			delivery.AsDelivery(worker.NewServer),
			delivery.AsDelivery(worker.NewNATSConsumer),
		),
		fx.Invoke(delivery.Run),
	).Run()
}

// storeDB opens PostgreSQL only when the feed lives there. The worker never
// touches the identity tables.
func storeDB(params postgres.Params) (*gorm.DB, error) {
	if params.Config.Store == nil || params.Config.Store.Driver != constants.StoreDriverPostgres {
		return nil, nil //nolint:nilnil
	}

	return postgres.New(params)
}
