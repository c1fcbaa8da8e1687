package bootstrap

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/jeongjingoo/tech/config"
	"github.com/jeongjingoo/tech/database"
	"github.com/jeongjingoo/tech/internal/repository"
	"github.com/jeongjingoo/tech/internal/repository/memory"
)

// OpenStores selects the storage backend from cfg. The returned func
// releases the backend and is always safe to call.
func OpenStores(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (repository.Stores, func(), error) {
	if cfg.DBDriver == config.DriverMemory {
		log.Warn("using in-memory storage, data is lost on restart")
		return memory.NewStores(), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.DBTimeout)
	defer cancel()

	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return repository.Stores{}, func() {}, err
	}
	closeFn := func() {
		if err := database.Disconnect(context.Background()); err != nil {
			log.WithError(err).Warn("mongo disconnect")
		}
	}

	if err := EnsureIndexes(ctx, db); err != nil {
		closeFn()
		return repository.Stores{}, func() {}, err
	}
	log.WithField("database", cfg.MongoDB).Info("connected to MongoDB")
	return repository.NewMongoStores(db), closeFn, nil
}
