// Command admin runs maintenance tasks against the dashboard's database.
package main

import (
	"context"
	"os"

	"github.com/jeongjingoo/tech/bootstrap"
	"github.com/jeongjingoo/tech/config"
	"github.com/jeongjingoo/tech/database"
	"github.com/jeongjingoo/tech/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.New("info", "text").WithError(err).Fatal("invalid configuration")
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	cli := &commandLine{log: log, out: os.Stdout}
	cli.open = func(ctx context.Context) (func(), error) {
		stores, closeFn, err := bootstrap.OpenStores(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		cli.stores = stores
		if cfg.DBDriver == config.DriverMongo {
			cli.ensureIndexes = func(ctx context.Context) error {
				db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
				if err != nil {
					return err
				}
				return bootstrap.EnsureIndexes(ctx, db)
			}
		}
		return closeFn, nil
	}

	if err := cli.rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
