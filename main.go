// @title TechCenter API
// @version 1.0
// @description School, technician, maintenance vendor, Q&A and calendar management.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jeongjingoo/tech/bootstrap"
	"github.com/jeongjingoo/tech/config"
	"github.com/jeongjingoo/tech/internal/server"
	"github.com/jeongjingoo/tech/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.New("info", "text").WithError(err).Fatal("invalid configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	if cfg.UsesDevSecret() {
		log.Warn("JWT_SECRET not set, using the development signing key")
	}

	// Connect to the database
	stores, closeStores, err := bootstrap.OpenStores(context.Background(), cfg, log)
	if err != nil {
		log.WithError(err).Fatal("storage unavailable")
	}
	defer closeStores()

	app := server.New(server.Options{Config: cfg, Logger: log, Stores: stores})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Warn("shutdown")
		}
	}()

	// RUN SERVER
	log.WithField("port", cfg.Port).Info("listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Error("server stopped")
	}
}
