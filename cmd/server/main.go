package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/billigi/lending-api/internal/app"
	"github.com/billigi/lending-api/internal/pkg/config"
	"github.com/billigi/lending-api/pkg/logger"

	_ "github.com/billigi/lending-api/docs" // Swagger docs
)

// @title Billigi Lending API
// @version 1.0
// @description Campus lending board: lend or borrow items and report lost or found belongings.

// @BasePath /
// @schemes http https

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name billigi.sid

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg := config.MustLoad()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "billigi-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger.Component("app"))
	if err != nil {
		log.Error().Err(err).Msg("failed to start")
		return err
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped")
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
