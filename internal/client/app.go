// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package client

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cardstream/decksync/internal/config"
	"github.com/cardstream/decksync/internal/logger"
	"github.com/cardstream/decksync/internal/service"
	"github.com/cardstream/decksync/internal/workers"
)

// App is the headless sync client: the scheduler keeps every configured deck
// in step until the process receives SIGINT or SIGTERM.
type App struct {
	services *service.Services
	workers  *workers.Workers
	decks    []string
	logger   *logger.Logger
}

func NewApp(services *service.Services, cfg config.Sync, log *logger.Logger) (*App, error) {
	return &App{
		services: services,
		workers:  workers.New(services.Scheduler),
		decks:    cfg.Decks,
		logger:   log,
	}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.workers.Run(ctx)

	for _, deckID := range a.decks {
		a.services.Scheduler.Schedule(deckID)
		a.logger.WithDeck(deckID).Info().Msg("deck scheduled")
	}

	<-ctx.Done()
	a.logger.Info().Msg("shutting down, waiting for in-flight cycles")
	a.workers.Stop()
	return nil
}
