// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"

	"github.com/medinventory/medinv/internal/adapter"
	"github.com/medinventory/medinv/internal/config"
	"github.com/medinventory/medinv/internal/logger"
	"github.com/medinventory/medinv/internal/service"
	"github.com/medinventory/medinv/internal/store"
	"github.com/medinventory/medinv/internal/tui"
)

// App holds the fully wired client.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

// NewApp assembles the client: transport adapter, local session storage,
// services, and the terminal UI.
//
// The adapter needs a teardown hook for unauthorized responses, but the
// session service that performs the teardown is built on top of the adapter.
// The hook is therefore bound late, through a captured variable filled in
// once the services exist; the adapter never fires it during construction.
func NewApp(cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	var sessionInvalidate func()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, func() {
		if sessionInvalidate != nil {
			sessionInvalidate()
		}
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	localStore, err := store.NewClientStorages(cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	services := service.NewClientServices(localStore, serverAdapter, cfg.App, logger)
	sessionInvalidate = func() {
		services.SessionService.Invalidate()
	}

	ui := tui.New(services, logger)

	return &App{services: services, tui: ui, logger: logger}, nil
}

// Run starts the terminal UI and blocks until the user quits.
func (a *App) Run() error {
	a.logger.Info().Msg("starting client application")
	return a.tui.Run(context.Background())
}
