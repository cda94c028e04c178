// Package tui implements the terminal user interface of the client.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/medinventory/medinv/internal/logger"
	"github.com/medinventory/medinv/internal/service"
)

// TUI wraps the Bubble Tea program around the client services.
type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) *TUI {
	return &TUI{services: services, logger: logger}
}

// Run starts the interface and blocks until the user quits or the context is
// cancelled. Session changes published by the session service are forwarded
// into the program as messages, so an unauthorized teardown happening on any
// request redirects the interface from wherever it is.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.services.SessionService.Subscribe(func(state service.SessionState) {
		go program.Send(sessionChangedMsg{state: state})
	})

	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}

	if m, ok := finalModel.(appModel); ok && m.err != nil && !errors.Is(m.err, ErrUserQuit) {
		return m.err
	}

	t.logger.Info().Msg("client interface stopped")
	return nil
}
