package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
)

// App alternates between the sign-in flow and the vault screen until the
// user quits.
type App struct {
	vault  SessionCloser
	ui     UI
	logger *logger.Logger
}

func NewApp(vault SessionCloser, ui UI, log *logger.Logger) (*App, error) {
	if vault == nil || ui == nil {
		return nil, errors.New("client: vault and ui are required")
	}
	return &App{vault: vault, ui: ui, logger: log}, nil
}

func (a *App) Run(ctx context.Context) error {
	for {
		session, err := a.ui.SignInFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Str("func", "*App.Run").Msg("user quit")
			return nil
		}
		if err != nil {
			return fmt.Errorf("sign in: %w", err)
		}

		a.logger.Info().Str("func", "*App.Run").Str("session_id", session.ID()).Msg("signed in")

		logout, err := a.ui.MainLoop(ctx, session)
		// The session ends with the vault screen whatever the reason.
		a.vault.SignOut()
		if err != nil {
			return fmt.Errorf("vault screen: %w", err)
		}
		if !logout {
			return nil
		}

		a.logger.Info().Str("func", "*App.Run").Msg("signed out")
	}
}
