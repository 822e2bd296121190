package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	vault     service.VaultService
	cfg       config.App
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	// programOptions are appended to every tea.NewProgram call.
	programOptions []tea.ProgramOption
}

func New(vault service.VaultService, cfg config.App, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if vault == nil {
		return nil, errors.New("tui: vault service is nil")
	}
	return &TUI{
		vault:          vault,
		cfg:            cfg,
		buildInfo:      buildInfo,
		logger:         log,
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}, nil
}

// SignInFlow runs the start menu until the user signs in or leaves. It
// returns [ErrUserQuit] when the user chose to exit.
func (t *TUI) SignInFlow(ctx context.Context) (*service.Session, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.vault, t.cfg.MaxSignInAttempts),
		pageRegister: NewRegisterModel(ctx, t.vault),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, runErr := t.newProgram(ctx, root).Run()
	if runErr != nil {
		return nil, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if result.quitByUser || result.session == nil {
		return nil, ErrUserQuit
	}

	return result.session, nil
}

// MainLoop runs the vault screen for s. logout is true when the user signed
// out or deleted the account and expects the sign-in flow again.
func (t *TUI) MainLoop(ctx context.Context, s *service.Session) (logout bool, err error) {
	model := newVaultModel(ctx, t.vault, s, t.cfg)
	finalModel, runErr := t.newProgram(ctx, model).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(vaultModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}

	// The expiry tick dies with the program.
	if wipeClipboard(result.clipboardSecret) {
		t.logger.Debug().Str("func", "*TUI.MainLoop").Msg("clipboard cleared on exit")
	}

	return result.logout, nil
}

func (t *TUI) newProgram(ctx context.Context, model tea.Model) *tea.Program {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)
	return tea.NewProgram(model, opts...)
}
