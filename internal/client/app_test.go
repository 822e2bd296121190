package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mainLoopResult struct {
	logout bool
	err    error
}

// scriptedUI replays sign-in and vault screen outcomes in order.
type scriptedUI struct {
	signIns   []error
	mainLoops []mainLoopResult
	sessions  []*service.Session
}

func (u *scriptedUI) SignInFlow(context.Context) (*service.Session, error) {
	err := u.signIns[0]
	u.signIns = u.signIns[1:]
	if err != nil {
		return nil, err
	}
	return &service.Session{}, nil
}

func (u *scriptedUI) MainLoop(_ context.Context, s *service.Session) (bool, error) {
	u.sessions = append(u.sessions, s)
	res := u.mainLoops[0]
	u.mainLoops = u.mainLoops[1:]
	return res.logout, res.err
}

type countingCloser struct {
	signOuts int
}

func (c *countingCloser) SignOut() { c.signOuts++ }

func TestNewApp(t *testing.T) {
	_, err := NewApp(nil, &scriptedUI{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&countingCloser{}, nil, logger.Nop())
	assert.Error(t, err)

	app, err := NewApp(&countingCloser{}, &scriptedUI{}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, app)
}

func TestApp_Run(t *testing.T) {
	boom := errors.New("terminal gone")

	tests := []struct {
		name         string
		ui           *scriptedUI
		wantErr      error
		wantSessions int
		wantSignOuts int
	}{
		{
			name:    "quit on the menu",
			ui:      &scriptedUI{signIns: []error{tui.ErrUserQuit}},
			wantErr: nil,
		},
		{
			name: "quit from the vault screen",
			ui: &scriptedUI{
				signIns:   []error{nil},
				mainLoops: []mainLoopResult{{logout: false}},
			},
			wantSessions: 1,
			wantSignOuts: 1,
		},
		{
			name: "sign out then quit on the menu",
			ui: &scriptedUI{
				signIns:   []error{nil, nil, tui.ErrUserQuit},
				mainLoops: []mainLoopResult{{logout: true}, {logout: true}},
			},
			wantSessions: 2,
			wantSignOuts: 2,
		},
		{
			name:    "sign-in flow failure",
			ui:      &scriptedUI{signIns: []error{boom}},
			wantErr: boom,
		},
		{
			name: "vault screen failure still signs out",
			ui: &scriptedUI{
				signIns:   []error{nil},
				mainLoops: []mainLoopResult{{err: boom}},
			},
			wantErr:      boom,
			wantSessions: 1,
			wantSignOuts: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			closer := &countingCloser{}
			app, err := NewApp(closer, tt.ui, logger.Nop())
			require.NoError(t, err)

			err = app.Run(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, tt.ui.sessions, tt.wantSessions)
			assert.Equal(t, tt.wantSignOuts, closer.signOuts)
		})
	}
}
