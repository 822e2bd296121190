// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/service"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by [App].
type UI interface {
	// SignInFlow blocks until the user signs in. It returns tui.ErrUserQuit
	// when the user leaves instead.
	SignInFlow(ctx context.Context) (*service.Session, error)
	// MainLoop runs the vault screen for an open session. logout reports
	// whether the user wants to sign in again.
	MainLoop(ctx context.Context, s *service.Session) (logout bool, err error)
}

// SessionCloser ends the active vault session.
type SessionCloser interface {
	SignOut()
}
