// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// humanizeError turns a vault outcome into a message fit for the screen.
// Store and crypto causes are never shown verbatim: they may carry SQL or
// file paths the user cannot act upon.
func humanizeError(status models.Status, err error) string {
	switch status {
	case models.StatusSuccess:
		return ""
	case models.StatusCancelled:
		return app.MsgCancelled
	case models.StatusInvalidInput:
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			return app.MsgInvalidLoginPassword
		case errors.Is(err, service.ErrInvalidSelection):
			return strings.TrimPrefix(err.Error(), service.ErrInvalidSelection.Error()+": ")
		case err != nil:
			return strings.TrimPrefix(err.Error(), service.ErrInvalidInput.Error()+": ")
		}
		return app.MsgInvalidDataProvided
	case models.StatusConflict:
		switch {
		case errors.Is(err, store.ErrUsernameTaken):
			return app.MsgUsernameAlreadyExists
		case errors.Is(err, service.ErrSessionActive):
			return app.MsgSessionActive
		case errors.Is(err, service.ErrAccountGone):
			return app.MsgAccountGone
		}
		return app.MsgInternalError
	case models.StatusNotFound:
		if errors.Is(err, service.ErrNoMatches) {
			return app.MsgNoMatches
		}
		return app.MsgAccountNotFound
	case models.StatusError:
		switch {
		case errors.Is(err, crypto.ErrIntegrity):
			return app.MsgIntegrityFailure
		case errors.Is(err, service.ErrNoActiveSession):
			return app.MsgNoActiveSession
		}
		return app.MsgInternalError
	}

	return app.MsgInternalError
}

// describeErr is humanizeError for operations that report only an error.
func describeErr(err error) string {
	return humanizeError(service.StatusOf(err), err)
}
