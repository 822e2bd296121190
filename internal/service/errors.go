package service

import (
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrWrongPassword    = errors.New("wrong password")
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrNoMatches is returned when no credential carries the requested service name.
	ErrNoMatches = errors.New("no credentials match the service name")

	// ErrNoActiveSession is returned for a nil, signed-out or foreign session.
	ErrNoActiveSession = errors.New("no active session")
	// ErrSessionActive is returned by SignIn while another session is open.
	ErrSessionActive = errors.New("a session is already active")
	// ErrAccountGone means the session's account no longer exists in the store.
	ErrAccountGone = errors.New("account no longer exists")
)

// StatusOf maps an error returned by [VaultService] to its status. Cancellation
// is not an error and is reported by the operations directly.
func StatusOf(err error) models.Status {
	switch {
	case err == nil:
		return models.StatusSuccess
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrWrongPassword),
		errors.Is(err, ErrInvalidSelection):
		return models.StatusInvalidInput
	case errors.Is(err, store.ErrUsernameTaken),
		errors.Is(err, ErrSessionActive),
		errors.Is(err, ErrAccountGone):
		return models.StatusConflict
	case errors.Is(err, store.ErrAccountNotFound),
		errors.Is(err, store.ErrCredentialNotFound),
		errors.Is(err, ErrNoMatches):
		return models.StatusNotFound
	default:
		return models.StatusError
	}
}
