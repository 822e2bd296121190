package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultService is the credential vault: account lifecycle, the single active
// session and encrypted credential records. Every mutating operation reports
// a [models.Status]; the accompanying error carries the cause and maps to the
// same status through [StatusOf].
type VaultService interface {
	CreateAccount(ctx context.Context, username, password string) (models.Status, error)

	// SignIn unlocks the account and opens the session. A wrong password is
	// StatusInvalidInput, an unknown username StatusNotFound and a second
	// sign-in while a session is open StatusConflict.
	SignIn(ctx context.Context, username, password string) (*Session, models.Status, error)
	// SignOut closes the active session and zeroes its key. Safe to call
	// without an active session.
	SignOut()
	// VerifyMasterPassword reports whether password unlocks account. It has
	// no side effects.
	VerifyMasterPassword(account models.Account, password string) bool

	AddCredential(ctx context.Context, s *Session, serviceName string, loginIdentifier *string, secret string) (models.Status, error)
	// ListCredentials returns every record of the session's account in
	// insertion order. A record that fails to decrypt carries its error in
	// CredentialView.Err and does not abort the listing.
	ListCredentials(ctx context.Context, s *Session) ([]models.CredentialView, error)
	FindCredentialsByService(ctx context.Context, s *Session, serviceName string) ([]models.CredentialView, error)
	// ViewCredential decrypts the single record named serviceName, asking
	// pick to choose when several match.
	ViewCredential(ctx context.Context, s *Session, serviceName string, pick Picker) (models.CredentialView, models.Status, error)
	RemoveCredential(ctx context.Context, s *Session, serviceName string, pick Picker) (models.Status, error)

	// RemoveAccount deletes the account with all its credentials and ends the session.
	RemoveAccount(ctx context.Context, s *Session) (models.Status, error)
	RenameAccount(ctx context.Context, s *Session, newUsername string) (models.Status, error)
}
