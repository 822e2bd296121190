package tui

import (
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

// NavigateTo asks [RootModel] to switch the active page. Payload, when set,
// is delivered to the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload any
}

// SignInResult is produced by the sign-in command. A non-nil Session ends
// the sign-in flow.
type SignInResult struct {
	Session  *service.Session
	Status   models.Status
	Err      error
	Username string
}

// RegisterResult is produced by the account creation command.
type RegisterResult struct {
	Status   models.Status
	Err      error
	Username string
}

// RegisterSuccessNotice is delivered to the sign-in page after an account
// was created so the username can be prefilled.
type RegisterSuccessNotice struct {
	Username string
}

// SignInLockedNotice is delivered to the menu once the sign-in attempts are
// exhausted.
type SignInLockedNotice struct {
	Attempts int
}

type listLoadedMsg struct {
	items []models.CredentialView
	err   error
}

type matchesLoadedMsg struct {
	purpose     pickPurpose
	serviceName string
	matches     []models.CredentialView
	err         error
}

type itemSavedMsg struct {
	status models.Status
	err    error
}

type itemViewedMsg struct {
	view   models.CredentialView
	status models.Status
	err    error
}

type itemDeletedMsg struct {
	status models.Status
	err    error
}

type accountRenamedMsg struct {
	username string
	status   models.Status
	err      error
}

type accountRemovedMsg struct {
	status models.Status
	err    error
}

type copiedMsg struct {
	secret string
	err    error
}

type clipboardExpiredMsg struct {
	secret string
}

type clipboardWipedMsg struct {
	wiped bool
}

type clearStatusMsg struct{}
