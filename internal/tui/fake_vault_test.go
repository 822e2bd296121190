package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

// fakeVault is a hand-rolled service.VaultService. Each hook is optional;
// calls without a hook succeed with zero values.
type fakeVault struct {
	mu    sync.Mutex
	calls []string

	createAccount  func(username, password string) (models.Status, error)
	signIn         func(username, password string) (*service.Session, models.Status, error)
	listCreds      func() ([]models.CredentialView, error)
	findCreds      func(serviceName string) ([]models.CredentialView, error)
	addCredential  func(serviceName string, login *string, secret string) (models.Status, error)
	viewCredential func(serviceName string, pick service.Picker) (models.CredentialView, models.Status, error)
	removeCred     func(serviceName string, pick service.Picker) (models.Status, error)
	removeAccount  func() (models.Status, error)
	renameAccount  func(newUsername string) (models.Status, error)
}

var _ service.VaultService = (*fakeVault)(nil)

func (f *fakeVault) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeVault) called() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeVault) CreateAccount(_ context.Context, username, password string) (models.Status, error) {
	f.record("CreateAccount")
	if f.createAccount != nil {
		return f.createAccount(username, password)
	}
	return models.StatusSuccess, nil
}

func (f *fakeVault) SignIn(_ context.Context, username, password string) (*service.Session, models.Status, error) {
	f.record("SignIn")
	if f.signIn != nil {
		return f.signIn(username, password)
	}
	return &service.Session{}, models.StatusSuccess, nil
}

func (f *fakeVault) SignOut() {
	f.record("SignOut")
}

func (f *fakeVault) VerifyMasterPassword(models.Account, string) bool {
	f.record("VerifyMasterPassword")
	return false
}

func (f *fakeVault) AddCredential(_ context.Context, _ *service.Session, serviceName string, loginIdentifier *string, secret string) (models.Status, error) {
	f.record("AddCredential")
	if f.addCredential != nil {
		return f.addCredential(serviceName, loginIdentifier, secret)
	}
	return models.StatusSuccess, nil
}

func (f *fakeVault) ListCredentials(context.Context, *service.Session) ([]models.CredentialView, error) {
	f.record("ListCredentials")
	if f.listCreds != nil {
		return f.listCreds()
	}
	return []models.CredentialView{}, nil
}

func (f *fakeVault) FindCredentialsByService(_ context.Context, _ *service.Session, serviceName string) ([]models.CredentialView, error) {
	f.record("FindCredentialsByService")
	if f.findCreds != nil {
		return f.findCreds(serviceName)
	}
	return []models.CredentialView{}, nil
}

func (f *fakeVault) ViewCredential(_ context.Context, _ *service.Session, serviceName string, pick service.Picker) (models.CredentialView, models.Status, error) {
	f.record("ViewCredential")
	if f.viewCredential != nil {
		return f.viewCredential(serviceName, pick)
	}
	return models.CredentialView{}, models.StatusSuccess, nil
}

func (f *fakeVault) RemoveCredential(_ context.Context, _ *service.Session, serviceName string, pick service.Picker) (models.Status, error) {
	f.record("RemoveCredential")
	if f.removeCred != nil {
		return f.removeCred(serviceName, pick)
	}
	return models.StatusSuccess, nil
}

func (f *fakeVault) RemoveAccount(context.Context, *service.Session) (models.Status, error) {
	f.record("RemoveAccount")
	if f.removeAccount != nil {
		return f.removeAccount()
	}
	return models.StatusSuccess, nil
}

func (f *fakeVault) RenameAccount(_ context.Context, _ *service.Session, newUsername string) (models.Status, error) {
	f.record("RenameAccount")
	if f.renameAccount != nil {
		return f.renameAccount(newUsername)
	}
	return models.StatusSuccess, nil
}

func strPtr(s string) *string { return &s }
