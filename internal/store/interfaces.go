package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// AccountRepository persists vault accounts.
type AccountRepository interface {
	// CreateAccount inserts the account and returns it with the assigned ID.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindAccountByUsername(ctx context.Context, username string) (models.Account, error)
	UpdateUsername(ctx context.Context, accountID int64, newUsername string) error
	// DeleteAccount removes the account and all of its credentials in one transaction.
	DeleteAccount(ctx context.Context, accountID int64) error
}

// CredentialRepository persists encrypted credential records. Lists are
// ordered by insertion.
type CredentialRepository interface {
	SaveCredential(ctx context.Context, record models.CredentialRecord) (models.CredentialRecord, error)
	GetCredentialsByAccount(ctx context.Context, accountID int64) ([]models.CredentialRecord, error)
	GetCredentialsByService(ctx context.Context, accountID int64, serviceName string) ([]models.CredentialRecord, error)
	DeleteCredential(ctx context.Context, accountID, credentialID int64) error
}
