package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
)

type Services struct {
	VaultService VaultService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		VaultService: NewVaultService(
			storages.AccountRepository,
			storages.CredentialRepository,
			crypto.NewKeyChainService(),
			crypto.NewRecordCipher(),
			validators.NewVaultValidator(),
			logger,
		),
	}
}
