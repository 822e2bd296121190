package store

import (
	"context"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

type credentialRepository struct {
	*DB
	logger *logger.Logger
}

func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *credentialRepository) SaveCredential(ctx context.Context, record models.CredentialRecord) (models.CredentialRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCredentialQuery(record)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.SaveCredential").Msg("error building query")
		return models.CredentialRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.SaveCredential").
			Int64("account_id", record.AccountID).
			Msg("failed to insert credential")

		switch sqliteError(err) {
		case sqlite3.ErrConstraintForeignKey:
			return models.CredentialRecord{}, ErrAccountNotFound
		default:
			return models.CredentialRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.CredentialRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	record.ID = id

	return record, nil
}

func (c *credentialRepository) GetCredentialsByAccount(ctx context.Context, accountID int64) ([]models.CredentialRecord, error) {
	return c.getCredentials(ctx, accountID, nil)
}

func (c *credentialRepository) GetCredentialsByService(ctx context.Context, accountID int64, serviceName string) ([]models.CredentialRecord, error) {
	return c.getCredentials(ctx, accountID, &serviceName)
}

func (c *credentialRepository) getCredentials(ctx context.Context, accountID int64, serviceName *string) ([]models.CredentialRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCredentialsQuery(accountID, serviceName)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.getCredentials").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.getCredentials").
			Int64("account_id", accountID).
			Msg("failed to query credentials")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.CredentialRecord, 0)
	for rows.Next() {
		var record models.CredentialRecord
		if err = rows.Scan(
			&record.ID,
			&record.AccountID,
			&record.ServiceName,
			&record.LoginIdentifier,
			&record.SecretCiphertext,
		); err != nil {
			log.Err(err).Str("func", "credentialRepository.getCredentials").Msg("failed to scan credential row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "credentialRepository.getCredentials").Msg("error iterating credential rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (c *credentialRepository) DeleteCredential(ctx context.Context, accountID, credentialID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCredentialQuery(accountID, credentialID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.DeleteCredential").
			Int64("account_id", accountID).
			Int64("credential_id", credentialID).
			Msg("failed to delete credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCredentialNotFound
	}

	return nil
}
