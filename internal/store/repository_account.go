package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// accountRepository is the SQLite-backed implementation of [AccountRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account and returns it with the ID assigned
// by SQLite.
//
// Error handling:
//   - SQLite unique constraint on username → [ErrUsernameTaken].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAccountQuery(account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error building query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error inserting account")

		switch sqliteError(err) {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return models.Account{}, ErrUsernameTaken
		default:
			return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error reading inserted id")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	account.ID = id

	return account, nil
}

// FindAccountByUsername retrieves the account with the exact (case-sensitive)
// username. A missing row yields [ErrAccountNotFound].
func (r *accountRepository) FindAccountByUsername(ctx context.Context, username string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountByUsernameQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAccountByUsername").Msg("error building query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Account
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&found.ID, &found.Username, &found.DerivedKey, &found.Salt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", "*accountRepository.FindAccountByUsername").Msg("error: scanning error")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// UpdateUsername renames the account. The new name is subject to the same
// uniqueness constraint as at creation.
func (r *accountRepository) UpdateUsername(ctx context.Context, accountID int64, newUsername string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUsernameQuery(accountID, newUsername)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateUsername").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateUsername").Int64("account_id", accountID).Msg("error updating username")

		switch sqliteError(err) {
		case sqlite3.ErrConstraintUnique:
			return ErrUsernameTaken
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// DeleteAccount removes the account's credentials and then the account
// itself inside a single transaction. Nothing is removed if either step fails.
func (r *accountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	log := logger.FromContext(ctx)

	deleteCredentials, credArgs, err := buildDeleteAccountCredentialsQuery(accountID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	deleteAccount, accountArgs, err := buildDeleteAccountQuery(accountID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withTx(ctx, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, deleteCredentials, credArgs...); err != nil {
			return fmt.Errorf("%w: delete credentials: %w", ErrExecutingStatement, err)
		}

		result, err := tx.ExecContext(ctx, deleteAccount, accountArgs...)
		if err != nil {
			return fmt.Errorf("%w: delete account: %w", ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrAccountNotFound
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.DeleteAccount").Int64("account_id", accountID).Msg("account deletion rolled back")
		return err
	}

	log.Info().Str("func", "*accountRepository.DeleteAccount").Int64("account_id", accountID).Msg("account deleted")
	return nil
}
