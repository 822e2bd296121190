package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

type vaultService struct {
	accounts    store.AccountRepository
	credentials store.CredentialRepository
	keyChain    crypto.KeyChainService
	cipher      crypto.RecordCipher
	validator   validators.Validator
	ids         *utils.UUIDGenerator

	logger *logger.Logger

	mu     sync.Mutex
	active *Session
}

func NewVaultService(
	accounts store.AccountRepository,
	credentials store.CredentialRepository,
	keyChain crypto.KeyChainService,
	cipher crypto.RecordCipher,
	validator validators.Validator,
	logger *logger.Logger,
) VaultService {
	return &vaultService{
		accounts:    accounts,
		credentials: credentials,
		keyChain:    keyChain,
		cipher:      cipher,
		validator:   validator,
		ids:         utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

func (v *vaultService) CreateAccount(ctx context.Context, username, password string) (models.Status, error) {
	ctx = v.logger.WithContext(ctx)
	log := logger.FromContext(ctx)

	if err := v.validator.Validate(ctx, models.AccountInput{Username: username, Password: password}); err != nil {
		log.Info().Str("func", "*vaultService.CreateAccount").Err(err).Msg("account input rejected")
		return fail(fmt.Errorf("%w: %w", ErrInvalidInput, err))
	}

	_, err := v.accounts.FindAccountByUsername(ctx, username)
	switch {
	case err == nil:
		return fail(store.ErrUsernameTaken)
	case !errors.Is(err, store.ErrAccountNotFound):
		return fail(fmt.Errorf("looking up username: %w", err))
	}

	salt, verifier, err := v.keyChain.HashMasterPassword(password)
	if err != nil {
		log.Err(err).Str("func", "*vaultService.CreateAccount").Msg("error deriving master key")
		return fail(fmt.Errorf("deriving master key: %w", err))
	}

	account, err := v.accounts.CreateAccount(ctx, models.Account{
		Username:   username,
		DerivedKey: verifier,
		Salt:       salt,
	})
	if err != nil {
		return fail(fmt.Errorf("creating account: %w", err))
	}

	log.Info().Str("func", "*vaultService.CreateAccount").Int64("account_id", account.ID).Msg("account created")
	return models.StatusSuccess, nil
}

func (v *vaultService) SignIn(ctx context.Context, username, password string) (*Session, models.Status, error) {
	ctx = v.logger.WithContext(ctx)
	log := logger.FromContext(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.active != nil {
		return nil, models.StatusConflict, ErrSessionActive
	}

	account, err := v.accounts.FindAccountByUsername(ctx, username)
	if err != nil {
		status, err := fail(fmt.Errorf("finding account: %w", err))
		return nil, status, err
	}

	key, ok, err := v.keyChain.Unlock(password, account.Salt, account.DerivedKey)
	if err != nil {
		log.Err(err).Str("func", "*vaultService.SignIn").Int64("account_id", account.ID).Msg("stored key material is malformed")
		return nil, models.StatusError, fmt.Errorf("unlocking account: %w", err)
	}
	if !ok {
		log.Info().Str("func", "*vaultService.SignIn").Int64("account_id", account.ID).Msg("wrong master password")
		return nil, models.StatusInvalidInput, ErrWrongPassword
	}

	v.active = newSession(v.ids.Generate(), account, key)
	log.Info().
		Str("func", "*vaultService.SignIn").
		Str("session_id", v.active.id).
		Int64("account_id", account.ID).
		Msg("signed in")

	return v.active, models.StatusSuccess, nil
}

func (v *vaultService) SignOut() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.endSessionLocked()
}

func (v *vaultService) endSessionLocked() {
	if v.active == nil {
		return
	}
	v.logger.Info().Str("func", "*vaultService.SignOut").Str("session_id", v.active.id).Msg("session closed")
	v.active.scrub()
	v.active = nil
}

func (v *vaultService) VerifyMasterPassword(account models.Account, password string) bool {
	ok, err := v.keyChain.VerifyMasterPassword(password, account.Salt, account.DerivedKey)
	if err != nil {
		v.logger.Err(err).Str("func", "*vaultService.VerifyMasterPassword").Int64("account_id", account.ID).Msg("cannot verify master password")
		return false
	}
	return ok
}

func (v *vaultService) AddCredential(ctx context.Context, s *Session, serviceName string, loginIdentifier *string, secret string) (models.Status, error) {
	account, key, err := v.unlocked(s)
	if err != nil {
		return fail(err)
	}
	ctx = v.sessionContext(ctx, s)
	log := logger.FromContext(ctx)

	input := models.CredentialInput{ServiceName: serviceName, LoginIdentifier: loginIdentifier, Secret: secret}
	if err := v.validator.Validate(ctx, input); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrInvalidInput, err))
	}

	ciphertext, err := v.cipher.Encrypt(key, []byte(secret))
	if err != nil {
		log.Err(err).Str("func", "*vaultService.AddCredential").Msg("error encrypting secret")
		return fail(fmt.Errorf("encrypting secret: %w", err))
	}

	record, err := v.credentials.SaveCredential(ctx, models.CredentialRecord{
		AccountID:        account.ID,
		ServiceName:      serviceName,
		LoginIdentifier:  loginIdentifier,
		SecretCiphertext: ciphertext,
	})
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			err = fmt.Errorf("%w: %w", ErrAccountGone, err)
		}
		return fail(fmt.Errorf("saving credential: %w", err))
	}

	log.Info().Str("func", "*vaultService.AddCredential").Int64("credential_id", record.ID).Msg("credential added")
	return models.StatusSuccess, nil
}

func (v *vaultService) ListCredentials(ctx context.Context, s *Session) ([]models.CredentialView, error) {
	account, key, err := v.unlocked(s)
	if err != nil {
		return nil, err
	}
	ctx = v.sessionContext(ctx, s)

	records, err := v.credentials.GetCredentialsByAccount(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("listing credentials: %w", err)
	}

	return v.decryptAll(ctx, key, records), nil
}

func (v *vaultService) FindCredentialsByService(ctx context.Context, s *Session, serviceName string) ([]models.CredentialView, error) {
	account, key, err := v.unlocked(s)
	if err != nil {
		return nil, err
	}
	ctx = v.sessionContext(ctx, s)

	records, err := v.credentials.GetCredentialsByService(ctx, account.ID, serviceName)
	if err != nil {
		return nil, fmt.Errorf("finding credentials: %w", err)
	}

	return v.decryptAll(ctx, key, records), nil
}

func (v *vaultService) ViewCredential(ctx context.Context, s *Session, serviceName string, pick Picker) (models.CredentialView, models.Status, error) {
	account, key, err := v.unlocked(s)
	if err != nil {
		status, err := fail(err)
		return models.CredentialView{}, status, err
	}
	ctx = v.sessionContext(ctx, s)

	record, status, err := v.selectRecord(ctx, account, serviceName, pick)
	if status != models.StatusSuccess {
		return models.CredentialView{}, status, err
	}

	view := v.decrypt(ctx, key, record)
	if view.Err != nil {
		return models.CredentialView{}, models.StatusError, view.Err
	}
	return view, models.StatusSuccess, nil
}

func (v *vaultService) RemoveCredential(ctx context.Context, s *Session, serviceName string, pick Picker) (models.Status, error) {
	account, _, err := v.unlocked(s)
	if err != nil {
		return fail(err)
	}
	ctx = v.sessionContext(ctx, s)
	log := logger.FromContext(ctx)

	record, status, err := v.selectRecord(ctx, account, serviceName, pick)
	if status != models.StatusSuccess {
		return status, err
	}

	if err := v.credentials.DeleteCredential(ctx, account.ID, record.ID); err != nil {
		return fail(fmt.Errorf("removing credential: %w", err))
	}

	log.Info().Str("func", "*vaultService.RemoveCredential").Int64("credential_id", record.ID).Msg("credential removed")
	return models.StatusSuccess, nil
}

func (v *vaultService) RemoveAccount(ctx context.Context, s *Session) (models.Status, error) {
	account, _, err := v.unlocked(s)
	if err != nil {
		return fail(err)
	}
	ctx = v.sessionContext(ctx, s)

	if err := v.accounts.DeleteAccount(ctx, account.ID); err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			err = fmt.Errorf("%w: %w", ErrAccountGone, err)
		}
		return fail(fmt.Errorf("removing account: %w", err))
	}

	v.mu.Lock()
	if v.active == s {
		v.endSessionLocked()
	}
	v.mu.Unlock()

	return models.StatusSuccess, nil
}

func (v *vaultService) RenameAccount(ctx context.Context, s *Session, newUsername string) (models.Status, error) {
	account, _, err := v.unlocked(s)
	if err != nil {
		return fail(err)
	}
	ctx = v.sessionContext(ctx, s)
	log := logger.FromContext(ctx)

	if err := v.validator.Validate(ctx, models.AccountInput{Username: newUsername}, validators.FieldUsername); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrInvalidInput, err))
	}

	if err := v.accounts.UpdateUsername(ctx, account.ID, newUsername); err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			err = fmt.Errorf("%w: %w", ErrAccountGone, err)
		}
		return fail(fmt.Errorf("renaming account: %w", err))
	}

	v.mu.Lock()
	if v.active == s {
		s.rename(newUsername)
	}
	v.mu.Unlock()

	log.Info().Str("func", "*vaultService.RenameAccount").Int64("account_id", account.ID).Msg("account renamed")
	return models.StatusSuccess, nil
}

// unlocked returns the account and record key of s if it is the active session.
func (v *vaultService) unlocked(s *Session) (models.Account, []byte, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if s == nil || s != v.active {
		return models.Account{}, nil, ErrNoActiveSession
	}
	account, key := s.material()
	return account, key, nil
}

func (v *vaultService) sessionContext(ctx context.Context, s *Session) context.Context {
	l := &logger.Logger{Logger: v.logger.With().Str("session_id", s.id).Logger()}
	return l.WithContext(ctx)
}

// selectRecord narrows the records named serviceName to one, consulting pick
// only when several match.
func (v *vaultService) selectRecord(ctx context.Context, account models.Account, serviceName string, pick Picker) (models.CredentialRecord, models.Status, error) {
	records, err := v.credentials.GetCredentialsByService(ctx, account.ID, serviceName)
	if err != nil {
		status, err := fail(fmt.Errorf("finding credentials: %w", err))
		return models.CredentialRecord{}, status, err
	}

	switch len(records) {
	case 0:
		return models.CredentialRecord{}, models.StatusNotFound, ErrNoMatches
	case 1:
		return records[0], models.StatusSuccess, nil
	}

	if pick == nil {
		return models.CredentialRecord{}, models.StatusInvalidInput, fmt.Errorf("%w: %d records match and no picker was given", ErrInvalidSelection, len(records))
	}

	selection := pick(Candidates(records))
	switch selection.Kind {
	case SelectionChosen:
		if selection.Index < 0 || selection.Index >= len(records) {
			return models.CredentialRecord{}, models.StatusInvalidInput, fmt.Errorf("%w: index %d", ErrInvalidSelection, selection.Index)
		}
		return records[selection.Index], models.StatusSuccess, nil
	case SelectionCancelled:
		logger.FromContext(ctx).Debug().Str("func", "*vaultService.selectRecord").Msg("selection cancelled")
		return models.CredentialRecord{}, models.StatusCancelled, nil
	default:
		return models.CredentialRecord{}, models.StatusInvalidInput, fmt.Errorf("%w: %s", ErrInvalidSelection, selection.Reason)
	}
}

func (v *vaultService) decryptAll(ctx context.Context, key []byte, records []models.CredentialRecord) []models.CredentialView {
	views := make([]models.CredentialView, 0, len(records))
	for _, record := range records {
		views = append(views, v.decrypt(ctx, key, record))
	}
	return views
}

func (v *vaultService) decrypt(ctx context.Context, key []byte, record models.CredentialRecord) models.CredentialView {
	view := models.CredentialView{
		ID:              record.ID,
		ServiceName:     record.ServiceName,
		LoginIdentifier: record.LoginIdentifier,
	}

	plaintext, err := v.cipher.Decrypt(key, record.SecretCiphertext)
	if err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "*vaultService.decrypt").
			Int64("credential_id", record.ID).
			Msg("credential failed integrity check")
		view.Err = fmt.Errorf("credential %d: %w", record.ID, err)
		return view
	}

	view.Secret = string(plaintext)
	return view
}

func fail(err error) (models.Status, error) {
	return StatusOf(err), err
}
