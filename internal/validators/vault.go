package validators

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUsername targets the account username.
	FieldUsername = "username"

	// FieldPassword targets the master password strength policy.
	FieldPassword = "password"

	// FieldServiceName targets the credential's service label.
	FieldServiceName = "service_name"

	// FieldSecret targets the credential's plaintext secret.
	FieldSecret = "secret"
)

// MinPasswordLength is the shortest accepted master password, in characters.
const MinPasswordLength = 15

// SpecialCharacters is the set of non-alphanumeric characters a master
// password may (and must, at least once) contain.
const SpecialCharacters = "!@#$%^&*()-_=+[]{};:'\",.<>/?\\|`~"

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// VaultValidator implements [Validator] for account and credential input:
// [models.AccountInput] and [models.CredentialInput], by value or pointer.
type VaultValidator struct{}

// NewVaultValidator constructs a new VaultValidator and returns it as the
// Validator interface.
func NewVaultValidator() Validator {
	return &VaultValidator{}
}

// Validate dispatches on the dynamic type of obj. Without field names the
// full rule set of the type is applied. Password policy violations are
// reported together via errors.Join.
func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AccountInput:
		return v.validateAccount(ctx, value, fields...)
	case *models.AccountInput:
		return v.validateAccount(ctx, *value, fields...)

	case models.CredentialInput:
		return v.validateCredential(ctx, value, fields...)
	case *models.CredentialInput:
		return v.validateCredential(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultValidator) validateAccount(_ context.Context, input models.AccountInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := ValidateUsername(input.Username); err != nil {
				return err
			}
		case FieldPassword:
			if err := ValidatePassword(input.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateCredential(_ context.Context, input models.CredentialInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldServiceName, FieldSecret}
	}

	for _, f := range fields {
		switch f {
		case FieldServiceName:
			if strings.TrimSpace(input.ServiceName) == "" {
				return ErrEmptyServiceName
			}
		case FieldSecret:
			if input.Secret == "" {
				return ErrEmptySecret
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ValidateUsername checks that username is non-empty ASCII alphanumeric.
func ValidateUsername(username string) error {
	if username == "" {
		return ErrEmptyUsername
	}
	if !usernamePattern.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}

// ValidatePassword applies the master password policy and returns every
// violated rule joined into one error, or nil.
func ValidatePassword(password string) error {
	var errs []error

	if utf8.RuneCountInString(password) < MinPasswordLength {
		errs = append(errs, ErrPasswordTooShort)
	}

	var upper, lower, digit, special, invalid bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(SpecialCharacters, r):
			special = true
		default:
			invalid = true
		}
	}

	if !upper {
		errs = append(errs, ErrPasswordNoUpper)
	}
	if !lower {
		errs = append(errs, ErrPasswordNoLower)
	}
	if !digit {
		errs = append(errs, ErrPasswordNoDigit)
	}
	if !special {
		errs = append(errs, ErrPasswordNoSpecial)
	}
	if invalid {
		errs = append(errs, ErrPasswordInvalidChar)
	}

	return errors.Join(errs...)
}
