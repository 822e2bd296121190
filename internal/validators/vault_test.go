// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

const strongPassword = "Str0ngP@ssword!!"

func TestNewVaultValidator(t *testing.T) {
	require.NotNil(t, NewVaultValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewVaultValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewVaultValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), models.AccountInput{}, "hash"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(context.Background(), models.CredentialInput{}, "hash"), ErrUnknownField)
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  error
	}{
		{name: "letters", username: "alice"},
		{name: "letters and digits", username: "Alice42"},
		{name: "empty", username: "", wantErr: ErrEmptyUsername},
		{name: "space", username: "al ice", wantErr: ErrInvalidUsername},
		{name: "underscore", username: "al_ice", wantErr: ErrInvalidUsername},
		{name: "non-ascii letter", username: "алиса", wantErr: ErrInvalidUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErrs []error
	}{
		{name: "strong", password: strongPassword},
		{name: "every special allowed", password: "Aa1" + SpecialCharacters},
		{name: "too short", password: "Sh0rt!pass", wantErrs: []error{ErrPasswordTooShort}},
		{name: "no upper", password: "str0ngp@ssword!!", wantErrs: []error{ErrPasswordNoUpper}},
		{name: "no lower", password: "STR0NGP@SSWORD!!", wantErrs: []error{ErrPasswordNoLower}},
		{name: "no digit", password: "StrongP@ssword!!", wantErrs: []error{ErrPasswordNoDigit}},
		{name: "no special", password: "Str0ngPassword11", wantErrs: []error{ErrPasswordNoSpecial}},
		{name: "space not allowed", password: "Str0ng P@ssword!!", wantErrs: []error{ErrPasswordInvalidChar}},
		{name: "unicode not allowed", password: "Str0ngP@sswordé!", wantErrs: []error{ErrPasswordInvalidChar}},
		{
			name:     "empty reports everything",
			password: "",
			wantErrs: []error{ErrPasswordTooShort, ErrPasswordNoUpper, ErrPasswordNoLower, ErrPasswordNoDigit, ErrPasswordNoSpecial},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if len(tt.wantErrs) == 0 {
				assert.NoError(t, err)
				return
			}
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestValidate_Account(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.AccountInput{Username: "alice", Password: strongPassword}))
	assert.NoError(t, v.Validate(ctx, &models.AccountInput{Username: "alice", Password: strongPassword}))
	assert.ErrorIs(t, v.Validate(ctx, models.AccountInput{Username: "al!ce", Password: strongPassword}), ErrInvalidUsername)

	// rename only checks the username
	assert.NoError(t, v.Validate(ctx, models.AccountInput{Username: "alice2"}, FieldUsername))
}

func TestValidate_Credential(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CredentialInput{ServiceName: "GitHub", Secret: "ghp_secret"}))
	assert.ErrorIs(t, v.Validate(ctx, models.CredentialInput{ServiceName: "  ", Secret: "x"}), ErrEmptyServiceName)
	assert.ErrorIs(t, v.Validate(ctx, &models.CredentialInput{ServiceName: "GitHub"}), ErrEmptySecret)
}
