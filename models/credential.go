// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NotAvailable is rendered in place of an absent login identifier.
const NotAvailable = "N/A"

// CredentialRecord is a stored service credential. The secret is kept only
// in its encrypted form.
type CredentialRecord struct {
	// ID is assigned by the store.
	ID int64 `json:"id"`

	// AccountID references the owning [Account]. Inserts with a dangling
	// AccountID are rejected by the store.
	AccountID int64 `json:"account_id"`

	// ServiceName is a non-empty label; several records may share it.
	ServiceName string `json:"service_name"`

	// LoginIdentifier is optional. nil means "absent", which is not the
	// same as an empty string.
	LoginIdentifier *string `json:"login_identifier,omitempty"`

	// SecretCiphertext is nonce || ciphertext || tag.
	SecretCiphertext []byte `json:"-"`
}

// TableName returns the name of the database table
// associated with the CredentialRecord model.
func (c CredentialRecord) TableName() string {
	return "credentials"
}

// DisplayLogin returns the login identifier or [NotAvailable].
func (c CredentialRecord) DisplayLogin() string {
	return displayLogin(c.LoginIdentifier)
}

// CredentialView is a decrypted credential handed to the front end.
type CredentialView struct {
	ID              int64
	ServiceName     string
	LoginIdentifier *string
	Secret          string

	// Err is set when the secret could not be decrypted. Secret is empty in
	// that case and the rest of the view is still valid.
	Err error
}

// DisplayLogin returns the login identifier or [NotAvailable].
func (v CredentialView) DisplayLogin() string {
	return displayLogin(v.LoginIdentifier)
}

// Candidate is one entry of an ambiguous match offered to the user.
type Candidate struct {
	// Index is 1-based, as shown to the user.
	Index int
	// Label identifies the record without revealing its secret.
	Label string
}

func displayLogin(login *string) string {
	if login == nil || *login == "" {
		return NotAvailable
	}
	return *login
}
