// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Account is a registered vault owner.
// DerivedKey and Salt are verification material and must never cross the
// service boundary; the front end only ever sees [AccountView].
type Account struct {
	// ID is assigned by the store on creation and never changes.
	ID int64 `json:"-"`

	// Username is unique across all accounts (case-sensitive, alphanumeric).
	Username string `json:"username"`

	// DerivedKey is the 32-byte master password verifier.
	DerivedKey []byte `json:"-"`

	// Salt is the 16-byte random salt used for key derivation.
	Salt []byte `json:"-"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// View returns the public projection of the account.
func (a Account) View() AccountView {
	return AccountView{ID: a.ID, Username: a.Username}
}

// AccountView is the part of an [Account] that is safe to render.
type AccountView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
