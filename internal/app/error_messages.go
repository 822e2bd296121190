// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-pass-vault front end and lifecycle code.
//
// All Msg* constants are human-readable message strings shown to the user or
// written into log entries to describe the outcome of an operation. Keeping
// them in one place ensures consistent wording throughout the screens.
package app

const (
	// MsgInvalidDataProvided is shown when a form fails the input policy and
	// no more specific reason is available.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is shown when the supplied username/password
	// combination does not unlock an account.
	MsgInvalidLoginPassword = "invalid username/password"

	// MsgInternalError is shown when an unexpected failure occurs that the
	// user cannot resolve from the terminal.
	MsgInternalError = "internal error, see the log file for details"

	// MsgRequiredFields is shown when a form is submitted with a mandatory
	// field left blank.
	MsgRequiredFields = "all fields are required"

	// MsgPasswordsDoNotMatch is shown when the password and its repetition
	// differ on the registration screen.
	MsgPasswordsDoNotMatch = "passwords do not match"

	// MsgUsernameAlreadyExists is shown when a registration or rename is
	// rejected because the requested username is already in use.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgAccountNotFound is shown when no account carries the username.
	MsgAccountNotFound = "account not found"

	// MsgAccountGone is shown when the signed-in account was removed from the
	// database behind the session's back.
	MsgAccountGone = "account no longer exists, sign in again"

	// MsgSessionActive is shown when a sign-in is attempted while another
	// session is open.
	MsgSessionActive = "another session is already active"

	// MsgNoActiveSession is shown when an operation is attempted after the
	// session ended.
	MsgNoActiveSession = "session has ended, sign in again"

	// MsgNoMatches is shown when a lookup by service name finds nothing.
	MsgNoMatches = "no credentials found for this service"

	// MsgCancelled is shown after the user withdrew from a selection or a
	// confirmation.
	MsgCancelled = "cancelled"

	// MsgIntegrityFailure is rendered in place of a secret that could not be
	// decrypted or whose ciphertext was modified.
	MsgIntegrityFailure = "integrity check failed"

	// MsgTooManyAttempts is shown on the start menu after the sign-in
	// attempt limit was reached.
	MsgTooManyAttempts = "too many failed sign-in attempts"

	// MsgClipboardDisabled is shown when copying is switched off in the
	// configuration.
	MsgClipboardDisabled = "clipboard is disabled"
)
