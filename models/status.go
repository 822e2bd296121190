// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Status is the outcome of a vault operation. The set is closed: callers are
// expected to switch over every value returned by [Statuses].
type Status int

const (
	// StatusSuccess means the operation completed and its effects are persisted.
	StatusSuccess Status = iota
	// StatusError is a generic persistence or integrity failure.
	StatusError
	// StatusConflict is a uniqueness violation (or a second active session).
	StatusConflict
	// StatusNotFound means nothing matched the query.
	StatusNotFound
	// StatusCancelled is an explicit user withdrawal, not an error.
	StatusCancelled
	// StatusInvalidInput is a policy violation the user can correct and retry.
	StatusInvalidInput
)

// Statuses returns every defined status in declaration order.
func Statuses() []Status {
	return []Status{
		StatusSuccess,
		StatusError,
		StatusConflict,
		StatusNotFound,
		StatusCancelled,
		StatusInvalidInput,
	}
}

// String implements [fmt.Stringer].
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	case StatusConflict:
		return "conflict"
	case StatusNotFound:
		return "not found"
	case StatusCancelled:
		return "cancelled"
	case StatusInvalidInput:
		return "invalid input"
	default:
		return "unknown"
	}
}

// OK reports whether s is [StatusSuccess].
func (s Status) OK() bool {
	return s == StatusSuccess
}
