package crypto

import "errors"

var (
	// ErrIntegrity is returned when a ciphertext fails authentication: the
	// key is wrong or the stored blob was corrupted or tampered with.
	ErrIntegrity = errors.New("crypto: integrity check failed")

	// ErrInvalidKeyLength is returned when a record key is not 32 bytes.
	ErrInvalidKeyLength = errors.New("crypto: invalid key length, must be 32 bytes")

	// ErrInvalidSalt is returned when a salt is not 16 bytes.
	ErrInvalidSalt = errors.New("crypto: invalid salt length, must be 16 bytes")

	// ErrInvalidVerifier is returned when a stored verifier is not 32 bytes.
	ErrInvalidVerifier = errors.New("crypto: invalid verifier length, must be 32 bytes")
)
