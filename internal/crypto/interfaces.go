package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService derives key material from the master password.
// It knows nothing about storage, sessions or the terminal.
//
// Scheme:
//
//	Root        = scrypt(password, salt)                  (N=2^14, r=8, p=1)
//	Verifier    = HKDF-SHA256(Root, salt, verifierInfo)   stored as derived_key
//	RecordKey   = HKDF-SHA256(Root, salt, recordKeyInfo)  kept in the session only
type KeyChainService interface {
	// GenerateSalt returns 16 random bytes from the OS CSPRNG.
	GenerateSalt() ([]byte, error)

	// DeriveKey runs scrypt over password and salt and returns the 32-byte
	// root key. Deterministic for the same inputs. The salt must be 16 bytes.
	DeriveKey(password string, salt []byte) ([]byte, error)

	// HashMasterPassword generates a fresh salt and returns it together with
	// the verifier to be stored for a new account.
	HashMasterPassword(password string) (salt, verifier []byte, err error)

	// VerifyMasterPassword re-derives the verifier and compares it with
	// expected in constant time. A mismatch is (false, nil); an error is
	// returned only for malformed input.
	VerifyMasterPassword(password string, salt, expected []byte) (bool, error)

	// Unlock verifies password like VerifyMasterPassword and, on success,
	// returns the record-encryption key. It performs a single derivation.
	Unlock(password string, salt, expected []byte) (recordKey []byte, ok bool, err error)
}

// RecordCipher is authenticated encryption of a single credential secret.
type RecordCipher interface {
	// Encrypt seals plaintext under key with a fresh random nonce.
	// The result is self-contained: nonce || ciphertext || tag.
	Encrypt(key, plaintext []byte) ([]byte, error)

	// Decrypt opens a blob produced by Encrypt. Any authentication failure
	// or malformed blob yields an error wrapping [ErrIntegrity]; partial
	// plaintext is never returned.
	Decrypt(key, blob []byte) ([]byte, error)
}
