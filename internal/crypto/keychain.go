// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/scrypt"
)

const (
	// SaltLength is the size of the per-account salt (128 bits).
	SaltLength = 16

	// KeyLength is the size of every derived key (256 bits).
	KeyLength = 32

	// ScryptCostExponent gives N = 2^14. Around 50ms on a laptop core;
	// raise together with a migration of stored verifiers.
	ScryptCostExponent = 14

	// ScryptBlockSize is scrypt's r parameter.
	ScryptBlockSize = 8

	// ScryptParallelism is scrypt's p parameter.
	ScryptParallelism = 1
)

// HKDF info labels. They must never change for existing vaults.
const (
	verifierInfo  = "go-pass-vault/master-password-verifier/v1"
	recordKeyInfo = "go-pass-vault/credential-record-key/v1"
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// scrypt tuning parameters, kept on the struct so tests can lower them.
	n      int
	r      int
	p      int
	keyLen int

	random io.Reader
}

// NewKeyChainService constructs a [KeyChainService] with the scrypt
// parameters N=2^14, r=8, p=1 and 32-byte keys.
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		n:      1 << ScryptCostExponent,
		r:      ScryptBlockSize,
		p:      ScryptParallelism,
		keyLen: KeyLength,
		random: rand.Reader,
	}
}

// GenerateSalt implements [KeyChainService].
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(k.random, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// DeriveKey implements [KeyChainService].
func (k *keyChainService) DeriveKey(password string, salt []byte) ([]byte, error) {
	if len(salt) != SaltLength {
		return nil, ErrInvalidSalt
	}

	key, err := scrypt.Key([]byte(password), salt, k.n, k.r, k.p, k.keyLen)
	if err != nil {
		return nil, fmt.Errorf("scrypt key derivation: %w", err)
	}
	return key, nil
}

// HashMasterPassword implements [KeyChainService].
func (k *keyChainService) HashMasterPassword(password string) ([]byte, []byte, error) {
	salt, err := k.GenerateSalt()
	if err != nil {
		return nil, nil, err
	}

	root, err := k.DeriveKey(password, salt)
	if err != nil {
		return nil, nil, err
	}

	verifier, err := subKey(root, salt, verifierInfo)
	if err != nil {
		return nil, nil, err
	}
	return salt, verifier, nil
}

// VerifyMasterPassword implements [KeyChainService].
func (k *keyChainService) VerifyMasterPassword(password string, salt, expected []byte) (bool, error) {
	_, ok, err := k.unlock(password, salt, expected, false)
	return ok, err
}

// Unlock implements [KeyChainService].
func (k *keyChainService) Unlock(password string, salt, expected []byte) ([]byte, bool, error) {
	return k.unlock(password, salt, expected, true)
}

func (k *keyChainService) unlock(password string, salt, expected []byte, withRecordKey bool) ([]byte, bool, error) {
	if len(expected) != KeyLength {
		return nil, false, ErrInvalidVerifier
	}

	root, err := k.DeriveKey(password, salt)
	if err != nil {
		return nil, false, err
	}

	verifier, err := subKey(root, salt, verifierInfo)
	if err != nil {
		return nil, false, err
	}

	if subtle.ConstantTimeCompare(verifier, expected) != 1 {
		return nil, false, nil
	}
	if !withRecordKey {
		return nil, true, nil
	}

	recordKey, err := subKey(root, salt, recordKeyInfo)
	if err != nil {
		return nil, false, err
	}
	return recordKey, true, nil
}

// subKey expands root into a KeyLength subkey bound to info.
func subKey(root, salt []byte, info string) ([]byte, error) {
	out := make([]byte, KeyLength)
	if _, err := io.ReadFull(hkdf.New(sha256.New, root, salt, []byte(info)), out); err != nil {
		return nil, fmt.Errorf("hkdf expand %q: %w", info, err)
	}
	return out, nil
}
