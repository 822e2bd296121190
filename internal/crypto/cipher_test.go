// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allowedSpecials mirrors the master password special-character set.
const allowedSpecials = "!@#$%^&*()-_=+[]{};:'\",.<>/?\\|`~"

func testKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, KeyLength)
}

func TestRecordCipher_RoundTrip(t *testing.T) {
	c := NewRecordCipher()
	key := testKey(0x2A)

	cases := map[string]string{
		"empty":    "",
		"simple":   "super_secret_123",
		"specials": allowedSpecials,
		"unicode":  "пароль-密码-🔑",
	}

	for name, plaintext := range cases {
		t.Run(name, func(t *testing.T) {
			blob, err := c.Encrypt(key, []byte(plaintext))
			require.NoError(t, err)
			if plaintext != "" {
				assert.NotContains(t, string(blob), plaintext)
			}

			got, err := c.Decrypt(key, blob)
			require.NoError(t, err)
			assert.Equal(t, plaintext, string(got))
		})
	}
}

func TestRecordCipher_FreshNoncePerCall(t *testing.T) {
	c := NewRecordCipher()
	key := testKey(0x11)

	b1, err := c.Encrypt(key, []byte("same"))
	require.NoError(t, err)
	b2, err := c.Encrypt(key, []byte("same"))
	require.NoError(t, err)

	assert.NotEqual(t, b1[:12], b2[:12], "nonces must differ")
	assert.NotEqual(t, b1, b2)
}

func TestRecordCipher_WrongKey(t *testing.T) {
	c := NewRecordCipher()

	blob, err := c.Encrypt(testKey(0x01), []byte("secret"))
	require.NoError(t, err)

	got, err := c.Decrypt(testKey(0x02), blob)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrIntegrity)
}

func TestRecordCipher_TamperDetectionEveryByte(t *testing.T) {
	c := NewRecordCipher()
	key := testKey(0x33)

	blob, err := c.Encrypt(key, []byte("ghp_secret"))
	require.NoError(t, err)

	for i := range blob {
		tampered := append([]byte(nil), blob...)
		tampered[i] ^= 0xFF

		got, err := c.Decrypt(key, tampered)
		if !errors.Is(err, ErrIntegrity) {
			t.Fatalf("byte %d: expected ErrIntegrity, got %v", i, err)
		}
		if got != nil {
			t.Fatalf("byte %d: plaintext returned on failure", i)
		}
	}
}

func TestRecordCipher_MalformedBlob(t *testing.T) {
	c := NewRecordCipher()
	key := testKey(0x44)

	for _, blob := range [][]byte{nil, {0x01}, make([]byte, 27)} {
		_, err := c.Decrypt(key, blob)
		assert.ErrorIs(t, err, ErrIntegrity, "len=%d", len(blob))
	}
}

func TestRecordCipher_InvalidKeyLength(t *testing.T) {
	c := NewRecordCipher()

	_, err := c.Encrypt([]byte("short"), []byte("x"))
	assert.ErrorIs(t, err, ErrInvalidKeyLength)

	_, err = c.Decrypt(make([]byte, 16), make([]byte, 64))
	assert.ErrorIs(t, err, ErrInvalidKeyLength)
}

func TestRecordCipher_WithDerivedRecordKey(t *testing.T) {
	svc := NewKeyChainService()
	c := NewRecordCipher()

	salt, verifier, err := svc.HashMasterPassword("masterpass123")
	require.NoError(t, err)
	key, ok, err := svc.Unlock("masterpass123", salt, verifier)
	require.NoError(t, err)
	require.True(t, ok)

	blob, err := c.Encrypt(key, []byte("github_pass123"))
	require.NoError(t, err)
	got, err := c.Decrypt(key, blob)
	require.NoError(t, err)
	assert.Equal(t, "github_pass123", string(got))
}
