// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_MAX_SIGN_IN_ATTEMPTS": "5",
		"APP_DISABLE_CLIPBOARD":    "true",
		"APP_CLIPBOARD_TTL":        "45s",

		"STORAGE_DB_DSN": "/var/lib/vault/vault.db",

		"LOG_FILE_PATH": "/var/log/vault.log",
		"LOG_LEVEL":     "debug",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, 5, cfg.App.MaxSignInAttempts)
	assert.True(t, cfg.App.DisableClipboard)
	assert.Equal(t, 45*time.Second, cfg.App.ClipboardTTL)

	assert.Equal(t, "/var/lib/vault/vault.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "/var/log/vault.log", cfg.Log.FilePath)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"STORAGE_DB_DSN": "vault.db",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Log{}, cfg.Log)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"APP_CLIPBOARD_TTL": "invalid_duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{name: "seconds", envValue: "30s", expected: 30 * time.Second},
		{name: "minutes", envValue: "2m", expected: 2 * time.Minute},
		{name: "mixed", envValue: "1m30s", expected: 90 * time.Second},
		{name: "milliseconds", envValue: "1500ms", expected: 1500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{"APP_CLIPBOARD_TTL": tt.envValue})

			cfg := &StructuredConfig{}
			require.NoError(t, parseEnv(cfg))
			assert.Equal(t, tt.expected, cfg.App.ClipboardTTL)
		})
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_MAX_SIGN_IN_ATTEMPTS",
		"APP_DISABLE_CLIPBOARD",
		"APP_CLIPBOARD_TTL",

		"STORAGE_DB_DSN",

		"LOG_FILE_PATH",
		"LOG_LEVEL",
	}
	for _, k := range keys {
		// t.Setenv restores the previous value on cleanup.
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
}
