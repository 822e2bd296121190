// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-pass-vault application. It is populated by merging command-line flags,
// environment variables, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds interactive front-end behaviour.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local vault database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds the log sink settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds settings of the interactive front end.
type App struct {
	// MaxSignInAttempts is the number of wrong master passwords accepted
	// before the sign-in screen gives up and returns to the menu.
	// Env: APP_MAX_SIGN_IN_ATTEMPTS
	MaxSignInAttempts int `env:"MAX_SIGN_IN_ATTEMPTS"`

	// DisableClipboard turns off the "copy secret" action.
	// Env: APP_DISABLE_CLIPBOARD
	DisableClipboard bool `env:"DISABLE_CLIPBOARD"`

	// ClipboardTTL is how long a copied secret stays in the clipboard
	// before it is wiped (e.g. "30s").
	// Env: APP_CLIPBOARD_TTL
	ClipboardTTL time.Duration `env:"CLIPBOARD_TTL"`
}

// Storage groups the configuration of the persistence backend.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite vault file.
type DB struct {
	// DSN is the SQLite file path or URI (e.g. "data/vault.db").
	// Foreign key enforcement is appended by the store when missing.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Log holds the log sink settings.
type Log struct {
	// FilePath is the JSON log file. The TUI owns the terminal, so logs
	// never go to stdout.
	// Env: LOG_FILE_PATH
	FilePath string `env:"FILE_PATH"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults used when no source provides a value.
const (
	DefaultDSN               = "data/vault.db"
	DefaultLogFilePath       = "logs/app.log"
	DefaultLogLevel          = "info"
	DefaultMaxSignInAttempts = 3
	DefaultClipboardTTL      = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			MaxSignInAttempts: DefaultMaxSignInAttempts,
			ClipboardTTL:      DefaultClipboardTTL,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Log: Log{
			FilePath: DefaultLogFilePath,
			Level:    DefaultLogLevel,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. For every field the first
// source that sets a non-zero value wins:
//  1. Command-line flags (args, usually os.Args[1:])
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
