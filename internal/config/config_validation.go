// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// Bounds for App.MaxSignInAttempts.
const (
	MinSignInAttempts = 1
	MaxSignInAttempts = 10
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Log.FilePath == "" {
		return ErrInvalidLogConfigs
	}

	attempts := cfg.App.MaxSignInAttempts
	if attempts < MinSignInAttempts || attempts > MaxSignInAttempts {
		return fmt.Errorf("%w: max sign-in attempts must be in [%d, %d], got %d",
			ErrInvalidAppConfigs, MinSignInAttempts, MaxSignInAttempts, attempts)
	}

	if cfg.App.ClipboardTTL < 0 {
		return fmt.Errorf("%w: negative clipboard ttl", ErrInvalidAppConfigs)
	}

	return nil
}
