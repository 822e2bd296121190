package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration is incomplete or out of range.
var (
	// ErrInvalidStorageConfigs indicates an empty database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid front-end settings
	// (for example, a sign-in attempt limit outside 1..10).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidLogConfigs indicates an empty log file path.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
