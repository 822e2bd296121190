// Package config provides configuration loading, merging, and validation
// facilities for go-pass-vault.
//
// Configuration is assembled from multiple sources. For every field the
// first source that sets a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file (path from -c/-config or CONFIG)
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
