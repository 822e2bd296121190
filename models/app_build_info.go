// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AppBuildInfo carries build-time metadata injected with -ldflags and shown
// on the TUI "about" window.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values are reported as N/A.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

// Version returns the semantic version of the build.
func (a AppBuildInfo) Version() string { return orNotAvailable(a.version) }

// Date returns the build timestamp.
func (a AppBuildInfo) Date() string { return orNotAvailable(a.date) }

// Commit returns the source-control commit hash.
func (a AppBuildInfo) Commit() string { return orNotAvailable(a.commit) }

func orNotAvailable(v string) string {
	if strings.TrimSpace(v) == "" {
		return NotAvailable
	}
	return v
}
