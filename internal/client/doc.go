// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows to the vault service and runs the
// sign in, vault screen, sign out cycle as a single process lifecycle.
package client
