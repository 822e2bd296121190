// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// goose starts by probing its version table
	mock.ExpectQuery(".*").WillReturnError(errors.New("disk I/O error"))
	mock.ExpectExec(".*").WillReturnError(errors.New("disk I/O error"))

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_CreatesTables(t *testing.T) {
	db, err := sql.Open("sqlite3", "file::memory:?cache=shared&_foreign_keys=on")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// second run is a no-op
	if err := Migrate(db); err != nil {
		t.Fatalf("repeated migrate: %v", err)
	}

	for _, table := range []string{"accounts", "credentials"} {
		var name string
		row := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table)
		if err := row.Scan(&name); err != nil {
			t.Errorf("table %s not created: %v", table, err)
		}
	}
}
