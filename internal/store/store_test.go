// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// store_test.go provides a shared test database helper for all store tests.
// Each test gets its own in-memory SQLite database with the full schema.
package store

import (
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/pressly/goose/v3"

	"vitrine/internal/database"
)

// dbCounter gives every test database a distinct shared-cache name so
// parallel tests never see each other's data.
var dbCounter atomic.Int64

// testDB opens a fresh in-memory database and runs migrations. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:storetest%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := database.Connect(dsn)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate test db: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// str is a shorthand for optional string fields in test fixtures.
func str(s string) *string {
	return &s
}
