// Package sqlite_test contains integration tests for the SQLite
// repositories.
//
// This file is the single point where the database schema is loaded
// for tests. All test setup uses db.GetSchemaSQL() so that a
// repository referencing a column missing from the authoritative
// schema fails immediately instead of drifting.
package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/stockbook/internal/db"
	"github.com/example/stockbook/internal/models"
)

// setupTestDB creates an in-memory database with the authoritative
// schema and foreign keys enabled.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// utcDate builds a UTC-midnight date, the normal form for event dates.
func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// seedPaddock inserts a test paddock and returns its ID.
func seedPaddock(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	if name == "" {
		name = "Front Paddock"
	}
	res, err := db.Exec("INSERT INTO paddocks (name) VALUES (?)", name)
	if err != nil {
		t.Fatalf("failed to seed paddock: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// seedMob inserts a test mob and returns its ID.
func seedMob(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	if name == "" {
		name = "Weaner Heifers"
	}
	res, err := db.Exec("INSERT INTO mobs (name, species) VALUES (?, ?)", name, models.SpeciesCattle)
	if err != nil {
		t.Fatalf("failed to seed mob: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// seedAnimal inserts an alive test animal and returns its ID.
func seedAnimal(t *testing.T, db *sql.DB, visualTag, eid string) int64 {
	t.Helper()
	res, err := db.Exec(
		"INSERT INTO animals (eid, visual_tag, species, sex, status) VALUES (?, ?, ?, ?, ?)",
		eid, visualTag, models.SpeciesCattle, models.SexFemale, models.AnimalStatusAlive,
	)
	if err != nil {
		t.Fatalf("failed to seed animal: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// seedProduct inserts a test product and returns its ID.
func seedProduct(t *testing.T, db *sql.DB, name string, meatDays, milkDays, esiDays int) int64 {
	t.Helper()
	if name == "" {
		name = "Test Drench"
	}
	res, err := db.Exec(
		"INSERT INTO products (name, meat_whp_days, milk_whp_days, esi_days) VALUES (?, ?, ?, ?)",
		name, meatDays, milkDays, esiDays,
	)
	if err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}
