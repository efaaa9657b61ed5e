package db

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stockbook.db")
	store, err := Open(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

func TestOpenCreatesSchema(t *testing.T) {
	store := openTestStore(t)

	var version int
	err := store.DB().QueryRow("SELECT version FROM schema_version").Scan(&version)
	if err != nil {
		t.Fatalf("failed to read schema version: %v", err)
	}
	if version != SchemaVersion {
		t.Errorf("expected schema version %d, got %d", SchemaVersion, version)
	}

	var count int
	err = store.DB().QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='animals'",
	).Scan(&count)
	if err != nil {
		t.Fatalf("failed to check animals table: %v", err)
	}
	if count != 1 {
		t.Error("expected animals table to exist")
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stockbook.db")

	store, err := Open(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("first open failed: %v", err)
	}
	if _, err := store.DB().Exec("INSERT INTO paddocks (name) VALUES ('River Flat')"); err != nil {
		t.Fatalf("failed to insert paddock: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	// Reopening an existing store must not recreate the schema or
	// touch existing rows.
	store, err = Open(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("second open failed: %v", err)
	}
	defer store.Close()

	var count int
	if err := store.DB().QueryRow("SELECT COUNT(*) FROM paddocks").Scan(&count); err != nil {
		t.Fatalf("failed to count paddocks: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 paddock after reopen, got %d", count)
	}

	var versions int
	if err := store.DB().QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&versions); err != nil {
		t.Fatalf("failed to count schema versions: %v", err)
	}
	if versions != 1 {
		t.Errorf("expected a single schema_version row, got %d", versions)
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	store := openTestStore(t)

	_, err := store.DB().Exec("INSERT INTO animals (visual_tag, mob_id) VALUES ('T1', 999)")
	if err == nil {
		t.Fatal("expected foreign key violation inserting animal with missing mob")
	}
}

func TestEventDetailCascade(t *testing.T) {
	store := openTestStore(t)

	res, err := store.DB().Exec(
		"INSERT INTO events (event_type, event_date) VALUES ('weigh', '2024-01-01')",
	)
	if err != nil {
		t.Fatalf("failed to insert event: %v", err)
	}
	eventID, _ := res.LastInsertId()

	if _, err := store.DB().Exec(
		"INSERT INTO weigh_events (event_id, weight_kg) VALUES (?, 320.5)", eventID,
	); err != nil {
		t.Fatalf("failed to insert weigh detail: %v", err)
	}

	if _, err := store.DB().Exec("DELETE FROM events WHERE id = ?", eventID); err != nil {
		t.Fatalf("failed to delete event: %v", err)
	}

	var count int
	if err := store.DB().QueryRow("SELECT COUNT(*) FROM weigh_events").Scan(&count); err != nil {
		t.Fatalf("failed to count weigh details: %v", err)
	}
	if count != 0 {
		t.Error("expected weigh detail to cascade on event delete")
	}
}

func TestBackupAndRestore(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "stockbook.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	if _, err := store.DB().Exec("INSERT INTO paddocks (name) VALUES ('Top Block')"); err != nil {
		t.Fatalf("failed to insert paddock: %v", err)
	}

	backupPath := filepath.Join(dir, "backup.db")
	if err := store.Backup(backupPath); err != nil {
		t.Fatalf("backup failed: %v", err)
	}

	// Mutate after the backup, then restore; the mutation must be gone.
	if _, err := store.DB().Exec("INSERT INTO paddocks (name) VALUES ('Bottom Block')"); err != nil {
		t.Fatalf("failed to insert paddock: %v", err)
	}

	if err := store.Restore(backupPath); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	var count int
	if err := store.DB().QueryRow("SELECT COUNT(*) FROM paddocks").Scan(&count); err != nil {
		t.Fatalf("failed to count paddocks after restore: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 paddock after restore, got %d", count)
	}
}

func TestRestoreMissingBackupLeavesStoreUsable(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "stockbook.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	if _, err := store.DB().Exec("INSERT INTO paddocks (name) VALUES ('Home')"); err != nil {
		t.Fatalf("failed to insert paddock: %v", err)
	}

	if err := store.Restore(filepath.Join(dir, "no-such-backup.db")); err == nil {
		t.Fatal("expected restore of missing backup to fail")
	}

	// Prior state intact and connection usable.
	var count int
	if err := store.DB().QueryRow("SELECT COUNT(*) FROM paddocks").Scan(&count); err != nil {
		t.Fatalf("store unusable after failed restore: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 paddock after failed restore, got %d", count)
	}
}
