package db

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Backup copies the store file to dest. The copy is a plain
// byte-for-byte snapshot; the connection stays open, so the store must
// be idle when this runs (it always is: every operation is synchronous
// on the calling goroutine).
func (s *Store) Backup(dest string) error {
	if err := copyFile(s.path, dest); err != nil {
		return fmt.Errorf("failed to back up store: %w", err)
	}
	s.log.Info().Str("dest", dest).Msg("store backed up")
	return nil
}

// Restore replaces the live store with the backup at src. The handle
// is closed for the duration of the swap. The backup is first copied
// to a temp file next to the live store and then renamed into place,
// so a failed copy leaves the live store untouched.
func (s *Store) Restore(src string) error {
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("backup file not readable: %w", err)
	}

	if err := s.Close(); err != nil {
		return fmt.Errorf("failed to close store before restore: %w", err)
	}

	tmp := filepath.Join(filepath.Dir(s.path), ".restore.tmp")
	if err := copyFile(src, tmp); err != nil {
		os.Remove(tmp)
		// Live store untouched; reopen it.
		if reopenErr := s.open(); reopenErr != nil {
			return fmt.Errorf("restore copy failed (%v) and store could not be reopened: %w", err, reopenErr)
		}
		return fmt.Errorf("failed to copy backup: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		if reopenErr := s.open(); reopenErr != nil {
			return fmt.Errorf("restore rename failed (%v) and store could not be reopened: %w", err, reopenErr)
		}
		return fmt.Errorf("failed to swap in backup: %w", err)
	}

	if err := s.open(); err != nil {
		return fmt.Errorf("failed to reopen restored store: %w", err)
	}
	s.log.Info().Str("src", src).Msg("store restored")
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
