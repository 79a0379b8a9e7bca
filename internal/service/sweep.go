package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SweepUploads removes staged upload files older than the retention window.
// Uploads are normally deleted right after preview; this catches leftovers
// from requests that died between staging and cleanup. Returns the number of
// files removed. A missing directory is not an error, the first upload
// creates it.
func SweepUploads(dir string, retention time.Duration) (int, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read upload dir: %w", err)
	}

	cutoff := time.Now().Add(-retention)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().After(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return removed, fmt.Errorf("failed to remove stale upload %s: %w", entry.Name(), err)
		}
		removed++
	}

	return removed, nil
}
