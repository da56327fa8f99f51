// SPDX-License-Identifier: AGPL-3.0-or-later

// Package projection writes generated artifacts and renders the markdown
// fragments shown in issue comments and terminal output.
package projection

import (
	"fmt"
	"os"
	"path/filepath"
)

// File modes for the two kinds of files autoui writes.
const (
	// SourceMode is for generated sources and config meant to be committed.
	SourceMode os.FileMode = 0o644
	// StateMode is for workflow state holding raw issue text.
	StateMode os.FileMode = 0o600
)

// AtomicWrite replaces path with content. Readers see either the old file or
// the complete new one, never a partial write.
func AtomicWrite(path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	// no-op once the rename succeeds
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("setting mode on %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("moving temp file to %s: %w", path, err)
	}
	return nil
}
