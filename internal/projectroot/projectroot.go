// Package projectroot locates the repository that relative config paths
// are anchored to.
package projectroot

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// Find returns the root of the git worktree containing dir. Outside a
// repository the absolute form of dir itself is returned, so the CLI still
// works on a plain checkout such as an unpacked workflow artifact.
func Find(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return abs, nil
	}
	if err != nil {
		return "", fmt.Errorf("opening repository at %s: %w", abs, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}
