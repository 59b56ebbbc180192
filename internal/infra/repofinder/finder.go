package repofinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/danielmartin/emacs-sourcegraph/internal/domain"
)

// Finder locates a repository root by searching for the version-control
// marker upward through ancestor directories.
type Finder struct {
	Marker string // defaults to ".git"
}

func NewFinder() *Finder {
	return &Finder{Marker: ".git"}
}

// FindRoot walks up from startDir and returns the first ancestor containing
// the marker. Worktrees keep a .git file instead of a directory, so any
// stat-able entry counts.
func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "repofinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "repofinder.findroot",
			Kind: domain.KindUserInput,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		marker := filepath.Join(cur, f.Marker)
		if _, err := os.Stat(marker); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return "", &domain.OpError{
				Op:   "repofinder.findroot",
				Kind: domain.KindNotFound,
				Path: startDir,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
