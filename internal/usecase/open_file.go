package usecase

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/danielmartin/emacs-sourcegraph/internal/domain"
	"github.com/danielmartin/emacs-sourcegraph/internal/ports"
)

// OpenFile builds the deep link for a file region and hands it to the URL
// opener.
type OpenFile struct {
	cfg      domain.Config
	locator  ports.RepoLocator
	resolver *Resolver
	opener   ports.URLOpener

	lookPath func(string) (string, error) // test seam
}

func NewOpenFile(cfg domain.Config, locator ports.RepoLocator, resolver *Resolver, opener ports.URLOpener) *OpenFile {
	return &OpenFile{
		cfg:      cfg,
		locator:  locator,
		resolver: resolver,
		opener:   opener,
		lookPath: exec.LookPath,
	}
}

type OpenFileParams struct {
	Path   string
	Region domain.Region
}

// Execute checks preconditions in a fixed order, resolves remote context,
// builds the URL, and opens it. The opened URL is returned so callers can
// log or print it. There is no partial success: either a complete URL is
// handed to the opener or the first failure aborts everything.
func (uc *OpenFile) Execute(p OpenFileParams) (string, error) {
	if _, err := uc.lookPath(uc.cfg.Git); err != nil {
		return "", &domain.OpError{
			Op:   "open.git",
			Kind: domain.KindUserInput,
			Err:  fmt.Errorf("git executable %q not found on PATH: %w", uc.cfg.Git, err),
		}
	}
	if err := uc.cfg.Validate(); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(p.Path)
	if err != nil {
		return "", &domain.OpError{Op: "open.file", Kind: domain.KindUserInput, Path: p.Path, Err: err}
	}
	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		return "", &domain.OpError{
			Op:   "open.file",
			Kind: domain.KindUserInput,
			Path: p.Path,
			Err:  errors.New("not backed by a file on disk"),
		}
	}

	root, err := uc.locator.FindRoot(filepath.Dir(abs))
	if err != nil {
		return "", &domain.OpError{Op: "open.repo", Kind: domain.KindUserInput, Path: abs, Err: err}
	}
	if root == "" {
		return "", &domain.OpError{
			Op:   "open.repo",
			Kind: domain.KindUserInput,
			Path: abs,
			Err:  domain.ErrNotFound,
		}
	}

	region := p.Region.NormalizeEnd(lineLengths(abs))

	branch, remoteURL, err := uc.resolver.BranchAndRemoteURL(root)
	if err != nil {
		return "", err
	}
	if branch == "" || remoteURL == "" {
		return "", &domain.OpError{
			Op:   "open.resolve",
			Kind: domain.KindUserInput,
			Err:  errors.New("empty branch or remote URL after resolution"),
		}
	}

	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", &domain.OpError{Op: "open.relpath", Kind: domain.KindUserInput, Path: abs, Err: err}
	}
	rel = filepath.ToSlash(rel)

	u, err := domain.BuildEditorURL(uc.cfg.BaseURL, remoteURL, branch, rel, region)
	if err != nil {
		return "", err
	}

	if err := uc.opener.Open(u); err != nil {
		return "", err
	}
	return u, nil
}

// lineLengths reads the file once and reports per-line rune counts for
// region normalization. Unreadable content degrades to nil; the end column
// then falls back to 0.
func lineLengths(path string) func(int) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	lines := strings.Split(string(data), "\n")
	return func(i int) int {
		if i < 0 || i >= len(lines) {
			return 0
		}
		return utf8.RuneCountInString(lines[i])
	}
}
