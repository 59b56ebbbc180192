package usecase

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielmartin/emacs-sourcegraph/internal/domain"
)

func lookPathOK(string) (string, error)      { return "/usr/bin/git", nil }
func lookPathMissing(string) (string, error) { return "", errors.New("executable not found") }

// repoOnDisk lays out a fake working copy: root/.git plus src/x.go with
// three lines of content.
func repoOnDisk(t *testing.T) (root, file string) {
	t.Helper()
	root = t.TempDir()
	if err := os.Mkdir(filepath.Join(root, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "src"), 0o755); err != nil {
		t.Fatal(err)
	}
	file = filepath.Join(root, "src", "x.go")
	if err := os.WriteFile(file, []byte("package x\n\nfunc X() {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return root, file
}

func newOpenFixture(t *testing.T) (*OpenFile, *fakeQueries, *fakeOpener, string) {
	t.Helper()
	root, file := repoOnDisk(t)

	git := &fakeQueries{
		branch:   "main",
		upstream: "origin/main",
		urls:     map[string]string{"origin": "https://github.com/a/b.git"},
	}
	opener := &fakeOpener{}

	uc := NewOpenFile(
		domain.Config{BaseURL: "https://sg.example", Git: "git"},
		&fakeLocator{root: root},
		NewResolver(git, &fakePrompter{}),
		opener,
	)
	uc.lookPath = lookPathOK
	return uc, git, opener, file
}

func TestOpenFile_HappyPath(t *testing.T) {
	uc, _, opener, file := newOpenFixture(t)

	url, err := uc.Execute(OpenFileParams{
		Path:   file,
		Region: domain.Region{StartLine: 0, StartCol: 0, EndLine: 2, EndCol: 5},
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	want := "https://sg.example/-/editor?remote_url=https%3A%2F%2Fgithub.com%2Fa%2Fb.git&branch=main&file=src%2Fx.go&editor=Emacs&version=1&start_row=0&start_col=0&end_row=2&end_col=5"
	if url != want {
		t.Fatalf("url mismatch\n got:  %s\n want: %s", url, want)
	}
	if len(opener.opened) != 1 || opener.opened[0] != want {
		t.Fatalf("opener got %v", opener.opened)
	}
}

func TestOpenFile_WholeLineSelectionEndPulledBack(t *testing.T) {
	uc, _, _, file := newOpenFixture(t)

	// Lines 0..1 selected whole; raw end is the start of line 2.
	url, err := uc.Execute(OpenFileParams{
		Path:   file,
		Region: domain.Region{StartLine: 0, StartCol: 0, EndLine: 2, EndCol: 0},
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	// Line 1 is empty, so the end lands at (1, 0).
	want := "https://sg.example/-/editor?remote_url=https%3A%2F%2Fgithub.com%2Fa%2Fb.git&branch=main&file=src%2Fx.go&editor=Emacs&version=1&start_row=0&start_col=0&end_row=1&end_col=0"
	if url != want {
		t.Fatalf("url mismatch\n got:  %s\n want: %s", url, want)
	}
}

func TestOpenFile_EmptyBaseURLFailsBeforeGit(t *testing.T) {
	root, file := repoOnDisk(t)
	git := &fakeQueries{}
	uc := NewOpenFile(
		domain.Config{BaseURL: "", Git: "git"},
		&fakeLocator{root: root},
		NewResolver(git, &fakePrompter{}),
		&fakeOpener{},
	)
	uc.lookPath = lookPathOK

	_, err := uc.Execute(OpenFileParams{Path: file})
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
	if len(git.calls) != 0 {
		t.Fatalf("git invoked before config check: %v", git.calls)
	}
}

func TestOpenFile_GitExecutableMissing(t *testing.T) {
	uc, git, _, file := newOpenFixture(t)
	uc.lookPath = lookPathMissing

	_, err := uc.Execute(OpenFileParams{Path: file})
	if !domain.IsKind(err, domain.KindUserInput) {
		t.Fatalf("expected KindUserInput, got %v", err)
	}
	if len(git.calls) != 0 {
		t.Fatalf("git invoked despite missing executable: %v", git.calls)
	}
}

func TestOpenFile_NoFileOnDisk(t *testing.T) {
	uc, _, _, _ := newOpenFixture(t)

	_, err := uc.Execute(OpenFileParams{Path: filepath.Join(t.TempDir(), "ghost.go")})
	if !domain.IsKind(err, domain.KindUserInput) {
		t.Fatalf("expected KindUserInput, got %v", err)
	}
}

func TestOpenFile_DirectoryRejected(t *testing.T) {
	uc, _, _, file := newOpenFixture(t)

	_, err := uc.Execute(OpenFileParams{Path: filepath.Dir(file)})
	if !domain.IsKind(err, domain.KindUserInput) {
		t.Fatalf("expected KindUserInput, got %v", err)
	}
}

func TestOpenFile_OutsideRepository(t *testing.T) {
	_, file := repoOnDisk(t)
	uc := NewOpenFile(
		domain.Config{BaseURL: "https://sg.example", Git: "git"},
		&fakeLocator{err: &domain.OpError{Op: "repofinder.findroot", Kind: domain.KindNotFound, Err: domain.ErrNotFound}},
		NewResolver(&fakeQueries{}, &fakePrompter{}),
		&fakeOpener{},
	)
	uc.lookPath = lookPathOK

	_, err := uc.Execute(OpenFileParams{Path: file})
	if !domain.IsKind(err, domain.KindUserInput) {
		t.Fatalf("expected KindUserInput, got %v", err)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected wrapped ErrNotFound, got %v", err)
	}
}

func TestOpenFile_ResolutionFailureAborts(t *testing.T) {
	uc, git, opener, file := newOpenFixture(t)
	git.branch = "HEAD" // detached

	_, err := uc.Execute(OpenFileParams{Path: file})
	if !errors.Is(err, domain.ErrDetachedHead) {
		t.Fatalf("expected ErrDetachedHead, got %v", err)
	}
	if len(opener.opened) != 0 {
		t.Fatalf("nothing must be opened on failure, got %v", opener.opened)
	}
}

func TestOpenFile_OpenerFailurePropagates(t *testing.T) {
	uc, _, opener, file := newOpenFixture(t)
	opener.err = errors.New("no browser")

	_, err := uc.Execute(OpenFileParams{Path: file})
	if err == nil {
		t.Fatal("expected error")
	}
}
