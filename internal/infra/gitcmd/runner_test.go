package gitcmd

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielmartin/emacs-sourcegraph/internal/domain"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func TestRun_Success(t *testing.T) {
	requireGit(t)
	dir := initRepo(t)

	out, err := NewRunner("").Run(dir, "rev-parse", "--is-inside-work-tree")
	require.NoError(t, err)
	assert.Equal(t, "true", out)
}

func TestRun_StripsOnlyOneTrailingNewline(t *testing.T) {
	requireGit(t)
	dir := initRepo(t)

	// A config value with a trailing space must come back intact; only the
	// newline git appends is removed.
	gitHelper(t, dir, "config", "sgopen.probe", "hello ")

	out, err := NewRunner("").Run(dir, "config", "sgopen.probe")
	require.NoError(t, err)
	assert.Equal(t, "hello ", out)
}

func TestRun_NonzeroExit(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()

	_, err := NewRunner("").Run(dir, "rev-parse", "--abbrev-ref", "HEAD")
	require.Error(t, err)

	var ce *domain.CommandError
	require.True(t, errors.As(err, &ce), "expected CommandError, got %v", err)
	assert.True(t, domain.IsKind(err, domain.KindCommand))
	assert.Equal(t, []string{"rev-parse", "--abbrev-ref", "HEAD"}, ce.Args)
	assert.NotZero(t, ce.ExitCode)
	assert.NotEmpty(t, ce.Output)
}

func TestRun_MissingExecutable(t *testing.T) {
	_, err := NewRunner("definitely-not-a-real-git-binary").Run(t.TempDir(), "remote")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindCommand))

	var ce *domain.CommandError
	assert.False(t, errors.As(err, &ce), "startup failure is not a CommandError")
}
