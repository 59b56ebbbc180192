package gitcmd

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"

	"github.com/danielmartin/emacs-sourcegraph/internal/domain"
)

// Runner executes the configured git binary synchronously. It is the single
// primitive every higher-level query composes: one blocking invocation,
// combined output, no streaming, no timeout, no retry.
type Runner struct {
	git string
}

func NewRunner(git string) *Runner {
	if git == "" {
		git = "git"
	}
	return &Runner{git: git}
}

// Run invokes git with dir as the working directory. On success the captured
// output is returned with a single trailing newline stripped and no other
// trimming. A nonzero exit yields a domain.CommandError carrying the full
// argument vector, exit status, and captured output.
func (r *Runner) Run(dir string, args ...string) (string, error) {
	cmd := exec.Command(r.git, args...)
	cmd.Dir = dir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &domain.OpError{
				Op:   "gitcmd.run",
				Kind: domain.KindCommand,
				Err: &domain.CommandError{
					Command:  r.git,
					Args:     args,
					ExitCode: exitErr.ExitCode(),
					Output:   out.String(),
				},
			}
		}
		// Executable missing or not startable.
		return "", &domain.OpError{Op: "gitcmd.run", Kind: domain.KindCommand, Err: err}
	}

	return strings.TrimSuffix(out.String(), "\n"), nil
}
