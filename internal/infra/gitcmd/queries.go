package gitcmd

import (
	"strings"

	"github.com/danielmartin/emacs-sourcegraph/internal/domain"
	"github.com/danielmartin/emacs-sourcegraph/internal/ports"
)

// Queries wraps a runner with the handful of read-only lookups remote
// resolution needs.
type Queries struct {
	runner ports.GitRunner
}

func NewQueries(r ports.GitRunner) *Queries {
	return &Queries{runner: r}
}

func (q *Queries) LocalBranch(repoRoot string) (string, error) {
	out, err := q.runner.Run(repoRoot, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", &domain.OpError{Op: "gitcmd.localbranch", Kind: domain.KindBranch, Err: err}
	}
	return out, nil
}

func (q *Queries) Remotes(repoRoot string) ([]string, error) {
	out, err := q.runner.Run(repoRoot, "remote")
	if err != nil {
		return nil, &domain.OpError{Op: "gitcmd.remotes", Kind: domain.KindCommand, Err: err}
	}

	names := strings.Fields(out)
	if len(names) == 0 {
		return nil, &domain.OpError{Op: "gitcmd.remotes", Kind: domain.KindNoRemotes, Err: domain.ErrNoRemotes}
	}
	return names, nil
}

func (q *Queries) RemoteURL(repoRoot, name string) (string, error) {
	out, err := q.runner.Run(repoRoot, "remote", "get-url", name)
	if err != nil {
		return "", &domain.OpError{Op: "gitcmd.remoteurl", Kind: domain.KindRemoteURL, Err: err}
	}
	return out, nil
}

func (q *Queries) UpstreamRef(repoRoot string) (string, error) {
	out, err := q.runner.Run(repoRoot, "rev-parse", "--abbrev-ref", "HEAD@{upstream}")
	if err != nil {
		return "", &domain.OpError{Op: "gitcmd.upstreamref", Kind: domain.KindBranch, Err: err}
	}
	return out, nil
}
