package usecase

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/danielmartin/emacs-sourcegraph/internal/domain"
	"github.com/danielmartin/emacs-sourcegraph/internal/ports"
)

// Resolver determines the checked-out branch, its upstream remote, and that
// remote's URL for a repository root, asking the user to disambiguate when
// tracking information does not settle it.
type Resolver struct {
	git    ports.GitQueries
	prompt ports.Prompter
}

func NewResolver(git ports.GitQueries, prompt ports.Prompter) *Resolver {
	return &Resolver{git: git, prompt: prompt}
}

// BranchAndRemoteURL resolves branch, then upstream remote name, then remote
// URL, propagating the first failure.
func (r *Resolver) BranchAndRemoteURL(repoRoot string) (branch, remoteURL string, err error) {
	branch, err = r.git.LocalBranch(repoRoot)
	if err != nil {
		return "", "", err
	}
	// rev-parse --abbrev-ref yields the literal "HEAD" when detached; an
	// empty result means the ref was not symbolic either.
	if branch == "" || branch == "HEAD" {
		return "", "", &domain.OpError{Op: "resolve.branch", Kind: domain.KindBranch, Err: domain.ErrDetachedHead}
	}

	remote, err := r.UpstreamRemote(repoRoot, branch)
	if err != nil {
		return "", "", err
	}

	remoteURL, err = r.git.RemoteURL(repoRoot, remote)
	if err != nil {
		return "", "", err
	}
	if strings.TrimSpace(remoteURL) == "" {
		return "", "", &domain.OpError{
			Op:   "resolve.remoteurl",
			Kind: domain.KindUserInput,
			Err:  fmt.Errorf("remote %q has no URL", remote),
		}
	}
	return branch, remoteURL, nil
}

// UpstreamRemote finds the remote the branch tracks. The upstream ref comes
// back in the combined "<remote>/<branch>" form; remote names cannot contain
// a slash, so cutting at the first one is exact. When there is no tracking
// information, or the tracked branch is named differently, the user picks a
// remote instead.
//
// A no-remotes failure propagates unchanged: there is nothing to choose from.
func (r *Resolver) UpstreamRemote(repoRoot, branch string) (string, error) {
	ref, err := r.git.UpstreamRef(repoRoot)
	if err != nil {
		if errors.Is(err, domain.ErrNoRemotes) {
			return "", err
		}
		return r.chooseRemote(repoRoot)
	}

	remote, refBranch, ok := strings.Cut(ref, "/")
	if ok && remote != "" && refBranch == branch {
		return remote, nil
	}
	return r.chooseRemote(repoRoot)
}

func (r *Resolver) chooseRemote(repoRoot string) (string, error) {
	names, err := r.git.Remotes(repoRoot)
	if err != nil {
		return "", err
	}

	name, err := r.prompt.SelectRemote(names)
	if err != nil {
		return "", err
	}
	if !slices.Contains(names, name) {
		return "", &domain.OpError{
			Op:   "resolve.chooseremote",
			Kind: domain.KindUserInput,
			Err:  fmt.Errorf("%q is not a configured remote", name),
		}
	}
	return name, nil
}
