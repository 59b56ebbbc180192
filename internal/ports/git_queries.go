package ports

// GitQueries exposes the read-only repository lookups remote resolution
// needs. Every method maps to exactly one git invocation.
type GitQueries interface {
	// LocalBranch returns the checked-out branch name, or the literal
	// "HEAD" when detached.
	LocalBranch(repoRoot string) (string, error)

	// Remotes returns the configured remote names. An empty list is a
	// distinguished failure (domain.ErrNoRemotes) rather than a result.
	Remotes(repoRoot string) ([]string, error)

	// RemoteURL returns the fetch URL of the named remote.
	RemoteURL(repoRoot, name string) (string, error)

	// UpstreamRef returns HEAD's upstream tracking ref in the combined
	// "<remote>/<branch>" form.
	UpstreamRef(repoRoot string) (string, error)
}
