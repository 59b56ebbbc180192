package ports

// RepoLocator finds the enclosing repository root starting from an arbitrary
// directory.
type RepoLocator interface {
	FindRoot(startDir string) (string, error)
}
