package ports

// GitRunner invokes the configured git executable synchronously with dir as
// its working directory and returns the captured output with a single
// trailing newline stripped. A nonzero exit surfaces as a wrapped
// domain.CommandError.
type GitRunner interface {
	Run(dir string, args ...string) (string, error)
}
