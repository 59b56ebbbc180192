package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrNoRemotes     = errors.New("no remotes configured")
	ErrDetachedHead  = errors.New("detached HEAD")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindUserInput     ErrorKind = "user_input"
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindCommand       ErrorKind = "command"
	KindBranch        ErrorKind = "branch"
	KindRemoteURL     ErrorKind = "remote_url"
	KindNoRemotes     ErrorKind = "no_remotes"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// CommandError reports a git invocation that exited nonzero. It keeps the
// full argument vector and captured output so the user sees what git saw.
type CommandError struct {
	Command  string
	Args     []string
	ExitCode int
	Output   string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s %s: exit status %d", e.Command, strings.Join(e.Args, " "), e.ExitCode)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}
