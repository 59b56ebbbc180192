// Package browser hands URLs to the operating system's default browser.
package browser

import (
	"os/exec"
	"runtime"

	"github.com/danielmartin/emacs-sourcegraph/internal/domain"
)

type Opener struct{}

func New() *Opener {
	return &Opener{}
}

// Open launches the platform opener and blocks until it returns. The opener
// itself exits quickly once it has handed the URL to the browser.
func (*Opener) Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	out, err := cmd.CombinedOutput()
	if err != nil {
		exit := -1
		if cmd.ProcessState != nil {
			exit = cmd.ProcessState.ExitCode()
		}
		return &domain.OpError{
			Op:   "browser.open",
			Kind: domain.KindCommand,
			Err: &domain.CommandError{
				Command:  cmd.Args[0],
				Args:     cmd.Args[1:],
				ExitCode: exit,
				Output:   string(out),
			},
		}
	}
	return nil
}
