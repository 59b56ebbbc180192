package cli

import (
	"fmt"
	"io"

	"github.com/danielmartin/emacs-sourcegraph/internal/domain"
	"github.com/danielmartin/emacs-sourcegraph/internal/infra/browser"
	"github.com/danielmartin/emacs-sourcegraph/internal/infra/config"
	"github.com/danielmartin/emacs-sourcegraph/internal/infra/gitcmd"
	"github.com/danielmartin/emacs-sourcegraph/internal/infra/logger"
	"github.com/danielmartin/emacs-sourcegraph/internal/infra/prompt"
	"github.com/danielmartin/emacs-sourcegraph/internal/infra/repofinder"
	"github.com/danielmartin/emacs-sourcegraph/internal/ports"
	"github.com/danielmartin/emacs-sourcegraph/internal/usecase"
)

// deps wires the infra adapters behind their ports for one command
// invocation.
type deps struct {
	cfg      domain.Config
	locator  ports.RepoLocator
	resolver *usecase.Resolver
	prompter ports.Prompter
	opener   ports.URLOpener
	cleanup  func() error
}

func buildDeps(opts *rootOpts) (*deps, error) {
	cfg, err := config.Load(opts.config)
	if err != nil {
		return nil, err
	}

	cleanup, _ := logger.Setup(logger.Config{Debug: opts.debug})
	logger.L().Debug("config.loaded", "base_url", cfg.BaseURL, "git", cfg.Git, "log", logger.Path())

	runner := gitcmd.NewRunner(cfg.Git)
	pr := prompt.New()

	return &deps{
		cfg:      cfg,
		locator:  repofinder.NewFinder(),
		resolver: usecase.NewResolver(gitcmd.NewQueries(runner), pr),
		prompter: pr,
		opener:   browser.New(),
		cleanup:  cleanup,
	}, nil
}

func (d *deps) close() {
	if d.cleanup != nil {
		_ = d.cleanup()
	}
}

// stdoutOpener writes the URL instead of launching a browser (--print).
// Editors capture it and decide what to do themselves.
type stdoutOpener struct {
	w io.Writer
}

func (o stdoutOpener) Open(url string) error {
	_, err := fmt.Fprintln(o.w, url)
	return err
}
