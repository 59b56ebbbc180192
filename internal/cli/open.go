package cli

import (
	"github.com/spf13/cobra"

	"github.com/danielmartin/emacs-sourcegraph/internal/domain"
	"github.com/danielmartin/emacs-sourcegraph/internal/infra/logger"
	"github.com/danielmartin/emacs-sourcegraph/internal/ports"
	"github.com/danielmartin/emacs-sourcegraph/internal/usecase"
)

func openCmd(opts *rootOpts) *cobra.Command {
	var startLine, startCol, endLine, endCol int
	var printOnly bool

	c := &cobra.Command{
		Use:   "open <file>",
		Short: "Open a file region on the configured Sourcegraph instance",
		Long: `Open a file region on the configured Sourcegraph instance.

Line and column numbers are zero-based, matching what editor integrations
report. With no region flags the cursor is a collapsed position at the top
of the file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps(opts)
			if err != nil {
				return err
			}
			defer d.close()

			var opener ports.URLOpener = d.opener
			if printOnly {
				opener = stdoutOpener{w: cmd.OutOrStdout()}
			}

			uc := usecase.NewOpenFile(d.cfg, d.locator, d.resolver, opener)
			url, err := uc.Execute(usecase.OpenFileParams{
				Path: args[0],
				Region: domain.Region{
					StartLine: startLine,
					StartCol:  startCol,
					EndLine:   endLine,
					EndCol:    endCol,
				},
			})
			if err != nil {
				return err
			}

			logger.L().Info("open.done", "file", args[0], "url", url)
			return nil
		},
	}

	c.Flags().IntVar(&startLine, "start-line", 0, "selection start line (zero-based)")
	c.Flags().IntVar(&startCol, "start-col", 0, "selection start column (zero-based)")
	c.Flags().IntVar(&endLine, "end-line", 0, "selection end line (zero-based)")
	c.Flags().IntVar(&endCol, "end-col", 0, "selection end column (zero-based)")
	c.Flags().BoolVar(&printOnly, "print", false, "print the URL instead of opening a browser")
	return c
}
