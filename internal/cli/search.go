package cli

import (
	"github.com/spf13/cobra"

	"github.com/danielmartin/emacs-sourcegraph/internal/infra/logger"
	"github.com/danielmartin/emacs-sourcegraph/internal/ports"
	"github.com/danielmartin/emacs-sourcegraph/internal/usecase"
)

func searchCmd(opts *rootOpts) *cobra.Command {
	var def string
	var printOnly bool

	c := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the configured Sourcegraph instance",
		Long: `Search the configured Sourcegraph instance with a literal pattern.

Without a query argument an interactive prompt opens, prefilled with
--default (editors pass the active selection or the identifier under the
cursor there).`,
		Args: cobra.MaximumNArgs(1),
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

			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			uc := usecase.NewSearch(d.cfg, d.prompter, opener)
			url, err := uc.Execute(usecase.SearchParams{
				Query:       query,
				Default:     def,
				Interactive: len(args) == 0,
			})
			if err != nil {
				return err
			}

			logger.L().Info("search.done", "url", url)
			return nil
		},
	}

	c.Flags().StringVar(&def, "default", "", "prefill for the interactive prompt")
	c.Flags().BoolVar(&printOnly, "print", false, "print the URL instead of opening a browser")
	return c
}
