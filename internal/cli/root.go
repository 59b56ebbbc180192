package cli

import (
	"os"

	"github.com/spf13/cobra"
)

type rootOpts struct {
	debug  bool
	config string
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:          "sgopen",
		Short:        "sgopen — open files and searches in Sourcegraph from the terminal",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to the sgopen log file")
	cmd.PersistentFlags().StringVar(&opts.config, "config", "", "config file path (default: the sgopen dir under the user config dir)")

	cmd.AddCommand(openCmd(opts))
	cmd.AddCommand(searchCmd(opts))
	cmd.AddCommand(versionCmd())
	return cmd
}
