package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/pagewindow/internal/config"
	"github.com/rshade/pagewindow/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger = zerolog.Nop() //nolint:gochecknoglobals // Required for zerolog context integration

// rootOptions carries persistent flag values and state loaded before a
// subcommand runs.
type rootOptions struct {
	configPath string
	debug      bool

	cfg       *config.Config
	logResult *logging.LogPathResult
}

// NewRootCmd creates the root Cobra command for the pagewindow CLI.
// It loads configuration, wires up logging and registers the window, browse
// and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "pagewindow",
		Short:         "Compute and browse windowed pagination",
		Long:          "pagewindow: compute which page numbers and ellipses a pagination control shows, and page through records interactively",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg

			result := setupLogging(cmd, opts)
			opts.logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(opts.logResult)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"config file (default $PAGEWINDOW_HOME/config.yaml or ~/.pagewindow/config.yaml)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newWindowCmd(opts), newBrowseCmd(opts), newConfigCmd(opts))

	return cmd
}

// config returns the loaded configuration, or defaults when no pre-run
// happened (e.g. a subcommand executed directly in tests).
func (o *rootOptions) config() *config.Config {
	if o.cfg == nil {
		return config.New()
	}
	return o.cfg
}

const rootCmdExample = `  # Show the pager for page 6 of 10 with two neighbors
  pagewindow window --total-pages 10 --page 6 --neighbors 2

  # Same window as JSON, derived from a record count
  pagewindow window --total-records 95 --page-limit 10 --page 6 --output json

  # Page through a file interactively
  pagewindow browse songs.txt --page-limit 20

  # Print page 3 of piped input
  seq 1 500 | pagewindow browse --page 3

  # Show the effective configuration
  pagewindow config show`
