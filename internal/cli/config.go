package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/pagewindow/internal/config"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}
	cmd.AddCommand(newConfigShowCmd(root), newConfigValidateCmd(root))
	return cmd
}

func newConfigShowCmd(root *rootOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  "Prints the configuration after applying the config file and PAGEWINDOW_* environment overrides.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := config.OutputYAML
			if cmd.Flags().Changed("output") {
				format = output
			}
			return writeStructured(cmd.OutOrStdout(), format, root.config())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", config.OutputYAML, "output format: json or yaml")
	return cmd
}

func newConfigValidateCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax and semantic correctness.

Loading already rejects malformed YAML, so reaching this command means the
file parsed; the pagination and output settings are checked again here.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := root.config().Validate(); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			cmd.Println("Configuration is valid")
			return nil
		},
	}
}
