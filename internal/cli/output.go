package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pagewindow/internal/config"
	"github.com/rshade/pagewindow/internal/pagination"
)

// itemView is the structured form of a pager item.
type itemView struct {
	Kind    pagination.Kind `json:"kind"           yaml:"kind"`
	Page    int             `json:"page,omitempty" yaml:"page,omitempty"`
	Content string          `json:"content"        yaml:"content"`
	Label   string          `json:"label"          yaml:"label"`
	Current bool            `json:"current"        yaml:"current"`
}

func toItemViews(items []pagination.Item) []itemView {
	views := make([]itemView, 0, len(items))
	for _, item := range items {
		views = append(views, itemView{
			Kind:    item.Token.Kind,
			Page:    item.Token.Page,
			Content: item.Content,
			Label:   item.Label,
			Current: item.Current,
		})
	}
	return views
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: got %q", config.ErrInvalidOutputFormat, format)
	}
}

// resolveOutput returns the --output flag value, or the configured default
// when the flag was not set.
func resolveOutput(cmd *cobra.Command, flagValue string, cfg *config.Config) (string, error) {
	format := cfg.Output.DefaultFormat
	if cmd.Flags().Changed("output") {
		format = flagValue
	}
	if err := config.ValidateOutputFormat(format); err != nil {
		return "", err
	}
	return format, nil
}

// resolvePaginationOptions overlays configured page size and neighbor count
// for flags the user did not set.
func resolvePaginationOptions(cmd *cobra.Command, opts pagination.Options, cfg *config.Config) pagination.Options {
	if !cmd.Flags().Changed(pagination.FlagPageLimit) {
		opts.PageLimit = cfg.Pagination.PageLimit
	}
	if !cmd.Flags().Changed(pagination.FlagPageNeighbors) {
		opts.PageNeighbors = cfg.Pagination.PageNeighbors
	}
	return opts
}
