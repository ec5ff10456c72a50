package cli

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/rshade/pagewindow/internal/config"
	"github.com/rshade/pagewindow/internal/pagination"
	"github.com/rshade/pagewindow/internal/tui"
)

// ErrInvalidTotalPages is returned for a negative --total-pages or one whose
// record count does not fit in an int.
var ErrInvalidTotalPages = errors.New("invalid total-pages")

type windowFlags struct {
	opts       pagination.Options
	totalPages int
	page       int
	output     string
	labels     bool
}

// windowOutput is the structured result of the window command.
type windowOutput struct {
	Info  pagination.PageInfo `json:"info"  yaml:"info"`
	Items []itemView          `json:"items" yaml:"items"`
}

func newWindowCmd(root *rootOptions) *cobra.Command {
	flags := windowFlags{opts: pagination.DefaultOptions(), page: 1}

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Print the page window for a position",
		Long: `Prints the page numbers and ellipsis markers a pagination control shows.

The first and last pages are always shown. Up to --neighbors pages (0-2) are
shown on each side of the current page, and hidden runs of pages collapse into
"..." markers. --total-pages overrides --total-records.`,
		Example: `  pagewindow window --total-pages 10 --page 6 --neighbors 2
  pagewindow window --total-records 1115 --page-limit 25 --page 12 --labels
  pagewindow window --total-pages 40 --page 3 --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWindow(cmd, root.config(), flags)
		},
	}

	pagination.BindFlags(cmd.Flags(), &flags.opts)
	cmd.Flags().IntVar(&flags.totalPages, "total-pages", 0, "total number of pages (overrides --total-records)")
	cmd.Flags().IntVar(&flags.page, "page", flags.page, "current page (clamped to the available pages)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", config.OutputText, "output format: text, json or yaml")
	cmd.Flags().BoolVar(&flags.labels, "labels", false, "print the accessible label of every item (text output)")

	return cmd
}

func runWindow(cmd *cobra.Command, cfg *config.Config, flags windowFlags) error {
	format, err := resolveOutput(cmd, flags.output, cfg)
	if err != nil {
		return err
	}

	opts := resolvePaginationOptions(cmd, flags.opts, cfg)
	if cmd.Flags().Changed("total-pages") {
		if flags.totalPages < 0 {
			return fmt.Errorf("%w: cannot be negative: got %d", ErrInvalidTotalPages, flags.totalPages)
		}
		if opts.PageLimit == 0 {
			opts.PageLimit = pagination.DefaultPageLimit
		}
		if opts.PageLimit > 0 && flags.totalPages > math.MaxInt/opts.PageLimit {
			return fmt.Errorf("%w: %d pages of %d records overflows the record count",
				ErrInvalidTotalPages, flags.totalPages, opts.PageLimit)
		}
		opts.TotalRecords = flags.totalPages * opts.PageLimit
	}

	ctx := cmd.Context()
	ctrl, err := pagination.New(opts,
		func(info pagination.PageInfo) {
			logger.Debug().Ctx(ctx).Int("current_page", info.CurrentPage).Msg("page changed")
		},
		pagination.WithLogger(logger),
		pagination.WithInitialPage(flags.page),
	)
	if err != nil {
		return err
	}

	items := ctrl.Items()
	logger.Debug().Ctx(ctx).
		Int("current_page", ctrl.CurrentPage()).
		Int("total_pages", ctrl.TotalPages()).
		Int("items", len(items)).
		Msg("computed page window")

	if format != config.OutputText {
		return writeStructured(cmd.OutOrStdout(), format, windowOutput{
			Info:  ctrl.Info(),
			Items: toItemViews(items),
		})
	}

	out := cmd.OutOrStdout()
	if len(items) == 0 {
		_, err = fmt.Fprintln(out, "No pages")
		return err
	}
	if _, err = fmt.Fprintln(out, tui.RenderPlainPager(items)); err != nil {
		return err
	}
	if flags.labels {
		_, err = fmt.Fprint(out, tui.RenderLabels(items))
	}
	return err
}
