package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/pagewindow/internal/config"
	"github.com/rshade/pagewindow/internal/logging"
	"github.com/rshade/pagewindow/internal/pagination"
	"github.com/rshade/pagewindow/internal/tui"
)

// maxRecordLineBytes bounds a single input line.
const maxRecordLineBytes = 1024 * 1024

type browseFlags struct {
	opts          pagination.Options
	page          int
	title         string
	plain         bool
	noInteractive bool
	output        string
}

// browseOutput is the structured result of a non-interactive browse.
type browseOutput struct {
	Info    pagination.PageInfo `json:"info"    yaml:"info"`
	Records []string            `json:"records" yaml:"records"`
	Items   []itemView          `json:"items"   yaml:"items"`
}

func newBrowseCmd(root *rootOptions) *cobra.Command {
	flags := browseFlags{opts: pagination.DefaultOptions(), page: 1}

	cmd := &cobra.Command{
		Use:   "browse [file]",
		Short: "Page through newline-delimited records",
		Long: `Pages through the lines of a file, or stdin when no file or "-" is given.

In an interactive terminal a pager UI is started: use ←/→ to change page,
tab to move focus across the pager and enter to open the focused item.
Otherwise the requested --page is printed with the pager underneath.`,
		Example: `  pagewindow browse songs.txt
  pagewindow browse songs.txt --page-limit 25 --neighbors 2
  seq 1 500 | pagewindow browse --page 7
  pagewindow browse songs.txt --page 2 --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runBrowse(cmd, root, flags, path)
		},
	}

	pagination.BindFlags(cmd.Flags(), &flags.opts)
	_ = cmd.Flags().MarkHidden(pagination.FlagTotalRecords)
	cmd.Flags().IntVar(&flags.page, "page", flags.page, "page to open (clamped to the available pages)")
	cmd.Flags().StringVar(&flags.title, "title", "", "header title (default: file name)")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "print unstyled text and never start the interactive UI")
	cmd.Flags().BoolVar(&flags.noInteractive, "no-interactive", false,
		"print a styled page instead of starting the interactive UI")
	cmd.Flags().StringVarP(&flags.output, "output", "o", config.OutputText, "output format: text, json or yaml")

	return cmd
}

func runBrowse(cmd *cobra.Command, root *rootOptions, flags browseFlags, path string) error {
	cfg := root.config()
	format, err := resolveOutput(cmd, flags.output, cfg)
	if err != nil {
		return err
	}

	records, err := readRecords(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	opts := resolvePaginationOptions(cmd, flags.opts, cfg)
	opts.TotalRecords = len(records)

	title := flags.title
	if title == "" {
		title = recordsTitle(path)
	}

	ctx := cmd.Context()
	log := logging.ComponentLogger(logger, "browse")
	log.Debug().Ctx(ctx).Str("source", title).Int("records", len(records)).Msg("records loaded")

	mode := tui.DetectOutputMode(flags.plain || format != config.OutputText, flags.noInteractive)
	if mode == tui.OutputModeInteractive {
		return runInteractiveBrowse(ctx, cmd, interactiveLogger(root.logResult), records, opts, flags.page, title)
	}

	ctrl, err := pagination.New(opts,
		func(info pagination.PageInfo) {
			log.Debug().Ctx(ctx).Int("current_page", info.CurrentPage).Msg("page changed")
		},
		pagination.WithLogger(log),
		pagination.WithInitialPage(flags.page),
	)
	if err != nil {
		return err
	}

	page := pagination.PageSlice(records, ctrl.CurrentPage(), ctrl.Options().PageLimit)

	if format != config.OutputText {
		return writeStructured(cmd.OutOrStdout(), format, browseOutput{
			Info:    ctrl.Info(),
			Records: page,
			Items:   toItemViews(ctrl.Items()),
		})
	}

	return renderStaticPage(cmd.OutOrStdout(), mode, title, ctrl, page)
}

func runInteractiveBrowse(
	ctx context.Context,
	cmd *cobra.Command,
	log zerolog.Logger,
	records []string,
	opts pagination.Options,
	startPage int,
	title string,
) error {
	model, err := tui.NewBrowseModel(records, opts,
		tui.WithTitle(title),
		tui.WithStartPage(startPage),
		tui.WithBrowseLogger(log),
		tui.WithChangeHandler(func(info pagination.PageInfo) {
			log.Debug().Ctx(ctx).
				Int("current_page", info.CurrentPage).
				Int("total_pages", info.TotalPages).
				Msg("page changed")
		}),
	)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err = p.Run(); err != nil {
		return fmt.Errorf("running browse UI: %w", err)
	}
	return nil
}

// renderStaticPage prints one page of records followed by the pager.
func renderStaticPage(
	w io.Writer,
	mode tui.OutputMode,
	title string,
	ctrl *pagination.Controller,
	page []string,
) error {
	var b strings.Builder
	info := ctrl.Info()
	items := ctrl.Items()

	if mode == tui.OutputModeStyled {
		b.WriteString(tui.HeaderStyle.Render(title) + "  " + tui.SubtleStyle.Render(tui.Summary(info)) + "\n\n")
	} else {
		b.WriteString(title + "  " + tui.Summary(info) + "\n\n")
	}

	start, _ := ctrl.Bounds()
	for i, rec := range page {
		fmt.Fprintf(&b, "%s  %s\n", tui.FormatCount(start+i+1), rec)
	}

	if len(items) > 0 {
		b.WriteString("\n")
		if mode == tui.OutputModeStyled {
			b.WriteString(tui.RenderPager(items, tui.NoFocus))
		} else {
			b.WriteString(tui.RenderPlainPager(items))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// readRecords reads newline-delimited records from path, or from stdin when
// path is empty or "-". A trailing empty line is dropped.
func readRecords(stdin io.Reader, path string) ([]string, error) {
	r := stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening records: %w", err)
		}
		defer f.Close()
		r = f
	}

	var records []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxRecordLineBytes)
	for scanner.Scan() {
		records = append(records, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	return records, nil
}

func recordsTitle(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}
