package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/pagewindow/internal/logging"
)

// setupLogging configures logging from the loaded config and CLI flags, and
// stores a trace ID and the logger on the command context.
func setupLogging(cmd *cobra.Command, opts *rootOptions) logging.LogPathResult {
	loggingCfg := opts.config().Logging

	if opts.debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.File = ""
	}

	if loggingCfg.File != "" {
		if err := loggingCfg.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	logCfg := loggingCfg.ToLoggingConfig()
	logCfg.Caller = opts.debug

	result := logging.NewLoggerWithPath(logCfg)
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := logging.ContextWithTraceID(cmd.Context(), logging.GetOrGenerateTraceID(cmd.Context()))
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle, if any.
func cleanupLogging(logResult *logging.LogPathResult) error {
	if logResult == nil {
		return nil
	}
	return logResult.Close()
}

// interactiveLogger returns the logger for a full-screen UI. Events written
// to stderr would draw over the screen, so logging is discarded unless it
// goes to a file.
func interactiveLogger(logResult *logging.LogPathResult) zerolog.Logger {
	if logResult == nil || !logResult.UsingFile {
		return zerolog.Nop()
	}
	return logging.ComponentLogger(logResult.Logger, "tui")
}
