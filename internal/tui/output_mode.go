package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are rendered.
type OutputMode int

const (
	// OutputModePlain writes unstyled text.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes lipgloss-styled text without interaction.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "plain"
	}
}

// DetectOutputMode picks the output mode for the process's stdin/stdout.
// forcePlain and noInteractive let flags override detection; NO_COLOR and
// TERM=dumb force plain output.
func DetectOutputMode(forcePlain, noInteractive bool) OutputMode {
	return detectOutputMode(
		forcePlain,
		noInteractive,
		term.IsTerminal(int(os.Stdout.Fd())),
		term.IsTerminal(int(os.Stdin.Fd())),
		os.LookupEnv,
	)
}

func detectOutputMode(
	forcePlain, noInteractive, stdoutTTY, stdinTTY bool,
	lookupEnv func(string) (string, bool),
) OutputMode {
	if forcePlain || !stdoutTTY {
		return OutputModePlain
	}
	if _, ok := lookupEnv("NO_COLOR"); ok {
		return OutputModePlain
	}
	if v, _ := lookupEnv("TERM"); v == "dumb" {
		return OutputModePlain
	}
	if noInteractive || !stdinTTY {
		return OutputModeStyled
	}
	return OutputModeInteractive
}
