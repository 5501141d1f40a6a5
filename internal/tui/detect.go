package tui

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// Mode says whether houston may prompt.
type Mode int

const (
	// ModeNonInteractive: CI, packaging scripts, piped input.
	ModeNonInteractive Mode = iota
	// ModeInteractive: a person can answer prompts on the terminal.
	ModeInteractive
)

func (m Mode) String() string {
	if m == ModeInteractive {
		return "interactive"
	}
	return "non-interactive"
}

// EnvNonInteractive disables prompts when set to a true value ("1", "true").
const EnvNonInteractive = "HOUSTON_NON_INTERACTIVE"

// DetectMode inspects the process environment and standard streams.
//
// Prompts read stdin and draw on stderr, so stdout may be redirected
// (check --json > report.json) without losing interactivity.
func DetectMode() Mode {
	return detectMode(os.Getenv, term.IsTerminal, int(os.Stdin.Fd()), int(os.Stderr.Fd()))
}

func detectMode(getenv func(string) string, isTerminal func(fd int) bool, stdin, stderr int) Mode {
	if off, err := strconv.ParseBool(getenv(EnvNonInteractive)); err == nil && off {
		return ModeNonInteractive
	}
	if getenv("CI") != "" {
		return ModeNonInteractive
	}
	if !isTerminal(stdin) || !isTerminal(stderr) {
		return ModeNonInteractive
	}
	return ModeInteractive
}

// IsInteractive reports whether DetectMode returns ModeInteractive.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
