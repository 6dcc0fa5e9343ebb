package tui

import (
	"os"

	"golang.org/x/term"
)

// New returns the UI for the current terminal. On a TTY the huh-based
// picker is used; piped or redirected runs get the numbered fallback
// pager so output stays line-oriented.
func New() UI {
	if IsTerminal() {
		return NewHuhUI()
	}

	return NewFallbackUI()
}

// NewWithFallback is New with an explicit override. It backs the
// --no-tui flag on init, which forces the plain prompts even on a TTY.
func NewWithFallback(noTUI bool) UI {
	if noTUI {
		return NewFallbackUI()
	}

	return New()
}

// IsTerminal checks if stdin and stdout are connected to a terminal.
func IsTerminal() bool {
	//nolint:gosec // G115: file descriptors are always small positive integers; uintptr→int is safe
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
