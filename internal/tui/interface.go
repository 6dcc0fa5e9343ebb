// Package tui provides terminal user interface components.
package tui

import (
	"github.com/pixolin/wpplugin/internal/directory"
	pkgConfig "github.com/pixolin/wpplugin/pkg/config"
)

// UI defines the interface for terminal user interface operations.
// This interface abstracts the TUI implementation to allow for both
// interactive (huh) and fallback (simple prompt) implementations.
type UI interface {
	// SelectPlugin lets the user pick one plugin from the search results.
	// Returns the zero-based index into plugins.
	SelectPlugin(plugins []directory.Plugin, pageSize int) (int, error)

	// RunInitForm runs the initialization configuration form.
	RunInitForm(opts InitFormOptions) (*pkgConfig.Config, error)

	// IsInteractive returns true if running in an interactive terminal.
	IsInteractive() bool
}

// InitFormOptions contains options for the init form.
type InitFormOptions struct {
	// Global indicates whether this is a global or project config.
	Global bool

	// DefaultLocale is the locale preselected in the form.
	DefaultLocale string

	// DefaultFormat is the link format preselected in the form.
	DefaultFormat pkgConfig.Format
}

// InitFormResult contains the results from the init form.
type InitFormResult struct {
	// Locale is the configured wordpress.org locale.
	Locale string

	// Format is the configured link output format.
	Format string

	// ClipboardEnabled indicates whether links are copied to the clipboard.
	ClipboardEnabled bool
}
