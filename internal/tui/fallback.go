package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/pixolin/wpplugin/internal/directory"
	"github.com/pixolin/wpplugin/internal/prompt"
	"github.com/pixolin/wpplugin/internal/selector"
	pkgConfig "github.com/pixolin/wpplugin/pkg/config"
	"github.com/pixolin/wpplugin/pkg/logger"
)

// FallbackUI implements UI using simple stdin/stdout prompts.
// This is used when the terminal is not interactive (CI, piped input, etc.).
type FallbackUI struct {
	prompter prompt.Prompter
	writer   io.Writer
	logger   logger.Logger
}

// NewFallbackUI creates a new FallbackUI instance.
func NewFallbackUI() *FallbackUI {
	return &FallbackUI{
		prompter: prompt.NewStdPrompter(),
		writer:   os.Stdout,
		logger:   logger.NewNoOpLogger(),
	}
}

// NewFallbackUIWithPrompter creates a FallbackUI with a custom prompter.
func NewFallbackUIWithPrompter(p prompt.Prompter, w io.Writer) *FallbackUI {
	return &FallbackUI{
		prompter: p,
		writer:   w,
		logger:   logger.NewNoOpLogger(),
	}
}

// IsInteractive returns false as FallbackUI is for non-interactive terminals.
func (*FallbackUI) IsInteractive() bool {
	return false
}

// SelectPlugin runs the numbered pager selection loop.
func (f *FallbackUI) SelectPlugin(plugins []directory.Plugin, pageSize int) (int, error) {
	return selector.New(f.prompter, f.writer, pageSize, f.logger).Run(plugins)
}

// RunInitForm runs the initialization configuration form using simple prompts.
func (f *FallbackUI) RunInitForm(opts InitFormOptions) (*pkgConfig.Config, error) {
	var result InitFormResult

	// Display header
	f.displayHeader(opts.Global)

	// Prompt for link locale
	if err := f.promptLocale(opts.DefaultLocale, &result); err != nil {
		return nil, err
	}

	fmt.Fprintln(f.writer)

	// Prompt for link format
	if err := f.promptFormat(opts.DefaultFormat, &result); err != nil {
		return nil, err
	}

	fmt.Fprintln(f.writer)

	// Prompt for clipboard behavior
	if err := f.promptClipboard(&result); err != nil {
		return nil, err
	}

	// Convert result to config
	return buildConfigFromResult(&result)
}

// displayHeader displays the configuration header.
func (f *FallbackUI) displayHeader(global bool) {
	fmt.Fprintln(f.writer, "╔═══════════════════════════════════════════════╗")

	if global {
		fmt.Fprintln(f.writer, "║   wpplugin Global Configuration Setup         ║")
	} else {
		fmt.Fprintln(f.writer, "║   wpplugin Project Configuration Setup        ║")
	}

	fmt.Fprintln(f.writer, "╚═══════════════════════════════════════════════╝")
	fmt.Fprintln(f.writer)
}

// promptLocale prompts for the link locale.
//
//nolint:unparam // error return kept for consistent API
func (f *FallbackUI) promptLocale(defaultLocale string, result *InitFormResult) error {
	fmt.Fprintln(f.writer, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Fprintln(f.writer, "Link Locale Configuration")
	fmt.Fprintln(f.writer, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Fprintln(f.writer, "Rendered links point at this wordpress.org subdomain.")
	fmt.Fprintln(f.writer, "Leave empty to use the default locale.")
	fmt.Fprintln(f.writer)

	locale, err := f.prompter.Input("Locale (e.g. de, en, pt-br)", defaultLocale)
	if err != nil {
		// Allow empty input
		locale = ""
	}

	result.Locale = locale

	if locale == "" {
		fmt.Fprintln(f.writer, "✓ Using the default locale")
	} else {
		fmt.Fprintf(f.writer, "✓ Locale configured: %s\n", locale)
	}

	return nil
}

// promptFormat prompts for the link output format.
func (f *FallbackUI) promptFormat(defaultFormat pkgConfig.Format, result *InitFormResult) error {
	fmt.Fprintln(f.writer, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Fprintln(f.writer, "Link Format Configuration")
	fmt.Fprintln(f.writer, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Fprintln(f.writer, "Markup used for rendered plugin links.")
	fmt.Fprintln(f.writer)

	if defaultFormat == pkgConfig.FormatUnknown {
		defaultFormat = pkgConfig.FormatHTML
	}

	input, err := f.prompter.Input("Format (html, markdown, bbcode, plain)", defaultFormat.String())
	if err != nil {
		return err
	}

	format, err := pkgConfig.ParseFormat(input)
	if err != nil {
		return err
	}

	result.Format = format.String()

	fmt.Fprintf(f.writer, "✓ Format configured: %s\n", format)

	return nil
}

// promptClipboard prompts for clipboard configuration.
func (f *FallbackUI) promptClipboard(result *InitFormResult) error {
	fmt.Fprintln(f.writer, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Fprintln(f.writer, "Clipboard Configuration")
	fmt.Fprintln(f.writer, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Fprintln(f.writer, "Copies each rendered link to the system clipboard.")
	fmt.Fprintln(f.writer, "When disabled, links are printed to stdout instead.")
	fmt.Fprintln(f.writer)

	enabled, err := f.prompter.Confirm("Copy links to the clipboard", true)
	if err != nil {
		return err
	}

	result.ClipboardEnabled = enabled

	if enabled {
		fmt.Fprintln(f.writer, "✓ Clipboard copying enabled")
	} else {
		fmt.Fprintln(f.writer, "✓ Clipboard copying disabled")
	}

	return nil
}
