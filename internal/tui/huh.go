package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/cockroachdb/errors"

	"github.com/pixolin/wpplugin/internal/directory"
	"github.com/pixolin/wpplugin/internal/selector"
	pkgConfig "github.com/pixolin/wpplugin/pkg/config"
)

// HuhUI implements UI using charmbracelet/huh.
type HuhUI struct{}

// NewHuhUI creates a new HuhUI instance.
func NewHuhUI() *HuhUI {
	return &HuhUI{}
}

// IsInteractive returns true as HuhUI is for interactive terminals.
func (*HuhUI) IsInteractive() bool {
	return true
}

// SelectPlugin shows an interactive picker over the search results.
// The list scrolls pageSize entries at a time.
func (*HuhUI) SelectPlugin(plugins []directory.Plugin, pageSize int) (int, error) {
	if len(plugins) == 0 {
		return 0, selector.ErrNoPlugins
	}

	options := make([]huh.Option[int], len(plugins))
	for i := range plugins {
		options[i] = huh.NewOption(selector.DisplayName(&plugins[i]), i)
	}

	var index int

	err := huh.NewSelect[int]().
		Title("Select a plugin").
		Options(options...).
		Height(pageSize).
		Value(&index).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return 0, selector.ErrAborted
		}

		return 0, errors.Wrap(err, "prompt failed")
	}

	return index, nil
}

// RunInitForm runs the initialization configuration form using huh.
func (*HuhUI) RunInitForm(opts InitFormOptions) (*pkgConfig.Config, error) {
	var result InitFormResult

	result.ClipboardEnabled = true // Default to enabled

	// Build the form
	form := buildInitForm(opts, &result)

	// Run the form
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, selector.ErrAborted
		}

		return nil, errors.Wrap(err, "prompt failed")
	}

	// Convert result to config
	return buildConfigFromResult(&result)
}

// buildInitForm creates the huh form for initialization.
func buildInitForm(opts InitFormOptions, result *InitFormResult) *huh.Form {
	// Start with locale field
	localeInput := huh.NewInput().
		Title("Link Locale").
		Description("Rendered links point at this wordpress.org subdomain.\nLeave empty to use the default locale.").
		Placeholder(pkgConfig.DefaultLocale).
		Value(&result.Locale)

	if opts.DefaultLocale != "" {
		result.Locale = opts.DefaultLocale
	}

	// Link format field
	formatSelect := huh.NewSelect[string]().
		Title("Link Format").
		Description("Markup used for rendered plugin links.").
		Options(
			huh.NewOption("HTML", pkgConfig.FormatHTML.String()),
			huh.NewOption("Markdown", pkgConfig.FormatMarkdown.String()),
			huh.NewOption("BBCode", pkgConfig.FormatBBCode.String()),
			huh.NewOption("Plain URL", pkgConfig.FormatPlain.String()),
		).
		Value(&result.Format)

	if opts.DefaultFormat != pkgConfig.FormatUnknown {
		result.Format = opts.DefaultFormat.String()
	}

	// Clipboard field
	clipboardConfirm := huh.NewConfirm().
		Title("Copy Links to Clipboard").
		Description("Copies each rendered link to the system clipboard.\nWhen disabled, links are printed to stdout instead.").
		Affirmative("Yes").
		Negative("No").
		Value(&result.ClipboardEnabled)

	groups := []*huh.Group{
		huh.NewGroup(localeInput, formatSelect, clipboardConfirm),
	}

	return huh.NewForm(groups...).
		WithTheme(huh.ThemeCharm()).
		WithShowHelp(true).
		WithKeyMap(huh.NewDefaultKeyMap())
}

// buildConfigFromResult converts the form result to a config struct.
func buildConfigFromResult(result *InitFormResult) (*pkgConfig.Config, error) {
	cfg := &pkgConfig.Config{
		Version: pkgConfig.CurrentConfigVersion,
	}

	// Set locale if provided
	if result.Locale != "" {
		cfg.GetDirectory().Locale = result.Locale
	}

	// Set link format if provided
	if result.Format != "" {
		format, err := pkgConfig.ParseFormat(result.Format)
		if err != nil {
			return nil, err
		}

		cfg.GetOutput().Format = format
	}

	// Set clipboard behavior
	cfg.GetClipboard().Enabled = &result.ClipboardEnabled

	return cfg, nil
}
