// Package main provides the CLI entry point for wpplugin.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/pixolin/wpplugin/internal/clipboard"
	"github.com/pixolin/wpplugin/internal/color"
	internalconfig "github.com/pixolin/wpplugin/internal/config"
	"github.com/pixolin/wpplugin/internal/directory"
	"github.com/pixolin/wpplugin/internal/prompt"
	"github.com/pixolin/wpplugin/internal/render"
	"github.com/pixolin/wpplugin/internal/selector"
	"github.com/pixolin/wpplugin/internal/tui"
	"github.com/pixolin/wpplugin/pkg/config"
	"github.com/pixolin/wpplugin/pkg/logger"
)

// LogFileName is the log file created under the global config directory.
const LogFileName = "wpplugin.log"

var (
	formatFlag      string
	localeFlag      string
	timeoutFlag     string
	plainFlag       bool
	interactiveFlag bool
	debugMode       bool
	traceMode       bool
	configPath      string
	globalConfig    string
	noColorFlag     bool
)

func main() {
	os.Exit(mainWithExitCode())
}

func mainWithExitCode() int {
	if err := rootCmd.Execute(); err != nil {
		switch {
		case errors.Is(err, selector.ErrAborted):
			fmt.Fprintln(os.Stdout, "Script aborted")
		case errors.Is(err, selector.ErrNoPlugins):
			fmt.Fprintln(os.Stderr, "No plugins found.")
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		return 1
	}

	return 0
}

var rootCmd = &cobra.Command{
	Use:   "wpplugin <plugin_name>",
	Short: "Search the WordPress plugin directory",
	Long: `Search the WordPress plugin directory, pick one of the matching plugins,
and copy a formatted link to it to your clipboard.`,
	Args: func(cmd *cobra.Command, args []string) error {
		// Cobra validates args before PersistentPreRun, so a bare -v has to
		// pass through here even without a search term.
		if versionRequested {
			return nil
		}

		return cobra.ExactArgs(1)(cmd, args)
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		checkVersionFlag()
	},
	RunE:              runSearch,
	SilenceErrors:     true,
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	rootCmd.Flags().StringVarP(
		&formatFlag,
		"format",
		"f",
		"",
		"Link output format (html, markdown, bbcode, plain)",
	)
	rootCmd.Flags().StringVar(
		&localeFlag,
		"locale",
		"",
		"Locale subdomain for rendered links (e.g. de, en, pt-br)",
	)
	rootCmd.Flags().BoolVarP(
		&interactiveFlag,
		"interactive",
		"i",
		false,
		"Select the plugin with the interactive picker",
	)

	rootCmd.PersistentFlags().StringVar(
		&timeoutFlag,
		"timeout",
		"",
		"Directory API timeout (e.g. 20s)",
	)
	rootCmd.PersistentFlags().BoolVar(
		&plainFlag,
		"plain",
		false,
		"Print the link to stdout instead of copying it",
	)
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"",
		"Path to project configuration file (default: .wpplugin.toml or wpplugin.toml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&globalConfig,
		"global-config",
		"",
		"Path to global configuration file (default: ~/.wpplugin/config.toml)",
	)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&traceMode, "trace", false, "Enable trace logging")
	rootCmd.PersistentFlags().BoolVar(
		&noColorFlag,
		"no-color",
		false,
		"Disable colored output",
	)
}

func runSearch(_ *cobra.Command, args []string) error {
	term := strings.ToLower(strings.TrimSpace(args[0]))
	if term == "" {
		return errors.New("plugin name must not be empty")
	}

	log, err := newLogger()
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	cfg, err := loadConfig(log)
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	log.Info("search invoked",
		"term", term,
		"interactive", interactiveFlag,
		"format", cfg.GetOutput().GetFormat(),
	)

	client := directory.NewClient(
		cfg.GetDirectory().GetAPIURL(),
		cfg.GetDirectory().GetTimeout(),
		log,
	)

	result, err := runQuery(client, term)
	if err != nil {
		return err
	}

	index, err := selectPlugin(result.Plugins, cfg.GetDirectory().GetPageSize(), log)
	if err != nil {
		return err
	}

	plugin := &result.Plugins[index]
	link := render.Link(plugin, cfg.GetOutput().GetFormat(), cfg.GetDirectory().GetBaseURL())

	log.Info("link rendered", "slug", plugin.Slug)

	deliverLink(link, cfg, log)

	return nil
}

// runQuery performs the directory search, behind a spinner when the
// interactive picker was requested.
func runQuery(client directory.Client, term string) (*directory.SearchResult, error) {
	ctx := context.Background()

	var result *directory.SearchResult

	search := func() error {
		var searchErr error
		result, searchErr = client.Search(ctx, term)

		return searchErr
	}

	var err error

	if interactiveMode() {
		err = tui.Spin(
			fmt.Sprintf("Searching for %q...", term),
			search,
			color.NewTheme(color.Profile(noColorFlag)),
		)
	} else {
		err = search()
	}

	if err != nil {
		return nil, errors.Wrap(err, "search failed")
	}

	return result, nil
}

// interactiveMode reports whether the picker and spinner should run.
// --plain always wins over -i.
func interactiveMode() bool {
	return interactiveFlag && !plainFlag
}

// selectPlugin resolves the user's choice, either through the interactive
// picker (-i) or the numbered pager.
func selectPlugin(plugins []directory.Plugin, pageSize int, log logger.Logger) (int, error) {
	if interactiveMode() {
		return tui.New().SelectPlugin(plugins, pageSize)
	}

	sel := selector.New(prompt.NewStdPrompter(), os.Stdout, pageSize, log)

	return sel.Run(plugins)
}

// deliverLink hands the link to the clipboard sink. A disabled clipboard
// (config or --plain) leaves the copier nil, which makes the sink print
// the link instead.
func deliverLink(link string, cfg *config.Config, log logger.Logger) {
	var copier clipboard.Copier

	if cfg.GetClipboard().IsEnabled() {
		copier = clipboard.NewSystemCopier()
	}

	clipboard.NewSink(copier, os.Stdout, log).Deliver(link)
}

// newLogger creates the file logger under the global config directory,
// creating the directory on first run.
func newLogger() (*logger.SlogAdapter, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get home directory")
	}

	logDir := filepath.Join(homeDir, internalconfig.GlobalConfigDir)
	if err := os.MkdirAll(logDir, internalconfig.ConfigDirMode); err != nil {
		return nil, errors.Wrap(err, "failed to create log directory")
	}

	return logger.NewFileLogger(filepath.Join(logDir, LogFileName), debugMode, traceMode)
}

// loadConfig loads configuration from all sources with precedence.
func loadConfig(log logger.Logger) (*config.Config, error) {
	loader, err := internalconfig.NewKoanfLoader()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create config loader")
	}

	if configPath != "" {
		loader.SetProjectConfigPath(configPath)
	}

	if globalConfig != "" {
		loader.SetGlobalConfigPath(globalConfig)
	}

	cfg, err := loader.Load(buildFlagsMap())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	log.Debug("configuration loaded")

	return cfg, nil
}

// buildFlagsMap converts CLI flags to a map for the config provider.
func buildFlagsMap() map[string]any {
	flags := make(map[string]any)

	if formatFlag != "" {
		flags["format"] = formatFlag
	}

	if localeFlag != "" {
		flags["locale"] = localeFlag
	}

	if timeoutFlag != "" {
		flags["timeout"] = timeoutFlag
	}

	if plainFlag {
		flags["plain"] = true
	}

	return flags
}
