// Package main provides the CLI entry point for wpplugin.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/pixolin/wpplugin/internal/color"
	"github.com/pixolin/wpplugin/internal/directory"
	"github.com/pixolin/wpplugin/internal/render"
)

var infoCmd = &cobra.Command{
	Use:   "info <slug>",
	Short: "Show details for a plugin",
	Long: `Show the directory record for a single plugin, looked up by its slug.

The slug is the plugin's identifier in the directory, e.g. "contact-form-7"
for https://wordpress.org/plugins/contact-form-7/.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(_ *cobra.Command, args []string) error {
	slug := strings.ToLower(strings.TrimSpace(args[0]))
	if slug == "" {
		return errors.New("plugin slug must not be empty")
	}

	log, err := newLogger()
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	cfg, err := loadConfig(log)
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	client := directory.NewClient(
		cfg.GetDirectory().GetAPIURL(),
		cfg.GetDirectory().GetTimeout(),
		log,
	)

	plugin, err := client.Info(context.Background(), slug)
	if err != nil {
		return err
	}

	if plainFlag || !color.IsTerminal(os.Stdout) {
		fmt.Print(render.DetailLines(plugin))

		return nil
	}

	theme := color.NewTheme(color.Profile(noColorFlag))
	fmt.Println(render.Detail(plugin, theme))

	return nil
}
