// Package main provides the CLI entry point for wpplugin.
package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	internalconfig "github.com/pixolin/wpplugin/internal/config"
	"github.com/pixolin/wpplugin/internal/tui"
	pkgConfig "github.com/pixolin/wpplugin/pkg/config"
)

var (
	globalFlag bool
	forceFlag  bool
	noTUIFlag  bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize wpplugin configuration",
	Long: `Initialize wpplugin configuration file.

By default, creates a project-local configuration file (.wpplugin.toml).
Use --global or -g to create a global configuration file (~/.wpplugin/config.toml).

The initialization process will prompt you to configure:
- The locale subdomain used for rendered links
- The link output format
- Whether rendered links are copied to the clipboard

Use --force to overwrite an existing configuration file.
Use --no-tui to use simple prompts instead of the interactive TUI.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVarP(
		&globalFlag,
		"global",
		"g",
		false,
		"Initialize global configuration",
	)

	initCmd.Flags().BoolVar(
		&forceFlag,
		"force",
		false,
		"Overwrite existing configuration file",
	)

	initCmd.Flags().BoolVar(
		&noTUIFlag,
		"no-tui",
		false,
		"Use simple prompts instead of interactive TUI",
	)
}

func runInit(_ *cobra.Command, _ []string) error {
	writer := internalconfig.NewWriter()

	// Check if config already exists
	targetPath, err := checkExistingConfig(writer)
	if err != nil {
		return err
	}

	// Create UI (TUI or fallback based on terminal capabilities and flags)
	ui := tui.NewWithFallback(noTUIFlag)

	cfg, err := ui.RunInitForm(tui.InitFormOptions{
		Global:        globalFlag,
		DefaultLocale: pkgConfig.DefaultLocale,
		DefaultFormat: pkgConfig.FormatHTML,
	})
	if err != nil {
		return errors.Wrap(err, "configuration form failed")
	}

	if err := internalconfig.NewValidator().Validate(cfg); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	if err := writeConfig(writer, cfg, targetPath); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Configuration initialized successfully!")

	return nil
}

// checkExistingConfig checks if config already exists and returns the target path.
func checkExistingConfig(writer *internalconfig.Writer) (string, error) {
	var (
		targetPath   string
		configExists bool
	)

	if globalFlag {
		targetPath = writer.GlobalConfigPath()
		configExists = writer.IsGlobalConfigExists()
	} else {
		targetPath = writer.ProjectConfigPath()
		configExists = writer.IsProjectConfigExists()
	}

	if configExists && !forceFlag {
		return "", errors.Errorf(
			"configuration file already exists: %s\nUse --force to overwrite",
			targetPath,
		)
	}

	return targetPath, nil
}

// writeConfig writes the configuration to the appropriate location.
func writeConfig(writer *internalconfig.Writer, cfg *pkgConfig.Config, targetPath string) error {
	if globalFlag {
		if err := writer.WriteGlobal(cfg); err != nil {
			return errors.Wrap(err, "failed to write global configuration")
		}
	} else {
		if err := writer.WriteProject(cfg); err != nil {
			return errors.Wrap(err, "failed to write project configuration")
		}
	}

	fmt.Printf("\n✅ Configuration written to: %s\n", targetPath)

	return nil
}
