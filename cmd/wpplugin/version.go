package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/pixolin/wpplugin/internal/release"
)

const shortCommitLength = 12

// Build information set by ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print detailed version and build information for wpplugin.",
	RunE:  runVersion,
}

var (
	// versionRequested is set by the --version/-v flag.
	versionRequested bool

	checkFlag bool
)

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.Flags().BoolVarP(
		&versionRequested,
		"version",
		"v",
		false,
		"Print version information",
	)

	versionCmd.Flags().BoolVar(
		&checkFlag,
		"check",
		false,
		"Check GitHub for a newer release",
	)
}

func checkVersionFlag() {
	if versionRequested {
		fmt.Print(versionString())
		os.Exit(0)
	}
}

func runVersion(_ *cobra.Command, _ []string) error {
	fmt.Print(versionString())

	if !checkFlag {
		return nil
	}

	return runReleaseCheck()
}

// runReleaseCheck compares the running version against the latest GitHub
// release of the configured repository.
func runReleaseCheck() error {
	log, err := newLogger()
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	cfg, err := loadConfig(log)
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	updateCfg := cfg.GetUpdate()

	ctx, cancel := context.WithTimeout(context.Background(), updateCfg.GetTimeout())
	defer cancel()

	checker := release.NewChecker(version, updateCfg.GetRepository(), release.NewClient())

	latest, err := checker.CheckLatest(ctx)
	if err != nil {
		if errors.Is(err, release.ErrUpToDate) {
			fmt.Printf("\nAlready up to date (version %s)\n", version)

			return nil
		}

		return errors.Wrap(err, "checking for updates")
	}

	fmt.Printf("\nCurrent version: %s\n", version)
	fmt.Printf("Latest version:  %s\n", latest.TagName)
	fmt.Printf("Download:        %s\n", latest.HTMLURL)

	return nil
}

func versionString() string {
	var b strings.Builder

	fmt.Fprintf(&b, "wpplugin %s\n", version)
	fmt.Fprintf(&b, "  commit:    %s\n", commit)
	fmt.Fprintf(&b, "  built:     %s\n", date)
	fmt.Fprintf(&b, "  go:        %s\n", runtime.Version())
	fmt.Fprintf(&b, "  os/arch:   %s/%s\n", runtime.GOOS, runtime.GOARCH)

	if info, ok := debug.ReadBuildInfo(); ok {
		fmt.Fprintf(&b, "  module:    %s\n", info.Main.Path)

		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				if commit == "unknown" {
					fmt.Fprintf(&b,
						"  vcs.rev:   %s\n",
						setting.Value[:min(shortCommitLength, len(setting.Value))],
					)
				}
			}

			if setting.Key == "vcs.modified" && setting.Value == "true" {
				b.WriteString("  modified:  true\n")
			}
		}
	}

	return b.String()
}
