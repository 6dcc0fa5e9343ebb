// Package config provides internal configuration loading and processing.
package config

import (
	"github.com/pixolin/wpplugin/pkg/config"
)

// DefaultConfig returns a Config with all default values populated.
// This is the config written to disk by `wpplugin init`.
func DefaultConfig() *config.Config {
	return &config.Config{
		Version:   config.CurrentConfigVersion,
		Directory: DefaultDirectoryConfig(),
		Output:    DefaultOutputConfig(),
		Clipboard: DefaultClipboardConfig(),
		Update:    DefaultUpdateConfig(),
	}
}

// DefaultDirectoryConfig returns the default plugin directory configuration.
// BaseURL stays empty so the link base derives from the locale subdomain.
func DefaultDirectoryConfig() *config.DirectoryConfig {
	pageSize := config.DefaultPageSize

	return &config.DirectoryConfig{
		APIURL:   config.DefaultAPIURL,
		Locale:   config.DefaultLocale,
		Timeout:  config.Duration(config.DefaultTimeout),
		PageSize: &pageSize,
	}
}

// DefaultOutputConfig returns the default output configuration.
func DefaultOutputConfig() *config.OutputConfig {
	return &config.OutputConfig{
		Format: config.FormatHTML,
	}
}

// DefaultClipboardConfig returns the default clipboard configuration.
func DefaultClipboardConfig() *config.ClipboardConfig {
	enabled := true

	return &config.ClipboardConfig{
		Enabled: &enabled,
	}
}

// DefaultUpdateConfig returns the default release check configuration.
func DefaultUpdateConfig() *config.UpdateConfig {
	return &config.UpdateConfig{
		Repository: config.DefaultUpdateRepository,
		Timeout:    config.Duration(config.DefaultUpdateTimeout),
	}
}
