// Package config provides configuration schema types for wpplugin.
package config

import (
	"fmt"
	"time"
)

// CurrentConfigVersion is the latest config schema version.
const CurrentConfigVersion = 1

// Default values for the directory section.
const (
	// DefaultAPIURL is the WordPress plugin directory API endpoint.
	DefaultAPIURL = "https://api.wordpress.org/plugins/info/1.2/"

	// DefaultLocale selects the wordpress.org subdomain used for links.
	DefaultLocale = "de"

	// DefaultTimeout is the default timeout for directory API requests.
	DefaultTimeout = 20 * time.Second

	// DefaultPageSize is the number of plugins shown per selection page.
	DefaultPageSize = 10
)

// Default values for the update section.
const (
	// DefaultUpdateRepository is the GitHub repository checked for releases.
	DefaultUpdateRepository = "pixolin/wpplugin"

	// DefaultUpdateTimeout is the default timeout for release checks.
	DefaultUpdateTimeout = 30 * time.Second
)

// Config represents the root configuration for wpplugin.
type Config struct {
	// Version is the config schema version. Defaults to 1 when omitted.
	Version int `json:"version,omitempty" koanf:"version" toml:"version,omitempty"`

	// Directory configures the plugin directory API client.
	Directory *DirectoryConfig `json:"directory,omitempty" koanf:"directory" toml:"directory,omitempty"`

	// Output configures link rendering.
	Output *OutputConfig `json:"output,omitempty" koanf:"output" toml:"output,omitempty"`

	// Clipboard configures the system clipboard sink.
	Clipboard *ClipboardConfig `json:"clipboard,omitempty" koanf:"clipboard" toml:"clipboard,omitempty"`

	// Update configures the release check.
	Update *UpdateConfig `json:"update,omitempty" koanf:"update" toml:"update,omitempty"`
}

// DirectoryConfig contains settings for the WordPress plugin directory API.
type DirectoryConfig struct {
	// APIURL is the plugin directory API endpoint.
	// Default: "https://api.wordpress.org/plugins/info/1.2/"
	APIURL string `json:"api_url,omitempty" koanf:"api_url" toml:"api_url,omitempty"`

	// Locale selects the wordpress.org subdomain used for rendered links.
	// Default: "de"
	Locale string `json:"locale,omitempty" koanf:"locale" toml:"locale,omitempty"`

	// BaseURL overrides the locale-derived link base when set.
	// Must end with a trailing slash.
	BaseURL string `json:"base_url,omitempty" koanf:"base_url" toml:"base_url,omitempty"`

	// Timeout is the timeout for directory API requests.
	// Default: "20s"
	Timeout Duration `json:"timeout,omitempty" koanf:"timeout" toml:"timeout,omitempty"`

	// PageSize is the number of plugins shown per selection page.
	// Default: 10
	PageSize *int `json:"page_size,omitempty" koanf:"page_size" toml:"page_size,omitempty"`
}

// OutputConfig contains settings for link rendering.
type OutputConfig struct {
	// Format is the link output format.
	// "html" (default), "markdown", "bbcode", or "plain".
	Format Format `json:"format,omitempty" koanf:"format" toml:"format,omitempty"`
}

// ClipboardConfig contains settings for the clipboard sink.
type ClipboardConfig struct {
	// Enabled controls whether rendered links are copied to the clipboard.
	// When false, links print to stdout in the fallback form.
	// Default: true
	Enabled *bool `json:"enabled,omitempty" koanf:"enabled" toml:"enabled,omitempty"`
}

// UpdateConfig contains settings for the GitHub release check.
type UpdateConfig struct {
	// Repository is the "owner/name" GitHub repository checked for releases.
	// Default: "pixolin/wpplugin"
	Repository string `json:"repository,omitempty" koanf:"repository" toml:"repository,omitempty"`

	// Timeout is the timeout for release check requests.
	// Default: "30s"
	Timeout Duration `json:"timeout,omitempty" koanf:"timeout" toml:"timeout,omitempty"`
}

// GetDirectory returns the directory config, creating it if it doesn't exist.
func (c *Config) GetDirectory() *DirectoryConfig {
	if c.Directory == nil {
		c.Directory = &DirectoryConfig{}
	}

	return c.Directory
}

// GetOutput returns the output config, creating it if it doesn't exist.
func (c *Config) GetOutput() *OutputConfig {
	if c.Output == nil {
		c.Output = &OutputConfig{}
	}

	return c.Output
}

// GetClipboard returns the clipboard config, creating it if it doesn't exist.
func (c *Config) GetClipboard() *ClipboardConfig {
	if c.Clipboard == nil {
		c.Clipboard = &ClipboardConfig{}
	}

	return c.Clipboard
}

// GetUpdate returns the update config, creating it if it doesn't exist.
func (c *Config) GetUpdate() *UpdateConfig {
	if c.Update == nil {
		c.Update = &UpdateConfig{}
	}

	return c.Update
}

// GetAPIURL returns the API endpoint.
// Returns DefaultAPIURL if APIURL is empty.
func (d *DirectoryConfig) GetAPIURL() string {
	if d == nil || d.APIURL == "" {
		return DefaultAPIURL
	}

	return d.APIURL
}

// GetLocale returns the link locale.
// Returns DefaultLocale if Locale is empty.
func (d *DirectoryConfig) GetLocale() string {
	if d == nil || d.Locale == "" {
		return DefaultLocale
	}

	return d.Locale
}

// GetBaseURL returns the link base URL. When BaseURL is unset the base is
// derived from the locale subdomain, e.g. "https://de.wordpress.org/plugins/".
func (d *DirectoryConfig) GetBaseURL() string {
	if d != nil && d.BaseURL != "" {
		return d.BaseURL
	}

	return fmt.Sprintf("https://%s.wordpress.org/plugins/", d.GetLocale())
}

// GetTimeout returns the request timeout as a time.Duration.
// Returns DefaultTimeout if Timeout is zero.
func (d *DirectoryConfig) GetTimeout() time.Duration {
	if d == nil || d.Timeout == 0 {
		return DefaultTimeout
	}

	return time.Duration(d.Timeout)
}

// GetPageSize returns the selection page size.
// Returns DefaultPageSize if PageSize is nil or non-positive.
func (d *DirectoryConfig) GetPageSize() int {
	if d == nil || d.PageSize == nil || *d.PageSize <= 0 {
		return DefaultPageSize
	}

	return *d.PageSize
}

// GetFormat returns the link format, defaulting to HTML if not set.
func (o *OutputConfig) GetFormat() Format {
	if o == nil || o.Format == FormatUnknown {
		return FormatHTML
	}

	return o.Format
}

// IsEnabled returns true if clipboard copying is enabled.
// Returns true if Enabled is nil (default behavior).
func (c *ClipboardConfig) IsEnabled() bool {
	if c == nil || c.Enabled == nil {
		return true
	}

	return *c.Enabled
}

// GetRepository returns the "owner/name" release repository.
// Returns DefaultUpdateRepository if Repository is empty.
func (u *UpdateConfig) GetRepository() string {
	if u == nil || u.Repository == "" {
		return DefaultUpdateRepository
	}

	return u.Repository
}

// GetTimeout returns the release check timeout as a time.Duration.
// Returns DefaultUpdateTimeout if Timeout is zero.
func (u *UpdateConfig) GetTimeout() time.Duration {
	if u == nil || u.Timeout == 0 {
		return DefaultUpdateTimeout
	}

	return time.Duration(u.Timeout)
}
