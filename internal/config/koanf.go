// Package config provides internal configuration loading and processing.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	tomlparser "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/pixolin/wpplugin/pkg/config"
)

var (
	// ErrConfigNotFound is returned when an explicitly requested
	// configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidPermissions is returned when config file has insecure permissions.
	ErrInvalidPermissions = errors.New("config file has insecure permissions")
)

const (
	// GlobalConfigFile is the name of the global configuration file.
	GlobalConfigFile = "config.toml"

	// GlobalConfigDir is the directory name for global configuration.
	GlobalConfigDir = ".wpplugin"

	// ProjectConfigFile is the primary project configuration file name.
	ProjectConfigFile = ".wpplugin.toml"

	// ProjectConfigFileAlt is the alternative project configuration file name.
	ProjectConfigFileAlt = "wpplugin.toml"
)

// Default configuration constants for koanf map defaults.
const (
	defaultTimeoutStr       = "20s"
	defaultUpdateTimeoutStr = "30s"
	defaultFormatStr        = "html"
)

// KoanfLoader handles configuration loading from multiple sources using koanf.
// Precedence order (highest to lowest):
// 1. CLI Flags
// 2. Environment Variables (WPPLUGIN_*)
// 3. Project Config (.wpplugin.toml or wpplugin.toml)
// 4. Global Config (~/.wpplugin/config.toml)
// 5. Defaults
type KoanfLoader struct {
	k           *koanf.Koanf
	homeDir     string
	workDir     string
	globalPath  string
	projectPath string
	tomlOpts    koanf.UnmarshalConf
}

// NewKoanfLoader creates a new KoanfLoader with default directories.
func NewKoanfLoader() (*KoanfLoader, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get home directory")
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get working directory")
	}

	return NewKoanfLoaderWithDirs(homeDir, workDir)
}

// NewKoanfLoaderWithDirs creates a new KoanfLoader with custom directories (for testing).
func NewKoanfLoaderWithDirs(homeDir, workDir string) (*KoanfLoader, error) {
	k := koanf.New(".")

	return &KoanfLoader{
		k:       k,
		homeDir: homeDir,
		workDir: workDir,
		tomlOpts: koanf.UnmarshalConf{
			Tag:       "koanf",
			FlatPaths: false,
		},
	}, nil
}

// SetGlobalConfigPath overrides the global config location.
// The file must exist when Load runs.
func (l *KoanfLoader) SetGlobalConfigPath(path string) {
	l.globalPath = path
}

// SetProjectConfigPath overrides project config discovery with an explicit file.
// The file must exist when Load runs.
func (l *KoanfLoader) SetProjectConfigPath(path string) {
	l.projectPath = path
}

// Load loads configuration from all sources with precedence.
// Defaults → Global TOML → Project TOML → Env Vars → CLI Flags
func (l *KoanfLoader) Load(flags map[string]any) (*config.Config, error) {
	cfg, err := l.LoadWithoutValidation(flags)
	if err != nil {
		return nil, err
	}

	// Validate
	validator := NewValidator()
	if err := validator.Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// LoadWithoutValidation loads configuration without running validation.
// This is useful for tools that need to fix invalid configurations.
func (l *KoanfLoader) LoadWithoutValidation(flags map[string]any) (*config.Config, error) {
	// Reset koanf instance for fresh load
	l.k = koanf.New(".")

	// 1. Load defaults first (lowest priority)
	defaults := defaultsToMap()
	if err := l.k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	// 2. Global config: ~/.wpplugin/config.toml
	if err := l.loadGlobalConfig(); err != nil {
		return nil, err
	}

	// 3. Project config: .wpplugin.toml or wpplugin.toml
	if err := l.loadProjectConfig(); err != nil {
		return nil, err
	}

	// 4. Environment variables: WPPLUGIN_*
	envOpt := env.Opt{
		Prefix:        "WPPLUGIN_",
		TransformFunc: l.envTransform,
	}

	if err := l.k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	// 5. CLI flags (highest priority)
	if len(flags) > 0 {
		flagConfig := l.flagsToConfig(flags)
		if err := l.k.Load(confmap.Provider(flagConfig, "."), nil); err != nil {
			return nil, errors.Wrap(err, "failed to load flags")
		}
	}

	// Unmarshal into config struct
	var cfg config.Config

	decoderConf := CustomDecoderConfig()
	decoderConf.Result = &cfg

	unmarshalConf := l.tomlOpts
	unmarshalConf.DecoderConfig = decoderConf

	if err := l.k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}

// loadGlobalConfig loads the global config file into the koanf state.
// An explicitly set path must exist; the default path may be absent.
func (l *KoanfLoader) loadGlobalConfig() error {
	if l.globalPath != "" {
		err := l.loadTOMLFile(l.globalPath)
		if os.IsNotExist(err) {
			return errors.Wrapf(ErrConfigNotFound, "%s", l.globalPath)
		}

		if err != nil {
			return errors.Wrap(err, "failed to load global config")
		}

		return nil
	}

	if err := l.loadTOMLFile(l.GlobalConfigPath()); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to load global config")
	}

	return nil
}

// loadProjectConfig loads the project config file into the koanf state.
// An explicitly set path must exist; discovery tolerates absence.
func (l *KoanfLoader) loadProjectConfig() error {
	if l.projectPath != "" {
		err := l.loadTOMLFile(l.projectPath)
		if os.IsNotExist(err) {
			return errors.Wrapf(ErrConfigNotFound, "%s", l.projectPath)
		}

		if err != nil {
			return errors.Wrap(err, "failed to load project config")
		}

		return nil
	}

	projectPath := l.findProjectConfig()
	if projectPath == "" {
		return nil
	}

	if err := l.loadTOMLFile(projectPath); err != nil {
		return errors.Wrap(err, "failed to load project config")
	}

	return nil
}

// loadTOMLFile loads a TOML configuration file with security checks.
func (l *KoanfLoader) loadTOMLFile(path string) error {
	// Check if file exists
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	// Security check: reject world-writable files
	if info.Mode().Perm()&0o002 != 0 {
		return errors.Wrapf(
			ErrInvalidPermissions,
			"%s is world-writable (mode: %s)",
			path,
			info.Mode().Perm(),
		)
	}

	return l.k.Load(file.Provider(path), tomlparser.Parser())
}

// envTransform transforms environment variable names to config paths.
// The first underscore separates the section from the key; keys themselves
// may contain underscores (api_url, page_size).
// WPPLUGIN_DIRECTORY_API_URL → directory.api_url
func (*KoanfLoader) envTransform(key, value string) (string, any) {
	key = strings.TrimPrefix(key, "WPPLUGIN_")
	key = strings.ToLower(key)
	key = strings.Replace(key, "_", ".", 1)

	return key, value
}

// GlobalConfigPath returns the path to the global configuration file.
func (l *KoanfLoader) GlobalConfigPath() string {
	if l.globalPath != "" {
		return l.globalPath
	}

	return filepath.Join(l.homeDir, GlobalConfigDir, GlobalConfigFile)
}

// ProjectConfigPaths returns the paths to check for project configuration.
func (l *KoanfLoader) ProjectConfigPaths() []string {
	return []string{
		filepath.Join(l.workDir, ProjectConfigFile),
		filepath.Join(l.workDir, ProjectConfigFileAlt),
	}
}

// findProjectConfig checks for project config files and returns the first found.
func (l *KoanfLoader) findProjectConfig() string {
	for _, path := range l.ProjectConfigPaths() {
		if fileExists(path) {
			return path
		}
	}

	return ""
}

// HasGlobalConfig checks if a global configuration file exists.
func (l *KoanfLoader) HasGlobalConfig() bool {
	return fileExists(l.GlobalConfigPath())
}

// HasProjectConfig checks if a project configuration file exists.
func (l *KoanfLoader) HasProjectConfig() bool {
	return l.findProjectConfig() != ""
}

// FindProjectConfigPath returns the path to the project config file if one exists.
// Returns empty string if no project config file is found.
func (l *KoanfLoader) FindProjectConfigPath() string {
	if l.projectPath != "" && fileExists(l.projectPath) {
		return l.projectPath
	}

	return l.findProjectConfig()
}

// flagsToConfig converts CLI flags to a configuration map.
func (*KoanfLoader) flagsToConfig(flags map[string]any) map[string]any {
	result := make(map[string]any)

	for key, value := range flags {
		switch key {
		case "format":
			if strVal, ok := value.(string); ok {
				outputMap := ensureMapKey(result, "output")
				outputMap["format"] = strVal
			}

		case "locale":
			if strVal, ok := value.(string); ok {
				directoryMap := ensureMapKey(result, "directory")
				directoryMap["locale"] = strVal
			}

		case "timeout":
			if strVal, ok := value.(string); ok {
				directoryMap := ensureMapKey(result, "directory")
				directoryMap["timeout"] = strVal
			}

		case "plain":
			// --plain disables the clipboard sink; links print to stdout.
			if boolVal, ok := value.(bool); ok && boolVal {
				clipboardMap := ensureMapKey(result, "clipboard")
				clipboardMap["enabled"] = false
			}
		}
	}

	return result
}

// ensureMapKey ensures a key exists as a map and returns it.
func ensureMapKey(cfg map[string]any, key string) map[string]any {
	if _, ok := cfg[key]; !ok {
		cfg[key] = make(map[string]any)
	}

	result, _ := cfg[key].(map[string]any)

	return result
}

// defaultsToMap converts the default configuration to a map for koanf loading.
func defaultsToMap() map[string]any {
	return map[string]any{
		"version":   config.CurrentConfigVersion,
		"directory": defaultDirectoryMap(),
		"output":    defaultOutputMap(),
		"clipboard": defaultClipboardMap(),
		"update":    defaultUpdateMap(),
	}
}

func defaultDirectoryMap() map[string]any {
	return map[string]any{
		"api_url":   config.DefaultAPIURL,
		"locale":    config.DefaultLocale,
		"base_url":  "",
		"timeout":   defaultTimeoutStr,
		"page_size": config.DefaultPageSize,
	}
}

func defaultOutputMap() map[string]any {
	return map[string]any{
		"format": defaultFormatStr,
	}
}

func defaultClipboardMap() map[string]any {
	return map[string]any{
		"enabled": true,
	}
}

func defaultUpdateMap() map[string]any {
	return map[string]any{
		"repository": config.DefaultUpdateRepository,
		"timeout":    defaultUpdateTimeoutStr,
	}
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir()
}

// mustGetwd returns the current working directory or panics.
func mustGetwd() string {
	wd, err := os.Getwd()
	if err != nil {
		panic("failed to get working directory: " + err.Error())
	}

	return wd
}
