// Package config provides internal configuration loading and processing.
package config

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/pixolin/wpplugin/pkg/config"
)

var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidURL is returned when a URL value is invalid.
	ErrInvalidURL = errors.New("invalid URL value")

	// ErrInvalidLocale is returned when a locale value is invalid.
	ErrInvalidLocale = errors.New("invalid locale value")

	// ErrInvalidPageSize is returned when a page size value is invalid.
	ErrInvalidPageSize = errors.New("invalid page size value")

	// ErrInvalidOption is returned when an option value is invalid.
	ErrInvalidOption = errors.New("invalid option value")

	// ErrInvalidRepository is returned when a repository value is invalid.
	ErrInvalidRepository = errors.New("invalid repository value")
)

// localePattern matches wordpress.org locale subdomains ("de", "pt-br").
var localePattern = regexp.MustCompile(`^[a-z]{2,3}(-[a-z]{2})?$`)

// Validator validates configuration semantics.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates the entire configuration.
// Returns an error describing all validation failures.
func (v *Validator) Validate(cfg *config.Config) error {
	if cfg == nil {
		return errors.WithMessage(ErrInvalidConfig, "config is nil")
	}

	var validationErrors []error

	if cfg.Directory != nil {
		if err := v.validateDirectoryConfig(cfg.Directory); err != nil {
			validationErrors = append(validationErrors, errors.Wrap(err, "directory"))
		}
	}

	if cfg.Output != nil {
		if err := v.validateOutputConfig(cfg.Output); err != nil {
			validationErrors = append(validationErrors, errors.Wrap(err, "output"))
		}
	}

	if cfg.Update != nil {
		if err := v.validateUpdateConfig(cfg.Update); err != nil {
			validationErrors = append(validationErrors, errors.Wrap(err, "update"))
		}
	}

	if len(validationErrors) > 0 {
		return errors.WithSecondaryError(
			errors.Wrapf(
				ErrInvalidConfig,
				"validation failed with %d error(s)",
				len(validationErrors),
			),
			combineErrors(validationErrors),
		)
	}

	return nil
}

// validateDirectoryConfig validates the plugin directory configuration.
func (v *Validator) validateDirectoryConfig(cfg *config.DirectoryConfig) error {
	var validationErrors []error

	if cfg.APIURL != "" {
		if err := v.validateHTTPURL(cfg.APIURL); err != nil {
			validationErrors = append(validationErrors, errors.Wrap(err, "api_url"))
		}
	}

	if cfg.BaseURL != "" {
		if err := v.validateHTTPURL(cfg.BaseURL); err != nil {
			validationErrors = append(validationErrors, errors.Wrap(err, "base_url"))
		} else if !strings.HasSuffix(cfg.BaseURL, "/") {
			validationErrors = append(
				validationErrors,
				errors.Wrapf(
					ErrInvalidURL,
					"base_url must end with a trailing slash, got %q",
					cfg.BaseURL,
				),
			)
		}
	}

	if cfg.Locale != "" && !localePattern.MatchString(cfg.Locale) {
		validationErrors = append(
			validationErrors,
			errors.Wrapf(
				ErrInvalidLocale,
				"locale must be a lowercase subdomain such as %q or %q, got %q",
				"de",
				"pt-br",
				cfg.Locale,
			),
		)
	}

	if cfg.Timeout < 0 {
		validationErrors = append(
			validationErrors,
			errors.Wrapf(
				config.ErrNegativeDuration,
				"timeout must not be negative, got %s",
				cfg.Timeout,
			),
		)
	}

	if cfg.PageSize != nil && *cfg.PageSize < 1 {
		validationErrors = append(
			validationErrors,
			errors.Wrapf(
				ErrInvalidPageSize,
				"page_size must be at least 1, got %d",
				*cfg.PageSize,
			),
		)
	}

	if len(validationErrors) > 0 {
		return combineErrors(validationErrors)
	}

	return nil
}

// validateOutputConfig validates the output configuration.
func (*Validator) validateOutputConfig(cfg *config.OutputConfig) error {
	if cfg.Format != config.FormatUnknown && !cfg.Format.IsAFormat() {
		return errors.Wrapf(
			ErrInvalidOption,
			"format must be one of %v, got %d",
			config.FormatStrings(),
			cfg.Format,
		)
	}

	return nil
}

// validateUpdateConfig validates the release check configuration.
func (*Validator) validateUpdateConfig(cfg *config.UpdateConfig) error {
	var validationErrors []error

	if cfg.Repository != "" {
		owner, name, found := strings.Cut(cfg.Repository, "/")
		if !found || owner == "" || name == "" || strings.Contains(name, "/") {
			validationErrors = append(
				validationErrors,
				errors.Wrapf(
					ErrInvalidRepository,
					"repository must be of the form owner/name, got %q",
					cfg.Repository,
				),
			)
		}
	}

	if cfg.Timeout < 0 {
		validationErrors = append(
			validationErrors,
			errors.Wrapf(
				config.ErrNegativeDuration,
				"timeout must not be negative, got %s",
				cfg.Timeout,
			),
		)
	}

	if len(validationErrors) > 0 {
		return combineErrors(validationErrors)
	}

	return nil
}

// validateHTTPURL checks that a value parses as an absolute http(s) URL.
func (*Validator) validateHTTPURL(value string) error {
	parsed, err := url.Parse(value)
	if err != nil {
		return errors.Wrapf(ErrInvalidURL, "%q is not a valid URL", value)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.Wrapf(
			ErrInvalidURL,
			"%q must use the http or https scheme",
			value,
		)
	}

	if parsed.Host == "" {
		return errors.Wrapf(ErrInvalidURL, "%q has no host", value)
	}

	return nil
}

// combineErrors combines multiple errors into a single error.
func combineErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	return errors.Join(errs...)
}
