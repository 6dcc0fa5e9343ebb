// Package config provides configuration schema types for wpplugin.
package config

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"
)

//go:generate enumer -type=Format -trimprefix=Format -transform=lower -json -text
//go:generate go run github.com/pixolin/wpplugin/tools/enumerfix format_enumer.go

var (
	// ErrInvalidFormat is returned when an invalid format value is provided.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrNegativeDuration is returned when a negative duration is provided.
	ErrNegativeDuration = errors.New("duration must be non-negative")
)

// Format represents a link output format.
type Format int

const (
	// FormatUnknown represents an unknown output format.
	FormatUnknown Format = iota

	// FormatHTML renders an HTML anchor element.
	FormatHTML

	// FormatMarkdown renders a Markdown inline link.
	FormatMarkdown

	// FormatBBCode renders a BBCode url tag.
	FormatBBCode

	// FormatPlain renders the bare URL.
	FormatPlain
)

// ParseFormat parses a string into a Format value.
func ParseFormat(s string) (Format, error) {
	format, err := FormatString(s)
	if err != nil {
		return FormatUnknown,
			errors.Wrapf(
				ErrInvalidFormat,
				"%q, must be %q, %q, %q or %q",
				s,
				FormatHTML.String(),
				FormatMarkdown.String(),
				FormatBBCode.String(),
				FormatPlain.String(),
			)
	}

	return format, nil
}

// JSONSchema returns the JSON Schema for the Format type.
func (Format) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "string",
		Enum: []any{
			FormatHTML.String(),
			FormatMarkdown.String(),
			FormatBBCode.String(),
			FormatPlain.String(),
		},
		Description: "Link output format",
	}
}

// Duration wraps time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	dur, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrap(err, "invalid duration")
	}

	if dur < 0 {
		return errors.Wrapf(ErrNegativeDuration, "got %s", dur)
	}

	*d = Duration(dur)

	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// ToDuration converts Duration to time.Duration.
func (d Duration) ToDuration() time.Duration {
	return time.Duration(d)
}

// JSONSchema returns the JSON Schema for the Duration type.
func (Duration) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Pattern:     `^([0-9]+(\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$`,
		Description: "Go duration string",
		Examples:    []any{"20s", "1m30s"},
	}
}
