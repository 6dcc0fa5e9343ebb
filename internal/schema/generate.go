// Package schema generates JSON Schema from the wpplugin config types.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"

	"github.com/pixolin/wpplugin/pkg/config"
)

const (
	schemaURI = "https://json-schema.org/draft/2020-12/schema"
	title     = "wpplugin configuration"
)

// Generate produces a JSON Schema from the config.Config struct.
func Generate() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
	}

	s := r.Reflect(&config.Config{})
	s.Version = schemaURI
	s.Title = title

	return s
}

// GenerateJSON produces a JSON Schema as bytes.
// When indent is true, the output is pretty-printed.
func GenerateJSON(indent bool) ([]byte, error) {
	s := Generate()

	var (
		data []byte
		err  error
	)

	if indent {
		data, err = json.MarshalIndent(s, "", "  ")
	} else {
		data, err = json.Marshal(s)
	}

	if err != nil {
		return nil, errors.Wrap(err, "marshaling schema to JSON")
	}

	// Written schema files end with a newline.
	return append(data, '\n'), nil
}

// Filename returns the versioned schema file name.
func Filename() string {
	return fmt.Sprintf("config.v%d.schema.json", config.CurrentConfigVersion)
}

// SchemaDirective returns the Taplo #:schema comment line pointing at the
// published schema for the current config version.
func SchemaDirective() string {
	return fmt.Sprintf(
		"#:schema https://raw.githubusercontent.com/%s/main/schema/%s",
		config.DefaultUpdateRepository,
		Filename(),
	)
}
