package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for the partui configuration.
// Known sections are strict; unknown top-level keys are allowed because
// they carry extension sections such as logging.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		FieldNameTag:               "yaml",
	}

	type BaseConfig struct {
		Version  string         `yaml:"version,omitempty" jsonschema:"description=Configuration version (e.g. '1.0')"`
		Terminal TerminalConfig `yaml:"terminal,omitempty" jsonschema:"description=Terminal geometry"`
		Menu     MenuConfig     `yaml:"menu,omitempty" jsonschema:"description=Menu navigator settings"`
		Dump     DumpConfig     `yaml:"dump,omitempty" jsonschema:"description=Hex dump viewer settings"`
	}

	schema := r.Reflect(&BaseConfig{})
	schema.Title = "partui Configuration"
	schema.Description = "Schema for partui.yml."
	schema.AdditionalProperties = jsonschema.TrueSchema

	return json.MarshalIndent(schema, "", "  ")
}
