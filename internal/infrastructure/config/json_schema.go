package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
)

const schemaID = "https://github.com/bnema/shower/config.schema.json"

// Schema reflects the JSON schema of Config.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		FieldNameTag:   "toml",
		ExpandedStruct: true,
	}
	schema := r.Reflect(&Config{})
	schema.ID = jsonschema.ID(schemaID)
	schema.Title = "Shower Configuration"
	schema.Description = "Configuration schema for shower, a keyboard-driven minimal browser"
	return schema
}

// MarshalSchema returns the indented JSON schema.
func MarshalSchema() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes the JSON schema to path.
func WriteSchemaFile(path string) error {
	data, err := MarshalSchema()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
