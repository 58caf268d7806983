package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of the configuration file.
func Schema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	r.FieldNameTag = "toml"
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/subjectbrowser/subject/config.schema.json"
	schema.Title = "Subject Browser Configuration"
	schema.Description = "Configuration schema for subject, a tabbed WebKitGTK browser shell"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes config.schema.json next to config.toml and returns its path.
func (m *Manager) WriteSchemaFile() (string, error) {
	data, err := Schema()
	if err != nil {
		return "", err
	}

	path := filepath.Join(m.configDir, schemaName)
	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return path, nil
}
