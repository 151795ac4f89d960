package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["version", "heroes"],
	"properties": {
		"version": {"type": "integer", "minimum": 1},
		"heroes": {
			"type": "array",
			"minItems": 1,
			"items": {"type": "string", "pattern": "^[a-z0-9_]+$"}
		}
	},
	"additionalProperties": false
}`

func writeTestSchema(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, os.WriteFile(path, []byte(testSchema), 0644))
	return path
}

func TestValidateBytes(t *testing.T) {
	schemaPath := writeTestSchema(t)
	v := NewSchemaValidator()

	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{name: "Valid document", data: `{"version": 1, "heroes": ["astro", "bebop"]}`, wantErr: false},
		{name: "Missing heroes", data: `{"version": 1}`, wantErr: true},
		{name: "Empty hero list", data: `{"version": 1, "heroes": []}`, wantErr: true},
		{name: "Uppercase hero name", data: `{"version": 1, "heroes": ["Astro"]}`, wantErr: true},
		{name: "Unknown field", data: `{"version": 1, "heroes": ["astro"], "extra": true}`, wantErr: true},
		{name: "Not JSON", data: `not json`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), schemaPath)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFile(t *testing.T) {
	schemaPath := writeTestSchema(t)
	dataPath := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(`{"version": 2, "heroes": ["astro"]}`), 0644))

	v := NewSchemaValidator()
	assert.NoError(t, v.ValidateFile(dataPath, schemaPath))
	assert.Error(t, v.ValidateFile(filepath.Join(t.TempDir(), "missing.json"), schemaPath))
}

func TestValidateBytes_SchemaCached(t *testing.T) {
	schemaPath := writeTestSchema(t)
	v := NewSchemaValidator().(*validator)

	require.NoError(t, v.ValidateBytes([]byte(`{"version": 1, "heroes": ["astro"]}`), schemaPath))
	require.Len(t, v.schemas, 1)

	// Second call reuses the compiled schema even if the file disappears
	require.NoError(t, os.Remove(schemaPath))
	assert.NoError(t, v.ValidateBytes([]byte(`{"version": 1, "heroes": ["bebop"]}`), schemaPath))
}
