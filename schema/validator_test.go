package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "columns": {"type": "integer", "minimum": 40}
  },
  "additionalProperties": false
}`

func TestValidator(t *testing.T) {
	v, err := NewValidator("test.json", []byte(testSchema))
	require.NoError(t, err)

	t.Run("valid document", func(t *testing.T) {
		assert.NoError(t, v.Validate(map[string]interface{}{"columns": 80}))
	})

	t.Run("below minimum", func(t *testing.T) {
		err := v.Validate(map[string]interface{}{"columns": 10})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "/columns")
	})

	t.Run("unknown property", func(t *testing.T) {
		err := v.Validate(map[string]interface{}{"rows": 10})
		assert.Error(t, err)
	})
}

func TestNewValidatorRejectsBadSchema(t *testing.T) {
	_, err := NewValidator("bad.json", []byte(`{"type": 12}`))
	assert.Error(t, err)
}
