package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCompiledTemplate_JSON(t *testing.T) {
	text := `{
		"parameters": {
			"env": {"type": "string", "defaultValue": "dev"},
			"loc": {"type": "string", "defaultValue": "[resourceGroup().location]"},
			"count": {"type": "int", "defaultValue": 3},
			"enabled": {"type": "bool", "defaultValue": true},
			"required": {"type": "string"}
		}
	}`

	defaults, err := DecodeCompiledTemplate(text)
	require.NoError(t, err)

	assert.Equal(t, "dev", defaults["env"])
	assert.Equal(t, "[resourceGroup().location]", defaults["loc"])
	assert.Equal(t, "3", defaults["count"])
	assert.Equal(t, "true", defaults["enabled"])
	_, ok := defaults["required"]
	assert.False(t, ok, "parameters without a resolved default have no entry")
}

func TestDecodeCompiledTemplate_YAML(t *testing.T) {
	text := `
parameters:
  env:
    type: string
    defaultValue: dev
  tags:
    type: object
    defaultValue:
      team: infra
`

	defaults, err := DecodeCompiledTemplate(text)
	require.NoError(t, err)

	assert.Equal(t, "dev", defaults["env"])
	assert.JSONEq(t, `{"team":"infra"}`, defaults["tags"])
}

func TestDecodeCompiledTemplate_Malformed(t *testing.T) {
	_, err := DecodeCompiledTemplate(`{"parameters": {`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode compiled template")
}

func TestDecodeValues_WrappedShape(t *testing.T) {
	data := []byte(`{
		"$schema": "https://example.com/parameters.json",
		"contentVersion": "1.0.0.0",
		"parameters": {
			"env": {"value": "prod"},
			"count": {"value": 3}
		}
	}`)

	provided, err := DecodeValues(data)
	require.NoError(t, err)

	assert.True(t, provided.Has("env"))
	assert.True(t, provided.Has("count"))
	assert.False(t, provided.Has("$schema"))
	assert.False(t, provided.Has("contentVersion"))
}

func TestDecodeValues_FlatShape(t *testing.T) {
	data := []byte(`{"env": "prod", "count": 3, "contentVersion": "1.0.0.0"}`)

	provided, err := DecodeValues(data)
	require.NoError(t, err)

	assert.True(t, provided.Has("env"))
	assert.True(t, provided.Has("count"))
	assert.False(t, provided.Has("contentVersion"))
}

func TestDecodeValues_PresenceOnly(t *testing.T) {
	// Arbitrary nested value shapes only contribute their key.
	data := []byte(`{"parameters": {"vnets": {"value": [{"cidr": "10.0.0.0/16"}]}}}`)

	provided, err := DecodeValues(data)
	require.NoError(t, err)
	assert.True(t, provided.Has("vnets"))
	assert.Len(t, provided, 1)
}

func TestDecodeValues_Malformed(t *testing.T) {
	_, err := DecodeValues([]byte(`{"parameters": [1, 2`))
	require.Error(t, err)
}
