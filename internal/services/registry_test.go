package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.RegisterService(NewFilesystemService()))
	require.NoError(t, registry.RegisterService(NewAnalysisService()))
	require.NoError(t, registry.RegisterService(NewCodecService()))

	service, err := registry.GetService("filesystem")
	require.NoError(t, err)
	assert.Equal(t, "filesystem", service.Name())

	_, err = registry.GetService("missing")
	assert.Error(t, err)
}

func TestRegistry_DuplicateRegistration(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.RegisterService(NewCodecService()))
	err := registry.RegisterService(NewCodecService())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistry_InitializeAll(t *testing.T) {
	registry := NewRegistry()
	codec := NewCodecService()
	require.NoError(t, registry.RegisterService(codec))

	require.NoError(t, registry.InitializeAll())

	_, err := codec.DecodeValues([]byte(`{"env": "dev"}`))
	assert.NoError(t, err, "service should be initialized after InitializeAll")
}

func TestServices_RequireInitialization(t *testing.T) {
	t.Run("codec", func(t *testing.T) {
		service := NewCodecService()
		_, err := service.DecodeValues([]byte(`{}`))
		assert.Error(t, err)
		_, err = service.DecodeCompiledTemplate(`{}`)
		assert.Error(t, err)
	})

	t.Run("analysis", func(t *testing.T) {
		service := NewAnalysisService()
		_, err := service.Analyze("param env string = 'dev'")
		assert.Error(t, err)
	})

	t.Run("filesystem", func(t *testing.T) {
		service := NewFilesystemService()
		_, err := service.ReadFile("/nonexistent")
		assert.Error(t, err)
	})
}
