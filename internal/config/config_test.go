package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	require.NoError(t, Load())

	assert.False(t, Strict())
	assert.Equal(t, "", LogLevel())
	assert.Equal(t, "auto", Color())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("TEMPLAR_STRICT", "true")
	t.Setenv("TEMPLAR_LOG_LEVEL", "debug")
	t.Setenv("TEMPLAR_COLOR", "never")

	require.NoError(t, Load())

	assert.True(t, Strict())
	assert.Equal(t, "debug", LogLevel())
	assert.Equal(t, "never", Color())
}
