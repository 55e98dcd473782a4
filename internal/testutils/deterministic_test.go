package testutils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRequestID_TestMode(t *testing.T) {
	ResetCounters()

	first := GenerateRequestID(true)
	second := GenerateRequestID(true)

	assert.Equal(t, "00000001-0000-4000-8000-000000000001", first)
	assert.Equal(t, "00000002-0000-4000-8000-000000000002", second)
}

func TestGenerateRequestID_Production(t *testing.T) {
	id := GenerateRequestID(false)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
}

func TestResetCounters(t *testing.T) {
	ResetCounters()
	GenerateRequestID(true)
	ResetCounters()
	assert.Equal(t, "00000001-0000-4000-8000-000000000001", GenerateRequestID(true))
}
