package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	require.NoError(t, Initialize(Config{Debug: true, Service: "test"}))
	assert.NotNil(t, Default())
	assert.True(t, Default().Core().Enabled(-1), "debug level should be enabled in debug mode")

	require.NoError(t, Initialize(Config{Debug: false}))
	assert.False(t, Default().Core().Enabled(-1), "debug level should be disabled in production mode")
}

func TestFromContext(t *testing.T) {
	require.NoError(t, Initialize(Config{}))

	assert.NotNil(t, FromContext(context.Background()))
	//nolint:staticcheck // nil context is handled explicitly
	assert.Equal(t, Default(), FromContext(nil))
}
