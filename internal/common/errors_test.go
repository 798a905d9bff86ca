package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapError(t *testing.T) {
	base := errors.New("connection refused")
	err := WrapError(base, "open audit store")
	require.Error(t, err)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "open audit store: connection refused", err.Error())

	assert.NoError(t, WrapError(nil, "ignored"))
}

func TestAppErrorUnwrapsCause(t *testing.T) {
	err := NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "CONFIG_ERROR: DB_URL is required: invalid input", err.Error())

	bare := NewAppError("CONFIG_ERROR", "no cause", nil)
	assert.Equal(t, "CONFIG_ERROR: no cause", bare.Error())
}
