package common

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidatorRules(t *testing.T) {
	t.Run("required rejects blank", func(t *testing.T) {
		v := NewValidator().Field("path", "   ", Required)
		assert.True(t, v.HasErrors())
		assert.Contains(t, v.ErrorMessage(), "path")
	})

	t.Run("required accepts value", func(t *testing.T) {
		v := NewValidator().Field("path", "/tmp/scan.png", Required)
		assert.False(t, v.HasErrors())
	})

	t.Run("uuid rule", func(t *testing.T) {
		assert.Nil(t, UUID("job_id", uuid.New().String()))
		assert.NotNil(t, UUID("job_id", "not-a-uuid"))
		assert.NotNil(t, UUID("job_id", 42))
	})

	t.Run("one of", func(t *testing.T) {
		rule := OneOf("Header", "Body", "Footer")
		assert.Nil(t, rule("region", "Body"))
		assert.Nil(t, rule("region", "footer"))
		assert.NotNil(t, rule("region", "Margin"))
	})

	t.Run("max length", func(t *testing.T) {
		assert.Nil(t, MaxLength("name", "short", 10))
		assert.NotNil(t, MaxLength("name", "a very long value", 5))
	})

	t.Run("errors accumulate", func(t *testing.T) {
		v := NewValidator().
			Field("path", "", Required).
			Field("job_id", "nope", UUID)
		assert.Len(t, v.Errors(), 2)
		assert.Error(t, ValidateAndReturnError(v))
	})

	t.Run("clean validator returns nil", func(t *testing.T) {
		v := NewValidator().Field("path", "ok", Required)
		assert.NoError(t, ValidateAndReturnError(v))
	})
}
