package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkspect/docverify/constants"
)

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := BuildOCRResponseSchema(constants.AsStringSlice())

	t.Run("minimal valid", func(t *testing.T) {
		assert.NoError(t, ValidateJSONAgainstSchema(schema, []byte(`{"text":"hello"}`)))
	})

	t.Run("full valid", func(t *testing.T) {
		doc := `{"text":"Date: 15/03/2024","region":"Header","language":"en","confidence":0.92,"model_note":"clean scan"}`
		assert.NoError(t, ValidateJSONAgainstSchema(schema, []byte(doc)))
	})

	t.Run("missing text", func(t *testing.T) {
		assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"region":"Header"}`)))
	})

	t.Run("region outside enum", func(t *testing.T) {
		assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"text":"x","region":"Margin"}`)))
	})

	t.Run("confidence out of range", func(t *testing.T) {
		assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"text":"x","confidence":1.5}`)))
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"text":"x","tokens":3}`)))
	})

	t.Run("not json", func(t *testing.T) {
		assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`<html>`)))
	})
}

func TestBuildOCRResponseSchemaWithoutRegions(t *testing.T) {
	schema := BuildOCRResponseSchema(nil)
	require.NoError(t, ValidateJSONAgainstSchema(schema, []byte(`{"text":"x","region":"anything goes"}`)))
}

func TestSanitizeThenValidate(t *testing.T) {
	schema := BuildOCRResponseSchema(constants.AsStringSlice())
	raw := []byte(`{"ocr_text":"Date: 15/03/2024","region":"top","score":"0.8","finish_reason":"stop"}`)

	require.Error(t, ValidateJSONAgainstSchema(schema, raw))

	cleaned, _, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)
	assert.NoError(t, ValidateJSONAgainstSchema(schema, cleaned))
}
