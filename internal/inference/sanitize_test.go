package inference

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeMap(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	return m
}

func TestNormalizeAndSanitizeJSONRenames(t *testing.T) {
	out, dropped, err := NormalizeAndSanitizeJSON([]byte(`{"ocr_text":"hello","lang":"en","score":0.9,"note":"blurry"}`), nil)
	require.NoError(t, err)

	m := decodeMap(t, out)
	assert.Equal(t, "hello", m["text"])
	assert.Equal(t, "en", m["language"])
	assert.Equal(t, 0.9, m["confidence"])
	assert.Equal(t, "blurry", m["model_note"])
	assert.NotEmpty(t, dropped)
}

func TestNormalizeAndSanitizeJSONDoesNotOverwrite(t *testing.T) {
	out, _, err := NormalizeAndSanitizeJSON([]byte(`{"text":"keep","raw_text":"discard"}`), nil)
	require.NoError(t, err)
	assert.Equal(t, "keep", decodeMap(t, out)["text"])
}

func TestNormalizeAndSanitizeJSONConfidence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want any // nil means dropped
	}{
		{"valid number kept", `{"text":"x","confidence":0.55}`, 0.55},
		{"string coerced", `{"text":"x","confidence":"0.75"}`, 0.75},
		{"out of range dropped", `{"text":"x","confidence":1.4}`, nil},
		{"negative dropped", `{"text":"x","confidence":-0.1}`, nil},
		{"null dropped", `{"text":"x","confidence":null}`, nil},
		{"garbage string dropped", `{"text":"x","confidence":"high"}`, nil},
		{"bool dropped", `{"text":"x","confidence":true}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := NormalizeAndSanitizeJSON([]byte(tt.in), nil)
			require.NoError(t, err)
			m := decodeMap(t, out)
			if tt.want == nil {
				assert.NotContains(t, m, "confidence")
			} else {
				assert.Equal(t, tt.want, m["confidence"])
			}
		})
	}
}

func TestNormalizeAndSanitizeJSONRegion(t *testing.T) {
	out, _, err := NormalizeAndSanitizeJSON([]byte(`{"text":"x","region":"top"}`), nil)
	require.NoError(t, err)
	assert.Equal(t, "Header", decodeMap(t, out)["region"])

	out, _, err = NormalizeAndSanitizeJSON([]byte(`{"text":"x","region":"sidebar"}`), nil)
	require.NoError(t, err)
	assert.NotContains(t, decodeMap(t, out), "region")
}

func TestNormalizeAndSanitizeJSONUnknownKeys(t *testing.T) {
	out, dropped, err := NormalizeAndSanitizeJSON([]byte(`{"text":"x","tokens_used":812,"finish_reason":"stop"}`), nil)
	require.NoError(t, err)

	m := decodeMap(t, out)
	assert.NotContains(t, m, "tokens_used")
	assert.NotContains(t, m, "finish_reason")
	assert.Contains(t, dropped, "tokens_used(unknown)")
}

func TestNormalizeAndSanitizeJSONTrimsButKeepsEmptyText(t *testing.T) {
	out, _, err := NormalizeAndSanitizeJSON([]byte(`{"text":"  padded  ","language":"  ","model_note":" ok "}`), nil)
	require.NoError(t, err)

	m := decodeMap(t, out)
	assert.Equal(t, "padded", m["text"])
	assert.NotContains(t, m, "language")
	assert.Equal(t, "ok", m["model_note"])

	// A blank region read is a legitimate result; text must survive empty.
	out, _, err = NormalizeAndSanitizeJSON([]byte(`{"text":""}`), nil)
	require.NoError(t, err)
	assert.Contains(t, decodeMap(t, out), "text")
}

func TestNormalizeAndSanitizeJSONInvalidInput(t *testing.T) {
	_, _, err := NormalizeAndSanitizeJSON([]byte(`not json at all`), nil)
	assert.Error(t, err)
}
