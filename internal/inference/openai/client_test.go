package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkspect/docverify/internal/inference"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

// chatResponse wraps model output the way chat/completions does.
func chatResponse(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "gpt-4o-mini",
		Timeout: 5 * time.Second,
	}, quietLogger())
}

func TestRecognizeTextImage(t *testing.T) {
	var gotAuth, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		fmt.Fprint(w, chatResponse(`{"text":"Date:  15/03/2024","region":"Header","confidence":0.92}`))
	})

	img := writeFile(t, "scan.png", []byte{0x89, 'P', 'N', 'G'})
	out, raw, err := client.RecognizeText(context.Background(), inference.RecognizeRequest{
		FilePath: img,
		Region:   "Header",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Date: 15/03/2024", out.Text) // double space normalized away
	assert.Equal(t, "Header", out.Region)
	assert.Equal(t, "en", out.Language)
	assert.InDelta(t, 0.92, out.Confidence, 0.001)
	assert.NotEmpty(t, raw)
}

func TestRecognizeTextSanitizesSloppyOutput(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chatResponse(`{"ocr_text":"hello world","region":"top","score":"0.7","finish_reason":"stop"}`))
	})

	img := writeFile(t, "scan.png", []byte("img"))
	out, _, err := client.RecognizeText(context.Background(), inference.RecognizeRequest{
		FilePath: img,
		Region:   "Header",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello world", out.Text)
	assert.Equal(t, "Header", out.Region) // "top" canonicalized
	assert.InDelta(t, 0.7, out.Confidence, 0.001)
}

func TestRecognizeTextFillsConfidenceWhenOmitted(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chatResponse(`{"text":"Invoice dated 15 March 2024 for services"}`))
	})

	img := writeFile(t, "scan.png", []byte("img"))
	out, _, err := client.RecognizeText(context.Background(), inference.RecognizeRequest{FilePath: img, Region: "Body"})
	require.NoError(t, err)
	assert.Greater(t, out.Confidence, float32(0))
	assert.Equal(t, "Body", out.Region)
}

func TestRecognizeTextServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	})

	img := writeFile(t, "scan.png", []byte("img"))
	_, _, err := client.RecognizeText(context.Background(), inference.RecognizeRequest{FilePath: img})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-2xx")
}

func TestRecognizeTextNoChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[]}`)
	})

	img := writeFile(t, "scan.png", []byte("img"))
	_, _, err := client.RecognizeText(context.Background(), inference.RecognizeRequest{FilePath: img})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestRecognizeTextUnsalvageableContent(t *testing.T) {
	// Schema requires "text"; the model returned nothing usable.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chatResponse(`{"region":"Header"}`))
	})

	img := writeFile(t, "scan.png", []byte("img"))
	_, _, err := client.RecognizeText(context.Background(), inference.RecognizeRequest{FilePath: img})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestRecognizeTextLocalPassthrough(t *testing.T) {
	// No server: .txt files are read and sliced locally.
	client := NewClient(Config{APIKey: "unused", BaseURL: "http://127.0.0.1:1"}, quietLogger())

	content := "ACME CORP\nInvoice 2024-001\nItem A\nItem B\nItem C\nItem D\nSigned\nDate: 15/03/2024"
	path := writeFile(t, "doc.txt", []byte(content))

	out, raw, err := client.RecognizeText(context.Background(), inference.RecognizeRequest{
		FilePath: path,
		Region:   "Footer",
	})
	require.NoError(t, err)
	assert.Equal(t, "Signed\nDate: 15/03/2024", out.Text)
	assert.Equal(t, "Footer", out.Region)
	assert.Equal(t, "local text passthrough", out.ModelNote)
	assert.Greater(t, out.Confidence, float32(0))
	assert.NotEmpty(t, raw)
}

func TestRecognizeTextPDFRejected(t *testing.T) {
	client := NewClient(Config{APIKey: "unused"}, quietLogger())
	path := writeFile(t, "doc.pdf", []byte("%PDF-1.4"))

	_, _, err := client.RecognizeText(context.Background(), inference.RecognizeRequest{FilePath: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PDF")
}

func TestRecognizeTextMissingImage(t *testing.T) {
	client := NewClient(Config{APIKey: "unused"}, quietLogger())
	_, _, err := client.RecognizeText(context.Background(), inference.RecognizeRequest{
		FilePath: filepath.Join(t.TempDir(), "ghost.png"),
	})
	require.Error(t, err)
}
