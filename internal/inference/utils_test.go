package inference

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldAttachImage(t *testing.T) {
	dir := t.TempDir()

	write := func(name string, content []byte) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, content, 0o644))
		return path
	}

	t.Run("png attaches as data url", func(t *testing.T) {
		path := write("scan.png", []byte{0x89, 'P', 'N', 'G'})
		attach, dataURL, mimeType := ShouldAttachImage(RecognizeRequest{FilePath: path})
		assert.True(t, attach)
		assert.True(t, strings.HasPrefix(dataURL, "data:image/png;base64,"))
		assert.Equal(t, "image/png", mimeType)
	})

	t.Run("jpg resolves mime", func(t *testing.T) {
		path := write("scan.jpg", []byte{0xFF, 0xD8})
		attach, _, mimeType := ShouldAttachImage(RecognizeRequest{FilePath: path})
		assert.True(t, attach)
		assert.Equal(t, "image/jpeg", mimeType)
	})

	t.Run("txt never attaches", func(t *testing.T) {
		path := write("notes.txt", []byte("plain text"))
		attach, _, _ := ShouldAttachImage(RecognizeRequest{FilePath: path})
		assert.False(t, attach)
	})

	t.Run("pdf never attaches", func(t *testing.T) {
		path := write("doc.pdf", []byte("%PDF-1.4"))
		attach, _, _ := ShouldAttachImage(RecognizeRequest{FilePath: path})
		assert.False(t, attach)
	})

	t.Run("missing file", func(t *testing.T) {
		attach, _, _ := ShouldAttachImage(RecognizeRequest{FilePath: filepath.Join(dir, "ghost.png")})
		assert.False(t, attach)
	})

	t.Run("empty path", func(t *testing.T) {
		attach, _, _ := ShouldAttachImage(RecognizeRequest{})
		assert.False(t, attach)
	})
}
