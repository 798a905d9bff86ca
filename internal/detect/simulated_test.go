package detect

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDetector() *Simulated {
	return NewSimulated(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
}

func writeTemp(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestSimulatedDeterministic(t *testing.T) {
	det := newTestDetector()
	path := writeTemp(t, "doc.png", []byte("fake image bytes"))

	first, err := det.Detect(context.Background(), DetectRequest{ImagePath: path, Target: TargetStamp})
	require.NoError(t, err)
	second, err := det.Detect(context.Background(), DetectRequest{ImagePath: path, Target: TargetStamp})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSimulatedContentAddressed(t *testing.T) {
	det := newTestDetector()
	content := []byte("identical bytes in two places")
	a := writeTemp(t, "a.png", content)
	b := writeTemp(t, "renamed-copy.png", content)

	resA, err := det.Detect(context.Background(), DetectRequest{ImagePath: a, Target: TargetSignature})
	require.NoError(t, err)
	resB, err := det.Detect(context.Background(), DetectRequest{ImagePath: b, Target: TargetSignature})
	require.NoError(t, err)

	// Same content means same result even under a different filename.
	assert.Equal(t, resA, resB)
}

func TestSimulatedTargetsDiffer(t *testing.T) {
	det := newTestDetector()
	path := writeTemp(t, "doc.png", []byte("some scanned page"))

	stamp, err := det.Detect(context.Background(), DetectRequest{ImagePath: path, Target: TargetStamp})
	require.NoError(t, err)
	sig, err := det.Detect(context.Background(), DetectRequest{ImagePath: path, Target: TargetSignature})
	require.NoError(t, err)

	// Different targets hash differently, so at least one field should move.
	assert.NotEqual(t, stamp.Confidence, sig.Confidence)
}

func TestSimulatedConfidenceBounds(t *testing.T) {
	det := newTestDetector()
	inputs := [][]byte{
		[]byte("one"), []byte("two"), []byte("three"), []byte("four"), []byte("five"),
		[]byte("six"), []byte("seven"), []byte("eight"), []byte("nine"), []byte("ten"),
	}
	for i, content := range inputs {
		path := writeTemp(t, "doc.png", content)
		res, err := det.Detect(context.Background(), DetectRequest{ImagePath: path, Target: TargetStamp})
		require.NoError(t, err, "input %d", i)
		assert.GreaterOrEqual(t, res.Confidence, float32(0.60), "input %d", i)
		assert.LessOrEqual(t, res.Confidence, float32(0.94), "input %d", i)
		assert.NotEmpty(t, res.Notes)
		assert.Contains(t, res.Notes[0], "simulated")
	}
}

func TestSimulatedMissingFile(t *testing.T) {
	det := newTestDetector()
	_, err := det.Detect(context.Background(), DetectRequest{
		ImagePath: filepath.Join(t.TempDir(), "nope.png"),
		Target:    TargetStamp,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stamp")
}
