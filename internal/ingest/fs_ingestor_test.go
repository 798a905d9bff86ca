package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkspect/docverify/gen/ent"
)

// fakeDocRepo keys documents by content hash, like the real repository.
type fakeDocRepo struct {
	byHash map[string]*ent.Document
}

func newFakeDocRepo() *fakeDocRepo {
	return &fakeDocRepo{byHash: make(map[string]*ent.Document)}
}

func (f *fakeDocRepo) GetByID(context.Context, uuid.UUID) (*ent.Document, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDocRepo) GetByHash(_ context.Context, hash []byte) (*ent.Document, error) {
	doc, ok := f.byHash[hex.EncodeToString(hash)]
	if !ok {
		return nil, errors.New("not found")
	}
	return doc, nil
}

func (f *fakeDocRepo) Create(_ context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.Document, error) {
	doc := &ent.Document{
		ID:          uuid.New(),
		SourcePath:  sourcePath,
		ContentHash: hash,
		Filename:    filename,
		FileExt:     ext,
		FileSize:    size,
		UploadedAt:  uploadedAt,
	}
	f.byHash[hex.EncodeToString(hash)] = doc
	return doc, nil
}

func (f *fakeDocRepo) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.Document, bool, error) {
	if doc, err := f.GetByHash(ctx, hash); err == nil {
		return doc, true, nil
	}
	doc, err := f.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	return doc, false, err
}

func (f *fakeDocRepo) List(context.Context, *time.Time, *time.Time) ([]*ent.Document, error) {
	out := make([]*ent.Document, 0, len(f.byHash))
	for _, d := range f.byHash {
		out = append(out, d)
	}
	return out, nil
}

func writeDoc(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestIngestPath(t *testing.T) {
	dir := t.TempDir()
	content := []byte("certificate body, dated 15/03/2024")
	path := writeDoc(t, dir, "cert.txt", content)

	ing := NewFSIngestor(newFakeDocRepo())
	res, err := ing.IngestPath(context.Background(), path)
	require.NoError(t, err)

	wantHash := sha256.Sum256(content)
	assert.Equal(t, hex.EncodeToString(wantHash[:]), res.HashHex)
	assert.Equal(t, "txt", res.FileExt)
	assert.Equal(t, len(content), res.FileSize)
	assert.False(t, res.Deduplicated)
	assert.NotEmpty(t, res.DocumentID)
	assert.Equal(t, path, res.SourcePath)
}

func TestIngestPathDedupe(t *testing.T) {
	dir := t.TempDir()
	content := []byte("same bytes twice")
	first := writeDoc(t, dir, "a.pdf", content)
	second := writeDoc(t, dir, "b.pdf", content)

	ing := NewFSIngestor(newFakeDocRepo())

	r1, err := ing.IngestPath(context.Background(), first)
	require.NoError(t, err)
	assert.False(t, r1.Deduplicated)

	r2, err := ing.IngestPath(context.Background(), second)
	require.NoError(t, err)
	assert.True(t, r2.Deduplicated)
	assert.Equal(t, r1.DocumentID, r2.DocumentID)
}

func TestIngestPathRejectsExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "malware.exe", []byte{0x4D, 0x5A})

	ing := NewFSIngestor(newFakeDocRepo())
	_, err := ing.IngestPath(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extension")
}

func TestIngestPathCustomExtensions(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "report.docx", []byte("zip-ish"))

	ing := NewFSIngestor(newFakeDocRepo())
	ing.AllowedExts = map[string]struct{}{"docx": {}}

	_, err := ing.IngestPath(context.Background(), path)
	require.NoError(t, err)

	// The default set is no longer in effect.
	txt := writeDoc(t, dir, "notes.txt", []byte("text"))
	_, err = ing.IngestPath(context.Background(), txt)
	require.Error(t, err)
}

func TestIngestPathMissingFile(t *testing.T) {
	ing := NewFSIngestor(newFakeDocRepo())
	_, err := ing.IngestPath(context.Background(), filepath.Join(t.TempDir(), "ghost.txt"))
	require.Error(t, err)
}

func TestIngestDirectory(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "one.txt", []byte("first document"))
	writeDoc(t, dir, "two.png", []byte("image bytes"))
	writeDoc(t, dir, "skip.exe", []byte("not a document"))
	writeDoc(t, dir, "copy.txt", []byte("first document")) // dedupe of one.txt

	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeDoc(t, sub, "three.pdf", []byte("%PDF"))

	hidden := filepath.Join(dir, ".archive")
	require.NoError(t, os.Mkdir(hidden, 0o755))
	writeDoc(t, hidden, "old.txt", []byte("should be skipped"))

	ing := NewFSIngestor(newFakeDocRepo())
	results, stats, err := ing.IngestDirectory(context.Background(), dir, true)
	require.NoError(t, err)

	assert.Equal(t, uint32(4), stats.Matched)
	assert.Equal(t, uint32(4), stats.Succeeded)
	assert.Equal(t, uint32(1), stats.Deduplicated)
	assert.Equal(t, uint32(0), stats.Failed)
	assert.Len(t, results, 4)
}

func TestIngestDirectoryRequiresRoot(t *testing.T) {
	ing := NewFSIngestor(newFakeDocRepo())
	_, _, err := ing.IngestDirectory(context.Background(), "   ", false)
	require.Error(t, err)
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden("/data/.git"))
	assert.True(t, IsHidden(".env"))
	assert.False(t, IsHidden("/data/docs"))
	assert.False(t, IsHidden("file.txt"))
}

func TestAllowedExt(t *testing.T) {
	assert.True(t, AllowedExt("pdf"))
	assert.True(t, AllowedExt(".PDF"))
	assert.True(t, AllowedExt("txt"))
	assert.False(t, AllowedExt("exe"))
	assert.False(t, AllowedExt(""))
}
