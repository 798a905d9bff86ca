package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/inkspect/docverify/gen/ent"
	entdoc "github.com/inkspect/docverify/gen/ent/document"
)

type DocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error)
	GetByHash(ctx context.Context, hash []byte) (*ent.Document, error)
	Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.Document, error)
	UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.Document, bool, error)
	List(ctx context.Context, from, to *time.Time) ([]*ent.Document, error)
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	return r.ent.Document.Get(ctx, id)
}

func (r *documentRepo) GetByHash(ctx context.Context, hash []byte) (*ent.Document, error) {
	row, err := r.ent.Document.Query().
		Where(entdoc.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *documentRepo) Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.Document, error) {
	row, err := r.ent.Document.Create().
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

// UpsertByHash registers a document unless one with the same content hash
// already exists; the bool reports deduplication.
func (r *documentRepo) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.Document, bool, error) {
	if existing, err := r.GetByHash(ctx, hash); err == nil {
		return existing, true, nil
	} else if !ent.IsNotFound(err) {
		r.logger.Error("failed to look up document by hash", "source_path", sourcePath, "error", err)
		return nil, false, err
	}
	row, err := r.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		return nil, false, err
	}
	return row, false, nil
}

func (r *documentRepo) List(ctx context.Context, from, to *time.Time) ([]*ent.Document, error) {
	q := r.ent.Document.Query()
	if from != nil {
		q = q.Where(entdoc.UploadedAtGTE(*from))
	}
	if to != nil {
		q = q.Where(entdoc.UploadedAtLTE(*to))
	}
	rows, err := q.Order(entdoc.ByUploadedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "error", err)
		return nil, err
	}
	return rows, nil
}

// CountDocuments is a connectivity-probe helper for the dbhealth CLI.
func CountDocuments(ctx context.Context, entc *ent.Client) (int, error) {
	return entc.Document.Query().Count(ctx)
}
