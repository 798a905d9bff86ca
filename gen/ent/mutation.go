// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/inkspect/docverify/gen/ent/document"
	"github.com/inkspect/docverify/gen/ent/predicate"
	"github.com/inkspect/docverify/gen/ent/verificationjob"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument        = "Document"
	TypeVerificationJob = "VerificationJob"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	source_path   *string
	content_hash  *[]byte
	filename      *string
	file_ext      *string
	file_size     *int
	addfile_size  *int
	uploaded_at   *time.Time
	clearedFields map[string]struct{}
	jobs          map[uuid.UUID]struct{}
	removedjobs   map[uuid.UUID]struct{}
	clearedjobs   bool
	done          bool
	oldValue      func(context.Context) (*Document, error)
	predicates    []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourcePath sets the "source_path" field.
func (m *DocumentMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *DocumentMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *DocumentMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *DocumentMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DocumentMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DocumentMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *DocumentMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *DocumentMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *DocumentMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFileSize sets the "file_size" field.
func (m *DocumentMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *DocumentMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *DocumentMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *DocumentMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *DocumentMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *DocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *DocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *DocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// AddJobIDs adds the "jobs" edge to the VerificationJob entity by ids.
func (m *DocumentMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the VerificationJob entity.
func (m *DocumentMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the VerificationJob entity was cleared.
func (m *DocumentMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the VerificationJob entity by IDs.
func (m *DocumentMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the VerificationJob entity.
func (m *DocumentMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *DocumentMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *DocumentMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.source_path != nil {
		fields = append(fields, document.FieldSourcePath)
	}
	if m.content_hash != nil {
		fields = append(fields, document.FieldContentHash)
	}
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, document.FieldFileExt)
	}
	if m.file_size != nil {
		fields = append(fields, document.FieldFileSize)
	}
	if m.uploaded_at != nil {
		fields = append(fields, document.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldSourcePath:
		return m.SourcePath()
	case document.FieldContentHash:
		return m.ContentHash()
	case document.FieldFilename:
		return m.Filename()
	case document.FieldFileExt:
		return m.FileExt()
	case document.FieldFileSize:
		return m.FileSize()
	case document.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case document.FieldContentHash:
		return m.OldContentHash(ctx)
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldFileExt:
		return m.OldFileExt(ctx)
	case document.FieldFileSize:
		return m.OldFileSize(ctx)
	case document.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case document.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case document.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case document.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, document.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case document.FieldContentHash:
		m.ResetContentHash()
		return nil
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldFileExt:
		m.ResetFileExt()
		return nil
	case document.FieldFileSize:
		m.ResetFileSize()
		return nil
	case document.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, document.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, document.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, document.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// VerificationJobMutation represents an operation that mutates the VerificationJob nodes in the graph.
type VerificationJobMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	format                  *string
	status                  *string
	started_at              *time.Time
	finished_at             *time.Time
	error_message           *string
	region_texts            *map[string]string
	ocr_confidence          *float32
	addocr_confidence       *float32
	date_findings           *json.RawMessage
	appenddate_findings     json.RawMessage
	date_verdict            *string
	stamp_present           *bool
	stamp_confidence        *float32
	addstamp_confidence     *float32
	signature_present       *bool
	signature_confidence    *float32
	addsignature_confidence *float32
	overall_confidence      *float32
	addoverall_confidence   *float32
	needs_review            *bool
	model_name              *string
	model_params            *json.RawMessage
	appendmodel_params      json.RawMessage
	clearedFields           map[string]struct{}
	document                *uuid.UUID
	cleareddocument         bool
	done                    bool
	oldValue                func(context.Context) (*VerificationJob, error)
	predicates              []predicate.VerificationJob
}

var _ ent.Mutation = (*VerificationJobMutation)(nil)

// verificationjobOption allows management of the mutation configuration using functional options.
type verificationjobOption func(*VerificationJobMutation)

// newVerificationJobMutation creates new mutation for the VerificationJob entity.
func newVerificationJobMutation(c config, op Op, opts ...verificationjobOption) *VerificationJobMutation {
	m := &VerificationJobMutation{
		config:        c,
		op:            op,
		typ:           TypeVerificationJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVerificationJobID sets the ID field of the mutation.
func withVerificationJobID(id uuid.UUID) verificationjobOption {
	return func(m *VerificationJobMutation) {
		var (
			err   error
			once  sync.Once
			value *VerificationJob
		)
		m.oldValue = func(ctx context.Context) (*VerificationJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VerificationJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVerificationJob sets the old VerificationJob of the mutation.
func withVerificationJob(node *VerificationJob) verificationjobOption {
	return func(m *VerificationJobMutation) {
		m.oldValue = func(context.Context) (*VerificationJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VerificationJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VerificationJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VerificationJob entities.
func (m *VerificationJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VerificationJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VerificationJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VerificationJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *VerificationJobMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *VerificationJobMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *VerificationJobMutation) ResetDocumentID() {
	m.document = nil
}

// SetFormat sets the "format" field.
func (m *VerificationJobMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *VerificationJobMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *VerificationJobMutation) ResetFormat() {
	m.format = nil
}

// SetStatus sets the "status" field.
func (m *VerificationJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *VerificationJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *VerificationJobMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *VerificationJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *VerificationJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *VerificationJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *VerificationJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *VerificationJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *VerificationJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[verificationjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *VerificationJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *VerificationJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, verificationjob.FieldFinishedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *VerificationJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *VerificationJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *VerificationJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[verificationjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *VerificationJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *VerificationJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, verificationjob.FieldErrorMessage)
}

// SetRegionTexts sets the "region_texts" field.
func (m *VerificationJobMutation) SetRegionTexts(value map[string]string) {
	m.region_texts = &value
}

// RegionTexts returns the value of the "region_texts" field in the mutation.
func (m *VerificationJobMutation) RegionTexts() (r map[string]string, exists bool) {
	v := m.region_texts
	if v == nil {
		return
	}
	return *v, true
}

// OldRegionTexts returns the old "region_texts" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldRegionTexts(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegionTexts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegionTexts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegionTexts: %w", err)
	}
	return oldValue.RegionTexts, nil
}

// ClearRegionTexts clears the value of the "region_texts" field.
func (m *VerificationJobMutation) ClearRegionTexts() {
	m.region_texts = nil
	m.clearedFields[verificationjob.FieldRegionTexts] = struct{}{}
}

// RegionTextsCleared returns if the "region_texts" field was cleared in this mutation.
func (m *VerificationJobMutation) RegionTextsCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldRegionTexts]
	return ok
}

// ResetRegionTexts resets all changes to the "region_texts" field.
func (m *VerificationJobMutation) ResetRegionTexts() {
	m.region_texts = nil
	delete(m.clearedFields, verificationjob.FieldRegionTexts)
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (m *VerificationJobMutation) SetOcrConfidence(f float32) {
	m.ocr_confidence = &f
	m.addocr_confidence = nil
}

// OcrConfidence returns the value of the "ocr_confidence" field in the mutation.
func (m *VerificationJobMutation) OcrConfidence() (r float32, exists bool) {
	v := m.ocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrConfidence returns the old "ocr_confidence" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldOcrConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrConfidence: %w", err)
	}
	return oldValue.OcrConfidence, nil
}

// AddOcrConfidence adds f to the "ocr_confidence" field.
func (m *VerificationJobMutation) AddOcrConfidence(f float32) {
	if m.addocr_confidence != nil {
		*m.addocr_confidence += f
	} else {
		m.addocr_confidence = &f
	}
}

// AddedOcrConfidence returns the value that was added to the "ocr_confidence" field in this mutation.
func (m *VerificationJobMutation) AddedOcrConfidence() (r float32, exists bool) {
	v := m.addocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (m *VerificationJobMutation) ClearOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
	m.clearedFields[verificationjob.FieldOcrConfidence] = struct{}{}
}

// OcrConfidenceCleared returns if the "ocr_confidence" field was cleared in this mutation.
func (m *VerificationJobMutation) OcrConfidenceCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldOcrConfidence]
	return ok
}

// ResetOcrConfidence resets all changes to the "ocr_confidence" field.
func (m *VerificationJobMutation) ResetOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
	delete(m.clearedFields, verificationjob.FieldOcrConfidence)
}

// SetDateFindings sets the "date_findings" field.
func (m *VerificationJobMutation) SetDateFindings(jm json.RawMessage) {
	m.date_findings = &jm
	m.appenddate_findings = nil
}

// DateFindings returns the value of the "date_findings" field in the mutation.
func (m *VerificationJobMutation) DateFindings() (r json.RawMessage, exists bool) {
	v := m.date_findings
	if v == nil {
		return
	}
	return *v, true
}

// OldDateFindings returns the old "date_findings" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldDateFindings(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateFindings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateFindings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateFindings: %w", err)
	}
	return oldValue.DateFindings, nil
}

// AppendDateFindings adds jm to the "date_findings" field.
func (m *VerificationJobMutation) AppendDateFindings(jm json.RawMessage) {
	m.appenddate_findings = append(m.appenddate_findings, jm...)
}

// AppendedDateFindings returns the list of values that were appended to the "date_findings" field in this mutation.
func (m *VerificationJobMutation) AppendedDateFindings() (json.RawMessage, bool) {
	if len(m.appenddate_findings) == 0 {
		return nil, false
	}
	return m.appenddate_findings, true
}

// ClearDateFindings clears the value of the "date_findings" field.
func (m *VerificationJobMutation) ClearDateFindings() {
	m.date_findings = nil
	m.appenddate_findings = nil
	m.clearedFields[verificationjob.FieldDateFindings] = struct{}{}
}

// DateFindingsCleared returns if the "date_findings" field was cleared in this mutation.
func (m *VerificationJobMutation) DateFindingsCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldDateFindings]
	return ok
}

// ResetDateFindings resets all changes to the "date_findings" field.
func (m *VerificationJobMutation) ResetDateFindings() {
	m.date_findings = nil
	m.appenddate_findings = nil
	delete(m.clearedFields, verificationjob.FieldDateFindings)
}

// SetDateVerdict sets the "date_verdict" field.
func (m *VerificationJobMutation) SetDateVerdict(s string) {
	m.date_verdict = &s
}

// DateVerdict returns the value of the "date_verdict" field in the mutation.
func (m *VerificationJobMutation) DateVerdict() (r string, exists bool) {
	v := m.date_verdict
	if v == nil {
		return
	}
	return *v, true
}

// OldDateVerdict returns the old "date_verdict" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldDateVerdict(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateVerdict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateVerdict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateVerdict: %w", err)
	}
	return oldValue.DateVerdict, nil
}

// ClearDateVerdict clears the value of the "date_verdict" field.
func (m *VerificationJobMutation) ClearDateVerdict() {
	m.date_verdict = nil
	m.clearedFields[verificationjob.FieldDateVerdict] = struct{}{}
}

// DateVerdictCleared returns if the "date_verdict" field was cleared in this mutation.
func (m *VerificationJobMutation) DateVerdictCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldDateVerdict]
	return ok
}

// ResetDateVerdict resets all changes to the "date_verdict" field.
func (m *VerificationJobMutation) ResetDateVerdict() {
	m.date_verdict = nil
	delete(m.clearedFields, verificationjob.FieldDateVerdict)
}

// SetStampPresent sets the "stamp_present" field.
func (m *VerificationJobMutation) SetStampPresent(b bool) {
	m.stamp_present = &b
}

// StampPresent returns the value of the "stamp_present" field in the mutation.
func (m *VerificationJobMutation) StampPresent() (r bool, exists bool) {
	v := m.stamp_present
	if v == nil {
		return
	}
	return *v, true
}

// OldStampPresent returns the old "stamp_present" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldStampPresent(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStampPresent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStampPresent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStampPresent: %w", err)
	}
	return oldValue.StampPresent, nil
}

// ClearStampPresent clears the value of the "stamp_present" field.
func (m *VerificationJobMutation) ClearStampPresent() {
	m.stamp_present = nil
	m.clearedFields[verificationjob.FieldStampPresent] = struct{}{}
}

// StampPresentCleared returns if the "stamp_present" field was cleared in this mutation.
func (m *VerificationJobMutation) StampPresentCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldStampPresent]
	return ok
}

// ResetStampPresent resets all changes to the "stamp_present" field.
func (m *VerificationJobMutation) ResetStampPresent() {
	m.stamp_present = nil
	delete(m.clearedFields, verificationjob.FieldStampPresent)
}

// SetStampConfidence sets the "stamp_confidence" field.
func (m *VerificationJobMutation) SetStampConfidence(f float32) {
	m.stamp_confidence = &f
	m.addstamp_confidence = nil
}

// StampConfidence returns the value of the "stamp_confidence" field in the mutation.
func (m *VerificationJobMutation) StampConfidence() (r float32, exists bool) {
	v := m.stamp_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldStampConfidence returns the old "stamp_confidence" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldStampConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStampConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStampConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStampConfidence: %w", err)
	}
	return oldValue.StampConfidence, nil
}

// AddStampConfidence adds f to the "stamp_confidence" field.
func (m *VerificationJobMutation) AddStampConfidence(f float32) {
	if m.addstamp_confidence != nil {
		*m.addstamp_confidence += f
	} else {
		m.addstamp_confidence = &f
	}
}

// AddedStampConfidence returns the value that was added to the "stamp_confidence" field in this mutation.
func (m *VerificationJobMutation) AddedStampConfidence() (r float32, exists bool) {
	v := m.addstamp_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearStampConfidence clears the value of the "stamp_confidence" field.
func (m *VerificationJobMutation) ClearStampConfidence() {
	m.stamp_confidence = nil
	m.addstamp_confidence = nil
	m.clearedFields[verificationjob.FieldStampConfidence] = struct{}{}
}

// StampConfidenceCleared returns if the "stamp_confidence" field was cleared in this mutation.
func (m *VerificationJobMutation) StampConfidenceCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldStampConfidence]
	return ok
}

// ResetStampConfidence resets all changes to the "stamp_confidence" field.
func (m *VerificationJobMutation) ResetStampConfidence() {
	m.stamp_confidence = nil
	m.addstamp_confidence = nil
	delete(m.clearedFields, verificationjob.FieldStampConfidence)
}

// SetSignaturePresent sets the "signature_present" field.
func (m *VerificationJobMutation) SetSignaturePresent(b bool) {
	m.signature_present = &b
}

// SignaturePresent returns the value of the "signature_present" field in the mutation.
func (m *VerificationJobMutation) SignaturePresent() (r bool, exists bool) {
	v := m.signature_present
	if v == nil {
		return
	}
	return *v, true
}

// OldSignaturePresent returns the old "signature_present" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldSignaturePresent(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignaturePresent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignaturePresent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignaturePresent: %w", err)
	}
	return oldValue.SignaturePresent, nil
}

// ClearSignaturePresent clears the value of the "signature_present" field.
func (m *VerificationJobMutation) ClearSignaturePresent() {
	m.signature_present = nil
	m.clearedFields[verificationjob.FieldSignaturePresent] = struct{}{}
}

// SignaturePresentCleared returns if the "signature_present" field was cleared in this mutation.
func (m *VerificationJobMutation) SignaturePresentCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldSignaturePresent]
	return ok
}

// ResetSignaturePresent resets all changes to the "signature_present" field.
func (m *VerificationJobMutation) ResetSignaturePresent() {
	m.signature_present = nil
	delete(m.clearedFields, verificationjob.FieldSignaturePresent)
}

// SetSignatureConfidence sets the "signature_confidence" field.
func (m *VerificationJobMutation) SetSignatureConfidence(f float32) {
	m.signature_confidence = &f
	m.addsignature_confidence = nil
}

// SignatureConfidence returns the value of the "signature_confidence" field in the mutation.
func (m *VerificationJobMutation) SignatureConfidence() (r float32, exists bool) {
	v := m.signature_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldSignatureConfidence returns the old "signature_confidence" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldSignatureConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignatureConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignatureConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignatureConfidence: %w", err)
	}
	return oldValue.SignatureConfidence, nil
}

// AddSignatureConfidence adds f to the "signature_confidence" field.
func (m *VerificationJobMutation) AddSignatureConfidence(f float32) {
	if m.addsignature_confidence != nil {
		*m.addsignature_confidence += f
	} else {
		m.addsignature_confidence = &f
	}
}

// AddedSignatureConfidence returns the value that was added to the "signature_confidence" field in this mutation.
func (m *VerificationJobMutation) AddedSignatureConfidence() (r float32, exists bool) {
	v := m.addsignature_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearSignatureConfidence clears the value of the "signature_confidence" field.
func (m *VerificationJobMutation) ClearSignatureConfidence() {
	m.signature_confidence = nil
	m.addsignature_confidence = nil
	m.clearedFields[verificationjob.FieldSignatureConfidence] = struct{}{}
}

// SignatureConfidenceCleared returns if the "signature_confidence" field was cleared in this mutation.
func (m *VerificationJobMutation) SignatureConfidenceCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldSignatureConfidence]
	return ok
}

// ResetSignatureConfidence resets all changes to the "signature_confidence" field.
func (m *VerificationJobMutation) ResetSignatureConfidence() {
	m.signature_confidence = nil
	m.addsignature_confidence = nil
	delete(m.clearedFields, verificationjob.FieldSignatureConfidence)
}

// SetOverallConfidence sets the "overall_confidence" field.
func (m *VerificationJobMutation) SetOverallConfidence(f float32) {
	m.overall_confidence = &f
	m.addoverall_confidence = nil
}

// OverallConfidence returns the value of the "overall_confidence" field in the mutation.
func (m *VerificationJobMutation) OverallConfidence() (r float32, exists bool) {
	v := m.overall_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallConfidence returns the old "overall_confidence" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldOverallConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallConfidence: %w", err)
	}
	return oldValue.OverallConfidence, nil
}

// AddOverallConfidence adds f to the "overall_confidence" field.
func (m *VerificationJobMutation) AddOverallConfidence(f float32) {
	if m.addoverall_confidence != nil {
		*m.addoverall_confidence += f
	} else {
		m.addoverall_confidence = &f
	}
}

// AddedOverallConfidence returns the value that was added to the "overall_confidence" field in this mutation.
func (m *VerificationJobMutation) AddedOverallConfidence() (r float32, exists bool) {
	v := m.addoverall_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearOverallConfidence clears the value of the "overall_confidence" field.
func (m *VerificationJobMutation) ClearOverallConfidence() {
	m.overall_confidence = nil
	m.addoverall_confidence = nil
	m.clearedFields[verificationjob.FieldOverallConfidence] = struct{}{}
}

// OverallConfidenceCleared returns if the "overall_confidence" field was cleared in this mutation.
func (m *VerificationJobMutation) OverallConfidenceCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldOverallConfidence]
	return ok
}

// ResetOverallConfidence resets all changes to the "overall_confidence" field.
func (m *VerificationJobMutation) ResetOverallConfidence() {
	m.overall_confidence = nil
	m.addoverall_confidence = nil
	delete(m.clearedFields, verificationjob.FieldOverallConfidence)
}

// SetNeedsReview sets the "needs_review" field.
func (m *VerificationJobMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *VerificationJobMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *VerificationJobMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetModelName sets the "model_name" field.
func (m *VerificationJobMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *VerificationJobMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldModelName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *VerificationJobMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[verificationjob.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *VerificationJobMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *VerificationJobMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, verificationjob.FieldModelName)
}

// SetModelParams sets the "model_params" field.
func (m *VerificationJobMutation) SetModelParams(jm json.RawMessage) {
	m.model_params = &jm
	m.appendmodel_params = nil
}

// ModelParams returns the value of the "model_params" field in the mutation.
func (m *VerificationJobMutation) ModelParams() (r json.RawMessage, exists bool) {
	v := m.model_params
	if v == nil {
		return
	}
	return *v, true
}

// OldModelParams returns the old "model_params" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldModelParams(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelParams: %w", err)
	}
	return oldValue.ModelParams, nil
}

// AppendModelParams adds jm to the "model_params" field.
func (m *VerificationJobMutation) AppendModelParams(jm json.RawMessage) {
	m.appendmodel_params = append(m.appendmodel_params, jm...)
}

// AppendedModelParams returns the list of values that were appended to the "model_params" field in this mutation.
func (m *VerificationJobMutation) AppendedModelParams() (json.RawMessage, bool) {
	if len(m.appendmodel_params) == 0 {
		return nil, false
	}
	return m.appendmodel_params, true
}

// ClearModelParams clears the value of the "model_params" field.
func (m *VerificationJobMutation) ClearModelParams() {
	m.model_params = nil
	m.appendmodel_params = nil
	m.clearedFields[verificationjob.FieldModelParams] = struct{}{}
}

// ModelParamsCleared returns if the "model_params" field was cleared in this mutation.
func (m *VerificationJobMutation) ModelParamsCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldModelParams]
	return ok
}

// ResetModelParams resets all changes to the "model_params" field.
func (m *VerificationJobMutation) ResetModelParams() {
	m.model_params = nil
	m.appendmodel_params = nil
	delete(m.clearedFields, verificationjob.FieldModelParams)
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *VerificationJobMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[verificationjob.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *VerificationJobMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *VerificationJobMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *VerificationJobMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the VerificationJobMutation builder.
func (m *VerificationJobMutation) Where(ps ...predicate.VerificationJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VerificationJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VerificationJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VerificationJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VerificationJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VerificationJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VerificationJob).
func (m *VerificationJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VerificationJobMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.document != nil {
		fields = append(fields, verificationjob.FieldDocumentID)
	}
	if m.format != nil {
		fields = append(fields, verificationjob.FieldFormat)
	}
	if m.status != nil {
		fields = append(fields, verificationjob.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, verificationjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, verificationjob.FieldFinishedAt)
	}
	if m.error_message != nil {
		fields = append(fields, verificationjob.FieldErrorMessage)
	}
	if m.region_texts != nil {
		fields = append(fields, verificationjob.FieldRegionTexts)
	}
	if m.ocr_confidence != nil {
		fields = append(fields, verificationjob.FieldOcrConfidence)
	}
	if m.date_findings != nil {
		fields = append(fields, verificationjob.FieldDateFindings)
	}
	if m.date_verdict != nil {
		fields = append(fields, verificationjob.FieldDateVerdict)
	}
	if m.stamp_present != nil {
		fields = append(fields, verificationjob.FieldStampPresent)
	}
	if m.stamp_confidence != nil {
		fields = append(fields, verificationjob.FieldStampConfidence)
	}
	if m.signature_present != nil {
		fields = append(fields, verificationjob.FieldSignaturePresent)
	}
	if m.signature_confidence != nil {
		fields = append(fields, verificationjob.FieldSignatureConfidence)
	}
	if m.overall_confidence != nil {
		fields = append(fields, verificationjob.FieldOverallConfidence)
	}
	if m.needs_review != nil {
		fields = append(fields, verificationjob.FieldNeedsReview)
	}
	if m.model_name != nil {
		fields = append(fields, verificationjob.FieldModelName)
	}
	if m.model_params != nil {
		fields = append(fields, verificationjob.FieldModelParams)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VerificationJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case verificationjob.FieldDocumentID:
		return m.DocumentID()
	case verificationjob.FieldFormat:
		return m.Format()
	case verificationjob.FieldStatus:
		return m.Status()
	case verificationjob.FieldStartedAt:
		return m.StartedAt()
	case verificationjob.FieldFinishedAt:
		return m.FinishedAt()
	case verificationjob.FieldErrorMessage:
		return m.ErrorMessage()
	case verificationjob.FieldRegionTexts:
		return m.RegionTexts()
	case verificationjob.FieldOcrConfidence:
		return m.OcrConfidence()
	case verificationjob.FieldDateFindings:
		return m.DateFindings()
	case verificationjob.FieldDateVerdict:
		return m.DateVerdict()
	case verificationjob.FieldStampPresent:
		return m.StampPresent()
	case verificationjob.FieldStampConfidence:
		return m.StampConfidence()
	case verificationjob.FieldSignaturePresent:
		return m.SignaturePresent()
	case verificationjob.FieldSignatureConfidence:
		return m.SignatureConfidence()
	case verificationjob.FieldOverallConfidence:
		return m.OverallConfidence()
	case verificationjob.FieldNeedsReview:
		return m.NeedsReview()
	case verificationjob.FieldModelName:
		return m.ModelName()
	case verificationjob.FieldModelParams:
		return m.ModelParams()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VerificationJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case verificationjob.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case verificationjob.FieldFormat:
		return m.OldFormat(ctx)
	case verificationjob.FieldStatus:
		return m.OldStatus(ctx)
	case verificationjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case verificationjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case verificationjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case verificationjob.FieldRegionTexts:
		return m.OldRegionTexts(ctx)
	case verificationjob.FieldOcrConfidence:
		return m.OldOcrConfidence(ctx)
	case verificationjob.FieldDateFindings:
		return m.OldDateFindings(ctx)
	case verificationjob.FieldDateVerdict:
		return m.OldDateVerdict(ctx)
	case verificationjob.FieldStampPresent:
		return m.OldStampPresent(ctx)
	case verificationjob.FieldStampConfidence:
		return m.OldStampConfidence(ctx)
	case verificationjob.FieldSignaturePresent:
		return m.OldSignaturePresent(ctx)
	case verificationjob.FieldSignatureConfidence:
		return m.OldSignatureConfidence(ctx)
	case verificationjob.FieldOverallConfidence:
		return m.OldOverallConfidence(ctx)
	case verificationjob.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case verificationjob.FieldModelName:
		return m.OldModelName(ctx)
	case verificationjob.FieldModelParams:
		return m.OldModelParams(ctx)
	}
	return nil, fmt.Errorf("unknown VerificationJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case verificationjob.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case verificationjob.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case verificationjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case verificationjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case verificationjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case verificationjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case verificationjob.FieldRegionTexts:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegionTexts(v)
		return nil
	case verificationjob.FieldOcrConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrConfidence(v)
		return nil
	case verificationjob.FieldDateFindings:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateFindings(v)
		return nil
	case verificationjob.FieldDateVerdict:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateVerdict(v)
		return nil
	case verificationjob.FieldStampPresent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStampPresent(v)
		return nil
	case verificationjob.FieldStampConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStampConfidence(v)
		return nil
	case verificationjob.FieldSignaturePresent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignaturePresent(v)
		return nil
	case verificationjob.FieldSignatureConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignatureConfidence(v)
		return nil
	case verificationjob.FieldOverallConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallConfidence(v)
		return nil
	case verificationjob.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case verificationjob.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case verificationjob.FieldModelParams:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelParams(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VerificationJobMutation) AddedFields() []string {
	var fields []string
	if m.addocr_confidence != nil {
		fields = append(fields, verificationjob.FieldOcrConfidence)
	}
	if m.addstamp_confidence != nil {
		fields = append(fields, verificationjob.FieldStampConfidence)
	}
	if m.addsignature_confidence != nil {
		fields = append(fields, verificationjob.FieldSignatureConfidence)
	}
	if m.addoverall_confidence != nil {
		fields = append(fields, verificationjob.FieldOverallConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VerificationJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case verificationjob.FieldOcrConfidence:
		return m.AddedOcrConfidence()
	case verificationjob.FieldStampConfidence:
		return m.AddedStampConfidence()
	case verificationjob.FieldSignatureConfidence:
		return m.AddedSignatureConfidence()
	case verificationjob.FieldOverallConfidence:
		return m.AddedOverallConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case verificationjob.FieldOcrConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOcrConfidence(v)
		return nil
	case verificationjob.FieldStampConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStampConfidence(v)
		return nil
	case verificationjob.FieldSignatureConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSignatureConfidence(v)
		return nil
	case verificationjob.FieldOverallConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VerificationJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(verificationjob.FieldFinishedAt) {
		fields = append(fields, verificationjob.FieldFinishedAt)
	}
	if m.FieldCleared(verificationjob.FieldErrorMessage) {
		fields = append(fields, verificationjob.FieldErrorMessage)
	}
	if m.FieldCleared(verificationjob.FieldRegionTexts) {
		fields = append(fields, verificationjob.FieldRegionTexts)
	}
	if m.FieldCleared(verificationjob.FieldOcrConfidence) {
		fields = append(fields, verificationjob.FieldOcrConfidence)
	}
	if m.FieldCleared(verificationjob.FieldDateFindings) {
		fields = append(fields, verificationjob.FieldDateFindings)
	}
	if m.FieldCleared(verificationjob.FieldDateVerdict) {
		fields = append(fields, verificationjob.FieldDateVerdict)
	}
	if m.FieldCleared(verificationjob.FieldStampPresent) {
		fields = append(fields, verificationjob.FieldStampPresent)
	}
	if m.FieldCleared(verificationjob.FieldStampConfidence) {
		fields = append(fields, verificationjob.FieldStampConfidence)
	}
	if m.FieldCleared(verificationjob.FieldSignaturePresent) {
		fields = append(fields, verificationjob.FieldSignaturePresent)
	}
	if m.FieldCleared(verificationjob.FieldSignatureConfidence) {
		fields = append(fields, verificationjob.FieldSignatureConfidence)
	}
	if m.FieldCleared(verificationjob.FieldOverallConfidence) {
		fields = append(fields, verificationjob.FieldOverallConfidence)
	}
	if m.FieldCleared(verificationjob.FieldModelName) {
		fields = append(fields, verificationjob.FieldModelName)
	}
	if m.FieldCleared(verificationjob.FieldModelParams) {
		fields = append(fields, verificationjob.FieldModelParams)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VerificationJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VerificationJobMutation) ClearField(name string) error {
	switch name {
	case verificationjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case verificationjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case verificationjob.FieldRegionTexts:
		m.ClearRegionTexts()
		return nil
	case verificationjob.FieldOcrConfidence:
		m.ClearOcrConfidence()
		return nil
	case verificationjob.FieldDateFindings:
		m.ClearDateFindings()
		return nil
	case verificationjob.FieldDateVerdict:
		m.ClearDateVerdict()
		return nil
	case verificationjob.FieldStampPresent:
		m.ClearStampPresent()
		return nil
	case verificationjob.FieldStampConfidence:
		m.ClearStampConfidence()
		return nil
	case verificationjob.FieldSignaturePresent:
		m.ClearSignaturePresent()
		return nil
	case verificationjob.FieldSignatureConfidence:
		m.ClearSignatureConfidence()
		return nil
	case verificationjob.FieldOverallConfidence:
		m.ClearOverallConfidence()
		return nil
	case verificationjob.FieldModelName:
		m.ClearModelName()
		return nil
	case verificationjob.FieldModelParams:
		m.ClearModelParams()
		return nil
	}
	return fmt.Errorf("unknown VerificationJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VerificationJobMutation) ResetField(name string) error {
	switch name {
	case verificationjob.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case verificationjob.FieldFormat:
		m.ResetFormat()
		return nil
	case verificationjob.FieldStatus:
		m.ResetStatus()
		return nil
	case verificationjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case verificationjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case verificationjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case verificationjob.FieldRegionTexts:
		m.ResetRegionTexts()
		return nil
	case verificationjob.FieldOcrConfidence:
		m.ResetOcrConfidence()
		return nil
	case verificationjob.FieldDateFindings:
		m.ResetDateFindings()
		return nil
	case verificationjob.FieldDateVerdict:
		m.ResetDateVerdict()
		return nil
	case verificationjob.FieldStampPresent:
		m.ResetStampPresent()
		return nil
	case verificationjob.FieldStampConfidence:
		m.ResetStampConfidence()
		return nil
	case verificationjob.FieldSignaturePresent:
		m.ResetSignaturePresent()
		return nil
	case verificationjob.FieldSignatureConfidence:
		m.ResetSignatureConfidence()
		return nil
	case verificationjob.FieldOverallConfidence:
		m.ResetOverallConfidence()
		return nil
	case verificationjob.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case verificationjob.FieldModelName:
		m.ResetModelName()
		return nil
	case verificationjob.FieldModelParams:
		m.ResetModelParams()
		return nil
	}
	return fmt.Errorf("unknown VerificationJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VerificationJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, verificationjob.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VerificationJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case verificationjob.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VerificationJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VerificationJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VerificationJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, verificationjob.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VerificationJobMutation) EdgeCleared(name string) bool {
	switch name {
	case verificationjob.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VerificationJobMutation) ClearEdge(name string) error {
	switch name {
	case verificationjob.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown VerificationJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VerificationJobMutation) ResetEdge(name string) error {
	switch name {
	case verificationjob.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown VerificationJob edge %s", name)
}
