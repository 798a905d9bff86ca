// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/inkspect/docverify/gen/ent/document"
	"github.com/inkspect/docverify/gen/ent/verificationjob"
)

// VerificationJobCreate is the builder for creating a VerificationJob entity.
type VerificationJobCreate struct {
	config
	mutation *VerificationJobMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *VerificationJobCreate) SetDocumentID(v uuid.UUID) *VerificationJobCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetFormat sets the "format" field.
func (_c *VerificationJobCreate) SetFormat(v string) *VerificationJobCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *VerificationJobCreate) SetStatus(v string) *VerificationJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableStatus(v *string) *VerificationJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *VerificationJobCreate) SetStartedAt(v time.Time) *VerificationJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableStartedAt(v *time.Time) *VerificationJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *VerificationJobCreate) SetFinishedAt(v time.Time) *VerificationJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableFinishedAt(v *time.Time) *VerificationJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *VerificationJobCreate) SetErrorMessage(v string) *VerificationJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableErrorMessage(v *string) *VerificationJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetRegionTexts sets the "region_texts" field.
func (_c *VerificationJobCreate) SetRegionTexts(v map[string]string) *VerificationJobCreate {
	_c.mutation.SetRegionTexts(v)
	return _c
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_c *VerificationJobCreate) SetOcrConfidence(v float32) *VerificationJobCreate {
	_c.mutation.SetOcrConfidence(v)
	return _c
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableOcrConfidence(v *float32) *VerificationJobCreate {
	if v != nil {
		_c.SetOcrConfidence(*v)
	}
	return _c
}

// SetDateFindings sets the "date_findings" field.
func (_c *VerificationJobCreate) SetDateFindings(v json.RawMessage) *VerificationJobCreate {
	_c.mutation.SetDateFindings(v)
	return _c
}

// SetDateVerdict sets the "date_verdict" field.
func (_c *VerificationJobCreate) SetDateVerdict(v string) *VerificationJobCreate {
	_c.mutation.SetDateVerdict(v)
	return _c
}

// SetNillableDateVerdict sets the "date_verdict" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableDateVerdict(v *string) *VerificationJobCreate {
	if v != nil {
		_c.SetDateVerdict(*v)
	}
	return _c
}

// SetStampPresent sets the "stamp_present" field.
func (_c *VerificationJobCreate) SetStampPresent(v bool) *VerificationJobCreate {
	_c.mutation.SetStampPresent(v)
	return _c
}

// SetNillableStampPresent sets the "stamp_present" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableStampPresent(v *bool) *VerificationJobCreate {
	if v != nil {
		_c.SetStampPresent(*v)
	}
	return _c
}

// SetStampConfidence sets the "stamp_confidence" field.
func (_c *VerificationJobCreate) SetStampConfidence(v float32) *VerificationJobCreate {
	_c.mutation.SetStampConfidence(v)
	return _c
}

// SetNillableStampConfidence sets the "stamp_confidence" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableStampConfidence(v *float32) *VerificationJobCreate {
	if v != nil {
		_c.SetStampConfidence(*v)
	}
	return _c
}

// SetSignaturePresent sets the "signature_present" field.
func (_c *VerificationJobCreate) SetSignaturePresent(v bool) *VerificationJobCreate {
	_c.mutation.SetSignaturePresent(v)
	return _c
}

// SetNillableSignaturePresent sets the "signature_present" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableSignaturePresent(v *bool) *VerificationJobCreate {
	if v != nil {
		_c.SetSignaturePresent(*v)
	}
	return _c
}

// SetSignatureConfidence sets the "signature_confidence" field.
func (_c *VerificationJobCreate) SetSignatureConfidence(v float32) *VerificationJobCreate {
	_c.mutation.SetSignatureConfidence(v)
	return _c
}

// SetNillableSignatureConfidence sets the "signature_confidence" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableSignatureConfidence(v *float32) *VerificationJobCreate {
	if v != nil {
		_c.SetSignatureConfidence(*v)
	}
	return _c
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_c *VerificationJobCreate) SetOverallConfidence(v float32) *VerificationJobCreate {
	_c.mutation.SetOverallConfidence(v)
	return _c
}

// SetNillableOverallConfidence sets the "overall_confidence" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableOverallConfidence(v *float32) *VerificationJobCreate {
	if v != nil {
		_c.SetOverallConfidence(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *VerificationJobCreate) SetNeedsReview(v bool) *VerificationJobCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableNeedsReview(v *bool) *VerificationJobCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *VerificationJobCreate) SetModelName(v string) *VerificationJobCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableModelName(v *string) *VerificationJobCreate {
	if v != nil {
		_c.SetModelName(*v)
	}
	return _c
}

// SetModelParams sets the "model_params" field.
func (_c *VerificationJobCreate) SetModelParams(v json.RawMessage) *VerificationJobCreate {
	_c.mutation.SetModelParams(v)
	return _c
}

// SetID sets the "id" field.
func (_c *VerificationJobCreate) SetID(v uuid.UUID) *VerificationJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableID(v *uuid.UUID) *VerificationJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *VerificationJobCreate) SetDocument(v *Document) *VerificationJobCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the VerificationJobMutation object of the builder.
func (_c *VerificationJobCreate) Mutation() *VerificationJobMutation {
	return _c.mutation
}

// Save creates the VerificationJob in the database.
func (_c *VerificationJobCreate) Save(ctx context.Context) (*VerificationJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerificationJobCreate) SaveX(ctx context.Context) *VerificationJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerificationJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := verificationjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := verificationjob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := verificationjob.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := verificationjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerificationJobCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "VerificationJob.document_id"`)}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "VerificationJob.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := verificationjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "VerificationJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := verificationjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "VerificationJob.started_at"`)}
	}
	if v, ok := _c.mutation.DateVerdict(); ok {
		if err := verificationjob.DateVerdictValidator(v); err != nil {
			return &ValidationError{Name: "date_verdict", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.date_verdict": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "VerificationJob.needs_review"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "VerificationJob.document"`)}
	}
	return nil
}

func (_c *VerificationJobCreate) sqlSave(ctx context.Context) (*VerificationJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VerificationJobCreate) createSpec() (*VerificationJob, *sqlgraph.CreateSpec) {
	var (
		_node = &VerificationJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verificationjob.Table, sqlgraph.NewFieldSpec(verificationjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(verificationjob.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(verificationjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(verificationjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(verificationjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(verificationjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.RegionTexts(); ok {
		_spec.SetField(verificationjob.FieldRegionTexts, field.TypeJSON, value)
		_node.RegionTexts = value
	}
	if value, ok := _c.mutation.OcrConfidence(); ok {
		_spec.SetField(verificationjob.FieldOcrConfidence, field.TypeFloat32, value)
		_node.OcrConfidence = &value
	}
	if value, ok := _c.mutation.DateFindings(); ok {
		_spec.SetField(verificationjob.FieldDateFindings, field.TypeJSON, value)
		_node.DateFindings = value
	}
	if value, ok := _c.mutation.DateVerdict(); ok {
		_spec.SetField(verificationjob.FieldDateVerdict, field.TypeString, value)
		_node.DateVerdict = &value
	}
	if value, ok := _c.mutation.StampPresent(); ok {
		_spec.SetField(verificationjob.FieldStampPresent, field.TypeBool, value)
		_node.StampPresent = &value
	}
	if value, ok := _c.mutation.StampConfidence(); ok {
		_spec.SetField(verificationjob.FieldStampConfidence, field.TypeFloat32, value)
		_node.StampConfidence = &value
	}
	if value, ok := _c.mutation.SignaturePresent(); ok {
		_spec.SetField(verificationjob.FieldSignaturePresent, field.TypeBool, value)
		_node.SignaturePresent = &value
	}
	if value, ok := _c.mutation.SignatureConfidence(); ok {
		_spec.SetField(verificationjob.FieldSignatureConfidence, field.TypeFloat32, value)
		_node.SignatureConfidence = &value
	}
	if value, ok := _c.mutation.OverallConfidence(); ok {
		_spec.SetField(verificationjob.FieldOverallConfidence, field.TypeFloat32, value)
		_node.OverallConfidence = &value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(verificationjob.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(verificationjob.FieldModelName, field.TypeString, value)
		_node.ModelName = &value
	}
	if value, ok := _c.mutation.ModelParams(); ok {
		_spec.SetField(verificationjob.FieldModelParams, field.TypeJSON, value)
		_node.ModelParams = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verificationjob.DocumentTable,
			Columns: []string{verificationjob.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VerificationJobCreateBulk is the builder for creating many VerificationJob entities in bulk.
type VerificationJobCreateBulk struct {
	config
	err      error
	builders []*VerificationJobCreate
}

// Save creates the VerificationJob entities in the database.
func (_c *VerificationJobCreateBulk) Save(ctx context.Context) ([]*VerificationJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VerificationJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerificationJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *VerificationJobCreateBulk) SaveX(ctx context.Context) []*VerificationJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
