// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/inkspect/docverify/gen/ent/document"
	"github.com/inkspect/docverify/gen/ent/predicate"
	"github.com/inkspect/docverify/gen/ent/verificationjob"
)

// VerificationJobUpdate is the builder for updating VerificationJob entities.
type VerificationJobUpdate struct {
	config
	hooks    []Hook
	mutation *VerificationJobMutation
}

// Where appends a list predicates to the VerificationJobUpdate builder.
func (_u *VerificationJobUpdate) Where(ps ...predicate.VerificationJob) *VerificationJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *VerificationJobUpdate) SetDocumentID(v uuid.UUID) *VerificationJobUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableDocumentID(v *uuid.UUID) *VerificationJobUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *VerificationJobUpdate) SetFormat(v string) *VerificationJobUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableFormat(v *string) *VerificationJobUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *VerificationJobUpdate) SetStatus(v string) *VerificationJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableStatus(v *string) *VerificationJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *VerificationJobUpdate) SetStartedAt(v time.Time) *VerificationJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableStartedAt(v *time.Time) *VerificationJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *VerificationJobUpdate) SetFinishedAt(v time.Time) *VerificationJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableFinishedAt(v *time.Time) *VerificationJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *VerificationJobUpdate) ClearFinishedAt() *VerificationJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *VerificationJobUpdate) SetErrorMessage(v string) *VerificationJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableErrorMessage(v *string) *VerificationJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *VerificationJobUpdate) ClearErrorMessage() *VerificationJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRegionTexts sets the "region_texts" field.
func (_u *VerificationJobUpdate) SetRegionTexts(v map[string]string) *VerificationJobUpdate {
	_u.mutation.SetRegionTexts(v)
	return _u
}

// ClearRegionTexts clears the value of the "region_texts" field.
func (_u *VerificationJobUpdate) ClearRegionTexts() *VerificationJobUpdate {
	_u.mutation.ClearRegionTexts()
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *VerificationJobUpdate) SetOcrConfidence(v float32) *VerificationJobUpdate {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableOcrConfidence(v *float32) *VerificationJobUpdate {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *VerificationJobUpdate) AddOcrConfidence(v float32) *VerificationJobUpdate {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (_u *VerificationJobUpdate) ClearOcrConfidence() *VerificationJobUpdate {
	_u.mutation.ClearOcrConfidence()
	return _u
}

// SetDateFindings sets the "date_findings" field.
func (_u *VerificationJobUpdate) SetDateFindings(v json.RawMessage) *VerificationJobUpdate {
	_u.mutation.SetDateFindings(v)
	return _u
}

// AppendDateFindings appends value to the "date_findings" field.
func (_u *VerificationJobUpdate) AppendDateFindings(v json.RawMessage) *VerificationJobUpdate {
	_u.mutation.AppendDateFindings(v)
	return _u
}

// ClearDateFindings clears the value of the "date_findings" field.
func (_u *VerificationJobUpdate) ClearDateFindings() *VerificationJobUpdate {
	_u.mutation.ClearDateFindings()
	return _u
}

// SetDateVerdict sets the "date_verdict" field.
func (_u *VerificationJobUpdate) SetDateVerdict(v string) *VerificationJobUpdate {
	_u.mutation.SetDateVerdict(v)
	return _u
}

// SetNillableDateVerdict sets the "date_verdict" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableDateVerdict(v *string) *VerificationJobUpdate {
	if v != nil {
		_u.SetDateVerdict(*v)
	}
	return _u
}

// ClearDateVerdict clears the value of the "date_verdict" field.
func (_u *VerificationJobUpdate) ClearDateVerdict() *VerificationJobUpdate {
	_u.mutation.ClearDateVerdict()
	return _u
}

// SetStampPresent sets the "stamp_present" field.
func (_u *VerificationJobUpdate) SetStampPresent(v bool) *VerificationJobUpdate {
	_u.mutation.SetStampPresent(v)
	return _u
}

// SetNillableStampPresent sets the "stamp_present" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableStampPresent(v *bool) *VerificationJobUpdate {
	if v != nil {
		_u.SetStampPresent(*v)
	}
	return _u
}

// ClearStampPresent clears the value of the "stamp_present" field.
func (_u *VerificationJobUpdate) ClearStampPresent() *VerificationJobUpdate {
	_u.mutation.ClearStampPresent()
	return _u
}

// SetStampConfidence sets the "stamp_confidence" field.
func (_u *VerificationJobUpdate) SetStampConfidence(v float32) *VerificationJobUpdate {
	_u.mutation.ResetStampConfidence()
	_u.mutation.SetStampConfidence(v)
	return _u
}

// SetNillableStampConfidence sets the "stamp_confidence" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableStampConfidence(v *float32) *VerificationJobUpdate {
	if v != nil {
		_u.SetStampConfidence(*v)
	}
	return _u
}

// AddStampConfidence adds value to the "stamp_confidence" field.
func (_u *VerificationJobUpdate) AddStampConfidence(v float32) *VerificationJobUpdate {
	_u.mutation.AddStampConfidence(v)
	return _u
}

// ClearStampConfidence clears the value of the "stamp_confidence" field.
func (_u *VerificationJobUpdate) ClearStampConfidence() *VerificationJobUpdate {
	_u.mutation.ClearStampConfidence()
	return _u
}

// SetSignaturePresent sets the "signature_present" field.
func (_u *VerificationJobUpdate) SetSignaturePresent(v bool) *VerificationJobUpdate {
	_u.mutation.SetSignaturePresent(v)
	return _u
}

// SetNillableSignaturePresent sets the "signature_present" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableSignaturePresent(v *bool) *VerificationJobUpdate {
	if v != nil {
		_u.SetSignaturePresent(*v)
	}
	return _u
}

// ClearSignaturePresent clears the value of the "signature_present" field.
func (_u *VerificationJobUpdate) ClearSignaturePresent() *VerificationJobUpdate {
	_u.mutation.ClearSignaturePresent()
	return _u
}

// SetSignatureConfidence sets the "signature_confidence" field.
func (_u *VerificationJobUpdate) SetSignatureConfidence(v float32) *VerificationJobUpdate {
	_u.mutation.ResetSignatureConfidence()
	_u.mutation.SetSignatureConfidence(v)
	return _u
}

// SetNillableSignatureConfidence sets the "signature_confidence" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableSignatureConfidence(v *float32) *VerificationJobUpdate {
	if v != nil {
		_u.SetSignatureConfidence(*v)
	}
	return _u
}

// AddSignatureConfidence adds value to the "signature_confidence" field.
func (_u *VerificationJobUpdate) AddSignatureConfidence(v float32) *VerificationJobUpdate {
	_u.mutation.AddSignatureConfidence(v)
	return _u
}

// ClearSignatureConfidence clears the value of the "signature_confidence" field.
func (_u *VerificationJobUpdate) ClearSignatureConfidence() *VerificationJobUpdate {
	_u.mutation.ClearSignatureConfidence()
	return _u
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_u *VerificationJobUpdate) SetOverallConfidence(v float32) *VerificationJobUpdate {
	_u.mutation.ResetOverallConfidence()
	_u.mutation.SetOverallConfidence(v)
	return _u
}

// SetNillableOverallConfidence sets the "overall_confidence" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableOverallConfidence(v *float32) *VerificationJobUpdate {
	if v != nil {
		_u.SetOverallConfidence(*v)
	}
	return _u
}

// AddOverallConfidence adds value to the "overall_confidence" field.
func (_u *VerificationJobUpdate) AddOverallConfidence(v float32) *VerificationJobUpdate {
	_u.mutation.AddOverallConfidence(v)
	return _u
}

// ClearOverallConfidence clears the value of the "overall_confidence" field.
func (_u *VerificationJobUpdate) ClearOverallConfidence() *VerificationJobUpdate {
	_u.mutation.ClearOverallConfidence()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *VerificationJobUpdate) SetNeedsReview(v bool) *VerificationJobUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableNeedsReview(v *bool) *VerificationJobUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *VerificationJobUpdate) SetModelName(v string) *VerificationJobUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableModelName(v *string) *VerificationJobUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *VerificationJobUpdate) ClearModelName() *VerificationJobUpdate {
	_u.mutation.ClearModelName()
	return _u
}

// SetModelParams sets the "model_params" field.
func (_u *VerificationJobUpdate) SetModelParams(v json.RawMessage) *VerificationJobUpdate {
	_u.mutation.SetModelParams(v)
	return _u
}

// AppendModelParams appends value to the "model_params" field.
func (_u *VerificationJobUpdate) AppendModelParams(v json.RawMessage) *VerificationJobUpdate {
	_u.mutation.AppendModelParams(v)
	return _u
}

// ClearModelParams clears the value of the "model_params" field.
func (_u *VerificationJobUpdate) ClearModelParams() *VerificationJobUpdate {
	_u.mutation.ClearModelParams()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *VerificationJobUpdate) SetDocument(v *Document) *VerificationJobUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the VerificationJobMutation object of the builder.
func (_u *VerificationJobUpdate) Mutation() *VerificationJobMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *VerificationJobUpdate) ClearDocument() *VerificationJobUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerificationJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerificationJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationJobUpdate) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := verificationjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := verificationjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DateVerdict(); ok {
		if err := verificationjob.DateVerdictValidator(v); err != nil {
			return &ValidationError{Name: "date_verdict", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.date_verdict": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationJob.document"`)
	}
	return nil
}

func (_u *VerificationJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationjob.Table, verificationjob.Columns, sqlgraph.NewFieldSpec(verificationjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(verificationjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(verificationjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(verificationjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(verificationjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(verificationjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(verificationjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(verificationjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RegionTexts(); ok {
		_spec.SetField(verificationjob.FieldRegionTexts, field.TypeJSON, value)
	}
	if _u.mutation.RegionTextsCleared() {
		_spec.ClearField(verificationjob.FieldRegionTexts, field.TypeJSON)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(verificationjob.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(verificationjob.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OcrConfidenceCleared() {
		_spec.ClearField(verificationjob.FieldOcrConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.DateFindings(); ok {
		_spec.SetField(verificationjob.FieldDateFindings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDateFindings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationjob.FieldDateFindings, value)
		})
	}
	if _u.mutation.DateFindingsCleared() {
		_spec.ClearField(verificationjob.FieldDateFindings, field.TypeJSON)
	}
	if value, ok := _u.mutation.DateVerdict(); ok {
		_spec.SetField(verificationjob.FieldDateVerdict, field.TypeString, value)
	}
	if _u.mutation.DateVerdictCleared() {
		_spec.ClearField(verificationjob.FieldDateVerdict, field.TypeString)
	}
	if value, ok := _u.mutation.StampPresent(); ok {
		_spec.SetField(verificationjob.FieldStampPresent, field.TypeBool, value)
	}
	if _u.mutation.StampPresentCleared() {
		_spec.ClearField(verificationjob.FieldStampPresent, field.TypeBool)
	}
	if value, ok := _u.mutation.StampConfidence(); ok {
		_spec.SetField(verificationjob.FieldStampConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedStampConfidence(); ok {
		_spec.AddField(verificationjob.FieldStampConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.StampConfidenceCleared() {
		_spec.ClearField(verificationjob.FieldStampConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.SignaturePresent(); ok {
		_spec.SetField(verificationjob.FieldSignaturePresent, field.TypeBool, value)
	}
	if _u.mutation.SignaturePresentCleared() {
		_spec.ClearField(verificationjob.FieldSignaturePresent, field.TypeBool)
	}
	if value, ok := _u.mutation.SignatureConfidence(); ok {
		_spec.SetField(verificationjob.FieldSignatureConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedSignatureConfidence(); ok {
		_spec.AddField(verificationjob.FieldSignatureConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.SignatureConfidenceCleared() {
		_spec.ClearField(verificationjob.FieldSignatureConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.OverallConfidence(); ok {
		_spec.SetField(verificationjob.FieldOverallConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOverallConfidence(); ok {
		_spec.AddField(verificationjob.FieldOverallConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OverallConfidenceCleared() {
		_spec.ClearField(verificationjob.FieldOverallConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(verificationjob.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(verificationjob.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(verificationjob.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.ModelParams(); ok {
		_spec.SetField(verificationjob.FieldModelParams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModelParams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationjob.FieldModelParams, value)
		})
	}
	if _u.mutation.ModelParamsCleared() {
		_spec.ClearField(verificationjob.FieldModelParams, field.TypeJSON)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerificationJobUpdateOne is the builder for updating a single VerificationJob entity.
type VerificationJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerificationJobMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *VerificationJobUpdateOne) SetDocumentID(v uuid.UUID) *VerificationJobUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableDocumentID(v *uuid.UUID) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *VerificationJobUpdateOne) SetFormat(v string) *VerificationJobUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableFormat(v *string) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *VerificationJobUpdateOne) SetStatus(v string) *VerificationJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableStatus(v *string) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *VerificationJobUpdateOne) SetStartedAt(v time.Time) *VerificationJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableStartedAt(v *time.Time) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *VerificationJobUpdateOne) SetFinishedAt(v time.Time) *VerificationJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableFinishedAt(v *time.Time) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *VerificationJobUpdateOne) ClearFinishedAt() *VerificationJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *VerificationJobUpdateOne) SetErrorMessage(v string) *VerificationJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableErrorMessage(v *string) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *VerificationJobUpdateOne) ClearErrorMessage() *VerificationJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRegionTexts sets the "region_texts" field.
func (_u *VerificationJobUpdateOne) SetRegionTexts(v map[string]string) *VerificationJobUpdateOne {
	_u.mutation.SetRegionTexts(v)
	return _u
}

// ClearRegionTexts clears the value of the "region_texts" field.
func (_u *VerificationJobUpdateOne) ClearRegionTexts() *VerificationJobUpdateOne {
	_u.mutation.ClearRegionTexts()
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *VerificationJobUpdateOne) SetOcrConfidence(v float32) *VerificationJobUpdateOne {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableOcrConfidence(v *float32) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *VerificationJobUpdateOne) AddOcrConfidence(v float32) *VerificationJobUpdateOne {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (_u *VerificationJobUpdateOne) ClearOcrConfidence() *VerificationJobUpdateOne {
	_u.mutation.ClearOcrConfidence()
	return _u
}

// SetDateFindings sets the "date_findings" field.
func (_u *VerificationJobUpdateOne) SetDateFindings(v json.RawMessage) *VerificationJobUpdateOne {
	_u.mutation.SetDateFindings(v)
	return _u
}

// AppendDateFindings appends value to the "date_findings" field.
func (_u *VerificationJobUpdateOne) AppendDateFindings(v json.RawMessage) *VerificationJobUpdateOne {
	_u.mutation.AppendDateFindings(v)
	return _u
}

// ClearDateFindings clears the value of the "date_findings" field.
func (_u *VerificationJobUpdateOne) ClearDateFindings() *VerificationJobUpdateOne {
	_u.mutation.ClearDateFindings()
	return _u
}

// SetDateVerdict sets the "date_verdict" field.
func (_u *VerificationJobUpdateOne) SetDateVerdict(v string) *VerificationJobUpdateOne {
	_u.mutation.SetDateVerdict(v)
	return _u
}

// SetNillableDateVerdict sets the "date_verdict" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableDateVerdict(v *string) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetDateVerdict(*v)
	}
	return _u
}

// ClearDateVerdict clears the value of the "date_verdict" field.
func (_u *VerificationJobUpdateOne) ClearDateVerdict() *VerificationJobUpdateOne {
	_u.mutation.ClearDateVerdict()
	return _u
}

// SetStampPresent sets the "stamp_present" field.
func (_u *VerificationJobUpdateOne) SetStampPresent(v bool) *VerificationJobUpdateOne {
	_u.mutation.SetStampPresent(v)
	return _u
}

// SetNillableStampPresent sets the "stamp_present" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableStampPresent(v *bool) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetStampPresent(*v)
	}
	return _u
}

// ClearStampPresent clears the value of the "stamp_present" field.
func (_u *VerificationJobUpdateOne) ClearStampPresent() *VerificationJobUpdateOne {
	_u.mutation.ClearStampPresent()
	return _u
}

// SetStampConfidence sets the "stamp_confidence" field.
func (_u *VerificationJobUpdateOne) SetStampConfidence(v float32) *VerificationJobUpdateOne {
	_u.mutation.ResetStampConfidence()
	_u.mutation.SetStampConfidence(v)
	return _u
}

// SetNillableStampConfidence sets the "stamp_confidence" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableStampConfidence(v *float32) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetStampConfidence(*v)
	}
	return _u
}

// AddStampConfidence adds value to the "stamp_confidence" field.
func (_u *VerificationJobUpdateOne) AddStampConfidence(v float32) *VerificationJobUpdateOne {
	_u.mutation.AddStampConfidence(v)
	return _u
}

// ClearStampConfidence clears the value of the "stamp_confidence" field.
func (_u *VerificationJobUpdateOne) ClearStampConfidence() *VerificationJobUpdateOne {
	_u.mutation.ClearStampConfidence()
	return _u
}

// SetSignaturePresent sets the "signature_present" field.
func (_u *VerificationJobUpdateOne) SetSignaturePresent(v bool) *VerificationJobUpdateOne {
	_u.mutation.SetSignaturePresent(v)
	return _u
}

// SetNillableSignaturePresent sets the "signature_present" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableSignaturePresent(v *bool) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetSignaturePresent(*v)
	}
	return _u
}

// ClearSignaturePresent clears the value of the "signature_present" field.
func (_u *VerificationJobUpdateOne) ClearSignaturePresent() *VerificationJobUpdateOne {
	_u.mutation.ClearSignaturePresent()
	return _u
}

// SetSignatureConfidence sets the "signature_confidence" field.
func (_u *VerificationJobUpdateOne) SetSignatureConfidence(v float32) *VerificationJobUpdateOne {
	_u.mutation.ResetSignatureConfidence()
	_u.mutation.SetSignatureConfidence(v)
	return _u
}

// SetNillableSignatureConfidence sets the "signature_confidence" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableSignatureConfidence(v *float32) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetSignatureConfidence(*v)
	}
	return _u
}

// AddSignatureConfidence adds value to the "signature_confidence" field.
func (_u *VerificationJobUpdateOne) AddSignatureConfidence(v float32) *VerificationJobUpdateOne {
	_u.mutation.AddSignatureConfidence(v)
	return _u
}

// ClearSignatureConfidence clears the value of the "signature_confidence" field.
func (_u *VerificationJobUpdateOne) ClearSignatureConfidence() *VerificationJobUpdateOne {
	_u.mutation.ClearSignatureConfidence()
	return _u
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_u *VerificationJobUpdateOne) SetOverallConfidence(v float32) *VerificationJobUpdateOne {
	_u.mutation.ResetOverallConfidence()
	_u.mutation.SetOverallConfidence(v)
	return _u
}

// SetNillableOverallConfidence sets the "overall_confidence" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableOverallConfidence(v *float32) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetOverallConfidence(*v)
	}
	return _u
}

// AddOverallConfidence adds value to the "overall_confidence" field.
func (_u *VerificationJobUpdateOne) AddOverallConfidence(v float32) *VerificationJobUpdateOne {
	_u.mutation.AddOverallConfidence(v)
	return _u
}

// ClearOverallConfidence clears the value of the "overall_confidence" field.
func (_u *VerificationJobUpdateOne) ClearOverallConfidence() *VerificationJobUpdateOne {
	_u.mutation.ClearOverallConfidence()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *VerificationJobUpdateOne) SetNeedsReview(v bool) *VerificationJobUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableNeedsReview(v *bool) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *VerificationJobUpdateOne) SetModelName(v string) *VerificationJobUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableModelName(v *string) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *VerificationJobUpdateOne) ClearModelName() *VerificationJobUpdateOne {
	_u.mutation.ClearModelName()
	return _u
}

// SetModelParams sets the "model_params" field.
func (_u *VerificationJobUpdateOne) SetModelParams(v json.RawMessage) *VerificationJobUpdateOne {
	_u.mutation.SetModelParams(v)
	return _u
}

// AppendModelParams appends value to the "model_params" field.
func (_u *VerificationJobUpdateOne) AppendModelParams(v json.RawMessage) *VerificationJobUpdateOne {
	_u.mutation.AppendModelParams(v)
	return _u
}

// ClearModelParams clears the value of the "model_params" field.
func (_u *VerificationJobUpdateOne) ClearModelParams() *VerificationJobUpdateOne {
	_u.mutation.ClearModelParams()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *VerificationJobUpdateOne) SetDocument(v *Document) *VerificationJobUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the VerificationJobMutation object of the builder.
func (_u *VerificationJobUpdateOne) Mutation() *VerificationJobMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *VerificationJobUpdateOne) ClearDocument() *VerificationJobUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the VerificationJobUpdate builder.
func (_u *VerificationJobUpdateOne) Where(ps ...predicate.VerificationJob) *VerificationJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerificationJobUpdateOne) Select(field string, fields ...string) *VerificationJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VerificationJob entity.
func (_u *VerificationJobUpdateOne) Save(ctx context.Context) (*VerificationJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationJobUpdateOne) SaveX(ctx context.Context) *VerificationJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerificationJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationJobUpdateOne) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := verificationjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := verificationjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DateVerdict(); ok {
		if err := verificationjob.DateVerdictValidator(v); err != nil {
			return &ValidationError{Name: "date_verdict", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.date_verdict": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationJob.document"`)
	}
	return nil
}

func (_u *VerificationJobUpdateOne) sqlSave(ctx context.Context) (_node *VerificationJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationjob.Table, verificationjob.Columns, sqlgraph.NewFieldSpec(verificationjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VerificationJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verificationjob.FieldID)
		for _, f := range fields {
			if !verificationjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verificationjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(verificationjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(verificationjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(verificationjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(verificationjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(verificationjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(verificationjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(verificationjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RegionTexts(); ok {
		_spec.SetField(verificationjob.FieldRegionTexts, field.TypeJSON, value)
	}
	if _u.mutation.RegionTextsCleared() {
		_spec.ClearField(verificationjob.FieldRegionTexts, field.TypeJSON)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(verificationjob.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(verificationjob.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OcrConfidenceCleared() {
		_spec.ClearField(verificationjob.FieldOcrConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.DateFindings(); ok {
		_spec.SetField(verificationjob.FieldDateFindings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDateFindings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationjob.FieldDateFindings, value)
		})
	}
	if _u.mutation.DateFindingsCleared() {
		_spec.ClearField(verificationjob.FieldDateFindings, field.TypeJSON)
	}
	if value, ok := _u.mutation.DateVerdict(); ok {
		_spec.SetField(verificationjob.FieldDateVerdict, field.TypeString, value)
	}
	if _u.mutation.DateVerdictCleared() {
		_spec.ClearField(verificationjob.FieldDateVerdict, field.TypeString)
	}
	if value, ok := _u.mutation.StampPresent(); ok {
		_spec.SetField(verificationjob.FieldStampPresent, field.TypeBool, value)
	}
	if _u.mutation.StampPresentCleared() {
		_spec.ClearField(verificationjob.FieldStampPresent, field.TypeBool)
	}
	if value, ok := _u.mutation.StampConfidence(); ok {
		_spec.SetField(verificationjob.FieldStampConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedStampConfidence(); ok {
		_spec.AddField(verificationjob.FieldStampConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.StampConfidenceCleared() {
		_spec.ClearField(verificationjob.FieldStampConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.SignaturePresent(); ok {
		_spec.SetField(verificationjob.FieldSignaturePresent, field.TypeBool, value)
	}
	if _u.mutation.SignaturePresentCleared() {
		_spec.ClearField(verificationjob.FieldSignaturePresent, field.TypeBool)
	}
	if value, ok := _u.mutation.SignatureConfidence(); ok {
		_spec.SetField(verificationjob.FieldSignatureConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedSignatureConfidence(); ok {
		_spec.AddField(verificationjob.FieldSignatureConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.SignatureConfidenceCleared() {
		_spec.ClearField(verificationjob.FieldSignatureConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.OverallConfidence(); ok {
		_spec.SetField(verificationjob.FieldOverallConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOverallConfidence(); ok {
		_spec.AddField(verificationjob.FieldOverallConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OverallConfidenceCleared() {
		_spec.ClearField(verificationjob.FieldOverallConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(verificationjob.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(verificationjob.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(verificationjob.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.ModelParams(); ok {
		_spec.SetField(verificationjob.FieldModelParams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModelParams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationjob.FieldModelParams, value)
		})
	}
	if _u.mutation.ModelParamsCleared() {
		_spec.ClearField(verificationjob.FieldModelParams, field.TypeJSON)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &VerificationJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
