// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/inkspect/docverify/gen/ent/document"
	"github.com/inkspect/docverify/gen/ent/verificationjob"
)

// VerificationJob is the model entity for the VerificationJob schema.
type VerificationJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// Format holds the value of the "format" field.
	Format string `json:"format,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// RegionTexts holds the value of the "region_texts" field.
	RegionTexts map[string]string `json:"region_texts,omitempty"`
	// OcrConfidence holds the value of the "ocr_confidence" field.
	OcrConfidence *float32 `json:"ocr_confidence,omitempty"`
	// DateFindings holds the value of the "date_findings" field.
	DateFindings json.RawMessage `json:"date_findings,omitempty"`
	// DateVerdict holds the value of the "date_verdict" field.
	DateVerdict *string `json:"date_verdict,omitempty"`
	// StampPresent holds the value of the "stamp_present" field.
	StampPresent *bool `json:"stamp_present,omitempty"`
	// StampConfidence holds the value of the "stamp_confidence" field.
	StampConfidence *float32 `json:"stamp_confidence,omitempty"`
	// SignaturePresent holds the value of the "signature_present" field.
	SignaturePresent *bool `json:"signature_present,omitempty"`
	// SignatureConfidence holds the value of the "signature_confidence" field.
	SignatureConfidence *float32 `json:"signature_confidence,omitempty"`
	// OverallConfidence holds the value of the "overall_confidence" field.
	OverallConfidence *float32 `json:"overall_confidence,omitempty"`
	// NeedsReview holds the value of the "needs_review" field.
	NeedsReview bool `json:"needs_review,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName *string `json:"model_name,omitempty"`
	// ModelParams holds the value of the "model_params" field.
	ModelParams json.RawMessage `json:"model_params,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VerificationJobQuery when eager-loading is set.
	Edges        VerificationJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VerificationJobEdges holds the relations/edges for other nodes in the graph.
type VerificationJobEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VerificationJobEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VerificationJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verificationjob.FieldRegionTexts, verificationjob.FieldDateFindings, verificationjob.FieldModelParams:
			values[i] = new([]byte)
		case verificationjob.FieldStampPresent, verificationjob.FieldSignaturePresent, verificationjob.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case verificationjob.FieldOcrConfidence, verificationjob.FieldStampConfidence, verificationjob.FieldSignatureConfidence, verificationjob.FieldOverallConfidence:
			values[i] = new(sql.NullFloat64)
		case verificationjob.FieldFormat, verificationjob.FieldStatus, verificationjob.FieldErrorMessage, verificationjob.FieldDateVerdict, verificationjob.FieldModelName:
			values[i] = new(sql.NullString)
		case verificationjob.FieldStartedAt, verificationjob.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case verificationjob.FieldID, verificationjob.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VerificationJob fields.
func (_m *VerificationJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verificationjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case verificationjob.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case verificationjob.FieldFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field format", values[i])
			} else if value.Valid {
				_m.Format = value.String
			}
		case verificationjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case verificationjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case verificationjob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case verificationjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case verificationjob.FieldRegionTexts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field region_texts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RegionTexts); err != nil {
					return fmt.Errorf("unmarshal field region_texts: %w", err)
				}
			}
		case verificationjob.FieldOcrConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_confidence", values[i])
			} else if value.Valid {
				_m.OcrConfidence = new(float32)
				*_m.OcrConfidence = float32(value.Float64)
			}
		case verificationjob.FieldDateFindings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field date_findings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DateFindings); err != nil {
					return fmt.Errorf("unmarshal field date_findings: %w", err)
				}
			}
		case verificationjob.FieldDateVerdict:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date_verdict", values[i])
			} else if value.Valid {
				_m.DateVerdict = new(string)
				*_m.DateVerdict = value.String
			}
		case verificationjob.FieldStampPresent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field stamp_present", values[i])
			} else if value.Valid {
				_m.StampPresent = new(bool)
				*_m.StampPresent = value.Bool
			}
		case verificationjob.FieldStampConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field stamp_confidence", values[i])
			} else if value.Valid {
				_m.StampConfidence = new(float32)
				*_m.StampConfidence = float32(value.Float64)
			}
		case verificationjob.FieldSignaturePresent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field signature_present", values[i])
			} else if value.Valid {
				_m.SignaturePresent = new(bool)
				*_m.SignaturePresent = value.Bool
			}
		case verificationjob.FieldSignatureConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field signature_confidence", values[i])
			} else if value.Valid {
				_m.SignatureConfidence = new(float32)
				*_m.SignatureConfidence = float32(value.Float64)
			}
		case verificationjob.FieldOverallConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_confidence", values[i])
			} else if value.Valid {
				_m.OverallConfidence = new(float32)
				*_m.OverallConfidence = float32(value.Float64)
			}
		case verificationjob.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		case verificationjob.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = new(string)
				*_m.ModelName = value.String
			}
		case verificationjob.FieldModelParams:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field model_params", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ModelParams); err != nil {
					return fmt.Errorf("unmarshal field model_params: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VerificationJob.
// This includes values selected through modifiers, order, etc.
func (_m *VerificationJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the VerificationJob entity.
func (_m *VerificationJob) QueryDocument() *DocumentQuery {
	return NewVerificationJobClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this VerificationJob.
// Note that you need to call VerificationJob.Unwrap() before calling this method if this VerificationJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VerificationJob) Update() *VerificationJobUpdateOne {
	return NewVerificationJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VerificationJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VerificationJob) Unwrap() *VerificationJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VerificationJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VerificationJob) String() string {
	var builder strings.Builder
	builder.WriteString("VerificationJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("format=")
	builder.WriteString(_m.Format)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("region_texts=")
	builder.WriteString(fmt.Sprintf("%v", _m.RegionTexts))
	builder.WriteString(", ")
	if v := _m.OcrConfidence; v != nil {
		builder.WriteString("ocr_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("date_findings=")
	builder.WriteString(fmt.Sprintf("%v", _m.DateFindings))
	builder.WriteString(", ")
	if v := _m.DateVerdict; v != nil {
		builder.WriteString("date_verdict=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StampPresent; v != nil {
		builder.WriteString("stamp_present=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.StampConfidence; v != nil {
		builder.WriteString("stamp_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SignaturePresent; v != nil {
		builder.WriteString("signature_present=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SignatureConfidence; v != nil {
		builder.WriteString("signature_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OverallConfidence; v != nil {
		builder.WriteString("overall_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteString(", ")
	if v := _m.ModelName; v != nil {
		builder.WriteString("model_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("model_params=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModelParams))
	builder.WriteByte(')')
	return builder.String()
}

// VerificationJobs is a parsable slice of VerificationJob.
type VerificationJobs []*VerificationJob
