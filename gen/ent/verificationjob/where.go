// Code generated by ent, DO NOT EDIT.

package verificationjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/inkspect/docverify/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldDocumentID, v))
}

// Format applies equality check predicate on the "format" field. It's identical to FormatEQ.
func Format(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldFormat, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldStatus, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldFinishedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldErrorMessage, v))
}

// OcrConfidence applies equality check predicate on the "ocr_confidence" field. It's identical to OcrConfidenceEQ.
func OcrConfidence(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldOcrConfidence, v))
}

// DateVerdict applies equality check predicate on the "date_verdict" field. It's identical to DateVerdictEQ.
func DateVerdict(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldDateVerdict, v))
}

// StampPresent applies equality check predicate on the "stamp_present" field. It's identical to StampPresentEQ.
func StampPresent(v bool) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldStampPresent, v))
}

// StampConfidence applies equality check predicate on the "stamp_confidence" field. It's identical to StampConfidenceEQ.
func StampConfidence(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldStampConfidence, v))
}

// SignaturePresent applies equality check predicate on the "signature_present" field. It's identical to SignaturePresentEQ.
func SignaturePresent(v bool) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldSignaturePresent, v))
}

// SignatureConfidence applies equality check predicate on the "signature_confidence" field. It's identical to SignatureConfidenceEQ.
func SignatureConfidence(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldSignatureConfidence, v))
}

// OverallConfidence applies equality check predicate on the "overall_confidence" field. It's identical to OverallConfidenceEQ.
func OverallConfidence(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldOverallConfidence, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldNeedsReview, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldModelName, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldDocumentID, vs...))
}

// FormatEQ applies the EQ predicate on the "format" field.
func FormatEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldFormat, v))
}

// FormatNEQ applies the NEQ predicate on the "format" field.
func FormatNEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldFormat, v))
}

// FormatIn applies the In predicate on the "format" field.
func FormatIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldFormat, vs...))
}

// FormatNotIn applies the NotIn predicate on the "format" field.
func FormatNotIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldFormat, vs...))
}

// FormatGT applies the GT predicate on the "format" field.
func FormatGT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldFormat, v))
}

// FormatGTE applies the GTE predicate on the "format" field.
func FormatGTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldFormat, v))
}

// FormatLT applies the LT predicate on the "format" field.
func FormatLT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldFormat, v))
}

// FormatLTE applies the LTE predicate on the "format" field.
func FormatLTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldFormat, v))
}

// FormatContains applies the Contains predicate on the "format" field.
func FormatContains(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContains(FieldFormat, v))
}

// FormatHasPrefix applies the HasPrefix predicate on the "format" field.
func FormatHasPrefix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasPrefix(FieldFormat, v))
}

// FormatHasSuffix applies the HasSuffix predicate on the "format" field.
func FormatHasSuffix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasSuffix(FieldFormat, v))
}

// FormatEqualFold applies the EqualFold predicate on the "format" field.
func FormatEqualFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldFormat, v))
}

// FormatContainsFold applies the ContainsFold predicate on the "format" field.
func FormatContainsFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldFormat, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldStatus, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldFinishedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// RegionTextsIsNil applies the IsNil predicate on the "region_texts" field.
func RegionTextsIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldRegionTexts))
}

// RegionTextsNotNil applies the NotNil predicate on the "region_texts" field.
func RegionTextsNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldRegionTexts))
}

// OcrConfidenceEQ applies the EQ predicate on the "ocr_confidence" field.
func OcrConfidenceEQ(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldOcrConfidence, v))
}

// OcrConfidenceNEQ applies the NEQ predicate on the "ocr_confidence" field.
func OcrConfidenceNEQ(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldOcrConfidence, v))
}

// OcrConfidenceIn applies the In predicate on the "ocr_confidence" field.
func OcrConfidenceIn(vs ...float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldOcrConfidence, vs...))
}

// OcrConfidenceNotIn applies the NotIn predicate on the "ocr_confidence" field.
func OcrConfidenceNotIn(vs ...float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldOcrConfidence, vs...))
}

// OcrConfidenceGT applies the GT predicate on the "ocr_confidence" field.
func OcrConfidenceGT(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldOcrConfidence, v))
}

// OcrConfidenceGTE applies the GTE predicate on the "ocr_confidence" field.
func OcrConfidenceGTE(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldOcrConfidence, v))
}

// OcrConfidenceLT applies the LT predicate on the "ocr_confidence" field.
func OcrConfidenceLT(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldOcrConfidence, v))
}

// OcrConfidenceLTE applies the LTE predicate on the "ocr_confidence" field.
func OcrConfidenceLTE(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldOcrConfidence, v))
}

// OcrConfidenceIsNil applies the IsNil predicate on the "ocr_confidence" field.
func OcrConfidenceIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldOcrConfidence))
}

// OcrConfidenceNotNil applies the NotNil predicate on the "ocr_confidence" field.
func OcrConfidenceNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldOcrConfidence))
}

// DateFindingsIsNil applies the IsNil predicate on the "date_findings" field.
func DateFindingsIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldDateFindings))
}

// DateFindingsNotNil applies the NotNil predicate on the "date_findings" field.
func DateFindingsNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldDateFindings))
}

// DateVerdictEQ applies the EQ predicate on the "date_verdict" field.
func DateVerdictEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldDateVerdict, v))
}

// DateVerdictNEQ applies the NEQ predicate on the "date_verdict" field.
func DateVerdictNEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldDateVerdict, v))
}

// DateVerdictIn applies the In predicate on the "date_verdict" field.
func DateVerdictIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldDateVerdict, vs...))
}

// DateVerdictNotIn applies the NotIn predicate on the "date_verdict" field.
func DateVerdictNotIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldDateVerdict, vs...))
}

// DateVerdictGT applies the GT predicate on the "date_verdict" field.
func DateVerdictGT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldDateVerdict, v))
}

// DateVerdictGTE applies the GTE predicate on the "date_verdict" field.
func DateVerdictGTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldDateVerdict, v))
}

// DateVerdictLT applies the LT predicate on the "date_verdict" field.
func DateVerdictLT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldDateVerdict, v))
}

// DateVerdictLTE applies the LTE predicate on the "date_verdict" field.
func DateVerdictLTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldDateVerdict, v))
}

// DateVerdictContains applies the Contains predicate on the "date_verdict" field.
func DateVerdictContains(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContains(FieldDateVerdict, v))
}

// DateVerdictHasPrefix applies the HasPrefix predicate on the "date_verdict" field.
func DateVerdictHasPrefix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasPrefix(FieldDateVerdict, v))
}

// DateVerdictHasSuffix applies the HasSuffix predicate on the "date_verdict" field.
func DateVerdictHasSuffix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasSuffix(FieldDateVerdict, v))
}

// DateVerdictIsNil applies the IsNil predicate on the "date_verdict" field.
func DateVerdictIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldDateVerdict))
}

// DateVerdictNotNil applies the NotNil predicate on the "date_verdict" field.
func DateVerdictNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldDateVerdict))
}

// DateVerdictEqualFold applies the EqualFold predicate on the "date_verdict" field.
func DateVerdictEqualFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldDateVerdict, v))
}

// DateVerdictContainsFold applies the ContainsFold predicate on the "date_verdict" field.
func DateVerdictContainsFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldDateVerdict, v))
}

// StampPresentEQ applies the EQ predicate on the "stamp_present" field.
func StampPresentEQ(v bool) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldStampPresent, v))
}

// StampPresentNEQ applies the NEQ predicate on the "stamp_present" field.
func StampPresentNEQ(v bool) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldStampPresent, v))
}

// StampPresentIsNil applies the IsNil predicate on the "stamp_present" field.
func StampPresentIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldStampPresent))
}

// StampPresentNotNil applies the NotNil predicate on the "stamp_present" field.
func StampPresentNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldStampPresent))
}

// StampConfidenceEQ applies the EQ predicate on the "stamp_confidence" field.
func StampConfidenceEQ(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldStampConfidence, v))
}

// StampConfidenceNEQ applies the NEQ predicate on the "stamp_confidence" field.
func StampConfidenceNEQ(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldStampConfidence, v))
}

// StampConfidenceIn applies the In predicate on the "stamp_confidence" field.
func StampConfidenceIn(vs ...float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldStampConfidence, vs...))
}

// StampConfidenceNotIn applies the NotIn predicate on the "stamp_confidence" field.
func StampConfidenceNotIn(vs ...float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldStampConfidence, vs...))
}

// StampConfidenceGT applies the GT predicate on the "stamp_confidence" field.
func StampConfidenceGT(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldStampConfidence, v))
}

// StampConfidenceGTE applies the GTE predicate on the "stamp_confidence" field.
func StampConfidenceGTE(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldStampConfidence, v))
}

// StampConfidenceLT applies the LT predicate on the "stamp_confidence" field.
func StampConfidenceLT(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldStampConfidence, v))
}

// StampConfidenceLTE applies the LTE predicate on the "stamp_confidence" field.
func StampConfidenceLTE(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldStampConfidence, v))
}

// StampConfidenceIsNil applies the IsNil predicate on the "stamp_confidence" field.
func StampConfidenceIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldStampConfidence))
}

// StampConfidenceNotNil applies the NotNil predicate on the "stamp_confidence" field.
func StampConfidenceNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldStampConfidence))
}

// SignaturePresentEQ applies the EQ predicate on the "signature_present" field.
func SignaturePresentEQ(v bool) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldSignaturePresent, v))
}

// SignaturePresentNEQ applies the NEQ predicate on the "signature_present" field.
func SignaturePresentNEQ(v bool) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldSignaturePresent, v))
}

// SignaturePresentIsNil applies the IsNil predicate on the "signature_present" field.
func SignaturePresentIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldSignaturePresent))
}

// SignaturePresentNotNil applies the NotNil predicate on the "signature_present" field.
func SignaturePresentNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldSignaturePresent))
}

// SignatureConfidenceEQ applies the EQ predicate on the "signature_confidence" field.
func SignatureConfidenceEQ(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldSignatureConfidence, v))
}

// SignatureConfidenceNEQ applies the NEQ predicate on the "signature_confidence" field.
func SignatureConfidenceNEQ(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldSignatureConfidence, v))
}

// SignatureConfidenceIn applies the In predicate on the "signature_confidence" field.
func SignatureConfidenceIn(vs ...float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldSignatureConfidence, vs...))
}

// SignatureConfidenceNotIn applies the NotIn predicate on the "signature_confidence" field.
func SignatureConfidenceNotIn(vs ...float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldSignatureConfidence, vs...))
}

// SignatureConfidenceGT applies the GT predicate on the "signature_confidence" field.
func SignatureConfidenceGT(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldSignatureConfidence, v))
}

// SignatureConfidenceGTE applies the GTE predicate on the "signature_confidence" field.
func SignatureConfidenceGTE(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldSignatureConfidence, v))
}

// SignatureConfidenceLT applies the LT predicate on the "signature_confidence" field.
func SignatureConfidenceLT(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldSignatureConfidence, v))
}

// SignatureConfidenceLTE applies the LTE predicate on the "signature_confidence" field.
func SignatureConfidenceLTE(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldSignatureConfidence, v))
}

// SignatureConfidenceIsNil applies the IsNil predicate on the "signature_confidence" field.
func SignatureConfidenceIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldSignatureConfidence))
}

// SignatureConfidenceNotNil applies the NotNil predicate on the "signature_confidence" field.
func SignatureConfidenceNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldSignatureConfidence))
}

// OverallConfidenceEQ applies the EQ predicate on the "overall_confidence" field.
func OverallConfidenceEQ(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldOverallConfidence, v))
}

// OverallConfidenceNEQ applies the NEQ predicate on the "overall_confidence" field.
func OverallConfidenceNEQ(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldOverallConfidence, v))
}

// OverallConfidenceIn applies the In predicate on the "overall_confidence" field.
func OverallConfidenceIn(vs ...float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldOverallConfidence, vs...))
}

// OverallConfidenceNotIn applies the NotIn predicate on the "overall_confidence" field.
func OverallConfidenceNotIn(vs ...float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldOverallConfidence, vs...))
}

// OverallConfidenceGT applies the GT predicate on the "overall_confidence" field.
func OverallConfidenceGT(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldOverallConfidence, v))
}

// OverallConfidenceGTE applies the GTE predicate on the "overall_confidence" field.
func OverallConfidenceGTE(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldOverallConfidence, v))
}

// OverallConfidenceLT applies the LT predicate on the "overall_confidence" field.
func OverallConfidenceLT(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldOverallConfidence, v))
}

// OverallConfidenceLTE applies the LTE predicate on the "overall_confidence" field.
func OverallConfidenceLTE(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldOverallConfidence, v))
}

// OverallConfidenceIsNil applies the IsNil predicate on the "overall_confidence" field.
func OverallConfidenceIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldOverallConfidence))
}

// OverallConfidenceNotNil applies the NotNil predicate on the "overall_confidence" field.
func OverallConfidenceNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldOverallConfidence))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldNeedsReview, v))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameIsNil applies the IsNil predicate on the "model_name" field.
func ModelNameIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldModelName))
}

// ModelNameNotNil applies the NotNil predicate on the "model_name" field.
func ModelNameNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldModelName))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldModelName, v))
}

// ModelParamsIsNil applies the IsNil predicate on the "model_params" field.
func ModelParamsIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldModelParams))
}

// ModelParamsNotNil applies the NotNil predicate on the "model_params" field.
func ModelParamsNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldModelParams))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.VerificationJob {
	return predicate.VerificationJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.VerificationJob {
	return predicate.VerificationJob(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VerificationJob) predicate.VerificationJob {
	return predicate.VerificationJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VerificationJob) predicate.VerificationJob {
	return predicate.VerificationJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VerificationJob) predicate.VerificationJob {
	return predicate.VerificationJob(sql.NotPredicates(p))
}
