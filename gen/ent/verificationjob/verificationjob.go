// Code generated by ent, DO NOT EDIT.

package verificationjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the verificationjob type in the database.
	Label = "verification_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldFormat holds the string denoting the format field in the database.
	FieldFormat = "format"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldRegionTexts holds the string denoting the region_texts field in the database.
	FieldRegionTexts = "region_texts"
	// FieldOcrConfidence holds the string denoting the ocr_confidence field in the database.
	FieldOcrConfidence = "ocr_confidence"
	// FieldDateFindings holds the string denoting the date_findings field in the database.
	FieldDateFindings = "date_findings"
	// FieldDateVerdict holds the string denoting the date_verdict field in the database.
	FieldDateVerdict = "date_verdict"
	// FieldStampPresent holds the string denoting the stamp_present field in the database.
	FieldStampPresent = "stamp_present"
	// FieldStampConfidence holds the string denoting the stamp_confidence field in the database.
	FieldStampConfidence = "stamp_confidence"
	// FieldSignaturePresent holds the string denoting the signature_present field in the database.
	FieldSignaturePresent = "signature_present"
	// FieldSignatureConfidence holds the string denoting the signature_confidence field in the database.
	FieldSignatureConfidence = "signature_confidence"
	// FieldOverallConfidence holds the string denoting the overall_confidence field in the database.
	FieldOverallConfidence = "overall_confidence"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// FieldModelName holds the string denoting the model_name field in the database.
	FieldModelName = "model_name"
	// FieldModelParams holds the string denoting the model_params field in the database.
	FieldModelParams = "model_params"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// Table holds the table name of the verificationjob in the database.
	Table = "verification_job"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "verification_job"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
)

// Columns holds all SQL columns for verificationjob fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldFormat,
	FieldStatus,
	FieldStartedAt,
	FieldFinishedAt,
	FieldErrorMessage,
	FieldRegionTexts,
	FieldOcrConfidence,
	FieldDateFindings,
	FieldDateVerdict,
	FieldStampPresent,
	FieldStampConfidence,
	FieldSignaturePresent,
	FieldSignatureConfidence,
	FieldOverallConfidence,
	FieldNeedsReview,
	FieldModelName,
	FieldModelParams,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FormatValidator is a validator for the "format" field. It is called by the builders before save.
	FormatValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DateVerdictValidator is a validator for the "date_verdict" field. It is called by the builders before save.
	DateVerdictValidator func(string) error
	// DefaultNeedsReview holds the default value on creation for the "needs_review" field.
	DefaultNeedsReview bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the VerificationJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByFormat orders the results by the format field.
func ByFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormat, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByOcrConfidence orders the results by the ocr_confidence field.
func ByOcrConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrConfidence, opts...).ToFunc()
}

// ByDateVerdict orders the results by the date_verdict field.
func ByDateVerdict(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateVerdict, opts...).ToFunc()
}

// ByStampPresent orders the results by the stamp_present field.
func ByStampPresent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStampPresent, opts...).ToFunc()
}

// ByStampConfidence orders the results by the stamp_confidence field.
func ByStampConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStampConfidence, opts...).ToFunc()
}

// BySignaturePresent orders the results by the signature_present field.
func BySignaturePresent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignaturePresent, opts...).ToFunc()
}

// BySignatureConfidence orders the results by the signature_confidence field.
func BySignatureConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignatureConfidence, opts...).ToFunc()
}

// ByOverallConfidence orders the results by the overall_confidence field.
func ByOverallConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallConfidence, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}

// ByModelName orders the results by the model_name field.
func ByModelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelName, opts...).ToFunc()
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
