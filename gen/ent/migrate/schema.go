// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_content_hash",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[2]},
			},
			{
				Name:    "document_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[6]},
			},
		},
	}
	// VerificationJobColumns holds the columns for the "verification_job" table.
	VerificationJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "region_texts", Type: field.TypeJSON, Nullable: true},
		{Name: "ocr_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "date_findings", Type: field.TypeJSON, Nullable: true},
		{Name: "date_verdict", Type: field.TypeString, Nullable: true},
		{Name: "stamp_present", Type: field.TypeBool, Nullable: true},
		{Name: "stamp_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "signature_present", Type: field.TypeBool, Nullable: true},
		{Name: "signature_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "overall_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "model_params", Type: field.TypeJSON, Nullable: true},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// VerificationJobTable holds the schema information for the "verification_job" table.
	VerificationJobTable = &schema.Table{
		Name:       "verification_job",
		Columns:    VerificationJobColumns,
		PrimaryKey: []*schema.Column{VerificationJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "verification_job_documents_jobs",
				Columns:    []*schema.Column{VerificationJobColumns[18]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "verificationjob_document_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{VerificationJobColumns[18], VerificationJobColumns[2], VerificationJobColumns[3]},
			},
			{
				Name:    "verificationjob_started_at",
				Unique:  false,
				Columns: []*schema.Column{VerificationJobColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		VerificationJobTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	VerificationJobTable.ForeignKeys[0].RefTable = DocumentsTable
	VerificationJobTable.Annotation = &entsql.Annotation{
		Table: "verification_job",
	}
}
