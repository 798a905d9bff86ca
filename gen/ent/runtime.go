// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/inkspect/docverify/db/ent/schema"
	"github.com/inkspect/docverify/gen/ent/document"
	"github.com/inkspect/docverify/gen/ent/verificationjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescSourcePath is the schema descriptor for source_path field.
	documentDescSourcePath := documentFields[1].Descriptor()
	// document.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	document.SourcePathValidator = documentDescSourcePath.Validators[0].(func(string) error)
	// documentDescContentHash is the schema descriptor for content_hash field.
	documentDescContentHash := documentFields[2].Descriptor()
	// document.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	document.ContentHashValidator = documentDescContentHash.Validators[0].(func([]byte) error)
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[3].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescFileExt is the schema descriptor for file_ext field.
	documentDescFileExt := documentFields[4].Descriptor()
	// document.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	document.FileExtValidator = documentDescFileExt.Validators[0].(func(string) error)
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[5].Descriptor()
	// document.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	document.FileSizeValidator = documentDescFileSize.Validators[0].(func(int) error)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[6].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	verificationjobFields := schema.VerificationJob{}.Fields()
	_ = verificationjobFields
	// verificationjobDescFormat is the schema descriptor for format field.
	verificationjobDescFormat := verificationjobFields[2].Descriptor()
	// verificationjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	verificationjob.FormatValidator = func() func(string) error {
		validators := verificationjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// verificationjobDescStatus is the schema descriptor for status field.
	verificationjobDescStatus := verificationjobFields[3].Descriptor()
	// verificationjob.DefaultStatus holds the default value on creation for the status field.
	verificationjob.DefaultStatus = verificationjobDescStatus.Default.(string)
	// verificationjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	verificationjob.StatusValidator = verificationjobDescStatus.Validators[0].(func(string) error)
	// verificationjobDescStartedAt is the schema descriptor for started_at field.
	verificationjobDescStartedAt := verificationjobFields[4].Descriptor()
	// verificationjob.DefaultStartedAt holds the default value on creation for the started_at field.
	verificationjob.DefaultStartedAt = verificationjobDescStartedAt.Default.(func() time.Time)
	// verificationjobDescDateVerdict is the schema descriptor for date_verdict field.
	verificationjobDescDateVerdict := verificationjobFields[10].Descriptor()
	// verificationjob.DateVerdictValidator is a validator for the "date_verdict" field. It is called by the builders before save.
	verificationjob.DateVerdictValidator = verificationjobDescDateVerdict.Validators[0].(func(string) error)
	// verificationjobDescNeedsReview is the schema descriptor for needs_review field.
	verificationjobDescNeedsReview := verificationjobFields[16].Descriptor()
	// verificationjob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	verificationjob.DefaultNeedsReview = verificationjobDescNeedsReview.Default.(bool)
	// verificationjobDescID is the schema descriptor for id field.
	verificationjobDescID := verificationjobFields[0].Descriptor()
	// verificationjob.DefaultID holds the default value on creation for the id field.
	verificationjob.DefaultID = verificationjobDescID.Default.(func() uuid.UUID)
}
