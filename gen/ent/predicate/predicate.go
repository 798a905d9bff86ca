// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// VerificationJob is the predicate function for verificationjob builders.
type VerificationJob func(*sql.Selector)
