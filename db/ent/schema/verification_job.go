package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/inkspect/docverify/constants"
	"github.com/inkspect/docverify/db/ent/schema/utils"
	"github.com/inkspect/docverify/internal/dateparse"
)

type VerificationJob struct{ ent.Schema }

func (VerificationJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "verification_job"},
	}
}

func (VerificationJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("document_id", uuid.UUID{}),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.String("status").
			Default(string(constants.JobStatusQueued)).
			Validate(utils.EnumValidator(constants.JobStatuses()...)),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		// OCR stage output: text per region plus an aggregate confidence
		field.JSON("region_texts", map[string]string{}).Optional(),
		field.Float32("ocr_confidence").Optional().Nillable(),
		// analysis stage output
		field.JSON("date_findings", json.RawMessage{}).Optional(),
		field.String("date_verdict").Optional().Nillable().
			Validate(utils.EnumValidator(
				string(dateparse.Consistent),
				string(dateparse.Inconsistent),
				string(dateparse.Unknown),
			)),
		field.Bool("stamp_present").Optional().Nillable(),
		field.Float32("stamp_confidence").Optional().Nillable(),
		field.Bool("signature_present").Optional().Nillable(),
		field.Float32("signature_confidence").Optional().Nillable(),
		field.Float32("overall_confidence").Optional().Nillable(),
		field.Bool("needs_review").Default(false),
		field.String("model_name").Optional().Nillable(),
		field.JSON("model_params", json.RawMessage{}).Optional(),
	}
}

func (VerificationJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("jobs").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (VerificationJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "status", "started_at"),
		index.Fields("started_at"),
	}
}
