package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// AssessmentLevel is a named inclusive score band [min_score, max_score]
// with an opinion text. A band applies to one dimension (dimension_id set)
// or to the submission total (dimension_id NULL), and either to one
// respondent group (group_key set) or generically (group_key NULL).
type AssessmentLevel struct {
	ent.Schema
}

func (AssessmentLevel) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (AssessmentLevel) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("questionnaire_id", uuid.UUID{}).
			Comment("FK → questionnaires.id"),

		field.String("name").
			NotEmpty().
			MaxLen(50),

		field.Float("min_score"),

		field.Float("max_score"),

		field.Text("opinion").
			NotEmpty(),

		field.String("group_key").
			Optional().
			Nillable().
			MaxLen(100).
			Comment("NULL = generic band applying to every group"),

		field.UUID("dimension_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("NULL = band on the submission total"),
	}
}

func (AssessmentLevel) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("questionnaire_id"),
		index.Fields("questionnaire_id", "dimension_id", "group_key"),
	}
}

func (AssessmentLevel) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("questionnaire", Questionnaire.Type).
			Ref("assessment_levels").
			Unique().
			Required().
			Field("questionnaire_id"),
	}
}
