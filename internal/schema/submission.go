package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Submission is one respondent's completed fill of a questionnaire.
// It is written exactly once, fully scored, inside a single transaction;
// the only mutation afterwards is soft deletion.
type Submission struct {
	ent.Schema
}

func (Submission) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
		SoftDeleteMixin{},
	}
}

func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("questionnaire_id", uuid.UUID{}).
			Comment("FK → questionnaires.id"),

		field.Time("submitted_at").
			Default(time.Now).
			Immutable(),

		field.Float("total_score").
			Optional().
			Nillable(),

		field.String("assessment_level").
			Optional().
			Nillable().
			MaxLen(50),

		field.Text("assessment_opinion").
			Optional().
			Nillable(),

		field.String("group_key").
			Optional().
			Nillable().
			MaxLen(100),
	}
}

func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("questionnaire_id"),
		index.Fields("questionnaire_id", "submitted_at"),
	}
}

func (Submission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("questionnaire", Questionnaire.Type).
			Ref("submissions").
			Unique().
			Required().
			Field("questionnaire_id"),

		edge.To("answers", Answer.Type),
		edge.To("dimension_scores", DimensionScore.Type),
	}
}
