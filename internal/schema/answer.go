package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Answer is one question's response within a submission. Append-only.
type Answer struct {
	ent.Schema
}

func (Answer) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Answer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("submission_id", uuid.UUID{}).
			Comment("FK → submissions.id"),

		field.UUID("question_id", uuid.UUID{}).
			Comment("FK → questions.id"),

		field.UUID("option_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Set for single-choice answers only"),

		field.Float("value").
			Optional().
			Nillable().
			Comment("Valuated score contribution of this answer"),

		field.JSON("selected_option_ids", []uuid.UUID{}).
			Optional().
			Comment("Set for multiple-choice answers only"),

		field.Text("text_answer").
			Optional().
			Nillable().
			Comment("Free text, 'other' fill-in, or raw address payload"),
	}
}

func (Answer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("submission_id"),
		index.Fields("question_id"),
	}
}

func (Answer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("submission", Submission.Type).
			Ref("answers").
			Unique().
			Required().
			Field("submission_id"),

		edge.From("question", Question.Type).
			Ref("answers").
			Unique().
			Required().
			Field("question_id"),
	}
}
