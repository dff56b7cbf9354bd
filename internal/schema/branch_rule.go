package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// BranchRule routes a respondent who picked a given option to a follow-up
// questionnaire. At most one live rule per (question, option) pair.
type BranchRule struct {
	ent.Schema
}

func (BranchRule) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (BranchRule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("questionnaire_id", uuid.UUID{}).
			Comment("FK → questionnaires.id (the questionnaire the rule lives on)"),

		field.UUID("question_id", uuid.UUID{}).
			Comment("FK → questions.id"),

		field.UUID("option_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("NULL means the rule fires for any option of the question"),

		field.UUID("next_questionnaire_id", uuid.UUID{}).
			Comment("Target questionnaire the respondent is routed to"),
	}
}

func (BranchRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id", "option_id"),
		index.Fields("questionnaire_id"),
	}
}

func (BranchRule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("questionnaire", Questionnaire.Type).
			Ref("branch_rules").
			Unique().
			Required().
			Field("questionnaire_id"),

		edge.From("question", Question.Type).
			Ref("branch_rules").
			Unique().
			Required().
			Field("question_id"),
	}
}
