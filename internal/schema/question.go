package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Question struct {
	ent.Schema
}

func (Question) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("questionnaire_id", uuid.UUID{}).
			Comment("FK → questionnaires.id"),

		field.UUID("dimension_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("NULL for questions outside any scored dimension"),

		field.Text("text").
			NotEmpty(),

		field.Enum("type").
			Values("text", "single", "multiple", "area", "address"),

		field.Int("display_order").
			Default(0),

		// Marks the single-choice question whose chosen option determines
		// the respondent's group key. Authoring UI sets this explicitly;
		// question-text markers are only a fallback for legacy data.
		field.Bool("is_grouping").
			Default(false),

		// Presentation hints, never scored.
		field.Bool("multiline").
			Default(false),

		field.Int("input_rows").
			Default(1),

		field.String("input_type").
			Optional().
			Nillable().
			MaxLen(32),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("questionnaire_id"),
		index.Fields("dimension_id"),
	}
}

func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("questionnaire", Questionnaire.Type).
			Ref("questions").
			Unique().
			Required().
			Field("questionnaire_id"),

		edge.From("dimension", Dimension.Type).
			Ref("questions").
			Unique().
			Field("dimension_id"),

		edge.To("options", SurveyOption.Type),
		edge.To("branch_rules", BranchRule.Type),
		edge.To("answers", Answer.Type),
	}
}
