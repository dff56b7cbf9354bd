package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Questionnaire is the root aggregate: it owns dimensions, questions,
// assessment levels and submissions. Sub-questionnaires reference a parent
// and reuse the parent's dimension set.
type Questionnaire struct {
	ent.Schema
}

func (Questionnaire) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Questionnaire) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty().
			MaxLen(255),

		field.Text("description").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("draft", "published", "closed").
			Default("draft"),

		field.Bool("is_published").
			Default(false),

		field.Time("published_at").
			Optional().
			Nillable(),

		// The public capability token: respondents fill and read results
		// through this code, never through the numeric id.
		field.String("access_code").
			Optional().
			Nillable().
			Unique().
			MaxLen(32),

		field.UUID("parent_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Set on sub-questionnaires reached via branch rules"),
	}
}

func (Questionnaire) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("access_code"),
		index.Fields("parent_id"),
	}
}

func (Questionnaire) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("children", Questionnaire.Type).
			From("parent").
			Unique().
			Field("parent_id"),

		edge.To("dimensions", Dimension.Type),
		edge.To("questions", Question.Type),
		edge.To("submissions", Submission.Type),
		edge.To("assessment_levels", AssessmentLevel.Type),
		edge.To("branch_rules", BranchRule.Type),
	}
}
