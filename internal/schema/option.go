package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	entschema "entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// SurveyOption is named to avoid entc's predeclared "Option" identifier;
// the table stays "options".
type SurveyOption struct {
	ent.Schema
}

func (SurveyOption) Annotations() []entschema.Annotation {
	return []entschema.Annotation{
		entsql.Annotation{Table: "options"},
	}
}

func (SurveyOption) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (SurveyOption) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("question_id", uuid.UUID{}).
			Comment("FK → questions.id"),

		field.String("text").
			NotEmpty().
			MaxLen(200),

		field.Float("value").
			Optional().
			Nillable().
			Comment("NULL scores as 0"),

		// "Other" options carry a free-text fill-in alongside the choice.
		field.Bool("is_other").
			Default(false),
	}
}

func (SurveyOption) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
	}
}

func (SurveyOption) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("question", Question.Type).
			Ref("options").
			Unique().
			Required().
			Field("question_id"),
	}
}
