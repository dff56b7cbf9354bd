package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Dimension is a scored category within a questionnaire. The raw sum of
// its answers is multiplied by weight to get the dimension score.
type Dimension struct {
	ent.Schema
}

func (Dimension) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Dimension) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("questionnaire_id", uuid.UUID{}).
			Comment("FK → questionnaires.id"),

		field.String("name").
			NotEmpty().
			MaxLen(100),

		field.Float("weight").
			Default(1.0),

		// The reserved demographics dimension. Its answers never contribute
		// to dimension scores or the submission total; its questions feed
		// the group resolver instead.
		field.Bool("is_basic_info").
			Default(false),
	}
}

func (Dimension) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("questionnaire_id"),
		index.Fields("questionnaire_id", "is_basic_info"),
	}
}

func (Dimension) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("questionnaire", Questionnaire.Type).
			Ref("dimensions").
			Unique().
			Required().
			Field("questionnaire_id"),

		edge.To("questions", Question.Type),
	}
}
