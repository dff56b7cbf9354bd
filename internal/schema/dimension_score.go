package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// DimensionScore is the weighted score of one dimension for one
// submission, with the weight snapshotted at scoring time so later weight
// edits never rewrite history. Append-only.
type DimensionScore struct {
	ent.Schema
}

func (DimensionScore) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (DimensionScore) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("submission_id", uuid.UUID{}).
			Comment("FK → submissions.id"),

		field.UUID("dimension_id", uuid.UUID{}).
			Comment("FK → dimensions.id"),

		field.Float("score").
			Comment("Raw answer sum multiplied by the weight below"),

		field.Float("weight").
			Comment("Dimension weight at scoring time"),

		field.String("assessment_level").
			Optional().
			Nillable().
			MaxLen(50),

		field.Text("assessment_opinion").
			Optional().
			Nillable(),
	}
}

func (DimensionScore) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("submission_id"),
		index.Fields("submission_id", "dimension_id").
			Unique(),
	}
}

func (DimensionScore) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("submission", Submission.Type).
			Ref("dimension_scores").
			Unique().
			Required().
			Field("submission_id"),
	}
}
