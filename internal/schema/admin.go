package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Admin is a back-office account that manages questionnaires and reads
// collected results. Respondents never have accounts.
type Admin struct {
	ent.Schema
}

func (Admin) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Admin) Fields() []ent.Field {
	return []ent.Field{
		field.String("username").
			Unique().
			NotEmpty().
			MaxLen(150),

		field.String("password_hash").
			NotEmpty().
			Sensitive().
			Comment("Argon2id PHC string"),

		field.Enum("role").
			Values("admin", "editor", "viewer").
			Default("editor").
			Comment("Mirrored into Casbin grouping policies"),

		field.Bool("is_active").
			Default(true),

		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}

func (Admin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username"),
	}
}

func (Admin) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sessions", AdminSession.Type),
	}
}
