// Code generated by ent, DO NOT EDIT.

package assessmentlevel

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the assessmentlevel type in the database.
	Label = "assessment_level"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldQuestionnaireID holds the string denoting the questionnaire_id field in the database.
	FieldQuestionnaireID = "questionnaire_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldMinScore holds the string denoting the min_score field in the database.
	FieldMinScore = "min_score"
	// FieldMaxScore holds the string denoting the max_score field in the database.
	FieldMaxScore = "max_score"
	// FieldOpinion holds the string denoting the opinion field in the database.
	FieldOpinion = "opinion"
	// FieldGroupKey holds the string denoting the group_key field in the database.
	FieldGroupKey = "group_key"
	// FieldDimensionID holds the string denoting the dimension_id field in the database.
	FieldDimensionID = "dimension_id"
	// EdgeQuestionnaire holds the string denoting the questionnaire edge name in mutations.
	EdgeQuestionnaire = "questionnaire"
	// Table holds the table name of the assessmentlevel in the database.
	Table = "assessment_levels"
	// QuestionnaireTable is the table that holds the questionnaire relation/edge.
	QuestionnaireTable = "assessment_levels"
	// QuestionnaireInverseTable is the table name for the Questionnaire entity.
	// It exists in this package in order to avoid circular dependency with the "questionnaire" package.
	QuestionnaireInverseTable = "questionnaires"
	// QuestionnaireColumn is the table column denoting the questionnaire relation/edge.
	QuestionnaireColumn = "questionnaire_id"
)

// Columns holds all SQL columns for assessmentlevel fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldQuestionnaireID,
	FieldName,
	FieldMinScore,
	FieldMaxScore,
	FieldOpinion,
	FieldGroupKey,
	FieldDimensionID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// OpinionValidator is a validator for the "opinion" field. It is called by the builders before save.
	OpinionValidator func(string) error
	// GroupKeyValidator is a validator for the "group_key" field. It is called by the builders before save.
	GroupKeyValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the AssessmentLevel queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByQuestionnaireID orders the results by the questionnaire_id field.
func ByQuestionnaireID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionnaireID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByMinScore orders the results by the min_score field.
func ByMinScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinScore, opts...).ToFunc()
}

// ByMaxScore orders the results by the max_score field.
func ByMaxScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxScore, opts...).ToFunc()
}

// ByOpinion orders the results by the opinion field.
func ByOpinion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpinion, opts...).ToFunc()
}

// ByGroupKey orders the results by the group_key field.
func ByGroupKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupKey, opts...).ToFunc()
}

// ByDimensionID orders the results by the dimension_id field.
func ByDimensionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDimensionID, opts...).ToFunc()
}

// ByQuestionnaireField orders the results by questionnaire field.
func ByQuestionnaireField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuestionnaireStep(), sql.OrderByField(field, opts...))
	}
}
func newQuestionnaireStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuestionnaireInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, QuestionnaireTable, QuestionnaireColumn),
	)
}
