// Code generated by ent, DO NOT EDIT.

package dimensionscore

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the dimensionscore type in the database.
	Label = "dimension_score"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldSubmissionID holds the string denoting the submission_id field in the database.
	FieldSubmissionID = "submission_id"
	// FieldDimensionID holds the string denoting the dimension_id field in the database.
	FieldDimensionID = "dimension_id"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldWeight holds the string denoting the weight field in the database.
	FieldWeight = "weight"
	// FieldAssessmentLevel holds the string denoting the assessment_level field in the database.
	FieldAssessmentLevel = "assessment_level"
	// FieldAssessmentOpinion holds the string denoting the assessment_opinion field in the database.
	FieldAssessmentOpinion = "assessment_opinion"
	// EdgeSubmission holds the string denoting the submission edge name in mutations.
	EdgeSubmission = "submission"
	// Table holds the table name of the dimensionscore in the database.
	Table = "dimension_scores"
	// SubmissionTable is the table that holds the submission relation/edge.
	SubmissionTable = "dimension_scores"
	// SubmissionInverseTable is the table name for the Submission entity.
	// It exists in this package in order to avoid circular dependency with the "submission" package.
	SubmissionInverseTable = "submissions"
	// SubmissionColumn is the table column denoting the submission relation/edge.
	SubmissionColumn = "submission_id"
)

// Columns holds all SQL columns for dimensionscore fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldSubmissionID,
	FieldDimensionID,
	FieldScore,
	FieldWeight,
	FieldAssessmentLevel,
	FieldAssessmentOpinion,
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
	// AssessmentLevelValidator is a validator for the "assessment_level" field. It is called by the builders before save.
	AssessmentLevelValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the DimensionScore queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySubmissionID orders the results by the submission_id field.
func BySubmissionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmissionID, opts...).ToFunc()
}

// ByDimensionID orders the results by the dimension_id field.
func ByDimensionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDimensionID, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByWeight orders the results by the weight field.
func ByWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeight, opts...).ToFunc()
}

// ByAssessmentLevel orders the results by the assessment_level field.
func ByAssessmentLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessmentLevel, opts...).ToFunc()
}

// ByAssessmentOpinion orders the results by the assessment_opinion field.
func ByAssessmentOpinion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessmentOpinion, opts...).ToFunc()
}

// BySubmissionField orders the results by submission field.
func BySubmissionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubmissionStep(), sql.OrderByField(field, opts...))
	}
}
func newSubmissionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubmissionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SubmissionTable, SubmissionColumn),
	)
}
