// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/halouxiaoyu/survey_backend/internal/repo/questionnaire"
	"github.com/halouxiaoyu/survey_backend/internal/repo/submission"
)

// Submission is the model entity for the Submission schema.
type Submission struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// FK → questionnaires.id
	QuestionnaireID uuid.UUID `json:"questionnaire_id,omitempty"`
	// SubmittedAt holds the value of the "submitted_at" field.
	SubmittedAt time.Time `json:"submitted_at,omitempty"`
	// TotalScore holds the value of the "total_score" field.
	TotalScore *float64 `json:"total_score,omitempty"`
	// AssessmentLevel holds the value of the "assessment_level" field.
	AssessmentLevel *string `json:"assessment_level,omitempty"`
	// AssessmentOpinion holds the value of the "assessment_opinion" field.
	AssessmentOpinion *string `json:"assessment_opinion,omitempty"`
	// GroupKey holds the value of the "group_key" field.
	GroupKey *string `json:"group_key,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubmissionQuery when eager-loading is set.
	Edges        SubmissionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SubmissionEdges holds the relations/edges for other nodes in the graph.
type SubmissionEdges struct {
	// Questionnaire holds the value of the questionnaire edge.
	Questionnaire *Questionnaire `json:"questionnaire,omitempty"`
	// Answers holds the value of the answers edge.
	Answers []*Answer `json:"answers,omitempty"`
	// DimensionScores holds the value of the dimension_scores edge.
	DimensionScores []*DimensionScore `json:"dimension_scores,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// QuestionnaireOrErr returns the Questionnaire value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubmissionEdges) QuestionnaireOrErr() (*Questionnaire, error) {
	if e.Questionnaire != nil {
		return e.Questionnaire, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: questionnaire.Label}
	}
	return nil, &NotLoadedError{edge: "questionnaire"}
}

// AnswersOrErr returns the Answers value or an error if the edge
// was not loaded in eager-loading.
func (e SubmissionEdges) AnswersOrErr() ([]*Answer, error) {
	if e.loadedTypes[1] {
		return e.Answers, nil
	}
	return nil, &NotLoadedError{edge: "answers"}
}

// DimensionScoresOrErr returns the DimensionScores value or an error if the edge
// was not loaded in eager-loading.
func (e SubmissionEdges) DimensionScoresOrErr() ([]*DimensionScore, error) {
	if e.loadedTypes[2] {
		return e.DimensionScores, nil
	}
	return nil, &NotLoadedError{edge: "dimension_scores"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Submission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case submission.FieldTotalScore:
			values[i] = new(sql.NullFloat64)
		case submission.FieldAssessmentLevel, submission.FieldAssessmentOpinion, submission.FieldGroupKey:
			values[i] = new(sql.NullString)
		case submission.FieldCreatedAt, submission.FieldDeletedAt, submission.FieldSubmittedAt:
			values[i] = new(sql.NullTime)
		case submission.FieldID, submission.FieldQuestionnaireID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Submission fields.
func (_m *Submission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case submission.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case submission.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case submission.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case submission.FieldQuestionnaireID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field questionnaire_id", values[i])
			} else if value != nil {
				_m.QuestionnaireID = *value
			}
		case submission.FieldSubmittedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_at", values[i])
			} else if value.Valid {
				_m.SubmittedAt = value.Time
			}
		case submission.FieldTotalScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_score", values[i])
			} else if value.Valid {
				_m.TotalScore = new(float64)
				*_m.TotalScore = value.Float64
			}
		case submission.FieldAssessmentLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_level", values[i])
			} else if value.Valid {
				_m.AssessmentLevel = new(string)
				*_m.AssessmentLevel = value.String
			}
		case submission.FieldAssessmentOpinion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_opinion", values[i])
			} else if value.Valid {
				_m.AssessmentOpinion = new(string)
				*_m.AssessmentOpinion = value.String
			}
		case submission.FieldGroupKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_key", values[i])
			} else if value.Valid {
				_m.GroupKey = new(string)
				*_m.GroupKey = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Submission.
// This includes values selected through modifiers, order, etc.
func (_m *Submission) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuestionnaire queries the "questionnaire" edge of the Submission entity.
func (_m *Submission) QueryQuestionnaire() *QuestionnaireQuery {
	return NewSubmissionClient(_m.config).QueryQuestionnaire(_m)
}

// QueryAnswers queries the "answers" edge of the Submission entity.
func (_m *Submission) QueryAnswers() *AnswerQuery {
	return NewSubmissionClient(_m.config).QueryAnswers(_m)
}

// QueryDimensionScores queries the "dimension_scores" edge of the Submission entity.
func (_m *Submission) QueryDimensionScores() *DimensionScoreQuery {
	return NewSubmissionClient(_m.config).QueryDimensionScores(_m)
}

// Update returns a builder for updating this Submission.
// Note that you need to call Submission.Unwrap() before calling this method if this Submission
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Submission) Update() *SubmissionUpdateOne {
	return NewSubmissionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Submission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Submission) Unwrap() *Submission {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Submission is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Submission) String() string {
	var builder strings.Builder
	builder.WriteString("Submission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("questionnaire_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionnaireID))
	builder.WriteString(", ")
	builder.WriteString("submitted_at=")
	builder.WriteString(_m.SubmittedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.TotalScore; v != nil {
		builder.WriteString("total_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AssessmentLevel; v != nil {
		builder.WriteString("assessment_level=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AssessmentOpinion; v != nil {
		builder.WriteString("assessment_opinion=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.GroupKey; v != nil {
		builder.WriteString("group_key=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Submissions is a parsable slice of Submission.
type Submissions []*Submission
