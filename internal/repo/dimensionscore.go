// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/halouxiaoyu/survey_backend/internal/repo/dimensionscore"
	"github.com/halouxiaoyu/survey_backend/internal/repo/submission"
)

// DimensionScore is the model entity for the DimensionScore schema.
type DimensionScore struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → submissions.id
	SubmissionID uuid.UUID `json:"submission_id,omitempty"`
	// FK → dimensions.id
	DimensionID uuid.UUID `json:"dimension_id,omitempty"`
	// Raw answer sum multiplied by the weight below
	Score float64 `json:"score,omitempty"`
	// Dimension weight at scoring time
	Weight float64 `json:"weight,omitempty"`
	// AssessmentLevel holds the value of the "assessment_level" field.
	AssessmentLevel *string `json:"assessment_level,omitempty"`
	// AssessmentOpinion holds the value of the "assessment_opinion" field.
	AssessmentOpinion *string `json:"assessment_opinion,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DimensionScoreQuery when eager-loading is set.
	Edges        DimensionScoreEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DimensionScoreEdges holds the relations/edges for other nodes in the graph.
type DimensionScoreEdges struct {
	// Submission holds the value of the submission edge.
	Submission *Submission `json:"submission,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SubmissionOrErr returns the Submission value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DimensionScoreEdges) SubmissionOrErr() (*Submission, error) {
	if e.Submission != nil {
		return e.Submission, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: submission.Label}
	}
	return nil, &NotLoadedError{edge: "submission"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DimensionScore) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dimensionscore.FieldScore, dimensionscore.FieldWeight:
			values[i] = new(sql.NullFloat64)
		case dimensionscore.FieldAssessmentLevel, dimensionscore.FieldAssessmentOpinion:
			values[i] = new(sql.NullString)
		case dimensionscore.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case dimensionscore.FieldID, dimensionscore.FieldSubmissionID, dimensionscore.FieldDimensionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DimensionScore fields.
func (_m *DimensionScore) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dimensionscore.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case dimensionscore.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case dimensionscore.FieldSubmissionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field submission_id", values[i])
			} else if value != nil {
				_m.SubmissionID = *value
			}
		case dimensionscore.FieldDimensionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field dimension_id", values[i])
			} else if value != nil {
				_m.DimensionID = *value
			}
		case dimensionscore.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case dimensionscore.FieldWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weight", values[i])
			} else if value.Valid {
				_m.Weight = value.Float64
			}
		case dimensionscore.FieldAssessmentLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_level", values[i])
			} else if value.Valid {
				_m.AssessmentLevel = new(string)
				*_m.AssessmentLevel = value.String
			}
		case dimensionscore.FieldAssessmentOpinion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_opinion", values[i])
			} else if value.Valid {
				_m.AssessmentOpinion = new(string)
				*_m.AssessmentOpinion = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DimensionScore.
// This includes values selected through modifiers, order, etc.
func (_m *DimensionScore) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubmission queries the "submission" edge of the DimensionScore entity.
func (_m *DimensionScore) QuerySubmission() *SubmissionQuery {
	return NewDimensionScoreClient(_m.config).QuerySubmission(_m)
}

// Update returns a builder for updating this DimensionScore.
// Note that you need to call DimensionScore.Unwrap() before calling this method if this DimensionScore
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DimensionScore) Update() *DimensionScoreUpdateOne {
	return NewDimensionScoreClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DimensionScore entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DimensionScore) Unwrap() *DimensionScore {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: DimensionScore is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DimensionScore) String() string {
	var builder strings.Builder
	builder.WriteString("DimensionScore(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("submission_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubmissionID))
	builder.WriteString(", ")
	builder.WriteString("dimension_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DimensionID))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weight))
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
	builder.WriteByte(')')
	return builder.String()
}

// DimensionScores is a parsable slice of DimensionScore.
type DimensionScores []*DimensionScore
