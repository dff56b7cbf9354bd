// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/halouxiaoyu/survey_backend/internal/repo/assessmentlevel"
	"github.com/halouxiaoyu/survey_backend/internal/repo/questionnaire"
)

// AssessmentLevel is the model entity for the AssessmentLevel schema.
type AssessmentLevel struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// FK → questionnaires.id
	QuestionnaireID uuid.UUID `json:"questionnaire_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// MinScore holds the value of the "min_score" field.
	MinScore float64 `json:"min_score,omitempty"`
	// MaxScore holds the value of the "max_score" field.
	MaxScore float64 `json:"max_score,omitempty"`
	// Opinion holds the value of the "opinion" field.
	Opinion string `json:"opinion,omitempty"`
	// NULL = generic band applying to every group
	GroupKey *string `json:"group_key,omitempty"`
	// NULL = band on the submission total
	DimensionID *uuid.UUID `json:"dimension_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AssessmentLevelQuery when eager-loading is set.
	Edges        AssessmentLevelEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AssessmentLevelEdges holds the relations/edges for other nodes in the graph.
type AssessmentLevelEdges struct {
	// Questionnaire holds the value of the questionnaire edge.
	Questionnaire *Questionnaire `json:"questionnaire,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// QuestionnaireOrErr returns the Questionnaire value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AssessmentLevelEdges) QuestionnaireOrErr() (*Questionnaire, error) {
	if e.Questionnaire != nil {
		return e.Questionnaire, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: questionnaire.Label}
	}
	return nil, &NotLoadedError{edge: "questionnaire"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AssessmentLevel) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assessmentlevel.FieldDimensionID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case assessmentlevel.FieldMinScore, assessmentlevel.FieldMaxScore:
			values[i] = new(sql.NullFloat64)
		case assessmentlevel.FieldName, assessmentlevel.FieldOpinion, assessmentlevel.FieldGroupKey:
			values[i] = new(sql.NullString)
		case assessmentlevel.FieldCreatedAt, assessmentlevel.FieldUpdatedAt, assessmentlevel.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		case assessmentlevel.FieldID, assessmentlevel.FieldQuestionnaireID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AssessmentLevel fields.
func (_m *AssessmentLevel) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assessmentlevel.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case assessmentlevel.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case assessmentlevel.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case assessmentlevel.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case assessmentlevel.FieldQuestionnaireID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field questionnaire_id", values[i])
			} else if value != nil {
				_m.QuestionnaireID = *value
			}
		case assessmentlevel.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case assessmentlevel.FieldMinScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field min_score", values[i])
			} else if value.Valid {
				_m.MinScore = value.Float64
			}
		case assessmentlevel.FieldMaxScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field max_score", values[i])
			} else if value.Valid {
				_m.MaxScore = value.Float64
			}
		case assessmentlevel.FieldOpinion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field opinion", values[i])
			} else if value.Valid {
				_m.Opinion = value.String
			}
		case assessmentlevel.FieldGroupKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_key", values[i])
			} else if value.Valid {
				_m.GroupKey = new(string)
				*_m.GroupKey = value.String
			}
		case assessmentlevel.FieldDimensionID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field dimension_id", values[i])
			} else if value.Valid {
				_m.DimensionID = new(uuid.UUID)
				*_m.DimensionID = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AssessmentLevel.
// This includes values selected through modifiers, order, etc.
func (_m *AssessmentLevel) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuestionnaire queries the "questionnaire" edge of the AssessmentLevel entity.
func (_m *AssessmentLevel) QueryQuestionnaire() *QuestionnaireQuery {
	return NewAssessmentLevelClient(_m.config).QueryQuestionnaire(_m)
}

// Update returns a builder for updating this AssessmentLevel.
// Note that you need to call AssessmentLevel.Unwrap() before calling this method if this AssessmentLevel
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AssessmentLevel) Update() *AssessmentLevelUpdateOne {
	return NewAssessmentLevelClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AssessmentLevel entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AssessmentLevel) Unwrap() *AssessmentLevel {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: AssessmentLevel is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AssessmentLevel) String() string {
	var builder strings.Builder
	builder.WriteString("AssessmentLevel(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("questionnaire_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionnaireID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("min_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinScore))
	builder.WriteString(", ")
	builder.WriteString("max_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxScore))
	builder.WriteString(", ")
	builder.WriteString("opinion=")
	builder.WriteString(_m.Opinion)
	builder.WriteString(", ")
	if v := _m.GroupKey; v != nil {
		builder.WriteString("group_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DimensionID; v != nil {
		builder.WriteString("dimension_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// AssessmentLevels is a parsable slice of AssessmentLevel.
type AssessmentLevels []*AssessmentLevel
