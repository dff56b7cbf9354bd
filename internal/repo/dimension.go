// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/halouxiaoyu/survey_backend/internal/repo/dimension"
	"github.com/halouxiaoyu/survey_backend/internal/repo/questionnaire"
)

// Dimension is the model entity for the Dimension schema.
type Dimension struct {
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
	// Weight holds the value of the "weight" field.
	Weight float64 `json:"weight,omitempty"`
	// IsBasicInfo holds the value of the "is_basic_info" field.
	IsBasicInfo bool `json:"is_basic_info,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DimensionQuery when eager-loading is set.
	Edges        DimensionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DimensionEdges holds the relations/edges for other nodes in the graph.
type DimensionEdges struct {
	// Questionnaire holds the value of the questionnaire edge.
	Questionnaire *Questionnaire `json:"questionnaire,omitempty"`
	// Questions holds the value of the questions edge.
	Questions []*Question `json:"questions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// QuestionnaireOrErr returns the Questionnaire value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DimensionEdges) QuestionnaireOrErr() (*Questionnaire, error) {
	if e.Questionnaire != nil {
		return e.Questionnaire, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: questionnaire.Label}
	}
	return nil, &NotLoadedError{edge: "questionnaire"}
}

// QuestionsOrErr returns the Questions value or an error if the edge
// was not loaded in eager-loading.
func (e DimensionEdges) QuestionsOrErr() ([]*Question, error) {
	if e.loadedTypes[1] {
		return e.Questions, nil
	}
	return nil, &NotLoadedError{edge: "questions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Dimension) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dimension.FieldIsBasicInfo:
			values[i] = new(sql.NullBool)
		case dimension.FieldWeight:
			values[i] = new(sql.NullFloat64)
		case dimension.FieldName:
			values[i] = new(sql.NullString)
		case dimension.FieldCreatedAt, dimension.FieldUpdatedAt, dimension.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		case dimension.FieldID, dimension.FieldQuestionnaireID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Dimension fields.
func (_m *Dimension) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dimension.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case dimension.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case dimension.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case dimension.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case dimension.FieldQuestionnaireID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field questionnaire_id", values[i])
			} else if value != nil {
				_m.QuestionnaireID = *value
			}
		case dimension.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case dimension.FieldWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weight", values[i])
			} else if value.Valid {
				_m.Weight = value.Float64
			}
		case dimension.FieldIsBasicInfo:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_basic_info", values[i])
			} else if value.Valid {
				_m.IsBasicInfo = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Dimension.
// This includes values selected through modifiers, order, etc.
func (_m *Dimension) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuestionnaire queries the "questionnaire" edge of the Dimension entity.
func (_m *Dimension) QueryQuestionnaire() *QuestionnaireQuery {
	return NewDimensionClient(_m.config).QueryQuestionnaire(_m)
}

// QueryQuestions queries the "questions" edge of the Dimension entity.
func (_m *Dimension) QueryQuestions() *QuestionQuery {
	return NewDimensionClient(_m.config).QueryQuestions(_m)
}

// Update returns a builder for updating this Dimension.
// Note that you need to call Dimension.Unwrap() before calling this method if this Dimension
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Dimension) Update() *DimensionUpdateOne {
	return NewDimensionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Dimension entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Dimension) Unwrap() *Dimension {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Dimension is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Dimension) String() string {
	var builder strings.Builder
	builder.WriteString("Dimension(")
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
	builder.WriteString("weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weight))
	builder.WriteString(", ")
	builder.WriteString("is_basic_info=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsBasicInfo))
	builder.WriteByte(')')
	return builder.String()
}

// Dimensions is a parsable slice of Dimension.
type Dimensions []*Dimension
