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
	"github.com/halouxiaoyu/survey_backend/internal/repo/question"
	"github.com/halouxiaoyu/survey_backend/internal/repo/questionnaire"
)

// Question is the model entity for the Question schema.
type Question struct {
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
	// NULL for questions outside any scored dimension
	DimensionID *uuid.UUID `json:"dimension_id,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Type holds the value of the "type" field.
	Type question.Type `json:"type,omitempty"`
	// DisplayOrder holds the value of the "display_order" field.
	DisplayOrder int `json:"display_order,omitempty"`
	// IsGrouping holds the value of the "is_grouping" field.
	IsGrouping bool `json:"is_grouping,omitempty"`
	// Multiline holds the value of the "multiline" field.
	Multiline bool `json:"multiline,omitempty"`
	// InputRows holds the value of the "input_rows" field.
	InputRows int `json:"input_rows,omitempty"`
	// InputType holds the value of the "input_type" field.
	InputType *string `json:"input_type,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuestionQuery when eager-loading is set.
	Edges        QuestionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuestionEdges holds the relations/edges for other nodes in the graph.
type QuestionEdges struct {
	// Questionnaire holds the value of the questionnaire edge.
	Questionnaire *Questionnaire `json:"questionnaire,omitempty"`
	// Dimension holds the value of the dimension edge.
	Dimension *Dimension `json:"dimension,omitempty"`
	// Options holds the value of the options edge.
	Options []*SurveyOption `json:"options,omitempty"`
	// BranchRules holds the value of the branch_rules edge.
	BranchRules []*BranchRule `json:"branch_rules,omitempty"`
	// Answers holds the value of the answers edge.
	Answers []*Answer `json:"answers,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// QuestionnaireOrErr returns the Questionnaire value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionEdges) QuestionnaireOrErr() (*Questionnaire, error) {
	if e.Questionnaire != nil {
		return e.Questionnaire, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: questionnaire.Label}
	}
	return nil, &NotLoadedError{edge: "questionnaire"}
}

// DimensionOrErr returns the Dimension value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionEdges) DimensionOrErr() (*Dimension, error) {
	if e.Dimension != nil {
		return e.Dimension, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: dimension.Label}
	}
	return nil, &NotLoadedError{edge: "dimension"}
}

// OptionsOrErr returns the Options value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionEdges) OptionsOrErr() ([]*SurveyOption, error) {
	if e.loadedTypes[2] {
		return e.Options, nil
	}
	return nil, &NotLoadedError{edge: "options"}
}

// BranchRulesOrErr returns the BranchRules value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionEdges) BranchRulesOrErr() ([]*BranchRule, error) {
	if e.loadedTypes[3] {
		return e.BranchRules, nil
	}
	return nil, &NotLoadedError{edge: "branch_rules"}
}

// AnswersOrErr returns the Answers value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionEdges) AnswersOrErr() ([]*Answer, error) {
	if e.loadedTypes[4] {
		return e.Answers, nil
	}
	return nil, &NotLoadedError{edge: "answers"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Question) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case question.FieldDimensionID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case question.FieldIsGrouping, question.FieldMultiline:
			values[i] = new(sql.NullBool)
		case question.FieldDisplayOrder, question.FieldInputRows:
			values[i] = new(sql.NullInt64)
		case question.FieldText, question.FieldType, question.FieldInputType:
			values[i] = new(sql.NullString)
		case question.FieldCreatedAt, question.FieldUpdatedAt, question.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		case question.FieldID, question.FieldQuestionnaireID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Question fields.
func (_m *Question) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case question.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case question.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case question.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case question.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case question.FieldQuestionnaireID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field questionnaire_id", values[i])
			} else if value != nil {
				_m.QuestionnaireID = *value
			}
		case question.FieldDimensionID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field dimension_id", values[i])
			} else if value.Valid {
				_m.DimensionID = new(uuid.UUID)
				*_m.DimensionID = *value.S.(*uuid.UUID)
			}
		case question.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case question.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = question.Type(value.String)
			}
		case question.FieldDisplayOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field display_order", values[i])
			} else if value.Valid {
				_m.DisplayOrder = int(value.Int64)
			}
		case question.FieldIsGrouping:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_grouping", values[i])
			} else if value.Valid {
				_m.IsGrouping = value.Bool
			}
		case question.FieldMultiline:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field multiline", values[i])
			} else if value.Valid {
				_m.Multiline = value.Bool
			}
		case question.FieldInputRows:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_rows", values[i])
			} else if value.Valid {
				_m.InputRows = int(value.Int64)
			}
		case question.FieldInputType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_type", values[i])
			} else if value.Valid {
				_m.InputType = new(string)
				*_m.InputType = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Question.
// This includes values selected through modifiers, order, etc.
func (_m *Question) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuestionnaire queries the "questionnaire" edge of the Question entity.
func (_m *Question) QueryQuestionnaire() *QuestionnaireQuery {
	return NewQuestionClient(_m.config).QueryQuestionnaire(_m)
}

// QueryDimension queries the "dimension" edge of the Question entity.
func (_m *Question) QueryDimension() *DimensionQuery {
	return NewQuestionClient(_m.config).QueryDimension(_m)
}

// QueryOptions queries the "options" edge of the Question entity.
func (_m *Question) QueryOptions() *SurveyOptionQuery {
	return NewQuestionClient(_m.config).QueryOptions(_m)
}

// QueryBranchRules queries the "branch_rules" edge of the Question entity.
func (_m *Question) QueryBranchRules() *BranchRuleQuery {
	return NewQuestionClient(_m.config).QueryBranchRules(_m)
}

// QueryAnswers queries the "answers" edge of the Question entity.
func (_m *Question) QueryAnswers() *AnswerQuery {
	return NewQuestionClient(_m.config).QueryAnswers(_m)
}

// Update returns a builder for updating this Question.
// Note that you need to call Question.Unwrap() before calling this method if this Question
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Question) Update() *QuestionUpdateOne {
	return NewQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Question entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Question) Unwrap() *Question {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Question is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Question) String() string {
	var builder strings.Builder
	builder.WriteString("Question(")
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
	if v := _m.DimensionID; v != nil {
		builder.WriteString("dimension_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("display_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.DisplayOrder))
	builder.WriteString(", ")
	builder.WriteString("is_grouping=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsGrouping))
	builder.WriteString(", ")
	builder.WriteString("multiline=")
	builder.WriteString(fmt.Sprintf("%v", _m.Multiline))
	builder.WriteString(", ")
	builder.WriteString("input_rows=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputRows))
	builder.WriteString(", ")
	if v := _m.InputType; v != nil {
		builder.WriteString("input_type=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Questions is a parsable slice of Question.
type Questions []*Question
