// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/halouxiaoyu/survey_backend/internal/repo/branchrule"
	"github.com/halouxiaoyu/survey_backend/internal/repo/question"
	"github.com/halouxiaoyu/survey_backend/internal/repo/questionnaire"
)

// BranchRule is the model entity for the BranchRule schema.
type BranchRule struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// FK → questionnaires.id (the questionnaire the rule lives on)
	QuestionnaireID uuid.UUID `json:"questionnaire_id,omitempty"`
	// FK → questions.id
	QuestionID uuid.UUID `json:"question_id,omitempty"`
	// NULL means the rule fires for any option of the question
	OptionID *uuid.UUID `json:"option_id,omitempty"`
	// Target questionnaire the respondent is routed to
	NextQuestionnaireID uuid.UUID `json:"next_questionnaire_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BranchRuleQuery when eager-loading is set.
	Edges        BranchRuleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BranchRuleEdges holds the relations/edges for other nodes in the graph.
type BranchRuleEdges struct {
	// Questionnaire holds the value of the questionnaire edge.
	Questionnaire *Questionnaire `json:"questionnaire,omitempty"`
	// Question holds the value of the question edge.
	Question *Question `json:"question,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// QuestionnaireOrErr returns the Questionnaire value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BranchRuleEdges) QuestionnaireOrErr() (*Questionnaire, error) {
	if e.Questionnaire != nil {
		return e.Questionnaire, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: questionnaire.Label}
	}
	return nil, &NotLoadedError{edge: "questionnaire"}
}

// QuestionOrErr returns the Question value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BranchRuleEdges) QuestionOrErr() (*Question, error) {
	if e.Question != nil {
		return e.Question, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: question.Label}
	}
	return nil, &NotLoadedError{edge: "question"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BranchRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case branchrule.FieldOptionID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case branchrule.FieldCreatedAt, branchrule.FieldUpdatedAt, branchrule.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		case branchrule.FieldID, branchrule.FieldQuestionnaireID, branchrule.FieldQuestionID, branchrule.FieldNextQuestionnaireID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BranchRule fields.
func (_m *BranchRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case branchrule.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case branchrule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case branchrule.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case branchrule.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case branchrule.FieldQuestionnaireID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field questionnaire_id", values[i])
			} else if value != nil {
				_m.QuestionnaireID = *value
			}
		case branchrule.FieldQuestionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value != nil {
				_m.QuestionID = *value
			}
		case branchrule.FieldOptionID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field option_id", values[i])
			} else if value.Valid {
				_m.OptionID = new(uuid.UUID)
				*_m.OptionID = *value.S.(*uuid.UUID)
			}
		case branchrule.FieldNextQuestionnaireID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field next_questionnaire_id", values[i])
			} else if value != nil {
				_m.NextQuestionnaireID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BranchRule.
// This includes values selected through modifiers, order, etc.
func (_m *BranchRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuestionnaire queries the "questionnaire" edge of the BranchRule entity.
func (_m *BranchRule) QueryQuestionnaire() *QuestionnaireQuery {
	return NewBranchRuleClient(_m.config).QueryQuestionnaire(_m)
}

// QueryQuestion queries the "question" edge of the BranchRule entity.
func (_m *BranchRule) QueryQuestion() *QuestionQuery {
	return NewBranchRuleClient(_m.config).QueryQuestion(_m)
}

// Update returns a builder for updating this BranchRule.
// Note that you need to call BranchRule.Unwrap() before calling this method if this BranchRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BranchRule) Update() *BranchRuleUpdateOne {
	return NewBranchRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BranchRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BranchRule) Unwrap() *BranchRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: BranchRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BranchRule) String() string {
	var builder strings.Builder
	builder.WriteString("BranchRule(")
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
	builder.WriteString("question_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionID))
	builder.WriteString(", ")
	if v := _m.OptionID; v != nil {
		builder.WriteString("option_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("next_questionnaire_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.NextQuestionnaireID))
	builder.WriteByte(')')
	return builder.String()
}

// BranchRules is a parsable slice of BranchRule.
type BranchRules []*BranchRule
