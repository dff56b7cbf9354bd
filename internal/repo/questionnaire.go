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
)

// Questionnaire is the model entity for the Questionnaire schema.
type Questionnaire struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Status holds the value of the "status" field.
	Status questionnaire.Status `json:"status,omitempty"`
	// IsPublished holds the value of the "is_published" field.
	IsPublished bool `json:"is_published,omitempty"`
	// PublishedAt holds the value of the "published_at" field.
	PublishedAt *time.Time `json:"published_at,omitempty"`
	// AccessCode holds the value of the "access_code" field.
	AccessCode *string `json:"access_code,omitempty"`
	// Set on sub-questionnaires reached via branch rules
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuestionnaireQuery when eager-loading is set.
	Edges        QuestionnaireEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuestionnaireEdges holds the relations/edges for other nodes in the graph.
type QuestionnaireEdges struct {
	// Parent holds the value of the parent edge.
	Parent *Questionnaire `json:"parent,omitempty"`
	// Children holds the value of the children edge.
	Children []*Questionnaire `json:"children,omitempty"`
	// Dimensions holds the value of the dimensions edge.
	Dimensions []*Dimension `json:"dimensions,omitempty"`
	// Questions holds the value of the questions edge.
	Questions []*Question `json:"questions,omitempty"`
	// Submissions holds the value of the submissions edge.
	Submissions []*Submission `json:"submissions,omitempty"`
	// AssessmentLevels holds the value of the assessment_levels edge.
	AssessmentLevels []*AssessmentLevel `json:"assessment_levels,omitempty"`
	// BranchRules holds the value of the branch_rules edge.
	BranchRules []*BranchRule `json:"branch_rules,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [7]bool
}

// ParentOrErr returns the Parent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionnaireEdges) ParentOrErr() (*Questionnaire, error) {
	if e.Parent != nil {
		return e.Parent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: questionnaire.Label}
	}
	return nil, &NotLoadedError{edge: "parent"}
}

// ChildrenOrErr returns the Children value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionnaireEdges) ChildrenOrErr() ([]*Questionnaire, error) {
	if e.loadedTypes[1] {
		return e.Children, nil
	}
	return nil, &NotLoadedError{edge: "children"}
}

// DimensionsOrErr returns the Dimensions value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionnaireEdges) DimensionsOrErr() ([]*Dimension, error) {
	if e.loadedTypes[2] {
		return e.Dimensions, nil
	}
	return nil, &NotLoadedError{edge: "dimensions"}
}

// QuestionsOrErr returns the Questions value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionnaireEdges) QuestionsOrErr() ([]*Question, error) {
	if e.loadedTypes[3] {
		return e.Questions, nil
	}
	return nil, &NotLoadedError{edge: "questions"}
}

// SubmissionsOrErr returns the Submissions value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionnaireEdges) SubmissionsOrErr() ([]*Submission, error) {
	if e.loadedTypes[4] {
		return e.Submissions, nil
	}
	return nil, &NotLoadedError{edge: "submissions"}
}

// AssessmentLevelsOrErr returns the AssessmentLevels value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionnaireEdges) AssessmentLevelsOrErr() ([]*AssessmentLevel, error) {
	if e.loadedTypes[5] {
		return e.AssessmentLevels, nil
	}
	return nil, &NotLoadedError{edge: "assessment_levels"}
}

// BranchRulesOrErr returns the BranchRules value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionnaireEdges) BranchRulesOrErr() ([]*BranchRule, error) {
	if e.loadedTypes[6] {
		return e.BranchRules, nil
	}
	return nil, &NotLoadedError{edge: "branch_rules"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Questionnaire) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case questionnaire.FieldParentID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case questionnaire.FieldIsPublished:
			values[i] = new(sql.NullBool)
		case questionnaire.FieldTitle, questionnaire.FieldDescription, questionnaire.FieldStatus, questionnaire.FieldAccessCode:
			values[i] = new(sql.NullString)
		case questionnaire.FieldCreatedAt, questionnaire.FieldUpdatedAt, questionnaire.FieldDeletedAt, questionnaire.FieldPublishedAt:
			values[i] = new(sql.NullTime)
		case questionnaire.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Questionnaire fields.
func (_m *Questionnaire) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case questionnaire.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case questionnaire.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case questionnaire.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case questionnaire.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case questionnaire.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case questionnaire.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case questionnaire.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = questionnaire.Status(value.String)
			}
		case questionnaire.FieldIsPublished:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_published", values[i])
			} else if value.Valid {
				_m.IsPublished = value.Bool
			}
		case questionnaire.FieldPublishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field published_at", values[i])
			} else if value.Valid {
				_m.PublishedAt = new(time.Time)
				*_m.PublishedAt = value.Time
			}
		case questionnaire.FieldAccessCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field access_code", values[i])
			} else if value.Valid {
				_m.AccessCode = new(string)
				*_m.AccessCode = value.String
			}
		case questionnaire.FieldParentID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value.Valid {
				_m.ParentID = new(uuid.UUID)
				*_m.ParentID = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Questionnaire.
// This includes values selected through modifiers, order, etc.
func (_m *Questionnaire) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryParent queries the "parent" edge of the Questionnaire entity.
func (_m *Questionnaire) QueryParent() *QuestionnaireQuery {
	return NewQuestionnaireClient(_m.config).QueryParent(_m)
}

// QueryChildren queries the "children" edge of the Questionnaire entity.
func (_m *Questionnaire) QueryChildren() *QuestionnaireQuery {
	return NewQuestionnaireClient(_m.config).QueryChildren(_m)
}

// QueryDimensions queries the "dimensions" edge of the Questionnaire entity.
func (_m *Questionnaire) QueryDimensions() *DimensionQuery {
	return NewQuestionnaireClient(_m.config).QueryDimensions(_m)
}

// QueryQuestions queries the "questions" edge of the Questionnaire entity.
func (_m *Questionnaire) QueryQuestions() *QuestionQuery {
	return NewQuestionnaireClient(_m.config).QueryQuestions(_m)
}

// QuerySubmissions queries the "submissions" edge of the Questionnaire entity.
func (_m *Questionnaire) QuerySubmissions() *SubmissionQuery {
	return NewQuestionnaireClient(_m.config).QuerySubmissions(_m)
}

// QueryAssessmentLevels queries the "assessment_levels" edge of the Questionnaire entity.
func (_m *Questionnaire) QueryAssessmentLevels() *AssessmentLevelQuery {
	return NewQuestionnaireClient(_m.config).QueryAssessmentLevels(_m)
}

// QueryBranchRules queries the "branch_rules" edge of the Questionnaire entity.
func (_m *Questionnaire) QueryBranchRules() *BranchRuleQuery {
	return NewQuestionnaireClient(_m.config).QueryBranchRules(_m)
}

// Update returns a builder for updating this Questionnaire.
// Note that you need to call Questionnaire.Unwrap() before calling this method if this Questionnaire
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Questionnaire) Update() *QuestionnaireUpdateOne {
	return NewQuestionnaireClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Questionnaire entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Questionnaire) Unwrap() *Questionnaire {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Questionnaire is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Questionnaire) String() string {
	var builder strings.Builder
	builder.WriteString("Questionnaire(")
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
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("is_published=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPublished))
	builder.WriteString(", ")
	if v := _m.PublishedAt; v != nil {
		builder.WriteString("published_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.AccessCode; v != nil {
		builder.WriteString("access_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ParentID; v != nil {
		builder.WriteString("parent_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Questionnaires is a parsable slice of Questionnaire.
type Questionnaires []*Questionnaire
