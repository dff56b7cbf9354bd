package scoring

import "github.com/google/uuid"

// QuestionType mirrors the question type enum of the schema.
type QuestionType string

const (
	TypeText     QuestionType = "text"
	TypeSingle   QuestionType = "single"
	TypeMultiple QuestionType = "multiple"
	TypeArea     QuestionType = "area"
	TypeAddress  QuestionType = "address"
)

// RawAnswer is one respondent answer exactly as submitted. Single-choice
// answers set OptionID, multiple-choice answers set OptionIDs (or the
// comma-delimited OptionList fallback some clients send), text-bearing
// answers set Text.
type RawAnswer struct {
	QuestionID uuid.UUID   `json:"question_id"`
	OptionID   *uuid.UUID  `json:"option_id,omitempty"`
	OptionIDs  []uuid.UUID `json:"option_ids,omitempty"`
	OptionList string      `json:"option_list,omitempty"`
	Text       string      `json:"text,omitempty"`
}

// Question, Option, Dimension and Level are scoring-time snapshots of the
// persisted entities. The service fills them from live rows; tests build
// them directly.

type Question struct {
	ID          uuid.UUID
	DimensionID *uuid.UUID
	Text        string
	Type        QuestionType
	IsGrouping  bool
}

type Option struct {
	ID         uuid.UUID
	QuestionID uuid.UUID
	Text       string
	Value      *float64
	IsOther    bool
}

type Dimension struct {
	ID          uuid.UUID
	Name        string
	Weight      float64
	IsBasicInfo bool
}

// Level is one assessment band. A nil DimensionID scopes the band to the
// submission total; a nil GroupKey makes it the generic fallback for its
// scope. Min and max are both inclusive.
type Level struct {
	ID          uuid.UUID
	Name        string
	MinScore    float64
	MaxScore    float64
	Opinion     string
	GroupKey    *string
	DimensionID *uuid.UUID
}

// Valuated is a validated answer ready for aggregation and persistence.
// Terminal marks address answers, which store the raw payload and never
// enter the valuation or level pipeline.
type Valuated struct {
	QuestionID  uuid.UUID
	DimensionID *uuid.UUID
	OptionID    *uuid.UUID
	SelectedIDs []uuid.UUID
	Value       float64
	Text        *string
	Terminal    bool
}
