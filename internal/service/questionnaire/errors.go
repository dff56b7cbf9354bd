package questionnaire

import "errors"

var (
	ErrNotFound          = errors.New("questionnaire not found")
	ErrDimensionNotFound = errors.New("dimension not found")
	ErrQuestionNotFound  = errors.New("question not found")
	ErrLevelNotFound     = errors.New("assessment level not found")
	ErrTitleRequired     = errors.New("title and description are required")
	ErrInvalidWeight     = errors.New("weight must be a number between 0 and 1000")
	ErrQuestionHasLevels = errors.New("question still has assessment levels configured against its group keys")
	ErrBasicInfoReserved = errors.New("the basic info dimension is managed automatically and cannot be edited")
)
