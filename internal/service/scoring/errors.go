package scoring

import "errors"

var (
	// ErrMissingField is returned when an answer omits its question id.
	ErrMissingField = errors.New("answer is missing its question id")

	// ErrEmptyAnswer is returned when an answer carries no option, no
	// option list and no text.
	ErrEmptyAnswer = errors.New("answer has no content")

	// ErrInvalidOption is returned when a referenced option id does not
	// resolve to a live option of the answered question.
	ErrInvalidOption = errors.New("selected option does not exist")

	// ErrSubmissionFailed wraps any persistence failure inside the
	// scoring transaction. The transaction is rolled back in full.
	ErrSubmissionFailed = errors.New("submission could not be scored")

	// ErrNotFound covers both an unknown access code (or an unpublished
	// questionnaire) and an unknown submission id.
	ErrNotFound = errors.New("questionnaire or submission not found")

	// ErrOverlappingBand rejects an assessment band whose score range
	// intersects an existing band with the same dimension and group scope.
	ErrOverlappingBand = errors.New("assessment band overlaps an existing band for the same scope")
)
