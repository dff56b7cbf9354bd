package questionnaire

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/halouxiaoyu/survey_backend/internal/repo"
	entans "github.com/halouxiaoyu/survey_backend/internal/repo/answer"
	entq "github.com/halouxiaoyu/survey_backend/internal/repo/question"
	entsub "github.com/halouxiaoyu/survey_backend/internal/repo/submission"
)

// ---------------------------------------------------------------------------
// Submission listing
// ---------------------------------------------------------------------------

// SubmissionFilter narrows the listing to submissions that answered a
// basic-info question a certain way: by option id for choice questions,
// by exact text for free-text ones.
type SubmissionFilter struct {
	QuestionID *uuid.UUID
	OptionID   *uuid.UUID
	TextValue  *string
}

type SubmissionSummary struct {
	ID              uuid.UUID `json:"id"`
	SubmittedAt     time.Time `json:"submitted_at"`
	TotalScore      *float64  `json:"total_score"`
	AssessmentLevel *string   `json:"assessment_level"`
	GroupKey        *string   `json:"group_key"`
}

func (s *service) ListSubmissions(ctx context.Context, questionnaireID uuid.UUID, filter SubmissionFilter) ([]SubmissionSummary, error) {
	if _, err := s.get(ctx, questionnaireID); err != nil {
		return nil, err
	}

	q := s.db.Submission.Query().
		Where(
			entsub.QuestionnaireID(questionnaireID),
			entsub.DeletedAtIsNil(),
		)

	if filter.QuestionID != nil {
		matching, err := s.matchingSubmissionIDs(ctx, filter)
		if err != nil {
			return nil, err
		}
		q = q.Where(entsub.IDIn(matching...))
	}

	subs, err := q.Order(entsub.ByID(sql.OrderDesc())).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	out := make([]SubmissionSummary, 0, len(subs))
	for _, sub := range subs {
		out = append(out, SubmissionSummary{
			ID:              sub.ID,
			SubmittedAt:     sub.SubmittedAt,
			TotalScore:      sub.TotalScore,
			AssessmentLevel: sub.AssessmentLevel,
			GroupKey:        sub.GroupKey,
		})
	}
	return out, nil
}

// matchingSubmissionIDs resolves the filter to the submissions that
// carry a matching answer.
func (s *service) matchingSubmissionIDs(ctx context.Context, filter SubmissionFilter) ([]uuid.UUID, error) {
	question, err := s.db.Question.Query().
		Where(entq.ID(*filter.QuestionID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("load filter question: %w", err)
	}

	aq := s.db.Answer.Query().
		Where(entans.QuestionID(question.ID))

	switch {
	case question.Type == entq.TypeText && filter.TextValue != nil:
		aq = aq.Where(entans.TextAnswer(*filter.TextValue))
	case filter.OptionID != nil:
		aq = aq.Where(entans.OptionID(*filter.OptionID))
	default:
		return nil, fmt.Errorf("%w: filter value is required", ErrTitleRequired)
	}

	answers, err := aq.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("filter answers: %w", err)
	}
	ids := make([]uuid.UUID, len(answers))
	for i, a := range answers {
		ids[i] = a.SubmissionID
	}
	return ids, nil
}
