package branch

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/halouxiaoyu/survey_backend/internal/repo"
	entbr "github.com/halouxiaoyu/survey_backend/internal/repo/branchrule"
)

var ErrInvalidArgs = errors.New("question id and option id are required")

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

// Resolution is the routing target for a chosen option. AccessCode is nil
// when the target questionnaire is gone or was never published; the caller
// treats that as "no valid next step".
type Resolution struct {
	NextQuestionnaireID uuid.UUID `json:"next_questionnaire_id"`
	AccessCode          *string   `json:"next_questionnaire_access_code"`
	Title               string    `json:"next_questionnaire_title,omitempty"`
}

type Service interface {
	// Resolve returns the follow-up questionnaire for (question, option),
	// or nil when no branch rule matches.
	Resolve(ctx context.Context, questionID, optionID uuid.UUID) (*Resolution, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type service struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &service{db: db}
}

func (s *service) Resolve(ctx context.Context, questionID, optionID uuid.UUID) (*Resolution, error) {
	if questionID == uuid.Nil || optionID == uuid.Nil {
		return nil, ErrInvalidArgs
	}

	// A rule without an option id fires for any chosen option; a rule
	// pinned to the option wins over it.
	rule, err := s.db.BranchRule.Query().
		Where(
			entbr.QuestionID(questionID),
			entbr.Or(
				entbr.OptionID(optionID),
				entbr.OptionIDIsNil(),
			),
			entbr.DeletedAtIsNil(),
		).
		Order(entbr.ByOptionID(), entbr.ByID()).
		First(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve branch rule: %w", err)
	}

	res := &Resolution{NextQuestionnaireID: rule.NextQuestionnaireID}

	next, err := s.db.Questionnaire.Get(ctx, rule.NextQuestionnaireID)
	if err != nil {
		if repo.IsNotFound(err) {
			return res, nil
		}
		return nil, fmt.Errorf("load next questionnaire: %w", err)
	}
	if next.DeletedAt == nil && next.IsPublished {
		res.AccessCode = next.AccessCode
		res.Title = next.Title
	}
	return res, nil
}
