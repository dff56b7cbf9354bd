package questionnaire

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/halouxiaoyu/survey_backend/internal/repo"
	entlvl "github.com/halouxiaoyu/survey_backend/internal/repo/assessmentlevel"
	entbr "github.com/halouxiaoyu/survey_backend/internal/repo/branchrule"
	entopt "github.com/halouxiaoyu/survey_backend/internal/repo/surveyoption"
	entq "github.com/halouxiaoyu/survey_backend/internal/repo/question"
)

// ---------------------------------------------------------------------------
// Question management
// ---------------------------------------------------------------------------

type OptionInput struct {
	Text    string
	Value   *float64
	IsOther bool
}

// BranchRuleInput references its option by index into the Options slice
// of the same request, since real option ids do not exist until the
// options are saved.
type BranchRuleInput struct {
	OptionIndex         int
	NextQuestionnaireID uuid.UUID
}

type QuestionRequest struct {
	Text        string
	Type        string
	DimensionID *uuid.UUID
	IsGrouping  bool
	Multiline   bool
	InputRows   int
	InputType   *string
	Options     []OptionInput
	BranchRules []BranchRuleInput
}

type ReorderItem struct {
	ID    uuid.UUID `json:"id"`
	Order int       `json:"order"`
}

func (s *service) AddQuestion(ctx context.Context, questionnaireID uuid.UUID, req QuestionRequest) (q *repo.Question, err error) {
	if req.Text == "" || req.Type == "" {
		return nil, fmt.Errorf("%w: question text and type are required", ErrTitleRequired)
	}
	if _, err = s.get(ctx, questionnaireID); err != nil {
		return nil, err
	}

	nextOrder, err := s.nextDisplayOrder(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	q, err = tx.Question.Create().
		SetQuestionnaireID(questionnaireID).
		SetNillableDimensionID(req.DimensionID).
		SetText(req.Text).
		SetType(entq.Type(req.Type)).
		SetDisplayOrder(nextOrder).
		SetIsGrouping(req.IsGrouping).
		SetMultiline(req.Multiline).
		SetInputRows(normalizeRows(req.InputRows)).
		SetNillableInputType(req.InputType).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}

	if err = s.createOptionsAndRules(ctx, tx, questionnaireID, q.ID, req); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.invalidateFillByID(ctx, questionnaireID)
	return q, nil
}

func (s *service) UpdateQuestion(ctx context.Context, questionnaireID, questionID uuid.UUID, req QuestionRequest) (err error) {
	if req.Text == "" || req.Type == "" {
		return fmt.Errorf("%w: question text and type are required", ErrTitleRequired)
	}
	q, err := s.getQuestion(ctx, questionnaireID, questionID)
	if err != nil {
		return err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	upd := tx.Question.UpdateOne(q).
		SetText(req.Text).
		SetType(entq.Type(req.Type)).
		SetIsGrouping(req.IsGrouping).
		SetMultiline(req.Multiline).
		SetInputRows(normalizeRows(req.InputRows)).
		SetNillableInputType(req.InputType)
	if req.DimensionID != nil {
		upd = upd.SetDimensionID(*req.DimensionID)
	} else {
		upd = upd.ClearDimensionID()
	}
	if err = upd.Exec(ctx); err != nil {
		return fmt.Errorf("update question: %w", err)
	}

	// Options and rules are replaced wholesale: the old rows are soft
	// deleted so existing answers keep resolving their option text.
	now := time.Now()
	_, err = tx.SurveyOption.Update().
		Where(entopt.QuestionID(questionID), entopt.DeletedAtIsNil()).
		SetDeletedAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("retire options: %w", err)
	}
	_, err = tx.BranchRule.Update().
		Where(entbr.QuestionID(questionID), entbr.DeletedAtIsNil()).
		SetDeletedAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("retire branch rules: %w", err)
	}

	if err = s.createOptionsAndRules(ctx, tx, questionnaireID, questionID, req); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.invalidateFillByID(ctx, questionnaireID)
	return nil
}

func (s *service) DeleteQuestion(ctx context.Context, questionnaireID, questionID uuid.UUID) error {
	q, err := s.getQuestion(ctx, questionnaireID, questionID)
	if err != nil {
		return err
	}

	// Level config is keyed by group keys derived from the question text;
	// deleting the question would orphan those bands.
	count, err := s.db.AssessmentLevel.Query().
		Where(
			entlvl.GroupKeyHasPrefix(s.deriver.QuestionPrefix(q.Text)),
			entlvl.DeletedAtIsNil(),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("check level config: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: %d bands reference it", ErrQuestionHasLevels, count)
	}

	err = s.db.Question.UpdateOne(q).
		SetDeletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}

	s.invalidateFillByID(ctx, questionnaireID)
	return nil
}

func (s *service) ReorderQuestions(ctx context.Context, questionnaireID uuid.UUID, orders []ReorderItem) (err error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, item := range orders {
		_, err = tx.Question.Update().
			Where(
				entq.ID(item.ID),
				entq.QuestionnaireID(questionnaireID),
				entq.DeletedAtIsNil(),
			).
			SetDisplayOrder(item.Order).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("reorder question %s: %w", item.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.invalidateFillByID(ctx, questionnaireID)
	return nil
}

func (s *service) createOptionsAndRules(ctx context.Context, tx *repo.Tx, questionnaireID, questionID uuid.UUID, req QuestionRequest) error {
	optionIDs := make([]uuid.UUID, len(req.Options))
	for i, in := range req.Options {
		opt, err := tx.SurveyOption.Create().
			SetQuestionID(questionID).
			SetText(in.Text).
			SetNillableValue(in.Value).
			SetIsOther(in.IsOther).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create option: %w", err)
		}
		optionIDs[i] = opt.ID
	}

	for _, br := range req.BranchRules {
		if br.OptionIndex < 0 || br.OptionIndex >= len(optionIDs) {
			continue
		}
		_, err := tx.BranchRule.Create().
			SetQuestionnaireID(questionnaireID).
			SetQuestionID(questionID).
			SetOptionID(optionIDs[br.OptionIndex]).
			SetNextQuestionnaireID(br.NextQuestionnaireID).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create branch rule: %w", err)
		}
	}
	return nil
}

func (s *service) getQuestion(ctx context.Context, questionnaireID, questionID uuid.UUID) (*repo.Question, error) {
	q, err := s.db.Question.Query().
		Where(
			entq.ID(questionID),
			entq.QuestionnaireID(questionnaireID),
			entq.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("get question: %w", err)
	}
	return q, nil
}

// nextDisplayOrder appends new questions after the current last one.
func (s *service) nextDisplayOrder(ctx context.Context, questionnaireID uuid.UUID) (int, error) {
	last, err := s.db.Question.Query().
		Where(entq.QuestionnaireID(questionnaireID), entq.DeletedAtIsNil()).
		Order(entq.ByDisplayOrder(sql.OrderDesc())).
		First(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("max display order: %w", err)
	}
	return last.DisplayOrder + 1, nil
}

func normalizeRows(rows int) int {
	if rows < 1 {
		return 1
	}
	return rows
}
