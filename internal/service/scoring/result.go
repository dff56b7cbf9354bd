package scoring

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/halouxiaoyu/survey_backend/internal/repo"
	entans "github.com/halouxiaoyu/survey_backend/internal/repo/answer"
	entdim "github.com/halouxiaoyu/survey_backend/internal/repo/dimension"
	entds "github.com/halouxiaoyu/survey_backend/internal/repo/dimensionscore"
	entopt "github.com/halouxiaoyu/survey_backend/internal/repo/surveyoption"
	entq "github.com/halouxiaoyu/survey_backend/internal/repo/question"
	entsub "github.com/halouxiaoyu/survey_backend/internal/repo/submission"
)

// ---------------------------------------------------------------------------
// Result assembly
// ---------------------------------------------------------------------------

type QuestionResult struct {
	QuestionID uuid.UUID    `json:"id"`
	Text       string       `json:"text"`
	Type       QuestionType `json:"type"`
	Answer     *string      `json:"answer"`
	OptionID   *uuid.UUID   `json:"option_id"`
	OptionText *string      `json:"option_text"`
	FillinText *string      `json:"fillin_text"`
	Value      *float64     `json:"value"`
}

type DimensionResult struct {
	DimensionID       uuid.UUID `json:"dimension_id"`
	Name              string    `json:"dimension_name"`
	Score             float64   `json:"score"`
	MaxScore          float64   `json:"max_score"`
	AssessmentLevel   *string   `json:"assessment_level"`
	AssessmentOpinion *string   `json:"assessment_opinion"`
}

type SubmissionResult struct {
	QuestionnaireTitle string            `json:"questionnaire_title"`
	TotalScore         float64           `json:"total_score"`
	TotalMaxScore      float64           `json:"total_max_score"`
	Dimensions         []DimensionResult `json:"dimensions"`
	Questions          []QuestionResult  `json:"questions"`
	AssessmentLevel    *string           `json:"assessment_level"`
	AssessmentOpinion  *string           `json:"assessment_opinion"`
	GroupKey           *string           `json:"group_key"`
	SubmittedAt        time.Time         `json:"submitted_at"`
}

func (s *service) Result(ctx context.Context, submissionID uuid.UUID) (*SubmissionResult, error) {
	sub, err := s.db.Submission.Query().
		Where(entsub.ID(submissionID), entsub.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load submission: %w", err)
	}

	qn, err := s.db.Questionnaire.Get(ctx, sub.QuestionnaireID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load questionnaire: %w", err)
	}

	answers, err := s.db.Answer.Query().
		Where(entans.SubmissionID(sub.ID)).
		Order(entans.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}

	// Questions and options are looked up without the soft-delete filter:
	// a result stays readable even after its questionnaire was edited.
	questions, options, err := s.loadEchoLookups(ctx, answers)
	if err != nil {
		return nil, err
	}

	scores, err := s.db.DimensionScore.Query().
		Where(entds.SubmissionID(sub.ID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dimension scores: %w", err)
	}
	scoreByDim := make(map[uuid.UUID]*repo.DimensionScore, len(scores))
	for _, ds := range scores {
		scoreByDim[ds.DimensionID] = ds
	}

	levels, err := s.loadLevels(ctx, qn)
	if err != nil {
		return nil, err
	}

	res := &SubmissionResult{
		QuestionnaireTitle: qn.Title,
		TotalMaxScore:      MaxBandScore(ScopedLevels(levels, nil), sub.GroupKey),
		AssessmentLevel:    sub.AssessmentLevel,
		AssessmentOpinion:  sub.AssessmentOpinion,
		GroupKey:           sub.GroupKey,
		SubmittedAt:        sub.SubmittedAt,
	}
	if sub.TotalScore != nil {
		res.TotalScore = *sub.TotalScore
	}

	answeredDims := make(map[uuid.UUID]bool)
	for _, ans := range answers {
		q, ok := questions[ans.QuestionID]
		if !ok {
			continue
		}
		if q.DimensionID != nil {
			answeredDims[*q.DimensionID] = true
		}
		res.Questions = append(res.Questions, buildQuestionResult(q, ans, options))
	}

	dims, err := s.answeredDimensions(ctx, qn, answeredDims)
	if err != nil {
		return nil, err
	}
	for _, d := range dims {
		dr := DimensionResult{
			DimensionID: d.ID,
			Name:        d.Name,
			MaxScore:    MaxBandScore(ScopedLevels(levels, &d.ID), sub.GroupKey),
		}
		if ds := scoreByDim[d.ID]; ds != nil {
			dr.Score = ds.Score
			dr.AssessmentLevel = ds.AssessmentLevel
			dr.AssessmentOpinion = ds.AssessmentOpinion
		}
		res.Dimensions = append(res.Dimensions, dr)
	}

	return res, nil
}

func buildQuestionResult(q *repo.Question, ans *repo.Answer, options map[uuid.UUID]*repo.SurveyOption) QuestionResult {
	qr := QuestionResult{
		QuestionID: q.ID,
		Text:       q.Text,
		Type:       QuestionType(q.Type),
		Value:      ans.Value,
	}

	if qr.Type == TypeAddress {
		qr.Answer = ans.TextAnswer
		return qr
	}

	fillin := ans.TextAnswer

	var optionText *string
	switch {
	case len(ans.SelectedOptionIds) > 0:
		texts := make([]string, 0, len(ans.SelectedOptionIds))
		for _, id := range ans.SelectedOptionIds {
			opt, ok := options[id]
			if !ok {
				continue
			}
			texts = append(texts, echoOptionText(opt, fillin))
		}
		joined := strings.Join(texts, ", ")
		optionText = &joined

	case ans.OptionID != nil:
		if opt, ok := options[*ans.OptionID]; ok {
			text := echoOptionText(opt, fillin)
			optionText = &text
		}
	}

	qr.OptionID = ans.OptionID
	qr.OptionText = optionText
	qr.FillinText = fillin

	if qr.Type == TypeText || qr.Type == TypeArea {
		qr.Answer = ans.TextAnswer
	} else {
		qr.Answer = optionText
	}
	return qr
}

// echoOptionText renders an option for the result view; an "other" choice
// with a fill-in shows as `text（fill-in）`.
func echoOptionText(opt *repo.SurveyOption, fillin *string) string {
	if opt.IsOther && fillin != nil && *fillin != "" {
		return fmt.Sprintf("%s（%s）", opt.Text, *fillin)
	}
	return opt.Text
}

func (s *service) loadEchoLookups(ctx context.Context, answers []*repo.Answer) (map[uuid.UUID]*repo.Question, map[uuid.UUID]*repo.SurveyOption, error) {
	questionIDs := make([]uuid.UUID, 0, len(answers))
	var optionIDs []uuid.UUID
	for _, ans := range answers {
		questionIDs = append(questionIDs, ans.QuestionID)
		if ans.OptionID != nil {
			optionIDs = append(optionIDs, *ans.OptionID)
		}
		optionIDs = append(optionIDs, ans.SelectedOptionIds...)
	}

	qs, err := s.db.Question.Query().
		Where(entq.IDIn(questionIDs...)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load answered questions: %w", err)
	}
	questions := make(map[uuid.UUID]*repo.Question, len(qs))
	for _, q := range qs {
		questions[q.ID] = q
	}

	opts, err := s.db.SurveyOption.Query().
		Where(entopt.IDIn(optionIDs...)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load answered options: %w", err)
	}
	options := make(map[uuid.UUID]*repo.SurveyOption, len(opts))
	for _, o := range opts {
		options[o.ID] = o
	}

	return questions, options, nil
}

// answeredDimensions returns the scored dimensions of the questionnaire
// (or its parent) that received at least one answer, in stable id order.
func (s *service) answeredDimensions(ctx context.Context, qn *repo.Questionnaire, answered map[uuid.UUID]bool) ([]*repo.Dimension, error) {
	ownerIDs := []uuid.UUID{qn.ID}
	if qn.ParentID != nil {
		ownerIDs = append(ownerIDs, *qn.ParentID)
	}
	ds, err := s.db.Dimension.Query().
		Where(
			entdim.QuestionnaireIDIn(ownerIDs...),
			entdim.IsBasicInfo(false),
			entdim.DeletedAtIsNil(),
		).
		Order(entdim.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dimensions: %w", err)
	}

	out := ds[:0]
	for _, d := range ds {
		if answered[d.ID] {
			out = append(out, d)
		}
	}
	return out, nil
}
