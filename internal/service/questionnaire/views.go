package questionnaire

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/halouxiaoyu/survey_backend/internal/repo"
	entbr "github.com/halouxiaoyu/survey_backend/internal/repo/branchrule"
	entdim "github.com/halouxiaoyu/survey_backend/internal/repo/dimension"
	entopt "github.com/halouxiaoyu/survey_backend/internal/repo/surveyoption"
	entq "github.com/halouxiaoyu/survey_backend/internal/repo/question"
	entqn "github.com/halouxiaoyu/survey_backend/internal/repo/questionnaire"
)

// ---------------------------------------------------------------------------
// Read models
// ---------------------------------------------------------------------------

type OptionView struct {
	ID      uuid.UUID `json:"id"`
	Text    string    `json:"text"`
	Value   *float64  `json:"value"`
	IsOther bool      `json:"is_other"`
}

type BranchRuleView struct {
	OptionID            *uuid.UUID `json:"option_id"`
	NextQuestionnaireID uuid.UUID  `json:"next_questionnaire_id"`
	NextAccessCode      *string    `json:"next_questionnaire_access_code"`
}

type QuestionView struct {
	ID           uuid.UUID        `json:"id"`
	Text         string           `json:"text"`
	Type         string           `json:"type"`
	DimensionID  *uuid.UUID       `json:"dimension_id"`
	DisplayOrder int              `json:"order"`
	IsGrouping   bool             `json:"is_grouping"`
	Multiline    bool             `json:"multiline"`
	InputRows    int              `json:"input_rows"`
	InputType    *string          `json:"input_type"`
	Options      []OptionView     `json:"options"`
	BranchRules  []BranchRuleView `json:"branch_rules"`
}

type DimensionView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Weight      float64   `json:"weight"`
	IsBasicInfo bool      `json:"is_basic_info"`
}

// Detail is the full authoring/filling view of one questionnaire.
// Sub-questionnaires expose their parent's dimension set.
type Detail struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Status      string          `json:"status"`
	IsPublished bool            `json:"is_published"`
	AccessCode  *string         `json:"access_code"`
	ParentID    *uuid.UUID      `json:"parent_id"`
	CreatedAt   time.Time       `json:"created_at"`
	Dimensions  []DimensionView `json:"dimensions"`
	Questions   []QuestionView  `json:"questions"`
}

func (s *service) Detail(ctx context.Context, id uuid.UUID) (*Detail, error) {
	qn, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.buildDetail(ctx, qn)
}

func (s *service) Fill(ctx context.Context, accessCode string) (*Detail, error) {
	if d, ok := s.cachedFill(ctx, accessCode); ok {
		return d, nil
	}

	qn, err := s.db.Questionnaire.Query().
		Where(
			entqn.AccessCode(accessCode),
			entqn.IsPublished(true),
			entqn.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load questionnaire: %w", err)
	}

	d, err := s.buildDetail(ctx, qn)
	if err != nil {
		return nil, err
	}
	s.cacheFill(ctx, accessCode, d)
	return d, nil
}

func (s *service) buildDetail(ctx context.Context, qn *repo.Questionnaire) (*Detail, error) {
	dimOwner := qn.ID
	if qn.ParentID != nil {
		dimOwner = *qn.ParentID
	}
	dims, err := s.db.Dimension.Query().
		Where(entdim.QuestionnaireID(dimOwner), entdim.DeletedAtIsNil()).
		Order(entdim.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dimensions: %w", err)
	}

	questions, err := s.db.Question.Query().
		Where(entq.QuestionnaireID(qn.ID), entq.DeletedAtIsNil()).
		Order(entq.ByDisplayOrder(), entq.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	questionIDs := make([]uuid.UUID, len(questions))
	for i, q := range questions {
		questionIDs[i] = q.ID
	}

	options, err := s.db.SurveyOption.Query().
		Where(entopt.QuestionIDIn(questionIDs...), entopt.DeletedAtIsNil()).
		Order(entopt.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load options: %w", err)
	}
	optionsByQuestion := make(map[uuid.UUID][]OptionView)
	for _, o := range options {
		optionsByQuestion[o.QuestionID] = append(optionsByQuestion[o.QuestionID], OptionView{
			ID:      o.ID,
			Text:    o.Text,
			Value:   o.Value,
			IsOther: o.IsOther,
		})
	}

	rules, err := s.db.BranchRule.Query().
		Where(entbr.QuestionIDIn(questionIDs...), entbr.DeletedAtIsNil()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load branch rules: %w", err)
	}
	accessCodes, err := s.nextAccessCodes(ctx, rules)
	if err != nil {
		return nil, err
	}
	rulesByQuestion := make(map[uuid.UUID][]BranchRuleView)
	for _, r := range rules {
		rulesByQuestion[r.QuestionID] = append(rulesByQuestion[r.QuestionID], BranchRuleView{
			OptionID:            r.OptionID,
			NextQuestionnaireID: r.NextQuestionnaireID,
			NextAccessCode:      accessCodes[r.NextQuestionnaireID],
		})
	}

	d := &Detail{
		ID:          qn.ID,
		Title:       qn.Title,
		Description: qn.Description,
		Status:      string(qn.Status),
		IsPublished: qn.IsPublished,
		AccessCode:  qn.AccessCode,
		ParentID:    qn.ParentID,
		CreatedAt:   qn.CreatedAt,
	}
	for _, dim := range dims {
		d.Dimensions = append(d.Dimensions, DimensionView{
			ID:          dim.ID,
			Name:        dim.Name,
			Weight:      dim.Weight,
			IsBasicInfo: dim.IsBasicInfo,
		})
	}
	for _, q := range questions {
		d.Questions = append(d.Questions, QuestionView{
			ID:           q.ID,
			Text:         q.Text,
			Type:         string(q.Type),
			DimensionID:  q.DimensionID,
			DisplayOrder: q.DisplayOrder,
			IsGrouping:   q.IsGrouping,
			Multiline:    q.Multiline,
			InputRows:    q.InputRows,
			InputType:    q.InputType,
			Options:      optionsByQuestion[q.ID],
			BranchRules:  rulesByQuestion[q.ID],
		})
	}
	return d, nil
}

// nextAccessCodes resolves the access codes of every branch target in one
// query.
func (s *service) nextAccessCodes(ctx context.Context, rules []*repo.BranchRule) (map[uuid.UUID]*string, error) {
	if len(rules) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(rules))
	seen := make(map[uuid.UUID]bool)
	for _, r := range rules {
		if !seen[r.NextQuestionnaireID] {
			seen[r.NextQuestionnaireID] = true
			ids = append(ids, r.NextQuestionnaireID)
		}
	}
	targets, err := s.db.Questionnaire.Query().
		Where(entqn.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load branch targets: %w", err)
	}
	out := make(map[uuid.UUID]*string, len(targets))
	for _, t := range targets {
		out[t.ID] = t.AccessCode
	}
	return out, nil
}
