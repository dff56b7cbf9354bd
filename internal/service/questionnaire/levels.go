package questionnaire

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/halouxiaoyu/survey_backend/internal/repo"
	entlvl "github.com/halouxiaoyu/survey_backend/internal/repo/assessmentlevel"
	entbr "github.com/halouxiaoyu/survey_backend/internal/repo/branchrule"
	entdim "github.com/halouxiaoyu/survey_backend/internal/repo/dimension"
	entopt "github.com/halouxiaoyu/survey_backend/internal/repo/surveyoption"
	entq "github.com/halouxiaoyu/survey_backend/internal/repo/question"
	"github.com/halouxiaoyu/survey_backend/internal/service/scoring"
)

// ---------------------------------------------------------------------------
// Assessment level management
// ---------------------------------------------------------------------------

type LevelRequest struct {
	ID          *uuid.UUID
	Name        string
	MinScore    float64
	MaxScore    float64
	Opinion     string
	GroupKey    *string
	DimensionID *uuid.UUID
}

// BasicGroup is one entry of the group-key dropdown shown when authoring
// group-scoped bands.
type BasicGroup struct {
	GroupKey string `json:"group_key"`
	Label    string `json:"label"`
}

func (s *service) ListLevels(ctx context.Context, questionnaireID uuid.UUID, groupKey *string) ([]*repo.AssessmentLevel, error) {
	q := s.db.AssessmentLevel.Query().
		Where(
			entlvl.QuestionnaireID(questionnaireID),
			entlvl.DeletedAtIsNil(),
		)
	if groupKey != nil && *groupKey != "" {
		q = q.Where(entlvl.GroupKey(*groupKey))
	}
	levels, err := q.Order(entlvl.ByMinScore()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assessment levels: %w", err)
	}
	return levels, nil
}

func (s *service) SaveLevel(ctx context.Context, questionnaireID uuid.UUID, req LevelRequest) (*repo.AssessmentLevel, error) {
	if req.Name == "" || req.Opinion == "" {
		return nil, fmt.Errorf("%w: band name and opinion are required", ErrTitleRequired)
	}
	if req.MaxScore < req.MinScore {
		return nil, fmt.Errorf("%w: max score is below min score", scoring.ErrOverlappingBand)
	}
	if _, err := s.get(ctx, questionnaireID); err != nil {
		return nil, err
	}

	if err := s.checkBandOverlap(ctx, questionnaireID, req); err != nil {
		return nil, err
	}

	if req.ID != nil {
		lvl, err := s.db.AssessmentLevel.Query().
			Where(
				entlvl.ID(*req.ID),
				entlvl.QuestionnaireID(questionnaireID),
				entlvl.DeletedAtIsNil(),
			).
			Only(ctx)
		if err != nil {
			if repo.IsNotFound(err) {
				return nil, ErrLevelNotFound
			}
			return nil, fmt.Errorf("get assessment level: %w", err)
		}

		upd := s.db.AssessmentLevel.UpdateOne(lvl).
			SetName(req.Name).
			SetMinScore(req.MinScore).
			SetMaxScore(req.MaxScore).
			SetOpinion(req.Opinion)
		if req.GroupKey != nil {
			upd = upd.SetGroupKey(*req.GroupKey)
		} else {
			upd = upd.ClearGroupKey()
		}
		if req.DimensionID != nil {
			upd = upd.SetDimensionID(*req.DimensionID)
		} else {
			upd = upd.ClearDimensionID()
		}

		lvl, err = upd.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("update assessment level: %w", err)
		}
		return lvl, nil
	}

	lvl, err := s.db.AssessmentLevel.Create().
		SetQuestionnaireID(questionnaireID).
		SetName(req.Name).
		SetMinScore(req.MinScore).
		SetMaxScore(req.MaxScore).
		SetOpinion(req.Opinion).
		SetNillableGroupKey(req.GroupKey).
		SetNillableDimensionID(req.DimensionID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create assessment level: %w", err)
	}
	return lvl, nil
}

// checkBandOverlap rejects a band whose [min,max] intersects an existing
// live band with the same dimension and group scope.
func (s *service) checkBandOverlap(ctx context.Context, questionnaireID uuid.UUID, req LevelRequest) error {
	existing, err := s.db.AssessmentLevel.Query().
		Where(
			entlvl.QuestionnaireID(questionnaireID),
			entlvl.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("load assessment levels: %w", err)
	}

	candidate := scoring.Level{
		Name:        req.Name,
		MinScore:    req.MinScore,
		MaxScore:    req.MaxScore,
		GroupKey:    req.GroupKey,
		DimensionID: req.DimensionID,
	}
	if req.ID != nil {
		candidate.ID = *req.ID
	}

	bands := make([]scoring.Level, len(existing))
	for i, lvl := range existing {
		bands[i] = scoring.Level{
			ID:          lvl.ID,
			Name:        lvl.Name,
			MinScore:    lvl.MinScore,
			MaxScore:    lvl.MaxScore,
			GroupKey:    lvl.GroupKey,
			DimensionID: lvl.DimensionID,
		}
	}
	if scoring.BandOverlaps(bands, candidate) {
		return scoring.ErrOverlappingBand
	}
	return nil
}

func (s *service) DeleteLevel(ctx context.Context, questionnaireID, levelID uuid.UUID) error {
	lvl, err := s.db.AssessmentLevel.Query().
		Where(
			entlvl.ID(levelID),
			entlvl.QuestionnaireID(questionnaireID),
			entlvl.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrLevelNotFound
		}
		return fmt.Errorf("get assessment level: %w", err)
	}

	err = s.db.AssessmentLevel.UpdateOne(lvl).
		SetDeletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete assessment level: %w", err)
	}
	return nil
}

// BasicGroups lists the group keys selectable when authoring bands: the
// options of the first branch-configured single-choice basic-info
// question, keyed the same way scoring derives group keys.
func (s *service) BasicGroups(ctx context.Context, questionnaireID uuid.UUID) ([]BasicGroup, error) {
	basicDim, err := s.db.Dimension.Query().
		Where(
			entdim.QuestionnaireID(questionnaireID),
			entdim.IsBasicInfo(true),
			entdim.DeletedAtIsNil(),
		).
		First(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load basic info dimension: %w", err)
	}

	questions, err := s.db.Question.Query().
		Where(
			entq.QuestionnaireID(questionnaireID),
			entq.DimensionID(basicDim.ID),
			entq.TypeEQ(entq.TypeSingle),
			entq.DeletedAtIsNil(),
		).
		Order(entq.ByDisplayOrder(), entq.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load basic info questions: %w", err)
	}

	var grouping *repo.Question
	for _, q := range questions {
		hasBranch, err := s.db.BranchRule.Query().
			Where(entbr.QuestionID(q.ID), entbr.DeletedAtIsNil()).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check branch rules: %w", err)
		}
		if hasBranch {
			grouping = q
			break
		}
	}
	if grouping == nil {
		return nil, nil
	}

	options, err := s.db.SurveyOption.Query().
		Where(entopt.QuestionID(grouping.ID), entopt.DeletedAtIsNil()).
		Order(entopt.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load options: %w", err)
	}

	groups := make([]BasicGroup, 0, len(options))
	for _, opt := range options {
		groups = append(groups, BasicGroup{
			GroupKey: s.deriver.Derive(grouping.Text, opt.Text),
			Label:    fmt.Sprintf("%s-%s", grouping.Text, opt.Text),
		})
	}
	return groups, nil
}
