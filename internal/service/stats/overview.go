package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/halouxiaoyu/survey_backend/internal/repo"
	entans "github.com/halouxiaoyu/survey_backend/internal/repo/answer"
	entdim "github.com/halouxiaoyu/survey_backend/internal/repo/dimension"
	entds "github.com/halouxiaoyu/survey_backend/internal/repo/dimensionscore"
	entq "github.com/halouxiaoyu/survey_backend/internal/repo/question"
	entqn "github.com/halouxiaoyu/survey_backend/internal/repo/questionnaire"
	entsub "github.com/halouxiaoyu/survey_backend/internal/repo/submission"
)

const overviewCacheKey = "survey:stats:overview:%s"

func (s *service) Overview(ctx context.Context, questionnaireID uuid.UUID) (*Overview, error) {
	if cached := s.cachedOverview(ctx, questionnaireID); cached != nil {
		return cached, nil
	}
	return s.RefreshOverview(ctx, questionnaireID)
}

func (s *service) RefreshOverview(ctx context.Context, questionnaireID uuid.UUID) (*Overview, error) {
	ov, err := s.computeOverview(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	s.cacheOverview(ctx, questionnaireID, ov)
	return ov, nil
}

func (s *service) computeOverview(ctx context.Context, questionnaireID uuid.UUID) (*Overview, error) {
	qn, err := s.db.Questionnaire.Query().
		Where(entqn.ID(questionnaireID), entqn.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get questionnaire: %w", err)
	}

	subIDs, err := s.db.Submission.Query().
		Where(entsub.QuestionnaireID(questionnaireID), entsub.DeletedAtIsNil()).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load submissions: %w", err)
	}

	ov := &Overview{
		TotalSubmissions: len(subIDs),
		AreaStats:        map[string]int{},
		GeneratedAt:      time.Now(),
	}

	ov.DimensionScores, err = s.dimensionAverages(ctx, qn, subIDs)
	if err != nil {
		return nil, err
	}
	ov.AddressQuestions, ov.AreaStats, err = s.areaStats(ctx, questionnaireID, subIDs)
	if err != nil {
		return nil, err
	}
	ov.Levels, err = s.LevelStats(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	return ov, nil
}

// dimensionAverages returns the mean weighted score per scoring
// dimension across all live submissions. Sub-questionnaires share the
// parent's dimensions.
func (s *service) dimensionAverages(ctx context.Context, qn *repo.Questionnaire, subIDs []uuid.UUID) ([]DimensionAverage, error) {
	ownerID := qn.ID
	if qn.ParentID != nil {
		ownerID = *qn.ParentID
	}
	dims, err := s.db.Dimension.Query().
		Where(
			entdim.QuestionnaireID(ownerID),
			entdim.IsBasicInfo(false),
			entdim.DeletedAtIsNil(),
		).
		Order(entdim.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dimensions: %w", err)
	}
	if len(dims) == 0 || len(subIDs) == 0 {
		out := make([]DimensionAverage, len(dims))
		for i, d := range dims {
			out[i] = DimensionAverage{DimensionID: d.ID, Name: d.Name}
		}
		return out, nil
	}

	dimIDs := make([]uuid.UUID, len(dims))
	for i, d := range dims {
		dimIDs[i] = d.ID
	}

	var rows []struct {
		DimensionID uuid.UUID `json:"dimension_id"`
		AvgScore    float64   `json:"avg_score"`
	}
	err = s.db.DimensionScore.Query().
		Where(
			entds.DimensionIDIn(dimIDs...),
			entds.SubmissionIDIn(subIDs...),
		).
		GroupBy(entds.FieldDimensionID).
		Aggregate(repo.As(repo.Mean(entds.FieldScore), "avg_score")).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("average dimension scores: %w", err)
	}
	avgByDim := make(map[uuid.UUID]float64, len(rows))
	for _, r := range rows {
		avgByDim[r.DimensionID] = r.AvgScore
	}

	out := make([]DimensionAverage, len(dims))
	for i, d := range dims {
		out[i] = DimensionAverage{
			DimensionID: d.ID,
			Name:        d.Name,
			AvgScore:    avgByDim[d.ID],
		}
	}
	return out, nil
}

// areaStats counts submissions per area path for every address
// question of the questionnaire.
func (s *service) areaStats(ctx context.Context, questionnaireID uuid.UUID, subIDs []uuid.UUID) ([]BasicQuestion, map[string]int, error) {
	questions, err := s.db.Question.Query().
		Where(
			entq.QuestionnaireID(questionnaireID),
			entq.TypeEQ(entq.TypeAddress),
			entq.DeletedAtIsNil(),
		).
		Order(entq.ByDisplayOrder(), entq.ByID()).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load address questions: %w", err)
	}

	out := make([]BasicQuestion, len(questions))
	counts := map[string]int{}
	if len(questions) == 0 || len(subIDs) == 0 {
		return out, counts, nil
	}

	qIDs := make([]uuid.UUID, len(questions))
	for i, q := range questions {
		out[i] = BasicQuestion{ID: q.ID, Text: q.Text, Type: string(q.Type)}
		qIDs[i] = q.ID
	}

	answers, err := s.db.Answer.Query().
		Where(
			entans.QuestionIDIn(qIDs...),
			entans.SubmissionIDIn(subIDs...),
			entans.TextAnswerNotNil(),
		).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load address answers: %w", err)
	}
	for _, ans := range answers {
		if path := areaPath(*ans.TextAnswer); path != "" {
			counts[path]++
		}
	}
	return out, counts, nil
}

// ---------------------------------------------------------------------------
// Cache
// ---------------------------------------------------------------------------

func (s *service) cachedOverview(ctx context.Context, questionnaireID uuid.UUID) *Overview {
	if s.rdb == nil {
		return nil
	}
	raw, err := s.rdb.Get(ctx, fmt.Sprintf(overviewCacheKey, questionnaireID)).Bytes()
	if err != nil {
		if err != goredis.Nil {
			slog.Warn("stats cache read failed", "error", err)
		}
		return nil
	}
	var ov Overview
	if err := json.Unmarshal(raw, &ov); err != nil {
		slog.Warn("stats cache decode failed", "error", err)
		return nil
	}
	return &ov
}

func (s *service) cacheOverview(ctx context.Context, questionnaireID uuid.UUID, ov *Overview) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(ov)
	if err != nil {
		return
	}
	key := fmt.Sprintf(overviewCacheKey, questionnaireID)
	if err := s.rdb.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		slog.Warn("stats cache write failed", "error", err)
	}
}
