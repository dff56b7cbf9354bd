package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/halouxiaoyu/survey_backend/internal/repo"
	entans "github.com/halouxiaoyu/survey_backend/internal/repo/answer"
	entbr "github.com/halouxiaoyu/survey_backend/internal/repo/branchrule"
	entdim "github.com/halouxiaoyu/survey_backend/internal/repo/dimension"
	entopt "github.com/halouxiaoyu/survey_backend/internal/repo/surveyoption"
	entq "github.com/halouxiaoyu/survey_backend/internal/repo/question"
	entsub "github.com/halouxiaoyu/survey_backend/internal/repo/submission"
)

var ErrNotFound = errors.New("questionnaire or submission not found")

// ---------------------------------------------------------------------------
// Read models
// ---------------------------------------------------------------------------

type DimensionAverage struct {
	DimensionID uuid.UUID `json:"dimension_id"`
	Name        string    `json:"dimension_name"`
	AvgScore    float64   `json:"avg_score"`
}

type LevelCount struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}

type BasicQuestion struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
	Type string    `json:"type"`
}

type LevelOptionCount struct {
	Level  string `json:"level"`
	Option string `json:"option"`
	Count  int    `json:"count"`
}

// Overview aggregates everything the dashboard shows for one
// questionnaire.
type Overview struct {
	TotalSubmissions int                `json:"total_submissions"`
	DimensionScores  []DimensionAverage `json:"dimension_scores"`
	AreaStats        map[string]int     `json:"area_stats"`
	AddressQuestions []BasicQuestion    `json:"address_questions"`
	Levels           []LevelCount       `json:"levels"`
	GeneratedAt      time.Time          `json:"generated_at"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Overview returns the cached dashboard aggregate, computing and
	// caching it on a miss.
	Overview(ctx context.Context, questionnaireID uuid.UUID) (*Overview, error)

	// RefreshOverview recomputes the aggregate and replaces the cache.
	// The submission worker calls this after every scored submission.
	RefreshOverview(ctx context.Context, questionnaireID uuid.UUID) (*Overview, error)

	LevelStats(ctx context.Context, questionnaireID uuid.UUID) ([]LevelCount, error)
	BasicQuestions(ctx context.Context, questionnaireID uuid.UUID, branchOnly bool) ([]BasicQuestion, error)
	LevelByBasic(ctx context.Context, questionnaireID, questionID uuid.UUID) ([]LevelOptionCount, error)
	DeleteSubmission(ctx context.Context, questionnaireID, submissionID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type service struct {
	db  *repo.Client
	rdb *goredis.Client
	ttl time.Duration
}

func New(db *repo.Client, rdb *goredis.Client, cacheTTL time.Duration) Service {
	return &service{db: db, rdb: rdb, ttl: cacheTTL}
}

func (s *service) LevelStats(ctx context.Context, questionnaireID uuid.UUID) ([]LevelCount, error) {
	var rows []struct {
		Level string `json:"assessment_level"`
		Count int    `json:"count"`
	}
	err := s.db.Submission.Query().
		Where(
			entsub.QuestionnaireID(questionnaireID),
			entsub.AssessmentLevelNotNil(),
			entsub.DeletedAtIsNil(),
		).
		GroupBy(entsub.FieldAssessmentLevel).
		Aggregate(repo.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("level stats: %w", err)
	}

	out := make([]LevelCount, len(rows))
	for i, r := range rows {
		out[i] = LevelCount{Level: r.Level, Count: r.Count}
	}
	return out, nil
}

// BasicQuestions lists basic-info questions, optionally restricted to
// those with live branch rules (the ones usable as grouping filters).
func (s *service) BasicQuestions(ctx context.Context, questionnaireID uuid.UUID, branchOnly bool) ([]BasicQuestion, error) {
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
			entq.DeletedAtIsNil(),
		).
		Order(entq.ByDisplayOrder(), entq.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load basic info questions: %w", err)
	}

	out := make([]BasicQuestion, 0, len(questions))
	for _, q := range questions {
		if branchOnly {
			hasBranch, err := s.db.BranchRule.Query().
				Where(entbr.QuestionID(q.ID), entbr.DeletedAtIsNil()).
				Exist(ctx)
			if err != nil {
				return nil, fmt.Errorf("check branch rules: %w", err)
			}
			if !hasBranch {
				continue
			}
		}
		out = append(out, BasicQuestion{ID: q.ID, Text: q.Text, Type: string(q.Type)})
	}
	return out, nil
}

// LevelByBasic cross-tabulates assessment levels against the answers of
// one basic-info question.
func (s *service) LevelByBasic(ctx context.Context, questionnaireID, questionID uuid.UUID) ([]LevelOptionCount, error) {
	question, err := s.db.Question.Query().
		Where(entq.ID(questionID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load question: %w", err)
	}

	subs, err := s.db.Submission.Query().
		Where(
			entsub.QuestionnaireID(questionnaireID),
			entsub.AssessmentLevelNotNil(),
			entsub.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load submissions: %w", err)
	}
	levelBySubmission := make(map[uuid.UUID]string, len(subs))
	subIDs := make([]uuid.UUID, len(subs))
	for i, sub := range subs {
		subIDs[i] = sub.ID
		levelBySubmission[sub.ID] = *sub.AssessmentLevel
	}

	answers, err := s.db.Answer.Query().
		Where(
			entans.QuestionID(questionID),
			entans.SubmissionIDIn(subIDs...),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}

	optionText, err := s.optionTexts(ctx, answers)
	if err != nil {
		return nil, err
	}

	type key struct{ level, option string }
	counts := make(map[key]int)
	for _, ans := range answers {
		level := levelBySubmission[ans.SubmissionID]

		var option string
		switch {
		case question.Type == entq.TypeAddress && ans.TextAnswer != nil:
			option = areaPath(*ans.TextAnswer)
		case ans.OptionID != nil:
			option = optionText[*ans.OptionID]
		case ans.TextAnswer != nil:
			option = *ans.TextAnswer
		}
		if option == "" {
			continue
		}
		counts[key{level, option}]++
	}

	out := make([]LevelOptionCount, 0, len(counts))
	for k, c := range counts {
		out = append(out, LevelOptionCount{Level: k.level, Option: k.option, Count: c})
	}
	return out, nil
}

func (s *service) DeleteSubmission(ctx context.Context, questionnaireID, submissionID uuid.UUID) error {
	sub, err := s.db.Submission.Query().
		Where(
			entsub.ID(submissionID),
			entsub.QuestionnaireID(questionnaireID),
			entsub.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get submission: %w", err)
	}

	err = s.db.Submission.UpdateOne(sub).
		SetDeletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete submission: %w", err)
	}

	// The cached overview now overcounts; rebuild it eagerly.
	if _, err := s.RefreshOverview(ctx, questionnaireID); err != nil {
		return fmt.Errorf("refresh overview: %w", err)
	}
	return nil
}

func (s *service) optionTexts(ctx context.Context, answers []*repo.Answer) (map[uuid.UUID]string, error) {
	var ids []uuid.UUID
	for _, a := range answers {
		if a.OptionID != nil {
			ids = append(ids, *a.OptionID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}
	opts, err := s.db.SurveyOption.Query().
		Where(entopt.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load options: %w", err)
	}
	out := make(map[uuid.UUID]string, len(opts))
	for _, o := range opts {
		out[o.ID] = o.Text
	}
	return out, nil
}

// areaPath renders the cascades of an address payload ({"area": [...]})
// as a "province/city/district" string.
func areaPath(payload string) string {
	var val struct {
		Area []any `json:"area"`
	}
	if err := json.Unmarshal([]byte(payload), &val); err != nil || len(val.Area) == 0 {
		return ""
	}
	path := ""
	for i, part := range val.Area {
		if i > 0 {
			path += "/"
		}
		path += fmt.Sprint(part)
	}
	return path
}
