package scoring

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/halouxiaoyu/survey_backend/internal/repo"
	entlvl "github.com/halouxiaoyu/survey_backend/internal/repo/assessmentlevel"
	entdim "github.com/halouxiaoyu/survey_backend/internal/repo/dimension"
	entopt "github.com/halouxiaoyu/survey_backend/internal/repo/surveyoption"
	entq "github.com/halouxiaoyu/survey_backend/internal/repo/question"
	entqn "github.com/halouxiaoyu/survey_backend/internal/repo/questionnaire"
	"github.com/halouxiaoyu/survey_backend/pkg/groupkey"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ScoreResult struct {
	SubmissionID    uuid.UUID `json:"submission_id"`
	QuestionnaireID uuid.UUID `json:"questionnaire_id"`
	TotalScore      float64   `json:"total_score"`
	AssessmentLevel *string   `json:"assessment_level"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Score valuates and persists one submission against the published
	// questionnaire behind accessCode. Everything it writes lands in a
	// single transaction.
	Score(ctx context.Context, accessCode string, answers []RawAnswer) (*ScoreResult, error)

	// Result assembles the full respondent-facing result for a scored
	// submission.
	Result(ctx context.Context, submissionID uuid.UUID) (*SubmissionResult, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type service struct {
	db       *repo.Client
	nc       *nats.Conn
	resolver GroupResolver
}

func New(db *repo.Client, nc *nats.Conn, deriver groupkey.Deriver, groupMarkers []string) Service {
	return &service{
		db:       db,
		nc:       nc,
		resolver: GroupResolver{Deriver: deriver, Markers: groupMarkers},
	}
}

func (s *service) Score(ctx context.Context, accessCode string, raws []RawAnswer) (res *ScoreResult, err error) {
	if len(raws) == 0 {
		return nil, ErrEmptyAnswer
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

	questions, options, dims, err := s.loadStructure(ctx, qn)
	if err != nil {
		return nil, err
	}

	valuator := Valuator{Questions: questions, Options: options}
	valuated, err := valuator.ValuateAll(raws)
	if err != nil {
		return nil, err
	}

	levels, err := s.loadLevels(ctx, qn)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	sub, err := tx.Submission.Create().
		SetQuestionnaireID(qn.ID).
		Save(ctx)
	if err != nil {
		err = fmt.Errorf("%w: create submission: %v", ErrSubmissionFailed, err)
		return nil, err
	}

	for _, va := range valuated {
		c := tx.Answer.Create().
			SetSubmissionID(sub.ID).
			SetQuestionID(va.QuestionID).
			SetNillableTextAnswer(va.Text)
		if !va.Terminal {
			c = c.SetValue(va.Value).
				SetNillableOptionID(va.OptionID)
			if len(va.SelectedIDs) > 0 {
				c = c.SetSelectedOptionIds(va.SelectedIDs)
			}
		}
		if _, err = c.Save(ctx); err != nil {
			err = fmt.Errorf("%w: persist answer: %v", ErrSubmissionFailed, err)
			return nil, err
		}
	}

	weighted := AggregateDimensions(valuated, dims)
	key := s.resolver.Resolve(raws, questions, options, dims)

	for dimID, score := range weighted {
		scoped := ScopedLevels(levels, &dimID)
		lv := MatchLevel(scoped, score, key)

		c := tx.DimensionScore.Create().
			SetSubmissionID(sub.ID).
			SetDimensionID(dimID).
			SetScore(score).
			SetWeight(dims[dimID].Weight)
		if lv != nil {
			c = c.SetAssessmentLevel(lv.Name).
				SetAssessmentOpinion(lv.Opinion)
		}
		if _, err = c.Save(ctx); err != nil {
			err = fmt.Errorf("%w: persist dimension score: %v", ErrSubmissionFailed, err)
			return nil, err
		}
	}

	total := TotalScore(weighted)
	totalLevel := MatchLevel(ScopedLevels(levels, nil), total, key)

	upd := tx.Submission.UpdateOneID(sub.ID).
		SetTotalScore(total).
		SetNillableGroupKey(key)
	if totalLevel != nil {
		upd = upd.SetAssessmentLevel(totalLevel.Name).
			SetAssessmentOpinion(totalLevel.Opinion)
	}
	if _, err = upd.Save(ctx); err != nil {
		err = fmt.Errorf("%w: finalize submission: %v", ErrSubmissionFailed, err)
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		err = fmt.Errorf("%w: commit: %v", ErrSubmissionFailed, err)
		return nil, err
	}

	// Publish NATS event
	if s.nc != nil {
		subject := fmt.Sprintf("survey.submission.scored.%s", qn.ID.String())
		_ = s.nc.Publish(subject, []byte(sub.ID.String()))
	}

	res = &ScoreResult{
		SubmissionID:    sub.ID,
		QuestionnaireID: qn.ID,
		TotalScore:      total,
	}
	if totalLevel != nil {
		name := totalLevel.Name
		res.AssessmentLevel = &name
	}
	return res, nil
}

// loadStructure snapshots the questionnaire's live questions, their
// options, and its dimensions. Sub-questionnaires reuse the parent's
// dimension set.
func (s *service) loadStructure(ctx context.Context, qn *repo.Questionnaire) (map[uuid.UUID]Question, map[uuid.UUID]Option, map[uuid.UUID]Dimension, error) {
	qs, err := s.db.Question.Query().
		Where(entq.QuestionnaireID(qn.ID), entq.DeletedAtIsNil()).
		All(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load questions: %w", err)
	}

	questionIDs := make([]uuid.UUID, len(qs))
	for i, q := range qs {
		questionIDs[i] = q.ID
	}

	opts, err := s.db.SurveyOption.Query().
		Where(entopt.QuestionIDIn(questionIDs...), entopt.DeletedAtIsNil()).
		All(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load options: %w", err)
	}

	ownerIDs := []uuid.UUID{qn.ID}
	if qn.ParentID != nil {
		ownerIDs = append(ownerIDs, *qn.ParentID)
	}
	ds, err := s.db.Dimension.Query().
		Where(entdim.QuestionnaireIDIn(ownerIDs...), entdim.DeletedAtIsNil()).
		All(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load dimensions: %w", err)
	}

	return snapQuestions(qs), snapOptions(opts), snapDimensions(ds), nil
}

// loadLevels returns the questionnaire's live bands sorted by id, the
// stable order MatchLevel relies on. Sub-questionnaires also see the
// parent's bands, since dimension-scoped bands live with the parent's
// dimensions.
func (s *service) loadLevels(ctx context.Context, qn *repo.Questionnaire) ([]Level, error) {
	ownerIDs := []uuid.UUID{qn.ID}
	if qn.ParentID != nil {
		ownerIDs = append(ownerIDs, *qn.ParentID)
	}
	ls, err := s.db.AssessmentLevel.Query().
		Where(entlvl.QuestionnaireIDIn(ownerIDs...), entlvl.DeletedAtIsNil()).
		Order(entlvl.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load assessment levels: %w", err)
	}
	return snapLevels(ls), nil
}
