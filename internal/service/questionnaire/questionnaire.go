package questionnaire

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/halouxiaoyu/survey_backend/internal/repo"
	entqn "github.com/halouxiaoyu/survey_backend/internal/repo/questionnaire"
	"github.com/halouxiaoyu/survey_backend/pkg/groupkey"
	"github.com/halouxiaoyu/survey_backend/pkg/util/codes"
)

// basicInfoDimensionName is the display name of the reserved dimension
// auto-created on every top-level questionnaire. Scoring identifies the
// dimension by its is_basic_info flag, never by this string.
const basicInfoDimensionName = "用户基本信息(不参与得分评估)"

// accessCodeAttempts bounds the unique-code retry loop.
const accessCodeAttempts = 5

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Title       string
	Description *string
	ParentID    *uuid.UUID
}

type UpdateRequest struct {
	Title       string
	Description *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Questionnaire, error)
	List(ctx context.Context) ([]*repo.Questionnaire, error)
	Detail(ctx context.Context, id uuid.UUID) (*Detail, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	TogglePublish(ctx context.Context, id uuid.UUID) (*repo.Questionnaire, error)

	// Fill returns the respondent-facing structure of a published
	// questionnaire, cached by access code.
	Fill(ctx context.Context, accessCode string) (*Detail, error)

	AddDimension(ctx context.Context, questionnaireID uuid.UUID, req DimensionRequest) (*repo.Dimension, error)
	UpdateDimension(ctx context.Context, questionnaireID, dimensionID uuid.UUID, req DimensionRequest) error
	DeleteDimension(ctx context.Context, questionnaireID, dimensionID uuid.UUID) error

	AddQuestion(ctx context.Context, questionnaireID uuid.UUID, req QuestionRequest) (*repo.Question, error)
	UpdateQuestion(ctx context.Context, questionnaireID, questionID uuid.UUID, req QuestionRequest) error
	DeleteQuestion(ctx context.Context, questionnaireID, questionID uuid.UUID) error
	ReorderQuestions(ctx context.Context, questionnaireID uuid.UUID, orders []ReorderItem) error

	ListLevels(ctx context.Context, questionnaireID uuid.UUID, groupKey *string) ([]*repo.AssessmentLevel, error)
	SaveLevel(ctx context.Context, questionnaireID uuid.UUID, req LevelRequest) (*repo.AssessmentLevel, error)
	DeleteLevel(ctx context.Context, questionnaireID, levelID uuid.UUID) error
	BasicGroups(ctx context.Context, questionnaireID uuid.UUID) ([]BasicGroup, error)

	ListSubmissions(ctx context.Context, questionnaireID uuid.UUID, filter SubmissionFilter) ([]SubmissionSummary, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type service struct {
	db      *repo.Client
	rdb     *goredis.Client
	deriver groupkey.Deriver
	codes   codes.Config
	fillTTL time.Duration
}

func New(db *repo.Client, rdb *goredis.Client, deriver groupkey.Deriver, codesCfg codes.Config, fillTTL time.Duration) Service {
	return &service{
		db:      db,
		rdb:     rdb,
		deriver: deriver,
		codes:   codesCfg,
		fillTTL: fillTTL,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (qn *repo.Questionnaire, err error) {
	if req.Title == "" || req.Description == nil || *req.Description == "" {
		return nil, ErrTitleRequired
	}

	code, err := s.uniqueAccessCode(ctx)
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

	c := tx.Questionnaire.Create().
		SetTitle(req.Title).
		SetNillableDescription(req.Description).
		SetAccessCode(code).
		SetNillableParentID(req.ParentID)
	if req.ParentID != nil {
		// Sub-questionnaires are reachable only through branch rules, so
		// they go live together with their parent.
		c = c.SetIsPublished(true).SetStatus(entqn.StatusPublished)
	}
	qn, err = c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create questionnaire: %w", err)
	}

	if req.ParentID == nil {
		_, err = tx.Dimension.Create().
			SetQuestionnaireID(qn.ID).
			SetName(basicInfoDimensionName).
			SetWeight(0).
			SetIsBasicInfo(true).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create basic info dimension: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return qn, nil
}

func (s *service) List(ctx context.Context) ([]*repo.Questionnaire, error) {
	qns, err := s.db.Questionnaire.Query().
		Where(entqn.DeletedAtIsNil()).
		Order(entqn.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questionnaires: %w", err)
	}
	return qns, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) error {
	if req.Title == "" || req.Description == nil || *req.Description == "" {
		return ErrTitleRequired
	}
	qn, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	err = s.db.Questionnaire.UpdateOne(qn).
		SetTitle(req.Title).
		SetNillableDescription(req.Description).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update questionnaire: %w", err)
	}

	s.invalidateFill(ctx, qn.AccessCode)
	return nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	qn, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	err = s.db.Questionnaire.UpdateOne(qn).
		SetDeletedAt(time.Now()).
		SetIsPublished(false).
		SetStatus(entqn.StatusClosed).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete questionnaire: %w", err)
	}

	s.invalidateFill(ctx, qn.AccessCode)
	return nil
}

func (s *service) TogglePublish(ctx context.Context, id uuid.UUID) (*repo.Questionnaire, error) {
	qn, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.Questionnaire.UpdateOne(qn)
	if qn.AccessCode == nil || *qn.AccessCode == "" {
		code, err := s.uniqueAccessCode(ctx)
		if err != nil {
			return nil, err
		}
		upd = upd.SetAccessCode(code)
	}

	publishing := !qn.IsPublished
	upd = upd.SetIsPublished(publishing)
	if publishing {
		upd = upd.SetStatus(entqn.StatusPublished).SetPublishedAt(time.Now())
	} else {
		upd = upd.SetStatus(entqn.StatusDraft)
	}

	qn, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("toggle publish: %w", err)
	}

	s.invalidateFill(ctx, qn.AccessCode)
	return qn, nil
}

// get loads a live questionnaire by id.
func (s *service) get(ctx context.Context, id uuid.UUID) (*repo.Questionnaire, error) {
	qn, err := s.db.Questionnaire.Query().
		Where(entqn.ID(id), entqn.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get questionnaire: %w", err)
	}
	return qn, nil
}

// uniqueAccessCode generates an access code that no other questionnaire
// uses, retrying on the rare collision.
func (s *service) uniqueAccessCode(ctx context.Context) (string, error) {
	for i := 0; i < accessCodeAttempts; i++ {
		code, err := s.codes.Generate()
		if err != nil {
			return "", fmt.Errorf("generate access code: %w", err)
		}
		exists, err := s.db.Questionnaire.Query().
			Where(entqn.AccessCode(code)).
			Exist(ctx)
		if err != nil {
			return "", fmt.Errorf("check access code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not find a free access code after %d attempts", accessCodeAttempts)
}
