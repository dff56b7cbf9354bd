package questionnaire

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/halouxiaoyu/survey_backend/internal/repo"
	entdim "github.com/halouxiaoyu/survey_backend/internal/repo/dimension"
)

// ---------------------------------------------------------------------------
// Dimension management
// ---------------------------------------------------------------------------

type DimensionRequest struct {
	Name   string
	Weight float64
}

func (r DimensionRequest) validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: dimension name is required", ErrTitleRequired)
	}
	if r.Weight < 0 || r.Weight > 1000 || math.IsNaN(r.Weight) {
		return ErrInvalidWeight
	}
	return nil
}

func (s *service) AddDimension(ctx context.Context, questionnaireID uuid.UUID, req DimensionRequest) (*repo.Dimension, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	if _, err := s.get(ctx, questionnaireID); err != nil {
		return nil, err
	}

	dim, err := s.db.Dimension.Create().
		SetQuestionnaireID(questionnaireID).
		SetName(req.Name).
		SetWeight(roundWeight(req.Weight)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create dimension: %w", err)
	}

	s.invalidateFillByID(ctx, questionnaireID)
	return dim, nil
}

func (s *service) UpdateDimension(ctx context.Context, questionnaireID, dimensionID uuid.UUID, req DimensionRequest) error {
	if err := req.validate(); err != nil {
		return err
	}

	dim, err := s.getDimension(ctx, questionnaireID, dimensionID)
	if err != nil {
		return err
	}
	if dim.IsBasicInfo {
		return ErrBasicInfoReserved
	}

	err = s.db.Dimension.UpdateOne(dim).
		SetName(req.Name).
		SetWeight(roundWeight(req.Weight)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update dimension: %w", err)
	}

	s.invalidateFillByID(ctx, questionnaireID)
	return nil
}

func (s *service) DeleteDimension(ctx context.Context, questionnaireID, dimensionID uuid.UUID) error {
	dim, err := s.getDimension(ctx, questionnaireID, dimensionID)
	if err != nil {
		return err
	}
	if dim.IsBasicInfo {
		return ErrBasicInfoReserved
	}

	err = s.db.Dimension.UpdateOne(dim).
		SetDeletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete dimension: %w", err)
	}

	s.invalidateFillByID(ctx, questionnaireID)
	return nil
}

func (s *service) getDimension(ctx context.Context, questionnaireID, dimensionID uuid.UUID) (*repo.Dimension, error) {
	dim, err := s.db.Dimension.Query().
		Where(
			entdim.ID(dimensionID),
			entdim.QuestionnaireID(questionnaireID),
			entdim.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDimensionNotFound
		}
		return nil, fmt.Errorf("get dimension: %w", err)
	}
	return dim, nil
}

func roundWeight(w float64) float64 {
	return math.Round(w*100) / 100
}
