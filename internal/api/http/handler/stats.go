package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/halouxiaoyu/survey_backend/internal/service/stats"
)

type StatsHandler struct {
	svc stats.Service
}

func NewStatsHandler(svc stats.Service) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// GET /questionnaires/:id/stats/overview
func (h *StatsHandler) Overview(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid questionnaire id")
	}

	ov, err := h.svc.Overview(c.Context(), id)
	if err != nil {
		return mapStatsError(c, err)
	}
	return ok(c, ov)
}

// GET /questionnaires/:id/stats/levels
func (h *StatsHandler) LevelStats(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid questionnaire id")
	}

	levels, err := h.svc.LevelStats(c.Context(), id)
	if err != nil {
		return mapStatsError(c, err)
	}
	return ok(c, levels)
}

// GET /questionnaires/:id/stats/basic-questions
//
// Returns only basic-info questions with branch rules configured; pass
// all=true for every basic-info question.
func (h *StatsHandler) BasicQuestions(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid questionnaire id")
	}

	branchOnly := c.Query("all") != "true"
	questions, err := h.svc.BasicQuestions(c.Context(), id, branchOnly)
	if err != nil {
		return mapStatsError(c, err)
	}
	return ok(c, questions)
}

// GET /questionnaires/:id/stats/level-by-basic/:questionID
func (h *StatsHandler) LevelByBasic(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid questionnaire id")
	}
	questionID, err := uuid.Parse(c.Params("questionID"))
	if err != nil {
		return badRequest(c, "invalid question id")
	}

	rows, err := h.svc.LevelByBasic(c.Context(), id, questionID)
	if err != nil {
		return mapStatsError(c, err)
	}
	return ok(c, rows)
}

// DELETE /questionnaires/:id/submissions/:submissionID
func (h *StatsHandler) DeleteSubmission(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid questionnaire id")
	}
	submissionID, err := uuid.Parse(c.Params("submissionID"))
	if err != nil {
		return badRequest(c, "invalid submission id")
	}

	if err := h.svc.DeleteSubmission(c.Context(), id, submissionID); err != nil {
		return mapStatsError(c, err)
	}
	return noContent(c)
}

func mapStatsError(c fiber.Ctx, err error) error {
	if errors.Is(err, stats.ErrNotFound) {
		return notFound(c, err.Error())
	}
	return internalError(c)
}
