package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/halouxiaoyu/survey_backend/internal/service/questionnaire"
	"github.com/halouxiaoyu/survey_backend/internal/service/scoring"
)

type QuestionnaireHandler struct {
	svc questionnaire.Service
}

func NewQuestionnaireHandler(svc questionnaire.Service) *QuestionnaireHandler {
	return &QuestionnaireHandler{svc: svc}
}

// ---------------------------------------------------------------------------
// Questionnaire CRUD
// ---------------------------------------------------------------------------

// POST /questionnaires
func (h *QuestionnaireHandler) Create(c fiber.Ctx) error {
	var body struct {
		Title       string     `json:"title"`
		Description *string    `json:"description"`
		ParentID    *uuid.UUID `json:"parent_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	qn, err := h.svc.Create(c.Context(), questionnaire.CreateRequest{
		Title:       body.Title,
		Description: body.Description,
		ParentID:    body.ParentID,
	})
	if err != nil {
		return mapQuestionnaireError(c, err)
	}
	return created(c, qn)
}

// GET /questionnaires
func (h *QuestionnaireHandler) List(c fiber.Ctx) error {
	qns, err := h.svc.List(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, qns)
}

// GET /questionnaires/:id
func (h *QuestionnaireHandler) Detail(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid questionnaire id")
	}

	detail, err := h.svc.Detail(c.Context(), id)
	if err != nil {
		return mapQuestionnaireError(c, err)
	}
	return ok(c, detail)
}

// PUT /questionnaires/:id
func (h *QuestionnaireHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid questionnaire id")
	}

	var body struct {
		Title       string  `json:"title"`
		Description *string `json:"description"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.Update(c.Context(), id, questionnaire.UpdateRequest{
		Title:       body.Title,
		Description: body.Description,
	}); err != nil {
		return mapQuestionnaireError(c, err)
	}
	return noContent(c)
}

// DELETE /questionnaires/:id
func (h *QuestionnaireHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid questionnaire id")
	}
	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapQuestionnaireError(c, err)
	}
	return noContent(c)
}

// POST /questionnaires/:id/toggle-publish
func (h *QuestionnaireHandler) TogglePublish(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid questionnaire id")
	}

	qn, err := h.svc.TogglePublish(c.Context(), id)
	if err != nil {
		return mapQuestionnaireError(c, err)
	}
	return ok(c, fiber.Map{
		"id":           qn.ID,
		"is_published": qn.IsPublished,
		"access_code":  qn.AccessCode,
	})
}

// ---------------------------------------------------------------------------
// Dimensions
// ---------------------------------------------------------------------------

// POST /questionnaires/:id/dimensions
func (h *QuestionnaireHandler) AddDimension(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid questionnaire id")
	}

	var body struct {
		Name   string  `json:"name"`
		Weight float64 `json:"weight"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	dim, err := h.svc.AddDimension(c.Context(), id, questionnaire.DimensionRequest{
		Name:   body.Name,
		Weight: body.Weight,
	})
	if err != nil {
		return mapQuestionnaireError(c, err)
	}
	return created(c, dim)
}

// PUT /questionnaires/:id/dimensions/:dimensionID
func (h *QuestionnaireHandler) UpdateDimension(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid questionnaire id")
	}
	dimID, err := uuid.Parse(c.Params("dimensionID"))
	if err != nil {
		return badRequest(c, "invalid dimension id")
	}

	var body struct {
		Name   string  `json:"name"`
		Weight float64 `json:"weight"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.UpdateDimension(c.Context(), id, dimID, questionnaire.DimensionRequest{
		Name:   body.Name,
		Weight: body.Weight,
	}); err != nil {
		return mapQuestionnaireError(c, err)
	}
	return noContent(c)
}

// DELETE /questionnaires/:id/dimensions/:dimensionID
func (h *QuestionnaireHandler) DeleteDimension(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid questionnaire id")
	}
	dimID, err := uuid.Parse(c.Params("dimensionID"))
	if err != nil {
		return badRequest(c, "invalid dimension id")
	}
	if err := h.svc.DeleteDimension(c.Context(), id, dimID); err != nil {
		return mapQuestionnaireError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapQuestionnaireError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, questionnaire.ErrNotFound),
		errors.Is(err, questionnaire.ErrDimensionNotFound),
		errors.Is(err, questionnaire.ErrQuestionNotFound),
		errors.Is(err, questionnaire.ErrLevelNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, questionnaire.ErrTitleRequired),
		errors.Is(err, questionnaire.ErrInvalidWeight):
		return badRequest(c, err.Error())
	case errors.Is(err, questionnaire.ErrQuestionHasLevels),
		errors.Is(err, questionnaire.ErrBasicInfoReserved),
		errors.Is(err, scoring.ErrOverlappingBand):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}
