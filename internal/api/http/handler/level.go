package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/halouxiaoyu/survey_backend/internal/service/questionnaire"
)

// ---------------------------------------------------------------------------
// Assessment levels
// ---------------------------------------------------------------------------

// GET /questionnaires/:id/levels?group_key=...
func (h *QuestionnaireHandler) ListLevels(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid questionnaire id")
	}

	var groupKey *string
	if gk := c.Query("group_key"); gk != "" {
		groupKey = &gk
	}

	levels, err := h.svc.ListLevels(c.Context(), id, groupKey)
	if err != nil {
		return mapQuestionnaireError(c, err)
	}
	return ok(c, levels)
}

// POST /questionnaires/:id/levels
//
// Carries an optional id to update an existing band in place.
func (h *QuestionnaireHandler) SaveLevel(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid questionnaire id")
	}

	var body struct {
		ID          *uuid.UUID `json:"id"`
		Name        string     `json:"name"`
		MinScore    float64    `json:"min_score"`
		MaxScore    float64    `json:"max_score"`
		Opinion     string     `json:"opinion"`
		GroupKey    *string    `json:"group_key"`
		DimensionID *uuid.UUID `json:"dimension_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	level, err := h.svc.SaveLevel(c.Context(), id, questionnaire.LevelRequest{
		ID:          body.ID,
		Name:        body.Name,
		MinScore:    body.MinScore,
		MaxScore:    body.MaxScore,
		Opinion:     body.Opinion,
		GroupKey:    body.GroupKey,
		DimensionID: body.DimensionID,
	})
	if err != nil {
		return mapQuestionnaireError(c, err)
	}
	return ok(c, level)
}

// DELETE /questionnaires/:id/levels/:levelID
func (h *QuestionnaireHandler) DeleteLevel(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid questionnaire id")
	}
	levelID, err := uuid.Parse(c.Params("levelID"))
	if err != nil {
		return badRequest(c, "invalid level id")
	}

	if err := h.svc.DeleteLevel(c.Context(), id, levelID); err != nil {
		return mapQuestionnaireError(c, err)
	}
	return noContent(c)
}

// GET /questionnaires/:id/basic-groups
func (h *QuestionnaireHandler) BasicGroups(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid questionnaire id")
	}

	groups, err := h.svc.BasicGroups(c.Context(), id)
	if err != nil {
		return mapQuestionnaireError(c, err)
	}
	return ok(c, groups)
}

// GET /questionnaires/:id/submissions?question_id=&option_id=&text_value=
func (h *QuestionnaireHandler) ListSubmissions(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid questionnaire id")
	}

	var filter questionnaire.SubmissionFilter
	if qid := c.Query("question_id"); qid != "" {
		parsed, err := uuid.Parse(qid)
		if err != nil {
			return badRequest(c, "invalid question_id")
		}
		filter.QuestionID = &parsed
	}
	if oid := c.Query("option_id"); oid != "" {
		parsed, err := uuid.Parse(oid)
		if err != nil {
			return badRequest(c, "invalid option_id")
		}
		filter.OptionID = &parsed
	}
	if tv := c.Query("text_value"); tv != "" {
		filter.TextValue = &tv
	}

	subs, err := h.svc.ListSubmissions(c.Context(), id, filter)
	if err != nil {
		return mapQuestionnaireError(c, err)
	}
	return ok(c, subs)
}
