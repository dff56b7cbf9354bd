package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/halouxiaoyu/survey_backend/internal/service/questionnaire"
)

// ---------------------------------------------------------------------------
// Questions
// ---------------------------------------------------------------------------

type questionBody struct {
	Text        string     `json:"text"`
	Type        string     `json:"type"`
	DimensionID *uuid.UUID `json:"dimension_id"`
	IsGrouping  bool       `json:"is_grouping"`
	Multiline   bool       `json:"multiline"`
	InputRows   int        `json:"input_rows"`
	InputType   *string    `json:"input_type"`
	Options     []struct {
		Text    string   `json:"text"`
		Value   *float64 `json:"value"`
		IsOther bool     `json:"is_other"`
	} `json:"options"`
	BranchRules []struct {
		OptionIndex         int       `json:"option_index"`
		NextQuestionnaireID uuid.UUID `json:"next_questionnaire_id"`
	} `json:"branch_rules"`
}

func (b questionBody) toRequest() questionnaire.QuestionRequest {
	req := questionnaire.QuestionRequest{
		Text:        b.Text,
		Type:        b.Type,
		DimensionID: b.DimensionID,
		IsGrouping:  b.IsGrouping,
		Multiline:   b.Multiline,
		InputRows:   b.InputRows,
		InputType:   b.InputType,
	}
	for _, o := range b.Options {
		req.Options = append(req.Options, questionnaire.OptionInput{
			Text:    o.Text,
			Value:   o.Value,
			IsOther: o.IsOther,
		})
	}
	for _, r := range b.BranchRules {
		req.BranchRules = append(req.BranchRules, questionnaire.BranchRuleInput{
			OptionIndex:         r.OptionIndex,
			NextQuestionnaireID: r.NextQuestionnaireID,
		})
	}
	return req
}

// POST /questionnaires/:id/questions
func (h *QuestionnaireHandler) AddQuestion(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid questionnaire id")
	}

	var body questionBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	q, err := h.svc.AddQuestion(c.Context(), id, body.toRequest())
	if err != nil {
		return mapQuestionnaireError(c, err)
	}
	return created(c, q)
}

// PUT /questionnaires/:id/questions/:questionID
func (h *QuestionnaireHandler) UpdateQuestion(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid questionnaire id")
	}
	questionID, err := uuid.Parse(c.Params("questionID"))
	if err != nil {
		return badRequest(c, "invalid question id")
	}

	var body questionBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.UpdateQuestion(c.Context(), id, questionID, body.toRequest()); err != nil {
		return mapQuestionnaireError(c, err)
	}
	return noContent(c)
}

// DELETE /questionnaires/:id/questions/:questionID
func (h *QuestionnaireHandler) DeleteQuestion(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid questionnaire id")
	}
	questionID, err := uuid.Parse(c.Params("questionID"))
	if err != nil {
		return badRequest(c, "invalid question id")
	}

	if err := h.svc.DeleteQuestion(c.Context(), id, questionID); err != nil {
		return mapQuestionnaireError(c, err)
	}
	return noContent(c)
}

// POST /questionnaires/:id/questions/reorder
func (h *QuestionnaireHandler) ReorderQuestions(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid questionnaire id")
	}

	var body struct {
		Orders []questionnaire.ReorderItem `json:"orders"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if len(body.Orders) == 0 {
		return badRequest(c, "orders is required")
	}

	if err := h.svc.ReorderQuestions(c.Context(), id, body.Orders); err != nil {
		return mapQuestionnaireError(c, err)
	}
	return noContent(c)
}
