package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/halouxiaoyu/survey_backend/internal/service/branch"
	"github.com/halouxiaoyu/survey_backend/internal/service/questionnaire"
	"github.com/halouxiaoyu/survey_backend/internal/service/scoring"
)

// SurveyHandler serves the unauthenticated respondent flow: loading a
// questionnaire by access code, submitting answers, reading results,
// and resolving branch rules.
type SurveyHandler struct {
	fillSvc    questionnaire.Service
	scoringSvc scoring.Service
	branchSvc  branch.Service
}

func NewSurveyHandler(fillSvc questionnaire.Service, scoringSvc scoring.Service, branchSvc branch.Service) *SurveyHandler {
	return &SurveyHandler{
		fillSvc:    fillSvc,
		scoringSvc: scoringSvc,
		branchSvc:  branchSvc,
	}
}

// GET /fill/:accessCode
func (h *SurveyHandler) Fill(c fiber.Ctx) error {
	code := c.Params("accessCode")
	if code == "" {
		return badRequest(c, "access code is required")
	}

	detail, err := h.fillSvc.Fill(c.Context(), code)
	if err != nil {
		if errors.Is(err, questionnaire.ErrNotFound) {
			return notFound(c, "questionnaire not found")
		}
		return internalError(c)
	}
	return ok(c, detail)
}

// POST /fill/:accessCode/submit
func (h *SurveyHandler) Submit(c fiber.Ctx) error {
	code := c.Params("accessCode")
	if code == "" {
		return badRequest(c, "access code is required")
	}

	var body struct {
		Answers []scoring.RawAnswer `json:"answers"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	result, err := h.scoringSvc.Score(c.Context(), code, body.Answers)
	if err != nil {
		return mapScoringError(c, err)
	}
	return created(c, result)
}

// GET /results/:submissionID
func (h *SurveyHandler) Result(c fiber.Ctx) error {
	submissionID, err := uuid.Parse(c.Params("submissionID"))
	if err != nil {
		return badRequest(c, "invalid submission id")
	}

	result, err := h.scoringSvc.Result(c.Context(), submissionID)
	if err != nil {
		return mapScoringError(c, err)
	}
	return ok(c, result)
}

// GET /branch?question_id=&option_id=
func (h *SurveyHandler) ResolveBranch(c fiber.Ctx) error {
	questionID, err := uuid.Parse(c.Query("question_id"))
	if err != nil {
		return badRequest(c, "invalid question_id")
	}
	optionID, err := uuid.Parse(c.Query("option_id"))
	if err != nil {
		return badRequest(c, "invalid option_id")
	}

	res, err := h.branchSvc.Resolve(c.Context(), questionID, optionID)
	if err != nil {
		if errors.Is(err, branch.ErrInvalidArgs) {
			return badRequest(c, err.Error())
		}
		return internalError(c)
	}
	if res == nil {
		return ok(c, nil)
	}
	return ok(c, res)
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapScoringError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, scoring.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, scoring.ErrMissingField),
		errors.Is(err, scoring.ErrEmptyAnswer),
		errors.Is(err, scoring.ErrInvalidOption):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}
