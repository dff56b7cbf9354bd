package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/halouxiaoyu/survey_backend/internal/api/http/handler"
)

// Respondent-facing routes; no authentication, the access code is the
// only credential.
func (r *Router) registerSurveyRoutes(api fiber.Router, h *handler.SurveyHandler) {
	api.Get("/fill/:accessCode", h.Fill)
	api.Post("/fill/:accessCode/submit", h.Submit)
	api.Get("/results/:submissionID", h.Result)
	api.Get("/branch", h.ResolveBranch)
}
