package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/halouxiaoyu/survey_backend/internal/api/http/handler"
	"github.com/halouxiaoyu/survey_backend/pkg/authorize"
)

func (r *Router) registerStatsRoutes(
	api fiber.Router,
	h *handler.StatsHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/questionnaires/:id", authRequired)

	statsGroup := group.Group("/stats", requirePerm(authorize.ResourceStats, authorize.ActionRead))
	statsGroup.Get("/overview", h.Overview)
	statsGroup.Get("/levels", h.LevelStats)
	statsGroup.Get("/basic-questions", h.BasicQuestions)
	statsGroup.Get("/level-by-basic/:questionID", h.LevelByBasic)

	group.Delete("/submissions/:submissionID", requirePerm(authorize.ResourceSubmission, authorize.ActionDelete), h.DeleteSubmission)
}
