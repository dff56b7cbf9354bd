package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/halouxiaoyu/survey_backend/internal/api/http/handler"
	"github.com/halouxiaoyu/survey_backend/pkg/authorize"
)

func (r *Router) registerQuestionnaireRoutes(
	api fiber.Router,
	h *handler.QuestionnaireHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	qns := api.Group("/questionnaires", authRequired)

	qns.Get("/", requirePerm(authorize.ResourceQuestionnaire, authorize.ActionList), h.List)
	qns.Post("/", requirePerm(authorize.ResourceQuestionnaire, authorize.ActionCreate), h.Create)

	one := qns.Group("/:id")
	one.Get("/", requirePerm(authorize.ResourceQuestionnaire, authorize.ActionRead), h.Detail)
	one.Put("/", requirePerm(authorize.ResourceQuestionnaire, authorize.ActionUpdate), h.Update)
	one.Delete("/", requirePerm(authorize.ResourceQuestionnaire, authorize.ActionDelete), h.Delete)
	one.Post("/toggle-publish", requirePerm(authorize.ResourceQuestionnaire, authorize.ActionPublish), h.TogglePublish)

	one.Post("/dimensions", requirePerm(authorize.ResourceDimension, authorize.ActionManage), h.AddDimension)
	one.Put("/dimensions/:dimensionID", requirePerm(authorize.ResourceDimension, authorize.ActionManage), h.UpdateDimension)
	one.Delete("/dimensions/:dimensionID", requirePerm(authorize.ResourceDimension, authorize.ActionManage), h.DeleteDimension)

	one.Post("/questions", requirePerm(authorize.ResourceQuestion, authorize.ActionManage), h.AddQuestion)
	one.Post("/questions/reorder", requirePerm(authorize.ResourceQuestion, authorize.ActionManage), h.ReorderQuestions)
	one.Put("/questions/:questionID", requirePerm(authorize.ResourceQuestion, authorize.ActionManage), h.UpdateQuestion)
	one.Delete("/questions/:questionID", requirePerm(authorize.ResourceQuestion, authorize.ActionManage), h.DeleteQuestion)

	one.Get("/levels", requirePerm(authorize.ResourceAssessmentLevel, authorize.ActionManage), h.ListLevels)
	one.Post("/levels", requirePerm(authorize.ResourceAssessmentLevel, authorize.ActionManage), h.SaveLevel)
	one.Delete("/levels/:levelID", requirePerm(authorize.ResourceAssessmentLevel, authorize.ActionManage), h.DeleteLevel)
	one.Get("/basic-groups", requirePerm(authorize.ResourceAssessmentLevel, authorize.ActionManage), h.BasicGroups)

	one.Get("/submissions", requirePerm(authorize.ResourceSubmission, authorize.ActionList), h.ListSubmissions)
}
