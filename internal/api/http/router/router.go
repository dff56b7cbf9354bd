package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/halouxiaoyu/survey_backend/config"
	"github.com/halouxiaoyu/survey_backend/internal/api/http/handler"
	"github.com/halouxiaoyu/survey_backend/internal/api/http/middleware"
	"github.com/halouxiaoyu/survey_backend/internal/service/auth"
	"github.com/halouxiaoyu/survey_backend/internal/service/branch"
	"github.com/halouxiaoyu/survey_backend/internal/service/questionnaire"
	"github.com/halouxiaoyu/survey_backend/internal/service/scoring"
	"github.com/halouxiaoyu/survey_backend/internal/service/stats"
	"github.com/halouxiaoyu/survey_backend/pkg/authorize"
	pasetotoken "github.com/halouxiaoyu/survey_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg              *config.Config
	Redis            *redis.Client
	Auth             authorize.IAuthorization
	AuthSvc          auth.Service
	QuestionnaireSvc questionnaire.Service
	ScoringSvc       scoring.Service
	BranchSvc        branch.Service
	StatsSvc         stats.Service
	PasetoMgr        *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	questionnaireH := handler.NewQuestionnaireHandler(r.p.QuestionnaireSvc)
	surveyH := handler.NewSurveyHandler(r.p.QuestionnaireSvc, r.p.ScoringSvc, r.p.BranchSvc)
	statsH := handler.NewStatsHandler(r.p.StatsSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerQuestionnaireRoutes(api, questionnaireH, authRequired, requirePerm)
	r.registerStatsRoutes(api, statsH, authRequired, requirePerm)
	r.registerSurveyRoutes(api, surveyH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
