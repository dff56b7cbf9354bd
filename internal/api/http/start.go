package http

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/halouxiaoyu/survey_backend/config"
	"github.com/halouxiaoyu/survey_backend/internal/api/http/router"
	"github.com/halouxiaoyu/survey_backend/internal/app"
)

func Start(cfg *config.Config, timeout time.Duration) {
	fx.New(
		fx.Supply(cfg),
		app.InfraModule,
		app.ServiceModule,
		app.WorkerModule,
		router.Module,
		Module, // the http.Module from server.go

		// Invoke *fiber.App so the server is actually constructed and
		// its OnStart hook fires.
		fx.Invoke(func(*fiber.App) {}),

		fx.StopTimeout(timeout),
	).Run()
}
