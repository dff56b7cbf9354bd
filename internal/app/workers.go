package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/halouxiaoyu/survey_backend/internal/service/stats"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc       fx.Lifecycle
	NC       *nats.Conn
	StatsSvc stats.Service
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startStatsWorker(p.NC, p.StatsSvc)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// stats_worker
// ---------------------------------------------------------------------------

// startStatsWorker rebuilds the cached dashboard overview after every
// scored submission, so dashboard reads stay cheap under load.
func startStatsWorker(nc *nats.Conn, statsSvc stats.Service) {
	_, err := nc.Subscribe("survey.submission.scored.*", func(msg *nats.Msg) {
		parts := strings.Split(msg.Subject, ".")
		if len(parts) < 4 {
			return
		}
		questionnaireID, err := uuid.Parse(parts[3])
		if err != nil {
			return
		}

		ctx := context.Background()
		if _, err := statsSvc.RefreshOverview(ctx, questionnaireID); err != nil {
			slog.Warn("stats_worker: refresh overview failed",
				"questionnaire_id", questionnaireID, "err", err)
		}
	})
	if err != nil {
		slog.Error("stats_worker: subscribe submission.scored failed", "err", err)
	}

	slog.Info("stats_worker: started")
}
