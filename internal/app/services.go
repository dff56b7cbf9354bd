package app

import (
	"time"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/halouxiaoyu/survey_backend/config"
	"github.com/halouxiaoyu/survey_backend/internal/repo"
	"github.com/halouxiaoyu/survey_backend/internal/service/auth"
	"github.com/halouxiaoyu/survey_backend/internal/service/branch"
	"github.com/halouxiaoyu/survey_backend/internal/service/questionnaire"
	"github.com/halouxiaoyu/survey_backend/internal/service/scoring"
	"github.com/halouxiaoyu/survey_backend/internal/service/stats"
	"github.com/halouxiaoyu/survey_backend/pkg/groupkey"
	pasetotoken "github.com/halouxiaoyu/survey_backend/pkg/paseto"
	"github.com/halouxiaoyu/survey_backend/pkg/util/codes"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvideQuestionnaireService,
		ProvideScoringService,
		ProvideBranchService,
		ProvideStatsService,
		ProvidePasetoManager,
	),
)

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, paseto, cfg)
}

func ProvideQuestionnaireService(db *repo.Client, rdb *redis.Client, deriver groupkey.Deriver, cfg *config.Config) questionnaire.Service {
	return questionnaire.New(
		db,
		rdb,
		deriver,
		codes.FromCentralConfig(cfg.Codes),
		time.Duration(cfg.Survey.FillCacheTTLMinutes)*time.Minute,
	)
}

func ProvideScoringService(db *repo.Client, nc *nats.Conn, deriver groupkey.Deriver, cfg *config.Config) scoring.Service {
	return scoring.New(db, nc, deriver, cfg.Survey.GroupMarkers)
}

func ProvideBranchService(db *repo.Client) branch.Service {
	return branch.New(db)
}

func ProvideStatsService(db *repo.Client, rdb *redis.Client, cfg *config.Config) stats.Service {
	return stats.New(db, rdb, time.Duration(cfg.Survey.StatsCacheTTLMinutes)*time.Minute)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
