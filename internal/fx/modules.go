package fx

import (
	"kicker-tracker/internal/api"
	"kicker-tracker/internal/config"
	"kicker-tracker/internal/database"
	"kicker-tracker/internal/logger"
	"kicker-tracker/internal/metrics"
	"kicker-tracker/internal/repository"
	"kicker-tracker/internal/server"
	"kicker-tracker/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func applyLogLevel(cfg *config.Config) {
	zerolog.SetGlobalLevel(logger.ParseLevel(cfg.LogLevel))
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Invoke(applyLogLevel),
	fx.Provide(metrics.New),
	fx.Provide(database.New),
	// repos
	fx.Provide(fx.Annotate(repository.NewLookupRepository, fx.As(new(service.LookupStore)))),
	// api client
	fx.Provide(fx.Annotate(api.NewSleeperClient, fx.As(new(service.SleeperAPI)))),
	// svc
	fx.Provide(fx.Annotate(service.NewKickerService, fx.As(new(server.KickerOrderService)))),
	// server
	fx.Provide(server.NewKickerServer),
)
