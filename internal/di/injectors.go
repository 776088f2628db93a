//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"github.com/baileyYOKE/subway-deal-dash-sub000/internal"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/controllers"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/history"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/providers"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/services"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/store"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/structures"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/syncer"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		store.NewZstdCompressor,
		store.NewRedisStore,
		wire.Bind(new(store.DocumentStore), new(*store.RedisStore)),
		wire.Bind(new(store.SnapshotStore), new(*store.RedisStore)),
		store.NewDraftCache,

		history.NewManager,
		syncer.NewController,
		syncer.NewScheduler,

		services.NewEstimatorProvider,
		services.NewRosterService,

		controllers.NewRosterController,
		controllers.NewSyncController,
		controllers.NewHistoryController,
		controllers.NewMediaController,
		controllers.NewHealthController,

		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
