package di

import (
	wire "github.com/google/wire"
	"scoreboard/internal"
	"scoreboard/internal/console"
	"scoreboard/internal/providers"
	"scoreboard/internal/scheduler"
)

// ambientSet is shared by both clients.
var ambientSet = wire.NewSet(
	providers.NewConfigProvider,
	providers.NewLogProvider,
	providers.NewMetricsProvider,
	providers.NewInstrumentedCacheProvider,
	providers.NewHttpClient,
	console.NewStdPrompter,
	scheduler.NewScheduler,
	internal.NewApp,
)
