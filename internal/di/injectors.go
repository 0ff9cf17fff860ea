//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"scoreboard/internal"
	"scoreboard/internal/controllers"
	"scoreboard/internal/providers"
	"scoreboard/internal/services"
	"scoreboard/internal/structures"
)

func InitLegacyApp(flags *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		ambientSet,
		services.NewLegacyScoreService,
		controllers.NewLegacyController,
		internal.InitLegacyMenu,
	)

	return nil, nil
}

func InitSupabaseApp(flags *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		ambientSet,
		providers.NewSupabaseCredentials,
		services.NewArchiveStore,
		services.NewSupabaseScoreService,
		controllers.NewSupabaseController,
		internal.InitSupabaseMenu,
	)

	return nil, nil
}
