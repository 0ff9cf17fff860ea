package internal

import (
	"scoreboard/internal/controllers"
	"scoreboard/internal/providers"
)

func InitLegacyMenu(controller *controllers.LegacyController) providers.MenuProviderInterface {
	menu := providers.NewMenuProvider()

	menu.Add("View month scores", controller.ViewScores)
	menu.Add("Update a score", controller.UpdateScore)
	menu.Add("Archive a month", controller.ArchiveMonth)
	menu.Exit("Exit")
	return menu
}

func InitSupabaseMenu(controller *controllers.SupabaseController) providers.MenuProviderInterface {
	menu := providers.NewMenuProvider()

	menu.Add("View month scores", controller.ViewScores)
	menu.Add("View an archived month", controller.ViewArchive)
	menu.Add("Archive a month", controller.ArchiveMonth)
	menu.Exit("Exit")
	return menu
}
