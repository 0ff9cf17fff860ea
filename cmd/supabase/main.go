package main

import (
	"github.com/rs/zerolog/log"
	"os"
	"scoreboard/internal/di"
	"scoreboard/internal/structures"
	"strconv"
)

func main() {
	debug, _ := strconv.ParseBool(os.Getenv("SCOREBOARD_DEBUG"))
	flags := &structures.CliFlags{
		AppName:    "ScoreboardSupabaseClient",
		ConfigPath: getEnv("SCOREBOARD_CONFIG", "config.yaml"),
		EnvFile:    os.Getenv("SCOREBOARD_ENV_FILE"),
		DebugMode:  debug,
	}

	app, err := di.InitSupabaseApp(flags)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to start")
	}
	if err = app.Start(); err != nil {
		log.Fatal().Err(err).Msg("exited with error")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
