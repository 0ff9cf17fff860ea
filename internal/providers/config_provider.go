package providers

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"os"
	"path/filepath"
	"scoreboard/internal/models"
	"scoreboard/internal/structures"
	"strings"
	"time"
)

const defaultLegacyBaseUrl = "https://nyt-puzzle-scoreboard-mbkd0jcgb-mike-winscotts-projects.vercel.app/api"

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	if err := loadDotEnv(flags.EnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	v.BindEnv("legacy.baseUrl", "SCOREBOARD_API_URL")
	v.BindEnv("supabase.url", "SUPABASE_URL", "NEXT_PUBLIC_SUPABASE_URL")
	v.BindEnv("supabase.anonKey", "SUPABASE_ANON_KEY", "NEXT_PUBLIC_SUPABASE_ANON_KEY")
	v.BindEnv("logger.level", "SCOREBOARD_LOG_LEVEL")
	v.BindEnv("logger.dir", "SCOREBOARD_LOG_DIR")
	v.BindEnv("http.timeout", "SCOREBOARD_HTTP_TIMEOUT")
	v.BindEnv("cache.enabled", "SCOREBOARD_CACHE_ENABLED")
	v.BindEnv("cache.size", "SCOREBOARD_CACHE_SIZE")
	v.BindEnv("metrics.textfile", "SCOREBOARD_METRICS_TEXTFILE")
	v.BindEnv("metrics.flushInterval", "SCOREBOARD_METRICS_FLUSH_INTERVAL")

	if flags.ConfigPath != "" {
		filename := filepath.Base(flags.ConfigPath)
		v.AddConfigPath(filepath.Dir(flags.ConfigPath))
		v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
		v.SetConfigType("yaml")

		err := v.ReadInConfig()
		var notFound viper.ConfigFileNotFoundError
		if err != nil && !errors.As(err, &notFound) {
			return nil, err
		}
	}

	err := v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = flags.AppName
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("legacy.baseUrl", defaultLegacyBaseUrl)
	v.SetDefault("supabase.url", "")
	v.SetDefault("supabase.anonKey", "")
	v.SetDefault("supabase.schema", "public")
	v.SetDefault("players", []string(models.DefaultRoster))
	v.SetDefault("http.timeout", 15*time.Second)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("logger.dir", "")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.size", 64)
	v.SetDefault("cache.ttl", time.Minute)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.textfile", "")
	v.SetDefault("metrics.flushInterval", 30*time.Second)
}

// loadDotEnv reads a .env file into the process environment. Variables
// already set win. Production deployments are expected to set env directly.
func loadDotEnv(path string) error {
	if os.Getenv("APP_ENV") == "production" {
		return nil
	}
	if path == "" {
		path = ".env"
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("unable to load env file %s: %w", path, err)
	}
	return nil
}
