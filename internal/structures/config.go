package structures

import "time"

type LegacyConfig struct {
	BaseUrl string `yaml:"baseUrl" validate:"required|fullUrl"`
}

type SupabaseConfig struct {
	Url     string `yaml:"url"`
	AnonKey string `yaml:"anonKey"`
	Schema  string `yaml:"schema" validate:"required"`
}

type HttpConfig struct {
	Timeout time.Duration `yaml:"timeout" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"uint"`
	Dir   string `yaml:"dir" validate:"unixPath"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled       bool          `yaml:"enabled"`
	Textfile      string        `yaml:"textfile"`
	FlushInterval time.Duration `yaml:"flushInterval"`
}

type Config struct {
	AppName  string
	Debug    bool
	Path     string
	Legacy   LegacyConfig   `yaml:"legacy"`
	Supabase SupabaseConfig `yaml:"supabase"`
	Players  []string       `yaml:"players" validate:"required|minLen:1"`
	Http     HttpConfig     `yaml:"http"`
	Logger   LoggerConfig   `yaml:"logger"`
	Cache    CacheConfig    `yaml:"cache"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// SupabaseCredentials are the resolved connection settings for the
// Supabase client. Building them fails when either value is missing.
type SupabaseCredentials struct {
	RestUrl string
	ApiKey  string
	Schema  string
}
