package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type RedisConfig struct {
	Addr      string `yaml:"addr" validate:"required"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"keyPrefix" validate:"required"`
}

type SyncConfig struct {
	DraftCachePath string        `yaml:"draftCachePath" validate:"required|unixPath"`
	FlushInterval  time.Duration `yaml:"flushInterval" validate:"required|min:1"`
	PollInterval   time.Duration `yaml:"pollInterval" validate:"required|min:1"`
}

type HistoryConfig struct {
	Cap int `yaml:"cap" validate:"required|min:1"`
}

type EstimatorConfig struct {
	Seed int64 `yaml:"seed"`
}

type MediaConfig struct {
	BaseURL       string        `yaml:"baseUrl"`
	SigningSecret string        `yaml:"signingSecret"`
	URLTTL        time.Duration `yaml:"urlTtl"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server          `yaml:"webServer"`
	Redis     RedisConfig     `yaml:"redis"`
	Sync      SyncConfig      `yaml:"sync"`
	History   HistoryConfig   `yaml:"history"`
	Estimator EstimatorConfig `yaml:"estimator"`
	Media     MediaConfig     `yaml:"media"`
	Logger    LoggerConfig    `yaml:"logger"`
	Cache     CacheConfig     `yaml:"cache"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}
