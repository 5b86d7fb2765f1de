package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Session backends
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Assistant specifics
	Assistant AssistantConfig
	Session   SessionConfig
	Redis     RedisConfig

	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AssistantConfig tunes reply pacing and tip selection.
type AssistantConfig struct {
	ReplyDelay    time.Duration
	NavigateDelay time.Duration
	TipSeed       int64 // 0 seeds from the clock
}

// SessionConfig selects and bounds the transcript store.
type SessionConfig struct {
	Backend      string // memory or redis
	TTL          time.Duration
	MaxSessions  int
	HistoryLimit int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	RequestsPerMin int // 0 disables
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Assistant
	cfg.Assistant.ReplyDelay = viper.GetDuration("assistant.reply_delay")
	cfg.Assistant.NavigateDelay = viper.GetDuration("assistant.navigate_delay")
	cfg.Assistant.TipSeed = viper.GetInt64("assistant.tip_seed")

	// Session store
	cfg.Session.Backend = strings.ToLower(viper.GetString("session.backend"))
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.HistoryLimit = viper.GetInt("session.history_limit")

	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = expandEnvVar(viper.GetString("redis.password"))
	cfg.Redis.DB = viper.GetInt("redis.db")
	if redisAddr := viper.GetString("redis_url"); redisAddr != "" {
		cfg.Redis.Addr = redisAddr
	}

	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("assistant.reply_delay", "1s")
	viper.SetDefault("assistant.navigate_delay", "1500ms")
	viper.SetDefault("assistant.tip_seed", 0)

	viper.SetDefault("session.backend", SessionBackendMemory)
	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("session.max_sessions", 10000)
	viper.SetDefault("session.history_limit", 0)

	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("rate_limit.requests_per_min", 60)
}

func validate(cfg *Config) error {
	switch cfg.Session.Backend {
	case SessionBackendMemory:
	case SessionBackendRedis:
		if cfg.Redis.Addr == "" {
			return fmt.Errorf("session.backend is redis but redis.addr is empty")
		}
	default:
		return fmt.Errorf("unknown session.backend %q (want memory or redis)", cfg.Session.Backend)
	}

	if cfg.Assistant.ReplyDelay < 0 || cfg.Assistant.NavigateDelay < 0 {
		return fmt.Errorf("assistant delays must not be negative")
	}
	if cfg.Session.HistoryLimit < 0 {
		return fmt.Errorf("session.history_limit must not be negative")
	}
	if cfg.RateLimit.RequestsPerMin < 0 {
		return fmt.Errorf("rate_limit.requests_per_min must not be negative")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}
