// Package config loads runtime configuration with Viper: environment
// variables and an optional .env file, with defaults for every key.
// Trimmed from the teacher's config.go down to the sections this engine
// actually uses -- server, Redis cache, CORS, rate limiting, logging,
// and the engine's own default AEM-COM settings.
package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"

	"groupahpdss/internal/domain"
)

type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
	Engine    EngineConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type RedisConfig struct {
	URL string
	TTL int // seconds
}

type CORSConfig struct {
	Origins []string
}

type RateLimitConfig struct {
	Requests int
	Window   string
}

type LoggingConfig struct {
	Level  string
	Format string
}

// EngineConfig carries the engine's default AEM-COM settings. ApplyDefaults
// uses Permissibility, MaxIterations and InitialMode; StrictDecrease is
// loaded but not applied.
type EngineConfig struct {
	Permissibility float64
	MaxIterations  int
	InitialMode    string
	StrictDecrease bool
}

// Load initializes Viper, reads an optional .env file plus the process
// environment, and builds a Config from the merged result.
func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("warning: .env file not found, using environment variables and defaults")
		} else {
			log.Printf("error reading config file: %v", err)
		}
	} else {
		log.Printf("using config file: %s", viper.ConfigFileUsed())
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("PORT"),
			Host: viper.GetString("HOST"),
		},
		Redis: RedisConfig{
			URL: viper.GetString("REDIS_URL"),
			TTL: viper.GetInt("REDIS_CACHE_TTL_SECONDS"),
		},
		CORS: CORSConfig{
			Origins: viper.GetStringSlice("CORS_ORIGINS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Window:   viper.GetString("RATE_LIMIT_WINDOW"),
		},
		Logging: LoggingConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		Engine: EngineConfig{
			Permissibility: viper.GetFloat64("ENGINE_PERMISSIBILITY"),
			MaxIterations:  viper.GetInt("ENGINE_MAX_ITERATIONS"),
			InitialMode:    viper.GetString("ENGINE_INITIAL_MODE"),
			StrictDecrease: viper.GetBool("ENGINE_STRICT_DECREASE"),
		},
	}
}

func setDefaults() {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("GIN_MODE", "release")

	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("REDIS_CACHE_TTL_SECONDS", 600)

	viper.SetDefault("CORS_ORIGINS", []string{"*"})

	viper.SetDefault("RATE_LIMIT_REQUESTS", 60)
	viper.SetDefault("RATE_LIMIT_WINDOW", "1m")

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")

	viper.SetDefault("ENGINE_PERMISSIBILITY", 0.2)
	viper.SetDefault("ENGINE_MAX_ITERATIONS", 100)
	viper.SetDefault("ENGINE_INITIAL_MODE", string(domain.ModeAIJ))
	viper.SetDefault("ENGINE_STRICT_DECREASE", true)
}

// ApplyDefaults fills in a non-positive permissibility or max_iterations
// and an empty initial_mode from the engine's configured defaults, so an
// input document may omit them. strict_decrease and apply_to are left as
// the document gives them; an omitted strict_decrease reads as false.
func (c *Config) ApplyDefaults(settings *domain.AemComSettings) {
	if settings.Permissibility <= 0 {
		settings.Permissibility = c.Engine.Permissibility
	}
	if settings.MaxIterations <= 0 {
		settings.MaxIterations = c.Engine.MaxIterations
	}
	if settings.InitialMode == "" {
		settings.InitialMode = domain.InitialMode(c.Engine.InitialMode)
	}
}
