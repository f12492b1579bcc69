package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrConfigurationMissing is returned when a required setting has no value.
// It is fatal at startup.
var ErrConfigurationMissing = errors.New("configuration missing")

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"

	SchemePlaintext = "plaintext"
	SchemeBcrypt    = "bcrypt"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Log      LogConfig      `mapstructure:"log"`
	Gemini   GeminiConfig   `mapstructure:"gemini"`
	Session  SessionConfig  `mapstructure:"session"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Accounts AccountsConfig `mapstructure:"accounts"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`

	GoogleAPIKey string `mapstructure:"google_api_key"`
}

type AppConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type GeminiConfig struct {
	Model string `mapstructure:"model"`
}

type SessionConfig struct {
	Backend      string        `mapstructure:"backend"`
	TTL          time.Duration `mapstructure:"ttl"`
	CookieSecure bool          `mapstructure:"cookie_secure"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
}

type AccountsConfig struct {
	Backend string `mapstructure:"backend"`
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

type AuthConfig struct {
	PasswordScheme string `mapstructure:"password_scheme"`
}

// Load reads the optional TOML file and env overrides (prefix NLPAPP_).
// The API key is also read from GOOGLE_API_KEY.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("app.port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("gemini.model", "gemini-1.5-flash")
	v.SetDefault("session.backend", BackendMemory)
	v.SetDefault("session.ttl", 24*time.Hour)
	v.SetDefault("session.cookie_secure", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("accounts.backend", BackendMemory)
	v.SetDefault("database.dsn", "")
	v.SetDefault("auth.password_scheme", SchemePlaintext)
	v.SetDefault("google_api_key", "")

	v.SetConfigType("toml")
	if path := os.Getenv("NLPAPP_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath(".secrets")
	}

	v.SetEnvPrefix("NLPAPP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("google_api_key", "NLPAPP_GOOGLE_API_KEY", "GOOGLE_API_KEY"); err != nil {
		return Config{}, fmt.Errorf("config: bind env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks required values and backend names.
func (c Config) Validate() error {
	if strings.TrimSpace(c.GoogleAPIKey) == "" {
		return fmt.Errorf("%w: GOOGLE_API_KEY not set (env or config.toml)", ErrConfigurationMissing)
	}

	switch c.Session.Backend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("config: unknown session backend %q", c.Session.Backend)
	}

	switch c.Accounts.Backend {
	case BackendMemory:
	case BackendPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("%w: database.dsn required for postgres accounts", ErrConfigurationMissing)
		}
	default:
		return fmt.Errorf("config: unknown accounts backend %q", c.Accounts.Backend)
	}

	switch c.Auth.PasswordScheme {
	case SchemePlaintext, SchemeBcrypt:
	default:
		return fmt.Errorf("config: unknown password scheme %q", c.Auth.PasswordScheme)
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("config: session.ttl must be positive")
	}
	return nil
}
