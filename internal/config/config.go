// README: Config loader over env (and an optional .env file) for HTTP, logging, theme, Redis limiter, and AI provider settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingCredential = errors.New("missing AI provider credential")
	ErrUnknownProvider   = errors.New("unknown AI provider")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

const (
	ThemeClassic = "classic"
	ThemeNeon    = "neon"
)

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

type AIConfig struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	Timeout     time.Duration
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Log struct {
		Level  string
		Format string
	}
	UI struct {
		Theme string
	}
	Redis struct {
		Addr string
	}
	RateLimit RateLimitConfig
	AI        AIConfig
}

// credentialEnv lists the provider-specific key names consulted after TRIP_AI_API_KEY.
var credentialEnv = map[string]string{
	"groq":   "GROQ_API_KEY",
	"openai": "OPENAI_API_KEY",
	"gemini": "GEMINI_API_KEY",
}

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("TRIP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("theme", ThemeClassic)
	v.SetDefault("redis.addr", "")
	v.SetDefault("rate_limit.requests", 20)
	v.SetDefault("rate_limit.window", time.Minute)
	v.SetDefault("ai.provider", "groq")
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.model", "")
	v.SetDefault("ai.base_url", "")
	v.SetDefault("ai.temperature", 0.0)
	v.SetDefault("ai.timeout", 30*time.Second)
	return v
}

func FromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.Log.Level = strings.ToLower(v.GetString("log.level"))
	cfg.Log.Format = strings.ToLower(v.GetString("log.format"))
	cfg.UI.Theme = strings.ToLower(strings.TrimSpace(v.GetString("theme")))
	cfg.Redis.Addr = v.GetString("redis.addr")
	cfg.RateLimit.Requests = v.GetInt("rate_limit.requests")
	cfg.RateLimit.Window = v.GetDuration("rate_limit.window")

	cfg.AI.Provider = strings.ToLower(strings.TrimSpace(v.GetString("ai.provider")))
	cfg.AI.Model = v.GetString("ai.model")
	cfg.AI.BaseURL = v.GetString("ai.base_url")
	cfg.AI.Temperature = v.GetFloat64("ai.temperature")
	cfg.AI.Timeout = v.GetDuration("ai.timeout")

	fallback, ok := credentialEnv[cfg.AI.Provider]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.AI.Provider)
	}
	cfg.AI.APIKey = strings.TrimSpace(v.GetString("ai.api_key"))
	if cfg.AI.APIKey == "" {
		cfg.AI.APIKey = strings.TrimSpace(os.Getenv(fallback))
	}
	if cfg.AI.APIKey == "" {
		return Config{}, fmt.Errorf("%w: set TRIP_AI_API_KEY or %s", ErrMissingCredential, fallback)
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.UI.Theme != ThemeClassic && cfg.UI.Theme != ThemeNeon {
		return fmt.Errorf("%w: theme %q", ErrInvalidConfig, cfg.UI.Theme)
	}
	if cfg.AI.Timeout <= 0 {
		return fmt.Errorf("%w: ai timeout must be positive", ErrInvalidConfig)
	}
	if cfg.Redis.Addr != "" && (cfg.RateLimit.Requests < 1 || cfg.RateLimit.Window <= 0) {
		return fmt.Errorf("%w: rate limit needs positive requests and window", ErrInvalidConfig)
	}
	return nil
}

// StyleForTheme maps a UI theme to the adjective used in the itinerary prompt.
func StyleForTheme(theme string) string {
	if theme == ThemeNeon {
		return "futuristic-styled"
	}
	return "well-organized"
}

// RateLimitEnabled reports whether a Redis address was configured.
func (c Config) RateLimitEnabled() bool {
	return c.Redis.Addr != ""
}
