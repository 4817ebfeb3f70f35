package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

const DefaultInferenceBaseURL = "https://api-inference.huggingface.co/models"

// Config is sourced from the process environment. The API key is optional at
// startup; requests fail with a configuration error while it is unset.
type Config struct {
	APIKey             string        `env:"HUGGING_FACE_API_KEY"`
	ListenAddr         string        `env:"LISTEN_ADDR" envDefault:":8080"`
	InferenceBaseURL   string        `env:"INFERENCE_BASE_URL" envDefault:"https://api-inference.huggingface.co/models"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat          string        `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the configuration from the given variables instead of the
// process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parsing env config: %w", err)
	}

	switch cfg.LogFormat {
	case "json", "console":
	default:
		return Config{}, fmt.Errorf("invalid LOG_FORMAT %q: want json or console", cfg.LogFormat)
	}

	return cfg, nil
}
