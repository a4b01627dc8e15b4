package validation

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/validcool/pkg/config"
	"github.com/dmitrymomot/validcool/pkg/environment"
	"github.com/dmitrymomot/validcool/pkg/logger"
)

// EnvPrefix namespaces the environment variables read by LoadConfig.
const EnvPrefix = "VALIDATION_"

// Config holds engine settings read from the environment.
type Config struct {
	LogFailures bool   `env:"LOG_FAILURES" envDefault:"false"`
	Parallelism int    `env:"PARALLELISM" envDefault:"0"`
	Environment string `env:"ENV" envDefault:"development"`
	Service     string `env:"SERVICE" envDefault:"validcool"`
	LogLevel    string `env:"LOG_LEVEL"`
}

// Validate reports settings the engine cannot start with.
func (c Config) Validate() error {
	if c.LogLevel != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return fmt.Errorf("%w: log level %q: %w", ErrInvalidConfig, c.LogLevel, err)
		}
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("%w: parallelism %d is negative", ErrInvalidConfig, c.Parallelism)
	}
	return nil
}

// LoadConfig reads Config from VALIDATION_* variables and any .env files
// requested through opts. Values that parse but are unusable, such as an
// unknown log level, are reported as config.ErrParsingConfig.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	opts = append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Join(config.ErrParsingConfig, err)
	}
	return cfg, nil
}

// NewFromConfig builds an engine from cfg. The logger and the engine
// environment follow cfg.Environment; opts are applied afterwards and take
// precedence.
func NewFromConfig(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := logger.New(
		logger.WithEnvironment(cfg.Environment, cfg.Service),
		logger.WithLevelName(cfg.LogLevel),
	)
	base := []Option{
		WithLogger(log),
		WithLogging(cfg.LogFailures),
		WithParallelism(cfg.Parallelism),
		WithEnvironment(environment.Parse(cfg.Environment)),
	}
	return New(append(base, opts...)...), nil
}
