package validation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validcool/pkg/config"
	"github.com/dmitrymomot/validcool/pkg/environment"
	"github.com/dmitrymomot/validcool/pkg/validation"
	"github.com/dmitrymomot/validcool/pkg/validator"
)

// Not parallel: mutates process environment.
func TestLoadConfig(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	t.Setenv("VALIDATION_LOG_FAILURES", "true")
	t.Setenv("VALIDATION_PARALLELISM", "3")
	t.Setenv("VALIDATION_ENV", "prod")
	t.Setenv("VALIDATION_SERVICE", "billing")
	t.Setenv("VALIDATION_LOG_LEVEL", "warn")

	cfg, err := validation.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, validation.Config{
		LogFailures: true,
		Parallelism: 3,
		Environment: "prod",
		Service:     "billing",
		LogLevel:    "warn",
	}, cfg)

	eng, err := validation.NewFromConfig(cfg)
	require.NoError(t, err)
	assert.True(t, eng.IsLogging())
	assert.Equal(t, 3, eng.Parallelism())
	assert.Equal(t, environment.Production, eng.Environment())

	eng, err = validation.NewFromConfig(cfg, validation.WithLogging(false), validation.WithParallelism(1))
	require.NoError(t, err)
	assert.False(t, eng.IsLogging())
	assert.Equal(t, 1, eng.Parallelism())
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"parallelism not a number", "VALIDATION_PARALLELISM", "many"},
		{"negative parallelism", "VALIDATION_PARALLELISM", "-2"},
		{"unknown log level", "VALIDATION_LOG_LEVEL", "verbose"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.Reset()
			t.Cleanup(config.Reset)
			t.Setenv(tt.key, tt.val)

			_, err := validation.LoadConfig()
			assert.ErrorIs(t, err, config.ErrParsingConfig)
		})
	}
}

func TestNewFromConfigInvalid(t *testing.T) {
	t.Parallel()

	var eng *validation.Engine
	var err error
	assert.NotPanics(t, func() {
		eng, err = validation.NewFromConfig(validation.Config{LogLevel: "verbose"})
	})
	assert.ErrorIs(t, err, validation.ErrInvalidConfig)
	assert.Nil(t, eng)
}

func TestNewFromConfigEnvironment(t *testing.T) {
	t.Parallel()

	var seen []environment.Environment
	record := validation.WithFailureHandler(func(ctx context.Context, msg string) error {
		env, _ := environment.FromContext(ctx)
		seen = append(seen, env)
		return validation.NewValidationError(msg)
	})

	eng, err := validation.NewFromConfig(validation.Config{Environment: "staging"}, record)
	require.NoError(t, err)

	require.Error(t, validation.Validate(context.Background(), eng, 1, validator.GreaterThan(2)))

	ctx := environment.WithContext(context.Background(), environment.Production)
	require.Error(t, validation.Validate(ctx, eng, 1, validator.GreaterThan(2)))

	assert.Equal(t, []environment.Environment{environment.Staging, environment.Production}, seen)
}
