package validation

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/dmitrymomot/validcool/pkg/environment"
	"github.com/dmitrymomot/validcool/pkg/logger"
)

// FailureHandler decides what a failed validation turns into. The returned
// error is handed back to the caller of Validate or Run; returning nil
// swallows the failure.
type FailureHandler func(ctx context.Context, message string) error

// DefaultFailureHandler returns a *ValidationError carrying message.
func DefaultFailureHandler(_ context.Context, message string) error {
	return NewValidationError(message)
}

// Engine carries the failure handling, logging and scheduling settings used
// by the entry points in this package. All settings may be changed while the
// engine is in use. A nil *Engine passed to an entry point behaves like New().
type Engine struct {
	handler     atomic.Pointer[FailureHandler]
	logger      atomic.Pointer[slog.Logger]
	logging     atomic.Bool
	parallelism atomic.Int64
	metrics     atomic.Pointer[Metrics]
	env         environment.Environment
}

// Option configures an Engine.
type Option func(*Engine)

// WithFailureHandler installs h. Nil handlers are ignored.
func WithFailureHandler(h FailureHandler) Option {
	return func(e *Engine) {
		if h != nil {
			e.handler.Store(&h)
		}
	}
}

// WithLogger sets the logger used for failure and scheduler logs.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger.Store(l)
		}
	}
}

// WithLogging toggles logging of failure messages.
func WithLogging(enabled bool) Option {
	return func(e *Engine) { e.logging.Store(enabled) }
}

// WithParallelism caps how many scheduling units Run executes at once.
// Zero means no limit; negative values are ignored.
func WithParallelism(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.parallelism.Store(int64(n))
		}
	}
}

// WithEnvironment stores env in the context passed to the failure handler
// unless the caller's context already carries one.
func WithEnvironment(env environment.Environment) Option {
	return func(e *Engine) { e.env = env }
}

// WithMetrics records scheduler outcomes into m.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) { e.metrics.Store(m) }
}

// New creates an engine with the default failure handler, slog.Default()
// and logging disabled.
func New(opts ...Option) *Engine {
	e := &Engine{}
	h := FailureHandler(DefaultFailureHandler)
	e.handler.Store(&h)
	e.logger.Store(slog.Default())
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func resolve(e *Engine) *Engine {
	if e == nil {
		return New()
	}
	return e
}

// SetFailureHandler replaces the failure handler.
func (e *Engine) SetFailureHandler(h FailureHandler) error {
	if h == nil {
		return ErrNilFailureHandler
	}
	e.handler.Store(&h)
	return nil
}

// SetLogger replaces the logger. Nil resets it to slog.Default().
func (e *Engine) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	e.logger.Store(l)
}

// Logger returns the current logger.
func (e *Engine) Logger() *slog.Logger {
	return resolve(e).logger.Load()
}

// EnableLogging turns on logging of failure messages.
func (e *Engine) EnableLogging() { e.logging.Store(true) }

// DisableLogging turns off logging of failure messages.
func (e *Engine) DisableLogging() { e.logging.Store(false) }

// IsLogging reports whether failure messages are logged.
func (e *Engine) IsLogging() bool {
	return e != nil && e.logging.Load()
}

// Parallelism returns the unit limit used by Run, 0 meaning unbounded.
func (e *Engine) Parallelism() int {
	if e == nil {
		return 0
	}
	return int(e.parallelism.Load())
}

// LogIfEnabled writes message at warn level when logging is enabled.
func (e *Engine) LogIfEnabled(ctx context.Context, message string) {
	if !e.IsLogging() {
		return
	}
	e.logger.Load().WarnContext(ctx, "validation failed",
		logger.Component("validation"),
		logger.Message(message))
}

// Environment returns the environment set with WithEnvironment, or "".
func (e *Engine) Environment() environment.Environment {
	if e == nil {
		return ""
	}
	return e.env
}

// HandleFailure logs message if enabled and passes it to the failure handler.
func (e *Engine) HandleFailure(ctx context.Context, message string) error {
	e = resolve(e)
	ctx = e.withEnvironment(ctx)
	e.LogIfEnabled(ctx, message)
	return (*e.handler.Load())(ctx, message)
}

func (e *Engine) withEnvironment(ctx context.Context) context.Context {
	if e.env == "" {
		return ctx
	}
	if _, ok := environment.FromContext(ctx); ok {
		return ctx
	}
	return environment.WithContext(ctx, e.env)
}

func (e *Engine) metricsOrNil() *Metrics {
	if e == nil {
		return nil
	}
	return e.metrics.Load()
}
