package validation_test

import (
	"bytes"
	"context"
	"sync"

	"github.com/dmitrymomot/validcool/pkg/logger"
	"github.com/dmitrymomot/validcool/pkg/validation"
)

// recorder is a failure handler that remembers every message it receives.
type recorder struct {
	mu       sync.Mutex
	messages []string
}

func (r *recorder) handle(_ context.Context, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
	return validation.NewValidationError(message)
}

func (r *recorder) received() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}

func newRecordingEngine(opts ...validation.Option) (*validation.Engine, *recorder) {
	rec := &recorder{}
	opts = append([]validation.Option{validation.WithFailureHandler(rec.handle)}, opts...)
	return validation.New(opts...), rec
}

func bufferLogger() (*bytes.Buffer, validation.Option) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevelName("debug"))
	return buf, validation.WithLogger(log)
}
