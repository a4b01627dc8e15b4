package validation

import (
	"context"

	"github.com/dmitrymomot/validcool/pkg/async"
	"github.com/dmitrymomot/validcool/pkg/validator"
)

// Validate evaluates v against value. A failure is passed to the engine's
// failure handler and its result returned; predicate faults are returned
// unchanged without invoking the handler.
func Validate[E any](ctx context.Context, eng *Engine, value E, v validator.Validator[E]) error {
	passed, msg, err := evaluate("", value, v)
	if err != nil || passed {
		return err
	}
	return resolve(eng).HandleFailure(ctx, msg)
}

// ValidateProperty is Validate with name as the subject of the failure
// message, e.g. "age is not greater than 17". An empty name falls back to the
// displayed value, making the call equivalent to Validate.
func ValidateProperty[E any](ctx context.Context, eng *Engine, name string, value E, v validator.Validator[E]) error {
	passed, msg, err := evaluate(name, value, v)
	if err != nil || passed {
		return err
	}
	return resolve(eng).HandleFailure(ctx, msg)
}

// Check reports whether value satisfies v. Failures are logged when the
// engine has logging enabled and never reach the failure handler.
func Check[E any](ctx context.Context, eng *Engine, value E, v validator.Validator[E]) (bool, error) {
	passed, msg, err := evaluate("", value, v)
	if err != nil {
		return false, err
	}
	if !passed {
		resolve(eng).LogIfEnabled(ctx, msg)
	}
	return passed, nil
}

// CheckAsync runs Check in its own goroutine.
func CheckAsync[E any](ctx context.Context, eng *Engine, value E, v validator.Validator[E]) *async.Future[bool] {
	return async.Async(ctx, value, func(ctx context.Context, value E) (bool, error) {
		return Check(ctx, eng, value, v)
	})
}

// ValidateAsync runs Validate in its own goroutine. The future resolves to
// value when it passes.
func ValidateAsync[E any](ctx context.Context, eng *Engine, value E, v validator.Validator[E]) *async.Future[E] {
	return async.Async(ctx, value, func(ctx context.Context, value E) (E, error) {
		if err := Validate(ctx, eng, value, v); err != nil {
			var zero E
			return zero, err
		}
		return value, nil
	})
}

// evaluate renders the failure message with name as subject, or the value
// itself when name is empty.
func evaluate[E any](name string, value E, v validator.Validator[E]) (bool, string, error) {
	res, err := v.Evaluate(value)
	if err != nil {
		return false, "", err
	}
	if res.Passed() {
		return true, "", nil
	}
	var msg string
	if name != "" {
		msg, err = res.Message(name)
	} else {
		msg, err = res.ErrorMessage(value)
	}
	if err != nil {
		return false, "", err
	}
	return false, msg, nil
}
