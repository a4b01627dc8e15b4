package validation

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/validcool/pkg/async"
	"github.com/dmitrymomot/validcool/pkg/validator"
)

// Hint tells the scheduler how expensive a task is.
type Hint uint8

const (
	// SimpleComputing tasks are cheap; they share one sequential unit.
	SimpleComputing Hint = iota
	// IoOperation tasks block on I/O and get a unit of their own.
	IoOperation
	// HeavyComputing tasks are CPU bound and get a unit of their own.
	HeavyComputing
)

func (h Hint) String() string {
	switch h {
	case SimpleComputing:
		return "simple_computing"
	case IoOperation:
		return "io_operation"
	case HeavyComputing:
		return "heavy_computing"
	default:
		return fmt.Sprintf("hint(%d)", uint8(h))
	}
}

// Task is a deferred validation of one value. A task is consumed by the first
// of Validate, Run or (*Engine).Run; any further use returns ErrTaskConsumed.
type Task struct {
	hint     Hint
	property string
	check    func() (bool, string, error)

	mu       sync.Mutex
	onValid  []func()
	consumed atomic.Bool
}

// Schedule prepares a task validating value against v.
func Schedule[E any](value E, v validator.Validator[E], hint Hint) *Task {
	return &Task{
		hint:  hint,
		check: func() (bool, string, error) { return evaluate("", value, v) },
	}
}

// ScheduleProperty prepares a task whose failure message uses name as subject.
// An empty name falls back to the displayed value, as with Schedule.
func ScheduleProperty[E any](name string, value E, v validator.Validator[E], hint Hint) *Task {
	return &Task{
		hint:     hint,
		property: name,
		check:    func() (bool, string, error) { return evaluate(name, value, v) },
	}
}

// Hint returns the scheduling hint.
func (t *Task) Hint() Hint { return t.hint }

// Property returns the property name, or "" for value subjects.
func (t *Task) Property() string { return t.property }

// OnValid registers fn to run after the task passes. Callbacks run in
// registration order on the goroutine that evaluated the task.
func (t *Task) OnValid(fn func()) *Task {
	if fn != nil {
		t.mu.Lock()
		t.onValid = append(t.onValid, fn)
		t.mu.Unlock()
	}
	return t
}

// Validate evaluates the task synchronously. A failure is routed to the
// engine's failure handler and its error returned with false.
func (t *Task) Validate(ctx context.Context, eng *Engine) (bool, error) {
	if err := t.consume(); err != nil {
		return false, err
	}
	return t.validate(ctx, resolve(eng))
}

// Run evaluates the task in its own goroutine.
func (t *Task) Run(ctx context.Context, eng *Engine) *async.Future[bool] {
	if err := t.consume(); err != nil {
		return async.Resolved(false, err)
	}
	eng = resolve(eng)
	return async.Async(ctx, eng, t.validate)
}

func (t *Task) validate(ctx context.Context, eng *Engine) (bool, error) {
	passed, msg, err := t.evaluate()
	if err != nil {
		return false, err
	}
	if !passed {
		return false, eng.HandleFailure(ctx, msg)
	}
	return true, nil
}

// evaluate runs the check and, on success, the OnValid callbacks.
func (t *Task) evaluate() (bool, string, error) {
	passed, msg, err := t.check()
	if err != nil || !passed {
		return passed, msg, err
	}
	t.mu.Lock()
	callbacks := t.onValid
	t.mu.Unlock()
	for _, fn := range callbacks {
		fn()
	}
	return true, "", nil
}

func (t *Task) consume() error {
	if t == nil {
		return ErrNilTask
	}
	if !t.consumed.CompareAndSwap(false, true) {
		return ErrTaskConsumed
	}
	return nil
}
