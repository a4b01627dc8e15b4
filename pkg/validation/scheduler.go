package validation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/validcool/pkg/logger"
)

type outcome uint8

const (
	outcomeSkipped outcome = iota
	outcomePassed
	outcomeFailed
	outcomeFault
)

func (o outcome) String() string {
	switch o {
	case outcomePassed:
		return "passed"
	case outcomeFailed:
		return "failed"
	case outcomeFault:
		return "fault"
	default:
		return "skipped"
	}
}

type record struct {
	outcome outcome
	message string
	err     error
}

// unit is a group of task indexes evaluated sequentially, stopping at the
// first task that does not pass.
type unit struct {
	hint    Hint
	indexes []int
}

// Run evaluates tasks and blocks until every one of them has completed.
//
// Each IoOperation and HeavyComputing task is evaluated in a unit of its own;
// all SimpleComputing tasks share one unit evaluated in submission order that
// stops at the first failure. Units run concurrently, limited by the engine's
// parallelism. A unit that has started is never interrupted.
//
// When several tasks do not pass, the one submitted first decides the result:
// its predicate fault is returned as is, or its failure message is passed once
// to the failure handler. Run returns nil when every task passes.
func (e *Engine) Run(ctx context.Context, tasks ...*Task) error {
	e = resolve(e)
	ctx = e.withEnvironment(ctx)

	for _, t := range tasks {
		if t == nil {
			return ErrNilTask
		}
	}
	for i, t := range tasks {
		if err := t.consume(); err != nil {
			return fmt.Errorf("task %d: %w", i, err)
		}
	}
	if len(tasks) == 0 {
		return nil
	}

	records := make([]record, len(tasks))
	units := partition(tasks)
	metrics := e.metricsOrNil()
	start := time.Now()

	var g errgroup.Group
	if n := e.Parallelism(); n > 0 {
		g.SetLimit(n)
	}
	for _, u := range units {
		g.Go(func() error {
			unitStart := time.Now()
			e.runUnit(ctx, u, tasks, records)
			metrics.observeUnit(u.hint, time.Since(unitStart))
			return nil
		})
	}
	_ = g.Wait()

	decisive := -1
	for i, r := range records {
		metrics.observeTask(tasks[i].hint, r.outcome)
		if decisive < 0 && (r.outcome == outcomeFailed || r.outcome == outcomeFault) {
			decisive = i
		}
	}

	log := e.Logger()
	log.DebugContext(ctx, "validation tasks completed",
		logger.Component("validation"),
		logger.Count("tasks", len(tasks)),
		logger.Count("units", len(units)),
		logger.Duration(time.Since(start)))

	if decisive < 0 {
		return nil
	}
	r, t := records[decisive], tasks[decisive]
	log.DebugContext(ctx, "validation task did not pass",
		logger.Component("validation"),
		slog.Int("index", decisive),
		logger.Hint(t.hint),
		logger.Property(t.property),
		slog.String("outcome", r.outcome.String()),
		logger.Error(r.err))
	if r.outcome == outcomeFault {
		return r.err
	}
	return e.HandleFailure(ctx, r.message)
}

func (e *Engine) runUnit(ctx context.Context, u unit, tasks []*Task, records []record) {
	for _, idx := range u.indexes {
		if err := ctx.Err(); err != nil {
			records[idx] = record{outcome: outcomeFault, err: err}
			return
		}
		records[idx] = evaluateTask(tasks[idx])
		if records[idx].outcome != outcomePassed {
			return
		}
	}
}

func evaluateTask(t *Task) (r record) {
	defer func() {
		if p := recover(); p != nil {
			r = record{outcome: outcomeFault, err: fmt.Errorf("%w: %v", ErrPredicatePanic, p)}
		}
	}()
	passed, msg, err := t.evaluate()
	switch {
	case err != nil:
		return record{outcome: outcomeFault, err: err}
	case !passed:
		return record{outcome: outcomeFailed, message: msg}
	default:
		return record{outcome: outcomePassed}
	}
}

// partition returns the shared SimpleComputing unit (if any) first, followed
// by one unit per remaining task, each in submission order.
func partition(tasks []*Task) []unit {
	simple := unit{hint: SimpleComputing}
	var own []unit
	for i, t := range tasks {
		if t.hint == SimpleComputing {
			simple.indexes = append(simple.indexes, i)
			continue
		}
		own = append(own, unit{hint: t.hint, indexes: []int{i}})
	}
	if len(simple.indexes) == 0 {
		return own
	}
	return append([]unit{simple}, own...)
}
