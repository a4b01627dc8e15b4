package validation_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validcool/pkg/validation"
	"github.com/dmitrymomot/validcool/pkg/validator"
)

func TestRun(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("io failure among passing simple tasks", func(t *testing.T) {
		eng, rec := newRecordingEngine()
		err := eng.Run(ctx,
			validation.ScheduleProperty("file", "/missing", validator.IsIO("present", func(string) (bool, error) {
				return false, nil
			}), validation.IoOperation),
			validation.Schedule(3, validator.GreaterThan(1), validation.SimpleComputing),
			validation.Schedule("abc", validator.HasLength[string](3), validation.SimpleComputing),
		)
		assert.EqualError(t, err, "file is not present")
		assert.Equal(t, []string{"file is not present"}, rec.received())
	})

	t.Run("all pass", func(t *testing.T) {
		eng, rec := newRecordingEngine()
		err := eng.Run(ctx,
			validation.Schedule(3, validator.GreaterThan(1), validation.SimpleComputing),
			validation.Schedule(4, validator.LowerThan(10), validation.IoOperation),
			validation.Schedule(5, validator.Between(1, 10), validation.HeavyComputing),
		)
		assert.NoError(t, err)
		assert.Empty(t, rec.received())
	})

	t.Run("no tasks", func(t *testing.T) {
		assert.NoError(t, validation.New().Run(ctx))
	})

	t.Run("simple unit stops at first failure", func(t *testing.T) {
		eng, rec := newRecordingEngine()
		var later atomic.Int32
		err := eng.Run(ctx,
			validation.Schedule(3, validator.GreaterThan(1), validation.SimpleComputing),
			validation.Schedule(0, validator.GreaterThan(1), validation.SimpleComputing),
			validation.Schedule(5, validator.Is("counted", func(int) bool {
				later.Add(1)
				return true
			}), validation.SimpleComputing),
		)
		assert.EqualError(t, err, "0 is not greater than 1")
		assert.Zero(t, later.Load())
		assert.Len(t, rec.received(), 1)
	})

	t.Run("earliest submitted task decides", func(t *testing.T) {
		eng, rec := newRecordingEngine()
		err := eng.Run(ctx,
			validation.ScheduleProperty("a", 1, validator.GreaterThan(5), validation.IoOperation),
			validation.ScheduleProperty("b", 2, validator.GreaterThan(5), validation.HeavyComputing),
			validation.ScheduleProperty("c", 3, validator.GreaterThan(5), validation.SimpleComputing),
		)
		assert.EqualError(t, err, "a is not greater than 5")
		assert.Equal(t, []string{"a is not greater than 5"}, rec.received())
	})

	t.Run("failure before fault wins", func(t *testing.T) {
		eng, rec := newRecordingEngine()
		err := eng.Run(ctx,
			validation.ScheduleProperty("n", 0, validator.GreaterThan(1), validation.SimpleComputing),
			validation.Schedule(1, faulty(), validation.IoOperation),
		)
		assert.True(t, validation.IsValidationError(err))
		assert.Equal(t, []string{"n is not greater than 1"}, rec.received())
	})

	t.Run("fault is returned verbatim", func(t *testing.T) {
		eng, rec := newRecordingEngine()
		err := eng.Run(ctx,
			validation.Schedule(1, faulty(), validation.IoOperation),
			validation.Schedule(0, validator.GreaterThan(1), validation.SimpleComputing),
		)
		assert.ErrorIs(t, err, errUnreadable)
		assert.Empty(t, rec.received())
	})

	t.Run("panic becomes a fault", func(t *testing.T) {
		eng, rec := newRecordingEngine()
		err := eng.Run(ctx, validation.Schedule(1, validator.Is("calm", func(int) bool {
			panic("predicate exploded")
		}), validation.HeavyComputing))
		assert.ErrorIs(t, err, validation.ErrPredicatePanic)
		assert.Contains(t, err.Error(), "predicate exploded")
		assert.Empty(t, rec.received())
	})

	t.Run("callbacks run for passing tasks", func(t *testing.T) {
		var passed atomic.Int32
		err := validation.New().Run(ctx,
			validation.Schedule(2, validator.GreaterThan(1), validation.IoOperation).OnValid(func() { passed.Add(1) }),
			validation.Schedule(0, validator.GreaterThan(1), validation.IoOperation).OnValid(func() { passed.Add(1) }),
		)
		assert.Error(t, err)
		assert.Equal(t, int32(1), passed.Load())
	})

	t.Run("tasks are single use", func(t *testing.T) {
		task := validation.Schedule(2, validator.GreaterThan(1), validation.IoOperation)
		eng := validation.New()
		require.NoError(t, eng.Run(ctx, task))
		assert.ErrorIs(t, eng.Run(ctx, task), validation.ErrTaskConsumed)
	})

	t.Run("nil task", func(t *testing.T) {
		assert.ErrorIs(t, validation.New().Run(ctx, nil), validation.ErrNilTask)
	})

	t.Run("nil engine", func(t *testing.T) {
		var eng *validation.Engine
		err := eng.Run(ctx, validation.Schedule(0, validator.GreaterThan(1), validation.SimpleComputing))
		assert.ErrorIs(t, err, validation.ErrValidationFailed)
	})

	t.Run("canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		err := validation.New().Run(canceled, validation.Schedule(2, validator.GreaterThan(1), validation.IoOperation))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

// rendezvous returns a validator that passes only if parties goroutines
// evaluate it at the same time.
func rendezvous(parties int) validator.Validator[int] {
	var wg sync.WaitGroup
	wg.Add(parties)
	return validator.Is("concurrent", func(int) bool {
		wg.Done()
		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		select {
		case <-done:
			return true
		case <-time.After(2 * time.Second):
			return false
		}
	})
}

func TestRunConcurrency(t *testing.T) {
	t.Parallel()

	t.Run("io units run in parallel", func(t *testing.T) {
		v := rendezvous(3)
		err := validation.New().Run(context.Background(),
			validation.Schedule(1, v, validation.IoOperation),
			validation.Schedule(2, v, validation.IoOperation),
			validation.Schedule(3, v, validation.HeavyComputing),
		)
		assert.NoError(t, err)
	})

	t.Run("parallelism limits units", func(t *testing.T) {
		var running, peak atomic.Int32
		v := validator.Is("tracked", func(int) bool {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			running.Add(-1)
			return true
		})

		tasks := make([]*validation.Task, 6)
		for i := range tasks {
			tasks[i] = validation.Schedule(i, v, validation.IoOperation)
		}
		require.NoError(t, validation.New(validation.WithParallelism(2)).Run(context.Background(), tasks...))
		assert.LessOrEqual(t, peak.Load(), int32(2))
	})

	t.Run("simple tasks run sequentially", func(t *testing.T) {
		var running, peak atomic.Int32
		v := validator.Is("tracked", func(int) bool {
			if n := running.Add(1); n > peak.Load() {
				peak.Store(n)
			}
			time.Sleep(time.Millisecond)
			running.Add(-1)
			return true
		})
		tasks := make([]*validation.Task, 4)
		for i := range tasks {
			tasks[i] = validation.Schedule(i, v, validation.SimpleComputing)
		}
		require.NoError(t, validation.New().Run(context.Background(), tasks...))
		assert.Equal(t, int32(1), peak.Load())
	})
}

func TestRunLogging(t *testing.T) {
	t.Parallel()

	buf, withLogger := bufferLogger()
	eng := validation.New(withLogger, validation.WithLogging(true))
	err := eng.Run(context.Background(),
		validation.ScheduleProperty("size", 12, validator.LowerThan(10), validation.HeavyComputing),
	)
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"validation tasks completed"`)
	assert.Contains(t, out, `"hint":"heavy_computing"`)
	assert.Contains(t, out, `"property":"size"`)
	assert.Contains(t, out, `"message":"size is not lower than 10"`)
}
