package validation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validcool/pkg/validation"
	"github.com/dmitrymomot/validcool/pkg/validator"
)

func TestHintString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hint validation.Hint
		want string
	}{
		{validation.SimpleComputing, "simple_computing"},
		{validation.IoOperation, "io_operation"},
		{validation.HeavyComputing, "heavy_computing"},
		{validation.Hint(9), "hint(9)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.hint.String())
	}

	var zero validation.Hint
	assert.Equal(t, validation.SimpleComputing, zero)
}

func TestTaskAccessors(t *testing.T) {
	t.Parallel()

	task := validation.ScheduleProperty("port", 80, validator.Between(1, 65535), validation.HeavyComputing)
	assert.Equal(t, validation.HeavyComputing, task.Hint())
	assert.Equal(t, "port", task.Property())

	task = validation.Schedule(80, validator.Between(1, 65535), validation.IoOperation)
	assert.Equal(t, validation.IoOperation, task.Hint())
	assert.Empty(t, task.Property())
}

func TestSchedulePropertyEmptyName(t *testing.T) {
	t.Parallel()

	_, err := validation.ScheduleProperty("", 0, validator.Between(1, 65535), validation.SimpleComputing).
		Validate(context.Background(), nil)
	assert.EqualError(t, err, "0 is not between 1 and 65535")
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("passing task runs callbacks in order", func(t *testing.T) {
		var calls []string
		task := validation.Schedule(5, validator.GreaterThan(1), validation.SimpleComputing).
			OnValid(func() { calls = append(calls, "first") }).
			OnValid(func() { calls = append(calls, "second") })

		ok, err := task.Validate(ctx, nil)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{"first", "second"}, calls)
	})

	t.Run("failing task routes to the handler", func(t *testing.T) {
		eng, rec := newRecordingEngine()
		called := false
		task := validation.ScheduleProperty("age", 3, validator.GreaterThan(17), validation.SimpleComputing).
			OnValid(func() { called = true })

		ok, err := task.Validate(ctx, eng)
		assert.False(t, ok)
		assert.EqualError(t, err, "age is not greater than 17")
		assert.Equal(t, []string{"age is not greater than 17"}, rec.received())
		assert.False(t, called)
	})

	t.Run("fault is returned without the handler", func(t *testing.T) {
		eng, rec := newRecordingEngine()
		ok, err := validation.Schedule(1, faulty(), validation.IoOperation).Validate(ctx, eng)
		assert.False(t, ok)
		assert.ErrorIs(t, err, errUnreadable)
		assert.Empty(t, rec.received())
	})

	t.Run("single use", func(t *testing.T) {
		task := validation.Schedule(5, validator.GreaterThan(1), validation.SimpleComputing)
		_, err := task.Validate(ctx, nil)
		require.NoError(t, err)

		_, err = task.Validate(ctx, nil)
		assert.ErrorIs(t, err, validation.ErrTaskConsumed)

		_, err = task.Run(ctx, nil).Await()
		assert.ErrorIs(t, err, validation.ErrTaskConsumed)
	})

	t.Run("nil task", func(t *testing.T) {
		var task *validation.Task
		_, err := task.Validate(ctx, nil)
		assert.ErrorIs(t, err, validation.ErrNilTask)
	})
}

func TestTaskRun(t *testing.T) {
	t.Parallel()

	eng, rec := newRecordingEngine()

	ok, err := validation.Schedule("hello", validator.HasLength[string](5), validation.HeavyComputing).
		Run(context.Background(), eng).Await()
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = validation.Schedule("hell", validator.HasLength[string](5), validation.HeavyComputing).
		Run(context.Background(), eng).Await()
	assert.False(t, ok)
	assert.ErrorIs(t, err, validation.ErrValidationFailed)
	assert.Equal(t, []string{"hell does not have length of 5"}, rec.received())
}
