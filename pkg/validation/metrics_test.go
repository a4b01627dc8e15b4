package validation_test

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validcool/pkg/validation"
	"github.com/dmitrymomot/validcool/pkg/validator"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m, err := validation.NewMetrics(reg)
	require.NoError(t, err)

	eng := validation.New(validation.WithMetrics(m))
	err = eng.Run(context.Background(),
		validation.Schedule(1, validator.GreaterThan(5), validation.IoOperation),
		validation.Schedule(3, validator.GreaterThan(1), validation.SimpleComputing),
		validation.Schedule(0, validator.GreaterThan(1), validation.SimpleComputing),
		validation.Schedule(9, validator.GreaterThan(1), validation.SimpleComputing),
	)
	require.Error(t, err)

	expected := `
# HELP validation_tasks_total Scheduled validation tasks by hint and outcome.
# TYPE validation_tasks_total counter
validation_tasks_total{hint="io_operation",outcome="failed"} 1
validation_tasks_total{hint="simple_computing",outcome="failed"} 1
validation_tasks_total{hint="simple_computing",outcome="passed"} 1
validation_tasks_total{hint="simple_computing",outcome="skipped"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "validation_tasks_total"))

	series, err := testutil.GatherAndCount(reg, "validation_unit_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, series)
}

func TestNewMetricsReusesCollectors(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	first, err := validation.NewMetrics(reg)
	require.NoError(t, err)
	second, err := validation.NewMetrics(reg)
	require.NoError(t, err)

	for _, m := range []*validation.Metrics{first, second} {
		eng := validation.New(validation.WithMetrics(m))
		require.NoError(t, eng.Run(context.Background(),
			validation.Schedule(2, validator.GreaterThan(1), validation.HeavyComputing)))
	}

	expected := `
# HELP validation_tasks_total Scheduled validation tasks by hint and outcome.
# TYPE validation_tasks_total counter
validation_tasks_total{hint="heavy_computing",outcome="passed"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "validation_tasks_total"))
}
