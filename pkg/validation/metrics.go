package validation

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records scheduler activity. A nil *Metrics records nothing.
type Metrics struct {
	tasks        *prometheus.CounterVec
	unitDuration *prometheus.HistogramVec
}

// NewMetrics creates the scheduler collectors and registers them with reg.
// Collectors already registered by an earlier call are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	tasks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "validation_tasks_total",
		Help: "Scheduled validation tasks by hint and outcome.",
	}, []string{"hint", "outcome"})
	unitDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "validation_unit_duration_seconds",
		Help:    "Time spent evaluating one scheduling unit.",
		Buckets: prometheus.DefBuckets,
	}, []string{"hint"})

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	var err error
	if tasks, err = register(reg, tasks); err != nil {
		return nil, err
	}
	if unitDuration, err = register(reg, unitDuration); err != nil {
		return nil, err
	}
	return &Metrics{tasks: tasks, unitDuration: unitDuration}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *Metrics) observeTask(h Hint, o outcome) {
	if m == nil {
		return
	}
	m.tasks.WithLabelValues(h.String(), o.String()).Inc()
}

func (m *Metrics) observeUnit(h Hint, d time.Duration) {
	if m == nil {
		return
	}
	m.unitDuration.WithLabelValues(h.String()).Observe(d.Seconds())
}
