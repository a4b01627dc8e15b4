// Package validation applies validators from package validator and decides
// what a failed validation turns into.
//
// An Engine holds the process settings: the failure handler (by default it
// returns a *ValidationError), the logger and whether failures are logged,
// plus scheduler parallelism and optional Prometheus metrics. Engines are
// passed explicitly; a nil *Engine behaves like New().
//
// # Usage
//
//	eng := validation.New(validation.WithLogging(true))
//
//	if err := validation.ValidateProperty(ctx, eng, "age", age, validator.GreaterThan(17)); err != nil {
//	    // err.Error() == "age is not greater than 17"
//	}
//
//	ok, err := validation.Check(ctx, eng, name, validator.HasLength[string](5))
//
// Independent validations can be scheduled together:
//
//	err := eng.Run(ctx,
//	    validation.ScheduleProperty("config", path, validator.IsFile(fs), validation.IoOperation),
//	    validation.Schedule(port, validator.Between(1, 65535), validation.SimpleComputing),
//	)
//
// IoOperation and HeavyComputing tasks run concurrently in units of their own,
// while SimpleComputing tasks share one sequential unit. When more than one
// task does not pass, the earliest submitted one determines the result.
//
// # Configuration
//
// LoadConfig reads VALIDATION_LOG_FAILURES, VALIDATION_PARALLELISM,
// VALIDATION_ENV, VALIDATION_SERVICE and VALIDATION_LOG_LEVEL and rejects
// unusable values such as an unknown log level; NewFromConfig
// turns the result into an Engine with an environment-aware logger.
//
// # Error Handling
//
// A failed validation goes through the failure handler exactly once and its
// return value is passed back; errors.Is(err, ErrValidationFailed) holds for
// the default handler. Predicate faults such as an unreadable file are
// returned unchanged and never reach the handler. Tasks are single use and
// report ErrTaskConsumed when reused.
package validation
