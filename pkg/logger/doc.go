// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers so validation logs use consistent keys.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured
// Format, attaches static attributes, and, when WithContextValue is used,
// wraps the handler so values stored in context.Context are added to each
// record at Handle time.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "billing"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.WarnContext(ctx, "validation failed",
//	    logger.Component("validation"),
//	    logger.Message(msg),
//	)
//
// # Configuration
//
//   - WithEnvironment – development gets text output at debug level, other
//     environments JSON at info level.
//   - WithFormat, WithLevel, WithLevelName, WithOutput, WithAttr.
//   - WithContextValue – inject attributes from context.
//
// # Error Handling
//
// WithFormat and WithLevelName panic on invalid input: a misconfigured
// logger should prevent startup. Error returns an empty attribute for a nil
// error, so it can be passed unconditionally.
package logger
