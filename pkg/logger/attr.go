package logger

import (
	"fmt"
	"log/slog"
	"time"
)

// Error records err under the key "error". Returns an empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Message records a validation failure message under the key "message".
func Message(msg string) slog.Attr {
	return slog.String("message", msg)
}

// Property records the validated property name under the key "property".
// Returns an empty Attr for an empty name.
func Property(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("property", name)
}

// Hint records a scheduling hint under the key "hint".
func Hint(hint fmt.Stringer) slog.Attr {
	return slog.String("hint", hint.String())
}

// Count records a count under the given key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Duration records an elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
