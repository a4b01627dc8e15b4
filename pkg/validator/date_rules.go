package validator

import (
	"fmt"
	"time"
)

const dateLayout = time.RFC3339

// Before passes when the value is strictly before t.
func Before(t time.Time) Validator[time.Time] {
	shown := t.Format(dateLayout)
	return rule("is before "+shown, subjectf("%s is not before %s", shown), func(value time.Time) bool {
		return value.Before(t)
	})
}

// After passes when the value is strictly after t.
func After(t time.Time) Validator[time.Time] {
	shown := t.Format(dateLayout)
	return rule("is after "+shown, subjectf("%s is not after %s", shown), func(value time.Time) bool {
		return value.After(t)
	})
}

// InPast passes when the value lies before the time now returns at evaluation.
func InPast(now func() time.Time) Validator[time.Time] {
	now = clock(now)
	return New("is in the past", Placeholder+" is not in the past", func(value time.Time) bool {
		return value.Before(now())
	})
}

// InFuture passes when the value lies after the time now returns at evaluation.
func InFuture(now func() time.Time) Validator[time.Time] {
	now = clock(now)
	return New("is in the future", Placeholder+" is not in the future", func(value time.Time) bool {
		return value.After(now())
	})
}

// WorkingDay passes for Monday through Friday in the value's location.
func WorkingDay() Validator[time.Time] {
	return Is("a working day", func(value time.Time) bool {
		d := value.Weekday()
		return d >= time.Monday && d <= time.Friday
	})
}

// WithinHours passes when the hour of the value lies in [start, end).
func WithinHours(start, end int) Validator[time.Time] {
	return Is(fmt.Sprintf("within hours %02d:00-%02d:00", start, end), func(value time.Time) bool {
		h := value.Hour()
		return h >= start && h < end
	})
}

func clock(now func() time.Time) func() time.Time {
	if now == nil {
		return time.Now
	}
	return now
}
