// Package validator provides a composable, type-safe validation algebra.
//
// A Validator[E] describes an expected property of a value of type E. Atomic
// validators wrap a single predicate together with a failure message template;
// combinators (And, Or, Not, All, Any, With) build larger validators out of
// smaller ones and can be nested arbitrarily. Composition happens at
// construction time and performs no I/O.
//
// # Architecture
//
// Validator is a closed sum type evaluated by a single function. Evaluate
// returns a Result value instead of caching outcomes inside the validator, so
// validators are immutable and goroutine-safe. Result renders the failure
// message lazily for a given subject, which is either the tested value's
// display form or a caller supplied property name.
//
// Rule families live in their own files:
//   - comparable_rules.go  – Nil, EqualTo, In, GreaterThan, LowerThan, Between
//   - string_rules.go      – Matches, Contains, HasLength, EqualIgnoreCase, ...
//   - format_rules.go      – Email, URL, IP, MAC, Phone, Alphanumeric
//   - date_rules.go        – Before, After, InPast, InFuture, WorkingDay
//   - collection_rules.go  – HasItems, HasAny, SameItems, HasItemsInOrder, ...
//   - file_rules.go        – FileExists, IsFile, IsDirectory, MatchesGlob, ...
//   - uuid_rules.go, version_rules.go, tag_rules.go
//
// Probe offers the classic stateful test-then-read-message contract on top of
// Evaluate for callers that prefer it. Probes are not goroutine-safe.
//
// # Usage
//
//	v := validator.All(
//	    validator.Not(validator.EmptyString[string]()),
//	    validator.HasLength[string](5),
//	)
//	res, err := v.Evaluate("hell")
//	if err != nil {
//	    // a predicate fault, e.g. an unreadable file
//	}
//	if !res.Passed() {
//	    msg, _ := res.ErrorMessage("hell") // "hell does not have length of 5"
//	}
//
// Projections disambiguate the failing field:
//
//	v := validator.WithName("y", func(p Point) float64 { return p.Y }, validator.GreaterThan(4.0))
//	res, _ := v.Evaluate(Point{X: 1, Y: 3})
//	msg, _ := res.Message("point") // "point.y is not greater than 4.0"
//
// # Error Handling
//
// Evaluate separates two outcomes: a failed validation is reported through
// Result, while an error returned by a predicate (a fault) is returned as is
// and never converted into a failure. Requesting a message from a Result that
// passed or was never evaluated returns ErrNoResult. Constructors panic when
// given nil predicates, selectors or filesystems.
package validator
