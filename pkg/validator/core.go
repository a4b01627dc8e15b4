package validator

import (
	"fmt"
	"strings"
)

// Placeholder is substituted with the displayed subject in message templates.
const Placeholder = "${actual}"

type kind uint8

const (
	kindInvalid kind = iota
	kindAtomic
	kindAnd
	kindOr
	kindNot
	kindAll
	kindAny
	kindWith
)

// Validator describes an expected property of a value of type E.
//
// A Validator is either atomic (a single predicate with a failure message)
// or a combinator built from other validators. Validators hold no evaluation
// state: Evaluate returns everything needed to render a failure, so one
// instance can be shared between goroutines and reused freely.
type Validator[E any] struct {
	kind        kind
	description string
	predicate   func(E) (bool, error)
	message     func(subject string) string
	children    []Validator[E]
	project     func(E) (Result, error)
}

// Result is the outcome of a single evaluation.
type Result struct {
	evaluated bool
	passed    bool
	render    func(subject string) string
}

func pass() Result {
	return Result{evaluated: true, passed: true}
}

func fail(render func(subject string) string) Result {
	return Result{evaluated: true, render: render}
}

// Passed reports whether the evaluated value satisfied the validator.
func (r Result) Passed() bool {
	return r.evaluated && r.passed
}

// Message renders the failure message using subject as the displayed value.
// Returns ErrNoResult for a zero Result or a Result that passed.
func (r Result) Message(subject string) (string, error) {
	if !r.evaluated || r.passed {
		return "", ErrNoResult
	}
	return r.render(subject), nil
}

// ErrorMessage renders the failure message for the tested value.
func (r Result) ErrorMessage(value any) (string, error) {
	return r.Message(Display(value))
}

// Description returns the human readable description used by combinators.
func (v Validator[E]) Description() string {
	return v.description
}

// Evaluate tests value against the validator.
// A non-nil error is a fault raised by a predicate or selector and is
// returned unchanged; it never means the value failed validation.
func (v Validator[E]) Evaluate(value E) (Result, error) {
	switch v.kind {
	case kindAtomic:
		ok, err := v.predicate(value)
		if err != nil {
			return Result{}, err
		}
		if ok {
			return pass(), nil
		}
		return fail(v.message), nil

	case kindAnd:
		first, err := v.children[0].Evaluate(value)
		if err != nil || !first.passed {
			return first, err
		}
		return v.children[1].Evaluate(value)

	case kindOr:
		first, err := v.children[0].Evaluate(value)
		if err != nil {
			return Result{}, err
		}
		second, err := v.children[1].Evaluate(value)
		if err != nil {
			return Result{}, err
		}
		if first.passed || second.passed {
			return pass(), nil
		}
		return fail(joinMessages(first, second)), nil

	case kindNot:
		inner, err := v.children[0].Evaluate(value)
		if err != nil {
			return Result{}, err
		}
		if inner.passed {
			return fail(v.message), nil
		}
		return pass(), nil

	case kindAll:
		for _, child := range v.children {
			r, err := child.Evaluate(value)
			if err != nil || !r.passed {
				return r, err
			}
		}
		return pass(), nil

	case kindAny:
		if len(v.children) == 0 {
			return fail(v.message), nil
		}
		failures := make([]Result, 0, len(v.children))
		for _, child := range v.children {
			r, err := child.Evaluate(value)
			if err != nil {
				return Result{}, err
			}
			if r.passed {
				return pass(), nil
			}
			failures = append(failures, r)
		}
		return fail(joinMessages(failures...)), nil

	case kindWith:
		return v.project(value)

	default:
		return Result{}, ErrInvalidValidator
	}
}

// joinMessages terminates each branch message with ";" and trims the result.
func joinMessages(results ...Result) func(string) string {
	return func(subject string) string {
		var b strings.Builder
		for _, r := range results {
			b.WriteString(r.render(subject))
			b.WriteByte(';')
		}
		return strings.TrimSpace(b.String())
	}
}

func template(tpl string) func(string) string {
	return func(subject string) string {
		return strings.ReplaceAll(tpl, Placeholder, subject)
	}
}

// subjectf renders format with the subject as its first operand. Operands
// are inserted as they are, so a Placeholder inside one stays literal.
func subjectf(format string, args ...any) func(string) string {
	return func(subject string) string {
		return fmt.Sprintf(format, append([]any{subject}, args...)...)
	}
}

// New creates an atomic validator from a predicate and a message template.
// Every occurrence of Placeholder in template is replaced with the displayed subject.
func New[E any](description, tpl string, predicate func(E) bool) Validator[E] {
	return rule(description, template(tpl), predicate)
}

func rule[E any](description string, message func(string) string, predicate func(E) bool) Validator[E] {
	if predicate == nil {
		panic(fmt.Errorf("%w: %q", ErrNilPredicate, description))
	}
	return Validator[E]{
		kind:        kindAtomic,
		description: description,
		predicate: func(value E) (bool, error) {
			return predicate(value), nil
		},
		message: message,
	}
}

// NewFunc creates an atomic validator from a fallible predicate and a message
// generator. Errors returned by predicate propagate out of Evaluate.
func NewFunc[E any](description string, predicate func(E) (bool, error), message func(subject string) string) Validator[E] {
	if predicate == nil || message == nil {
		panic(fmt.Errorf("%w: %q", ErrNilPredicate, description))
	}
	return Validator[E]{
		kind:        kindAtomic,
		description: description,
		predicate:   predicate,
		message:     message,
	}
}

// Is creates an ad hoc validator, e.g. Is("dividable by 2", isEven).
func Is[E any](description string, predicate func(E) bool) Validator[E] {
	return rule("is "+description, subjectf("%s is not %s", description), predicate)
}

// IsIO is like Is but for predicates that may fail, typically because they
// perform I/O. The predicate error is returned from Evaluate as is.
func IsIO[E any](description string, predicate func(E) (bool, error)) Validator[E] {
	return NewFunc("is "+description, predicate, subjectf("%s is not %s", description))
}
