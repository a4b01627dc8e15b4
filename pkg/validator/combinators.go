package validator

import (
	"fmt"
	"strings"
)

// And passes when both validators pass. second is only evaluated when first
// passes; a failure reports the message of the branch that failed.
func And[E any](first, second Validator[E]) Validator[E] {
	return Validator[E]{
		kind:        kindAnd,
		description: first.description + " and " + second.description,
		children:    []Validator[E]{first, second},
	}
}

// Or passes when at least one validator passes. Both branches are always
// evaluated; a failure reports both messages as "first;second;".
func Or[E any](first, second Validator[E]) Validator[E] {
	return Validator[E]{
		kind:        kindOr,
		description: first.description + " or " + second.description,
		children:    []Validator[E]{first, second},
	}
}

// Not passes when v fails. The failure message states the negated
// expectation using v's description, e.g. "name is null".
func Not[E any](v Validator[E]) Validator[E] {
	return Validator[E]{
		kind:        kindNot,
		description: "not " + v.description,
		children:    []Validator[E]{v},
		message:     subjectf("%s %s", v.description),
	}
}

// All passes when every validator passes. Evaluation stops at the first
// failure and that validator's message is reported. All() always passes.
func All[E any](validators ...Validator[E]) Validator[E] {
	return Validator[E]{
		kind:        kindAll,
		description: describe(validators, " and "),
		children:    append([]Validator[E](nil), validators...),
	}
}

// Any passes when at least one validator passes. On failure the messages of
// all validators are joined, each terminated by ";". Any() always fails.
func Any[E any](validators ...Validator[E]) Validator[E] {
	return Validator[E]{
		kind:        kindAny,
		description: describe(validators, " or "),
		children:    append([]Validator[E](nil), validators...),
		message:     template(Placeholder + " matches no validator"),
	}
}

// With validates the value selected from E. On failure the displayed subject
// is "<subject>.<selection>" so the failing field can be told apart.
func With[E, S any](selector func(E) S, inner Validator[S]) Validator[E] {
	return with("", selector, inner)
}

// WithName is like With but displays the subject as "<subject>.<name>".
func WithName[E, S any](name string, selector func(E) S, inner Validator[S]) Validator[E] {
	return with(name, selector, inner)
}

func with[E, S any](name string, selector func(E) S, inner Validator[S]) Validator[E] {
	if selector == nil {
		panic(fmt.Errorf("%w: %q", ErrNilSelector, name))
	}
	return Validator[E]{
		kind:        kindWith,
		description: inner.description,
		project: func(value E) (Result, error) {
			selection := selector(value)
			r, err := inner.Evaluate(selection)
			if err != nil || r.passed {
				return r, err
			}
			suffix := name
			if suffix == "" {
				suffix = Display(selection)
			}
			return fail(func(subject string) string {
				return r.render(subject + "." + suffix)
			}), nil
		},
	}
}

func describe[E any](validators []Validator[E], sep string) string {
	parts := make([]string, len(validators))
	for i, v := range validators {
		parts[i] = v.description
	}
	return strings.Join(parts, sep)
}
