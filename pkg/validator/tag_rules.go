package validator

import (
	"errors"
	"fmt"

	playground "github.com/go-playground/validator/v10"
)

var tagEngine = playground.New(playground.WithRequiredStructEnabled())

// Tag validates a single value against a go-playground tag expression such as
// "email", "required,min=3" or "oneof=red green". A value that fails the tag
// is a validation failure; a malformed tag is a predicate fault.
func Tag[E any](tag string) Validator[E] {
	return NewFunc(
		fmt.Sprintf("satisfies %q", tag),
		func(value E) (ok bool, err error) {
			// go-playground panics on unknown tags
			defer func() {
				if r := recover(); r != nil {
					ok, err = false, fmt.Errorf("%w %q: %v", ErrInvalidTag, tag, r)
				}
			}()
			err = tagEngine.Var(value, tag)
			if err == nil {
				return true, nil
			}
			var verrs playground.ValidationErrors
			if errors.As(err, &verrs) {
				return false, nil
			}
			return false, err
		},
		subjectf("%s does not satisfy %q", tag),
	)
}
