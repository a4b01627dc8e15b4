package validator

import "errors"

var (
	// ErrNoResult is returned when a failure message is requested from a
	// result that has not been evaluated or that passed.
	ErrNoResult = errors.New("validator: no failure result available")

	// ErrInvalidValidator is returned when evaluating a zero Validator.
	ErrInvalidValidator = errors.New("validator: zero validator cannot be evaluated")

	// ErrInvalidTag is returned from Tag validators whose tag expression is unknown.
	ErrInvalidTag = errors.New("validator: invalid tag")

	// ErrNilPredicate is the panic value for constructors given a nil predicate.
	ErrNilPredicate = errors.New("validator: predicate cannot be nil")

	// ErrNilSelector is the panic value for With constructors given a nil selector.
	ErrNilSelector = errors.New("validator: selector cannot be nil")

	// ErrNilFilesystem is the panic value for file rules given a nil afero.Fs.
	ErrNilFilesystem = errors.New("validator: filesystem cannot be nil")
)
