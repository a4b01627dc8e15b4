package async

import "errors"

// ErrPanic wraps the value recovered from a panicking async function.
var ErrPanic = errors.New("async: function panicked")
