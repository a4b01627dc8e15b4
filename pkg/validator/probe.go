package validator

// Probe wraps a Validator with the test-then-read-message contract:
// Test records the outcome and ErrorMessage renders the most recent one.
//
// A Probe is stateful and must not be used from multiple goroutines, nor
// tested again before the message of the previous failure has been read.
// Prefer Validator.Evaluate when the validator is shared.
type Probe[E any] struct {
	validator Validator[E]
	last      Result
	subject   string
}

// NewProbe returns a Probe over v.
func NewProbe[E any](v Validator[E]) *Probe[E] {
	return &Probe[E]{validator: v}
}

// Test evaluates value and records the outcome.
// A predicate fault clears the previous outcome and is returned as is.
func (p *Probe[E]) Test(value E) (bool, error) {
	r, err := p.validator.Evaluate(value)
	if err != nil {
		p.last, p.subject = Result{}, ""
		return false, err
	}
	p.last = r
	p.subject = ""
	if !r.Passed() {
		p.subject = Display(value)
	}
	return r.Passed(), nil
}

// ErrorMessage renders the failure message of the last Test call.
// Returns ErrNoResult if Test was never called or the last call passed.
func (p *Probe[E]) ErrorMessage() (string, error) {
	return p.last.Message(p.subject)
}

// ErrorMessageFor renders the last failure with subject as the displayed value.
func (p *Probe[E]) ErrorMessageFor(subject string) (string, error) {
	return p.last.Message(subject)
}

// Result returns the outcome of the last Test call.
func (p *Probe[E]) Result() Result {
	return p.last
}
