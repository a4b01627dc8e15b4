package validator

import (
	"github.com/google/uuid"
)

// UUID passes for strings in the canonical 8-4-4-4-12 UUID form.
func UUID[E ~string]() Validator[E] {
	return New("is a UUID", Placeholder+" is not a UUID", func(value E) bool {
		s := string(value)
		// uuid.Parse also accepts braced and urn forms, which are rejected here
		if len(s) != 36 {
			return false
		}
		_, err := uuid.Parse(s)
		return err == nil
	})
}

// NonNilUUID passes for any UUID other than uuid.Nil.
func NonNilUUID() Validator[uuid.UUID] {
	return New("is a non-nil UUID", Placeholder+" is the nil UUID", func(value uuid.UUID) bool {
		return value != uuid.Nil
	})
}
