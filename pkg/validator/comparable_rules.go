package validator

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// Nil passes for nil values: nil interfaces, pointers, maps, slices,
// channels and functions.
func Nil[E any]() Validator[E] {
	return New("is null", Placeholder+" is not null", func(value E) bool {
		return any(value) == nil || isNilPointer(value)
	})
}

// NotNil passes for any value that Nil rejects.
func NotNil[E any]() Validator[E] {
	return Not(Nil[E]())
}

// EqualTo passes when the value equals other.
func EqualTo[E comparable](other E) Validator[E] {
	shown := Display(other)
	return rule("is equal to "+shown, subjectf("%s is not equal to %s", shown), func(value E) bool {
		return value == other
	})
}

// DeepEqualTo is EqualTo for types that are not comparable, using reflect.DeepEqual.
func DeepEqualTo[E any](other E) Validator[E] {
	shown := Display(other)
	return rule("is equal to "+shown, subjectf("%s is not equal to %s", shown), func(value E) bool {
		return reflect.DeepEqual(value, other)
	})
}

// In passes when the value is one of items.
func In[E comparable](items ...E) Validator[E] {
	shown := listString(items)
	return rule("is in "+shown, subjectf("%s is not in %s", shown), func(value E) bool {
		return slices.Contains(items, value)
	})
}

// GreaterThan passes when the value is strictly greater than other.
func GreaterThan[E cmp.Ordered](other E) Validator[E] {
	shown := Display(other)
	return rule("is greater than "+shown, subjectf("%s is not greater than %s", shown), func(value E) bool {
		return cmp.Compare(value, other) > 0
	})
}

// LowerThan passes when the value is strictly lower than other.
func LowerThan[E cmp.Ordered](other E) Validator[E] {
	shown := Display(other)
	return rule("is lower than "+shown, subjectf("%s is not lower than %s", shown), func(value E) bool {
		return cmp.Compare(value, other) < 0
	})
}

// Between passes when min <= value <= max.
func Between[E cmp.Ordered](min, max E) Validator[E] {
	bounds := fmt.Sprintf("between %s and %s", Display(min), Display(max))
	return rule("is "+bounds, subjectf("%s is not %s", bounds), func(value E) bool {
		return cmp.Compare(value, min) >= 0 && cmp.Compare(value, max) <= 0
	})
}
