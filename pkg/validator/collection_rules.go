package validator

import (
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// HasItems passes when the collection contains every one of items.
func HasItems[E comparable](items ...E) Validator[[]E] {
	shown := listString(items)
	return rule("contains "+shown, subjectf("%s does not contain %s", shown), func(value []E) bool {
		return mapset.NewThreadUnsafeSet(value...).Contains(items...)
	})
}

// HasAny passes when the collection contains at least one of items.
// Always passes when items is empty.
func HasAny[E comparable](items ...E) Validator[[]E] {
	shown := listString(items)
	return rule("contains any of "+shown, subjectf("%s does not contain any of %s", shown), func(value []E) bool {
		if len(items) == 0 {
			return true
		}
		return intersects(value, items)
	})
}

// HasNot passes when the collection contains none of items.
func HasNot[E comparable](items ...E) Validator[[]E] {
	shown := listString(items)
	return rule("contains none of "+shown, subjectf("%s contains some of %s", shown), func(value []E) bool {
		return !intersects(value, items)
	})
}

// SameItems passes when the collection holds the same items as expected,
// independent of order.
func SameItems[E comparable](expected ...E) Validator[[]E] {
	shown := listString(expected)
	return rule("has same content as "+shown, subjectf("%s has not same content as %s", shown), func(value []E) bool {
		if len(value) != len(expected) {
			return false
		}
		return mapset.NewThreadUnsafeSet(value...).Equal(mapset.NewThreadUnsafeSet(expected...))
	})
}

// HasItemsInOrder passes when items appear in the collection as one
// contiguous run in the same order.
func HasItemsInOrder[E comparable](items ...E) Validator[[]E] {
	shown := listString(items)
	return rule("contains "+shown+" in same order", subjectf("%s does not contain %s in same order", shown), func(value []E) bool {
		if len(items) == 0 {
			return true
		}
		for start := 0; start+len(items) <= len(value); start++ {
			if slices.Equal(value[start:start+len(items)], items) {
				return true
			}
		}
		return false
	})
}

// SameItemsInOrder passes when the collection equals expected item by item.
func SameItemsInOrder[E comparable](expected ...E) Validator[[]E] {
	shown := listString(expected)
	return rule("has same ordered content as "+shown, subjectf("%s has not same ordered content as %s", shown), func(value []E) bool {
		return slices.Equal(value, expected)
	})
}

// HasSize passes when the collection has exactly size items.
func HasSize[E any](size int) Validator[[]E] {
	return rule(
		fmt.Sprintf("has a size of %d", size),
		subjectf("%s has not a size of %d", size),
		func(value []E) bool {
			return len(value) == size
		},
	)
}

// EmptyCollection passes for collections without items.
func EmptyCollection[E any]() Validator[[]E] {
	return HasSize[E](0)
}

func intersects[E comparable](a, b []E) bool {
	return mapset.NewThreadUnsafeSet(a...).Intersect(mapset.NewThreadUnsafeSet(b...)).Cardinality() > 0
}
