package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Matches passes when the whole string matches the regular expression.
// Panics if pattern does not compile.
func Matches[E ~string](pattern string) Validator[E] {
	re := regexp.MustCompile(`^(?:` + pattern + `)$`)
	return rule(
		fmt.Sprintf("matches %q", pattern),
		subjectf("%s does not match %q", pattern),
		func(value E) bool {
			return re.MatchString(string(value))
		},
	)
}

// IsSubstringOf passes when the value occurs within s.
func IsSubstringOf[E ~string](s string) Validator[E] {
	return rule(
		fmt.Sprintf("is substring of %q", s),
		subjectf("%s is no substring of %q", s),
		func(value E) bool {
			return strings.Contains(s, string(value))
		},
	)
}

// Contains passes when the value contains other.
func Contains[E ~string](other string) Validator[E] {
	return rule(
		fmt.Sprintf("contains %q", other),
		subjectf("%s does not contain %q", other),
		func(value E) bool {
			return strings.Contains(string(value), other)
		},
	)
}

// HasLength passes when the value has exactly length characters.
func HasLength[E ~string](length int) Validator[E] {
	return rule(
		fmt.Sprintf("has length of %d", length),
		subjectf("%s does not have length of %d", length),
		func(value E) bool {
			return utf8.RuneCountInString(string(value)) == length
		},
	)
}

// EqualIgnoreCase passes when the value equals other under Unicode case folding.
func EqualIgnoreCase[E ~string](other string) Validator[E] {
	fold := cases.Fold()
	folded := fold.String(other)
	return rule(
		fmt.Sprintf("is equal, ignoring case, to %q", other),
		subjectf("%s does not equal, ignoring case, to %q", other),
		func(value E) bool {
			return fold.String(string(value)) == folded
		},
	)
}

// StartsWith passes when the value has the given prefix.
func StartsWith[E ~string](prefix string) Validator[E] {
	return rule(
		fmt.Sprintf("starts with %q", prefix),
		subjectf("%s does not start with %q", prefix),
		func(value E) bool {
			return strings.HasPrefix(string(value), prefix)
		},
	)
}

// EndsWith passes when the value has the given suffix.
func EndsWith[E ~string](suffix string) Validator[E] {
	return rule(
		fmt.Sprintf("ends with %q", suffix),
		subjectf("%s does not end with %q", suffix),
		func(value E) bool {
			return strings.HasSuffix(string(value), suffix)
		},
	)
}

// EmptyString passes for the empty string.
func EmptyString[E ~string]() Validator[E] {
	return New("is empty string", Placeholder+" is not empty string", func(value E) bool {
		return value == ""
	})
}

// Whitespace passes when the value consists of whitespace only, or nothing at all.
func Whitespace[E ~string]() Validator[E] {
	return New("is whitespace", Placeholder+" is not whitespace", func(value E) bool {
		return strings.TrimSpace(string(value)) == ""
	})
}
