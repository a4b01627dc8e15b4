package validator

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// SemVer passes for strings that parse as a semantic version.
func SemVer[E ~string]() Validator[E] {
	return New("is a semantic version", Placeholder+" is not a semantic version", func(value E) bool {
		_, err := semver.NewVersion(string(value))
		return err == nil
	})
}

// SatisfiesVersion passes for versions matching constraint, e.g. ">= 1.2, < 2".
// Strings that are not versions fail. Panics if constraint does not parse.
func SatisfiesVersion[E ~string](constraint string) Validator[E] {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		panic(fmt.Errorf("validator: invalid version constraint %q: %w", constraint, err))
	}
	return rule(
		fmt.Sprintf("satisfies %q", constraint),
		subjectf("%s does not satisfy %q", constraint),
		func(value E) bool {
			v, err := semver.NewVersion(string(value))
			if err != nil {
				return false
			}
			return c.Check(v)
		},
	)
}
