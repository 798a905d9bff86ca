package utils

import (
	"fmt"
	"strings"
)

// EnumValidator builds an ent string-field validator that accepts only the
// listed values. Values are compared exactly; store canonical strings.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q not in [%s]", s, strings.Join(allowed, ", "))
	}
}
