package rules

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// OneOf fails for values equal to none of the allowed ones. Equality is deep,
// so slice- and map-valued fields compare by content.
func OneOf(allowed []any, opts ...Option) form.Rule {
	return apply(form.Rule{
		Check: predicate(func(value any) bool {
			for _, candidate := range allowed {
				if reflect.DeepEqual(value, candidate) {
					return true
				}
			}
			return false
		}),
		Message:           fmt.Sprintf("must be one of: %v", allowed),
		TranslationKey:    "validation.one_of",
		TranslationValues: map[string]any{"allowed_values": allowed},
	}, opts)
}
