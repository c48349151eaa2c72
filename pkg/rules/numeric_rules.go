package rules

import (
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// Min fails for numbers below min and for non-numeric values.
func Min(min float64, opts ...Option) form.Rule {
	return apply(form.Rule{
		Check: predicate(func(value any) bool {
			n, ok := asNumber(value)
			return ok && n >= min
		}),
		Message:           fmt.Sprintf("must be at least %v", min),
		TranslationKey:    "validation.min",
		TranslationValues: map[string]any{"min": min},
	}, opts)
}

// Max fails for numbers above max and for non-numeric values.
func Max(max float64, opts ...Option) form.Rule {
	return apply(form.Rule{
		Check: predicate(func(value any) bool {
			n, ok := asNumber(value)
			return ok && n <= max
		}),
		Message:           fmt.Sprintf("must be at most %v", max),
		TranslationKey:    "validation.max",
		TranslationValues: map[string]any{"max": max},
	}, opts)
}

// Between fails for numbers outside [min, max] and for non-numeric values.
func Between(min, max float64, opts ...Option) form.Rule {
	return apply(form.Rule{
		Check: predicate(func(value any) bool {
			n, ok := asNumber(value)
			return ok && n >= min && n <= max
		}),
		Message:           fmt.Sprintf("must be between %v and %v", min, max),
		TranslationKey:    "validation.between",
		TranslationValues: map[string]any{"min": min, "max": max},
	}, opts)
}
