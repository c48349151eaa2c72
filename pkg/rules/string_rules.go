package rules

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// Required fails for nil values, whitespace-only strings, and empty
// collections.
func Required(opts ...Option) form.Rule {
	return apply(form.Rule{
		Check: predicate(func(value any) bool {
			if s, ok := value.(string); ok {
				return strings.TrimSpace(s) != ""
			}
			return !isEmpty(value)
		}),
		Message:        "This field is required",
		TranslationKey: "validation.required",
	}, opts)
}

// MinLen fails for strings shorter than min bytes. Nil reads as the empty
// string; non-string values fail.
func MinLen(min int, opts ...Option) form.Rule {
	return apply(form.Rule{
		Check: predicate(func(value any) bool {
			s, ok := asString(value)
			return ok && len(s) >= min
		}),
		Message:           fmt.Sprintf("must be at least %d characters long", min),
		TranslationKey:    "validation.min_length",
		TranslationValues: map[string]any{"min": min},
	}, opts)
}

// MaxLen fails for strings longer than max bytes and for non-string values.
func MaxLen(max int, opts ...Option) form.Rule {
	return apply(form.Rule{
		Check: predicate(func(value any) bool {
			s, ok := asString(value)
			return ok && len(s) <= max
		}),
		Message:           fmt.Sprintf("must be at most %d characters long", max),
		TranslationKey:    "validation.max_length",
		TranslationValues: map[string]any{"max": max},
	}, opts)
}

// Len fails for strings whose byte length differs from exact and for
// non-string values.
func Len(exact int, opts ...Option) form.Rule {
	return apply(form.Rule{
		Check: predicate(func(value any) bool {
			s, ok := asString(value)
			return ok && len(s) == exact
		}),
		Message:           fmt.Sprintf("must be exactly %d characters long", exact),
		TranslationKey:    "validation.exact_length",
		TranslationValues: map[string]any{"length": exact},
	}, opts)
}
