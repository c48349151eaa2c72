package rules

import (
	"github.com/dmitrymomot/formkit/pkg/form"
)

// Custom wraps an arbitrary check, including blocking ones such as remote
// uniqueness lookups. The check receives the validation context and the
// field's current value; returning an error reports an infrastructure
// failure, not a rule failure.
func Custom(check form.CheckFunc, message string, opts ...Option) form.Rule {
	return apply(form.Rule{
		Check:          check,
		Message:        message,
		TranslationKey: "validation.custom",
	}, opts)
}
