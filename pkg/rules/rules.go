package rules

import (
	"context"
	"reflect"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// Option overrides the defaults of a constructed rule.
type Option func(*form.Rule)

// WithMessage replaces the rule's default error message.
func WithMessage(message string) Option {
	return func(r *form.Rule) {
		r.Message = message
	}
}

// WithTranslationKey replaces the rule's default translation key.
func WithTranslationKey(key string) Option {
	return func(r *form.Rule) {
		r.TranslationKey = key
	}
}

func apply(r form.Rule, opts []Option) form.Rule {
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// predicate adapts a plain predicate into a CheckFunc. All built-in rules are
// synchronous; Custom is the entry point for blocking checks.
func predicate(check func(value any) bool) form.CheckFunc {
	return func(_ context.Context, value any) (bool, error) {
		return check(value), nil
	}
}

// asString interprets a value for the string rules. Nil reads as the empty
// string; non-string values fail the interpreting rule outright.
func asString(value any) (string, bool) {
	if value == nil {
		return "", true
	}
	s, ok := value.(string)
	return s, ok
}

// asNumber coerces any Go numeric type to float64.
func asNumber(value any) (float64, bool) {
	switch n := value.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// isEmpty reports whether a value counts as absent for Required.
func isEmpty(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
