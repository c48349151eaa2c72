package form

import "context"

// CheckFunc reports whether a value passes a rule. Checks may block, e.g. a
// remote uniqueness lookup; the context is passed through unchanged so the
// check can bound its own latency. Returning an error signals an
// infrastructure failure of the check itself, not a rule failure, and is
// propagated to the caller without being stored as a field error.
type CheckFunc func(ctx context.Context, value any) (bool, error)

// Rule is one validation rule in a field's chain. Rules for one field form an
// ordered sequence; the first failing rule determines the reported error.
type Rule struct {
	Check             CheckFunc
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// defaultRuleMessage is used when a rule carries no message of its own.
const defaultRuleMessage = "invalid value"

func (r Rule) failure(name string, value any) ValidationError {
	message := r.Message
	if message == "" {
		message = defaultRuleMessage
	}
	return ValidationError{
		Field:             name,
		Value:             value,
		Message:           message,
		TranslationKey:    r.TranslationKey,
		TranslationValues: r.TranslationValues,
	}
}
