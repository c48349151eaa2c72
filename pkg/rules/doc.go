// Package rules provides ready-made validation rules for the form engine.
// Each constructor returns a form.Rule that can be registered in a field's
// rule chain; rules carry a default message and translation metadata, both
// overridable per rule.
//
// Rules are field-agnostic: the field name and the offending value are bound
// into the resulting ValidationError by the engine at validation time, not at
// construction.
//
//	f.UpdateFieldRules("email", []form.Rule{
//	    rules.Required(),
//	    rules.Email(rules.WithMessage("Enter a real address")),
//	})
//
// Built-in rules are synchronous and allocation-light. Checks that block,
// such as a remote uniqueness lookup, are wrapped with Custom and should
// bound their own latency through the context they receive.
package rules
