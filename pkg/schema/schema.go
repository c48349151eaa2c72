package schema

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/rules"
)

// Definition is a declarative form description: named fields with initial
// values and rule chains. Rule order in the document is the evaluation order.
type Definition struct {
	Fields []FieldDef `yaml:"fields"`
}

// FieldDef describes one field.
type FieldDef struct {
	Name    string    `yaml:"name"`
	Initial any       `yaml:"initial"`
	Rules   []RuleDef `yaml:"rules"`
}

// RuleDef describes one rule by type plus its parameters. Message overrides
// the rule's default error message when set.
type RuleDef struct {
	Type    string   `yaml:"type"`
	Message string   `yaml:"message"`
	Min     *float64 `yaml:"min"`
	Max     *float64 `yaml:"max"`
	Length  *int     `yaml:"length"`
	Pattern string   `yaml:"pattern"`
	Values  []any    `yaml:"values"`
}

// Parse decodes and validates a YAML form definition.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	seen := make(map[string]struct{}, len(def.Fields))
	for _, field := range def.Fields {
		if field.Name == "" {
			return nil, ErrEmptyFieldName
		}
		if _, dup := seen[field.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, field.Name)
		}
		seen[field.Name] = struct{}{}
	}

	return &def, nil
}

// Build materializes the definition into a live form controller: initial
// values seeded, rule chains registered. Extra options are passed through to
// form.New.
func (d *Definition) Build(opts ...form.Option) (*form.Form, error) {
	chains := make(map[string][]form.Rule, len(d.Fields))
	for _, field := range d.Fields {
		chain := make([]form.Rule, 0, len(field.Rules))
		for _, rd := range field.Rules {
			rule, err := buildRule(rd)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", field.Name, err)
			}
			chain = append(chain, rule)
		}
		chains[field.Name] = chain
	}

	initial := make(form.Values, len(d.Fields))
	for _, field := range d.Fields {
		initial[field.Name] = field.Initial
	}

	f := form.New(append(opts, form.WithInitialValues(initial))...)
	for _, field := range d.Fields {
		f.UpdateFieldRules(field.Name, chains[field.Name])
	}
	return f, nil
}

func buildRule(def RuleDef) (form.Rule, error) {
	var opts []rules.Option
	if def.Message != "" {
		opts = append(opts, rules.WithMessage(def.Message))
	}

	switch def.Type {
	case "required":
		return rules.Required(opts...), nil
	case "min_len":
		if def.Min == nil {
			return form.Rule{}, fmt.Errorf("%w: min_len needs min", ErrInvalidRuleParams)
		}
		return rules.MinLen(int(*def.Min), opts...), nil
	case "max_len":
		if def.Max == nil {
			return form.Rule{}, fmt.Errorf("%w: max_len needs max", ErrInvalidRuleParams)
		}
		return rules.MaxLen(int(*def.Max), opts...), nil
	case "len":
		if def.Length == nil {
			return form.Rule{}, fmt.Errorf("%w: len needs length", ErrInvalidRuleParams)
		}
		return rules.Len(*def.Length, opts...), nil
	case "email":
		return rules.Email(opts...), nil
	case "url":
		return rules.URL(opts...), nil
	case "pattern":
		if def.Pattern == "" {
			return form.Rule{}, fmt.Errorf("%w: pattern needs pattern", ErrInvalidRuleParams)
		}
		re, err := regexp.Compile(def.Pattern)
		if err != nil {
			return form.Rule{}, fmt.Errorf("%w: %w", ErrInvalidRuleParams, err)
		}
		return rules.Matches(re, opts...), nil
	case "min":
		if def.Min == nil {
			return form.Rule{}, fmt.Errorf("%w: min needs min", ErrInvalidRuleParams)
		}
		return rules.Min(*def.Min, opts...), nil
	case "max":
		if def.Max == nil {
			return form.Rule{}, fmt.Errorf("%w: max needs max", ErrInvalidRuleParams)
		}
		return rules.Max(*def.Max, opts...), nil
	case "between":
		if def.Min == nil || def.Max == nil {
			return form.Rule{}, fmt.Errorf("%w: between needs min and max", ErrInvalidRuleParams)
		}
		return rules.Between(*def.Min, *def.Max, opts...), nil
	case "one_of":
		if len(def.Values) == 0 {
			return form.Rule{}, fmt.Errorf("%w: one_of needs values", ErrInvalidRuleParams)
		}
		return rules.OneOf(def.Values, opts...), nil
	default:
		return form.Rule{}, fmt.Errorf("%w: %q", ErrUnknownRule, def.Type)
	}
}
