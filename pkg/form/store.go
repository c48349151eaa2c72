package form

import "slices"

// Values maps field names to their values.
type Values map[string]any

// fieldStore holds current field values and registered rule chains. It is
// total over its domain: unknown names read as a nil value and an empty rule
// chain, and no operation fails. The enclosing Form serializes access; the
// store itself performs no locking.
type fieldStore struct {
	values map[string]any
	rules  map[string][]Rule
}

func newFieldStore(initial Values) *fieldStore {
	s := &fieldStore{
		values: make(map[string]any, len(initial)),
		rules:  make(map[string][]Rule),
	}
	for name, value := range initial {
		s.values[name] = value
	}
	return s
}

func (s *fieldStore) setValue(name string, value any) {
	s.values[name] = value
}

func (s *fieldStore) value(name string) any {
	return s.values[name]
}

// setRules replaces the field's rule chain wholesale. Chains are never
// merged; the copy guards against later mutation of the caller's slice.
func (s *fieldStore) setRules(name string, rules []Rule) {
	s.rules[name] = slices.Clone(rules)
}

func (s *fieldStore) ruleChain(name string) []Rule {
	return s.rules[name]
}

func (s *fieldStore) delete(name string) {
	delete(s.values, name)
	delete(s.rules, name)
}

// names returns all field names currently in the value store, sorted so the
// default validation order is deterministic.
func (s *fieldStore) names() []string {
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (s *fieldStore) snapshot() Values {
	values := make(Values, len(s.values))
	for name, value := range s.values {
		values[name] = value
	}
	return values
}
