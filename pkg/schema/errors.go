package schema

import "errors"

var (
	// ErrInvalidSchema is returned when the document is not valid YAML for a
	// form definition.
	ErrInvalidSchema = errors.New("schema: invalid form definition")

	// ErrEmptyFieldName is returned when a field entry has no name.
	ErrEmptyFieldName = errors.New("schema: field name is required")

	// ErrDuplicateField is returned when two field entries share a name.
	ErrDuplicateField = errors.New("schema: duplicate field name")

	// ErrUnknownRule is returned when a rule entry names an unknown type.
	ErrUnknownRule = errors.New("schema: unknown rule type")

	// ErrInvalidRuleParams is returned when a rule entry is missing or
	// carries unusable parameters.
	ErrInvalidRuleParams = errors.New("schema: invalid rule parameters")
)
