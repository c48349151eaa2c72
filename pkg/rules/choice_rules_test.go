package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/rules"
)

func TestOneOf(t *testing.T) {
	r := rules.OneOf([]any{"red", "green", "blue"})

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"allowed value", "green", true},
		{"forbidden value", "yellow", false},
		{"nil", nil, false},
		{"different type", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, check(t, r, tt.value))
		})
	}

	t.Run("deep equality for composite values", func(t *testing.T) {
		r := rules.OneOf([]any{[]string{"a", "b"}})
		assert.True(t, check(t, r, []string{"a", "b"}))
		assert.False(t, check(t, r, []string{"a"}))
	})
}
