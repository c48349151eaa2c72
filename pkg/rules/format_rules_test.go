package rules_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/rules"
)

func TestEmail(t *testing.T) {
	r := rules.Email()

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"plain address", "user@example.com", true},
		{"subdomain", "user@mail.example.co.uk", true},
		{"missing at", "userexample.com", false},
		{"missing domain dot", "user@localhost", false},
		{"leading domain dot", "user@.example.com", false},
		{"trailing domain dot", "user@example.com.", false},
		{"empty domain part", "user@example..com", false},
		{"empty string", "", false},
		{"whitespace", "   ", false},
		{"non-string", 42, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, check(t, r, tt.value))
		})
	}
}

func TestURL(t *testing.T) {
	r := rules.URL()

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"https", "https://example.com/path", true},
		{"http", "http://example.com", true},
		{"missing scheme", "example.com", false},
		{"unsupported scheme", "ftp://example.com", false},
		{"scheme only", "https://", false},
		{"non-string", 42, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, check(t, r, tt.value))
		})
	}
}

func TestPattern(t *testing.T) {
	r := rules.Pattern(`^[a-z]+$`)

	t.Run("matching string passes", func(t *testing.T) {
		assert.True(t, check(t, r, "lowercase"))
	})

	t.Run("non-matching string fails", func(t *testing.T) {
		assert.False(t, check(t, r, "Mixed"))
	})

	t.Run("non-string fails", func(t *testing.T) {
		assert.False(t, check(t, r, 42))
	})

	t.Run("invalid expression panics at construction", func(t *testing.T) {
		assert.Panics(t, func() {
			rules.Pattern(`([`)
		})
	})
}

func TestMatches(t *testing.T) {
	re := regexp.MustCompile(`^\d{4}$`)
	r := rules.Matches(re)

	assert.True(t, check(t, r, "1234"))
	assert.False(t, check(t, r, "12345"))
	assert.Contains(t, r.Message, re.String())
}
