package schema_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/schema"
)

const signupSchema = `
fields:
  - name: email
    initial: ""
    rules:
      - type: required
      - type: email
  - name: username
    initial: ""
    rules:
      - type: required
      - type: min_len
        min: 3
        message: "Pick a longer username"
      - type: pattern
        pattern: "^[a-z0-9_]+$"
  - name: age
    rules:
      - type: between
        min: 18
        max: 130
  - name: plan
    initial: free
    rules:
      - type: one_of
        values: [free, pro, team]
`

func TestParse(t *testing.T) {
	t.Run("decodes fields and rules", func(t *testing.T) {
		def, err := schema.Parse([]byte(signupSchema))
		require.NoError(t, err)

		require.Len(t, def.Fields, 4)
		assert.Equal(t, "email", def.Fields[0].Name)
		assert.Len(t, def.Fields[1].Rules, 3)
		assert.Equal(t, "Pick a longer username", def.Fields[1].Rules[1].Message)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := schema.Parse([]byte("fields: [unclosed"))
		assert.ErrorIs(t, err, schema.ErrInvalidSchema)
	})

	t.Run("rejects an unnamed field", func(t *testing.T) {
		_, err := schema.Parse([]byte("fields:\n  - initial: x\n"))
		assert.ErrorIs(t, err, schema.ErrEmptyFieldName)
	})

	t.Run("rejects duplicate field names", func(t *testing.T) {
		doc := "fields:\n  - name: a\n  - name: a\n"
		_, err := schema.Parse([]byte(doc))
		assert.ErrorIs(t, err, schema.ErrDuplicateField)
	})
}

func TestDefinition_Build(t *testing.T) {
	t.Run("builds a live form with seeded values", func(t *testing.T) {
		def, err := schema.Parse([]byte(signupSchema))
		require.NoError(t, err)

		f, err := def.Build()
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, "free", f.Value("plan"))
		assert.Equal(t, []string{"age", "email", "plan", "username"}, f.Fields())
	})

	t.Run("registered rules fail with configured messages", func(t *testing.T) {
		def, err := schema.Parse([]byte(signupSchema))
		require.NoError(t, err)

		f, err := def.Build()
		require.NoError(t, err)
		defer f.Close()

		f.UpdateField("username", "ab")
		_, err = f.Validate(context.Background(), "username")

		verr, ok := form.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "username", verr.Field)
		assert.Equal(t, "Pick a longer username", verr.Message)
	})

	t.Run("valid input passes end to end", func(t *testing.T) {
		def, err := schema.Parse([]byte(signupSchema))
		require.NoError(t, err)

		f, err := def.Build()
		require.NoError(t, err)
		defer f.Close()

		f.UpdateField("email", "user@example.com")
		f.UpdateField("username", "gopher_42")
		f.UpdateField("age", 30)

		values, err := f.Validate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, form.Values{
			"email":    "user@example.com",
			"username": "gopher_42",
			"age":      30,
			"plan":     "free",
		}, values)
	})

	t.Run("unknown rule type fails the build", func(t *testing.T) {
		doc := "fields:\n  - name: a\n    rules:\n      - type: telepathy\n"
		def, err := schema.Parse([]byte(doc))
		require.NoError(t, err)

		_, err = def.Build()
		assert.ErrorIs(t, err, schema.ErrUnknownRule)
	})

	t.Run("missing rule parameters fail the build", func(t *testing.T) {
		doc := "fields:\n  - name: a\n    rules:\n      - type: min_len\n"
		def, err := schema.Parse([]byte(doc))
		require.NoError(t, err)

		_, err = def.Build()
		assert.ErrorIs(t, err, schema.ErrInvalidRuleParams)
	})

	t.Run("invalid pattern fails the build", func(t *testing.T) {
		doc := "fields:\n  - name: a\n    rules:\n      - type: pattern\n        pattern: \"([\"\n"
		def, err := schema.Parse([]byte(doc))
		require.NoError(t, err)

		_, err = def.Build()
		assert.ErrorIs(t, err, schema.ErrInvalidRuleParams)
	})
}
