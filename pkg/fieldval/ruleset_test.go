package fieldval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldval/pkg/fieldval"
)

func TestAddRulesYAML(t *testing.T) {
	t.Run("loads a declarative rule document", func(t *testing.T) {
		doc := []byte(`
name:
  required: true
  minlength: 2
  not:
    - Homer
    - Bart
age:
  digits: true
  min: 15
`)
		v := fieldval.New()
		require.NoError(t, v.AddRulesYAML(doc))
		v.AddInput(map[string]string{"name": "Joe", "age": "39"})

		result, err := v.Validate()
		require.NoError(t, err)
		assert.True(t, result.Valid())
	})

	t.Run("merges into existing rules", func(t *testing.T) {
		v := fieldval.New()
		require.NoError(t, v.AddRules(map[string]any{"name": fieldval.RuleSet{"required": true}}))
		require.NoError(t, v.AddRulesYAML([]byte("name:\n  minlength: 2\n")))

		rules, err := v.Rules("name")
		require.NoError(t, err)
		assert.Len(t, rules, 2)
	})

	t.Run("fails with type error for a scalar field entry", func(t *testing.T) {
		v := fieldval.New()

		err := v.AddRulesYAML([]byte("name: required\n"))
		require.Error(t, err)
		assert.True(t, fieldval.IsInvalidTypeError(err))
	})

	t.Run("fails for malformed yaml", func(t *testing.T) {
		v := fieldval.New()

		err := v.AddRulesYAML([]byte("name: [unclosed"))
		assert.Error(t, err)
	})
}

func TestAddRulesJSON(t *testing.T) {
	t.Run("loads a declarative rule document", func(t *testing.T) {
		doc := []byte(`{"age": {"digits": true, "min": 15, "maxlength": 3}}`)

		v := fieldval.New()
		require.NoError(t, v.AddRulesJSON(doc))
		v.AddInput(map[string]string{"age": "39"})

		result, err := v.Validate()
		require.NoError(t, err)
		assert.True(t, result.Valid())
	})

	t.Run("fails with type error for a scalar field entry", func(t *testing.T) {
		v := fieldval.New()

		err := v.AddRulesJSON([]byte(`{"age": "digits"}`))
		require.Error(t, err)
		assert.True(t, fieldval.IsInvalidTypeError(err))
	})

	t.Run("fails for malformed json", func(t *testing.T) {
		v := fieldval.New()

		assert.Error(t, v.AddRulesJSON([]byte(`{`)))
	})
}

func TestAddInputJSON(t *testing.T) {
	t.Run("loads a flat string payload", func(t *testing.T) {
		v := fieldval.New()
		require.NoError(t, v.AddInputJSON([]byte(`{"name": "Joe", "age": "39"}`)))

		assert.Equal(t, map[string]string{"name": "Joe", "age": "39"}, v.Inputs())
	})

	t.Run("fails with type error for a non-string value", func(t *testing.T) {
		v := fieldval.New()

		err := v.AddInputJSON([]byte(`{"name": "Joe", "age": 39}`))
		require.Error(t, err)
		assert.True(t, fieldval.IsInvalidTypeError(err))
		assert.Empty(t, v.Inputs())
	})

	t.Run("fails for malformed json", func(t *testing.T) {
		v := fieldval.New()

		assert.Error(t, v.AddInputJSON([]byte(`[]`)))
	})
}
