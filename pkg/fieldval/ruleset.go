package fieldval

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Rule sets and input payloads are often authored declaratively. These
// helpers decode YAML/JSON documents straight into the stores, funneling
// through AddRules so shape errors surface the same way as for programmatic
// callers.

// AddRulesYAML decodes a YAML document of field rule sets and merges it into
// the rule store.
func (v *Validator) AddRulesYAML(data []byte) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse rules yaml: %w", err)
	}
	return v.AddRules(doc)
}

// AddRulesJSON decodes a JSON document of field rule sets and merges it into
// the rule store.
func (v *Validator) AddRulesJSON(data []byte) error {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse rules json: %w", err)
	}
	return v.AddRules(doc)
}

// AddInputJSON decodes a flat JSON object of string field values and merges
// it into the input store. A non-string member fails with an
// InvalidTypeError and leaves the store untouched.
func (v *Validator) AddInputJSON(data []byte) error {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse input json: %w", err)
	}
	input := make(map[string]string, len(doc))
	for field, raw := range doc {
		value, ok := raw.(string)
		if !ok {
			return &InvalidTypeError{
				Reason: fmt.Sprintf("input value for field %q must be a string, got %T", field, raw),
			}
		}
		input[field] = value
	}
	v.AddInput(input)
	return nil
}
