// Package codec decodes the structured-data inputs of the deployment
// parameters command: the compiled template representation and the
// parameter-values file. Both JSON and YAML encodings are accepted.
package codec

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"templar/pkg/templartypes"
)

// compiledTemplate is the subset of the compiled representation the command
// needs: the parameters section keyed by name.
type compiledTemplate struct {
	Parameters map[string]compiledParameter `yaml:"parameters"`
}

type compiledParameter struct {
	Type         string    `yaml:"type"`
	DefaultValue yaml.Node `yaml:"defaultValue"`
}

// valuesFile is the conventional wrapped shape of a parameter-values file.
type valuesFile struct {
	Parameters map[string]yaml.Node `yaml:"parameters"`
}

// DecodeCompiledTemplate extracts the compiled default values from template
// text. Each resolved default is serialized to its textual form: strings
// verbatim, other scalars as their token, composites as compact JSON.
// Malformed text is an error, never silently defaulted.
func DecodeCompiledTemplate(text string) (templartypes.CompiledDefaults, error) {
	var template compiledTemplate
	if err := yaml.Unmarshal([]byte(text), &template); err != nil {
		return nil, fmt.Errorf("failed to decode compiled template: %w", err)
	}

	defaults := make(templartypes.CompiledDefaults)
	for name, param := range template.Parameters {
		if param.DefaultValue.IsZero() {
			continue
		}
		raw, err := serializeDefault(&param.DefaultValue)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize default for parameter %q: %w", name, err)
		}
		defaults[name] = raw
	}
	return defaults, nil
}

// DecodeValues extracts the set of parameter names a values file supplies.
// Both the wrapped shape {"parameters": {<name>: {"value": ...}}} and a flat
// {<name>: <value>} map are accepted. Value contents are never inspected.
func DecodeValues(data []byte) (templartypes.ProvidedValues, error) {
	var wrapped valuesFile
	if err := yaml.Unmarshal(data, &wrapped); err == nil && len(wrapped.Parameters) > 0 {
		return nameSet(wrapped.Parameters), nil
	}

	var flat map[string]yaml.Node
	if err := yaml.Unmarshal(data, &flat); err != nil {
		return nil, fmt.Errorf("failed to decode values file: %w", err)
	}

	provided := make(templartypes.ProvidedValues)
	for name := range flat {
		// File-format bookkeeping keys are not parameter names.
		if strings.HasPrefix(name, "$") || name == "contentVersion" {
			continue
		}
		provided.Add(name)
	}
	return provided, nil
}

func nameSet(parameters map[string]yaml.Node) templartypes.ProvidedValues {
	provided := make(templartypes.ProvidedValues)
	for name := range parameters {
		provided.Add(name)
	}
	return provided
}

// serializeDefault renders one defaultValue node as text. Composite values
// round-trip through compact JSON so they stay on one line.
func serializeDefault(node *yaml.Node) (string, error) {
	if node.Kind == yaml.ScalarNode {
		return node.Value, nil
	}

	var value interface{}
	if err := node.Decode(&value); err != nil {
		return "", err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
