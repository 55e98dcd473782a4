// Package templartypes defines the shared data model for Templar.
// It contains the parameter declaration and reconciliation types exchanged
// between the analysis, codec, and reconciler layers, plus the core
// architectural interfaces for service registration.
package templartypes

// ParameterKind identifies the declared type of a template parameter.
type ParameterKind string

// Parameter kinds derived from the declared type keyword.
const (
	KindArray   ParameterKind = "array"
	KindBool    ParameterKind = "bool"
	KindInt     ParameterKind = "int"
	KindObject  ParameterKind = "object"
	KindString  ParameterKind = "string"
	KindUnknown ParameterKind = "unknown"
)

// KindForKeyword maps a declared type keyword to its ParameterKind.
// Any keyword outside the five known primitives (including an empty one)
// maps to KindUnknown.
func KindForKeyword(keyword string) ParameterKind {
	switch keyword {
	case "array":
		return KindArray
	case "bool":
		return KindBool
	case "int":
		return KindInt
	case "object":
		return KindObject
	case "string":
		return KindString
	default:
		return KindUnknown
	}
}

// IsComposite returns true for kinds whose values cannot be edited as flat
// UI fields (arrays and objects).
func (k ParameterKind) IsComposite() bool {
	return k == KindArray || k == KindObject
}

// ParameterDeclaration is an immutable snapshot of a parameter declaration,
// already filtered to declarations that are referenced elsewhere in the
// template body. The reconciler never re-derives reference usage.
type ParameterDeclaration struct {
	// Name is unique among the declarations of one document.
	Name string

	// Type is the declared type keyword as written in the source.
	Type string

	// HasDefault is true when the declaration carries a default value.
	HasDefault bool

	// DefaultIsExpression is true when the declared default is a non-literal
	// expression, decided purely from its syntactic shape.
	DefaultIsExpression bool
}

// CompiledDefaults maps a parameter name to the textual form of its compiled
// default value. Only parameters the compiler resolved a default for have an
// entry. Expression defaults are serialized wrapped in one bracket pair,
// literal defaults as plain text.
type CompiledDefaults map[string]string

// ProvidedValues is the set of parameter names supplied by a values file.
// Value contents are never inspected, only key membership.
type ProvidedValues map[string]struct{}

// Has reports whether a value was supplied for the named parameter.
func (p ProvidedValues) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Add records that a value was supplied for the named parameter.
func (p ProvidedValues) Add(name string) {
	p[name] = struct{}{}
}

// DeploymentParameter is one editable parameter in the reconciliation
// output. The JSON field names are a fixed compatibility contract with
// consumers that render directly from this structure.
type DeploymentParameter struct {
	Name         string        `json:"name"`
	Value        *string       `json:"value"`
	IsMissing    bool          `json:"isMissingParam"`
	IsExpression bool          `json:"isExpression"`
	Kind         ParameterKind `json:"parameterType"`
}

// ReconciliationResult is the outcome of reconciling declared parameters
// against compiled defaults and an optional values file.
type ReconciliationResult struct {
	// Parameters holds the editable parameters in declaration order.
	Parameters []DeploymentParameter

	// ValuesFileExists is true when a non-empty values file path resolved on
	// the filesystem.
	ValuesFileExists bool

	// ValuesFileName is the base name of the values file when it exists,
	// otherwise the conventional name derived from the source document.
	ValuesFileName string

	// Diagnostic aggregates the names of composite-typed parameters that are
	// required but neither defaulted nor file-supplied. Empty when none.
	Diagnostic string
}
