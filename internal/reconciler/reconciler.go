// Package reconciler implements the parameter reconciliation core: it
// classifies each declared template parameter against the compiled defaults
// and an optional values file, producing the ordered list of parameters a
// user may edit before deployment.
package reconciler

import (
	"fmt"
	"path/filepath"
	"strings"

	"templar/pkg/templartypes"
)

// ValuesFileExtension is the conventional extension of a derived
// parameter-values file name.
const ValuesFileExtension = ".parameters.json"

// Options controls reconciliation behavior outside the fixed classification
// rules.
type Options struct {
	// Strict treats an optional parameter with no compiled-default entry as
	// an internal-consistency error instead of silently dropping it.
	Strict bool
}

// Reconcile classifies the declared parameters in order and assembles the
// reconciliation result. It never mutates its inputs; apart from the values
// file existence probe delegated to fs, it is a pure function of them.
//
// Classification per declaration:
//   - composite kinds (array, object) are never editable: a required
//     composite without a file-supplied value contributes its name to the
//     diagnostic, every other composite is skipped;
//   - a required parameter absent from the values file surfaces as a missing
//     entry; one supplied by the file is already pinned and skipped;
//   - an optional parameter not overridden by the file surfaces with its
//     compiled default text, bracket-stripped when the declared default is a
//     non-literal expression.
func Reconcile(
	declarations []templartypes.ParameterDeclaration,
	compiledDefaults templartypes.CompiledDefaults,
	providedValues templartypes.ProvidedValues,
	sourceDocumentName string,
	valuesFilePath string,
	fs templartypes.Filesystem,
	opts Options,
) (templartypes.ReconciliationResult, error) {
	parameters := make([]templartypes.DeploymentParameter, 0, len(declarations))
	var missingComposites []string

	for _, decl := range declarations {
		kind := templartypes.KindForKeyword(decl.Type)

		if !decl.HasDefault {
			if kind.IsComposite() {
				if !providedValues.Has(decl.Name) {
					missingComposites = append(missingComposites, decl.Name)
				}
				continue
			}
			if providedValues.Has(decl.Name) {
				continue
			}
			parameters = append(parameters, templartypes.DeploymentParameter{
				Name:      decl.Name,
				IsMissing: true,
				Kind:      kind,
			})
			continue
		}

		// Optional parameter: the declared default applies unless the values
		// file overrides it, and composites are never surfaced for editing.
		if kind.IsComposite() || providedValues.Has(decl.Name) {
			continue
		}

		raw, ok := compiledDefaults[decl.Name]
		if !ok {
			if opts.Strict {
				return templartypes.ReconciliationResult{}, fmt.Errorf(
					"compiled template has no default entry for optional parameter %q", decl.Name)
			}
			continue
		}

		text := raw
		if decl.DefaultIsExpression {
			text = stripBrackets(raw)
		}
		parameters = append(parameters, templartypes.DeploymentParameter{
			Name:         decl.Name,
			Value:        &text,
			IsExpression: decl.DefaultIsExpression,
			Kind:         kind,
		})
	}

	exists := valuesFilePath != "" && fs.Exists(valuesFilePath)

	return templartypes.ReconciliationResult{
		Parameters:       parameters,
		ValuesFileExists: exists,
		ValuesFileName:   valuesFileName(sourceDocumentName, valuesFilePath, exists),
		Diagnostic:       compositeDiagnostic(missingComposites),
	}, nil
}

// stripBrackets removes the single bracket pair the compiler wraps
// expression defaults in. Literal defaults are never wrapped and must not
// pass through here.
func stripBrackets(raw string) string {
	return strings.TrimSuffix(strings.TrimPrefix(raw, "["), "]")
}

// valuesFileName derives the display name of the values file: the base name
// of an existing file, otherwise the source document's base name with its
// extension replaced by the conventional values extension.
func valuesFileName(sourceDocumentName, valuesFilePath string, exists bool) string {
	if exists {
		return filepath.Base(valuesFilePath)
	}
	base := filepath.Base(sourceDocumentName)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ValuesFileExtension
}

// compositeDiagnostic builds the single aggregated message for composite
// parameters that are required but neither defaulted nor file-supplied.
func compositeDiagnostic(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return fmt.Sprintf(
		"parameters of type array or object must either have a default value or be supplied through a values file; provide values for: %s",
		strings.Join(names, ", "))
}
