// Package analysis scans template source documents for parameter
// declarations. It produces the ordered declaration list filtered to
// parameters actually referenced in the template body, decides from the
// syntactic shape of each declared default whether it is a plain string
// literal or a non-literal expression, and can compile the declared defaults
// into their serialized textual form.
package analysis

import (
	"regexp"
	"strings"

	"templar/pkg/templartypes"
)

// declarationPattern matches one parameter declaration line:
// param <name> [<type>] [= <default>]
var declarationPattern = regexp.MustCompile(
	`^param\s+([A-Za-z_][A-Za-z0-9_]*)(?:\s+([A-Za-z][A-Za-z0-9]*))?(?:\s*=\s*(.+))?$`)

// declaration is the full scanner view of one parameter declaration,
// including the raw default text the cross-package snapshot omits.
type declaration struct {
	templartypes.ParameterDeclaration
	defaultText string
}

// Document is the analyzed view of one template source document.
type Document struct {
	declarations []declaration
}

// Scan analyzes template source text. Usage detection is lexical: a
// declared parameter counts as referenced when its identifier occurs
// anywhere in the comment-stripped document outside its own declaration
// line.
func Scan(source string) *Document {
	lines := strings.Split(source, "\n")
	stripped := make([]string, len(lines))
	for i, line := range lines {
		stripped[i] = stripComment(line)
	}

	var decls []declaration
	declLine := make(map[string]int)
	for i, line := range stripped {
		match := declarationPattern.FindStringSubmatch(strings.TrimSpace(line))
		if match == nil {
			continue
		}
		name, typeKeyword, defaultText := match[1], match[2], strings.TrimSpace(match[3])
		if _, seen := declLine[name]; seen {
			// Duplicate declarations are a source error; the first one wins.
			continue
		}
		declLine[name] = i
		decls = append(decls, declaration{
			ParameterDeclaration: templartypes.ParameterDeclaration{
				Name:                name,
				Type:                typeKeyword,
				HasDefault:          defaultText != "",
				DefaultIsExpression: defaultText != "" && !isStringLiteral(defaultText),
			},
			defaultText: defaultText,
		})
	}

	doc := &Document{}
	for _, decl := range decls {
		if referenced(stripped, decl.Name, declLine[decl.Name]) {
			doc.declarations = append(doc.declarations, decl)
		}
	}
	return doc
}

// Declarations returns the referenced parameter declarations in source
// order.
func (d *Document) Declarations() []templartypes.ParameterDeclaration {
	result := make([]templartypes.ParameterDeclaration, len(d.declarations))
	for i, decl := range d.declarations {
		result[i] = decl.ParameterDeclaration
	}
	return result
}

// CompileDefaults serializes the declared defaults of the referenced
// parameters: literal string defaults as their unquoted text, everything
// else wrapped in one bracket pair.
func (d *Document) CompileDefaults() templartypes.CompiledDefaults {
	defaults := make(templartypes.CompiledDefaults)
	for _, decl := range d.declarations {
		if !decl.HasDefault {
			continue
		}
		if decl.DefaultIsExpression {
			defaults[decl.Name] = "[" + decl.defaultText + "]"
		} else {
			defaults[decl.Name] = decl.defaultText[1 : len(decl.defaultText)-1]
		}
	}
	return defaults
}

// referenced reports whether the identifier occurs outside its declaration
// line.
func referenced(lines []string, name string, declLine int) bool {
	pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
	for i, line := range lines {
		if i == declLine {
			continue
		}
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}

// isStringLiteral decides from syntactic shape alone whether a default is a
// plain single-quoted string literal. Interpolated strings, concatenations,
// ternaries, and every non-string token are non-literal expressions.
func isStringLiteral(text string) bool {
	if len(text) < 2 || text[0] != '\'' || text[len(text)-1] != '\'' {
		return false
	}
	inner := text[1 : len(text)-1]
	return !strings.Contains(inner, "'") && !strings.Contains(inner, "${")
}

// stripComment removes a trailing line comment, honoring single-quoted
// strings so a "//" inside a literal survives.
func stripComment(line string) string {
	inQuote := false
	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '\'':
			inQuote = !inQuote
		case !inQuote && line[i] == '/' && i+1 < len(line) && line[i+1] == '/':
			return line[:i]
		}
	}
	return line
}
