package output

import (
	"fmt"
	"strings"

	"templar/pkg/templartypes"
)

// RenderResponse writes a deployment parameters response as an aligned
// parameter listing, followed by the values-file summary and any composite
// diagnostic.
func (p *Printer) RenderResponse(resp *templartypes.DeploymentParametersResponse) {
	if len(resp.DeploymentParameters) == 0 {
		p.Println("No editable parameters.")
	} else {
		nameWidth, kindWidth := columnWidths(resp.DeploymentParameters)
		for _, param := range resp.DeploymentParameters {
			p.renderParameter(param, nameWidth, kindWidth)
		}
	}

	p.Println("")
	if resp.ParametersFileExists {
		p.Success(fmt.Sprintf("values file: %s", resp.ParametersFileName))
	} else {
		p.Info(fmt.Sprintf("no values file found (expected %s)", resp.ParametersFileName))
	}

	if resp.ErrorMessage != nil {
		p.Warning(*resp.ErrorMessage)
	}
}

func (p *Printer) renderParameter(param templartypes.DeploymentParameter, nameWidth, kindWidth int) {
	name := pad(param.Name, nameWidth)
	kind := pad(string(param.Kind), kindWidth)
	if p.styled() {
		name = p.styles.Parameter.Render(name)
		kind = p.styles.Kind.Render(kind)
	}

	value := p.renderValue(param)
	p.Printf("  %s  %s  %s\n", name, kind, value)
}

func (p *Printer) renderValue(param templartypes.DeploymentParameter) string {
	switch {
	case param.IsMissing:
		text := "<missing>"
		if p.styled() {
			return p.styles.Missing.Render(text)
		}
		return text
	case param.IsExpression:
		text := fmt.Sprintf("%s  (expression)", deref(param.Value))
		if p.styled() {
			return p.styles.Expression.Render(text)
		}
		return text
	default:
		return deref(param.Value)
	}
}

func columnWidths(parameters []templartypes.DeploymentParameter) (nameWidth, kindWidth int) {
	for _, param := range parameters {
		if len(param.Name) > nameWidth {
			nameWidth = len(param.Name)
		}
		if len(param.Kind) > kindWidth {
			kindWidth = len(param.Kind)
		}
	}
	return nameWidth, kindWidth
}

func pad(text string, width int) string {
	if len(text) >= width {
		return text
	}
	return text + strings.Repeat(" ", width-len(text))
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
