package output

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"templar/pkg/templartypes"
)

func strptr(s string) *string { return &s }

func TestRenderResponse_Plain(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), TestMode())

	resp := &templartypes.DeploymentParametersResponse{
		DeploymentParameters: []templartypes.DeploymentParameter{
			{Name: "env", Value: strptr("dev"), Kind: templartypes.KindString},
			{Name: "location", Value: strptr("resourceGroup().location"), IsExpression: true, Kind: templartypes.KindString},
			{Name: "count", IsMissing: true, Kind: templartypes.KindInt},
		},
		ParametersFileName: "main.parameters.json",
	}

	printer.RenderResponse(resp)

	assert.True(t, buffer.Contains("env"))
	assert.True(t, buffer.Contains("dev"))
	assert.True(t, buffer.Contains("(expression)"))
	assert.True(t, buffer.Contains("<missing>"))
	assert.True(t, buffer.Contains("no values file found (expected main.parameters.json)"))
}

func TestRenderResponse_ColumnsAligned(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), TestMode())

	resp := &templartypes.DeploymentParametersResponse{
		DeploymentParameters: []templartypes.DeploymentParameter{
			{Name: "a", Value: strptr("1"), Kind: templartypes.KindInt},
			{Name: "longer", Value: strptr("2"), Kind: templartypes.KindString},
		},
		ParametersFileName: "main.parameters.json",
	}

	printer.RenderResponse(resp)

	lines := buffer.Lines()
	assert.Equal(t, "  a       int     1", lines[0])
	assert.Equal(t, "  longer  string  2", lines[1])
}

func TestRenderResponse_DiagnosticAndValuesFile(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), TestMode())

	diagnostic := "provide values for: tags"
	resp := &templartypes.DeploymentParametersResponse{
		DeploymentParameters: []templartypes.DeploymentParameter{},
		ParametersFileExists: true,
		ParametersFileName:   "prod.parameters.json",
		ErrorMessage:         &diagnostic,
	}

	printer.RenderResponse(resp)

	assert.True(t, buffer.Contains("No editable parameters."))
	assert.True(t, buffer.Contains("✓ values file: prod.parameters.json"))
	assert.True(t, buffer.Contains("⚠ provide values for: tags"))
}

func TestPrinter_SemanticPrefixesInPlainMode(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), PlainText())

	printer.Info("info")
	printer.Success("done")
	printer.Warning("careful")
	printer.Error("broken")

	lines := buffer.Lines()
	assert.Equal(t, []string{"ℹ info", "✓ done", "⚠ careful", "✗ broken"}, lines)
}
