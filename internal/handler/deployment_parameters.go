// Package handler implements the host-facing deployment parameters command:
// it orchestrates the collaborator services around the reconciliation core
// and assembles the wire response.
package handler

import (
	"fmt"

	"templar/internal/logger"
	"templar/internal/reconciler"
	"templar/internal/services"
	"templar/internal/testutils"
	"templar/pkg/templartypes"
)

// Options controls handler behavior.
type Options struct {
	// Strict propagates to the reconciler: a missing compiled-default entry
	// for an optional parameter becomes a command failure.
	Strict bool

	// TestMode makes request correlation IDs deterministic.
	TestMode bool
}

// DeploymentParametersHandler serves DeploymentParametersRequest. It holds
// no per-request state; one instance is safe for concurrent requests.
type DeploymentParametersHandler struct {
	registry *services.Registry
	opts     Options
}

// NewDeploymentParametersHandler creates a handler bound to a service
// registry.
func NewDeploymentParametersHandler(registry *services.Registry, opts Options) *DeploymentParametersHandler {
	return &DeploymentParametersHandler{registry: registry, opts: opts}
}

// Handle reconciles the template's declared parameters against its compiled
// defaults and the optional values file. Decode and read failures abort the
// response; the composite-parameter diagnostic travels in-band as
// errorMessage.
func (h *DeploymentParametersHandler) Handle(req templartypes.DeploymentParametersRequest) (*templartypes.DeploymentParametersResponse, error) {
	requestID := testutils.GenerateRequestID(h.opts.TestMode)
	logger.RequestReceived(requestID, req.DocumentPath, req.ValuesFilePath)

	fs, err := h.filesystemService()
	if err != nil {
		return nil, err
	}
	analysisService, err := h.analysisService()
	if err != nil {
		return nil, err
	}
	codecService, err := h.codecService()
	if err != nil {
		return nil, err
	}

	source, err := fs.ReadFile(req.DocumentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template document: %w", err)
	}

	doc, err := analysisService.Analyze(string(source))
	if err != nil {
		return nil, err
	}

	var defaults templartypes.CompiledDefaults
	if req.TemplateText != "" {
		defaults, err = codecService.DecodeCompiledTemplate(req.TemplateText)
		if err != nil {
			return nil, err
		}
	} else {
		defaults = doc.CompileDefaults()
	}

	provided := make(templartypes.ProvidedValues)
	if req.ValuesFilePath != "" && fs.Exists(req.ValuesFilePath) {
		data, err := fs.ReadFile(req.ValuesFilePath)
		if err != nil {
			return nil, err
		}
		provided, err = codecService.DecodeValues(data)
		if err != nil {
			return nil, err
		}
	}

	result, err := reconciler.Reconcile(
		doc.Declarations(), defaults, provided,
		req.DocumentPath, req.ValuesFilePath,
		fs, reconciler.Options{Strict: h.opts.Strict},
	)
	if err != nil {
		return nil, err
	}

	logger.RequestCompleted(requestID, len(result.Parameters), result.Diagnostic)
	return buildResponse(result), nil
}

// buildResponse maps the reconciliation result onto the wire contract.
func buildResponse(result templartypes.ReconciliationResult) *templartypes.DeploymentParametersResponse {
	parameters := result.Parameters
	if parameters == nil {
		parameters = []templartypes.DeploymentParameter{}
	}

	var errorMessage *string
	if result.Diagnostic != "" {
		diagnostic := result.Diagnostic
		errorMessage = &diagnostic
	}

	return &templartypes.DeploymentParametersResponse{
		DeploymentParameters: parameters,
		ParametersFileExists: result.ValuesFileExists,
		ParametersFileName:   result.ValuesFileName,
		ErrorMessage:         errorMessage,
	}
}

func (h *DeploymentParametersHandler) filesystemService() (*services.FilesystemService, error) {
	service, err := h.registry.GetService("filesystem")
	if err != nil {
		return nil, err
	}
	fs, ok := service.(*services.FilesystemService)
	if !ok {
		return nil, fmt.Errorf("service filesystem has unexpected type %T", service)
	}
	return fs, nil
}

func (h *DeploymentParametersHandler) analysisService() (*services.AnalysisService, error) {
	service, err := h.registry.GetService("analysis")
	if err != nil {
		return nil, err
	}
	analysisService, ok := service.(*services.AnalysisService)
	if !ok {
		return nil, fmt.Errorf("service analysis has unexpected type %T", service)
	}
	return analysisService, nil
}

func (h *DeploymentParametersHandler) codecService() (*services.CodecService, error) {
	service, err := h.registry.GetService("codec")
	if err != nil {
		return nil, err
	}
	codecService, ok := service.(*services.CodecService)
	if !ok {
		return nil, fmt.Errorf("service codec has unexpected type %T", service)
	}
	return codecService, nil
}
