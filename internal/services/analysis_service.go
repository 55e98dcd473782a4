package services

import (
	"fmt"

	"templar/internal/analysis"
	"templar/internal/logger"
)

// AnalysisService exposes template source analysis behind the registry: the
// ordered list of referenced parameter declarations and the compiled form
// of their declared defaults.
type AnalysisService struct {
	initialized bool
}

// NewAnalysisService creates a new AnalysisService instance.
func NewAnalysisService() *AnalysisService {
	return &AnalysisService{}
}

// Name returns the service name "analysis" for registration.
func (a *AnalysisService) Name() string {
	return "analysis"
}

// Initialize sets up the AnalysisService for operation.
func (a *AnalysisService) Initialize() error {
	a.initialized = true
	return nil
}

// Analyze scans template source text into its analyzed document view.
func (a *AnalysisService) Analyze(source string) (*analysis.Document, error) {
	if !a.initialized {
		return nil, fmt.Errorf("analysis service not initialized")
	}

	doc := analysis.Scan(source)
	logger.ServiceOperation("analysis", "scan", "declarations", len(doc.Declarations()))
	return doc, nil
}
