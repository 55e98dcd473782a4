package templartypes

// DeploymentParametersRequest is the host-facing request for the deployment
// parameters command. TemplateText carries the compiled template
// representation; when empty, Templar compiles the declared defaults from
// the source document itself.
type DeploymentParametersRequest struct {
	DocumentPath   string `json:"documentPath"`
	ValuesFilePath string `json:"valuesFilePath"`
	TemplateText   string `json:"templateText"`
}

// DeploymentParametersResponse is the host-facing response. Field names and
// shape are preserved exactly for compatibility with consumers rendering
// directly from this structure.
type DeploymentParametersResponse struct {
	DeploymentParameters []DeploymentParameter `json:"deploymentParameters"`
	ParametersFileExists bool                  `json:"parametersFileExists"`
	ParametersFileName   string                `json:"parametersFileName"`
	ErrorMessage         *string               `json:"errorMessage"`
}
