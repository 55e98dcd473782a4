package services

import (
	"fmt"

	"templar/internal/codec"
	"templar/internal/logger"
	"templar/pkg/templartypes"
)

// CodecService exposes structured-data decoding behind the registry:
// compiled template text into the compiled-defaults map, and values file
// content into the provided-values set.
type CodecService struct {
	initialized bool
}

// NewCodecService creates a new CodecService instance.
func NewCodecService() *CodecService {
	return &CodecService{}
}

// Name returns the service name "codec" for registration.
func (c *CodecService) Name() string {
	return "codec"
}

// Initialize sets up the CodecService for operation.
func (c *CodecService) Initialize() error {
	c.initialized = true
	return nil
}

// DecodeCompiledTemplate decodes compiled template text into the
// compiled-defaults map.
func (c *CodecService) DecodeCompiledTemplate(text string) (templartypes.CompiledDefaults, error) {
	if !c.initialized {
		return nil, fmt.Errorf("codec service not initialized")
	}

	defaults, err := codec.DecodeCompiledTemplate(text)
	if err != nil {
		return nil, err
	}
	logger.ServiceOperation("codec", "decode_template", "defaults", len(defaults))
	return defaults, nil
}

// DecodeValues decodes values file content into the provided-values set.
func (c *CodecService) DecodeValues(data []byte) (templartypes.ProvidedValues, error) {
	if !c.initialized {
		return nil, fmt.Errorf("codec service not initialized")
	}

	provided, err := codec.DecodeValues(data)
	if err != nil {
		return nil, err
	}
	logger.ServiceOperation("codec", "decode_values", "names", len(provided))
	return provided, nil
}
