package services

import (
	"fmt"
	"os"

	"templar/internal/logger"
)

// FilesystemService provides the on-disk probes the deployment parameters
// command needs: existence checks and reads of the source document and the
// values file. It implements templartypes.Filesystem.
type FilesystemService struct {
	initialized bool
}

// NewFilesystemService creates a new FilesystemService instance.
func NewFilesystemService() *FilesystemService {
	return &FilesystemService{}
}

// Name returns the service name "filesystem" for registration.
func (f *FilesystemService) Name() string {
	return "filesystem"
}

// Initialize sets up the FilesystemService for operation.
func (f *FilesystemService) Initialize() error {
	f.initialized = true
	return nil
}

// Exists reports whether the path resolves to an existing regular file.
func (f *FilesystemService) Exists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadFile reads the file at path. A failed read is surfaced unchanged, not
// swallowed.
func (f *FilesystemService) ReadFile(path string) ([]byte, error) {
	if !f.initialized {
		return nil, fmt.Errorf("filesystem service not initialized")
	}

	logger.ServiceOperation("filesystem", "read", "path", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
