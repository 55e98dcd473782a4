package templartypes

// Service defines the interface for Templar services that provide specific
// functionality. Services are initialized at startup and accessed by the
// command handlers during execution.
type Service interface {
	Name() string
	Initialize() error
}

// ServiceRegistry manages the registration and retrieval of services.
type ServiceRegistry interface {
	GetService(name string) (Service, error)
	RegisterService(service Service) error
}

// Filesystem is the collaborator interface for the on-disk probes the
// reconciler and handler need. Production code backs it with the filesystem
// service; tests substitute a fake.
type Filesystem interface {
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
}
