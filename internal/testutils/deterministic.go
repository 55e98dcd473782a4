// Package testutils provides deterministic generators for Templar testing.
// They keep test output stable while preserving production format
// compatibility.
package testutils

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var (
	idCounter uint64
	idMutex   sync.Mutex
)

// GenerateRequestID generates a request correlation ID: deterministic and
// incrementing in test mode, a random UUID in production.
func GenerateRequestID(testMode bool) string {
	if testMode {
		return deterministicUUID()
	}
	return uuid.New().String()
}

// ResetCounters resets the deterministic generators between tests.
func ResetCounters() {
	idMutex.Lock()
	defer idMutex.Unlock()
	idCounter = 0
}

// deterministicUUID returns UUIDs shaped like
// 00000001-0000-4000-8000-000000000001, incrementing per call.
func deterministicUUID() string {
	idMutex.Lock()
	defer idMutex.Unlock()
	idCounter++
	return fmt.Sprintf("%08d-0000-4000-8000-%012d", idCounter, idCounter)
}
