package mocks

import (
	"fmt"

	"github.com/jdmorgan/noughts/internal/dependencies/ident"
)

// MockIdent is a mock implementation of the id generator for testing.
// Queued ids are returned first; once the queue is exhausted it falls back
// to a deterministic counter.
type MockIdent struct {
	queue   []string
	counter int
}

// Ensure MockIdent implements Generator
var _ ident.Generator = (*MockIdent)(nil)

// NewMockIdent creates an empty MockIdent
func NewMockIdent() *MockIdent {
	return &MockIdent{}
}

// Queue appends ids to be returned by subsequent NewID calls
func (m *MockIdent) Queue(ids ...string) {
	m.queue = append(m.queue, ids...)
}

// NewID returns the next queued id, or a generated fallback
func (m *MockIdent) NewID() string {
	if len(m.queue) > 0 {
		id := m.queue[0]
		m.queue = m.queue[1:]
		return id
	}
	m.counter++
	return fmt.Sprintf("mock-id-%d", m.counter)
}
