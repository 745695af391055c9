package mocks

import (
	"github.com/mathrace/mathrace-go/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing.
// Queued results let tests force room-code collisions deterministically.
type MockRandom struct {
	// CodeResults is a queue of results to return from Code
	CodeResults []string
	codeIndex   int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Code returns the next queued result, or empty string if none remaining
func (r *MockRandom) Code(length int, alphabet string) string {
	if r.codeIndex >= len(r.CodeResults) {
		return ""
	}
	result := r.CodeResults[r.codeIndex]
	r.codeIndex++
	return result
}

// QueueCode adds values to the Code result queue
func (r *MockRandom) QueueCode(values ...string) {
	r.CodeResults = append(r.CodeResults, values...)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.CodeResults = nil
	r.codeIndex = 0
}
