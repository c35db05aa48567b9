package contentgen

import (
	"context"
	"errors"
	"sync"

	"github.com/prepforge/prepforge/internal/questionbank"
)

// ErrNoContent indicates the mock queue ran dry.
var ErrNoContent = errors.New("no generated content available")

// MockGenerator is a deterministic Generator for testing. Canned
// questions are returned in FIFO order and every request is recorded.
type MockGenerator struct {
	mu        sync.Mutex
	questions []questionbank.Question
	Calls     []Request
}

// NewMockGenerator creates a MockGenerator with the given canned questions.
func NewMockGenerator(questions ...questionbank.Question) *MockGenerator {
	return &MockGenerator{questions: questions}
}

// Generate returns the next canned question or ErrNoContent when empty.
func (m *MockGenerator) Generate(_ context.Context, req Request) (*questionbank.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.questions) == 0 {
		return nil, ErrNoContent
	}
	q := m.questions[0]
	m.questions = m.questions[1:]
	return &q, nil
}
