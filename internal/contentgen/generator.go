// Package contentgen defines the interface through which the engine
// requests brand-new questions. Producing question text is an external
// concern; the engine only asks and ranks what comes back.
package contentgen

import (
	"context"

	"github.com/prepforge/prepforge/internal/questionbank"
)

// Request describes the question the caller wants authored.
type Request struct {
	Subject    questionbank.Subject
	Skill      string
	Difficulty questionbank.Difficulty

	// AvoidIDs lists pool questions the new content should not duplicate.
	AvoidIDs []string
}

// Generator produces new questions on demand.
type Generator interface {
	// Generate returns one newly authored question for the request.
	Generate(ctx context.Context, req Request) (*questionbank.Question, error)
}
