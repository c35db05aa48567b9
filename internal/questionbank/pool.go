package questionbank

import (
	"context"
	"sort"
)

// Filters narrows a pool fetch. Zero values mean "no constraint".
type Filters struct {
	Subject    Subject
	Skill      string
	Difficulty Difficulty
	ExcludeIDs []string
}

// Matches reports whether q passes every set constraint.
func (f Filters) Matches(q Question) bool {
	if f.Subject != "" && q.Subject != f.Subject {
		return false
	}
	if f.Skill != "" && q.Skill != f.Skill {
		return false
	}
	if f.Difficulty != "" && q.Difficulty != f.Difficulty {
		return false
	}
	for _, id := range f.ExcludeIDs {
		if q.ID == id {
			return false
		}
	}
	return true
}

// Pool is the question source collaborator. Implementations own storage;
// the engine only ranks what Fetch returns.
type Pool interface {
	// Fetch returns questions matching the filters. An empty result is
	// a valid outcome, not an error.
	Fetch(ctx context.Context, filters Filters) ([]Question, error)

	// RecordUse increments a question's usage counter.
	RecordUse(ctx context.Context, questionID string) error
}

// StaticPool is an in-memory Pool over a fixed question slice. Usage
// counters live in memory; callers wanting durability wrap it with an
// event-store-backed counter.
type StaticPool struct {
	byID  map[string]*Question
	order []string
}

// NewStaticPool builds a pool from a question slice. Later duplicates of
// an ID silently replace earlier ones.
func NewStaticPool(questions []Question) *StaticPool {
	p := &StaticPool{byID: make(map[string]*Question, len(questions))}
	for i := range questions {
		q := questions[i]
		if _, seen := p.byID[q.ID]; !seen {
			p.order = append(p.order, q.ID)
		}
		p.byID[q.ID] = &q
	}
	sort.Strings(p.order)
	return p
}

// Fetch returns matching questions in ascending ID order.
func (p *StaticPool) Fetch(_ context.Context, filters Filters) ([]Question, error) {
	var result []Question
	for _, id := range p.order {
		q := p.byID[id]
		if filters.Matches(*q) {
			result = append(result, *q)
		}
	}
	return result, nil
}

// RecordUse increments the in-memory usage counter. Unknown IDs are a
// no-op; usage is a soft signal, never load-bearing.
func (p *StaticPool) RecordUse(_ context.Context, questionID string) error {
	if q, ok := p.byID[questionID]; ok {
		q.TimesUsed++
	}
	return nil
}

// Add inserts a question, replacing any existing entry with the same ID.
func (p *StaticPool) Add(q Question) {
	if _, seen := p.byID[q.ID]; !seen {
		p.order = append(p.order, q.ID)
		sort.Strings(p.order)
	}
	p.byID[q.ID] = &q
}

// SetUsage overwrites a question's usage counter, used when hydrating
// counters from persisted usage events.
func (p *StaticPool) SetUsage(questionID string, timesUsed int) {
	if q, ok := p.byID[questionID]; ok {
		q.TimesUsed = timesUsed
	}
}

// Get returns the question with the given ID.
func (p *StaticPool) Get(questionID string) (Question, bool) {
	q, ok := p.byID[questionID]
	if !ok {
		return Question{}, false
	}
	return *q, true
}
