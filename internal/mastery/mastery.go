// Package mastery tracks per-skill mastery probability estimates.
//
// A mastery probability is a [0,1] estimate of how well a learner
// currently performs a skill. Absent entries read as 0.5: unknown,
// assume average.
package mastery

// DefaultProbability is assumed for skills with no recorded history.
const DefaultProbability = 0.5

// Key identifies a mastery entry within one user's snapshot.
type Key struct {
	Subject string
	Skill   string
}

// Snapshot is one user's mastery state at a point in time. The zero
// value (nil map) is usable and reads DefaultProbability everywhere.
type Snapshot map[Key]float64

// Get returns the mastery probability for a (subject, skill) pair,
// defaulting to DefaultProbability when absent.
func (s Snapshot) Get(subject, skill string) float64 {
	if p, ok := s[Key{Subject: subject, Skill: skill}]; ok {
		return p
	}
	return DefaultProbability
}

// Set records a probability, clamped to [0,1].
func (s Snapshot) Set(subject, skill string, p float64) {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	s[Key{Subject: subject, Skill: skill}] = p
}

// Clone returns an independent copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
