package mastery

// UpdateConfig tunes the post-answer probability nudge.
type UpdateConfig struct {
	// Gain is the fraction of the remaining headroom awarded per
	// correct answer: p' = p + Gain*(1-p).
	Gain float64

	// Penalty is subtracted per incorrect answer before flooring.
	Penalty float64

	// Floor is the lower bound incorrect answers decay toward. Keeping
	// it above zero stops one bad day from erasing a skill entirely.
	Floor float64
}

// DefaultUpdateConfig returns the production nudge tuning.
func DefaultUpdateConfig() UpdateConfig {
	return UpdateConfig{Gain: 0.15, Penalty: 0.1, Floor: 0.2}
}

// Update applies one answer outcome to a probability estimate. Correct
// answers converge toward 1 without reaching it; incorrect answers step
// down toward the floor.
func Update(p float64, correct bool, cfg UpdateConfig) float64 {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	if correct {
		p += cfg.Gain * (1 - p)
		if p > 1 {
			p = 1
		}
		return p
	}

	p -= cfg.Penalty
	if p < cfg.Floor {
		p = cfg.Floor
	}
	return p
}
