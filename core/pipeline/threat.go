package pipeline

import "guildhall/core/rng"

// threatLevel returns the region's threat tier from its stability score.
func threatLevel(stability int) int {
	switch {
	case stability >= 80:
		return 3
	case stability >= 60:
		return 2
	case stability >= 40:
		return 1
	default:
		return 0
	}
}

// SampleBaseDifficulty draws a new draft's base_difficulty from the
// region's current threat level plus a one-draw coin flip.
func SampleBaseDifficulty(r *rng.Source, stability int) (int, error) {
	bump, err := r.NextInt(2)
	if err != nil {
		return 0, err
	}
	return 1 + threatLevel(stability) + int(bump), nil
}
