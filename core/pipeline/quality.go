package pipeline

import (
	"guildhall/core/rng"
	"guildhall/core/types"
)

// rollQuality draws the recovered-trophy quality sample: <70 OK, <90
// DAMAGED, else NONE.
func rollQuality(r *rng.Source) (types.Quality, error) {
	roll, err := r.NextInt(100)
	if err != nil {
		return 0, err
	}
	switch {
	case roll < 70:
		return types.QualityOK, nil
	case roll < 90:
		return types.QualityDamaged, nil
	default:
		return types.QualityNone, nil
	}
}
