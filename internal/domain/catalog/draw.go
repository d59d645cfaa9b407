package catalog

import (
	errs "github.com/amirhossein-jamali/party-bank/internal/domain/error"
	coreport "github.com/amirhossein-jamali/party-bank/internal/domain/port/core"
)

// Weighted is a catalog entry with a non-negative relative draw weight
type Weighted interface {
	Weight() float64
}

// Draw picks one entry with probability weight/sum(weights).
// It walks the entries subtracting weights from a uniform point in [0, total)
// and returns the last entry if rounding leaves the walk without a hit.
func Draw[T Weighted](entries []T, rng coreport.RandomSource) (T, error) {
	var zero T
	if len(entries) == 0 {
		return zero, errs.ErrEmptyCatalog
	}

	total := 0.0
	for _, e := range entries {
		total += e.Weight()
	}

	r := rng.Float64() * total
	for _, e := range entries {
		r -= e.Weight()
		if r <= 0 {
			return e, nil
		}
	}

	return entries[len(entries)-1], nil
}
