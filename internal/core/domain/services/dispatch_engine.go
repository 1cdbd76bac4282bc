package services

import (
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
)

var (
	// ErrNoCourierAvailable is returned when no assignable courier exists
	// within the dispatch radius.
	ErrNoCourierAvailable = errors.New("no courier available within radius")
	// ErrNoPharmacyLocation is returned when dispatching an order whose
	// pharmacy has no captured coordinates.
	ErrNoPharmacyLocation = errors.New("pharmacy has no location")
)

// DispatchEngine is the domain service selecting the courier for a ready
// order. Selection is pure: the engine ranks the candidates it is given
// and picks the best one; loading candidates, locking the winner, and
// creating the delivery belong to the calling use case.
//
// Business rules:
//   - Only available couriers with a known position are candidates
//   - Candidates beyond the radius from the pickup point are skipped
//   - The lowest Scorer score wins; first candidate wins ties
type DispatchEngine struct {
	scorer Scorer
}

// NewDispatchEngine creates a DispatchEngine with the given ranking
// strategy. A nil scorer falls back to the BalancedScorer.
func NewDispatchEngine(scorer Scorer) DispatchEngine {
	if scorer == nil {
		scorer = NewBalancedScorer()
	}
	return DispatchEngine{scorer: scorer}
}

// SelectCourier picks the best assignable courier within radiusKm of the
// pickup point. A courier matching exclude is skipped; reassignment uses
// this to rule out the current courier.
func (e DispatchEngine) SelectCourier(
	pickup *kernel.GeoPoint,
	candidates []*courier.Courier,
	radiusKm float64,
	exclude *kernel.UUID,
) (*courier.Courier, error) {
	if pickup == nil {
		return nil, ErrNoPharmacyLocation
	}
	if err := pickup.Validate(); err != nil {
		return nil, err
	}

	var (
		best      *courier.Courier
		bestScore float64
	)

	for _, c := range candidates {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if exclude != nil && exclude.IsEqual(c.ID()) {
			continue
		}
		if !c.IsAssignable() {
			continue
		}

		distance, err := pickup.DistanceKm(*c.Location())
		if err != nil {
			return nil, err
		}
		if distance > radiusKm {
			continue
		}

		score := e.scorer.Score(c, distance)
		if best == nil || score < bestScore {
			best = c
			bestScore = score
		}
	}

	if best == nil {
		return nil, ErrNoCourierAvailable
	}
	return best, nil
}
