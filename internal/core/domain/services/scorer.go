package services

import (
	"dispatch/internal/core/domain/model/courier"
)

// Scorer ranks a dispatch candidate. Lower scores win. The strategy is
// pluggable so ranking weights can be tuned or replaced without touching
// the selection loop.
type Scorer interface {
	Score(candidate *courier.Courier, distanceKm float64) float64
}

// Scoring caps. Rating and experience adjustments together stay below a
// 3 km-equivalent so raw proximity keeps dominating the ranking.
const (
	ratingPenaltyWeight = 0.5
	experienceCap       = 1000
)

// BalancedScorer is the default ranking strategy:
//
//	score = distanceKm + ratingPenalty - experienceBonus
//
// where ratingPenalty = (5 - min(rating, 5)) * 0.5 and experienceBonus =
// min(completedDeliveries, 1000) / 1000. Pure nearest-neighbor starves
// new and low-rated couriers of visibility; the adjustments nudge toward
// reliability without letting it dominate proximity.
type BalancedScorer struct{}

// NewBalancedScorer creates the default scorer.
func NewBalancedScorer() BalancedScorer {
	return BalancedScorer{}
}

// Score implements Scorer.
func (BalancedScorer) Score(candidate *courier.Courier, distanceKm float64) float64 {
	rating := candidate.Rating()
	if rating > courier.RatingMax {
		rating = courier.RatingMax
	}
	penalty := (courier.RatingMax - rating) * ratingPenaltyWeight

	completed := candidate.CompletedDeliveries()
	if completed > experienceCap {
		completed = experienceCap
	}
	bonus := float64(completed) / experienceCap

	return distanceKm + penalty - bonus
}
