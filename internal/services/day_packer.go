package services

import (
	"lankatrip/internal/models/catalog_models"
)

const (
	// PerStopOverheadHours is a flat intra-day overhead charged per placed
	// stop during packing; real travel times are attached after sequencing.
	PerStopOverheadHours = 0.25

	// DefaultMaxHoursPerDay caps activity plus overhead hours in one day.
	DefaultMaxHoursPerDay = 8.0
)

// DayBucket accumulates the locations assigned to one day during packing.
// Insertion order is packing order; the route sequencer reorders it later.
type DayBucket struct {
	Day       int
	Locations []catalog_models.Location
	TimeUsed  float64
}

// PackDays distributes candidates over exactly dayCount buckets with a single
// greedy forward pass: must-visit rows first in input order, then optional
// rows by descending score. The day cursor is monotone, so a day skipped as
// full is never revisited for a later candidate. The first candidate that
// would drive the budget negative stops all further placement, not just its
// own; later candidates have equal or lower priority. Candidates that fit no
// remaining day are dropped.
//
// The returned remaining budget is non-negative by construction.
func PackDays(
	mustRows []catalog_models.Location,
	scored []ScoredCandidate,
	dayCount int,
	totalBudget float64,
	travelers int,
	maxHoursPerDay float64,
) ([]DayBucket, float64) {
	if dayCount < 1 {
		dayCount = 1
	}
	if travelers < 1 {
		travelers = 1
	}
	if maxHoursPerDay <= 0 {
		maxHoursPerDay = DefaultMaxHoursPerDay
	}

	ordered := make([]ScoredCandidate, 0, len(mustRows)+len(scored))
	for _, loc := range mustRows {
		ordered = append(ordered, ScoredCandidate{Score: MustVisitScore, Location: loc})
	}
	ordered = append(ordered, scored...)

	buckets := make([]DayBucket, dayCount)
	for i := range buckets {
		buckets[i].Day = i + 1
	}

	currentDay := 0
	remaining := totalBudget

	for _, cand := range ordered {
		need := cand.Location.VisitHours + PerStopOverheadHours

		for d := currentDay; d < dayCount; d++ {
			if buckets[d].TimeUsed+need > maxHoursPerDay {
				currentDay = d + 1
				continue
			}

			cost := cand.Location.EntryFee * float64(travelers)
			if remaining-cost < 0 {
				// Budget exhausted: every later candidate has equal or lower
				// priority, so placement stops here entirely.
				return buckets, remaining
			}

			buckets[d].Locations = append(buckets[d].Locations, cand.Location)
			buckets[d].TimeUsed += need
			remaining -= cost
			break
		}
	}

	return buckets, remaining
}
