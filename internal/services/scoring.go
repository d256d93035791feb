package services

import (
	"lankatrip/internal/models/catalog_models"
)

// MustVisitScore orders must-visit rows ahead of every scored optional row.
const MustVisitScore = 9999.0

// InterestScore counts how many requested interests match the location's
// category flags. Interest names outside the known category set contribute
// nothing; they are collected separately for diagnostics, not treated as
// errors.
func InterestScore(loc catalog_models.Location, interests []string) float64 {
	score := 0.0
	for _, interest := range interests {
		cat, ok := catalog_models.ParseCategory(interest)
		if ok && loc.Categories.Has(cat) {
			score += 1.0
		}
	}
	return score
}

// UnknownInterests returns the interest names that resolve to no category.
func UnknownInterests(interests []string) []string {
	var unknown []string
	for _, interest := range interests {
		if _, ok := catalog_models.ParseCategory(interest); !ok {
			unknown = append(unknown, interest)
		}
	}
	return unknown
}
