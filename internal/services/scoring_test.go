package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lankatrip/internal/models/catalog_models"
	"lankatrip/internal/services"
)

func TestInterestScoreCountsMatchingFlags(t *testing.T) {
	loc := makeLoc("Galle Fort", "Galle", 6.03, 80.22, 0, 2,
		catalog_models.CategoryHistory, catalog_models.CategoryUrbanCity)

	require.Equal(t, 2.0, services.InterestScore(loc, []string{"history", "urban city"}))
	require.Equal(t, 1.0, services.InterestScore(loc, []string{"history", "beaches"}))
	require.Equal(t, 0.0, services.InterestScore(loc, []string{"nature"}))
	require.Equal(t, 0.0, services.InterestScore(loc, nil))
}

func TestInterestScoreIgnoresUnknownInterests(t *testing.T) {
	loc := makeLoc("Mirissa", "Matara", 5.94, 80.45, 0, 2, catalog_models.CategoryBeaches)

	// Unknown names contribute nothing but never abort scoring.
	require.Equal(t, 1.0, services.InterestScore(loc, []string{"beaches", "shopping", "nightlife"}))
	require.Equal(t, []string{"shopping", "nightlife"}, services.UnknownInterests([]string{"beaches", "shopping", "nightlife"}))
	require.Nil(t, services.UnknownInterests([]string{"beaches"}))
}
