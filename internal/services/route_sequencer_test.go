package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"lankatrip/internal/models/catalog_models"
	"lankatrip/internal/services"
)

func fallbackOracle() services.DurationOracle {
	return services.NewDistanceService(nil, services.NewInMemoryLegCache())
}

func TestSequenceDayOrdersByNearestNeighbor(t *testing.T) {
	// Three stops on a north-south line. Starting from the south end the
	// greedy tour must walk the line in order, not in bucket order.
	bucket := services.DayBucket{
		Day: 1,
		Locations: []catalog_models.Location{
			makeLoc("Far", "North", 8.0, 80.0, 0, 2),
			makeLoc("Near", "South", 6.5, 80.0, 0, 2),
			makeLoc("Mid", "Centre", 7.2, 80.0, 0, 2),
		},
	}
	start := catalog_models.Coordinate{Lat: 6.0, Lon: 80.0}

	day := services.SequenceDay(context.Background(), bucket, start, fallbackOracle())

	var names []string
	for _, stop := range day.Stops {
		names = append(names, stop.Location.Name)
	}
	require.Equal(t, []string{"Near", "Mid", "Far"}, names)
}

func TestSequenceDayTravelTimes(t *testing.T) {
	bucket := services.DayBucket{
		Day: 2,
		Locations: []catalog_models.Location{
			makeLoc("A", "X", 6.5, 80.0, 0, 2),
			makeLoc("B", "X", 7.0, 80.0, 0, 2),
		},
	}
	start := catalog_models.Coordinate{Lat: 6.0, Lon: 80.0}

	day := services.SequenceDay(context.Background(), bucket, start, fallbackOracle())
	require.Len(t, day.Stops, 2)

	// Every stop except the last carries a travel leg to its successor.
	require.NotNil(t, day.Stops[0].TravelToNextSeconds)
	require.Nil(t, day.Stops[1].TravelToNextSeconds)
	require.Equal(t, *day.Stops[0].TravelToNextSeconds, day.TravelSeconds)

	require.True(t, day.HasLastCoord)
	require.Equal(t, day.Stops[1].Location.Coord, day.LastCoord)
}

func TestSequenceDayEmptyBucket(t *testing.T) {
	day := services.SequenceDay(context.Background(), services.DayBucket{Day: 3}, colombo, fallbackOracle())

	require.Equal(t, 3, day.Day)
	require.Empty(t, day.Stops)
	require.Zero(t, day.TravelSeconds)
	require.False(t, day.HasLastCoord)
}

func TestSequenceDaySurvivesProviderOutage(t *testing.T) {
	provider := &failingProvider{}
	oracle := services.NewDistanceService(provider, services.NewInMemoryLegCache())

	bucket := services.DayBucket{
		Day: 1,
		Locations: []catalog_models.Location{
			makeLoc("A", "X", 6.5, 80.0, 0, 2),
			makeLoc("B", "X", 7.0, 80.0, 0, 2),
			makeLoc("C", "X", 7.5, 80.0, 0, 2),
		},
	}
	day := services.SequenceDay(context.Background(), bucket, colombo, oracle)

	require.Len(t, day.Stops, 3)
	require.Positive(t, day.TravelSeconds, "estimates must fill in when the provider is down")
	require.Equal(t, 2, provider.calls, "one provider attempt per inter-stop leg")
}

func TestSequenceDaySingleStop(t *testing.T) {
	bucket := services.DayBucket{
		Day:       1,
		Locations: []catalog_models.Location{makeLoc("Only", "X", 7.0, 80.0, 0, 2)},
	}
	day := services.SequenceDay(context.Background(), bucket, colombo, fallbackOracle())

	require.Len(t, day.Stops, 1)
	require.Nil(t, day.Stops[0].TravelToNextSeconds)
	require.Zero(t, day.TravelSeconds)
	require.True(t, day.HasLastCoord)
}
