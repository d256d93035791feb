package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"lankatrip/internal/models/catalog_models"
	"lankatrip/internal/services"
)

var (
	colombo = catalog_models.Coordinate{Lat: 6.9271, Lon: 79.8612}
	kandy   = catalog_models.Coordinate{Lat: 7.2906, Lon: 80.6337}
)

func TestHaversineKm(t *testing.T) {
	require.Equal(t, 0.0, services.HaversineKm(colombo, colombo))

	// Colombo to Kandy is roughly 94 km great-circle.
	d := services.HaversineKm(colombo, kandy)
	require.InDelta(t, 94, d, 3)
	require.InDelta(t, d, services.HaversineKm(kandy, colombo), 1e-9)
}

func TestEstimateDurationSeconds(t *testing.T) {
	require.Equal(t, 0, services.EstimateDurationSeconds(0, services.FallbackSpeedKmph))
	require.Equal(t, 0, services.EstimateDurationSeconds(-5, services.FallbackSpeedKmph))
	// 40 km at 40 km/h is one hour.
	require.Equal(t, 3600, services.EstimateDurationSeconds(40, services.FallbackSpeedKmph))
}

func TestDurationSecondsFallsBackWithoutProvider(t *testing.T) {
	oracle := services.NewDistanceService(nil, services.NewInMemoryLegCache())

	sec := oracle.DurationSeconds(context.Background(), colombo, kandy)
	want := services.EstimateDurationSeconds(services.HaversineKm(colombo, kandy), services.FallbackSpeedKmph)
	require.Equal(t, want, sec)
}

func TestDurationSecondsZeroDistance(t *testing.T) {
	provider := &fixedProvider{seconds: 999}
	oracle := services.NewDistanceService(provider, services.NewInMemoryLegCache())

	require.Equal(t, 0, oracle.DurationSeconds(context.Background(), colombo, colombo))
	require.Equal(t, 0, provider.calls, "zero distance must not hit the provider")
}

func TestDurationSecondsProviderFailureDegrades(t *testing.T) {
	provider := &failingProvider{}
	oracle := services.NewDistanceService(provider, services.NewInMemoryLegCache())

	sec := oracle.DurationSeconds(context.Background(), colombo, kandy)
	want := services.EstimateDurationSeconds(services.HaversineKm(colombo, kandy), services.FallbackSpeedKmph)
	require.Equal(t, want, sec)
	require.Equal(t, 1, provider.calls)
}

func TestDurationSecondsCachesProviderResults(t *testing.T) {
	provider := &fixedProvider{seconds: 1234}
	oracle := services.NewDistanceService(provider, services.NewInMemoryLegCache())

	for i := 0; i < 3; i++ {
		require.Equal(t, 1234, oracle.DurationSeconds(context.Background(), colombo, kandy))
	}
	require.Equal(t, 1, provider.calls, "repeat legs must be served from cache")
}
