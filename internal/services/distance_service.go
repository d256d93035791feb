package services

import (
	"context"
	"log"
	"math"
	"sync"
	"time"

	"lankatrip/internal/models/catalog_models"
)

// FallbackSpeedKmph is the assumed average driving speed used to turn a
// great-circle distance into a duration when the routing provider is
// unavailable.
const FallbackSpeedKmph = 40.0

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two coordinates.
func HaversineKm(a, b catalog_models.Coordinate) float64 {
	phi1 := a.Lat * math.Pi / 180
	phi2 := b.Lat * math.Pi / 180
	dPhi := (b.Lat - a.Lat) * math.Pi / 180
	dLambda := (b.Lon - a.Lon) * math.Pi / 180

	val := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(val))
}

// EstimateDurationSeconds converts a distance into a driving duration at the
// given average speed. Zero or negative distance yields zero.
func EstimateDurationSeconds(distanceKm, speedKmph float64) int {
	if distanceKm <= 0 || speedKmph <= 0 {
		return 0
	}
	return int(distanceKm / speedKmph * 3600)
}

// RouteProvider fetches a real driving duration for one leg from an external
// routing service.
type RouteProvider interface {
	LegDurationSeconds(ctx context.Context, from, to catalog_models.Coordinate) (int, error)
}

// DurationOracle is the travel-time estimator consulted by the day packer and
// route sequencer. Implementations must never fail: when no real duration can
// be obtained they fall back to a geometric estimate.
type DurationOracle interface {
	DistanceKm(a, b catalog_models.Coordinate) float64
	DurationSeconds(ctx context.Context, a, b catalog_models.Coordinate) int
}

type legKey struct {
	From catalog_models.Coordinate
	To   catalog_models.Coordinate
}

type legCacheEntry struct {
	Seconds   int
	ExpiresAt time.Time
}

// LegCache caches provider-sourced leg durations per coordinate pair.
type LegCache interface {
	Get(k legKey) (int, bool)
	Set(k legKey, seconds int, ttl time.Duration)
}

type inMemoryLegCache struct {
	mu    sync.RWMutex
	store map[legKey]legCacheEntry
}

func NewInMemoryLegCache() LegCache {
	return &inMemoryLegCache{store: make(map[legKey]legCacheEntry)}
}

func (c *inMemoryLegCache) Get(k legKey) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[k]
	if !ok || time.Now().After(it.ExpiresAt) {
		return 0, false
	}
	return it.Seconds, true
}

func (c *inMemoryLegCache) Set(k legKey, seconds int, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[k] = legCacheEntry{Seconds: seconds, ExpiresAt: time.Now().Add(ttl)}
}

// DistanceService implements DurationOracle. Provider failures degrade to the
// haversine estimate; they are logged and never surfaced to the planner.
type DistanceService struct {
	provider  RouteProvider // nil when routing is unconfigured
	cache     LegCache
	cacheTTL  time.Duration
	speedKmph float64
}

func NewDistanceService(provider RouteProvider, cache LegCache) *DistanceService {
	return &DistanceService{
		provider:  provider,
		cache:     cache,
		cacheTTL:  7 * 24 * time.Hour,
		speedKmph: FallbackSpeedKmph,
	}
}

func (s *DistanceService) DistanceKm(a, b catalog_models.Coordinate) float64 {
	return HaversineKm(a, b)
}

func (s *DistanceService) DurationSeconds(ctx context.Context, a, b catalog_models.Coordinate) int {
	dist := HaversineKm(a, b)
	if dist == 0 {
		return 0
	}

	if s.provider == nil {
		return EstimateDurationSeconds(dist, s.speedKmph)
	}

	key := legKey{From: a, To: b}
	if s.cache != nil {
		if sec, ok := s.cache.Get(key); ok {
			return sec
		}
	}

	sec, err := s.provider.LegDurationSeconds(ctx, a, b)
	if err != nil || sec < 0 {
		if err != nil {
			log.Printf("routing provider leg lookup failed, using estimate: %v", err)
		}
		return EstimateDurationSeconds(dist, s.speedKmph)
	}

	// Only provider-sourced durations are cached; estimates are cheap to
	// recompute and caching them would mask provider recovery.
	if s.cache != nil {
		s.cache.Set(key, sec, s.cacheTTL)
	}
	return sec
}
