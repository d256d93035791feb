package services_test

import (
	"context"
	"errors"
	"sync"

	"lankatrip/internal/models/catalog_models"
	"lankatrip/internal/models/db_models"

	"github.com/google/uuid"
)

// makeLoc builds a catalog row for tests.
func makeLoc(name, city string, lat, lon, fee, hours float64, cats ...catalog_models.Category) catalog_models.Location {
	return catalog_models.Location{
		Name:        name,
		NearestCity: city,
		Coord:       catalog_models.Coordinate{Lat: lat, Lon: lon},
		EntryFee:    fee,
		VisitHours:  hours,
		Categories:  catalog_models.NewCategorySet(cats...),
	}
}

type snapshotProvider struct {
	snapshot *catalog_models.Snapshot
}

func (p *snapshotProvider) Snapshot() *catalog_models.Snapshot { return p.snapshot }

// failingProvider simulates a routing service that is down for every leg.
type failingProvider struct {
	mu    sync.Mutex
	calls int
}

func (p *failingProvider) LegDurationSeconds(ctx context.Context, from, to catalog_models.Coordinate) (int, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	return 0, errors.New("provider unreachable")
}

// fixedProvider returns the same duration for every leg and counts calls.
type fixedProvider struct {
	seconds int
	mu      sync.Mutex
	calls   int
}

func (p *fixedProvider) LegDurationSeconds(ctx context.Context, from, to catalog_models.Coordinate) (int, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	return p.seconds, nil
}

// memTripRepo captures saved trips in memory.
type memTripRepo struct {
	mu    sync.Mutex
	trips map[uuid.UUID]*db_models.Trip
}

func newMemTripRepo() *memTripRepo {
	return &memTripRepo{trips: make(map[uuid.UUID]*db_models.Trip)}
}

func (r *memTripRepo) SaveTrip(ctx context.Context, trip *db_models.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	r.trips[trip.ID] = trip
	return nil
}

func (r *memTripRepo) GetTripByID(ctx context.Context, id string) (*db_models.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return r.trips[parsed], nil
}

func (r *memTripRepo) UpsertTraveler(ctx context.Context, traveler *db_models.Traveler) error {
	if traveler.ID == uuid.Nil {
		traveler.ID = uuid.New()
	}
	return nil
}

func (r *memTripRepo) LinkTraveler(ctx context.Context, tripID, travelerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	trip, ok := r.trips[tripID]
	if !ok {
		return errors.New("trip not found")
	}
	trip.TravelerID = &travelerID
	return nil
}
