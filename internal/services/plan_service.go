package services

import (
	"context"
	"log"

	"lankatrip/internal/models/catalog_models"
	"lankatrip/internal/models/db_models"
	"lankatrip/internal/models/request_models"
	"lankatrip/internal/models/response_models"
	"lankatrip/internal/repositories"
	"lankatrip/pkg/utils"
)

// Day 1 starts at the international airport. A catalog row with this name
// overrides the constant coordinates.
const (
	StartLocationName = "Katunayake"
)

var airportCoord = catalog_models.Coordinate{Lat: 7.1806, Lon: 79.8847}

type PlanServiceInterface interface {
	GeneratePlan(ctx context.Context, req request_models.GeneratePlanRequest) (*response_models.PlanResponse, error)
}

// PlanService runs one planning request end to end: candidate pool, greedy
// day packing, per-day nearest-neighbor sequencing, assembly, then optional
// narrative and persistence. All intermediate state is owned by the single
// call; only the catalog snapshot is shared, and it is read-only.
type PlanService struct {
	catalog   CatalogProvider
	oracle    DurationOracle
	trips     repositories.TripRepository
	narrative NarrativeServiceInterface
	policy    PoolPolicy
}

func NewPlanService(
	catalog CatalogProvider,
	oracle DurationOracle,
	trips repositories.TripRepository,
	narrative NarrativeServiceInterface,
) PlanServiceInterface {
	return &PlanService{
		catalog:   catalog,
		oracle:    oracle,
		trips:     trips,
		narrative: narrative,
		policy:    PoolIncludeZeroScore,
	}
}

func (p *PlanService) startPoint() (string, catalog_models.Coordinate) {
	if loc, ok := p.catalog.Snapshot().FindByName(StartLocationName); ok && loc.Coord.Valid() {
		return loc.Name, loc.Coord
	}
	return StartLocationName, airportCoord
}

func (p *PlanService) GeneratePlan(ctx context.Context, req request_models.GeneratePlanRequest) (*response_models.PlanResponse, error) {
	days := req.Days
	if days < 1 {
		days = 1
	}
	travelers := req.Travelers
	if travelers < 1 {
		travelers = 1
	}
	budget := req.Budget
	if budget < 0 {
		budget = 0
	}

	snapshot := p.catalog.Snapshot()

	mustRows, scored, diags := BuildPool(snapshot, req.Interests, req.MustVisit, req.City, p.policy)
	if len(diags.UnknownInterests) > 0 {
		log.Printf("plan: ignoring unknown interests %v", diags.UnknownInterests)
	}
	if len(diags.UnmatchedMustVisit) > 0 {
		log.Printf("plan: ignoring unmatched must-visit names %v", diags.UnmatchedMustVisit)
	}
	if len(diags.ExcludedNoCoordinates) > 0 {
		log.Printf("plan: excluded locations without coordinates %v", diags.ExcludedNoCoordinates)
	}

	if len(mustRows)+len(scored) == 0 {
		return nil, utils.ErrNoPlanGenerated
	}

	buckets, remaining := PackDays(mustRows, scored, days, budget, travelers, DefaultMaxHoursPerDay)

	startLabel, startCoord := p.startPoint()

	sequenced := make([]SequencedDay, 0, len(buckets))
	current := startCoord
	for _, bucket := range buckets {
		day := SequenceDay(ctx, bucket, current, p.oracle)
		if day.HasLastCoord {
			current = day.LastCoord
		}
		sequenced = append(sequenced, day)
	}

	plan := AssemblePlan(sequenced, buckets, budget, remaining, startLabel)

	if p.narrative != nil {
		plan.Narrative = p.narrative.SummarizePlan(ctx, &plan)
	}

	if p.trips != nil {
		trip := tripRecord(req, days, travelers, &plan)
		if err := p.trips.SaveTrip(ctx, trip); err != nil {
			log.Printf("plan: saving trip failed: %v", err)
			return nil, utils.ErrDatabaseError
		}
		plan.TripID = trip.ID.String()
	}

	return &plan, nil
}

// tripRecord flattens an assembled plan into its persisted form.
func tripRecord(req request_models.GeneratePlanRequest, days, travelers int, plan *response_models.PlanResponse) *db_models.Trip {
	trip := &db_models.Trip{
		StartFrom:       plan.StartFrom,
		TotalDays:       days,
		Travelers:       travelers,
		TotalBudget:     plan.TotalBudget,
		RemainingBudget: plan.RemainingBudget,
		Interests:       append([]string{}, req.Interests...),
		MustVisit:       append([]string{}, req.MustVisit...),
		Narrative:       plan.Narrative,
	}
	for _, day := range plan.Plan {
		for i, place := range day.Places {
			stop := db_models.TripStop{
				DayNumber:    day.Day,
				StepOrder:    i + 1,
				LocationName: place.Name,
				NearestCity:  place.Category,
				Cost:         place.Cost,
				VisitMinutes: place.TimeRequiredMinutes,
			}
			if place.TravelTimeToNextMinutes != nil {
				minutes := *place.TravelTimeToNextMinutes
				stop.TravelToNextMinutes = &minutes
			}
			trip.Stops = append(trip.Stops, stop)
		}
	}
	return trip
}
