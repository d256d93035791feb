package plannerfx

import (
	"os"

	"go.uber.org/fx"

	"lankatrip/internal/repositories"
	"lankatrip/internal/services"
)

var Module = fx.Provide(
	provideNarrative,
	providePlanService,
	provideTripService,
)

func provideNarrative() services.NarrativeServiceInterface {
	return services.NewOpenAINarrativeService(os.Getenv("OPENAI_API_KEY"))
}

func providePlanService(
	catalog services.CatalogProvider,
	oracle services.DurationOracle,
	trips repositories.TripRepository,
	narrative services.NarrativeServiceInterface,
) services.PlanServiceInterface {
	return services.NewPlanService(catalog, oracle, trips, narrative)
}

func provideTripService(trips repositories.TripRepository) services.TripServiceInterface {
	return services.NewTripService(trips)
}
