package controllersfx

import (
	"go.uber.org/fx"

	"lankatrip/internal/api/controllers"
	"lankatrip/internal/services"
)

var Module = fx.Provide(
	providePlanController,
	provideLocationsController,
	provideAccountController,
)

func providePlanController(planService services.PlanServiceInterface, tripService services.TripServiceInterface) *controllers.PlanController {
	return controllers.NewPlanController(planService, tripService)
}

func provideLocationsController(locationService services.LocationServiceInterface) *controllers.LocationsController {
	return controllers.NewLocationsController(locationService)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
