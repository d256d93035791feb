package locationsfx

import (
	"go.uber.org/fx"

	"lankatrip/internal/services"
)

var Module = fx.Provide(provideLocationService)

func provideLocationService(catalog services.CatalogProvider) services.LocationServiceInterface {
	return services.NewLocationService(catalog)
}
