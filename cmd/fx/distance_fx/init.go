package distancefx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"lankatrip/internal/services"
)

var Module = fx.Provide(provideOracle)

// A missing ORS key is a normal operating mode: the oracle then runs on
// geometric estimates only.
func provideOracle() services.DurationOracle {
	var provider services.RouteProvider
	if key := os.Getenv("ORS_API_KEY"); key != "" {
		client, err := services.NewORSClient(key)
		if err != nil {
			log.Printf("Routing provider disabled: %v", err)
		} else {
			provider = client
		}
	} else {
		log.Println("ORS_API_KEY not set, using geometric travel time estimates")
	}

	return services.NewDistanceService(provider, services.NewInMemoryLegCache())
}
