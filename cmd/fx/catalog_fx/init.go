package catalogfx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"lankatrip/internal/services"
)

var Module = fx.Provide(provideCatalog)

func provideCatalog() services.CatalogProvider {
	path := os.Getenv("CATALOG_CSV_PATH")
	if path == "" {
		path = "data/locations.csv"
	}

	snapshot, err := services.LoadCatalogCSV(path)
	if err != nil {
		log.Fatalf("Failed to load location catalog: %v", err)
	}
	return services.NewCatalogService(snapshot)
}
