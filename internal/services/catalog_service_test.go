package services_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"lankatrip/internal/models/catalog_models"
	"lankatrip/internal/services"
)

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "locations.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadCatalogCSV(t *testing.T) {
	path := writeCatalog(t, `Location,Nearest_City,Latitude,Longitude,Entry_fee_LKR,Visit_Time_hr,Category_Beaches,Category_History
Unawatuna Beach,Galle,6.0108,80.2497,0,3,1,0
Galle Fort,Galle,6.0261,80.2168,0,,0,1
Lost Shrine,Unknown,,,50,2,0,1
Free Pool,Galle,6.1,80.3,-25,1.5,1,1
`)

	snapshot, err := services.LoadCatalogCSV(path)
	require.NoError(t, err)

	// The row without coordinates is excluded outright.
	require.Equal(t, 3, snapshot.Len())
	_, ok := snapshot.FindByName("Lost Shrine")
	require.False(t, ok)

	beach, ok := snapshot.FindByName("Unawatuna Beach")
	require.True(t, ok)
	require.Equal(t, "Galle", beach.NearestCity)
	require.Equal(t, 3.0, beach.VisitHours)
	require.True(t, beach.Categories.Has(catalog_models.CategoryBeaches))
	require.False(t, beach.Categories.Has(catalog_models.CategoryHistory))

	// Missing visit time falls back to the default.
	fort, ok := snapshot.FindByName("Galle Fort")
	require.True(t, ok)
	require.Equal(t, catalog_models.DefaultVisitHours, fort.VisitHours)
	require.True(t, fort.Categories.Has(catalog_models.CategoryHistory))

	// Negative fees are treated as free entry.
	pool, ok := snapshot.FindByName("Free Pool")
	require.True(t, ok)
	require.Equal(t, 0.0, pool.EntryFee)
	require.True(t, pool.Categories.Has(catalog_models.CategoryBeaches))
	require.True(t, pool.Categories.Has(catalog_models.CategoryHistory))
}

func TestLoadCatalogCSVLookupIsCaseInsensitive(t *testing.T) {
	path := writeCatalog(t, `Location,Nearest_City,Latitude,Longitude,Entry_fee_LKR,Visit_Time_hr
Sigiriya Rock,Dambulla,7.9570,80.7603,30,3
`)

	snapshot, err := services.LoadCatalogCSV(path)
	require.NoError(t, err)

	loc, ok := snapshot.FindByName("  sigiriya rock ")
	require.True(t, ok)
	require.Equal(t, "Sigiriya Rock", loc.Name)
}

func TestLoadCatalogCSVMissingLocationColumn(t *testing.T) {
	path := writeCatalog(t, `Name,Latitude,Longitude
Somewhere,6.0,80.0
`)

	_, err := services.LoadCatalogCSV(path)
	require.Error(t, err)
}

func TestLoadCatalogCSVMissingFile(t *testing.T) {
	_, err := services.LoadCatalogCSV(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}
