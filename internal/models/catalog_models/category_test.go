package catalog_models_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lankatrip/internal/models/catalog_models"
)

func TestParseCategoryNormalization(t *testing.T) {
	cases := map[string]catalog_models.Category{
		"history":                 catalog_models.CategoryHistory,
		"History":                 catalog_models.CategoryHistory,
		"  history  ":             catalog_models.CategoryHistory,
		"water sports":            catalog_models.CategoryWaterSports,
		"Water_Sports":            catalog_models.CategoryWaterSports,
		"WATER   SPORTS":          catalog_models.CategoryWaterSports,
		"national parks wildlife": catalog_models.CategoryNationalParksWildlife,
	}

	for input, want := range cases {
		got, ok := catalog_models.ParseCategory(input)
		require.True(t, ok, "expected %q to parse", input)
		require.Equal(t, want, got, "input %q", input)
	}
}

func TestParseCategoryUnknown(t *testing.T) {
	for _, input := range []string{"", "shopping", "space travel"} {
		_, ok := catalog_models.ParseCategory(input)
		require.False(t, ok, "expected %q to be unknown", input)
	}
}

func TestCategorySet(t *testing.T) {
	set := catalog_models.NewCategorySet(
		catalog_models.CategoryBeaches,
		catalog_models.CategoryNature,
	)

	require.True(t, set.Has(catalog_models.CategoryBeaches))
	require.True(t, set.Has(catalog_models.CategoryNature))
	require.False(t, set.Has(catalog_models.CategoryHistory))
	require.Equal(t, []string{"Nature", "Beaches"}, set.Names())
}

func TestCoordinateValid(t *testing.T) {
	require.True(t, catalog_models.Coordinate{Lat: 7.18, Lon: 79.88}.Valid())
	require.False(t, catalog_models.Coordinate{}.Valid(), "null island is a placeholder, not a position")
	require.False(t, catalog_models.Coordinate{Lat: 91, Lon: 0.1}.Valid())
	require.False(t, catalog_models.Coordinate{Lat: 0.1, Lon: 181}.Valid())
}

func TestSnapshotFindByName(t *testing.T) {
	snapshot := catalog_models.NewSnapshot([]catalog_models.Location{
		{Name: "Sigiriya", Coord: catalog_models.Coordinate{Lat: 7.957, Lon: 80.76}},
	})

	loc, ok := snapshot.FindByName("  sigiriya ")
	require.True(t, ok)
	require.Equal(t, "Sigiriya", loc.Name)

	_, ok = snapshot.FindByName("Ella")
	require.False(t, ok)
}
