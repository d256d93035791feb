package catalog_models

import "strings"

// DefaultVisitHours is assumed when the dataset carries no visit time for a row.
const DefaultVisitHours = 2.0

// Coordinate is an immutable (latitude, longitude) pair.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Valid reports whether the pair lies inside the WGS84 range and is not the
// (0, 0) null-island placeholder the dataset uses for unresolved rows.
func (c Coordinate) Valid() bool {
	if c.Lat == 0 && c.Lon == 0 {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Location is one point of interest from the catalog. Instances are built once
// at load time and never mutated afterwards; planning code shares them by value.
type Location struct {
	Name        string
	NearestCity string
	Coord       Coordinate
	EntryFee    float64
	VisitHours  float64
	Categories  CategorySet
}

// NameKey returns the trimmed, lowercased form used for catalog name matching.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Snapshot is a read-only view of the full catalog. It is built once at
// startup and shared across concurrent planning requests without locking.
type Snapshot struct {
	locations []Location
	byName    map[string]int
}

func NewSnapshot(locations []Location) *Snapshot {
	byName := make(map[string]int, len(locations))
	for i, loc := range locations {
		key := NameKey(loc.Name)
		if _, exists := byName[key]; !exists {
			byName[key] = i
		}
	}
	return &Snapshot{locations: locations, byName: byName}
}

// Locations returns the catalog rows in load order. Callers must not modify
// the returned slice.
func (s *Snapshot) Locations() []Location {
	return s.locations
}

func (s *Snapshot) Len() int {
	return len(s.locations)
}

// FindByName resolves a trimmed, case-insensitive exact name match.
func (s *Snapshot) FindByName(name string) (Location, bool) {
	i, ok := s.byName[NameKey(name)]
	if !ok {
		return Location{}, false
	}
	return s.locations[i], true
}
