package services

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"lankatrip/internal/models/catalog_models"
)

// CatalogProvider exposes the process-wide immutable catalog snapshot. The
// snapshot is built once at startup and shared read-only across concurrent
// planning requests.
type CatalogProvider interface {
	Snapshot() *catalog_models.Snapshot
}

type CatalogService struct {
	snapshot *catalog_models.Snapshot
}

func NewCatalogService(snapshot *catalog_models.Snapshot) *CatalogService {
	return &CatalogService{snapshot: snapshot}
}

func (c *CatalogService) Snapshot() *catalog_models.Snapshot {
	return c.snapshot
}

// LoadCatalogCSV reads the raw location dataset and builds the catalog
// snapshot. Category_* columns become typed flags here, once, so planning
// never does string-keyed field lookups. Rows whose coordinates cannot be
// resolved are excluded as unusable rather than kept with zeroed positions.
func LoadCatalogCSV(path string) (*catalog_models.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	if _, ok := col["Location"]; !ok {
		return nil, fmt.Errorf("catalog missing Location column")
	}

	categoryCols := make(map[catalog_models.Category]int)
	for _, cat := range catalog_models.AllCategories() {
		if i, ok := col["Category_"+cat.String()]; ok {
			categoryCols[cat] = i
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var locations []catalog_models.Location
	skipped := 0

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read catalog rows: %w", err)
	}

	for _, row := range rows {
		name := field(row, "Location")
		if name == "" {
			continue
		}

		lat, latErr := strconv.ParseFloat(field(row, "Latitude"), 64)
		lon, lonErr := strconv.ParseFloat(field(row, "Longitude"), 64)
		coord := catalog_models.Coordinate{Lat: lat, Lon: lon}
		if latErr != nil || lonErr != nil || !coord.Valid() {
			skipped++
			continue
		}

		fee, _ := strconv.ParseFloat(field(row, "Entry_fee_LKR"), 64)
		if fee < 0 {
			fee = 0
		}

		visit := catalog_models.DefaultVisitHours
		if v, err := strconv.ParseFloat(field(row, "Visit_Time_hr"), 64); err == nil && v > 0 {
			visit = v
		}

		var cats []catalog_models.Category
		for cat, i := range categoryCols {
			if i >= len(row) {
				continue
			}
			if flag, err := strconv.Atoi(strings.TrimSpace(row[i])); err == nil && flag == 1 {
				cats = append(cats, cat)
			}
		}

		locations = append(locations, catalog_models.Location{
			Name:        name,
			NearestCity: field(row, "Nearest_City"),
			Coord:       coord,
			EntryFee:    fee,
			VisitHours:  visit,
			Categories:  catalog_models.NewCategorySet(cats...),
		})
	}

	if skipped > 0 {
		log.Printf("catalog load: excluded %d rows without usable coordinates", skipped)
	}
	log.Printf("catalog load: %d locations from %s", len(locations), path)

	return catalog_models.NewSnapshot(locations), nil
}
