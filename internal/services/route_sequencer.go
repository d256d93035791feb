package services

import (
	"context"

	"lankatrip/internal/models/catalog_models"
)

// SequencedStop is one visit in final route order. TravelToNextSeconds is nil
// for the last stop of the day.
type SequencedStop struct {
	Location            catalog_models.Location
	TravelToNextSeconds *int
}

// SequencedDay is a day bucket after route ordering.
type SequencedDay struct {
	Day           int
	Stops         []SequencedStop
	TravelSeconds int

	// LastCoord seeds the next day's start so the traveler continues from
	// where the previous day ended. HasLastCoord is false for empty days.
	LastCoord    catalog_models.Coordinate
	HasLastCoord bool
}

// SequenceDay orders a bucket's locations with greedy nearest-neighbor tour
// construction seeded from start. The start point acts as a virtual node: it
// anchors the tour but is not part of the output. Node selection uses the
// pairwise great-circle distance as a proxy; reported leg durations between
// consecutive real stops come from the oracle, which itself falls back to a
// geometric estimate per leg.
func SequenceDay(ctx context.Context, bucket DayBucket, start catalog_models.Coordinate, oracle DurationOracle) SequencedDay {
	out := SequencedDay{Day: bucket.Day}
	if len(bucket.Locations) == 0 {
		return out
	}

	// Index 0 is the virtual start node.
	coords := make([]catalog_models.Coordinate, 0, len(bucket.Locations)+1)
	coords = append(coords, start)
	for _, loc := range bucket.Locations {
		coords = append(coords, loc.Coord)
	}

	n := len(coords)
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := oracle.DistanceKm(coords[i], coords[j])
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	visited := make([]bool, n)
	visited[0] = true
	current := 0
	order := make([]int, 0, n-1)

	for len(order) < n-1 {
		nearest := -1
		best := 0.0
		for j := 1; j < n; j++ {
			// Strict < keeps the lowest index on ties, so ordering is
			// deterministic for identical inputs.
			if !visited[j] && (nearest == -1 || dist[current][j] < best) {
				nearest = j
				best = dist[current][j]
			}
		}
		order = append(order, nearest)
		visited[nearest] = true
		current = nearest
	}

	out.Stops = make([]SequencedStop, len(order))
	for i, idx := range order {
		out.Stops[i] = SequencedStop{Location: bucket.Locations[idx-1]}
	}

	for i := 0; i < len(out.Stops)-1; i++ {
		sec := oracle.DurationSeconds(ctx, out.Stops[i].Location.Coord, out.Stops[i+1].Location.Coord)
		out.Stops[i].TravelToNextSeconds = &sec
		out.TravelSeconds += sec
	}

	last := out.Stops[len(out.Stops)-1]
	out.LastCoord = last.Location.Coord
	out.HasLastCoord = true

	return out
}
