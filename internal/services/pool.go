package services

import (
	"sort"
	"strings"

	"lankatrip/internal/models/catalog_models"
)

// PoolPolicy controls whether the optional candidate pool is limited to rows
// that match at least one requested interest, or also carries zero-score rows
// as day filler once the strict matches run out.
type PoolPolicy int

const (
	PoolIncludeZeroScore PoolPolicy = iota
	PoolInterestMatchesOnly
)

// ScoredCandidate pairs an optional catalog row with its interest score.
type ScoredCandidate struct {
	Score    float64
	Location catalog_models.Location
}

// PoolDiagnostics records inputs that were silently ignored while building
// the pool. They are logged for observability, never raised as errors.
type PoolDiagnostics struct {
	UnknownInterests      []string
	UnmatchedMustVisit    []string
	ExcludedNoCoordinates []string
}

// BuildPool filters the catalog down to the candidate set for one planning
// request: resolved must-visit rows in request order, plus optional rows
// scored against the interests and stably sorted by descending score.
// Rows without valid coordinates are unusable for routing and are excluded
// outright. Optional rows duplicating a must-visit row are excluded too.
func BuildPool(
	snapshot *catalog_models.Snapshot,
	interests []string,
	mustVisit []string,
	cityFilter string,
	policy PoolPolicy,
) (mustRows []catalog_models.Location, scored []ScoredCandidate, diags PoolDiagnostics) {
	diags.UnknownInterests = UnknownInterests(interests)

	mustKeys := make(map[string]struct{}, len(mustVisit))
	for _, name := range mustVisit {
		loc, ok := snapshot.FindByName(name)
		if !ok {
			diags.UnmatchedMustVisit = append(diags.UnmatchedMustVisit, name)
			continue
		}
		key := catalog_models.NameKey(loc.Name)
		if _, dup := mustKeys[key]; dup {
			continue
		}
		if !loc.Coord.Valid() {
			diags.ExcludedNoCoordinates = append(diags.ExcludedNoCoordinates, loc.Name)
			continue
		}
		mustKeys[key] = struct{}{}
		mustRows = append(mustRows, loc)
	}

	cityKey := strings.ToLower(strings.TrimSpace(cityFilter))

	for _, loc := range snapshot.Locations() {
		if _, isMust := mustKeys[catalog_models.NameKey(loc.Name)]; isMust {
			continue
		}
		if cityKey != "" && strings.ToLower(strings.TrimSpace(loc.NearestCity)) != cityKey {
			continue
		}
		if !loc.Coord.Valid() {
			diags.ExcludedNoCoordinates = append(diags.ExcludedNoCoordinates, loc.Name)
			continue
		}

		score := InterestScore(loc, interests)
		if policy == PoolInterestMatchesOnly && score == 0 {
			continue
		}
		scored = append(scored, ScoredCandidate{Score: score, Location: loc})
	}

	// Stable sort keeps catalog order for equal scores, so identical requests
	// against an identical snapshot produce identical plans.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return mustRows, scored, diags
}
