package place

import (
	"fmt"
	"sort"

	"github.com/raahsarthi/service-route/internal/domain"
	"github.com/raahsarthi/service-route/internal/geo"
)

// DefaultCorridorMeters is the corridor radius applied when the caller does
// not supply one.
const DefaultCorridorMeters = 2000

// FilterSpec is the per-request filter configuration. It is supplied by the
// caller and never retained between requests.
type FilterSpec struct {
	Category       Category
	MinRating      float64
	OpenNow        bool
	CorridorMeters float64
}

// Validate checks the filter against its allowed ranges. Corridor presets are
// a client concern; the engine accepts any positive radius.
func (f FilterSpec) Validate() error {
	if !f.Category.IsValid() {
		return domain.NewValidationError(fmt.Sprintf("unknown category: %s", f.Category))
	}
	if f.MinRating < 0 || f.MinRating > 5 {
		return domain.NewValidationError("minimum rating must be between 0 and 5")
	}
	if f.CorridorMeters <= 0 {
		return domain.NewValidationError("corridor radius must be positive")
	}
	return nil
}

// Merge combines per-sample-point result batches into one list, deduplicated
// by POI identifier. First occurrence wins and insertion order is preserved,
// so processing batches in route order keeps the output stable regardless of
// network completion order.
func Merge(batches [][]POI) []POI {
	seen := make(map[string]struct{})
	var merged []POI

	for _, batch := range batches {
		for _, p := range batch {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			merged = append(merged, p)
		}
	}

	return merged
}

// Apply runs the corridor, rating and open-now filters over pois in that
// order. POIs without a resolvable coordinate are discarded first. An absent
// rating compares as 0; open-now keeps only POIs whose state is exactly
// open, excluding unknown.
func (f FilterSpec) Apply(pois []POI, route []geo.Coordinate) []POI {
	filtered := make([]POI, 0, len(pois))

	for _, p := range pois {
		if !p.Coordinate.Valid() {
			continue
		}
		if !WithinCorridor(p.Coordinate, route, f.CorridorMeters) {
			continue
		}
		if p.RatingOrZero() < f.MinRating {
			continue
		}
		if f.OpenNow && p.OpenState != OpenStateOpen {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}

// SortByRating orders pois descending by rating, stable with respect to the
// prior ordering for ties.
func SortByRating(pois []POI) {
	sort.SliceStable(pois, func(i, j int) bool {
		return pois[i].RatingOrZero() > pois[j].RatingOrZero()
	})
}
