// Package query holds the pure transformations over a disposal point collection.
//
// Every function reads its input and returns a freshly built slice or map. Inputs are
// never modified, so callers may keep earlier snapshots without locking.
package query

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urbanwaste/dumpwatch/pkg/domain/model"
	"github.com/urbanwaste/dumpwatch/pkg/domain/types"
	"golang.org/x/text/cases"
)

// UpdateRule maps one point to its next version. Returning the argument unchanged
// leaves that point as it is.
type UpdateRule func(model.DisposalPoint) model.DisposalPoint

// FallibleUpdateRule is an UpdateRule that may reject a point
type FallibleUpdateRule func(model.DisposalPoint) (model.DisposalPoint, error)

// Filter selects points from a collection, preserving order
type Filter func([]model.DisposalPoint) []model.DisposalPoint

// ByNeighborhood returns the points whose neighborhood matches under Unicode case folding
func ByNeighborhood(points []model.DisposalPoint, neighborhood string) []model.DisposalPoint {
	fold := cases.Fold()
	want := fold.String(neighborhood)

	return selectPoints(points, func(p model.DisposalPoint) bool {
		return fold.String(p.Neighborhood) == want
	})
}

// BySeverity returns the points with min <= severity <= max. An inverted range selects nothing.
func BySeverity(points []model.DisposalPoint, min, max int) []model.DisposalPoint {
	return selectPoints(points, func(p model.DisposalPoint) bool {
		return min <= p.Severity && p.Severity <= max
	})
}

// Update applies rule to every point and returns the results in the same order
func Update(points []model.DisposalPoint, rule UpdateRule) []model.DisposalPoint {
	result := make([]model.DisposalPoint, len(points))
	for i, p := range points {
		result[i] = rule(p)
	}
	return result
}

// TryUpdate is Update for rules that can fail. The first failure aborts the whole
// update and nothing is returned but the error.
func TryUpdate(points []model.DisposalPoint, rule FallibleUpdateRule) ([]model.DisposalPoint, error) {
	result := make([]model.DisposalPoint, len(points))
	for i, p := range points {
		updated, err := rule(p)
		if err != nil {
			return nil, goerr.Wrap(err, "update rule failed",
				goerr.V("index", i),
				goerr.V("id", p.ID.Int()))
		}
		result[i] = updated
	}
	return result, nil
}

// CountByNeighborhood counts points per neighborhood, keyed by the stored name
func CountByNeighborhood(points []model.DisposalPoint) map[string]int {
	counts := make(map[string]int)
	for _, p := range points {
		counts[p.Neighborhood]++
	}
	return counts
}

// StatusFilter builds a reusable filter that keeps points with exactly this status.
// Matching is case-sensitive; callers pass an already normalized status.
func StatusFilter(status types.Status) Filter {
	return func(points []model.DisposalPoint) []model.DisposalPoint {
		return selectPoints(points, func(p model.DisposalPoint) bool {
			return p.Status == status
		})
	}
}

func selectPoints(points []model.DisposalPoint, keep func(model.DisposalPoint) bool) []model.DisposalPoint {
	result := make([]model.DisposalPoint, 0)
	for _, p := range points {
		if keep(p) {
			result = append(result, p)
		}
	}
	return result
}
