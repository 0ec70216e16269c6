package interp

import (
	"math"
	"sort"
)

// splitXY copies the point set into separate node and value slices.
// The copies keep every builder free to mutate its working arrays without
// the caller ever observing the change.
func splitXY(points []Point) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	return xs, ys
}

// sortedByX returns a copy of points ordered by ascending x. Sorting a
// copy preserves the caller's slice; ties are left adjacent so the
// duplicate check that follows will reject them.
func sortedByX(points []Point) []Point {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	return sorted
}

// validateDistinct rejects any node pair closer than tol. The scan is the
// exhaustive O(n²) pairwise check: node counts are small and a thorough
// check up front beats a mid-elimination surprise.
func validateDistinct(xs []float64, tol float64) error {
	for i := 0; i < len(xs); i++ {
		for j := i + 1; j < len(xs); j++ {
			if math.Abs(xs[i]-xs[j]) < tol {
				return ErrDuplicateNodes
			}
		}
	}

	return nil
}

// validatePointSet enforces the common builder contract: at least two
// samples with pairwise-distinct x.
func validatePointSet(points []Point, tol float64) error {
	if len(points) < 2 {
		return ErrInsufficientPoints
	}
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if math.Abs(points[i].X-points[j].X) < tol {
				return ErrDuplicateNodes
			}
		}
	}

	return nil
}
