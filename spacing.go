// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polysample

import (
	"math"
	"slices"

	"github.com/2dChan/polysample/delaunay"
	"github.com/golang/geo/r2"
)

// SpacingStats summarizes the distances between generated points.
type SpacingStats struct {
	Count int
	// MinDistance is the smallest distance between two points.
	MinDistance float64
	// MeanNearest is the mean distance from each point to its nearest neighbor.
	MeanNearest float64
}

// Spacing computes nearest neighbor statistics of points. The nearest
// neighbor of a point is always one of its Delaunay neighbors, so only
// triangulation edges are inspected. Fewer than 2 points give zero distances.
func Spacing(points []Point) SpacingStats {
	stats := SpacingStats{Count: len(points)}
	if len(points) < 2 {
		return stats
	}

	nearest := make([]float64, len(points))
	for i := range nearest {
		nearest[i] = math.Inf(1)
	}

	if !hasDuplicates(points) {
		if dt, err := delaunay.NewTriangulation(toR2(points)); err == nil {
			for _, e := range dt.Edges() {
				d := points[e[0]].Distance(points[e[1]])
				nearest[e[0]] = math.Min(nearest[e[0]], d)
				nearest[e[1]] = math.Min(nearest[e[1]], d)
			}
			// QuickHull may drop a vertex lying on a face plane; such a
			// vertex has no edges.
			if !slices.ContainsFunc(nearest, func(d float64) bool { return math.IsInf(d, 1) }) {
				return summarize(stats, nearest)
			}
			for i := range nearest {
				nearest[i] = math.Inf(1)
			}
		}
	}

	for i := range points {
		for j := i + 1; j < len(points); j++ {
			d := points[i].Distance(points[j])
			nearest[i] = math.Min(nearest[i], d)
			nearest[j] = math.Min(nearest[j], d)
		}
	}
	return summarize(stats, nearest)
}

func summarize(stats SpacingStats, nearest []float64) SpacingStats {
	stats.MinDistance = math.Inf(1)
	var sum float64
	for _, d := range nearest {
		stats.MinDistance = math.Min(stats.MinDistance, d)
		sum += d
	}
	stats.MeanNearest = sum / float64(len(nearest))
	return stats
}

func hasDuplicates(points []Point) bool {
	seen := make(map[Point]struct{}, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			return true
		}
		seen[p] = struct{}{}
	}
	return false
}

func toR2(points []Point) []r2.Point {
	v := make([]r2.Point, len(points))
	for i, p := range points {
		v[i] = p.Vec()
	}
	return v
}
