// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polysample

import (
	"testing"
)

// Helpers

func square(size int) *Polygon {
	return MustNewPolygon([]Point{{0, 0}, {size, 0}, {size, size}, {0, size}})
}

// squareWithHole returns a square of the given size with a square hole
// spanning [lo, hi]².
func squareWithHole(size, lo, hi int) *Polygon {
	return MustNewPolygon(
		[]Point{{0, 0}, {size, 0}, {size, size}, {0, size}},
		[]Point{{lo, lo}, {hi, lo}, {hi, hi}, {lo, hi}},
	)
}

func assertInside(t *testing.T, p *Polygon, points []Point) {
	t.Helper()
	for i, pt := range points {
		if !p.ContainsPoint(pt) {
			t.Errorf("points[%d] = %v, want inside polygon", i, pt)
		}
	}
}

func assertMinDistance(t *testing.T, points []Point, radius float64) {
	t.Helper()
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if d := points[i].Distance(points[j]); d < radius {
				t.Errorf("distance(points[%d] = %v, points[%d] = %v) = %v, want >= %v",
					i, points[i], j, points[j], d, radius)
			}
		}
	}
}
