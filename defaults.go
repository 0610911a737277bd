// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polysample

import "fmt"

var (
	defaultXCoords = []int{150, 250, 325, 375, 450, 275, 100}
	defaultYCoords = []int{150, 100, 125, 225, 250, 375, 300}
)

// DefaultCoords returns copies of the x and y coordinates of the default polygon.
func DefaultCoords() (xs, ys []int) {
	return append([]int(nil), defaultXCoords...), append([]int(nil), defaultYCoords...)
}

// DefaultPolygon returns the default non-convex heptagon.
func DefaultPolygon() *Polygon {
	vertices, _ := PointsFromCoords(defaultXCoords, defaultYCoords)
	return MustNewPolygon(vertices)
}

// PointsFromCoords zips parallel coordinate lists into points.
func PointsFromCoords(xs, ys []int) ([]Point, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x coordinates, %d y coordinates", ErrInvalidPolygon, len(xs), len(ys))
	}
	points := make([]Point, len(xs))
	for i := range xs {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}
	return points, nil
}
