// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polysample

import (
	"math"

	"github.com/golang/geo/r2"
)

// Point is an integer 2D coordinate produced by the samplers.
type Point struct {
	X, Y int
}

// Vec returns p as a float vector.
func (p Point) Vec() r2.Point {
	return r2.Point{X: float64(p.X), Y: float64(p.Y)}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return p.Vec().Sub(q.Vec()).Norm()
}

func (p Point) distance2(q Point) int {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// truncate converts float coordinates to a Point, rounding toward zero.
func truncate(x, y float64) Point {
	return Point{X: int(x), Y: int(y)}
}

// pointAround returns the point at distance d and angle a from p.
// The angle is measured from the positive Y axis.
func pointAround(p Point, d, a float64) Point {
	return truncate(float64(p.X)+d*math.Sin(a), float64(p.Y)+d*math.Cos(a))
}
