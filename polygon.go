// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polysample

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Bounds is the integer bounding box of a polygon.
type Bounds struct {
	MinX, MinY    int
	Width, Height int
}

// MaxX returns the right edge of the box.
func (b Bounds) MaxX() int {
	return b.MinX + b.Width
}

// MaxY returns the bottom edge of the box.
func (b Bounds) MaxY() int {
	return b.MinY + b.Height
}

// Center returns the center of the box, rounded toward the minimum corner.
func (b Bounds) Center() Point {
	return Point{X: b.MinX + b.Width/2, Y: b.MinY + b.Height/2}
}

// Polygon is a closed, possibly non-convex polygon with optional holes.
// The last vertex of every ring connects to the first one.
//
// NOTE: Self-intersections are not validated.
type Polygon struct {
	outer []Point
	poly  orb.Polygon
	bound orb.Bound
}

// NewPolygon creates a polygon from an outer ring and optional holes.
// It returns an error if any ring has fewer than 3 vertices.
func NewPolygon(vertices []Point, holes ...[]Point) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("%w: outer ring has %d vertices, want at least 3", ErrInvalidPolygon, len(vertices))
	}
	p := &Polygon{
		outer: append([]Point(nil), vertices...),
		poly:  make(orb.Polygon, 0, len(holes)+1),
	}
	p.poly = append(p.poly, toRing(vertices))
	for i, h := range holes {
		if len(h) < 3 {
			return nil, fmt.Errorf("%w: hole %d has %d vertices, want at least 3", ErrInvalidPolygon, i, len(h))
		}
		p.poly = append(p.poly, toRing(h))
	}
	p.bound = p.poly[0].Bound()
	return p, nil
}

// MustNewPolygon is like NewPolygon but panics on error.
func MustNewPolygon(vertices []Point, holes ...[]Point) *Polygon {
	p, err := NewPolygon(vertices, holes...)
	if err != nil {
		panic(err)
	}
	return p
}

func toRing(vertices []Point) orb.Ring {
	r := make(orb.Ring, 0, len(vertices)+1)
	for _, v := range vertices {
		r = append(r, orb.Point{float64(v.X), float64(v.Y)})
	}
	if r[0] != r[len(r)-1] {
		r = append(r, r[0])
	}
	return r
}

// Vertices returns a copy of the outer ring.
func (p *Polygon) Vertices() []Point {
	return append([]Point(nil), p.outer...)
}

// NumVertices returns the number of vertices in the outer ring.
func (p *Polygon) NumVertices() int {
	return len(p.outer)
}

// Bounds returns the bounding box of the outer ring.
func (p *Polygon) Bounds() Bounds {
	return Bounds{
		MinX:   int(p.bound.Min.X()),
		MinY:   int(p.bound.Min.Y()),
		Width:  int(p.bound.Max.X() - p.bound.Min.X()),
		Height: int(p.bound.Max.Y() - p.bound.Min.Y()),
	}
}

// Rect returns the bounding box as a float rectangle.
func (p *Polygon) Rect() r2.Rect {
	return r2.RectFromPoints(
		r2.Point{X: p.bound.Min.X(), Y: p.bound.Min.Y()},
		r2.Point{X: p.bound.Max.X(), Y: p.bound.Max.Y()},
	)
}

// Contains reports whether (x, y) lies inside the polygon and outside all
// of its holes. Points on the boundary are inside.
func (p *Polygon) Contains(x, y float64) bool {
	return planar.PolygonContains(p.poly, orb.Point{x, y})
}

// ContainsPoint reports whether pt lies inside the polygon.
func (p *Polygon) ContainsPoint(pt Point) bool {
	return p.Contains(float64(pt.X), float64(pt.Y))
}
