// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polysample

import "math"

// grid is a uniform acceleration grid over a bounding box holding at most
// one point per cell. Cells outside the grid are treated as empty.
type grid struct {
	origin     Point
	cellSize   float64
	rows, cols int
	cells      []Point
	occupied   []bool
}

// newGrid creates a grid covering b with cells of size radius/sqrt(2), plus
// one extra row and column.
func newGrid(b Bounds, radius int) *grid {
	cs := float64(radius) / math.Sqrt2
	g := &grid{
		origin:   Point{X: b.MinX, Y: b.MinY},
		cellSize: cs,
		rows:     int(math.Ceil(float64(b.Height)/cs)) + 1,
		cols:     int(math.Ceil(float64(b.Width)/cs)) + 1,
	}
	g.cells = make([]Point, g.rows*g.cols)
	g.occupied = make([]bool, g.rows*g.cols)
	return g
}

// cell returns the row and column of p. The result may be out of range.
func (g *grid) cell(p Point) (row, col int) {
	row = int(math.Floor(float64(p.Y-g.origin.Y) / g.cellSize))
	col = int(math.Floor(float64(p.X-g.origin.X) / g.cellSize))
	return row, col
}

func (g *grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// at returns the point stored in the cell, if any.
func (g *grid) at(row, col int) (Point, bool) {
	if !g.inBounds(row, col) {
		return Point{}, false
	}
	i := row*g.cols + col
	return g.cells[i], g.occupied[i]
}

// insert stores p in its cell. Points outside the grid are dropped.
func (g *grid) insert(p Point) bool {
	row, col := g.cell(p)
	if !g.inBounds(row, col) {
		return false
	}
	i := row*g.cols + col
	g.cells[i] = p
	g.occupied[i] = true
	return true
}

// conflicts reports whether any point in the 5x5 block of cells around p is
// closer than radius.
func (g *grid) conflicts(p Point, radius int) bool {
	row, col := g.cell(p)
	r2 := radius * radius
	for i := -2; i <= 2; i++ {
		for j := -2; j <= 2; j++ {
			q, ok := g.at(row+i, col+j)
			if ok && q.distance2(p) < r2 {
				return true
			}
		}
	}
	return false
}
