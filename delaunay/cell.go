// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import "github.com/golang/geo/r2"

// Cell returns the Voronoi cell of vertex vIdx: the circumcenters of its
// incident triangles in fan order. closed is false for hull vertices, whose
// cells are unbounded; the chain then runs from one hull edge to the other.
func (dt *Triangulation) Cell(vIdx int) (vertices []r2.Point, closed bool) {
	it := dt.IncidentTriangles(vIdx)
	if len(it) == 0 {
		return nil, false
	}

	vertices = make([]r2.Point, len(it))
	for i, tIdx := range it {
		vertices[i] = triangleCircumcenter(dt.TriangleVertices(tIdx))
	}

	first, last := dt.Triangles[it[0]], dt.Triangles[it[len(it)-1]]
	closed = NextVertex(last, vIdx) == PrevVertex(first, vIdx)
	return vertices, closed
}

func triangleCircumcenter(a, b, c r2.Point) r2.Point {
	ab := b.Sub(a)
	ac := c.Sub(a)
	d := 2 * ab.Cross(ac)
	ab2, ac2 := ab.Dot(ab), ac.Dot(ac)
	return r2.Point{
		X: a.X + (ac.Y*ab2-ab.Y*ac2)/d,
		Y: a.Y + (ab.X*ac2-ac.X*ab2)/d,
	}
}
