// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package delaunay computes planar Delaunay triangulations as the lower
// convex hull of points lifted onto the paraboloid z = x² + y².
package delaunay

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

const (
	defaultEps = 1e-12
	// planarEps is the tolerance, relative to the normalized extent, under
	// which lifted points are considered coplanar.
	planarEps = 1e-9
)

// Triangulation is a planar Delaunay triangulation with CCW triangles.
type Triangulation struct {
	Vertices  []r2.Point
	Triangles [][3]int
	// NOTE: Sort in CCW per vertex, starting at the open side of hull vertices.
	IncidentTriangleIndices []int
	IncidentTriangleOffsets []int
}

// IncidentTriangles returns the indices of the triangles sharing vertex vIdx.
func (dt *Triangulation) IncidentTriangles(vIdx int) []int {
	if vIdx < 0 || vIdx+1 >= len(dt.IncidentTriangleOffsets) {
		panic("IncidentTriangles: vIdx out of range")
	}
	start := dt.IncidentTriangleOffsets[vIdx]
	end := dt.IncidentTriangleOffsets[vIdx+1]
	return dt.IncidentTriangleIndices[start:end]
}

func (dt *Triangulation) TriangleVertices(tIdx int) (r2.Point, r2.Point, r2.Point) {
	if tIdx < 0 || tIdx >= len(dt.Triangles) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	t := dt.Triangles[tIdx]
	return dt.Vertices[t[0]], dt.Vertices[t[1]], dt.Vertices[t[2]]
}

// Edges returns every triangle edge once, as vertex index pairs with the
// smaller index first.
func (dt *Triangulation) Edges() [][2]int {
	seen := make(map[[2]int]struct{}, len(dt.Triangles)*3/2+1)
	edges := make([][2]int, 0, len(dt.Triangles)*3/2+1)
	for _, t := range dt.Triangles {
		for j := range 3 {
			a, b := t[j], t[(j+1)%3]
			if a > b {
				a, b = b, a
			}
			e := [2]int{a, b}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}

// TriangulationOptions holds the configuration of NewTriangulation.
type TriangulationOptions struct {
	Eps float64
}

// TriangulationOption configures TriangulationOptions.
type TriangulationOption func(*TriangulationOptions) error

// WithEps sets the QuickHull tolerance.
func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if eps <= 0 {
			return errors.New("delaunay: eps must be positive")
		}
		o.Eps = eps
		return nil
	}
}

// NewTriangulation triangulates vertices. It returns an error for fewer
// than 4 vertices, or when all vertices are collinear or cocircular.
func NewTriangulation(vertices []r2.Point, setters ...TriangulationOption) (*Triangulation, error) {
	opts := TriangulationOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	numVertices := len(vertices)
	if numVertices < 4 {
		return nil,
			errors.New("delaunay: insufficient vertices for triangulation (minimum 4 required)")
	}

	lifted := lift(vertices)
	if isPlanar(lifted) {
		return nil, errors.New("delaunay: degenerate input (vertices are collinear or cocircular)")
	}

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(lifted, true, true, opts.Eps)
	if len(ch.Indices) == 0 || len(ch.Indices)%3 != 0 {
		return nil, fmt.Errorf("delaunay: unexpected number of indices returned from QuickHull: %d", len(ch.Indices))
	}

	var interior r3.Vector
	for _, v := range lifted {
		interior = interior.Add(v)
	}
	interior = interior.Mul(1 / float64(numVertices))

	dt := &Triangulation{
		Vertices: vertices,
	}
	for i := 0; i < len(ch.Indices); i += 3 {
		t := [3]int{ch.Indices[i], ch.Indices[i+1], ch.Indices[i+2]}
		if isLowerFace(t, lifted, interior) {
			sortTriangleVerticesCCW(&t, vertices)
			dt.Triangles = append(dt.Triangles, t)
		}
	}
	if len(dt.Triangles) == 0 {
		return nil, errors.New("delaunay: no lower hull faces")
	}

	numTriangles := len(dt.Triangles)
	dt.IncidentTriangleIndices = make([]int, numTriangles*3)
	dt.IncidentTriangleOffsets = make([]int, numVertices+1)
	for _, t := range dt.Triangles {
		for _, v := range t {
			dt.IncidentTriangleOffsets[v+1]++
		}
	}
	for i := range numVertices {
		dt.IncidentTriangleOffsets[i+1] += dt.IncidentTriangleOffsets[i]
	}

	nxt := make([]int, numVertices)
	copy(nxt, dt.IncidentTriangleOffsets[:numVertices])
	for i, t := range dt.Triangles {
		for _, v := range t {
			dt.IncidentTriangleIndices[nxt[v]] = i
			nxt[v]++
		}
	}

	for i := range numVertices {
		sortIncidentTriangleIndicesCCW(i, dt.IncidentTriangles(i), dt.Triangles)
	}

	return dt, nil
}

// lift maps vertices into the unit box around their center and onto the
// paraboloid z = x² + y².
func lift(vertices []r2.Point) []r3.Vector {
	rect := r2.RectFromPoints(vertices...)
	center := rect.Center()
	size := rect.Size()
	scale := math.Max(size.X, size.Y)
	if scale == 0 {
		scale = 1
	}

	lifted := make([]r3.Vector, len(vertices))
	for i, v := range vertices {
		p := v.Sub(center).Mul(1 / scale)
		lifted[i] = r3.Vector{X: p.X, Y: p.Y, Z: p.Dot(p)}
	}
	return lifted
}

// isPlanar reports whether all lifted points lie in one plane. That is the
// case when the input points are collinear, cocircular or all equal.
func isPlanar(lifted []r3.Vector) bool {
	a := lifted[0]
	bIdx, best := -1, 0.0
	for i, v := range lifted {
		if d := v.Sub(a).Norm2(); d > best {
			bIdx, best = i, d
		}
	}
	if bIdx < 0 {
		return true
	}
	ab := lifted[bIdx].Sub(a)

	var normal r3.Vector
	best = 0
	for _, v := range lifted {
		if n := ab.Cross(v.Sub(a)); n.Norm2() > best {
			normal, best = n, n.Norm2()
		}
	}
	if best <= planarEps*planarEps {
		return true
	}
	normal = normal.Normalize()

	for _, v := range lifted {
		if math.Abs(v.Sub(a).Dot(normal)) > planarEps {
			return false
		}
	}
	return true
}

// isLowerFace reports whether the hull face t faces downwards. interior
// must be strictly inside the hull.
func isLowerFace(t [3]int, lifted []r3.Vector, interior r3.Vector) bool {
	a, b, c := lifted[t[0]], lifted[t[1]], lifted[t[2]]
	normal := b.Sub(a).Cross(c.Sub(a))
	if normal.Dot(interior.Sub(a)) > 0 {
		normal = normal.Mul(-1)
	}
	n := normal.Norm()
	if n == 0 {
		return false
	}
	return normal.Z < -planarEps*n
}

func sortTriangleVerticesCCW(t *[3]int, v []r2.Point) {
	p0, p1, p2 := v[t[0]], v[t[1]], v[t[2]]
	if p1.Sub(p0).Cross(p2.Sub(p0)) < 0 {
		t[1], t[2] = t[2], t[1]
	}
}

// sortIncidentTriangleIndicesCCW orders the fan of triangles around vIdx.
// For a hull vertex the fan is open and starts at the triangle whose
// previous edge has no neighbor.
func sortIncidentTriangleIndicesCCW(vIdx int, incidentTris []int, tris [][3]int) {
	n := len(incidentTris)
	if n == 0 {
		return
	}

	for i := range n {
		prv := PrevVertex(tris[incidentTris[i]], vIdx)
		isStart := true
		for j := range n {
			if j != i && NextVertex(tris[incidentTris[j]], vIdx) == prv {
				isStart = false
				break
			}
		}
		if isStart {
			incidentTris[0], incidentTris[i] = incidentTris[i], incidentTris[0]
			break
		}
	}

	for i := 1; i < n; i++ {
		nxt := NextVertex(tris[incidentTris[i-1]], vIdx)
		for j := i; j < n; j++ {
			prv := PrevVertex(tris[incidentTris[j]], vIdx)
			if nxt == prv {
				incidentTris[i], incidentTris[j] = incidentTris[j], incidentTris[i]
				break
			}
		}
	}
}

func PrevVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[2]
	case t[1]:
		return t[0]
	case t[2]:
		return t[1]
	}
	panic("PrevVertex: vIdx not in triangle")
}

func NextVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[1]
	case t[1]:
		return t[2]
	case t[2]:
		return t[0]
	}
	panic("NextVertex: vIdx not in triangle")
}
