// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polysample

import (
	"context"
	"math"
	"slices"
)

// VoronoiSampler generates points by K-means clustering of random auxiliary
// points, approximating the sites of a centroidal Voronoi tessellation.
type VoronoiSampler struct {
	opts Options
}

// NewVoronoiSampler creates a VoronoiSampler.
func NewVoronoiSampler(setters ...Option) (*VoronoiSampler, error) {
	opts, err := newOptions(setters)
	if err != nil {
		return nil, err
	}
	return &VoronoiSampler{opts: opts}, nil
}

func (s *VoronoiSampler) Name() string   { return "VoronoiSampler" }
func (s *VoronoiSampler) Method() string { return "voronoi" }

// GeneratePoints returns k cluster centers, in seed order.
func (s *VoronoiSampler) GeneratePoints(ctx context.Context, p *Polygon, k int) ([]Point, error) {
	if err := checkK(k); err != nil {
		return nil, err
	}
	if k == 0 {
		return []Point{}, nil
	}

	aux, err := generateRandom(ctx, s.opts.Rand, p, s.opts.AuxPoints)
	if err != nil {
		return nil, err
	}
	sortByRowMajor(aux, p.Bounds().Width)

	centers := initialCenters(aux, k)
	iterations, err := s.relax(ctx, centers, aux)
	if err != nil {
		return nil, err
	}
	Logger().Debug("k-means converged", "k", k, "aux", len(aux), "iterations", iterations)
	return centers, nil
}

// relax runs K-means steps on centers until no center moves, or until
// MaxIterations steps when it is set. It returns the number of steps.
func (s *VoronoiSampler) relax(ctx context.Context, centers, aux []Point) (int, error) {
	c := newClusters(centers, len(aux))
	iterations := 0
	for {
		if err := ctx.Err(); err != nil {
			return iterations, err
		}
		iterations++
		if !c.step(aux) {
			return iterations, nil
		}
		if s.opts.MaxIterations > 0 && iterations >= s.opts.MaxIterations {
			Logger().Debug("k-means stopped at max iterations", "iterations", iterations)
			return iterations, nil
		}
	}
}

// sortByRowMajor sorts points by width*y + x, the index the point would have
// in a row-major 2D array.
func sortByRowMajor(points []Point, width int) {
	slices.SortStableFunc(points, func(a, b Point) int {
		ka := width*a.Y + a.X
		kb := width*b.Y + b.X
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		}
		return 0
	})
}

// initialCenters picks k evenly spaced points from sorted.
func initialCenters(sorted []Point, k int) []Point {
	centers := make([]Point, k)
	if k == 1 {
		centers[0] = sorted[0]
		return centers
	}
	step := float64(len(sorted)-1) / float64(k-1)
	for i := range k {
		centers[i] = sorted[int(math.Round(float64(i)*step))]
	}
	return centers
}

// clusters holds K-means state addressed by center index. members[i] lists
// the indices of the auxiliary points assigned to centers[i].
type clusters struct {
	centers []Point
	members [][]int
}

func newClusters(centers []Point, numPoints int) *clusters {
	c := &clusters{
		centers: centers,
		members: make([][]int, len(centers)),
	}
	for i := range c.members {
		c.members[i] = make([]int, 0, numPoints/len(centers)+1)
	}
	return c
}

// step assigns every point to its nearest center and moves each center to
// the integer mean of its points. Empty clusters keep their center.
// It reports whether any center moved.
func (c *clusters) step(points []Point) bool {
	for i := range c.members {
		c.members[i] = c.members[i][:0]
	}
	for pi, p := range points {
		nearest := 0
		best := c.centers[0].distance2(p)
		for ci := 1; ci < len(c.centers); ci++ {
			if d := c.centers[ci].distance2(p); d < best {
				nearest, best = ci, d
			}
		}
		c.members[nearest] = append(c.members[nearest], pi)
	}

	changed := false
	for ci, m := range c.members {
		if len(m) == 0 {
			continue
		}
		var sx, sy int
		for _, pi := range m {
			sx += points[pi].X
			sy += points[pi].Y
		}
		center := Point{X: sx / len(m), Y: sy / len(m)}
		if center != c.centers[ci] {
			c.centers[ci] = center
			changed = true
		}
	}
	return changed
}
