// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polysample

import (
	"context"
	"math"
)

// PoissonDiskSampler generates blue noise points with a minimum distance of
// Radius between any two of them.
type PoissonDiskSampler struct {
	opts Options
}

// NewPoissonDiskSampler creates a PoissonDiskSampler.
func NewPoissonDiskSampler(setters ...Option) (*PoissonDiskSampler, error) {
	opts, err := newOptions(setters)
	if err != nil {
		return nil, err
	}
	return &PoissonDiskSampler{opts: opts}, nil
}

func (s *PoissonDiskSampler) Name() string   { return "PoissonDiskSampler" }
func (s *PoissonDiskSampler) Method() string { return "poisson" }

// Radius returns the minimum distance between generated points.
func (s *PoissonDiskSampler) Radius() int { return s.opts.Radius }

// GeneratePoints returns at most k points inside p that are pairwise at
// least Radius apart. Fewer than k points are returned when no active point
// can spawn more; that is not an error.
func (s *PoissonDiskSampler) GeneratePoints(ctx context.Context, p *Polygon, k int) ([]Point, error) {
	if err := checkK(k); err != nil {
		return nil, err
	}
	if k == 0 {
		return []Point{}, nil
	}

	b := p.Bounds()
	g := newGrid(b, s.opts.Radius)

	first, err := s.seed(ctx, p, b)
	if err != nil {
		return nil, err
	}
	g.insert(first)
	points := []Point{first}
	active := []Point{first}

	retired := 0
	for len(active) > 0 && len(points) < k {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		idx := s.opts.Rand.Intn(len(active))
		origin := active[idx]

		// Keep trying around origin for the whole batch even after a success.
		found := false
		for range s.opts.RejectNum {
			if len(points) >= k {
				break
			}
			candidate := s.around(origin)
			if !p.ContainsPoint(candidate) || g.conflicts(candidate, s.opts.Radius) {
				continue
			}
			g.insert(candidate)
			points = append(points, candidate)
			active = append(active, candidate)
			found = true
		}

		if !found {
			last := len(active) - 1
			active[idx] = active[last]
			active = active[:last]
			retired++
		}
	}

	Logger().Debug("poisson disk sampling finished",
		"count", len(points), "k", k, "retired", retired, "active", len(active))
	return points, nil
}

// seed returns the bounding box center if it lies inside p, otherwise a
// uniform random point of the bounding box inside p.
func (s *PoissonDiskSampler) seed(ctx context.Context, p *Polygon, b Bounds) (Point, error) {
	first := b.Center()
	for attempt := 0; !p.ContainsPoint(first); attempt++ {
		if attempt%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Point{}, err
			}
		}
		first = truncate(uniformIn(s.opts.Rand, b.MinX, b.Width), uniformIn(s.opts.Rand, b.MinY, b.Height))
	}
	Logger().Debug("poisson disk seed", "x", first.X, "y", first.Y, "center", first == b.Center())
	return first, nil
}

// around returns a point at distance [Radius, 2*Radius) and a random angle
// from p.
//
// NOTE: The distribution is not uniform over the annulus; points close to
// p are denser.
func (s *PoissonDiskSampler) around(p Point) Point {
	r := float64(s.opts.Radius)
	d := s.opts.Rand.Float64()*r + r
	a := 2 * math.Pi * s.opts.Rand.Float64()
	return pointAround(p, d, a)
}
