// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package polysample generates k sample points inside a non-convex polygon
// using rejection sampling, Poisson disk sampling and K-means relaxation
// approximating a centroidal Voronoi tessellation.
//
// Sampling is synchronous and single threaded. Degenerate polygons (zero
// area) or a radius too large for the polygon may keep a sampler looping;
// callers bound the work with the context passed to GeneratePoints.
package polysample

import (
	"context"
	"fmt"
)

// Sampler generates points inside a polygon.
type Sampler interface {
	// Name returns a human readable name, e.g. "RandomSampler".
	Name() string
	// Method returns the short method name used in file names, e.g. "random".
	Method() string
	// GeneratePoints returns up to k points inside p.
	GeneratePoints(ctx context.Context, p *Polygon, k int) ([]Point, error)
}

// Result is the output of one sampler.
type Result struct {
	Name   string
	Method string
	K      int
	Radius int
	Points []Point
}

// SampleAll runs every sampler on p with the same k, in order.
// radius is recorded in each Result for rendering and export.
func SampleAll(ctx context.Context, p *Polygon, k, radius int, samplers ...Sampler) ([]Result, error) {
	results := make([]Result, 0, len(samplers))
	for _, s := range samplers {
		points, err := s.GeneratePoints(ctx, p, k)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name(), err)
		}
		Logger().Info("points generated", "sampler", s.Name(), "k", k, "count", len(points))
		results = append(results, Result{
			Name:   s.Name(),
			Method: s.Method(),
			K:      k,
			Radius: radius,
			Points: points,
		})
	}
	return results, nil
}

func checkK(k int) error {
	if k < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	return nil
}
