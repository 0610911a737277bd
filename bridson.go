// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polysample

import (
	"context"

	"github.com/fogleman/poissondisc"
)

// BridsonSampler samples the polygon's bounding box with Bridson's
// algorithm and keeps the points inside the polygon. Unlike
// PoissonDiskSampler it stops trying around an active point after the first
// success, and it fills the whole box before truncating to k.
type BridsonSampler struct {
	opts Options
}

// NewBridsonSampler creates a BridsonSampler.
func NewBridsonSampler(setters ...Option) (*BridsonSampler, error) {
	opts, err := newOptions(setters)
	if err != nil {
		return nil, err
	}
	return &BridsonSampler{opts: opts}, nil
}

func (s *BridsonSampler) Name() string   { return "BridsonSampler" }
func (s *BridsonSampler) Method() string { return "bridson" }

// GeneratePoints returns at most k points inside p.
//
// NOTE: Points are truncated to integer coordinates, so two points may end
// up slightly closer than Radius.
func (s *BridsonSampler) GeneratePoints(ctx context.Context, p *Polygon, k int) ([]Point, error) {
	if err := checkK(k); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := p.Rect()
	samples := poissondisc.Sample(r.X.Lo, r.Y.Lo, r.X.Hi, r.Y.Hi,
		float64(s.opts.Radius), s.opts.RejectNum, stdRand(s.opts.Rand))

	points := make([]Point, 0, k)
	for _, sp := range samples {
		if len(points) == k {
			break
		}
		pt := truncate(sp.X, sp.Y)
		if p.ContainsPoint(pt) {
			points = append(points, pt)
		}
	}
	Logger().Debug("bridson sampling finished", "samples", len(samples), "count", len(points))
	return points, nil
}
