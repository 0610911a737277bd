// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polysample

import "context"

// RandomSampler generates points by rejection sampling inside the polygon's
// bounding box.
type RandomSampler struct {
	opts Options
}

// NewRandomSampler creates a RandomSampler. Only the random source option is used.
func NewRandomSampler(setters ...Option) (*RandomSampler, error) {
	opts, err := newOptions(setters)
	if err != nil {
		return nil, err
	}
	return &RandomSampler{opts: opts}, nil
}

func (s *RandomSampler) Name() string   { return "RandomSampler" }
func (s *RandomSampler) Method() string { return "random" }

// GeneratePoints returns exactly k points inside p.
//
// NOTE: The number of attempts is unbounded. For a polygon that covers a tiny
// part of its bounding box this runs until ctx is done.
func (s *RandomSampler) GeneratePoints(ctx context.Context, p *Polygon, k int) ([]Point, error) {
	if err := checkK(k); err != nil {
		return nil, err
	}
	return generateRandom(ctx, s.opts.Rand, p, k)
}

func generateRandom(ctx context.Context, r Rand, p *Polygon, k int) ([]Point, error) {
	b := p.Bounds()
	points := make([]Point, 0, k)
	for attempt := 0; len(points) != k; attempt++ {
		if attempt%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		pt := truncate(uniformIn(r, b.MinX, b.Width), uniformIn(r, b.MinY, b.Height))
		if p.ContainsPoint(pt) {
			points = append(points, pt)
		}
	}
	return points, nil
}

// ctxCheckInterval is the number of loop iterations between context checks.
const ctxCheckInterval = 1024
