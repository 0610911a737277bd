// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polysample

import (
	"errors"
	"math/rand"
	"time"
)

const (
	// DefaultK is the default number of points to generate.
	DefaultK = 10
	// DefaultRadius is the default minimum distance between Poisson disk points.
	DefaultRadius = 25
	// DefaultRejectNum is the default number of failed attempts before an
	// active point is retired.
	DefaultRejectNum = 30
	// DefaultAuxPoints is the default number of auxiliary points used by
	// Voronoi sampling.
	DefaultAuxPoints = 1000
)

// Options holds the immutable configuration of a sampler.
type Options struct {
	Radius    int
	RejectNum int
	AuxPoints int
	// MaxIterations caps the K-means relaxation. Zero means iterate until
	// no center moves.
	MaxIterations int
	Rand          Rand
}

// Option configures Options. It returns an error for invalid values.
type Option func(*Options) error

// WithRadius sets the minimum distance between Poisson disk points.
func WithRadius(radius int) Option {
	return func(o *Options) error {
		if radius <= 0 {
			return errors.New("polysample: radius must be positive")
		}
		o.Radius = radius
		return nil
	}
}

// WithRejectNum sets the number of attempts around an active point.
func WithRejectNum(n int) Option {
	return func(o *Options) error {
		if n <= 0 {
			return errors.New("polysample: reject num must be positive")
		}
		o.RejectNum = n
		return nil
	}
}

// WithAuxPoints sets the number of auxiliary points for Voronoi sampling.
func WithAuxPoints(n int) Option {
	return func(o *Options) error {
		if n <= 0 {
			return errors.New("polysample: aux points must be positive")
		}
		o.AuxPoints = n
		return nil
	}
}

// WithMaxIterations caps the number of K-means iterations. Zero disables the cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) error {
		if n < 0 {
			return errors.New("polysample: max iterations must be non-negative")
		}
		o.MaxIterations = n
		return nil
	}
}

// WithRand sets the random source.
func WithRand(r Rand) Option {
	return func(o *Options) error {
		if r == nil {
			return errors.New("polysample: rand must not be nil")
		}
		o.Rand = r
		return nil
	}
}

// WithSeed sets a deterministic random source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) error {
		//nolint:gosec
		o.Rand = rand.New(rand.NewSource(seed))
		return nil
	}
}

func newOptions(setters []Option) (Options, error) {
	opts := Options{
		Radius:    DefaultRadius,
		RejectNum: DefaultRejectNum,
		AuxPoints: DefaultAuxPoints,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return Options{}, err
		}
	}
	if opts.Rand == nil {
		//nolint:gosec
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return opts, nil
}
