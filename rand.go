// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polysample

import "math/rand"

// Rand is the random source consumed by the samplers.
// *rand.Rand from math/rand satisfies it.
type Rand interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform value in [0, n). It panics if n <= 0.
	Intn(n int) int
	Int63() int64
}

// randSource adapts a Rand to rand.Source. Seed is a no-op: the underlying
// source is seeded by its owner.
type randSource struct {
	r Rand
}

func (s randSource) Int63() int64 { return s.r.Int63() }
func (s randSource) Seed(int64)   {}

// stdRand returns r as a *rand.Rand for libraries that require one.
func stdRand(r Rand) *rand.Rand {
	if rr, ok := r.(*rand.Rand); ok {
		return rr
	}
	//nolint:gosec
	return rand.New(randSource{r})
}

// uniformIn returns a uniform value in [lo, lo+size).
func uniformIn(r Rand, lo, size int) float64 {
	return float64(lo) + r.Float64()*float64(size)
}
