// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polysample

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPoissonDiskSampler_Square(t *testing.T) {
	s := mustNewPoissonDiskSampler(t, 0, 10)
	p := square(100)

	points, err := s.GeneratePoints(context.Background(), p, 5)
	if err != nil {
		t.Fatalf("s.GeneratePoints(...) error = %v, want nil", err)
	}
	if len(points) == 0 || len(points) > 5 {
		t.Fatalf("len(points) = %v, want in [1, 5]", len(points))
	}
	for i, pt := range points {
		if pt.X < 0 || pt.X > 100 || pt.Y < 0 || pt.Y > 100 {
			t.Errorf("points[%d] = %v, want in [0, 100]²", i, pt)
		}
	}
	assertMinDistance(t, points, 10)
}

func TestPoissonDiskSampler_Properties(t *testing.T) {
	tests := []struct {
		name   string
		p      *Polygon
		radius int
		k      int
	}{
		{"square small k", square(100), 10, 5},
		{"square saturated", square(100), 10, 1000},
		{"default", DefaultPolygon(), DefaultRadius, DefaultK},
		{"default saturated", DefaultPolygon(), DefaultRadius, 1000},
		{"holed", squareWithHole(200, 50, 150), 15, 500},
	}
	for _, tt := range tests {
		for seed := range int64(3) {
			t.Run(fmt.Sprintf("%s/seed%d", tt.name, seed), func(t *testing.T) {
				s := mustNewPoissonDiskSampler(t, seed, tt.radius)
				points, err := s.GeneratePoints(context.Background(), tt.p, tt.k)
				if err != nil {
					t.Fatalf("s.GeneratePoints(...) error = %v, want nil", err)
				}
				if len(points) > tt.k {
					t.Errorf("len(points) = %v, want <= %v", len(points), tt.k)
				}
				assertInside(t, tt.p, points)
				assertMinDistance(t, points, float64(tt.radius))
			})
		}
	}
}

func TestPoissonDiskSampler_ReturnsShort(t *testing.T) {
	// A 100x100 square cannot hold 1000 points 10 apart.
	s := mustNewPoissonDiskSampler(t, 0, 10)
	points, err := s.GeneratePoints(context.Background(), square(100), 1000)
	if err != nil {
		t.Fatalf("s.GeneratePoints(...) error = %v, want nil", err)
	}
	if len(points) >= 1000 {
		t.Errorf("len(points) = %v, want < 1000", len(points))
	}
	if len(points) < 20 {
		t.Errorf("len(points) = %v, want a filled square (>= 20)", len(points))
	}
}

func TestPoissonDiskSampler_RadiusLargerThanPolygon(t *testing.T) {
	s := mustNewPoissonDiskSampler(t, 0, 200)
	points, err := s.GeneratePoints(context.Background(), square(100), 5)
	if err != nil {
		t.Fatalf("s.GeneratePoints(...) error = %v, want nil", err)
	}
	want := []Point{{50, 50}}
	if diff := cmp.Diff(want, points); diff != "" {
		t.Errorf("s.GeneratePoints(...) mismatch (-want +got):\n%s", diff)
	}
}

// scriptedRand returns the scripted Float64 values in order, then zeros.
// Intn always picks the first active point and counts its calls.
type scriptedRand struct {
	floats    []float64
	intnCalls int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) Intn(int) int {
	r.intnCalls++
	return 0
}

func (r *scriptedRand) Int63() int64 { return 0 }

func TestPoissonDiskSampler_BatchContinuesAfterSuccess(t *testing.T) {
	tests := []struct {
		name      string
		rejectNum int
		floats    []float64
		want      []Point
	}{
		{
			// Distance fraction, angle fraction per attempt.
			name:      "two successes",
			rejectNum: 2,
			floats:    []float64{0, 0, 0, 0.5},
			want:      []Point{{50, 50}, {50, 60}, {50, 40}},
		},
		{
			name:      "success, conflict, success",
			rejectNum: 3,
			floats:    []float64{0, 0, 0, 0, 0, 0.5},
			want:      []Point{{50, 50}, {50, 60}, {50, 40}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &scriptedRand{floats: tt.floats}
			s, err := NewPoissonDiskSampler(WithRand(r), WithRadius(10), WithRejectNum(tt.rejectNum))
			if err != nil {
				t.Fatalf("NewPoissonDiskSampler(...) error = %v, want nil", err)
			}
			points, err := s.GeneratePoints(context.Background(), square(100), len(tt.want))
			if err != nil {
				t.Fatalf("s.GeneratePoints(...) error = %v, want nil", err)
			}
			if diff := cmp.Diff(tt.want, points); diff != "" {
				t.Errorf("s.GeneratePoints(...) mismatch (-want +got):\n%s", diff)
			}
			// All points come from a single visit of the seed.
			if r.intnCalls != 1 {
				t.Errorf("active point visits = %v, want 1", r.intnCalls)
			}
		})
	}
}

func TestPoissonDiskSampler_FirstPointCenter(t *testing.T) {
	s := mustNewPoissonDiskSampler(t, 4, 10)
	points, err := s.GeneratePoints(context.Background(), square(100), 3)
	if err != nil {
		t.Fatalf("s.GeneratePoints(...) error = %v, want nil", err)
	}
	if points[0] != (Point{50, 50}) {
		t.Errorf("points[0] = %v, want {50 50}", points[0])
	}
}

func TestPoissonDiskSampler_FirstPointInHole(t *testing.T) {
	p := squareWithHole(100, 30, 70)
	s := mustNewPoissonDiskSampler(t, 1, 10)
	points, err := s.GeneratePoints(context.Background(), p, 20)
	if err != nil {
		t.Fatalf("s.GeneratePoints(...) error = %v, want nil", err)
	}
	if len(points) == 0 {
		t.Fatalf("len(points) = 0, want > 0")
	}
	if points[0] == (Point{50, 50}) {
		t.Errorf("points[0] = %v, want a point outside the hole", points[0])
	}
	assertInside(t, p, points)
}

func TestPoissonDiskSampler_K(t *testing.T) {
	s := mustNewPoissonDiskSampler(t, 0, 10)
	if _, err := s.GeneratePoints(context.Background(), square(100), -3); !errors.Is(err, ErrInvalidK) {
		t.Errorf("s.GeneratePoints(..., -3) error = %v, want %v", err, ErrInvalidK)
	}
	points, err := s.GeneratePoints(context.Background(), square(100), 0)
	if err != nil || len(points) != 0 {
		t.Errorf("s.GeneratePoints(..., 0) = %v, %v, want [], nil", points, err)
	}
	points, err = s.GeneratePoints(context.Background(), square(100), 1)
	if err != nil || len(points) != 1 {
		t.Errorf("s.GeneratePoints(..., 1) = %v, %v, want one point", points, err)
	}
}

func TestPoissonDiskSampler_Determinism(t *testing.T) {
	a, err := mustNewPoissonDiskSampler(t, 11, 20).GeneratePoints(context.Background(), DefaultPolygon(), 50)
	if err != nil {
		t.Fatalf("GeneratePoints(...) error = %v, want nil", err)
	}
	b, err := mustNewPoissonDiskSampler(t, 11, 20).GeneratePoints(context.Background(), DefaultPolygon(), 50)
	if err != nil {
		t.Fatalf("GeneratePoints(...) error = %v, want nil", err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("GeneratePoints(...) with equal seeds mismatch (-want +got):\n%s", diff)
	}
}

func TestPoissonDiskSampler_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := mustNewPoissonDiskSampler(t, 0, 10)
	if _, err := s.GeneratePoints(ctx, square(100), 10); !errors.Is(err, context.Canceled) {
		t.Errorf("s.GeneratePoints(canceled, ...) error = %v, want %v", err, context.Canceled)
	}
}

func TestPoissonDiskSampler_Around(t *testing.T) {
	s := mustNewPoissonDiskSampler(t, 0, 10)
	origin := Point{500, 500}
	for i := range 1000 {
		p := s.around(origin)
		// Truncation moves each coordinate by less than 1.
		if d := p.Distance(origin); d < 10-2 || d >= 20+2 {
			t.Fatalf("s.around(%v) #%d = %v at distance %v, want in [10, 20)", origin, i, p, d)
		}
	}
}

// Benchmarks

func BenchmarkPoissonDiskSampler(b *testing.B) {
	for _, k := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("K%d", k), func(b *testing.B) {
			s, err := NewPoissonDiskSampler(WithSeed(0), WithRadius(5))
			if err != nil {
				b.Fatalf("NewPoissonDiskSampler(...) error = %v, want nil", err)
			}
			p := DefaultPolygon()

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				if _, err := s.GeneratePoints(context.Background(), p, k); err != nil {
					b.Fatalf("s.GeneratePoints(...) error = %v, want nil", err)
				}
			}
		})
	}
}

// Helpers

func mustNewPoissonDiskSampler(t *testing.T, seed int64, radius int) *PoissonDiskSampler {
	t.Helper()
	s, err := NewPoissonDiskSampler(WithSeed(seed), WithRadius(radius))
	if err != nil {
		t.Fatalf("NewPoissonDiskSampler(...) error = %v, want nil", err)
	}
	return s
}
