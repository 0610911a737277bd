// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides helpers for parsing coordinate input and for
// generating reproducible random points.

package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"
)

// NewRand returns a random source seeded with seed.
func NewRand(seed int64) *rand.Rand {
	//nolint:gosec
	return rand.New(rand.NewSource(seed))
}

// GenerateRandomPoints generates cnt uniform random points in the unit square.
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64) []r2.Point {
	random := NewRand(seed)
	points := make([]r2.Point, cnt)

	for i := range cnt {
		points[i] = r2.Point{X: random.Float64(), Y: random.Float64()}
	}

	return points
}

// ParseInts parses a comma separated list of integers, e.g. "150,250,325".
// Whitespace around values is ignored.
func ParseInts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("utils: value %d: %w", i, err)
		}
		values[i] = v
	}
	return values, nil
}

// FormatInts is the inverse of ParseInts.
func FormatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
