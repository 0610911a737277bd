// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"errors"
	"testing"

	"github.com/2dChan/polysample"
	"github.com/google/go-cmp/cmp"
)

func TestParsePolygon(t *testing.T) {
	tests := []struct {
		name    string
		x, y    string
		want    []polysample.Point
		wantErr error
	}{
		{"triangle", "0,10,0", "0,0,10", []polysample.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}, nil},
		{"length mismatch", "0,10,0,5", "0,0,10", nil, polysample.ErrInvalidPolygon},
		{"too few", "0,10", "0,0", nil, polysample.ErrInvalidPolygon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := parsePolygon(tt.x, tt.y)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("parsePolygon(%q, %q) error = %v, want %v", tt.x, tt.y, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(tt.want, p.Vertices()); diff != "" {
				t.Errorf("parsePolygon(%q, %q) mismatch (-want +got):\n%s", tt.x, tt.y, diff)
			}
		})
	}

	if _, err := parsePolygon("1,a,2", "1,2,3"); err == nil {
		t.Errorf("parsePolygon(not a number) error = nil, want non-nil")
	}
}

func TestNewSamplers(t *testing.T) {
	samplers, err := newSamplers(1, 25, 30, 1000, false)
	if err != nil {
		t.Fatalf("newSamplers(...) error = %v, want nil", err)
	}
	var got []string
	for _, s := range samplers {
		got = append(got, s.Method())
	}
	if diff := cmp.Diff([]string{"random", "poisson", "voronoi"}, got); diff != "" {
		t.Errorf("newSamplers(...) methods mismatch (-want +got):\n%s", diff)
	}

	samplers, err = newSamplers(1, 25, 30, 1000, true)
	if err != nil {
		t.Fatalf("newSamplers(..., true) error = %v, want nil", err)
	}
	if len(samplers) != 4 || samplers[3].Method() != "bridson" {
		t.Errorf("newSamplers(..., true) = %d samplers, want 4 ending with bridson", len(samplers))
	}

	if _, err := newSamplers(1, 0, 30, 1000, false); err == nil {
		t.Errorf("newSamplers(radius 0) error = nil, want non-nil")
	}
}
