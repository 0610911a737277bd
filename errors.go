// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polysample

import "errors"

var (
	// ErrInvalidPolygon is returned when a polygon ring has fewer than 3 vertices.
	ErrInvalidPolygon = errors.New("polysample: invalid polygon")
	// ErrInvalidK is returned when a negative number of points is requested.
	ErrInvalidK = errors.New("polysample: k must be non-negative")
)
