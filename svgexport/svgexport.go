// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package svgexport writes sampling results as SVG files.
package svgexport

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/2dChan/polysample"
	"github.com/2dChan/polysample/delaunay"
	svg "github.com/ajstarks/svgo"
	"github.com/golang/geo/r2"
)

const (
	clipID = "clip"

	outlineStyle = "stroke:black;fill:none"
	meshStyle    = "stroke:rgb(170,170,170);stroke-width:0.5;fill:none"
	cellStyle    = "stroke:rgb(120,120,120);stroke-dasharray:2,2;fill:none"
)

// Colors maps sampling methods to point colors.
var Colors = map[string]string{
	"random":  "red",
	"poisson": "blue",
	"voronoi": "green",
	"bridson": "orange",
}

// Options controls the SVG output.
type Options struct {
	// Mesh overlays the Delaunay triangulation of the points.
	Mesh bool
	// Cells overlays the Voronoi cells of the points, clipped to the
	// bounding box.
	Cells bool
}

// Option configures Options.
type Option func(*Options) error

// WithMesh enables the Delaunay mesh overlay.
func WithMesh(mesh bool) Option {
	return func(o *Options) error {
		o.Mesh = mesh
		return nil
	}
}

// WithCells enables the Voronoi cell overlay.
func WithCells(cells bool) Option {
	return func(o *Options) error {
		o.Cells = cells
		return nil
	}
}

// Filename returns "{method}_{radius}_{k}_{count}.svg" for r.
func Filename(r polysample.Result) string {
	return fmt.Sprintf("%s_%d_%d_%d.svg", r.Method, r.Radius, r.K, len(r.Points))
}

// Color returns the point color for method, black if unknown.
func Color(method string) string {
	if c, ok := Colors[method]; ok {
		return c
	}
	return "black"
}

// Write renders p and r to w.
func Write(w io.Writer, p *polysample.Polygon, r polysample.Result, setters ...Option) error {
	var opts Options
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return err
		}
	}

	b := p.Bounds()
	color := Color(r.Method)

	canvas := svg.New(w)
	canvas.Startview(b.Width, b.Height, b.MinX, b.MinY, b.Width, b.Height)

	canvas.Def()
	canvas.ClipPath(fmt.Sprintf(`id="%s"`, clipID))
	canvas.Rect(b.MinX, b.MinY, b.Width, b.Height)
	canvas.ClipEnd()
	canvas.DefEnd()

	vertices := p.Vertices()
	xs := make([]int, len(vertices))
	ys := make([]int, len(vertices))
	for i, v := range vertices {
		xs[i], ys[i] = v.X, v.Y
	}
	canvas.Polygon(xs, ys, outlineStyle)
	canvas.Rect(b.MinX, b.MinY, b.Width, b.Height, outlineStyle)

	if opts.Mesh || opts.Cells {
		writeOverlay(canvas, r.Points, opts)
	}

	pointStyle := fmt.Sprintf("stroke:%s;fill:%s", color, color)
	circleStyle := fmt.Sprintf("stroke:%s;fill:none", color)
	clip := fmt.Sprintf(`clip-path="url(#%s)"`, clipID)
	for _, pt := range r.Points {
		canvas.Circle(pt.X, pt.Y, 1, pointStyle)
		canvas.Circle(pt.X, pt.Y, r.Radius, circleStyle, clip)
	}

	canvas.End()
	return nil
}

// writeOverlay draws the Delaunay edges and Voronoi cells of points as
// selected by opts. Inputs the triangulation rejects are skipped.
func writeOverlay(canvas *svg.SVG, points []polysample.Point, opts Options) {
	vertices := make([]r2.Point, len(points))
	for i, p := range points {
		vertices[i] = p.Vec()
	}
	dt, err := delaunay.NewTriangulation(vertices)
	if err != nil {
		polysample.Logger().Debug("svg overlay skipped", "points", len(points), "error", err)
		return
	}
	if opts.Mesh {
		writeMesh(canvas, dt, points)
	}
	if opts.Cells {
		writeCells(canvas, dt)
	}
}

func writeMesh(canvas *svg.SVG, dt *delaunay.Triangulation, points []polysample.Point) {
	canvas.Group(meshStyle)
	for _, e := range dt.Edges() {
		a, b := points[e[0]], points[e[1]]
		canvas.Line(a.X, a.Y, b.X, b.Y)
	}
	canvas.Gend()
}

// writeCells draws bounded cells as polygons and hull cells as open
// polylines.
func writeCells(canvas *svg.SVG, dt *delaunay.Triangulation) {
	canvas.Group(cellStyle, fmt.Sprintf(`clip-path="url(#%s)"`, clipID))
	for vIdx := range dt.Vertices {
		cell, closed := dt.Cell(vIdx)
		xs := make([]int, len(cell))
		ys := make([]int, len(cell))
		for i, v := range cell {
			xs[i], ys[i] = int(math.Round(v.X)), int(math.Round(v.Y))
		}
		if closed {
			canvas.Polygon(xs, ys)
		} else {
			canvas.Polyline(xs, ys)
		}
	}
	canvas.Gend()
}

// Export writes r to dir/Filename(r), creating dir if needed. It returns the
// written path.
func Export(dir string, p *polysample.Polygon, r polysample.Result, setters ...Option) (path string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("svgexport: create output dir: %w", err)
	}

	path = filepath.Join(dir, Filename(r))
	_, statErr := os.Stat(path)
	overwrite := statErr == nil

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("svgexport: %w", err)
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	if err := Write(file, p, r, setters...); err != nil {
		return "", err
	}
	polysample.Logger().Info("exported svg", "path", path, "overwritten", overwrite)
	return path, nil
}

// ExportAll exports every result to dir and returns the written paths.
func ExportAll(dir string, p *polysample.Polygon, results []polysample.Result, setters ...Option) ([]string, error) {
	paths := make([]string, 0, len(results))
	for _, r := range results {
		path, err := Export(dir, p, r, setters...)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
