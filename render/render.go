// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package render draws sampling results side by side into a raster image.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/2dChan/polysample"
	"github.com/fogleman/gg"
)

const (
	// panelOffset is the horizontal distance between panels, relative to
	// the bounding box width.
	panelOffset = 1.2

	pointWidth  = 5
	circleWidth = 1
)

// Palette maps sampling methods to panel colors.
var Palette = map[string]color.Color{
	"random":  color.RGBA{R: 255, A: 255},
	"poisson": color.RGBA{B: 255, A: 255},
	"voronoi": color.RGBA{G: 178, A: 255},
	"bridson": color.RGBA{R: 255, G: 165, A: 255},
}

// Size returns the image size needed to draw n panels of p.
func Size(p *polysample.Polygon, n int) (width, height int) {
	b := p.Bounds()
	offset := int(float64(b.Width) * panelOffset)
	width = b.MinX + (n-1)*offset + b.Width + b.MinX
	height = b.MaxY() + b.MinY
	return width, height
}

// Draw renders one panel per result. Panels are shifted right by 1.2 times
// the bounding box width.
func Draw(p *polysample.Polygon, results []polysample.Result) image.Image {
	width, height := Size(p, max(len(results), 1))
	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	offset := float64(p.Bounds().Width) * panelOffset
	for i, r := range results {
		dc.Push()
		dc.Translate(float64(i)*offset, 0)
		drawPanel(dc, p, r)
		dc.Pop()
	}
	return dc.Image()
}

// SavePNG renders results and writes them to path.
func SavePNG(path string, p *polysample.Polygon, results []polysample.Result) error {
	if err := gg.SavePNG(path, Draw(p, results)); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	polysample.Logger().Info("rendered png", "path", path, "panels", len(results))
	return nil
}

func drawPanel(dc *gg.Context, p *polysample.Polygon, r polysample.Result) {
	b := p.Bounds()

	dc.SetColor(color.Black)
	dc.SetLineWidth(1)
	for i, v := range p.Vertices() {
		if i == 0 {
			dc.MoveTo(float64(v.X), float64(v.Y))
			continue
		}
		dc.LineTo(float64(v.X), float64(v.Y))
	}
	dc.ClosePath()
	dc.Stroke()
	dc.DrawRectangle(float64(b.MinX), float64(b.MinY), float64(b.Width), float64(b.Height))
	dc.Stroke()

	label := fmt.Sprintf("%s - points generated: %d", r.Name, len(r.Points))
	dc.DrawString(label, float64(b.MinX), float64(b.MinY)*0.75)

	c, ok := Palette[r.Method]
	if !ok {
		c = color.Black
	}
	dc.SetColor(c)
	for _, pt := range r.Points {
		dc.DrawPoint(float64(pt.X), float64(pt.Y), pointWidth/2.0)
		dc.Fill()
	}
	dc.SetLineWidth(circleWidth)
	for _, pt := range r.Points {
		dc.DrawCircle(float64(pt.X), float64(pt.Y), float64(r.Radius))
		dc.Stroke()
	}
}
