// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/2dChan/polysample"
	"github.com/2dChan/polysample/render"
	"github.com/2dChan/polysample/svgexport"
	"github.com/2dChan/polysample/utils"
	"github.com/urfave/cli/v3"
)

const defaultOutputDir = "img"

func main() {
	xs, ys := polysample.DefaultCoords()

	app := &cli.App{
		Name:        "polysample",
		Description: "Generates k points in a non-convex polygon with random, Poisson disk and Voronoi sampling",
		Commands: []*cli.Command{
			{
				Name:    "generate",
				Aliases: []string{"g"},
				Usage:   "sample a polygon and export the results",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "k",
						Usage: "number of points to generate",
						Value: polysample.DefaultK,
					},
					&cli.IntFlag{
						Name:    "radius",
						Aliases: []string{"r"},
						Usage:   "minimum distance between Poisson disk points",
						Value:   polysample.DefaultRadius,
					},
					&cli.IntFlag{
						Name:  "reject",
						Usage: "attempts around an active point before it is retired",
						Value: polysample.DefaultRejectNum,
					},
					&cli.IntFlag{
						Name:  "aux",
						Usage: "auxiliary points for Voronoi sampling",
						Value: polysample.DefaultAuxPoints,
					},
					&cli.StringFlag{
						Name:  "x",
						Usage: "comma separated polygon x coordinates",
						Value: utils.FormatInts(xs),
					},
					&cli.StringFlag{
						Name:  "y",
						Usage: "comma separated polygon y coordinates",
						Value: utils.FormatInts(ys),
					},
					&cli.IntFlag{
						Name:        "seed",
						Usage:       "random seed",
						DefaultText: "time based",
					},
					&cli.IntFlag{
						Name:  "timeout",
						Usage: "seconds before sampling is abandoned",
						Value: 30,
					},
					&cli.StringFlag{
						Name:      "out",
						Aliases:   []string{"o"},
						Usage:     "directory for exported SVG files",
						Value:     defaultOutputDir,
						TakesFile: true,
					},
					&cli.StringFlag{
						Name:      "png",
						Usage:     "also render all results side by side into this PNG file",
						TakesFile: true,
					},
					&cli.BoolFlag{
						Name:  "mesh",
						Usage: "overlay the Delaunay mesh of the points in SVG files",
					},
					&cli.BoolFlag{
						Name:  "cells",
						Usage: "overlay the Voronoi cells of the points in SVG files",
					},
					&cli.BoolFlag{
						Name:  "bridson",
						Usage: "also run the reference Bridson sampler",
					},
					&cli.BoolFlag{
						Name:  "verbose",
						Usage: "log debug records",
					},
				},
				Action: generate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx *cli.Context) error {
	logger := newLogger(ctx.Bool("verbose"))
	polysample.SetLogger(logger)

	poly, err := parsePolygon(ctx.String("x"), ctx.String("y"))
	if err != nil {
		logger.Warn("Invalid polygon, using the default one", "error", err)
		poly = polysample.DefaultPolygon()
	}

	k := ctx.Int("k")
	radius := ctx.Int("radius")
	seed := int64(ctx.Int("seed"))
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger = logger.With("k", k, "radius", radius, "seed", seed)

	samplers, err := newSamplers(seed, radius, ctx.Int("reject"), ctx.Int("aux"), ctx.Bool("bridson"))
	if err != nil {
		return err
	}

	sampleCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt)
	defer stop()
	sampleCtx, cancel := context.WithTimeout(sampleCtx, time.Duration(ctx.Int("timeout"))*time.Second)
	defer cancel()

	results, err := polysample.SampleAll(sampleCtx, poly, k, radius, samplers...)
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("sampling did not finish in time, the polygon may be too small or degenerate: %w", err)
	}
	if err != nil {
		return err
	}
	logger.Info("Points generated")

	for _, r := range results {
		s := polysample.Spacing(r.Points)
		fmt.Printf("%s - points generated: %d (min distance %.2f, mean nearest %.2f)\n",
			r.Name, len(r.Points), s.MinDistance, s.MeanNearest)
	}

	paths, err := svgexport.ExportAll(ctx.String("out"), poly, results,
		svgexport.WithMesh(ctx.Bool("mesh")),
		svgexport.WithCells(ctx.Bool("cells")),
	)
	if err != nil {
		return fmt.Errorf("error exporting svg: %w", err)
	}
	for _, path := range paths {
		fmt.Printf("Exported SVG file: %s\n", path)
	}

	if png := ctx.String("png"); png != "" {
		if err := render.SavePNG(png, poly, results); err != nil {
			return fmt.Errorf("error rendering png: %w", err)
		}
		fmt.Printf("Rendered PNG file: %s\n", png)
	}
	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func parsePolygon(x, y string) (*polysample.Polygon, error) {
	xs, err := utils.ParseInts(x)
	if err != nil {
		return nil, fmt.Errorf("x coordinates: %w", err)
	}
	ys, err := utils.ParseInts(y)
	if err != nil {
		return nil, fmt.Errorf("y coordinates: %w", err)
	}
	vertices, err := polysample.PointsFromCoords(xs, ys)
	if err != nil {
		return nil, err
	}
	return polysample.NewPolygon(vertices)
}

// newSamplers returns the random, Poisson disk and Voronoi samplers sharing
// one seeded random source, plus the Bridson sampler when requested.
func newSamplers(seed int64, radius, rejectNum, auxPoints int, bridson bool) ([]polysample.Sampler, error) {
	opts := []polysample.Option{
		polysample.WithRand(utils.NewRand(seed)),
		polysample.WithRadius(radius),
		polysample.WithRejectNum(rejectNum),
		polysample.WithAuxPoints(auxPoints),
	}

	random, err := polysample.NewRandomSampler(opts...)
	if err != nil {
		return nil, err
	}
	poisson, err := polysample.NewPoissonDiskSampler(opts...)
	if err != nil {
		return nil, err
	}
	voronoi, err := polysample.NewVoronoiSampler(opts...)
	if err != nil {
		return nil, err
	}
	samplers := []polysample.Sampler{random, poisson, voronoi}

	if bridson {
		b, err := polysample.NewBridsonSampler(opts...)
		if err != nil {
			return nil, err
		}
		samplers = append(samplers, b)
	}
	return samplers, nil
}
