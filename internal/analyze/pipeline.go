package analyze

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/huescan/huescan/internal/classify"
	"github.com/huescan/huescan/internal/imaging"
	"github.com/huescan/huescan/internal/region"
)

// RegionSummary describes one detected region in a report.
type RegionSummary struct {
	// Category is the region's hue category ("red" or "blue").
	Category string `json:"category"`

	// Bounds is the bounding box enclosing the region.
	Bounds region.Bounds `json:"bounds"`

	// Area is the region's pixel count.
	Area int `json:"area"`

	// Perimeter is the region's exposed edge count.
	Perimeter int `json:"perimeter"`
}

// Report is the aggregated result of analyzing one image.
//
// The four flattened totals are the presentation contract; Regions carries
// the per-region breakdown in deterministic row-major discovery order.
// Each total equals the sum over that category's member regions.
type Report struct {
	// Width and Height are the analyzed buffer's dimensions in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// RedArea is the total pixel count of all red regions.
	RedArea int `json:"red_area"`

	// RedPerimeter is the total exposed edge count of all red regions.
	RedPerimeter int `json:"red_perimeter"`

	// RedRegions is the number of distinct red regions.
	RedRegions int `json:"red_regions"`

	// BlueArea is the total pixel count of all blue regions.
	BlueArea int `json:"blue_area"`

	// BluePerimeter is the total exposed edge count of all blue regions.
	BluePerimeter int `json:"blue_perimeter"`

	// BlueRegions is the number of distinct blue regions.
	BlueRegions int `json:"blue_regions"`

	// Regions lists every detected region in deterministic order.
	Regions []RegionSummary `json:"regions"`
}

// Analyze runs the full pipeline on one buffer: validation, classification,
// labeling, measurement, aggregation.
//
// Returns an error wrapping imaging.ErrInvalidInput for a nil or empty
// buffer, or classify.ErrUnsupportedConfig for an invalid config; both are
// rejected before any pixel work. On success the report is complete; on
// failure no partial report is returned.
func Analyze(ctx context.Context, buf *imaging.PixelBuffer, cfg classify.Config) (*Report, error) {
	if buf == nil || buf.Width() < 1 || buf.Height() < 1 {
		return nil, fmt.Errorf("%w: buffer must be at least 1x1", imaging.ErrInvalidInput)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid, err := classify.Classify(ctx, buf, cfg)
	if err != nil {
		return nil, err
	}

	regions, err := region.Label(ctx, grid)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Width:   buf.Width(),
		Height:  buf.Height(),
		Regions: make([]RegionSummary, 0, len(regions)),
	}
	for _, r := range regions {
		report.Regions = append(report.Regions, RegionSummary{
			Category:  r.Category.String(),
			Bounds:    r.Bounds,
			Area:      r.Area,
			Perimeter: r.Perimeter,
		})
		switch r.Category {
		case classify.Red:
			report.RedArea += r.Area
			report.RedPerimeter += r.Perimeter
			report.RedRegions++
		case classify.Blue:
			report.BlueArea += r.Area
			report.BluePerimeter += r.Perimeter
			report.BlueRegions++
		}
	}
	return report, nil
}

// AnalyzeAll analyzes independent buffers concurrently and returns their
// reports in input order.
//
// Each buffer is processed by its own Analyze invocation with no shared
// mutable state; concurrency is capped at GOMAXPROCS. The config is
// validated once up front. On any failure the whole batch fails.
func AnalyzeAll(ctx context.Context, bufs []*imaging.PixelBuffer, cfg classify.Config) ([]*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	reports := make([]*Report, len(bufs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, buf := range bufs {
		g.Go(func() error {
			rep, err := Analyze(ctx, buf, cfg)
			if err != nil {
				return fmt.Errorf("image %d: %w", i, err)
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
