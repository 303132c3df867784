package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/huescan/huescan/internal/analyze"
	"github.com/huescan/huescan/internal/classify"
	"github.com/huescan/huescan/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// fileReport pairs a report with the path it was produced from.
type fileReport struct {
	Path   string          `json:"path"`
	Report *analyze.Report `json:"report"`
}

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	fs := flag.NewFlagSet("huescan", flag.ExitOnError)
	configPath := fs.String("config", "", "path to a YAML classification config (defaults when empty)")
	maxDim := fs.Int("max-dim", 0, "downscale images whose longest side exceeds this many pixels (0 = never)")
	blurRadius := fs.Float64("blur", 0, "Gaussian denoise radius applied before classification (0 = off)")
	compact := fs.Bool("compact", false, "emit compact JSON instead of indented")
	showVersion := fs.Bool("version", false, "print version information and exit")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "huescan - hue region area/perimeter analysis")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage: huescan [options] <image> [<image>...]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Supported formats: PNG, JPEG, GIF, BMP, TIFF, WebP.")
		fmt.Fprintln(os.Stderr, "One JSON report per image is written to stdout.")
	}
	fs.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("huescan %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	paths := fs.Args()
	if len(paths) == 0 {
		fs.Usage()
		os.Exit(2)
	}

	cfg := classify.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = classify.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Config error: %v", err)
		}
	}

	cache := imaging.NewBufferCache(imaging.Options{
		MaxDimension: *maxDim,
		BlurRadius:   *blurRadius,
	})
	bufs := make([]*imaging.PixelBuffer, len(paths))
	for i, p := range paths {
		buf, err := cache.Load(p)
		if err != nil {
			log.Fatalf("Failed to load %s: %v", p, err)
		}
		bufs[i] = buf
	}

	reports, err := analyze.AnalyzeAll(context.Background(), bufs, cfg)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	if !*compact {
		enc.SetIndent("", "  ")
	}
	for i, rep := range reports {
		if err := enc.Encode(fileReport{Path: paths[i], Report: rep}); err != nil {
			log.Fatalf("Failed to encode report: %v", err)
		}
	}
}
