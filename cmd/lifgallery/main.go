package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"lifgallery/pkg/compose"
	"lifgallery/pkg/config"
	"lifgallery/pkg/hierarchy"
	"lifgallery/pkg/raster"
	"lifgallery/pkg/viewport"
	"lifgallery/pkg/visualization"
)

func main() {
	// Parse command line arguments
	inputDir := flag.String("input", "", "Directory containing a stack of PNG/JPEG slices")
	outputDir := flag.String("output", "gallery_out", "Directory to save derived images")
	configPath := flag.String("config", "", "Optional YAML configuration file")
	brightness := flag.Float64("brightness", 1.0, "Brightness factor (1.0 = unchanged)")
	contrast := flag.Float64("contrast", 0.0, "Contrast offset (0 = unchanged)")
	autoTone := flag.Bool("auto", false, "Derive brightness/contrast from the image statistics")
	projectView := flag.Bool("project", false, "Add a projection slice to every multi-slice channel")
	blendSpec := flag.String("blend", "", "Comma-separated channel IDs to blend (e.g. 0,1,2)")
	viewportSize := flag.String("viewport", "1280x960", "Viewport size used to report the fit zoom (WxH)")
	numCores := flag.Int("cores", 0, "Number of CPU cores for pixel loops (default: from config)")
	flag.Parse()

	// Validate inputs
	if *inputDir == "" {
		flag.Usage()
		os.Exit(1)
	}

	// Load configuration, then let explicit flags win over it
	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *numCores > 0 {
		cfg.Processing.NumCores = *numCores
	}
	if *projectView {
		cfg.Hierarchy.SynthesizeProjectionSlices = true
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "brightness":
			cfg.View.Brightness = *brightness
		case "contrast":
			cfg.View.Contrast = *contrast
		}
	})

	fmt.Println("================================")
	fmt.Println("LIFGALLERY - STACK HIERARCHY AND RASTER COMPOSITION")
	fmt.Println("================================")

	// 1) Ingest the folder as a flat plane list
	fmt.Printf("Loading image stack from: %s\n", *inputDir)
	planes, err := hierarchy.LoadFolder(*inputDir)
	if err != nil {
		log.Fatalf("Failed to load input: %v", err)
	}
	fmt.Printf("Loaded %d planes\n", len(planes))

	// 2) Group planes into the series/channel/slice tree
	tree, err := hierarchy.Build(planes, hierarchy.Options{
		SynthesizeProjectionSlices: cfg.Hierarchy.SynthesizeProjectionSlices,
		Workers:                    cfg.Processing.NumCores,
	})
	if err != nil {
		log.Fatalf("Failed to build hierarchy: %v", err)
	}

	fmt.Println("\nHierarchy:")
	for _, s := range tree.Series {
		fmt.Printf("  Series %d\n", s.ID)
		for _, ch := range s.Channels {
			fmt.Printf("    Channel %d: %d slices (%dx%d)\n",
				ch.ID, len(ch.AcquiredSlices()), ch.Base.Width(), ch.Base.Height())
		}
	}

	// 3) Select the raster to present: a blend of the requested channels,
	// or the first channel's base image
	comp := &compose.Compositor{Workers: cfg.Processing.NumCores}
	current := tree.Series[0].Channels[0].Base
	if *blendSpec != "" {
		blended, err := blendChannels(comp, tree, *blendSpec)
		if err != nil {
			log.Fatalf("Blend failed: %v", err)
		}
		current = blended
	}

	// 4) Tone adjustment, manual or statistics-driven
	if *autoTone {
		adjusted, b, c, err := comp.AutoAdjust(current)
		if err != nil {
			log.Fatalf("Auto tone failed: %v", err)
		}
		fmt.Printf("\nAuto tone: brightness=%.3f contrast=%.1f\n", b, c)
		current = adjusted
	} else {
		adjusted, err := comp.Adjust(current, cfg.View.Brightness, cfg.View.Contrast)
		if err != nil {
			log.Fatalf("Tone adjustment failed: %v", err)
		}
		current = adjusted
	}

	// 5) Report intensity statistics for the displayed raster
	stats := compose.Measure(current)
	fmt.Println("\nIntensity statistics:")
	fmt.Println("=====================")
	fmt.Printf("Mean: %.2f\n", stats.Mean)
	fmt.Printf("Std dev: %.2f\n", stats.StdDev)
	fmt.Printf("Range: [%.0f, %.0f]\n", stats.Min, stats.Max)
	fmt.Printf("Entropy: %.3f nats\n", stats.Entropy)

	// 6) Report how the raster would present in a viewport of the
	// requested size
	var vw, vh float64
	if _, err := fmt.Sscanf(*viewportSize, "%fx%f", &vw, &vh); err != nil || vw <= 0 || vh <= 0 {
		log.Fatalf("Invalid viewport size %q (expected WxH)", *viewportSize)
	}
	view, err := viewport.NewStackView(viewport.Bounds{Min: cfg.Zoom.Min, Max: cfg.Zoom.Max})
	if err != nil {
		log.Fatalf("Invalid zoom bounds: %v", err)
	}
	view.SetRaster(current)
	view.Transform().FitTo(vw, vh, float64(current.Width()), float64(current.Height()))
	fmt.Printf("\nFit zoom for a %.0fx%.0f viewport: %.3f (bounds [%g, %g])\n",
		vw, vh, view.Transform().Zoom(), cfg.Zoom.Min, cfg.Zoom.Max)

	// 7) Export the displayed raster plus every channel base
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	currentPath := filepath.Join(*outputDir, "current.png")
	if err := visualization.SaveRaster(current, currentPath); err != nil {
		log.Fatalf("Failed to save composited image: %v", err)
	}
	if err := visualization.SaveChannelBases(tree, filepath.Join(*outputDir, "channels")); err != nil {
		log.Fatalf("Failed to save channel bases: %v", err)
	}

	fmt.Printf("\nSaved composited image to: %s\n", currentPath)
	fmt.Printf("Saved channel base images to: %s\n", filepath.Join(*outputDir, "channels"))
}

// blendChannels resolves a comma-separated channel ID list against the
// first series and blends the selected channel bases.
func blendChannels(comp *compose.Compositor, tree *hierarchy.Tree, spec string) (*raster.Raster, error) {
	seriesID := tree.Series[0].ID

	var sources []*raster.Raster
	for _, part := range strings.Split(spec, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid channel ID %q", part)
		}
		ch := tree.Channel(seriesID, id)
		if ch == nil {
			return nil, fmt.Errorf("series %d has no channel %d", seriesID, id)
		}
		sources = append(sources, ch.Base)
	}
	return comp.Blend(sources)
}
