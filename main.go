package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene id: a built-in scene, json:<name> from ./scenes, or a path to a .json file")
	configPath := flag.String("config", "", "Path to a .json scene description (overrides -scene)")
	ambientOcclusion := flag.Bool("ao", false, "Render ambient occlusion instead of full shading")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	outPath := flag.String("out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		showHelp()
		return
	}

	fmt.Println("Starting Whitted Raytracer...")

	logger := log.New(os.Stdout, "", log.Ltime)

	id := *sceneType
	if *configPath != "" {
		id = *configPath
	}

	selectedScene, err := createScene(id, *width, logger)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Scene %s: %d primitives, %d lights, %dx%d\n", id, selectedScene.GetPrimitiveCount(),
		len(selectedScene.Lights), selectedScene.SamplingConfig.Width, selectedScene.SamplingConfig.Height)

	config := renderer.DefaultRenderConfig()
	config.NumWorkers = *workers
	raytracer := renderer.NewRaytracer(selectedScene, config, logger)

	img, stats := raytracer.Render(*ambientOcclusion)

	fmt.Printf("Render completed in %v\n", stats.Elapsed)
	fmt.Printf("Rays per pixel: %.1f, average luminance: %.3f\n",
		stats.RaysPerPixel(), renderer.CalculateAverageLuminance(img))

	filename := *outPath
	if filename == "" {
		filename = defaultOutputPath(id, *ambientOcclusion, time.Now())
	}
	if err := renderer.SavePNG(filename, img); err != nil {
		fmt.Printf("Error saving render: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// createScene resolves a scene id and applies the width override
func createScene(id string, width int, logger core.Logger) (*scene.Scene, error) {
	var overrides []geometry.CameraConfig
	if width > 0 {
		overrides = append(overrides, geometry.CameraConfig{Width: width})
	}
	return scene.NewScene(id, logger, overrides...)
}

// defaultOutputPath builds output/<scene>/render_<timestamp>.png, with an _ao suffix for
// ambient occlusion renders
func defaultOutputPath(id string, ambientOcclusion bool, now time.Time) string {
	name := strings.TrimPrefix(id, "json:")
	name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))

	suffix := ""
	if ambientOcclusion {
		suffix = "_ao"
	}
	return filepath.Join("output", name, fmt.Sprintf("render_%s%s.png", now.Format("20060102_150405"), suffix))
}

func showHelp() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")

	scenes, err := scene.ListScenes()
	if err != nil {
		fmt.Printf("  (failed to list scenes: %v)\n", err)
		return
	}
	for _, s := range scenes {
		fmt.Printf("  %-16s - %s\n", s.ID, s.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
}
