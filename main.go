package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"

	"github.com/davh/go-direct-raytracer/pkg/renderer"
	"github.com/davh/go-direct-raytracer/pkg/scene"
)

func main() {
	scenePath := flag.String("scene", "", "Scene YAML file (default: built-in scene)")
	width := flag.Int("width", 640, "Image width in pixels")
	height := flag.Int("height", 480, "Image height in pixels")
	strategyName := flag.String("strategy", "parallel_for", "Dispatch strategy: 'sequential', 'fixed_partition' or 'parallel_for'")
	modeName := flag.String("mode", "combined", "Lighting mode: 'observed_area', 'radiance', 'brdf' or 'combined'")
	shadows := flag.Bool("shadows", true, "Enable shadow rays")
	output := flag.String("output", "render.png", "Output file (.png or .bmp)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Direct-Lighting Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	strategy, err := renderer.ParseStrategy(*strategyName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	mode, err := renderer.ParseLightingMode(*modeName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	selectedScene, cameraConfig, err := loadScene(*scenePath)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}

	config := renderer.RenderConfig{
		Strategy:       strategy,
		ShadowsEnabled: *shadows,
		LightingMode:   mode,
	}

	camera := renderer.NewCamera(cameraConfig)
	fb := renderer.NewFramebuffer(*width, *height)
	r, err := renderer.NewRenderer(selectedScene, camera, fb, config)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering %dx%d (%s, %s, shadows=%v)...\n",
		*width, *height, strategy, mode, *shadows)

	startTime := time.Now()
	if err := r.Render(); err != nil {
		fmt.Printf("Error rendering frame: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	if err := saveImage(fb, *output); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", *output)
}

func loadScene(path string) (renderer.Scene, renderer.CameraConfig, error) {
	if path == "" {
		s, cameraConfig := scene.Default()
		return s, cameraConfig, nil
	}
	return scene.Load(path)
}

func saveImage(fb *renderer.Framebuffer, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return bmp.Encode(file, fb.ToImage())
	default:
		return png.Encode(file, fb.ToImage())
	}
}
