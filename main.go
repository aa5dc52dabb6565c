package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/glimmerlab/pathtracer/pkg/output"
	"github.com/glimmerlab/pathtracer/pkg/renderer"
	"github.com/glimmerlab/pathtracer/pkg/scene"
)

func createScene(sceneType string, seed int64, aspectRatio float64) (*scene.Scene, error) {
	override := renderer.CameraConfig{AspectRatio: aspectRatio}

	switch sceneType {
	case "random":
		return scene.NewRandomScene(seed, override), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

func main() {
	width := flag.Int("width", 1920, "Image width in pixels")
	height := flag.Int("height", 1080, "Image height in pixels")
	samples := flag.Int("samples", 100, "Samples per pixel")
	workers := flag.Int("workers", 0, "Number of render workers (0 = one per CPU)")
	seed := flag.Int64("seed", 42, "Base seed for scene generation and per-row sampling")
	sceneType := flag.String("scene", "random", "Scene type: 'random'")
	outDir := flag.String("out", "output", "Output directory")
	thumbWidth := flag.Uint("thumb-width", 480, "Preview thumbnail width in pixels")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Sphere Path Tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to <out>/<scene>/render_<timestamp>.png")
		fmt.Println("Set S3_BUCKET (plus S3_ACCESS_KEY etc., or a .env file) to also publish the render.")
		return
	}

	// Publish credentials may live in a .env file next to the binary
	_ = godotenv.Load()

	selectedScene, err := createScene(*sceneType, *seed, float64(*width)/float64(*height))
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	raytracer := renderer.NewRaytracer(selectedScene, *width, *height)
	raytracer.SetSamplingConfig(renderer.SamplingConfig{
		SamplesPerPixel: *samples,
		MaxDepth:        50,
	})
	raytracer.SetSeed(*seed)
	raytracer.SetWorkers(*workers)
	raytracer.SetLogger(log.New(os.Stderr, "", 0))

	fmt.Printf("Rendering %dx%d at %d samples/pixel...\n", *width, *height, *samples)

	startTime := time.Now()
	img, stats := raytracer.RenderImage()
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v (%d rows, %d samples)\n",
		renderTime, stats.RowsRendered, stats.TotalSamples)

	sceneDir := filepath.Join(*outDir, *sceneType)
	if err := os.MkdirAll(sceneDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(sceneDir, fmt.Sprintf("render_%s.png", timestamp))
	thumbname := filepath.Join(sceneDir, fmt.Sprintf("render_%s_thumb.png", timestamp))

	if err := output.SavePNG(img, filename); err != nil {
		fmt.Printf("Error saving render: %v\n", err)
		os.Exit(1)
	}
	if err := output.SaveThumbnail(img, thumbname, *thumbWidth); err != nil {
		fmt.Printf("Error saving thumbnail: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)

	publishConfig := output.LoadPublishConfigFromEnv()
	if publishConfig.Enabled() {
		key := fmt.Sprintf("%s/render_%s.png", *sceneType, timestamp)
		if err := output.Publish(context.Background(), publishConfig, img, key); err != nil {
			fmt.Printf("Error publishing render: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Render published to s3://%s/%s%s\n", publishConfig.Bucket, publishConfig.KeyPrefix, key)
	}
}
