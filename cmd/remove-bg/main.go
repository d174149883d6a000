package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	productbg "github.com/menta2k/product-bg"
	"github.com/menta2k/product-bg/internal/config"
	"github.com/menta2k/product-bg/internal/utils"
	"github.com/menta2k/product-bg/pkg/batch"
)

func main() {
	var modelPath, configPath string

	flag.StringVar(&modelPath, "model", "", "path to the U²-Net ONNX model file")
	flag.StringVar(&configPath, "config", "", "path to a JSON config file")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(1)
	}

	input := args[0]
	outputDir := ""
	if len(args) > 1 {
		outputDir = args[1]
	}

	cfg := config.Default()
	if configPath == "" && utils.FileExists(config.GetConfigPath()) {
		configPath = config.GetConfigPath()
	}
	if configPath != "" {
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if modelPath != "" {
		cfg.Model.Path = modelPath
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	studio := productbg.NewWithConfig(cfg)

	if batch.IsPattern(input) {
		processBatch(studio, input, outputDir)
		return
	}

	// Single file
	if !utils.FileExists(input) {
		fmt.Fprintf(os.Stderr, "✗ Error: File '%s' not found.\n", input)
		os.Exit(1)
	}

	fmt.Println("Loading U²-Net model...")
	if err := studio.LoadModel(); err != nil {
		log.Fatalf("Failed to load segmentation model: %v", err)
	}
	defer studio.Close()

	fmt.Println("Processing image...")
	fmt.Println()

	outPath, err := studio.RemoveBackgroundFile(input, outputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Error processing %s: %v\n", input, err)
		os.Exit(1)
	}

	fmt.Printf("✓ Processed: %s → %s\n", filepath.Base(input), filepath.Base(outPath))
	fmt.Printf("\n✓ Success! Saved to: %s\n", outPath)
}

// processBatch expands the pattern and processes every match, continuing
// past individual failures. The model session is created once and shared
// by all files.
func processBatch(studio *productbg.Studio, pattern, outputDir string) {
	files, err := batch.Expand(pattern)
	if err != nil {
		if errors.Is(err, batch.ErrNoMatches) {
			fmt.Fprintf(os.Stderr, "✗ No files found matching: %s\n", pattern)
		} else {
			fmt.Fprintf(os.Stderr, "✗ %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Found %d image(s) to process\n", len(files))
	fmt.Println("Loading U²-Net model...")

	if err := studio.LoadModel(); err != nil {
		log.Fatalf("Failed to load segmentation model: %v", err)
	}
	defer studio.Close()

	fmt.Println("Processing images...")
	fmt.Println()

	summary := batch.Run(files, func(path string) error {
		outPath, err := studio.RemoveBackgroundFile(path, outputDir)
		if err != nil {
			fmt.Printf("✗ Error processing %s: %v\n", path, err)
			return err
		}
		fmt.Printf("✓ Processed: %s → %s\n", filepath.Base(path), filepath.Base(outPath))
		return nil
	})

	fmt.Println()
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Complete! Processed %d image(s)\n", summary.Succeeded)
	if summary.Failed > 0 {
		fmt.Printf("Failed: %d image(s)\n", summary.Failed)
	}
}

func usage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintln(os.Stderr, "Product Background Remover with U²-Net")
	fmt.Fprintln(os.Stderr, strings.Repeat("=", 50))
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintf(os.Stderr, "  Single file:  %s <image_file> [output_dir]\n", prog)
	fmt.Fprintf(os.Stderr, "  Batch mode:   %s <pattern> [output_dir]\n", prog)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintf(os.Stderr, "  %s product.jpg\n", prog)
	fmt.Fprintf(os.Stderr, "  %s product.jpg output_folder\n", prog)
	fmt.Fprintf(os.Stderr, "  %s 'products/*.jpg'\n", prog)
	fmt.Fprintf(os.Stderr, "  %s 'products/*.jpg' clean_images\n", prog)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Supported formats: JPG, PNG, WebP, BMP, TIFF")
}
