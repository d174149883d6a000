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
	"github.com/menta2k/product-bg/pkg/compose"
)

func main() {
	var configPath string

	flag.StringVar(&configPath, "config", "", "path to a JSON config file")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		usage()
		os.Exit(1)
	}

	input := args[0]
	backgroundPath := args[1]
	outputDir := ""
	if len(args) > 2 {
		outputDir = args[2]
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
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	if !utils.FileExists(backgroundPath) {
		fmt.Fprintf(os.Stderr, "✗ Error: Background image '%s' not found.\n", backgroundPath)
		os.Exit(1)
	}

	studio := productbg.NewWithConfig(cfg)
	opts := compose.DefaultOptions()

	if batch.IsPattern(input) {
		processBatch(studio, input, backgroundPath, outputDir, opts)
		return
	}

	// Single file
	if !utils.FileExists(input) {
		fmt.Fprintf(os.Stderr, "✗ Error: Product image '%s' not found.\n", input)
		os.Exit(1)
	}

	fmt.Println("Processing image...")
	fmt.Println()

	outPath, err := studio.AddBackgroundFile(input, backgroundPath, outputDir, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Error processing %s: %v\n", input, err)
		os.Exit(1)
	}

	fmt.Printf("✓ Processed: %s → %s\n", filepath.Base(input), filepath.Base(outPath))
	fmt.Printf("\n✓ Success! Saved to: %s\n", outPath)
}

// processBatch composites every product matching the pattern onto the
// same background, continuing past individual failures.
func processBatch(studio *productbg.Studio, pattern, backgroundPath, outputDir string, opts compose.Options) {
	files, err := batch.Expand(pattern)
	if err != nil {
		if errors.Is(err, batch.ErrNoMatches) {
			fmt.Fprintf(os.Stderr, "✗ No files found matching: %s\n", pattern)
		} else {
			fmt.Fprintf(os.Stderr, "✗ %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Found %d product image(s) to process\n", len(files))
	fmt.Printf("Using background: %s\n", backgroundPath)
	fmt.Println("Processing images...")
	fmt.Println()

	summary := batch.Run(files, func(path string) error {
		outPath, err := studio.AddBackgroundFile(path, backgroundPath, outputDir, opts)
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
	fmt.Fprintln(os.Stderr, "Add Background to Product Images")
	fmt.Fprintln(os.Stderr, strings.Repeat("=", 50))
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintf(os.Stderr, "  Single file:  %s <product_image> <background_image> [output_dir]\n", prog)
	fmt.Fprintf(os.Stderr, "  Batch mode:   %s <product_pattern> <background_image> [output_dir]\n", prog)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintf(os.Stderr, "  %s product_no_bg.webp white_bg.jpg\n", prog)
	fmt.Fprintf(os.Stderr, "  %s product_no_bg.webp white_bg.jpg final\n", prog)
	fmt.Fprintf(os.Stderr, "  %s 'processed/*_no_bg.webp' backgrounds/white.jpg final\n", prog)
	fmt.Fprintf(os.Stderr, "  %s 'clean/*.webp' backgrounds/gradient.png output\n", prog)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Supported formats: WebP, JPG, PNG, BMP, TIFF")
}
