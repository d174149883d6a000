// Package productbg provides product-photo post-processing: background
// removal with a pretrained U²-Net segmentation model and compositing of
// transparent product images onto new backgrounds.
//
// Basic usage:
//
//	package main
//
//	import (
//		"log"
//
//		productbg "github.com/menta2k/product-bg"
//	)
//
//	func main() {
//		studio := productbg.New()
//
//		// Load the segmentation model once; it is reused for every image.
//		if err := studio.LoadModel(); err != nil {
//			log.Fatal(err)
//		}
//		defer studio.Close()
//
//		// Strip the background: writes photo_no_bg.webp next to the input.
//		out, err := studio.RemoveBackgroundFile("photo.jpg", "")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		// Place the cut-out on a new background: writes photo_with_bg.webp.
//		if _, err := studio.AddBackgroundFile(out, "white.jpg", "final"); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// The package consists of four main components:
//
// 1. Compose (pkg/compose): the fit-and-place engine that scales and
// positions a product on a background
// 2. Segment (pkg/segment): the U²-Net segmentation stage behind a
// narrow Model interface
// 3. ImageIO (pkg/imageio): decoding of common raster formats and WebP
// encoding
// 4. Batch (pkg/batch): glob expansion and the continue-past-failure
// batch driver used by the CLI tools
//
// All output is lossy WebP at quality 95. Background removal keeps the
// alpha channel; compositing produces a flattened opaque image with the
// background's dimensions.
package productbg

import (
	"fmt"
	"image"

	"github.com/menta2k/product-bg/internal/config"
	"github.com/menta2k/product-bg/pkg/compose"
	"github.com/menta2k/product-bg/pkg/imageio"
	"github.com/menta2k/product-bg/pkg/naming"
	"github.com/menta2k/product-bg/pkg/segment"
)

// Version of the product-bg library
const Version = "1.0.0"

// Studio provides a high-level interface for background removal and
// compositing
type Studio struct {
	cfg     *config.Config
	model   segment.Model
	session *segment.Session
}

// New creates a new Studio with default configuration
func New() *Studio {
	return &Studio{cfg: config.Default()}
}

// NewWithConfig creates a new Studio with custom configuration
func NewWithConfig(cfg *config.Config) *Studio {
	return &Studio{cfg: cfg}
}

// SetModel injects a segmentation model, replacing any loaded session.
// Useful for testing the pipeline without running real inference.
func (s *Studio) SetModel(model segment.Model) {
	s.model = model
}

// LoadModel creates the U²-Net session from the configured model path.
// It is a no-op when a model has already been set or loaded.
func (s *Studio) LoadModel() error {
	if s.model != nil {
		return nil
	}
	session, err := segment.NewSession(s.cfg.Model.Path)
	if err != nil {
		return err
	}
	s.session = session
	s.model = session
	return nil
}

// Close releases the segmentation session, if one was loaded
func (s *Studio) Close() error {
	if s.session == nil {
		return nil
	}
	return s.session.Close()
}

// RemoveBackground strips the background from a decoded image
func (s *Studio) RemoveBackground(img image.Image) (image.Image, error) {
	if s.model == nil {
		return nil, fmt.Errorf("segmentation model not loaded")
	}
	return s.model.RemoveBackground(img)
}

// RemoveBackgroundFile loads an image, strips its background and writes
// {base}_no_bg.webp. With an empty outputDir the file is written next to
// the input. Returns the output path.
func (s *Studio) RemoveBackgroundFile(inputPath, outputDir string) (string, error) {
	img, err := imageio.Load(inputPath)
	if err != nil {
		return "", fmt.Errorf("failed to load image: %w", err)
	}

	cut, err := s.RemoveBackground(img)
	if err != nil {
		return "", err
	}

	outPath, err := naming.Resolve(inputPath, naming.NoBackgroundName(inputPath), outputDir)
	if err != nil {
		return "", err
	}

	if err := imageio.SaveWebP(cut, outPath, s.cfg.Output.Quality, s.cfg.Output.Lossless); err != nil {
		return "", err
	}
	return outPath, nil
}

// AddBackgroundFile composites a transparent product image onto a
// background and writes {base}_with_bg.webp, stripping a trailing
// "_no_bg" from the product's basename first. Returns the output path.
func (s *Studio) AddBackgroundFile(productPath, backgroundPath, outputDir string, opts compose.Options) (string, error) {
	product, err := imageio.Load(productPath)
	if err != nil {
		return "", fmt.Errorf("failed to load product image: %w", err)
	}

	background, err := imageio.Load(backgroundPath)
	if err != nil {
		return "", fmt.Errorf("failed to load background image: %w", err)
	}

	result := compose.Compose(product, background, opts)

	outPath, err := naming.Resolve(productPath, naming.WithBackgroundName(productPath), outputDir)
	if err != nil {
		return "", err
	}

	if err := imageio.SaveWebP(result, outPath, s.cfg.Output.Quality, s.cfg.Output.Lossless); err != nil {
		return "", err
	}
	return outPath, nil
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
