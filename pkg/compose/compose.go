package compose

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// MaxCoverage is the fraction of the background a resized product may
// occupy in each dimension.
const MaxCoverage = 0.8

// Options configures the fit-and-place engine
type Options struct {
	// ResizeProduct shrinks the product so it covers at most MaxCoverage
	// of the background. Products already within the bound are never
	// upscaled.
	ResizeProduct bool
	// Center positions the product at the middle of the background;
	// otherwise it is placed at the top-left corner.
	Center bool
}

// DefaultOptions returns the options used by the add-bg tool
func DefaultOptions() Options {
	return Options{ResizeProduct: true, Center: true}
}

// Placement is the derived size and position of a product on a background
type Placement struct {
	Width  int
	Height int
	X      int
	Y      int
}

// ComputePlacement calculates the target product size and top-left offset
// for overlaying a product onto a background.
//
// With ResizeProduct set, the product is scaled down proportionally so
// that it fits within MaxCoverage of the background; upscaling never
// happens. With Center set, the offset uses floor division and may be
// negative when the product is still larger than the background.
func ComputePlacement(prodWidth, prodHeight, bgWidth, bgHeight int, opts Options) Placement {
	width, height := prodWidth, prodHeight

	if opts.ResizeProduct {
		maxWidth := int(float64(bgWidth) * MaxCoverage)
		maxHeight := int(float64(bgHeight) * MaxCoverage)

		scale := math.Min(
			float64(maxWidth)/float64(prodWidth),
			float64(maxHeight)/float64(prodHeight),
		)
		if scale < 1 {
			width = int(math.Round(float64(prodWidth) * scale))
			height = int(math.Round(float64(prodHeight) * scale))
		}
	}

	x, y := 0, 0
	if opts.Center {
		x = floorDiv(bgWidth-width, 2)
		y = floorDiv(bgHeight-height, 2)
	}

	return Placement{Width: width, Height: height, X: x, Y: y}
}

// Compose overlays a product image (with alpha) onto an opaque copy of
// the background and returns the flattened result. The output always has
// the background's dimensions; product regions outside the background are
// silently clipped.
func Compose(product, background image.Image, opts Options) *image.NRGBA {
	bgBounds := background.Bounds()
	prodBounds := product.Bounds()

	placement := ComputePlacement(prodBounds.Dx(), prodBounds.Dy(), bgBounds.Dx(), bgBounds.Dy(), opts)

	fitted := product
	if placement.Width != prodBounds.Dx() || placement.Height != prodBounds.Dy() {
		fitted = imaging.Resize(product, placement.Width, placement.Height, imaging.Lanczos)
	}

	result := flatten(background)
	return imaging.Overlay(result, fitted, image.Pt(placement.X, placement.Y), 1.0)
}

// flatten returns an opaque NRGBA copy of img, dropping any alpha channel
func flatten(img image.Image) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
