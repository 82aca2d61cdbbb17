// Package resizer scales source images to a packing run's target dimensions.
package resizer

import (
	"image"

	"github.com/disintegration/imaging"
)

// Resize scales img to the given target dimensions using Lanczos resampling.
// A zero width or height means that axis has no target: when only one axis
// is set the other is derived from the source aspect ratio by floor
// division, and when neither is set img is returned untouched.
//
// With both targets set the image is scaled to exactly width x height, even
// when that changes the aspect ratio.
func Resize(img image.Image, width, height int) image.Image {
	bounds := img.Bounds()
	switch {
	case width > 0 && height > 0:
		return imaging.Resize(img, width, height, imaging.Lanczos)
	case width > 0:
		return imaging.Resize(img, width, derive(bounds.Dy(), width, bounds.Dx()), imaging.Lanczos)
	case height > 0:
		return imaging.Resize(img, derive(bounds.Dx(), height, bounds.Dy()), height, imaging.Lanczos)
	default:
		return img
	}
}

// derive computes the free axis from the source aspect ratio, never below
// one pixel.
func derive(side, target, other int) int {
	d := side * target / other
	if d < 1 {
		d = 1
	}
	return d
}
