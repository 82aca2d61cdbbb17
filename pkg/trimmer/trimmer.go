// Package trimmer crops image buffers to the bounding box of their
// non-transparent pixels.
package trimmer

import (
	"image"

	"github.com/disintegration/imaging"
)

// Trim returns a copy of img cropped to the tight bounding box of all pixels
// with alpha > 0, together with the crop origin inside img. A fully
// transparent image yields a 1x1 transparent buffer at origin (0,0).
//
// Trimming an already trimmed buffer returns an identical copy with a zero
// origin.
func Trim(img image.Image) (*image.NRGBA, image.Point) {
	src, ok := img.(*image.NRGBA)
	if !ok || src.Bounds().Min != (image.Point{}) {
		src = imaging.Clone(img)
	}

	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	minX, minY := w, h
	maxX, maxY := -1, -1

	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for x := 0; x < w; x++ {
			if row[x*4+3] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < 0 {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1)), image.Point{}
	}

	cropped := imaging.Crop(src, image.Rect(minX, minY, maxX+1, maxY+1))
	return cropped, image.Pt(minX, minY)
}
