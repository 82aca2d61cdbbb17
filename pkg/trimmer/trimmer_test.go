package trimmer

import (
	"image"
	"image/color"
	"testing"
)

// createTestImage creates an image with an opaque red square on a
// transparent background.
func createTestImage(size int, x0, y0, x1, y1 int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 0, 0, 255})
		}
	}
	return img
}

func TestTrim(t *testing.T) {
	img := createTestImage(10, 2, 2, 8, 8)

	trimmed, origin := Trim(img)

	if trimmed.Bounds().Dx() != 6 || trimmed.Bounds().Dy() != 6 {
		t.Errorf("trimmed size = %dx%d, want 6x6", trimmed.Bounds().Dx(), trimmed.Bounds().Dy())
	}
	if origin != image.Pt(2, 2) {
		t.Errorf("origin = %v, want (2,2)", origin)
	}
}

func TestTrimFullyTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 5, 5))

	trimmed, origin := Trim(img)

	if trimmed.Bounds().Dx() != 1 || trimmed.Bounds().Dy() != 1 {
		t.Errorf("trimmed size = %dx%d, want 1x1", trimmed.Bounds().Dx(), trimmed.Bounds().Dy())
	}
	if origin != (image.Point{}) {
		t.Errorf("origin = %v, want (0,0)", origin)
	}
	if trimmed.NRGBAAt(0, 0).A != 0 {
		t.Error("fallback pixel should be transparent")
	}
}

func TestTrimIdempotent(t *testing.T) {
	img := createTestImage(10, 3, 1, 9, 6)

	once, origin := Trim(img)
	if origin != image.Pt(3, 1) {
		t.Errorf("first origin = %v, want (3,1)", origin)
	}

	twice, origin := Trim(once)
	if origin != (image.Point{}) {
		t.Errorf("second origin = %v, want (0,0)", origin)
	}
	if twice.Bounds() != once.Bounds() {
		t.Errorf("second trim changed bounds: %v -> %v", once.Bounds(), twice.Bounds())
	}
	for i := range once.Pix {
		if once.Pix[i] != twice.Pix[i] {
			t.Fatal("second trim changed pixel data")
		}
	}
}

// TestTrimMinimality checks that no edge row or column of a trimmed image is
// fully transparent.
func TestTrimMinimality(t *testing.T) {
	img := createTestImage(20, 4, 7, 15, 12)

	trimmed, _ := Trim(img)
	w := trimmed.Bounds().Dx()
	h := trimmed.Bounds().Dy()

	rowOpaque := func(y int) bool {
		for x := 0; x < w; x++ {
			if trimmed.NRGBAAt(x, y).A > 0 {
				return true
			}
		}
		return false
	}
	colOpaque := func(x int) bool {
		for y := 0; y < h; y++ {
			if trimmed.NRGBAAt(x, y).A > 0 {
				return true
			}
		}
		return false
	}

	if !rowOpaque(0) || !rowOpaque(h-1) {
		t.Error("trimmed image has a fully transparent edge row")
	}
	if !colOpaque(0) || !colOpaque(w-1) {
		t.Error("trimmed image has a fully transparent edge column")
	}
}

// Trim must normalize sub-images whose bounds do not start at the origin.
func TestTrimSubImage(t *testing.T) {
	img := createTestImage(10, 2, 2, 8, 8)
	sub := img.SubImage(image.Rect(1, 1, 9, 9))

	trimmed, origin := Trim(sub)

	if trimmed.Bounds().Dx() != 6 || trimmed.Bounds().Dy() != 6 {
		t.Errorf("trimmed size = %dx%d, want 6x6", trimmed.Bounds().Dx(), trimmed.Bounds().Dy())
	}
	if origin != image.Pt(1, 1) {
		t.Errorf("origin = %v, want (1,1)", origin)
	}
}
