package resizer

import (
	"image"
	"testing"
)

func TestResizeBothAxes(t *testing.T) {
	resized := Resize(image.NewNRGBA(image.Rect(0, 0, 100, 100)), 50, 25)

	if resized.Bounds().Dx() != 50 || resized.Bounds().Dy() != 25 {
		t.Errorf("resized to %dx%d, want 50x25",
			resized.Bounds().Dx(), resized.Bounds().Dy())
	}
}

func TestResizeWidthOnly(t *testing.T) {
	resized := Resize(image.NewNRGBA(image.Rect(0, 0, 20, 20)), 10, 0)

	if resized.Bounds().Dx() != 10 {
		t.Errorf("width = %d, want 10", resized.Bounds().Dx())
	}
	if resized.Bounds().Dy() != 20*10/20 {
		t.Errorf("height = %d, want %d", resized.Bounds().Dy(), 20*10/20)
	}
}

func TestResizeHeightOnly(t *testing.T) {
	resized := Resize(image.NewNRGBA(image.Rect(0, 0, 30, 30)), 0, 10)

	if resized.Bounds().Dx() != 30*10/30 {
		t.Errorf("width = %d, want %d", resized.Bounds().Dx(), 30*10/30)
	}
	if resized.Bounds().Dy() != 10 {
		t.Errorf("height = %d, want 10", resized.Bounds().Dy())
	}
}

// The derived axis uses floor division.
func TestResizeDerivedAxisFloors(t *testing.T) {
	resized := Resize(image.NewNRGBA(image.Rect(0, 0, 20, 30)), 7, 0)

	if resized.Bounds().Dy() != 30*7/20 {
		t.Errorf("height = %d, want %d", resized.Bounds().Dy(), 30*7/20)
	}
}

func TestResizeDerivedAxisNeverZero(t *testing.T) {
	resized := Resize(image.NewNRGBA(image.Rect(0, 0, 100, 2)), 10, 0)

	if resized.Bounds().Dy() != 1 {
		t.Errorf("height = %d, want 1", resized.Bounds().Dy())
	}
}

func TestResizeNoTargets(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))

	resized := Resize(img, 0, 0)

	if resized != image.Image(img) {
		t.Error("Resize without targets should return the input untouched")
	}
}
