package source

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writePNG writes a w x h opaque PNG file for test fixtures.
func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 0, 0, 255})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode %s: %v", path, err)
	}
}

// fixtureDir builds a directory with three images of distinct sizes (one in
// a subdirectory) plus a non-image file.
func fixtureDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 10, 10)
	writePNG(t, filepath.Join(dir, "b.png"), 20, 20)

	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writePNG(t, filepath.Join(sub, "c.png"), 30, 30)

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	return dir
}

func TestImagesOrdered(t *testing.T) {
	src := New(fixtureDir(t))

	images, err := src.Images()
	if err != nil {
		t.Fatalf("Images failed: %v", err)
	}
	if len(images) != 3 {
		t.Fatalf("got %d images, want 3", len(images))
	}

	// Sorted path order: a.png, b.png, sub/c.png
	wantWidths := []int{10, 20, 30}
	for i, img := range images {
		if img.Bounds().Dx() != wantWidths[i] {
			t.Errorf("image %d width = %d, want %d", i, img.Bounds().Dx(), wantWidths[i])
		}
	}
}

func TestImagesParallelPreservesOrder(t *testing.T) {
	src := NewWithConfig(Config{Dir: fixtureDir(t), Workers: 4})

	images, err := src.Images()
	if err != nil {
		t.Fatalf("Images failed: %v", err)
	}
	if len(images) != 3 {
		t.Fatalf("got %d images, want 3", len(images))
	}

	wantWidths := []int{10, 20, 30}
	for i, img := range images {
		if img == nil {
			t.Fatalf("image %d is nil", i)
		}
		if img.Bounds().Dx() != wantWidths[i] {
			t.Errorf("image %d width = %d, want %d", i, img.Bounds().Dx(), wantWidths[i])
		}
	}
}

func TestImagesEmptyDirectory(t *testing.T) {
	src := New(t.TempDir())

	_, err := src.Images()
	if err == nil {
		t.Fatal("expected an error for an empty directory")
	}
	if !strings.Contains(err.Error(), "no images") {
		t.Errorf("error = %v, want a no-images message", err)
	}
}

func TestImagesMissingDirectory(t *testing.T) {
	src := New(filepath.Join(t.TempDir(), "does-not-exist"))

	if _, err := src.Images(); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}

func TestImagesCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.png"), []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := New(dir).Images(); err == nil {
		t.Fatal("expected a decode error for a corrupt file")
	}
}
