// Package source discovers and decodes the input images for a packing run.
package source

import (
	"fmt"
	"image"
	"os"
	"strings"
	"sync"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/menta2k/sprite-packer/internal/utils"
)

// Config holds the settings for a DirectorySource.
type Config struct {
	// Dir is the directory scanned recursively for image files.
	Dir string

	// Workers bounds the number of concurrent decodes. Zero or one decodes
	// sequentially.
	Workers int
}

// DirectorySource yields decoded images from a directory in a stable order.
//
// Files are matched against a fixed extension allowlist and sorted by path
// before decoding, so the resulting sequence is identical across runs even
// when decoding runs in parallel. The packer's layout depends on input
// order, so reordering by decode completion time must never leak through.
type DirectorySource struct {
	cfg Config
}

// New creates a DirectorySource reading from dir.
func New(dir string) *DirectorySource {
	return NewWithConfig(Config{Dir: dir})
}

// NewWithConfig creates a DirectorySource with explicit settings.
func NewWithConfig(cfg Config) *DirectorySource {
	return &DirectorySource{cfg: cfg}
}

// Images decodes every recognized image under the source directory and
// returns them ordered by file path.
func (s *DirectorySource) Images() ([]image.Image, error) {
	paths, err := utils.ListImageFiles(s.cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", s.cfg.Dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no images with supported extensions %v were found in %s",
			utils.ImageExtensions(), s.cfg.Dir)
	}

	images := make([]image.Image, len(paths))
	if s.cfg.Workers > 1 {
		err = s.decodeParallel(paths, images)
	} else {
		err = s.decodeSequential(paths, images)
	}
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (s *DirectorySource) decodeSequential(paths []string, out []image.Image) error {
	for i, path := range paths {
		img, err := Load(path)
		if err != nil {
			return fmt.Errorf("failed to decode %s: %w", path, err)
		}
		out[i] = img
	}
	return nil
}

// decodeParallel decodes with a bounded worker pool. Each result lands in
// the slot matching its path index, preserving the sorted order.
func (s *DirectorySource) decodeParallel(paths []string, out []image.Image) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	jobs := make(chan int)
	for w := 0; w < s.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				img, err := Load(paths[i])
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = fmt.Errorf("failed to decode %s: %w", paths[i], err)
					}
					mu.Unlock()
					continue
				}
				out[i] = img
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return firstErr
}

// Load decodes a single image file, with an explicit WebP fallback for files
// the registered decoders reject.
func Load(path string) (image.Image, error) {
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.HasSuffix(strings.ToLower(path), ".webp") {
		if img, err := webp.Decode(f); err == nil {
			return img, nil
		}
		if _, err := f.Seek(0, 0); err != nil {
			return nil, err
		}
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("unknown image format for %s", path)
	}
	return img, nil
}
