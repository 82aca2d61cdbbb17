// Package writer persists packed sheets and their frame metadata to disk.
package writer

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/menta2k/sprite-packer/internal/utils"
	"github.com/menta2k/sprite-packer/pkg/sprite"
)

// FramesFile is the name of the frame metadata file written next to the
// sheets.
const FramesFile = "frames.json"

// Config holds the settings for a Writer.
type Config struct {
	// OutputDir receives the sheet files. It is created if missing.
	OutputDir string

	// Format is the sheet file format: png, webp, jpg or jpeg.
	Format string

	// Quality is the JPEG/WebP output quality (1-100).
	Quality int

	// Lossless enables lossless WebP output.
	Lossless bool

	// WriteFrames also writes a frames.json table mapping every frame to its
	// sheet.
	WriteFrames bool
}

// Writer writes sheets as numbered image files in emission order.
type Writer struct {
	cfg Config
}

// New creates a Writer with the given configuration.
func New(cfg Config) *Writer {
	return &Writer{cfg: cfg}
}

// frameRecord is one row of the frames.json table.
type frameRecord struct {
	Sheet  int `json:"sheet"`
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// WriteSheets saves every sheet as <n>.<format> under the output directory,
// numbered from 1 in emission order, and returns the written paths. With
// WriteFrames set it also writes the frames.json table, in frame order.
func (w *Writer) WriteSheets(sheets []*sprite.Sheet) ([]string, error) {
	if err := utils.EnsureDir(w.cfg.OutputDir); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	format := strings.ToLower(w.cfg.Format)
	if format == "" {
		format = "png"
	}
	paths := make([]string, 0, len(sheets))
	records := []frameRecord{}

	for i, sheet := range sheets {
		path := filepath.Join(w.cfg.OutputDir, fmt.Sprintf("%d.%s", i+1, format))
		if err := w.saveImage(sheet.Image, path, format); err != nil {
			return nil, fmt.Errorf("failed to save sheet %d: %w", i+1, err)
		}
		paths = append(paths, path)

		for _, f := range sheet.Frames {
			records = append(records, frameRecord{
				Sheet:  i,
				X:      f.X,
				Y:      f.Y,
				Width:  f.Width,
				Height: f.Height,
			})
		}
	}

	if w.cfg.WriteFrames {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal frames: %w", err)
		}
		framesPath := filepath.Join(w.cfg.OutputDir, FramesFile)
		if err := os.WriteFile(framesPath, data, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write frames file: %w", err)
		}
		paths = append(paths, framesPath)
	}

	return paths, nil
}

func (w *Writer) saveImage(img image.Image, path, format string) error {
	switch format {
	case "webp":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		opts := &webp.Options{Lossless: w.cfg.Lossless, Quality: float32(w.cfg.Quality)}
		return webp.Encode(f, img, opts)
	case "jpg", "jpeg":
		return imaging.Save(img, path, imaging.JPEGQuality(w.cfg.Quality))
	default: // png
		return imaging.Save(img, path)
	}
}
