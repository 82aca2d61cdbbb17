// Package spritepacker generates sprite sheets from directories of images.
//
// The package packs independently-sized transparent-background images into
// one or more fixed-size sheets, trims the wasted transparent margin from
// every finished sheet and records, for each packed image, the frame
// rectangle it occupies in its sheet.
//
// Basic usage:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		spritepacker "github.com/menta2k/sprite-packer"
//	)
//
//	func main() {
//		// Pack every image under ./icons into sheets of at most 2048x2048
//		sp := spritepacker.New("./icons", 2048, 2048)
//
//		result, paths, err := sp.GenerateAndWrite()
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		for i, sheet := range result.Sheets {
//			fmt.Printf("sheet %d: %dx%d with %d frames\n",
//				i, sheet.Width(), sheet.Height(), len(sheet.Frames))
//		}
//		fmt.Printf("wrote %d files\n", len(paths))
//	}
//
// The package consists of five main components:
//
// 1. Sprite (pkg/sprite): Frame and Sheet value types
// 2. Packer (pkg/packer): The shelf-packing core and its error types
// 3. Trimmer (pkg/trimmer): Transparent bounding-box cropping
// 4. Source (pkg/source): Ordered directory scanning and decoding
// 5. Writer (pkg/writer): Sheet and frame-metadata persistence
//
// Images are always processed in sorted path order, so the same directory
// produces the same sheets on every run. Frames across all sheets preserve
// that order, and every frame's coordinates are valid against its sheet's
// trimmed image.
package spritepacker

import (
	"image"

	"github.com/menta2k/sprite-packer/pkg/packer"
	"github.com/menta2k/sprite-packer/pkg/source"
	"github.com/menta2k/sprite-packer/pkg/writer"
)

// Version of the sprite packer library
const Version = "1.0.0"

// SpritePacker provides a high-level interface for generating sprite sheets
type SpritePacker struct {
	source *source.DirectorySource
	packer *packer.Packer
	writer *writer.Writer
}

// New creates a SpritePacker that reads images from dir and packs them into
// sheets bounded by maxWidth x maxHeight, with default output settings.
func New(dir string, maxWidth, maxHeight int) *SpritePacker {
	return NewWithConfig(
		source.Config{Dir: dir},
		packer.Config{MaxWidth: maxWidth, MaxHeight: maxHeight},
		writer.Config{OutputDir: "./sheets", Format: "png", Quality: 90},
	)
}

// NewWithConfig creates a SpritePacker with explicit per-component settings.
func NewWithConfig(sourceCfg source.Config, packerCfg packer.Config, writerCfg writer.Config) *SpritePacker {
	return &SpritePacker{
		source: source.NewWithConfig(sourceCfg),
		packer: packer.New(packerCfg),
		writer: writer.New(writerCfg),
	}
}

// Generate discovers, resizes and packs the source images into sheets.
func (sp *SpritePacker) Generate() (*packer.Result, error) {
	images, err := sp.source.Images()
	if err != nil {
		return nil, err
	}
	return sp.packer.Pack(images)
}

// GenerateAndWrite runs Generate and writes the resulting sheets to the
// output directory, returning the result and the written file paths.
func (sp *SpritePacker) GenerateAndWrite() (*packer.Result, []string, error) {
	result, err := sp.Generate()
	if err != nil {
		return nil, nil, err
	}
	paths, err := sp.writer.WriteSheets(result.Sheets)
	if err != nil {
		return nil, nil, err
	}
	return result, paths, nil
}

// Pack packs already-decoded images without touching the filesystem.
func (sp *SpritePacker) Pack(images []image.Image) (*packer.Result, error) {
	return sp.packer.Pack(images)
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
