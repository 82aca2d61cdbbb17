// Package packer lays a sequence of images onto fixed-size canvases using
// shelf packing: images are placed left-to-right until a row is full, the
// cursor then wraps below the tallest image of the row, and a full canvas is
// trimmed to its opaque bounding box and emitted as a sheet. The packer
// records, for every placed image, the frame rectangle it occupies in its
// sheet.
package packer

import (
	"image"

	"github.com/menta2k/sprite-packer/pkg/resizer"
	"github.com/menta2k/sprite-packer/pkg/sprite"
)

// OversizePolicy selects what happens when a source image exceeds the canvas
// bounds and no resize target is set to shrink it.
type OversizePolicy int

const (
	// OversizeAbort fails the whole run on the first oversized image.
	OversizeAbort OversizePolicy = iota
	// OversizeSkip drops oversized images, recording them in Result.Skipped,
	// and keeps packing.
	OversizeSkip
)

// Config holds the settings for one packing run. It is read-only once the
// Packer is constructed.
type Config struct {
	// MaxWidth and MaxHeight bound every canvas before trimming.
	MaxWidth  int
	MaxHeight int

	// TargetWidth and TargetHeight are forwarded to the resizer. Zero means
	// no target on that axis; see resizer.Resize for how a missing axis is
	// derived.
	TargetWidth  int
	TargetHeight int

	// Oversize selects the policy for images that can never fit a canvas.
	Oversize OversizePolicy
}

// Skip records an image dropped under OversizeSkip.
type Skip struct {
	Index  int `json:"index"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Result is the output of one packing run.
type Result struct {
	// Sheets holds the finished sheets in emission order. Frames across all
	// sheets preserve the input image order.
	Sheets []*sprite.Sheet

	// Skipped lists the images dropped under OversizeSkip, in input order.
	Skipped []Skip
}

// Packer packs images into sheets. Each Pack call owns its own canvas state,
// so a single Packer may be reused across runs.
type Packer struct {
	cfg Config
}

// New creates a Packer with the given configuration.
func New(cfg Config) *Packer {
	return &Packer{cfg: cfg}
}

// Pack lays out images in input order and returns the resulting sheets.
//
// Every image is first resized per the configured targets and validated
// against the canvas bounds. Images that can never fit are handled per the
// oversize policy; with a resize target set the max-dimension check is the
// caller's responsibility and an oversized result surfaces as a
// PlacementError instead. A fatal error returns no sheets.
func (p *Packer) Pack(images []image.Image) (*Result, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}

	res := &Result{}
	c := newCanvas(p.cfg.MaxWidth, p.cfg.MaxHeight)

	for i, img := range images {
		img = resizer.Resize(img, p.cfg.TargetWidth, p.cfg.TargetHeight)
		w := img.Bounds().Dx()
		h := img.Bounds().Dy()

		if p.cfg.TargetWidth == 0 && p.cfg.TargetHeight == 0 &&
			(w > p.cfg.MaxWidth || h > p.cfg.MaxHeight) {
			if p.cfg.Oversize == OversizeSkip {
				res.Skipped = append(res.Skipped, Skip{Index: i, Width: w, Height: h})
				continue
			}
			return nil, &ImageTooLargeError{
				Index:     i,
				Width:     w,
				Height:    h,
				MaxWidth:  p.cfg.MaxWidth,
				MaxHeight: p.cfg.MaxHeight,
			}
		}

		if c.cursorX+w > p.cfg.MaxWidth {
			c.nextRow()
		}
		if c.cursorY+h > p.cfg.MaxHeight {
			if len(c.pending) > 0 {
				res.Sheets = append(res.Sheets, c.flush())
			} else {
				c.reset()
			}
		}
		if c.cursorX+w > p.cfg.MaxWidth || c.cursorY+h > p.cfg.MaxHeight {
			return nil, &PlacementError{Index: i}
		}

		c.place(img, w, h)
	}

	if len(c.pending) > 0 {
		res.Sheets = append(res.Sheets, c.flush())
	}

	return res, nil
}
