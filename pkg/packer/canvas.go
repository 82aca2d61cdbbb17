package packer

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/menta2k/sprite-packer/pkg/sprite"
	"github.com/menta2k/sprite-packer/pkg/trimmer"
)

// placement is a not-yet-trimmed frame: the rectangle an image occupies on
// the untrimmed canvas.
type placement struct {
	x, y, w, h int
}

// canvas accumulates one in-progress sheet. It is owned by a single Pack
// call and never shared.
type canvas struct {
	buf       *image.NRGBA
	pending   []placement
	cursorX   int
	cursorY   int
	rowHeight int
	maxW      int
	maxH      int
}

func newCanvas(maxW, maxH int) *canvas {
	return &canvas{
		buf:  image.NewNRGBA(image.Rect(0, 0, maxW, maxH)),
		maxW: maxW,
		maxH: maxH,
	}
}

// nextRow wraps the cursor below the tallest image of the current row.
func (c *canvas) nextRow() {
	c.cursorY += c.rowHeight
	c.cursorX = 0
	c.rowHeight = 0
}

// place copies img onto the canvas at the cursor and records its placement.
// Source pixels replace destination pixels outright, transparency included;
// shelf packing never overlaps rectangles, so nothing is overwritten.
func (c *canvas) place(img image.Image, w, h int) {
	src, ok := img.(*image.NRGBA)
	if !ok || src.Bounds().Min != (image.Point{}) {
		src = imaging.Clone(img)
	}
	for y := 0; y < h; y++ {
		dst := c.buf.Pix[(c.cursorY+y)*c.buf.Stride+c.cursorX*4:]
		copy(dst[:w*4], src.Pix[y*src.Stride:y*src.Stride+w*4])
	}

	c.pending = append(c.pending, placement{x: c.cursorX, y: c.cursorY, w: w, h: h})
	if h > c.rowHeight {
		c.rowHeight = h
	}
	c.cursorX += w
}

// flush trims the canvas, converts the pending placements into frames
// relative to the trimmed image and resets the canvas for the next sheet.
// The trim origin must be subtracted here: placements were recorded against
// the untrimmed canvas, and attaching them unshifted would desynchronize
// frame coordinates from pixel data whenever the opaque bounding box does
// not start at (0,0).
func (c *canvas) flush() *sprite.Sheet {
	trimmed, origin := trimmer.Trim(c.buf)

	frames := make([]sprite.Frame, len(c.pending))
	for i, p := range c.pending {
		frames[i] = sprite.Frame{
			X:      p.x - origin.X,
			Y:      p.y - origin.Y,
			Width:  p.w,
			Height: p.h,
		}
	}

	sheet := &sprite.Sheet{Image: trimmed, Frames: frames}
	c.reset()
	return sheet
}

// reset discards all canvas state, ready for a fresh sheet.
func (c *canvas) reset() {
	c.buf = image.NewNRGBA(image.Rect(0, 0, c.maxW, c.maxH))
	c.pending = c.pending[:0]
	c.cursorX = 0
	c.cursorY = 0
	c.rowHeight = 0
}
