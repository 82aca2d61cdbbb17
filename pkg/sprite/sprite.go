// Package sprite defines the output value types of a packing run: the packed
// sheet image and the frame rectangles locating each source image inside it.
package sprite

import "image"

// Frame is the axis-aligned rectangle a single source image occupies inside
// its sheet, in sheet-local pixel coordinates. Frames are immutable once
// recorded.
type Frame struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect returns the frame as an image.Rectangle.
func (f Frame) Rect() image.Rectangle {
	return image.Rect(f.X, f.Y, f.X+f.Width, f.Y+f.Height)
}

// Overlaps reports whether two frames share any pixels.
func (f Frame) Overlaps(other Frame) bool {
	return f.Rect().Overlaps(other.Rect())
}

// Sheet is one packed, trimmed output image together with the frames of the
// source images it holds. Frames appear in the same relative order as the
// sources that produced them.
type Sheet struct {
	Image  *image.NRGBA
	Frames []Frame
}

// Width returns the sheet image width in pixels.
func (s *Sheet) Width() int {
	return s.Image.Bounds().Dx()
}

// Height returns the sheet image height in pixels.
func (s *Sheet) Height() int {
	return s.Image.Bounds().Dy()
}

// Contains reports whether the frame rectangle lies entirely within the
// sheet image bounds.
func (s *Sheet) Contains(f Frame) bool {
	return f.X >= 0 && f.Y >= 0 && f.X+f.Width <= s.Width() && f.Y+f.Height <= s.Height()
}

// SubImage returns the pixel region covered by the frame. The returned image
// shares pixels with the sheet.
func (s *Sheet) SubImage(f Frame) *image.NRGBA {
	return s.Image.SubImage(f.Rect()).(*image.NRGBA)
}
