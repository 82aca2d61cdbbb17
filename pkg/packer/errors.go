package packer

import (
	"errors"
	"fmt"
)

// ErrNoImages is returned when a pack run receives no images at all.
var ErrNoImages = errors.New("no images available to pack")

// ImageTooLargeError reports a source image that cannot fit within the
// configured canvas bounds and had no resize target to shrink it.
type ImageTooLargeError struct {
	Index     int
	Width     int
	Height    int
	MaxWidth  int
	MaxHeight int
}

func (e *ImageTooLargeError) Error() string {
	return fmt.Sprintf("image %d dimensions %dx%d exceed max dimensions %dx%d",
		e.Index, e.Width, e.Height, e.MaxWidth, e.MaxHeight)
}

// PlacementError reports an image that passed validation but still does not
// fit an empty canvas. It only occurs when a resize target exceeds the
// canvas bounds.
type PlacementError struct {
	Index int
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("image %d cannot be placed on an empty canvas", e.Index)
}
