package fastpixel

import (
	"errors"

	"github.com/gogpu/fastpixel/internal/backend"
)

// Common errors for pixel access.
var (
	// ErrOutOfBounds is returned when a coordinate or storage index does not
	// address a pixel of the image.
	ErrOutOfBounds = errors.New("fastpixel: coordinates out of bounds")

	// ErrShapeMismatch is returned by bulk setters when the grid is not
	// width x height.
	ErrShapeMismatch = errors.New("fastpixel: grid shape does not match image")

	// ErrReadOnly is returned when writing to an image that cannot be modified.
	ErrReadOnly = backend.ErrReadOnly

	// ErrInvalidDimensions is returned when width or height is non-positive
	// or the storage length of the raster does not fit in an int.
	ErrInvalidDimensions = errors.New("fastpixel: invalid dimensions")

	// ErrInvalidLayout is returned when the layout is unknown or does not
	// match the kind of storage provided.
	ErrInvalidLayout = errors.New("fastpixel: invalid layout")

	// ErrDataSize is returned when the storage length does not match the
	// dimensions and layout.
	ErrDataSize = errors.New("fastpixel: data length does not match dimensions")
)
