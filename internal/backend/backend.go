// Package backend implements primitive channel access over the supported
// pixel memory layouts.
//
// A Backend only knows how to read and write one channel of the pixel that
// starts at a storage index. Bounds checking, the opaque color overlay, bulk
// operations and derived color values are layered on top by the caller.
package backend

import (
	"errors"

	"github.com/gogpu/fastpixel/internal/layout"
)

// ErrReadOnly is returned when writing through to a source image that cannot be modified.
var ErrReadOnly = errors.New("fastpixel: source image is read-only")

// ErrLayoutMismatch is returned when a backend is constructed over storage of the wrong kind.
var ErrLayoutMismatch = errors.New("fastpixel: layout does not match storage")

// Kind identifies a backend implementation.
type Kind uint8

const (
	// KindBytes is the byte-interleaved backend.
	KindBytes Kind = iota + 1
	// KindWords is the word-packed backend.
	KindWords
	// KindFallback is the generic image.Image backend.
	KindFallback
)

// String returns a string representation of the backend kind.
func (k Kind) String() string {
	switch k {
	case KindBytes:
		return "bytes"
	case KindWords:
		return "words"
	case KindFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Backend is primitive channel access over one raster.
//
// Indices are storage indices: the position of the first storage unit of a
// pixel. Callers must pass in-range, pixel-aligned indices; backends do not
// check them.
type Backend interface {
	// Kind reports which implementation this is.
	Kind() Kind

	// HasAlpha reports whether the raster has an alpha channel.
	HasAlpha() bool

	// Stride is the number of storage units per pixel.
	Stride() int

	// Len is the total number of storage units.
	Len() int

	// Get returns channel c of the pixel at index i in [0,255].
	// Alpha is -1 when the raster has no alpha channel.
	Get(i int, c layout.Channel) int

	// Set stores the low 8 bits of v into channel c of the pixel at index i.
	// Setting alpha on a raster without alpha channel does nothing.
	Set(i int, c layout.Channel, v int)
}

// Cache is implemented by backends that read from a private ARGB copy of a
// source image and propagate writes back to it.
type Cache interface {
	Backend

	// Word returns the cached 0xAARRGGBB word at index i.
	Word(i int) uint32

	// Put stores w at index i and writes it through to the source image.
	Put(i int, w uint32) error

	// Store updates the cached word at index i only. Call Flush to
	// propagate stored words.
	Store(i int, w uint32)

	// Flush writes the whole cache back to the source image.
	Flush() error

	// Writable reports whether the source image accepts writes.
	Writable() bool
}
