package fastpixel

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/fastpixel/internal/backend"
	"github.com/gogpu/fastpixel/internal/layout"
)

// Layout identifies how pixels are placed in a PixelBuffer's memory.
type Layout = layout.Layout

// Supported layouts.
const (
	// LayoutUnknown has no direct memory access; it is never valid for a PixelBuffer.
	LayoutUnknown = layout.Unknown
	// LayoutByteABGR is 4 bytes per pixel in A, B, G, R order.
	LayoutByteABGR = layout.ByteABGR
	// LayoutByteBGR is 3 bytes per pixel in B, G, R order.
	LayoutByteBGR = layout.ByteBGR
	// LayoutByteRGBA is 4 bytes per pixel in R, G, B, A order (image.NRGBA).
	LayoutByteRGBA = layout.ByteRGBA
	// LayoutWordARGB is one uint32 per pixel as 0xAARRGGBB.
	LayoutWordARGB = layout.WordARGB
	// LayoutWordRGB is one uint32 per pixel as 0x00RRGGBB.
	LayoutWordRGB = layout.WordRGB
	// LayoutWordBGR is one uint32 per pixel as 0x00BBGGRR.
	LayoutWordBGR = layout.WordBGR
)

// PixelBuffer is a raster stored in flat memory with a fixed layout.
//
// Storage is either a []byte (byte layouts) or a []uint32 (word layouts) of
// exactly width*height pixels without row padding. Buffers built with
// FromBytes or FromWords borrow the caller's slice; writes through the
// buffer or an accessor created from it are visible to the caller and vice
// versa.
//
// PixelBuffer implements image.Image and draw.Image with non-premultiplied
// colors. Thread safety: concurrent reads are safe; writes require external
// synchronization.
type PixelBuffer struct {
	bytes   []byte
	words   []uint32
	width   int
	height  int
	layout  Layout
	backend backend.Backend
}

// NewPixelBuffer allocates a zeroed buffer with the given dimensions and layout.
func NewPixelBuffer(width, height int, l Layout) (*PixelBuffer, error) {
	if err := validate(width, height, l); err != nil {
		return nil, err
	}
	switch l.Storage() {
	case layout.StorageBytes:
		return FromBytes(make([]byte, l.Units(width, height)), width, height, l)
	default:
		return FromWords(make([]uint32, l.Units(width, height)), width, height, l)
	}
}

// FromBytes creates a PixelBuffer over existing byte data without copying.
// The caller must ensure data remains valid for the lifetime of the buffer.
// len(data) must equal width*height*stride of the layout.
func FromBytes(data []byte, width, height int, l Layout) (*PixelBuffer, error) {
	if err := validate(width, height, l); err != nil {
		return nil, err
	}
	if l.Storage() != layout.StorageBytes {
		return nil, fmt.Errorf("%w: %v is not a byte layout", ErrInvalidLayout, l)
	}
	if want := l.Units(width, height); len(data) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrDataSize, len(data), want)
	}
	b, err := backend.NewBytes(data, l)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}
	return &PixelBuffer{bytes: data, width: width, height: height, layout: l, backend: b}, nil
}

// FromWords creates a PixelBuffer over existing word data without copying.
// The caller must ensure data remains valid for the lifetime of the buffer.
// len(data) must equal width*height.
func FromWords(data []uint32, width, height int, l Layout) (*PixelBuffer, error) {
	if err := validate(width, height, l); err != nil {
		return nil, err
	}
	if l.Storage() != layout.StorageWords {
		return nil, fmt.Errorf("%w: %v is not a word layout", ErrInvalidLayout, l)
	}
	if want := l.Units(width, height); len(data) != want {
		return nil, fmt.Errorf("%w: got %d words, want %d", ErrDataSize, len(data), want)
	}
	w, err := backend.NewWords(data, l)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}
	return &PixelBuffer{words: data, width: width, height: height, layout: l, backend: w}, nil
}

func validate(width, height int, l Layout) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if !l.IsDirect() {
		return fmt.Errorf("%w: %v", ErrInvalidLayout, l)
	}
	if width > math.MaxInt/height/l.Stride() {
		return fmt.Errorf("%w: %dx%d overflows storage length", ErrInvalidDimensions, width, height)
	}
	return nil
}

// Width returns the image width in pixels.
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *PixelBuffer) Height() int {
	return b.height
}

// Layout returns the pixel layout.
func (b *PixelBuffer) Layout() Layout {
	return b.layout
}

// HasAlpha returns true if the layout has an alpha channel.
func (b *PixelBuffer) HasAlpha() bool {
	return b.layout.HasAlpha()
}

// Bytes returns the raw byte storage, or nil for word layouts.
func (b *PixelBuffer) Bytes() []byte {
	return b.bytes
}

// Words returns the raw word storage, or nil for byte layouts.
func (b *PixelBuffer) Words() []uint32 {
	return b.words
}

// PixelOffset returns the storage index of pixel (x, y).
// Returns -1 if coordinates are out of bounds.
func (b *PixelBuffer) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return (y*b.width + x) * b.layout.Stride()
}

// Bounds implements image.Image.
func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements image.Image.
func (b *PixelBuffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// At implements image.Image.
func (b *PixelBuffer) At(x, y int) color.Color {
	return b.NRGBAAt(x, y)
}

// NRGBAAt returns the color of pixel (x, y). Layouts without alpha report
// an opaque color. Returns the zero color if coordinates are out of bounds.
func (b *PixelBuffer) NRGBAAt(x, y int) color.NRGBA {
	i := b.PixelOffset(x, y)
	if i < 0 {
		return color.NRGBA{}
	}
	a := uint8(255)
	if b.layout.HasAlpha() {
		a = uint8(b.backend.Get(i, layout.Alpha))
	}
	return color.NRGBA{
		R: uint8(b.backend.Get(i, layout.Red)),
		G: uint8(b.backend.Get(i, layout.Green)),
		B: uint8(b.backend.Get(i, layout.Blue)),
		A: a,
	}
}

// Set implements draw.Image. Out of bounds coordinates are ignored.
func (b *PixelBuffer) Set(x, y int, c color.Color) {
	b.SetNRGBA(x, y, color.NRGBAModel.Convert(c).(color.NRGBA))
}

// SetNRGBA sets pixel (x, y). Alpha is dropped for layouts without alpha.
// Out of bounds coordinates are ignored.
func (b *PixelBuffer) SetNRGBA(x, y int, c color.NRGBA) {
	i := b.PixelOffset(x, y)
	if i < 0 {
		return
	}
	b.backend.Set(i, layout.Red, int(c.R))
	b.backend.Set(i, layout.Green, int(c.G))
	b.backend.Set(i, layout.Blue, int(c.B))
	b.backend.Set(i, layout.Alpha, int(c.A))
}
