package backend

import (
	"fmt"

	"github.com/gogpu/fastpixel/internal/layout"
)

// Bytes accesses pixels interleaved in a flat byte slice.
//
// The slice is borrowed: writes go straight to the caller's memory and no
// copy is ever made.
type Bytes struct {
	data []byte
	info layout.Info
}

// NewBytes returns a byte backend over data laid out as l.
// The length of data must be a multiple of the layout stride.
func NewBytes(data []byte, l layout.Layout) (*Bytes, error) {
	info := l.Info()
	if info.Storage != layout.StorageBytes {
		return nil, fmt.Errorf("%w: %v is not a byte layout", ErrLayoutMismatch, l)
	}
	if len(data)%info.Stride != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of stride %d", ErrLayoutMismatch, len(data), info.Stride)
	}
	return &Bytes{data: data, info: info}, nil
}

// Kind implements Backend.
func (b *Bytes) Kind() Kind { return KindBytes }

// HasAlpha implements Backend.
func (b *Bytes) HasAlpha() bool { return b.info.HasAlpha }

// Stride implements Backend.
func (b *Bytes) Stride() int { return b.info.Stride }

// Len implements Backend.
func (b *Bytes) Len() int { return len(b.data) }

// Get implements Backend.
func (b *Bytes) Get(i int, c layout.Channel) int {
	if c == layout.Alpha && !b.info.HasAlpha {
		return -1
	}
	return int(b.data[i+b.info.Offsets[c]])
}

// Set implements Backend. The slot is exactly one byte wide, so v is
// narrowed to its low 8 bits.
func (b *Bytes) Set(i int, c layout.Channel, v int) {
	if c == layout.Alpha && !b.info.HasAlpha {
		return
	}
	b.data[i+b.info.Offsets[c]] = byte(v)
}
