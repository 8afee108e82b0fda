package backend

import (
	"fmt"

	"github.com/gogpu/fastpixel/internal/layout"
)

// Words accesses pixels packed one per uint32 using per-channel masks.
//
// The slice is borrowed: writes go straight to the caller's memory.
type Words struct {
	data   []uint32
	masks  [4]uint32
	shifts [4]uint
	alpha  bool
}

// NewWords returns a word backend over data laid out as l.
func NewWords(data []uint32, l layout.Layout) (*Words, error) {
	info := l.Info()
	if info.Storage != layout.StorageWords {
		return nil, fmt.Errorf("%w: %v is not a word layout", ErrLayoutMismatch, l)
	}
	return &Words{
		data:   data,
		masks:  info.Masks,
		shifts: info.Shifts,
		alpha:  info.HasAlpha,
	}, nil
}

// Kind implements Backend.
func (w *Words) Kind() Kind { return KindWords }

// HasAlpha implements Backend.
func (w *Words) HasAlpha() bool { return w.alpha }

// Stride implements Backend.
func (w *Words) Stride() int { return 1 }

// Len implements Backend.
func (w *Words) Len() int { return len(w.data) }

// Get implements Backend.
func (w *Words) Get(i int, c layout.Channel) int {
	if c == layout.Alpha && !w.alpha {
		return -1
	}
	return int((w.data[i] & w.masks[c]) >> w.shifts[c])
}

// Set implements Backend.
//
// The channel field is cleared before the new value is OR-ed in. The shifted
// value is masked as well, so v is narrowed to the channel width instead of
// spilling into the neighbouring channel.
func (w *Words) Set(i int, c layout.Channel, v int) {
	if c == layout.Alpha && !w.alpha {
		return
	}
	mask := w.masks[c]
	w.data[i] = w.data[i]&^mask | (uint32(v)<<w.shifts[c])&mask
}
