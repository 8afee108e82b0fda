package backend

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/fastpixel/internal/layout"
)

// Fallback accesses any image.Image through a cached ARGB snapshot.
//
// The snapshot is taken once at construction. Reads never touch the source
// again; every write updates the snapshot and is written through to the
// source, so both agree after a write returns. The snapshot takes back what
// the source stored, which differs from the written color when the source
// quantizes it (gray, paletted or premultiplied images). Sources that do not
// implement draw.Image are read-only.
type Fallback struct {
	dst   draw.Image
	rect  image.Rectangle
	width int
	words []uint32
	alpha bool
}

// NewFallback snapshots src into a non-premultiplied ARGB word per pixel.
func NewFallback(src image.Image) *Fallback {
	rect := src.Bounds()
	width, height := rect.Dx(), rect.Dy()
	f := &Fallback{
		rect:  rect,
		width: width,
		words: make([]uint32, width*height),
		alpha: SourceHasAlpha(src),
	}
	if dst, ok := src.(draw.Image); ok {
		f.dst = dst
	}

	i := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			f.words[i] = argbWord(src.At(x, y))
			i++
		}
	}
	return f
}

// SourceHasAlpha reports whether img can carry per-pixel alpha, judged by
// its concrete type and color model rather than by its current content.
// Images that report it themselves through a HasAlpha method are trusted.
func SourceHasAlpha(img image.Image) bool {
	if a, ok := img.(interface{ HasAlpha() bool }); ok {
		return a.HasAlpha()
	}
	switch m := img.(type) {
	case *image.Gray, *image.Gray16, *image.CMYK, *image.YCbCr:
		return false
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true
			}
		}
		return false
	}
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model, color.CMYKModel, color.YCbCrModel:
		return false
	}
	return true
}

// Kind implements Backend.
func (f *Fallback) Kind() Kind { return KindFallback }

// HasAlpha implements Backend.
func (f *Fallback) HasAlpha() bool { return f.alpha }

// Stride implements Backend.
func (f *Fallback) Stride() int { return 1 }

// Len implements Backend.
func (f *Fallback) Len() int { return len(f.words) }

// Get implements Backend.
func (f *Fallback) Get(i int, c layout.Channel) int {
	if c == layout.Alpha && !f.alpha {
		return -1
	}
	return int((f.words[i] & layout.ARGBMask(c)) >> layout.ARGBShift(c))
}

// Set implements Backend. It has no way to report ErrReadOnly, so writes to
// a read-only source are dropped and the snapshot stays unchanged; callers
// that need the error use Put.
func (f *Fallback) Set(i int, c layout.Channel, v int) {
	if c == layout.Alpha && !f.alpha {
		return
	}
	_ = f.Put(i, layout.WithChannel(f.words[i], c, v))
}

// Word implements Cache.
func (f *Fallback) Word(i int) uint32 { return f.words[i] }

// Writable implements Cache.
func (f *Fallback) Writable() bool { return f.dst != nil }

// Put implements Cache.
func (f *Fallback) Put(i int, w uint32) error {
	if f.dst == nil {
		return ErrReadOnly
	}
	f.write(i, w)
	return nil
}

// Store implements Cache.
func (f *Fallback) Store(i int, w uint32) {
	f.words[i] = w
}

// Flush implements Cache. Each pixel is set as a non-premultiplied color,
// so fully transparent pixels keep their color channels on sources that
// store them.
func (f *Fallback) Flush() error {
	if f.dst == nil {
		return ErrReadOnly
	}
	for i, w := range f.words {
		f.write(i, w)
	}
	return nil
}

// write sets pixel i of the source to w and reloads the snapshot from it.
func (f *Fallback) write(i int, w uint32) {
	x, y := f.rect.Min.X+i%f.width, f.rect.Min.Y+i/f.width
	f.dst.Set(x, y, argbColor(w))
	f.words[i] = argbWord(f.dst.At(x, y))
}

func argbWord(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return layout.PackARGB(int(n.A), int(n.R), int(n.G), int(n.B))
}

func argbColor(w uint32) color.NRGBA {
	a, r, g, b := layout.UnpackARGB(w)
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}
