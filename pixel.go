package fastpixel

import (
	"fmt"
	"image/color"

	"github.com/gogpu/fastpixel/internal/backend"
	"github.com/gogpu/fastpixel/internal/layout"
)

// Kind identifies the backend serving an accessor.
type Kind = backend.Kind

// Backend kinds.
const (
	// KindBytes addresses byte-interleaved memory directly.
	KindBytes = backend.KindBytes
	// KindWords addresses word-packed memory directly.
	KindWords = backend.KindWords
	// KindFallback works on a snapshot of any image.Image and writes changes through to it.
	KindFallback = backend.KindFallback
)

// Pixel implements Accessor on top of a primitive backend.
//
// All bounds checks, the opaque color overlay, derived values and bulk
// operations live here, so every backend behaves identically apart from
// speed. A Pixel is not safe for concurrent use, and the byte and word
// backends read the caller's memory directly: any concurrent modification
// of that memory must be synchronized by the caller.
type Pixel struct {
	backend backend.Backend
	cache   backend.Cache // non-nil when the backend writes through to a source image
	width   int
	height  int
	stride  int
	units   int
	alpha   bool

	threshold  int
	substitute [4]int
	subWord    uint32
}

func newPixel(b backend.Backend, width, height int, o options) *Pixel {
	p := &Pixel{
		backend: b,
		width:   width,
		height:  height,
		stride:  b.Stride(),
		units:   b.Len(),
		alpha:   b.HasAlpha(),
	}
	if c, ok := b.(backend.Cache); ok {
		p.cache = c
	}
	p.SetReplaceOpaqueColors(o.threshold, o.substitute)
	return p
}

// Width returns the image width in pixels.
func (p *Pixel) Width() int { return p.width }

// Height returns the image height in pixels.
func (p *Pixel) Height() int { return p.height }

// HasAlpha reports whether the image has an alpha channel.
func (p *Pixel) HasAlpha() bool { return p.alpha }

// Kind reports which backend serves this accessor.
func (p *Pixel) Kind() Kind { return p.backend.Kind() }

// ReplaceOpaqueColors reports whether the opaque color overlay is active.
func (p *Pixel) ReplaceOpaqueColors() bool { return p.threshold >= 0 }

// SetReplaceOpaqueColors configures the opaque color overlay.
//
// While active, reads of a pixel whose stored alpha is <= threshold return
// the channels of c instead of the stored ones. The overlay only affects
// reads, is evaluated on every read and has no effect on images without an
// alpha channel. A negative threshold disables it.
//
// On the fallback backend a channel write to a replaced pixel starts from
// the substitute color, so the other channels of c, alpha included, are
// written to the source along with the new value.
func (p *Pixel) SetReplaceOpaqueColors(threshold int, c color.NRGBA) {
	p.threshold = threshold
	p.substitute = [4]int{
		layout.Red:   int(c.R),
		layout.Green: int(c.G),
		layout.Blue:  int(c.B),
		layout.Alpha: int(c.A),
	}
	p.subWord = layout.PackARGB(int(c.A), int(c.R), int(c.G), int(c.B))
}

// Offset returns the storage index of pixel (x, y).
func (p *Pixel) Offset(x, y int) (int, error) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, x, y, p.width, p.height)
	}
	return (y*p.width + x) * p.stride, nil
}

// checkIndex verifies that i is the first storage unit of a pixel.
func (p *Pixel) checkIndex(i int) error {
	if i < 0 || i >= p.units || i%p.stride != 0 {
		return fmt.Errorf("%w: index %d (stride %d, length %d)", ErrOutOfBounds, i, p.stride, p.units)
	}
	return nil
}

// replaced reports whether the overlay hides the pixel at index i.
func (p *Pixel) replaced(i int) bool {
	return p.alpha && p.threshold >= 0 && p.backend.Get(i, layout.Alpha) <= p.threshold
}

// channel reads channel c at index i through the overlay.
func (p *Pixel) channel(i int, c layout.Channel) int {
	if p.replaced(i) {
		return p.substitute[c]
	}
	return p.backend.Get(i, c)
}

// rgb composes the overlay-aware 0xAARRGGBB word at index i.
func (p *Pixel) rgb(i int) uint32 {
	if p.replaced(i) {
		return p.subWord
	}
	if p.cache != nil {
		w := p.cache.Word(i)
		if !p.alpha {
			w |= layout.OpaqueAlpha
		}
		return w
	}
	a := 255
	if p.alpha {
		a = p.backend.Get(i, layout.Alpha)
	}
	return layout.PackARGB(a, p.backend.Get(i, layout.Red), p.backend.Get(i, layout.Green), p.backend.Get(i, layout.Blue))
}

// components reads red, green and blue at index i through the overlay.
func (p *Pixel) components(i int) (r, g, b int) {
	if p.replaced(i) {
		return p.substitute[layout.Red], p.substitute[layout.Green], p.substitute[layout.Blue]
	}
	return p.backend.Get(i, layout.Red), p.backend.Get(i, layout.Green), p.backend.Get(i, layout.Blue)
}

// set writes v into channel c at index i.
//
// Caching backends get a whole new word built from the current,
// overlay-aware pixel and write it through to their source.
func (p *Pixel) set(i int, c layout.Channel, v int) error {
	if c == layout.Alpha && !p.alpha {
		return nil
	}
	if p.cache != nil {
		return p.cache.Put(i, layout.WithChannel(p.rgb(i), c, v))
	}
	p.backend.Set(i, c, v)
	return nil
}

// setGray writes v into red, green and blue at index i.
func (p *Pixel) setGray(i, v int) error {
	if p.cache != nil {
		return p.cache.Put(i, grayWord(p.rgb(i), v))
	}
	p.backend.Set(i, layout.Red, v)
	p.backend.Set(i, layout.Green, v)
	p.backend.Set(i, layout.Blue, v)
	return nil
}

func grayWord(w uint32, v int) uint32 {
	w = layout.WithChannel(w, layout.Red, v)
	w = layout.WithChannel(w, layout.Green, v)
	return layout.WithChannel(w, layout.Blue, v)
}

// RGB returns pixel (x, y) as 0xAARRGGBB.
func (p *Pixel) RGB(x, y int) (uint32, error) {
	i, err := p.Offset(x, y)
	if err != nil {
		return 0, err
	}
	return p.rgb(i), nil
}

// RGBAt returns the pixel at index as 0xAARRGGBB.
func (p *Pixel) RGBAt(index int) (uint32, error) {
	if err := p.checkIndex(index); err != nil {
		return 0, err
	}
	return p.rgb(index), nil
}

func (p *Pixel) get(x, y int, c layout.Channel) (int, error) {
	i, err := p.Offset(x, y)
	if err != nil {
		return 0, err
	}
	return p.channel(i, c), nil
}

func (p *Pixel) getAt(index int, c layout.Channel) (int, error) {
	if err := p.checkIndex(index); err != nil {
		return 0, err
	}
	return p.channel(index, c), nil
}

func (p *Pixel) put(x, y int, c layout.Channel, v int) error {
	i, err := p.Offset(x, y)
	if err != nil {
		return err
	}
	return p.set(i, c, v)
}

func (p *Pixel) putAt(index int, c layout.Channel, v int) error {
	if err := p.checkIndex(index); err != nil {
		return err
	}
	return p.set(index, c, v)
}

// Red returns the red channel of pixel (x, y).
func (p *Pixel) Red(x, y int) (int, error) { return p.get(x, y, layout.Red) }

// RedAt returns the red channel of the pixel at index.
func (p *Pixel) RedAt(index int) (int, error) { return p.getAt(index, layout.Red) }

// Green returns the green channel of pixel (x, y).
func (p *Pixel) Green(x, y int) (int, error) { return p.get(x, y, layout.Green) }

// GreenAt returns the green channel of the pixel at index.
func (p *Pixel) GreenAt(index int) (int, error) { return p.getAt(index, layout.Green) }

// Blue returns the blue channel of pixel (x, y).
func (p *Pixel) Blue(x, y int) (int, error) { return p.get(x, y, layout.Blue) }

// BlueAt returns the blue channel of the pixel at index.
func (p *Pixel) BlueAt(index int) (int, error) { return p.getAt(index, layout.Blue) }

// Alpha returns the alpha channel of pixel (x, y), or -1 without alpha channel.
func (p *Pixel) Alpha(x, y int) (int, error) { return p.get(x, y, layout.Alpha) }

// AlphaAt returns the alpha channel of the pixel at index, or -1 without alpha channel.
func (p *Pixel) AlphaAt(index int) (int, error) { return p.getAt(index, layout.Alpha) }

// SetRed sets the red channel of pixel (x, y).
func (p *Pixel) SetRed(x, y, v int) error { return p.put(x, y, layout.Red, v) }

// SetRedAt sets the red channel of the pixel at index.
func (p *Pixel) SetRedAt(index, v int) error { return p.putAt(index, layout.Red, v) }

// SetGreen sets the green channel of pixel (x, y).
func (p *Pixel) SetGreen(x, y, v int) error { return p.put(x, y, layout.Green, v) }

// SetGreenAt sets the green channel of the pixel at index.
func (p *Pixel) SetGreenAt(index, v int) error { return p.putAt(index, layout.Green, v) }

// SetBlue sets the blue channel of pixel (x, y).
func (p *Pixel) SetBlue(x, y, v int) error { return p.put(x, y, layout.Blue, v) }

// SetBlueAt sets the blue channel of the pixel at index.
func (p *Pixel) SetBlueAt(index, v int) error { return p.putAt(index, layout.Blue, v) }

// SetAlpha sets the alpha channel of pixel (x, y). It does nothing on images
// without alpha channel.
func (p *Pixel) SetAlpha(x, y, v int) error { return p.put(x, y, layout.Alpha, v) }

// SetAlphaAt sets the alpha channel of the pixel at index.
func (p *Pixel) SetAlphaAt(index, v int) error { return p.putAt(index, layout.Alpha, v) }

// derive resolves (x, y) and applies fn to the overlay-aware components.
func derive[T any](p *Pixel, x, y int, fn func(r, g, b int) T) (T, error) {
	i, err := p.Offset(x, y)
	if err != nil {
		var zero T
		return zero, err
	}
	return fn(p.components(i)), nil
}

// deriveAt checks index and applies fn to the overlay-aware components.
func deriveAt[T any](p *Pixel, index int, fn func(r, g, b int) T) (T, error) {
	if err := p.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return fn(p.components(index)), nil
}

// AverageGrayscale returns (r+g+b)/3 of pixel (x, y).
func (p *Pixel) AverageGrayscale(x, y int) (int, error) {
	return derive(p, x, y, averageGrayscale)
}

// AverageGrayscaleAt returns (r+g+b)/3 of the pixel at index.
func (p *Pixel) AverageGrayscaleAt(index int) (int, error) {
	return deriveAt(p, index, averageGrayscale)
}

// SetAverageGrayscale sets red, green and blue of pixel (x, y) to v.
func (p *Pixel) SetAverageGrayscale(x, y, v int) error {
	i, err := p.Offset(x, y)
	if err != nil {
		return err
	}
	return p.setGray(i, v)
}

// SetAverageGrayscaleAt sets red, green and blue of the pixel at index to v.
func (p *Pixel) SetAverageGrayscaleAt(index, v int) error {
	if err := p.checkIndex(index); err != nil {
		return err
	}
	return p.setGray(index, v)
}

// Luma returns the luma of pixel (x, y).
func (p *Pixel) Luma(x, y int) (int, error) { return derive(p, x, y, luma) }

// LumaAt returns the luma of the pixel at index.
func (p *Pixel) LumaAt(index int) (int, error) { return deriveAt(p, index, luma) }

func cb(r, g, b int) int { return chroma(r, g, b, CbRed, CbGreen, CbBlue) }

func cr(r, g, b int) int { return chroma(r, g, b, CrRed, CrGreen, CrBlue) }

// Cb returns the blue-difference chroma of pixel (x, y).
func (p *Pixel) Cb(x, y int) (int, error) { return derive(p, x, y, cb) }

// CbAt returns the blue-difference chroma of the pixel at index.
func (p *Pixel) CbAt(index int) (int, error) { return deriveAt(p, index, cb) }

// Cr returns the red-difference chroma of pixel (x, y).
func (p *Pixel) Cr(x, y int) (int, error) { return derive(p, x, y, cr) }

// CrAt returns the red-difference chroma of the pixel at index.
func (p *Pixel) CrAt(index int) (int, error) { return deriveAt(p, index, cr) }

// Hue returns the HSV hue of pixel (x, y) in degrees.
func (p *Pixel) Hue(x, y int) (int, error) { return derive(p, x, y, hue) }

// HueAt returns the HSV hue of the pixel at index in degrees.
func (p *Pixel) HueAt(index int) (int, error) { return deriveAt(p, index, hue) }

// Saturation returns the HSV saturation of pixel (x, y).
func (p *Pixel) Saturation(x, y int) (float64, error) { return derive(p, x, y, saturation) }

// SaturationAt returns the HSV saturation of the pixel at index.
func (p *Pixel) SaturationAt(index int) (float64, error) { return deriveAt(p, index, saturation) }

// Value returns the HSV value of pixel (x, y).
func (p *Pixel) Value(x, y int) (int, error) { return derive(p, x, y, value) }

// ValueAt returns the HSV value of the pixel at index.
func (p *Pixel) ValueAt(index int) (int, error) { return deriveAt(p, index, value) }
