package fastpixel

import (
	"fmt"
	"image"

	"github.com/gogpu/fastpixel/internal/backend"
	"github.com/gogpu/fastpixel/internal/layout"
)

// New returns an accessor for img using the fastest backend that can
// address its memory.
//
// A *PixelBuffer is served by its own byte or word backend. An *image.NRGBA
// without row padding is served by the byte backend over its Pix slice.
// Every other image is served by the fallback backend, which snapshots the
// image once and writes changes through to it. New never fails: an image
// that offers nothing better always gets the fallback.
func New(img image.Image, opts ...Option) *Pixel {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = Logger()
	}

	rect := img.Bounds()
	var b backend.Backend
	if !o.forceFallback {
		b = direct(img)
	}
	if b == nil {
		if !o.forceFallback {
			log.Warn("fastpixel: using fallback backend",
				"type", fmt.Sprintf("%T", img),
				"width", rect.Dx(),
				"height", rect.Dy())
		}
		b = backend.NewFallback(img)
	}

	log.Debug("fastpixel: backend selected",
		"kind", b.Kind().String(),
		"alpha", b.HasAlpha(),
		"width", rect.Dx(),
		"height", rect.Dy())

	return newPixel(b, rect.Dx(), rect.Dy(), o)
}

// direct returns a backend addressing the memory of img, or nil if img
// must go through the fallback.
func direct(img image.Image) backend.Backend {
	switch m := img.(type) {
	case *PixelBuffer:
		return m.backend
	case *image.NRGBA:
		w, h := m.Rect.Dx(), m.Rect.Dy()
		n := layout.ByteRGBA.Units(w, h)
		if m.Stride != w*layout.ByteRGBA.Stride() || len(m.Pix) < n {
			return nil
		}
		b, err := backend.NewBytes(m.Pix[:n], layout.ByteRGBA)
		if err != nil {
			return nil
		}
		return b
	}
	return nil
}

// NewFromBytes returns an accessor over byte data laid out as l, without
// copying. See [FromBytes] for the requirements on data.
func NewFromBytes(data []byte, width, height int, l Layout, opts ...Option) (*Pixel, error) {
	buf, err := FromBytes(data, width, height, l)
	if err != nil {
		return nil, err
	}
	return New(buf, opts...), nil
}

// NewFromWords returns an accessor over word data laid out as l, without
// copying. See [FromWords] for the requirements on data.
func NewFromWords(data []uint32, width, height int, l Layout, opts ...Option) (*Pixel, error) {
	buf, err := FromWords(data, width, height, l)
	if err != nil {
		return nil, err
	}
	return New(buf, opts...), nil
}
