// Package fastpixel provides uniform, fast channel access to raster images.
//
// # Overview
//
// An [Accessor] reads and writes the red, green, blue and alpha channels of
// a raster and derives luma, chroma and HSV values from them, without the
// caller knowing how the pixels are laid out in memory. The fastest
// available backend is chosen once, when the accessor is created.
//
// # Quick Start
//
//	import "github.com/gogpu/fastpixel"
//
//	px := fastpixel.New(img)
//
//	r, err := px.Red(10, 20)
//	if err != nil {
//	    return err
//	}
//	_ = px.SetBlue(10, 20, 255-r)
//
//	// Whole-image access, indexed [x][y]
//	lum := px.LumaGrid()
//
// # Backends
//
// Three backends are selected by [New]:
//   - bytes: interleaved 8-bit channels in a []byte ([LayoutByteABGR],
//     [LayoutByteBGR], [LayoutByteRGBA]). Used for [PixelBuffer] byte
//     layouts and for *image.NRGBA without row padding.
//   - words: one packed uint32 per pixel ([LayoutWordARGB],
//     [LayoutWordRGB], [LayoutWordBGR]). Used for [PixelBuffer] word layouts.
//   - fallback: any other image.Image. The image is snapshotted once and
//     every write is propagated back through draw.Image.
//
// The byte and word backends address the caller's memory directly, so
// changes are visible both ways without copying.
//
// # Addressing
//
// Scalar operations take either (x, y) coordinates or a storage index
// (see [Pixel.Offset]). Invalid coordinates and indices return errors
// wrapping [ErrOutOfBounds]; bulk setters return [ErrShapeMismatch] before
// writing anything.
//
// # Opaque Color Replacement
//
// [Pixel.SetReplaceOpaqueColors] makes reads of sufficiently transparent
// pixels report a fixed color. It is a read overlay only: stored pixels are
// never changed by it.
//
// # Coordinate System
//
// Origin (0,0) at top-left, x increases right, y increases down.
package fastpixel
