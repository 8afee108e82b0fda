// Package imageutil provides whole-image color helpers built on fastpixel.
package imageutil

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/fastpixel"
	"github.com/gogpu/fastpixel/internal/layout"
)

// ErrEmptyImage is returned when a source or target image has no pixels.
var ErrEmptyImage = errors.New("imageutil: empty image")

// Resize scales src to width x height with bilinear filtering.
// When shrinking, every source pixel contributes to the result.
func Resize(src image.Image, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: target %dx%d", ErrEmptyImage, width, height)
	}
	if src.Bounds().Empty() {
		return nil, fmt.Errorf("%w: source %v", ErrEmptyImage, src.Bounds())
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// InterpolateColor returns the average color of src, obtained by scaling it
// down to a single pixel.
func InterpolateColor(src image.Image) (color.NRGBA, error) {
	dot, err := Resize(src, 1, 1)
	if err != nil {
		return color.NRGBA{}, err
	}
	w, err := fastpixel.New(dot).RGB(0, 0)
	if err != nil {
		return color.NRGBA{}, err
	}
	return nrgba(w), nil
}

// DominantColor returns the color that occurs most often in src.
// Ties go to the color seen first in row-major order. An empty image
// returns the zero color.
func DominantColor(src image.Image) color.NRGBA {
	px := fastpixel.New(src)
	grid := px.RGBGrid()
	w, h := px.Width(), px.Height()
	if w == 0 || h == 0 {
		return color.NRGBA{}
	}

	counts := make(map[uint32]int)
	most := 0
	for y := range h {
		for x := range w {
			n := counts[grid[x][y]] + 1
			counts[grid[x][y]] = n
			most = max(most, n)
		}
	}
	for y := range h {
		for x := range w {
			if counts[grid[x][y]] == most {
				return nrgba(grid[x][y])
			}
		}
	}
	return color.NRGBA{}
}

// MeanColor returns the root mean square of every channel of src,
// alpha included. Channels are squared before averaging because 8-bit
// values are not linear in intensity. An empty image returns the zero color.
func MeanColor(src image.Image) color.NRGBA {
	px := fastpixel.New(src)
	grid := px.RGBGrid()
	n := float64(px.Width() * px.Height())
	if n == 0 {
		return color.NRGBA{}
	}

	var sum [4]float64
	for _, col := range grid {
		for _, w := range col {
			a, r, g, b := layout.UnpackARGB(w)
			sum[0] += float64(a * a)
			sum[1] += float64(r * r)
			sum[2] += float64(g * g)
			sum[3] += float64(b * b)
		}
	}
	rms := func(s float64) uint8 { return uint8(math.Sqrt(s / n)) }
	return color.NRGBA{R: rms(sum[1]), G: rms(sum[2]), B: rms(sum[3]), A: rms(sum[0])}
}

func nrgba(w uint32) color.NRGBA {
	a, r, g, b := layout.UnpackARGB(w)
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}
