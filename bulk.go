package fastpixel

import (
	"fmt"

	"github.com/gogpu/fastpixel/internal/layout"
)

// newGrid allocates a [width][height] grid backed by one slice.
func newGrid[T any](width, height int) [][]T {
	backing := make([]T, width*height)
	grid := make([][]T, width)
	for x := range grid {
		grid[x] = backing[x*height : (x+1)*height : (x+1)*height]
	}
	return grid
}

// fillGrid evaluates fn for every pixel index into a [x][y] grid.
func fillGrid[T any](p *Pixel, fn func(i int) T) [][]T {
	grid := newGrid[T](p.width, p.height)
	for x := range p.width {
		col := grid[x]
		for y := range p.height {
			col[y] = fn((y*p.width + x) * p.stride)
		}
	}
	return grid
}

// fill1D evaluates fn for every pixel index in row-major order.
func fill1D(p *Pixel, fn func(i int) int) []int {
	out := make([]int, p.width*p.height)
	for j := range out {
		out[j] = fn(j * p.stride)
	}
	return out
}

func (p *Pixel) channelFn(c layout.Channel) func(i int) int {
	return func(i int) int { return p.channel(i, c) }
}

func (p *Pixel) deriveFn(fn func(r, g, b int) int) func(i int) int {
	return func(i int) int { return fn(p.components(i)) }
}

// RGBGrid returns every pixel as 0xAARRGGBB, indexed [x][y].
func (p *Pixel) RGBGrid() [][]uint32 { return fillGrid(p, p.rgb) }

// RedGrid returns the red channel of every pixel, indexed [x][y].
func (p *Pixel) RedGrid() [][]int { return fillGrid(p, p.channelFn(layout.Red)) }

// GreenGrid returns the green channel of every pixel, indexed [x][y].
func (p *Pixel) GreenGrid() [][]int { return fillGrid(p, p.channelFn(layout.Green)) }

// BlueGrid returns the blue channel of every pixel, indexed [x][y].
func (p *Pixel) BlueGrid() [][]int { return fillGrid(p, p.channelFn(layout.Blue)) }

// AlphaGrid returns the alpha channel of every pixel, indexed [x][y].
// Returns nil if the image has no alpha channel.
func (p *Pixel) AlphaGrid() [][]int {
	if !p.alpha {
		return nil
	}
	return fillGrid(p, p.channelFn(layout.Alpha))
}

// LumaGrid returns the luma of every pixel, indexed [x][y].
func (p *Pixel) LumaGrid() [][]int { return fillGrid(p, p.deriveFn(luma)) }

// AverageGrayscaleGrid returns (r+g+b)/3 of every pixel, indexed [x][y].
func (p *Pixel) AverageGrayscaleGrid() [][]int { return fillGrid(p, p.deriveFn(averageGrayscale)) }

// Red1D returns the red channel of every pixel in row-major order.
func (p *Pixel) Red1D() []int { return fill1D(p, p.channelFn(layout.Red)) }

// Green1D returns the green channel of every pixel in row-major order.
func (p *Pixel) Green1D() []int { return fill1D(p, p.channelFn(layout.Green)) }

// Blue1D returns the blue channel of every pixel in row-major order.
func (p *Pixel) Blue1D() []int { return fill1D(p, p.channelFn(layout.Blue)) }

// Luma1D returns the luma of every pixel in row-major order.
func (p *Pixel) Luma1D() []int { return fill1D(p, p.deriveFn(luma)) }

// checkGrid verifies that grid is width x height before anything is written.
func (p *Pixel) checkGrid(grid [][]int) error {
	if len(grid) != p.width {
		return fmt.Errorf("%w: %d columns, want %d", ErrShapeMismatch, len(grid), p.width)
	}
	for x, col := range grid {
		if len(col) != p.height {
			return fmt.Errorf("%w: column %d has %d rows, want %d", ErrShapeMismatch, x, len(col), p.height)
		}
	}
	return nil
}

// setGrid writes grid into the image with store, one pixel at a time.
// Caching backends only update their snapshot per pixel and write the whole
// image back to the source once at the end.
func (p *Pixel) setGrid(grid [][]int, store func(i, v int)) error {
	if err := p.checkGrid(grid); err != nil {
		return err
	}
	if p.cache != nil && !p.cache.Writable() {
		return ErrReadOnly
	}
	for x, col := range grid {
		for y, v := range col {
			store((y*p.width+x)*p.stride, v)
		}
	}
	if p.cache != nil {
		return p.cache.Flush()
	}
	return nil
}

// storeFn returns a per-pixel writer for channel c that does not write
// through to a cached source.
func (p *Pixel) storeFn(c layout.Channel) func(i, v int) {
	if p.cache != nil {
		return func(i, v int) { p.cache.Store(i, layout.WithChannel(p.rgb(i), c, v)) }
	}
	return func(i, v int) { p.backend.Set(i, c, v) }
}

// SetRedGrid sets the red channel of every pixel from a [x][y] grid.
func (p *Pixel) SetRedGrid(grid [][]int) error { return p.setGrid(grid, p.storeFn(layout.Red)) }

// SetGreenGrid sets the green channel of every pixel from a [x][y] grid.
func (p *Pixel) SetGreenGrid(grid [][]int) error { return p.setGrid(grid, p.storeFn(layout.Green)) }

// SetBlueGrid sets the blue channel of every pixel from a [x][y] grid.
func (p *Pixel) SetBlueGrid(grid [][]int) error { return p.setGrid(grid, p.storeFn(layout.Blue)) }

// SetAlphaGrid sets the alpha channel of every pixel from a [x][y] grid.
// It does nothing on images without alpha channel.
func (p *Pixel) SetAlphaGrid(grid [][]int) error {
	if !p.alpha {
		return p.checkGrid(grid)
	}
	return p.setGrid(grid, p.storeFn(layout.Alpha))
}

// SetAverageGrayscaleGrid sets red, green and blue of every pixel from a [x][y] grid.
func (p *Pixel) SetAverageGrayscaleGrid(grid [][]int) error {
	store := func(i, v int) {
		p.backend.Set(i, layout.Red, v)
		p.backend.Set(i, layout.Green, v)
		p.backend.Set(i, layout.Blue, v)
	}
	if p.cache != nil {
		store = func(i, v int) { p.cache.Store(i, grayWord(p.rgb(i), v)) }
	}
	return p.setGrid(grid, store)
}
