package fastpixel

import "image/color"

// Accessor is uniform channel access to a raster, whatever its memory layout.
//
// Every scalar operation comes in two forms. The (x, y) form addresses a
// pixel by coordinates. The At form takes a storage index as returned by
// Offset: y*width*units + x*units, where units is the number of storage
// units per pixel (bytes for byte layouts, 1 otherwise). Coordinates or
// indices that do not address a pixel return an error wrapping
// ErrOutOfBounds.
//
// Channel values are in [0,255]. Setters narrow larger values to their low
// 8 bits. Alpha reads return -1 on images without alpha channel and alpha
// writes are ignored there.
//
// Bulk grids are indexed [x][y] and have Width() columns of Height()
// entries. 1D bulk results are row-major (y*width + x).
type Accessor interface {
	// Width returns the image width in pixels.
	Width() int
	// Height returns the image height in pixels.
	Height() int
	// HasAlpha reports whether the image has an alpha channel.
	HasAlpha() bool
	// Kind reports which backend serves this accessor.
	Kind() Kind
	// Offset returns the storage index of pixel (x, y).
	Offset(x, y int) (int, error)

	// RGB returns the pixel as 0xAARRGGBB; alpha is 255 without alpha channel.
	RGB(x, y int) (uint32, error)
	RGBAt(index int) (uint32, error)

	Red(x, y int) (int, error)
	RedAt(index int) (int, error)
	Green(x, y int) (int, error)
	GreenAt(index int) (int, error)
	Blue(x, y int) (int, error)
	BlueAt(index int) (int, error)
	Alpha(x, y int) (int, error)
	AlphaAt(index int) (int, error)

	SetRed(x, y, v int) error
	SetRedAt(index, v int) error
	SetGreen(x, y, v int) error
	SetGreenAt(index, v int) error
	SetBlue(x, y, v int) error
	SetBlueAt(index, v int) error
	SetAlpha(x, y, v int) error
	SetAlphaAt(index, v int) error

	// AverageGrayscale returns (r+g+b)/3.
	AverageGrayscale(x, y int) (int, error)
	AverageGrayscaleAt(index int) (int, error)
	// SetAverageGrayscale sets red, green and blue to v.
	SetAverageGrayscale(x, y, v int) error
	SetAverageGrayscaleAt(index, v int) error

	// Luma returns the BT.601 weighted brightness in [0,255].
	Luma(x, y int) (int, error)
	LumaAt(index int) (int, error)
	// Cb returns the blue-difference chroma in [0,255].
	Cb(x, y int) (int, error)
	CbAt(index int) (int, error)
	// Cr returns the red-difference chroma in [0,255].
	Cr(x, y int) (int, error)
	CrAt(index int) (int, error)

	// Hue returns the HSV hue in degrees [0,360); 0 for grays.
	Hue(x, y int) (int, error)
	HueAt(index int) (int, error)
	// Saturation returns the HSV saturation in [0,1].
	Saturation(x, y int) (float64, error)
	SaturationAt(index int) (float64, error)
	// Value returns the HSV value, max(r, g, b).
	Value(x, y int) (int, error)
	ValueAt(index int) (int, error)

	RGBGrid() [][]uint32
	RedGrid() [][]int
	GreenGrid() [][]int
	BlueGrid() [][]int
	// AlphaGrid returns nil if the image has no alpha channel.
	AlphaGrid() [][]int
	LumaGrid() [][]int
	AverageGrayscaleGrid() [][]int

	Red1D() []int
	Green1D() []int
	Blue1D() []int
	Luma1D() []int

	SetRedGrid(grid [][]int) error
	SetGreenGrid(grid [][]int) error
	SetBlueGrid(grid [][]int) error
	SetAlphaGrid(grid [][]int) error
	SetAverageGrayscaleGrid(grid [][]int) error

	// ReplaceOpaqueColors reports whether the opaque color overlay is active.
	ReplaceOpaqueColors() bool
	// SetReplaceOpaqueColors makes every channel read of a pixel whose
	// stored alpha is <= threshold return the matching channel of c.
	// Stored data is never modified. A negative threshold disables the
	// overlay.
	SetReplaceOpaqueColors(threshold int, c color.NRGBA)
}

var _ Accessor = (*Pixel)(nil)
