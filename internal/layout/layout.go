// Package layout describes how color channels are placed in raw pixel memory.
//
// A Layout is a tag for one of the supported memory arrangements. Its Info
// carries everything a backend needs to address a channel without further
// branching: the storage kind, the number of storage units per pixel, byte
// offsets for interleaved storage and mask/shift pairs for word storage.
package layout

import "math/bits"

// Layout identifies a pixel memory layout.
type Layout uint8

const (
	// Unknown is a layout without direct memory access.
	Unknown Layout = iota

	// ByteABGR stores 4 bytes per pixel in A, B, G, R order.
	// The alpha byte precedes the color bytes.
	ByteABGR

	// ByteBGR stores 3 bytes per pixel in B, G, R order.
	ByteBGR

	// ByteRGBA stores 4 bytes per pixel in R, G, B, A order, non-premultiplied.
	// This is the layout of image.NRGBA.
	ByteRGBA

	// WordARGB stores one uint32 per pixel as 0xAARRGGBB.
	WordARGB

	// WordRGB stores one uint32 per pixel as 0x00RRGGBB.
	WordRGB

	// WordBGR stores one uint32 per pixel as 0x00BBGGRR.
	WordBGR

	// layoutCount is the number of layouts (for internal use).
	layoutCount
)

// Storage is the kind of memory backing a layout.
type Storage uint8

const (
	// StorageNone means pixels are only reachable through an image interface.
	StorageNone Storage = iota

	// StorageBytes is a flat []byte with a fixed number of bytes per pixel.
	StorageBytes

	// StorageWords is a flat []uint32 with one word per pixel.
	StorageWords
)

// String returns a string representation of the storage kind.
func (s Storage) String() string {
	switch s {
	case StorageBytes:
		return "bytes"
	case StorageWords:
		return "words"
	default:
		return "none"
	}
}

// Channel names one of the four color channels.
type Channel uint8

const (
	Red Channel = iota
	Green
	Blue
	Alpha
)

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Alpha:
		return "alpha"
	default:
		return "unknown"
	}
}

// Info contains the addressing metadata of a layout.
type Info struct {
	// Storage is the kind of memory holding the pixels.
	Storage Storage

	// Stride is the number of storage units per pixel:
	// bytes for StorageBytes, always 1 for StorageWords.
	Stride int

	// HasAlpha indicates if the layout has an alpha channel.
	HasAlpha bool

	// Offsets holds the byte offset of each channel from the pixel start.
	// Only meaningful for StorageBytes. Indexed by Channel.
	Offsets [4]int

	// Masks holds the bits of each channel inside the pixel word.
	// Only meaningful for StorageWords. Indexed by Channel.
	Masks [4]uint32

	// Shifts holds the position of the lowest bit of each mask.
	Shifts [4]uint
}

// infoTable contains metadata for each layout.
var infoTable = [layoutCount]Info{
	Unknown: {
		Storage: StorageNone,
		Stride:  1,
	},
	ByteABGR: {
		Storage:  StorageBytes,
		Stride:   4,
		HasAlpha: true,
		Offsets:  [4]int{Red: 3, Green: 2, Blue: 1, Alpha: 0},
	},
	ByteBGR: {
		Storage: StorageBytes,
		Stride:  3,
		Offsets: [4]int{Red: 2, Green: 1, Blue: 0},
	},
	ByteRGBA: {
		Storage:  StorageBytes,
		Stride:   4,
		HasAlpha: true,
		Offsets:  [4]int{Red: 0, Green: 1, Blue: 2, Alpha: 3},
	},
	WordARGB: wordInfo(0x00ff0000, 0x0000ff00, 0x000000ff, 0xff000000),
	WordRGB:  wordInfo(0x00ff0000, 0x0000ff00, 0x000000ff, 0),
	WordBGR:  wordInfo(0x000000ff, 0x0000ff00, 0x00ff0000, 0),
}

// wordInfo builds the Info of a word layout from its channel masks.
// A zero alpha mask means the layout has no alpha channel.
func wordInfo(red, green, blue, alpha uint32) Info {
	info := Info{
		Storage:  StorageWords,
		Stride:   1,
		HasAlpha: alpha != 0,
		Masks:    [4]uint32{Red: red, Green: green, Blue: blue, Alpha: alpha},
	}
	for c, m := range info.Masks {
		info.Shifts[c] = LowestBit(m)
	}
	return info
}

// LowestBit returns the index of the lowest set bit of mask, or 0 if mask is 0.
func LowestBit(mask uint32) uint {
	if mask == 0 {
		return 0
	}
	return uint(bits.TrailingZeros32(mask))
}

// Info returns the Info for this layout.
// Invalid layouts report the Info of Unknown.
func (l Layout) Info() Info {
	if l >= layoutCount {
		return infoTable[Unknown]
	}
	return infoTable[l]
}

// Storage returns the kind of memory backing this layout.
func (l Layout) Storage() Storage {
	return l.Info().Storage
}

// Stride returns the number of storage units per pixel.
func (l Layout) Stride() int {
	return l.Info().Stride
}

// HasAlpha returns true if this layout has an alpha channel.
func (l Layout) HasAlpha() bool {
	return l.Info().HasAlpha
}

// IsValid returns true if the layout is a known tag.
func (l Layout) IsValid() bool {
	return l < layoutCount
}

// IsDirect returns true if pixels of this layout live in flat memory.
func (l Layout) IsDirect() bool {
	return l.IsValid() && l.Storage() != StorageNone
}

// Units returns the storage length needed by a width x height raster.
// The caller must ensure the product does not overflow.
func (l Layout) Units(width, height int) int {
	return width * height * l.Stride()
}

// String returns a string representation of the layout.
func (l Layout) String() string {
	switch l {
	case Unknown:
		return "Unknown"
	case ByteABGR:
		return "ByteABGR"
	case ByteBGR:
		return "ByteBGR"
	case ByteRGBA:
		return "ByteRGBA"
	case WordARGB:
		return "WordARGB"
	case WordRGB:
		return "WordRGB"
	case WordBGR:
		return "WordBGR"
	default:
		return "Invalid"
	}
}
