package layout

// OpaqueAlpha is the alpha byte of a fully opaque ARGB word.
const OpaqueAlpha uint32 = 0xff << 24

// PackARGB composes a 0xAARRGGBB word. Each component is narrowed to 8 bits.
func PackARGB(a, r, g, b int) uint32 {
	return uint32(a&0xff)<<24 | uint32(r&0xff)<<16 | uint32(g&0xff)<<8 | uint32(b&0xff)
}

// UnpackARGB splits a 0xAARRGGBB word into its components.
func UnpackARGB(w uint32) (a, r, g, b int) {
	return int(w >> 24), int(w >> 16 & 0xff), int(w >> 8 & 0xff), int(w & 0xff)
}

// ARGBMask returns the bits of channel c inside a 0xAARRGGBB word.
func ARGBMask(c Channel) uint32 {
	return infoTable[WordARGB].Masks[c]
}

// ARGBShift returns the lowest bit position of channel c inside a 0xAARRGGBB word.
func ARGBShift(c Channel) uint {
	return infoTable[WordARGB].Shifts[c]
}

// WithChannel replaces channel c of an ARGB word with the low 8 bits of v.
func WithChannel(w uint32, c Channel, v int) uint32 {
	mask := ARGBMask(c)
	return w&^mask | uint32(v&0xff)<<ARGBShift(c)
}
