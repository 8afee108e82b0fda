package fastpixel

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// patternColor is a deterministic test color with every channel distinct.
func patternColor(x, y int) color.NRGBA {
	return color.NRGBA{
		R: uint8(10 + 40*x + y),
		G: uint8(200 - 30*y + x),
		B: uint8(7*x*y + 3),
		A: uint8(255 - 50*x - 13*y),
	}
}

func patternNRGBA(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, patternColor(x, y))
		}
	}
	return img
}

// equivalentAccessors returns accessors with identical content on every backend.
func equivalentAccessors(t *testing.T, w, h int) map[string]*Pixel {
	t.Helper()

	abgr := make([]byte, w*h*4)
	argb := make([]uint32, w*h)
	for y := range h {
		for x := range w {
			c := patternColor(x, y)
			i := y*w + x
			copy(abgr[i*4:], []byte{c.A, c.B, c.G, c.R})
			argb[i] = uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
		}
	}

	bytesPx, err := NewFromBytes(abgr, w, h, LayoutByteABGR)
	if err != nil {
		t.Fatalf("NewFromBytes() error = %v", err)
	}
	wordsPx, err := NewFromWords(argb, w, h, LayoutWordARGB)
	if err != nil {
		t.Fatalf("NewFromWords() error = %v", err)
	}
	return map[string]*Pixel{
		"bytes ABGR": bytesPx,
		"words ARGB": wordsPx,
		"nrgba":      New(patternNRGBA(w, h)),
		"fallback":   New(patternNRGBA(w, h), WithFallback()),
	}
}

// layoutAccessors returns a zeroed 3x2 accessor for every direct layout.
func layoutAccessors(t *testing.T) map[string]*Pixel {
	t.Helper()
	out := make(map[string]*Pixel)
	for _, l := range []Layout{LayoutByteABGR, LayoutByteBGR, LayoutByteRGBA, LayoutWordARGB, LayoutWordRGB, LayoutWordBGR} {
		buf, err := NewPixelBuffer(3, 2, l)
		if err != nil {
			t.Fatalf("NewPixelBuffer(%v) error = %v", l, err)
		}
		out[l.String()] = New(buf)
	}
	out["fallback"] = New(image.NewNRGBA(image.Rect(0, 0, 3, 2)), WithFallback())
	return out
}

func TestChannelRoundTrip(t *testing.T) {
	type channelOps struct {
		name string
		set  func(p *Pixel, x, y, v int) error
		get  func(p *Pixel, x, y int) (int, error)
	}
	ops := []channelOps{
		{"red", (*Pixel).SetRed, (*Pixel).Red},
		{"green", (*Pixel).SetGreen, (*Pixel).Green},
		{"blue", (*Pixel).SetBlue, (*Pixel).Blue},
		{"alpha", (*Pixel).SetAlpha, (*Pixel).Alpha},
	}

	for name, p := range layoutAccessors(t) {
		t.Run(name, func(t *testing.T) {
			for _, op := range ops {
				if op.name == "alpha" && !p.HasAlpha() {
					continue
				}
				for v := range 256 {
					if err := op.set(p, 2, 1, v); err != nil {
						t.Fatalf("set %s = %d: %v", op.name, v, err)
					}
					got, err := op.get(p, 2, 1)
					if err != nil {
						t.Fatalf("get %s: %v", op.name, err)
					}
					if got != v {
						t.Fatalf("%s after set %d = %d", op.name, v, got)
					}
				}
			}
		})
	}
}

func TestChannelIsolation(t *testing.T) {
	for name, p := range layoutAccessors(t) {
		t.Run(name, func(t *testing.T) {
			mustNil(t, p.SetRed(1, 0, 0x11))
			mustNil(t, p.SetGreen(1, 0, 0x22))
			mustNil(t, p.SetBlue(1, 0, 0x33))
			mustNil(t, p.SetAlpha(1, 0, 0x44))
			mustNil(t, p.SetGreen(1, 0, 0x1ff)) // narrowed to 0xff

			r, _ := p.Red(1, 0)
			g, _ := p.Green(1, 0)
			b, _ := p.Blue(1, 0)
			if r != 0x11 || g != 0xff || b != 0x33 {
				t.Errorf("(r, g, b) = (%#x, %#x, %#x), want (0x11, 0xff, 0x33)", r, g, b)
			}
			if p.HasAlpha() {
				if a, _ := p.Alpha(1, 0); a != 0x44 {
					t.Errorf("Alpha() = %#x, want 0x44", a)
				}
			}
			// Neighbours untouched.
			if r, _ := p.Red(0, 0); r != 0 {
				t.Errorf("Red(0, 0) = %d, want 0", r)
			}
			if r, _ := p.Red(2, 0); r != 0 {
				t.Errorf("Red(2, 0) = %d, want 0", r)
			}
		})
	}
}

func TestRGBComposition(t *testing.T) {
	for name, p := range equivalentAccessors(t, 4, 3) {
		t.Run(name, func(t *testing.T) {
			for y := range p.Height() {
				for x := range p.Width() {
					r, _ := p.Red(x, y)
					g, _ := p.Green(x, y)
					b, _ := p.Blue(x, y)
					a, _ := p.Alpha(x, y)
					want := uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
					got, err := p.RGB(x, y)
					if err != nil {
						t.Fatalf("RGB(%d, %d) error = %v", x, y, err)
					}
					if got != want {
						t.Errorf("RGB(%d, %d) = %#08x, want %#08x", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestNoAlphaChannel(t *testing.T) {
	for _, l := range []Layout{LayoutByteBGR, LayoutWordRGB, LayoutWordBGR} {
		t.Run(l.String(), func(t *testing.T) {
			buf, err := NewPixelBuffer(2, 2, l)
			if err != nil {
				t.Fatalf("NewPixelBuffer() error = %v", err)
			}
			p := New(buf)
			if p.HasAlpha() {
				t.Fatal("HasAlpha() = true, want false")
			}
			mustNil(t, p.SetRed(0, 0, 1))
			mustNil(t, p.SetGreen(0, 0, 2))
			mustNil(t, p.SetBlue(0, 0, 3))
			if err := p.SetAlpha(0, 0, 9); err != nil {
				t.Errorf("SetAlpha() error = %v, want nil", err)
			}
			if a, _ := p.Alpha(0, 0); a != -1 {
				t.Errorf("Alpha() = %d, want -1", a)
			}
			if got, _ := p.RGB(0, 0); got != 0xff010203 {
				t.Errorf("RGB() = %#08x, want 0xff010203", got)
			}
			if p.AlphaGrid() != nil {
				t.Error("AlphaGrid() != nil without alpha channel")
			}
		})
	}
}

func TestOffsetAndIndexForms(t *testing.T) {
	for name, p := range layoutAccessors(t) {
		t.Run(name, func(t *testing.T) {
			i, err := p.Offset(2, 1)
			if err != nil {
				t.Fatalf("Offset() error = %v", err)
			}
			mustNil(t, p.SetBlueAt(i, 77))
			if v, _ := p.Blue(2, 1); v != 77 {
				t.Errorf("Blue(2, 1) = %d after SetBlueAt, want 77", v)
			}
			mustNil(t, p.SetRed(2, 1, 66))
			if v, _ := p.RedAt(i); v != 66 {
				t.Errorf("RedAt(%d) = %d, want 66", i, v)
			}
			w1, _ := p.RGB(2, 1)
			w2, _ := p.RGBAt(i)
			if w1 != w2 {
				t.Errorf("RGB() = %#08x, RGBAt() = %#08x", w1, w2)
			}
		})
	}
}

func TestOutOfBounds(t *testing.T) {
	buf, err := NewPixelBuffer(3, 2, LayoutByteABGR)
	if err != nil {
		t.Fatalf("NewPixelBuffer() error = %v", err)
	}
	p := New(buf)

	coords := []image.Point{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {3, 2}}
	for _, c := range coords {
		if _, err := p.Red(c.X, c.Y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Red(%d, %d) error = %v, want ErrOutOfBounds", c.X, c.Y, err)
		}
		if _, err := p.Luma(c.X, c.Y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Luma(%d, %d) error = %v, want ErrOutOfBounds", c.X, c.Y, err)
		}
		if _, err := p.Offset(c.X, c.Y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Offset(%d, %d) error = %v, want ErrOutOfBounds", c.X, c.Y, err)
		}
		if err := p.SetGreen(c.X, c.Y, 1); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("SetGreen(%d, %d) error = %v, want ErrOutOfBounds", c.X, c.Y, err)
		}
		if err := p.SetAverageGrayscale(c.X, c.Y, 1); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("SetAverageGrayscale(%d, %d) error = %v, want ErrOutOfBounds", c.X, c.Y, err)
		}
	}

	// 3*2 pixels of 4 bytes; 2 is inside the data but not a pixel start.
	for _, i := range []int{-4, -1, 2, 24, 100} {
		if _, err := p.RGBAt(i); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("RGBAt(%d) error = %v, want ErrOutOfBounds", i, err)
		}
		if _, err := p.SaturationAt(i); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("SaturationAt(%d) error = %v, want ErrOutOfBounds", i, err)
		}
		if err := p.SetAlphaAt(i, 1); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("SetAlphaAt(%d) error = %v, want ErrOutOfBounds", i, err)
		}
	}

	last := len(buf.Bytes()) - 4
	if _, err := p.RGBAt(last); err != nil {
		t.Errorf("RGBAt(%d) error = %v, want nil for the last pixel", last, err)
	}

	for i, v := range buf.Bytes() {
		if v != 0 {
			t.Fatalf("byte %d = %d after rejected writes, want 0", i, v)
		}
	}
}

func TestAverageGrayscaleScalar(t *testing.T) {
	for name, p := range layoutAccessors(t) {
		t.Run(name, func(t *testing.T) {
			mustNil(t, p.SetAlpha(1, 1, 200))
			mustNil(t, p.SetAverageGrayscale(1, 1, 90))
			for _, get := range []func(x, y int) (int, error){p.Red, p.Green, p.Blue, p.AverageGrayscale} {
				if v, _ := get(1, 1); v != 90 {
					t.Errorf("channel = %d after SetAverageGrayscale(90), want 90", v)
				}
			}
			if p.HasAlpha() {
				if a, _ := p.Alpha(1, 1); a != 200 {
					t.Errorf("Alpha() = %d, want 200 (unchanged)", a)
				}
			}
			i, _ := p.Offset(0, 1)
			mustNil(t, p.SetAverageGrayscaleAt(i, 12))
			if v, _ := p.AverageGrayscaleAt(i); v != 12 {
				t.Errorf("AverageGrayscaleAt() = %d, want 12", v)
			}
		})
	}
}

func TestReplaceOpaqueColors(t *testing.T) {
	sub := color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	alphas := []uint8{0, 100, 200, 255}

	tests := []struct {
		name      string
		threshold int
		replaced  []bool
	}{
		{"all", 300, []bool{true, true, true, true}},
		{"partial", 120, []bool{true, true, false, false}},
		{"exact", 200, []bool{true, true, true, false}},
		{"disabled", -1, []bool{false, false, false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewNRGBA(image.Rect(0, 0, len(alphas), 1))
			for x, a := range alphas {
				img.SetNRGBA(x, 0, color.NRGBA{R: 50, G: 60, B: 70, A: a})
			}
			before := append([]byte(nil), img.Pix...)

			p := New(img)
			p.SetReplaceOpaqueColors(tt.threshold, sub)
			if got := p.ReplaceOpaqueColors(); got != (tt.threshold >= 0) {
				t.Errorf("ReplaceOpaqueColors() = %v, want %v", got, tt.threshold >= 0)
			}

			for x, a := range alphas {
				want := color.NRGBA{R: 50, G: 60, B: 70, A: a}
				if tt.replaced[x] {
					want = sub
				}
				r, _ := p.Red(x, 0)
				g, _ := p.Green(x, 0)
				b, _ := p.Blue(x, 0)
				al, _ := p.Alpha(x, 0)
				got := color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(al)}
				if got != want {
					t.Errorf("pixel %d = %v, want %v", x, got, want)
				}
				if v, _ := p.Value(x, 0); v != int(max(want.R, want.G, want.B)) {
					t.Errorf("Value(%d, 0) = %d, want %d", x, v, max(want.R, want.G, want.B))
				}
				if grid := p.RedGrid(); grid[x][0] != int(want.R) {
					t.Errorf("RedGrid()[%d][0] = %d, want %d", x, grid[x][0], want.R)
				}
			}

			for i := range before {
				if img.Pix[i] != before[i] {
					t.Fatalf("Pix[%d] changed by reads: %d -> %d", i, before[i], img.Pix[i])
				}
			}
		})
	}
}

func TestReplaceOpaqueColorsTransparentPixel(t *testing.T) {
	buf, err := NewPixelBuffer(1, 1, LayoutByteABGR)
	if err != nil {
		t.Fatalf("NewPixelBuffer() error = %v", err)
	}
	p := New(buf)
	if got, _ := p.RGBAt(0); got != 0 {
		t.Fatalf("RGBAt(0) = %#08x, want 0", got)
	}

	p.SetReplaceOpaqueColors(0, color.NRGBA{R: 10, G: 11, B: 11, A: 255})
	if got, _ := p.RGBAt(0); got != 0xff0a0b0b {
		t.Errorf("RGBAt(0) = %#08x, want 0xff0a0b0b", got)
	}

	p.SetReplaceOpaqueColors(-1, color.NRGBA{})
	if got, _ := p.RGBAt(0); got != 0 {
		t.Errorf("RGBAt(0) = %#08x after disabling, want 0", got)
	}
}

func TestReplaceOpaqueColorsNoAlpha(t *testing.T) {
	buf, err := NewPixelBuffer(1, 1, LayoutWordRGB)
	if err != nil {
		t.Fatalf("NewPixelBuffer() error = %v", err)
	}
	buf.Words()[0] = 0x00102030
	p := New(buf, WithReplaceOpaqueColors(255, color.NRGBA{R: 1, G: 1, B: 1, A: 255}))
	if got, _ := p.RGB(0, 0); got != 0xff102030 {
		t.Errorf("RGB() = %#08x, want 0xff102030", got)
	}
}

func TestFallbackWriteThrough(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 3))
	for y := range 3 {
		for x := range 3 {
			src.SetRGBA(x, y, color.RGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}
	p := New(src)
	if p.Kind() != KindFallback {
		t.Fatalf("Kind() = %v, want fallback", p.Kind())
	}

	mustNil(t, p.SetRed(1, 2, 200))
	mustNil(t, p.SetAverageGrayscale(2, 0, 99))

	if got := src.RGBAAt(1, 2); got != (color.RGBA{R: 200, G: 20, B: 30, A: 255}) {
		t.Errorf("source (1, 2) = %v after SetRed", got)
	}
	if got := src.RGBAAt(2, 0); got != (color.RGBA{R: 99, G: 99, B: 99, A: 255}) {
		t.Errorf("source (2, 0) = %v after SetAverageGrayscale", got)
	}
	if r, _ := p.Red(1, 2); r != 200 {
		t.Errorf("Red(1, 2) = %d, want 200", r)
	}
}

func TestFallbackSubImage(t *testing.T) {
	parent := image.NewRGBA(image.Rect(0, 0, 6, 6))
	sub := parent.SubImage(image.Rect(2, 3, 5, 5)).(*image.RGBA)
	p := New(sub)
	if p.Width() != 3 || p.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", p.Width(), p.Height())
	}
	mustNil(t, p.SetAlpha(0, 0, 255))
	mustNil(t, p.SetGreen(0, 0, 255))
	if got := parent.RGBAAt(2, 3); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("parent (2, 3) = %v, want opaque green", got)
	}
}

// readOnly hides the Set method of the wrapped image.
type readOnly struct{ image.Image }

func TestFallbackReadOnly(t *testing.T) {
	src := patternNRGBA(2, 2)
	p := New(readOnly{src})
	if p.Kind() != KindFallback {
		t.Fatalf("Kind() = %v, want fallback", p.Kind())
	}

	want := patternColor(1, 1)
	if r, err := p.Red(1, 1); err != nil || r != int(want.R) {
		t.Errorf("Red(1, 1) = %d, %v; want %d, nil", r, err, want.R)
	}
	if err := p.SetRed(1, 1, 0); !errors.Is(err, ErrReadOnly) {
		t.Errorf("SetRed() error = %v, want ErrReadOnly", err)
	}
	if err := p.SetRedGrid(p.RedGrid()); !errors.Is(err, ErrReadOnly) {
		t.Errorf("SetRedGrid() error = %v, want ErrReadOnly", err)
	}
	if err := p.SetRedGrid([][]int{{1}}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("SetRedGrid(1x1) error = %v, want ErrShapeMismatch", err)
	}
	if r, _ := p.Red(1, 1); r != int(want.R) {
		t.Errorf("Red(1, 1) = %d after rejected write, want %d", r, want.R)
	}
}

// opaqueNRGBA declares no alpha channel while its pixels still store one.
type opaqueNRGBA struct{ *image.NRGBA }

func (opaqueNRGBA) HasAlpha() bool { return false }

func TestFallbackForcesOpaqueWithoutAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 10})
	p := New(opaqueNRGBA{img})
	if p.Kind() != KindFallback || p.HasAlpha() {
		t.Fatalf("Kind() = %v, HasAlpha() = %v; want fallback without alpha", p.Kind(), p.HasAlpha())
	}

	if a, _ := p.Alpha(0, 0); a != -1 {
		t.Errorf("Alpha(0, 0) = %d, want -1", a)
	}
	if got, _ := p.RGB(0, 0); got != 0xff010203 {
		t.Errorf("RGB(0, 0) = %#08x, want 0xff010203", got)
	}
	if got := p.RGBGrid()[0][0]; got != 0xff010203 {
		t.Errorf("RGBGrid()[0][0] = %#08x, want 0xff010203", got)
	}

	mustNil(t, p.SetGreen(0, 0, 20))
	if got, _ := p.RGB(0, 0); got != 0xff011403 {
		t.Errorf("RGB(0, 0) = %#08x after SetGreen, want 0xff011403", got)
	}
}

func TestFallbackNarrowSourceAgrees(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 1))
	p := New(src)
	if p.Kind() != KindFallback {
		t.Fatalf("Kind() = %v, want fallback", p.Kind())
	}

	mustNil(t, p.SetRed(0, 0, 200))
	if g := src.GrayAt(0, 0).Y; g != 60 {
		t.Errorf("source (0, 0) = %d after SetRed(200), want luma 60", g)
	}
	if r, _ := p.Red(0, 0); r != 60 {
		t.Errorf("Red(0, 0) = %d after SetRed(200), want 60 as stored", r)
	}
	mustNil(t, p.SetBlueGrid([][]int{{0}, {90}, {250}}))

	for x := range 3 {
		y := int(src.GrayAt(x, 0).Y)
		for _, get := range []func(x, y int) (int, error){p.Red, p.Green, p.Blue} {
			if v, _ := get(x, 0); v != y {
				t.Errorf("channel at (%d, 0) = %d, source gray %d", x, v, y)
			}
		}
	}
}

func TestReplaceOpaqueColorsFallbackWrite(t *testing.T) {
	stored := color.NRGBA{R: 10, G: 200, B: 30, A: 0}
	sub := color.NRGBA{R: 7, G: 8, B: 9, A: 255}

	direct := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	direct.SetNRGBA(0, 0, stored)
	fallback := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	fallback.SetNRGBA(0, 0, stored)

	mustNil(t, New(direct, WithReplaceOpaqueColors(0, sub)).SetRed(0, 0, 50))
	mustNil(t, New(fallback, WithFallback(), WithReplaceOpaqueColors(0, sub)).SetRed(0, 0, 50))

	if got, want := direct.NRGBAAt(0, 0), (color.NRGBA{R: 50, G: 200, B: 30, A: 0}); got != want {
		t.Errorf("bytes backend stored %v, want %v", got, want)
	}
	if got, want := fallback.NRGBAAt(0, 0), (color.NRGBA{R: 50, G: 8, B: 9, A: 255}); got != want {
		t.Errorf("fallback backend stored %v, want %v", got, want)
	}
}

func TestBackendEquivalence(t *testing.T) {
	const w, h = 5, 4
	accessors := equivalentAccessors(t, w, h)
	ref := accessors["bytes ABGR"]

	for name, p := range accessors {
		t.Run(name, func(t *testing.T) {
			if p.Width() != w || p.Height() != h || !p.HasAlpha() {
				t.Fatalf("shape = %dx%d alpha=%v", p.Width(), p.Height(), p.HasAlpha())
			}
			for y := range h {
				for x := range w {
					assertSamePixel(t, ref, p, x, y)
				}
			}
		})
	}
}

func TestBackendEquivalenceAfterWrites(t *testing.T) {
	const w, h = 3, 3
	accessors := equivalentAccessors(t, w, h)
	for _, p := range accessors {
		mustNil(t, p.SetRed(0, 0, 255))
		mustNil(t, p.SetAlpha(1, 0, 0))
		mustNil(t, p.SetAverageGrayscale(2, 2, 128))
		p.SetReplaceOpaqueColors(10, color.NRGBA{R: 9, G: 8, B: 7, A: 6})
	}
	ref := accessors["words ARGB"]
	for name, p := range accessors {
		t.Run(name, func(t *testing.T) {
			for y := range h {
				for x := range w {
					assertSamePixel(t, ref, p, x, y)
				}
			}
		})
	}
}

func assertSamePixel(t *testing.T, want, got *Pixel, x, y int) {
	t.Helper()
	scalars := []struct {
		name string
		fn   func(p *Pixel) (int, error)
	}{
		{"Red", func(p *Pixel) (int, error) { return p.Red(x, y) }},
		{"Green", func(p *Pixel) (int, error) { return p.Green(x, y) }},
		{"Blue", func(p *Pixel) (int, error) { return p.Blue(x, y) }},
		{"Alpha", func(p *Pixel) (int, error) { return p.Alpha(x, y) }},
		{"AverageGrayscale", func(p *Pixel) (int, error) { return p.AverageGrayscale(x, y) }},
		{"Luma", func(p *Pixel) (int, error) { return p.Luma(x, y) }},
		{"Cb", func(p *Pixel) (int, error) { return p.Cb(x, y) }},
		{"Cr", func(p *Pixel) (int, error) { return p.Cr(x, y) }},
		{"Hue", func(p *Pixel) (int, error) { return p.Hue(x, y) }},
		{"Value", func(p *Pixel) (int, error) { return p.Value(x, y) }},
	}
	for _, s := range scalars {
		a, errA := s.fn(want)
		b, errB := s.fn(got)
		if errA != nil || errB != nil {
			t.Fatalf("%s(%d, %d) errors: %v, %v", s.name, x, y, errA, errB)
		}
		if a != b {
			t.Errorf("%s(%d, %d) = %d, want %d", s.name, x, y, b, a)
		}
	}
	sa, _ := want.Saturation(x, y)
	sb, _ := got.Saturation(x, y)
	if sa != sb {
		t.Errorf("Saturation(%d, %d) = %v, want %v", x, y, sb, sa)
	}
	wa, _ := want.RGB(x, y)
	wb, _ := got.RGB(x, y)
	if wa != wb {
		t.Errorf("RGB(%d, %d) = %#08x, want %#08x", x, y, wb, wa)
	}
}

func mustNil(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
