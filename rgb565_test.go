package pixfmt

import (
	"math/rand"
	"testing"

	"github.com/gogpu/pixfmt/internal/blend"
)

func TestPackRGB16RoundTrip(t *testing.T) {
	for r := uint32(0); r <= R16Mask; r++ {
		for g := uint32(0); g <= G16Mask; g++ {
			for b := uint32(0); b <= B16Mask; b++ {
				c := PackRGB16(r, g, b)
				if c.R() != r || c.G() != g || c.B() != b {
					t.Fatalf("PackRGB16(%d, %d, %d) unpacks to (%d, %d, %d)", r, g, b, c.R(), c.G(), c.B())
				}
			}
		}
	}
}

func TestPackRGB16Max(t *testing.T) {
	c := PackRGB16(31, 63, 31)
	if c != 0xFFFF {
		t.Errorf("PackRGB16(31, 63, 31) = %#04x, want 0xffff", uint16(c))
	}
	if c.R() != 31 || c.G() != 63 || c.B() != 31 {
		t.Errorf("unpack = (%d, %d, %d), want (31, 63, 31)", c.R(), c.G(), c.B())
	}
	if got := PackRGB16(31, 0, 0); got != R16MaskInPlace {
		t.Errorf("PackRGB16(31, 0, 0) = %#04x, want %#04x", uint16(got), R16MaskInPlace)
	}
}

func TestPixel16ToColor(t *testing.T) {
	for i := 0; i <= 0xFFFF; i++ {
		p := RGB565(i)
		c := Pixel16ToColor(p)
		if c.A() != 255 {
			t.Fatalf("Pixel16ToColor(%#04x) alpha = %d, want 255", i, c.A())
		}
		if R32ToR16(c.R()) != p.R() || G32ToG16(c.G()) != p.G() || B32ToB16(c.B()) != p.B() {
			t.Fatalf("Pixel16ToColor(%#04x) = %#08x does not narrow back", i, uint32(c))
		}
	}
	if got := Pixel16ToColor(0xFFFF); got != 0xFFFFFFFF {
		t.Errorf("Pixel16ToColor(0xffff) = %#08x, want 0xffffffff", uint32(got))
	}
}

func TestRGB565RGBA(t *testing.T) {
	r, g, b, a := PackRGB16(31, 0, 16).RGBA()
	if r != 0xFFFF || g != 0 || b != 0x8484 || a != 0xFFFF {
		t.Errorf("RGBA() = (%#x, %#x, %#x, %#x), want (0xffff, 0, 0x8484, 0xffff)", r, g, b, a)
	}
}

func TestPixel32ToPixel16(t *testing.T) {
	if got := Pixel32ToPixel16(PackARGB32(255, 255, 255, 255)); got != 0xFFFF {
		t.Errorf("Pixel32ToPixel16(white) = %#04x, want 0xffff", uint16(got))
	}
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 10000; i++ {
		c := randPMColor(rng)
		want := Pack888ToRGB16(c.R(), c.G(), c.B())
		if got := Pixel32ToPixel16(c); got != want {
			t.Fatalf("Pixel32ToPixel16(%#08x) = %#04x, want %#04x", uint32(c), uint16(got), uint16(want))
		}
	}
}

func TestSrcOver32To16(t *testing.T) {
	t.Run("transparent source keeps destination", func(t *testing.T) {
		for i := 0; i <= 0xFFFF; i++ {
			dst := RGB565(i)
			if got := SrcOver32To16(0, dst); got != dst {
				t.Fatalf("SrcOver32To16(0, %#04x) = %#04x", i, uint16(got))
			}
		}
	})

	t.Run("opaque source replaces destination", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))
		for i := 0; i < 10000; i++ {
			src := PackARGB32(255, uint32(rng.Intn(256)), uint32(rng.Intn(256)), uint32(rng.Intn(256)))
			dst := RGB565(rng.Intn(0x10000))
			if got, want := SrcOver32To16(src, dst), Pixel32ToPixel16(src); got != want {
				t.Fatalf("SrcOver32To16(%#08x, %#04x) = %#04x, want %#04x",
					uint32(src), uint16(dst), uint16(got), uint16(want))
			}
		}
	})

	t.Run("half red over white", func(t *testing.T) {
		got := SrcOver32To16(PackARGB32(128, 128, 0, 0), 0xFFFF)
		if want := PackRGB16(31, 31, 15); got != want {
			t.Errorf("SrcOver32To16 = (%d, %d, %d), want (31, 31, 15)", got.R(), got.G(), got.B())
		}
	})

	t.Run("stays in range", func(t *testing.T) {
		rng := rand.New(rand.NewSource(6))
		for i := 0; i < 20000; i++ {
			src := randPMColor(rng)
			got := SrcOver32To16(src, 0xFFFF)
			if got.R() < R32ToR16(src.R()) || got.G() < G32ToG16(src.G()) || got.B() < B32ToB16(src.B()) {
				t.Fatalf("SrcOver32To16(%#08x, white) = %#04x darker than source", uint32(src), uint16(got))
			}
		}
	})
}

// TestSrcOver32To16NoOverflow sweeps every alpha with the brightest legal
// premultiplied source over every destination and checks that no channel
// sum carries into its neighbour before packing.
func TestSrcOver32To16NoOverflow(t *testing.T) {
	for a := uint32(0); a <= 255; a++ {
		src := PackARGB32(a, a, a, a)
		isa := 255 - a
		for i := 0; i <= 0xFFFF; i++ {
			dst := RGB565(i)
			r := (a + blend.Mul16ShiftRound(dst.R(), isa, R16Bits)) >> (8 - R16Bits)
			g := (a + blend.Mul16ShiftRound(dst.G(), isa, G16Bits)) >> (8 - G16Bits)
			b := (a + blend.Mul16ShiftRound(dst.B(), isa, B16Bits)) >> (8 - B16Bits)
			if r > R16Mask || g > G16Mask || b > B16Mask {
				t.Fatalf("SrcOver32To16(alpha %d, %#04x) channel sum (%d, %d, %d) overflows", a, i, r, g, b)
			}
			if got := SrcOver32To16(src, dst); got.R() != r || got.G() != g || got.B() != b {
				t.Fatalf("SrcOver32To16(alpha %d, %#04x) = (%d, %d, %d), want (%d, %d, %d)",
					a, i, got.R(), got.G(), got.B(), r, g, b)
			}
		}
	}

	white := PackARGB32(255, 255, 255, 255)
	for i := 0; i <= 0xFFFF; i++ {
		if got := SrcOver32To16(white, RGB565(i)); got != PackRGB16(31, 63, 31) {
			t.Fatalf("SrcOver32To16(white, %#04x) = %#04x, want 0xffff", i, uint16(got))
		}
	}
}

func BenchmarkSrcOver32To16(b *testing.B) {
	src := PackARGB32(0x80, 0x40, 0x20, 0x10)
	dst := RGB565(0x1234)
	for i := 0; i < b.N; i++ {
		dst = SrcOver32To16(src, dst)
	}
}
