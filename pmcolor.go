package pixfmt

import (
	"image/color"

	"github.com/gogpu/pixfmt/internal/blend"
)

// PMColor is a 32-bit premultiplied color in the canonical layout selected
// at build time (see CanonicalFormat). Each color channel is at most alpha.
type PMColor uint32

// PackARGB32 packs premultiplied channels into the canonical layout.
// Debug builds assert that a is a byte and that r, g and b do not exceed a.
func PackARGB32(a, r, g, b uint32) PMColor {
	assertByte(a)
	assertMax(r, a, "premultiplied red")
	assertMax(g, a, "premultiplied green")
	assertMax(b, a, "premultiplied blue")
	return PackARGB32NoCheck(a, r, g, b)
}

// PackARGB32NoCheck packs channels without the premultiplication check.
func PackARGB32NoCheck(a, r, g, b uint32) PMColor {
	return PMColor(a<<A32Shift | r<<R32Shift | g<<G32Shift | b<<B32Shift)
}

// A returns the alpha channel.
func (c PMColor) A() uint32 { return (uint32(c) >> A32Shift) & 0xFF }

// R returns the premultiplied red channel.
func (c PMColor) R() uint32 { return (uint32(c) >> R32Shift) & 0xFF }

// G returns the premultiplied green channel.
func (c PMColor) G() uint32 { return (uint32(c) >> G32Shift) & 0xFF }

// B returns the premultiplied blue channel.
func (c PMColor) B() uint32 { return (uint32(c) >> B32Shift) & 0xFF }

// RGBA implements color.Color. PMColor is already premultiplied, so the
// channels are widened from 8 to 16 bits unchanged.
func (c PMColor) RGBA() (r, g, b, a uint32) {
	return c.R() * 0x101, c.G() * 0x101, c.B() * 0x101, c.A() * 0x101
}

// PackARGBAsRGBA packs bytes in the RGBA-in-memory layout regardless of
// the canonical layout.
func PackARGBAsRGBA(a, r, g, b uint32) uint32 {
	assertByte(a)
	assertByte(r)
	assertByte(g)
	assertByte(b)
	return a<<RGBAA32Shift | r<<RGBAR32Shift | g<<RGBAG32Shift | b<<RGBAB32Shift
}

// PackARGBAsBGRA packs bytes in the BGRA-in-memory layout regardless of
// the canonical layout.
func PackARGBAsBGRA(a, r, g, b uint32) uint32 {
	assertByte(a)
	assertByte(r)
	assertByte(g)
	assertByte(b)
	return a<<BGRAA32Shift | r<<BGRAR32Shift | g<<BGRAG32Shift | b<<BGRAB32Shift
}

// rbMask covers the red and blue bytes of the canonical layout.
const rbMask = 0xFF<<R32Shift | 0xFF<<B32Shift

// SwizzleRB exchanges the red and blue bytes of a 32-bit color, converting
// between the RGBA and BGRA layouts. It is its own inverse.
func SwizzleRB(c uint32) uint32 {
	c0 := (c >> R32Shift) & 0xFF
	c1 := (c >> B32Shift) & 0xFF
	return c&^rbMask | c0<<B32Shift | c1<<R32Shift
}

// SwizzleRGBAToPMColor converts an RGBA-layout color to the canonical layout.
func SwizzleRGBAToPMColor(c uint32) PMColor {
	if PMColorIsBGRA {
		return PMColor(SwizzleRB(c))
	}
	return PMColor(c)
}

// SwizzleBGRAToPMColor converts a BGRA-layout color to the canonical layout.
func SwizzleBGRAToPMColor(c uint32) PMColor {
	if PMColorIsBGRA {
		return PMColor(c)
	}
	return PMColor(SwizzleRB(c))
}

// Color is an unpremultiplied 32-bit color, always 0xAARRGGBB regardless of
// the canonical PMColor layout.
type Color uint32

// ColorSetARGB packs unpremultiplied bytes into a Color.
func ColorSetARGB(a, r, g, b uint32) Color {
	assertByte(a)
	assertByte(r)
	assertByte(g)
	assertByte(b)
	return Color(a<<24 | r<<16 | g<<8 | b)
}

// ColorSetRGB returns an opaque Color.
func ColorSetRGB(r, g, b uint32) Color {
	return ColorSetARGB(0xFF, r, g, b)
}

// A returns the alpha channel.
func (c Color) A() uint32 { return uint32(c) >> 24 }

// R returns the unpremultiplied red channel.
func (c Color) R() uint32 { return (uint32(c) >> 16) & 0xFF }

// G returns the unpremultiplied green channel.
func (c Color) G() uint32 { return (uint32(c) >> 8) & 0xFF }

// B returns the unpremultiplied blue channel.
func (c Color) B() uint32 { return uint32(c) & 0xFF }

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: uint8(c.R()), G: uint8(c.G()), B: uint8(c.B()), A: uint8(c.A())}.RGBA()
}

// PremultiplyARGB multiplies r, g and b by a/255 with rounding and packs
// the result.
func PremultiplyARGB(a, r, g, b uint32) PMColor {
	assertByte(a)
	assertByte(r)
	assertByte(g)
	assertByte(b)
	if a != 255 {
		r = blend.MulDiv255Round(r, a)
		g = blend.MulDiv255Round(g, a)
		b = blend.MulDiv255Round(b, a)
	}
	return PackARGB32(a, r, g, b)
}

// PremultiplyColor converts an unpremultiplied Color to a PMColor.
func PremultiplyColor(c Color) PMColor {
	return PremultiplyARGB(c.A(), c.R(), c.G(), c.B())
}
