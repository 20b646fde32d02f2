package pixfmt

import "github.com/gogpu/pixfmt/internal/blend"

// RGB565 is an opaque 16-bit color: 5 bits red, 6 bits green, 5 bits blue.
type RGB565 uint16

// PackRGB16 packs narrow channels. Debug builds assert each fits its width.
func PackRGB16(r, g, b uint32) RGB565 {
	assertMax(r, R16Mask, "red16")
	assertMax(g, G16Mask, "green16")
	assertMax(b, B16Mask, "blue16")
	return RGB565(r<<R16Shift | g<<G16Shift | b<<B16Shift)
}

// R returns the 5-bit red channel.
func (c RGB565) R() uint32 { return (uint32(c) >> R16Shift) & R16Mask }

// G returns the 6-bit green channel.
func (c RGB565) G() uint32 { return (uint32(c) >> G16Shift) & G16Mask }

// B returns the 5-bit blue channel.
func (c RGB565) B() uint32 { return (uint32(c) >> B16Shift) & B16Mask }

// RGBA implements color.Color.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	return Packed16ToR32(c) * 0x101, Packed16ToG32(c) * 0x101, Packed16ToB32(c) * 0x101, 0xFFFF
}

// Pixel32ToPixel16 truncates a PMColor to RGB565, dropping alpha.
func Pixel32ToPixel16(c PMColor) RGB565 {
	r := ((uint32(c) >> (R32Shift + 8 - R16Bits)) & R16Mask) << R16Shift
	g := ((uint32(c) >> (G32Shift + 8 - G16Bits)) & G16Mask) << G16Shift
	b := ((uint32(c) >> (B32Shift + 8 - B16Bits)) & B16Mask) << B16Shift
	return RGB565(r | g | b)
}

// Pack888ToRGB16 narrows three bytes and packs them.
func Pack888ToRGB16(r, g, b uint32) RGB565 {
	return RGB565(R32ToR16(r)<<R16Shift | G32ToG16(g)<<G16Shift | B32ToB16(b)<<B16Shift)
}

// Pixel16ToColor widens an RGB565 pixel to an opaque Color.
func Pixel16ToColor(c RGB565) Color {
	r := Packed16ToR32(c)
	g := Packed16ToG32(c)
	b := Packed16ToB32(c)
	check(R32ToR16(r) == c.R(), "red16 does not survive widening")
	check(G32ToG16(g) == c.G(), "green16 does not survive widening")
	check(B32ToB16(b) == c.B(), "blue16 does not survive widening")
	return ColorSetRGB(r, g, b)
}

// SrcOver32To16 composites a premultiplied 32-bit source over an RGB565
// destination.
//
// Each destination channel stays at its native width, is scaled by
// 255-srcAlpha into 8-bit space with rounding, has the source channel added,
// and is shifted back down.
func SrcOver32To16(src PMColor, dst RGB565) RGB565 {
	isa := 255 - src.A()
	dr := (src.R() + blend.Mul16ShiftRound(dst.R(), isa, R16Bits)) >> (8 - R16Bits)
	dg := (src.G() + blend.Mul16ShiftRound(dst.G(), isa, G16Bits)) >> (8 - G16Bits)
	db := (src.B() + blend.Mul16ShiftRound(dst.B(), isa, B16Bits)) >> (8 - B16Bits)
	return PackRGB16(dr, dg, db)
}
