package pixfmt

// Widening replicates a channel's high bits into the low bits it gains, so
// all-ones widens to exactly 255 and zero to exactly 0. Narrowing
// truncates. Narrowing a widened value is exact; arithmetic done in 8-bit
// space and then narrowed is the compositing path's business, not this
// file's.

// R16ToR32 widens a 5-bit red channel to 8 bits.
func R16ToR32(r uint32) uint32 {
	return r<<(8-R16Bits) | r>>(2*R16Bits-8)
}

// G16ToG32 widens a 6-bit green channel to 8 bits.
func G16ToG32(g uint32) uint32 {
	return g<<(8-G16Bits) | g>>(2*G16Bits-8)
}

// B16ToB32 widens a 5-bit blue channel to 8 bits.
func B16ToB32(b uint32) uint32 {
	return b<<(8-B16Bits) | b>>(2*B16Bits-8)
}

// Packed16ToR32 extracts and widens the red channel of c.
func Packed16ToR32(c RGB565) uint32 { return R16ToR32(c.R()) }

// Packed16ToG32 extracts and widens the green channel of c.
func Packed16ToG32(c RGB565) uint32 { return G16ToG32(c.G()) }

// Packed16ToB32 extracts and widens the blue channel of c.
func Packed16ToB32(c RGB565) uint32 { return B16ToB32(c.B()) }

// R32ToR16 narrows a red byte to 5 bits by truncation.
func R32ToR16(r uint32) uint32 {
	assertByte(r)
	return r >> (R32Bits - R16Bits)
}

// G32ToG16 narrows a green byte to 6 bits by truncation.
func G32ToG16(g uint32) uint32 {
	assertByte(g)
	return g >> (G32Bits - G16Bits)
}

// B32ToB16 narrows a blue byte to 5 bits by truncation.
func B32ToB16(b uint32) uint32 {
	assertByte(b)
	return b >> (B32Bits - B16Bits)
}

// ReplicateNibble widens a 4-bit value to 8 bits: 0xF becomes 0xFF.
func ReplicateNibble(nib uint32) uint32 {
	assertMax(nib, 0xF, "nibble")
	return nib<<4 | nib
}

// Widen expands a bits-wide channel value to 8 bits by bit replication.
// bits must be in [4,8] and v must fit in bits; debug builds assert both.
func Widen(v uint32, bits uint) uint32 {
	assertWidth(bits)
	assertMax(v, 1<<bits-1, "narrow channel")
	return v<<(8-bits) | v>>(2*bits-8)
}

// Narrow truncates a byte to its top bits bits. bits must be in [4,8].
func Narrow(v uint32, bits uint) uint32 {
	assertWidth(bits)
	assertByte(v)
	return v >> (8 - bits)
}
