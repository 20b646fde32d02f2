package pixfmt

// Bit widths of the 32-bit channels.
const (
	A32Bits = 8
	R32Bits = 8
	G32Bits = 8
	B32Bits = 8
)

// Shifts of the 32-bit layout that is RGBA in little-endian memory
// (A,B,G,R from the most significant byte down).
const (
	RGBAR32Shift = 0
	RGBAG32Shift = 8
	RGBAB32Shift = 16
	RGBAA32Shift = 24
)

// Shifts of the 32-bit layout that is BGRA in little-endian memory
// (A,R,G,B from the most significant byte down).
const (
	BGRAB32Shift = 0
	BGRAG32Shift = 8
	BGRAR32Shift = 16
	BGRAA32Shift = 24
)

// RGB565 layout: R(5) G(6) B(5), red in the high bits, no alpha.
const (
	R16Bits = 5
	G16Bits = 6
	B16Bits = 5

	R16Shift = B16Bits + G16Bits
	G16Shift = B16Bits
	B16Shift = 0

	R16Mask = 1<<R16Bits - 1
	G16Mask = 1<<G16Bits - 1
	B16Mask = 1<<B16Bits - 1

	R16MaskInPlace = R16Mask << R16Shift
	G16MaskInPlace = G16Mask << G16Shift
	B16MaskInPlace = B16Mask << B16Shift
)

// ARGB4444 layout. Despite the name, red is in the high nibble and alpha in
// the low one: R(4) G(4) B(4) A(4).
const (
	A4444Shift = 0
	R4444Shift = 12
	G4444Shift = 8
	B4444Shift = 4

	Mask4444 = 0xF
)
