// Package pixfmt packs, unpacks and blends individual pixel colors.
//
// # Overview
//
// pixfmt is the per-pixel numeric layer under a rasterizer or compositor.
// It converts between packed color formats and combines two colors under an
// integer weight. Every function is a pure function of its arguments: no
// allocation, no I/O, no shared state. Callers loop over pixel buffers.
//
// # Formats
//
//	Format          Bits  Layout (MSB to LSB)
//	FormatBGRA32    32    A R G B
//	FormatRGBA32    32    A B G R
//	FormatRGB565    16    R(5) G(6) B(5)
//	FormatARGB4444  16    R(4) G(4) B(4) A(4)
//	FormatRGBAF32   4x32  float lanes R G B A
//
// PMColor is a premultiplied 32-bit color in the canonical layout, which is
// fixed at build time: BGRA by default, RGBA with the pixfmt_rgba build tag.
// SwizzleRB converts between the two 32-bit layouts.
//
// # Precision
//
// Narrow channels (4, 5 and 6 bits) widen to bytes by bit replication, so
// the maximum narrow value widens to exactly 255. Bytes narrow by
// truncation. Widen then Narrow is the identity.
//
// # Blending
//
// Interpolation weights come in two domains:
//   - 256-scale, [0,256]: FourByteInterp256, FastFourByteInterp256, Lerp
//   - 255-scale, [0,255]: FourByteInterp, BlendARGB32
//
// The fast interpolator splays channel pairs into wide words and is
// bit-identical to the per-channel reference. The word width follows the
// target's native word size.
//
// # Preconditions
//
// Channel values outside their bit width and weights outside their domain
// are caller bugs. Build with the pixfmt_debug tag to turn every
// precondition into a panic wrapping ErrPrecondition; release builds do not
// check and return unspecified (memory-safe) results.
//
// # Example
//
//	src := pixfmt.PackARGB32(255, 255, 0, 0)
//	dst := pixfmt.PackARGB32(255, 0, 0, 255)
//	mid := pixfmt.FourByteInterp(src, dst, 128)
//	px := pixfmt.SrcOver32To16(mid, pixfmt.PackRGB16(0, 63, 0))
package pixfmt
