// Package blend provides the scalar arithmetic kernels behind pixfmt's
// blending and compositing functions.
//
// Divisions by 255 and 256 are replaced by multiplies, shifts and adds.
// Every kernel is a pure function of its arguments and small enough for the
// compiler to inline. Preconditions are the caller's responsibility; nothing
// here validates input.
//
// References:
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// AlphaMul scales value by alpha256/256, rounding toward negative infinity.
//
// value may be negative (a channel difference); the shift is arithmetic, so
// the result floors rather than truncating toward zero. This is what makes
// AlphaMul agree bit for bit with the splayed word interpolators.
func AlphaMul(value, alpha256 int) int {
	return (value * alpha256) >> 8
}

// AlphaMulInv256 computes 256 - (value * alpha256) / 255 in [0,256],
// for value in [0,255] and alpha256 in [0,256].
//
// Formula: prod = 0xFFFF - value*alpha256; (prod + (prod >> 8)) >> 8
func AlphaMulInv256(value, alpha256 uint32) uint32 {
	prod := 0xFFFF - value*alpha256
	return (prod + (prod >> 8)) >> 8
}

// MulDiv255Round multiplies two bytes and divides by 255, rounding to
// nearest. The result is exact for all a, b in [0,255].
//
// Formula: prod = a*b + 128; (prod + (prod >> 8)) >> 8
func MulDiv255Round(a, b uint32) uint32 {
	prod := a*b + 128
	return (prod + (prod >> 8)) >> 8
}

// Mul16ShiftRound multiplies a shift-bit channel value by a byte and divides
// by (1<<shift)-1, rounding to nearest. The result is an 8-bit quantity.
//
// The result is within 1 of the exact rounded quotient for every
// a in [0, (1<<shift)-1] and b in [0,255].
func Mul16ShiftRound(a, b uint32, shift uint) uint32 {
	prod := a*b + (1 << (shift - 1))
	return (prod + (prod >> shift)) >> shift
}
