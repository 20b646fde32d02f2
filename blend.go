package pixfmt

import (
	"math/bits"

	"github.com/gogpu/pixfmt/internal/blend"
)

// splay64 selects the single 64-bit word interpolator. It is constant per
// build target, so FastFourByteInterp256 carries no runtime branch.
const splay64 = bits.UintSize == 64

// Alpha255To256 converts a [0,255] alpha to a [0,256] scale.
func Alpha255To256(alpha uint32) uint32 {
	return alpha + 1
}

// AlphaMulInv256 calculates 256 - (value * alpha256) / 255 in [0,256],
// for [0,255] value and [0,256] alpha256.
func AlphaMulInv256(value, alpha256 uint32) uint32 {
	return blend.AlphaMulInv256(value, alpha256)
}

// AlphaBlend blends two bytes: dst + (src-dst)*scale256/256, rounding toward
// negative infinity. scale256 must be in [0,256]; 0 yields dst and 256
// yields src.
//
// It floors rather than rounds to nearest so that FastFourByteInterp256,
// which cannot add a rounding bias per lane, stays bit-identical to it.
func AlphaBlend(src, dst, scale256 int) int {
	assertMax(uint32(scale256), 256, "scale256")
	return dst + blend.AlphaMul(src-dst, scale256)
}

// FourByteInterp256 interpolates each channel of src and dst independently.
// scale is the [0,256] weight of src: 0 returns dst, 256 returns src.
//
// This is the reference for FastFourByteInterp256.
func FourByteInterp256(src, dst PMColor, scale uint32) PMColor {
	s := int(scale)
	a := AlphaBlend(int(src.A()), int(dst.A()), s)
	r := AlphaBlend(int(src.R()), int(dst.R()), s)
	g := AlphaBlend(int(src.G()), int(dst.G()), s)
	b := AlphaBlend(int(src.B()), int(dst.B()), s)
	return PackARGB32(uint32(a), uint32(r), uint32(g), uint32(b))
}

// FastFourByteInterp256 is FourByteInterp256 computed on splayed words:
// one 64-bit word on 64-bit targets, two 32-bit words otherwise. Results
// are bit-identical to FourByteInterp256.
func FastFourByteInterp256(src, dst PMColor, scale uint32) PMColor {
	assertMax(scale, 256, "scale")
	if splay64 {
		return PMColor(blend.Interp256x64(uint32(src), uint32(dst), scale))
	}
	return PMColor(blend.Interp256x32(uint32(src), uint32(dst), scale))
}

// FourByteInterp interpolates with a [0,255] source weight: 0 returns dst,
// 255 returns src.
//
// The weight is mapped to [0,256] as w + (w>>7), not w + 1. Both endpoints
// stay exact and the rounding is slightly biased above 128; golden images
// depend on this exact mapping.
func FourByteInterp(src, dst PMColor, srcWeight uint32) PMColor {
	assertMax(srcWeight, 255, "srcWeight")
	return FastFourByteInterp256(src, dst, srcWeight+(srcWeight>>7))
}

// Lerp interpolates between src and dst using a [0,256] scale.
func Lerp(src, dst PMColor, scale uint32) PMColor {
	return FastFourByteInterp256(src, dst, scale)
}

// BlendARGB32 composites src over dst with coverage aa in [0,255].
//
// The source is scaled by aa, the destination by the inverse of the scaled
// source alpha, and both are summed on splayed words.
func BlendARGB32(src, dst PMColor, aa uint32) PMColor {
	assertMax(aa, 255, "coverage")
	srcScale := Alpha255To256(aa)
	dstScale := blend.AlphaMulInv256(src.A(), srcScale)

	const mask = 0x00FF00FF
	srcRB := (uint32(src) & mask) * srcScale
	srcAG := ((uint32(src) >> 8) & mask) * srcScale
	dstRB := (uint32(dst) & mask) * dstScale
	dstAG := ((uint32(dst) >> 8) & mask) * dstScale
	return PMColor(((srcRB+dstRB)>>8)&mask | (srcAG+dstAG)&^mask)
}
