package pixfmt

import (
	"math"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/pixfmt/internal/wide"
)

// PMColor4f is a premultiplied color with float32 components in [0,1].
// A is at least each of R, G and B.
type PMColor4f struct {
	R, G, B, A float32
}

// Well-known float colors.
var (
	Transparent4f = PMColor4f{}
	White4f       = PMColor4f{R: 1, G: 1, B: 1, A: 1}

	// Illegal4f marks an unset color. Every lane is -Inf, so it never
	// compares equal to a real color and stores as transparent black.
	Illegal4f = PMColor4f{
		R: float32(math.Inf(-1)),
		G: float32(math.Inf(-1)),
		B: float32(math.Inf(-1)),
		A: float32(math.Inf(-1)),
	}
)

// inv255 matches the single-precision reciprocal used when loading bytes.
const inv255 float32 = 1.0 / 255

// LoadL32 converts a packed 32-bit pixel to four float lanes in [0,1]. Lane
// i holds byte i counting from the least significant, which is memory
// order on little-endian targets.
func LoadL32(px uint32) f32.Vec4 {
	v := wide.F32x4{
		float32(px & 0xFF),
		float32((px >> 8) & 0xFF),
		float32((px >> 16) & 0xFF),
		float32(px >> 24),
	}
	return f32.Vec4(v.Mul(wide.SplatF32(inv255)))
}

// StoreL32 is the inverse of LoadL32. Lanes are clamped to [0,1] before
// scaling, since Go's float-to-integer conversion does not saturate, then
// rounded to nearest. NaN lanes store as 0.
func StoreL32(px f32.Vec4) uint32 {
	v := wide.F32x4(px).Clamp(0, 1).Mul(wide.SplatF32(255)).Round()
	return uint32(v[0]) | uint32(v[1])<<8 | uint32(v[2])<<16 | uint32(v[3])<<24
}

// SwizzleRB4 exchanges lanes 0 and 2.
func SwizzleRB4(v f32.Vec4) f32.Vec4 {
	return f32.Vec4{v[2], v[1], v[0], v[3]}
}

// SwizzleRBIfBGRA exchanges lanes 0 and 2 when the canonical layout is BGRA,
// turning loaded PMColor lanes into R,G,B,A order and back.
func SwizzleRBIfBGRA(v f32.Vec4) f32.Vec4 {
	if PMColorIsBGRA {
		return SwizzleRB4(v)
	}
	return v
}

// PMColor4fFromPMColor converts a packed premultiplied color to floats.
func PMColor4fFromPMColor(c PMColor) PMColor4f {
	return pmColor4fFromVec4(SwizzleRBIfBGRA(LoadL32(uint32(c))))
}

func pmColor4fFromVec4(v f32.Vec4) PMColor4f {
	return PMColor4f{R: v[0], G: v[1], B: v[2], A: v[3]}
}

// Vec4 returns the lanes in R,G,B,A order.
func (c PMColor4f) Vec4() f32.Vec4 {
	return f32.Vec4{c.R, c.G, c.B, c.A}
}

// ToPMColor converts to the canonical packed layout, clamping each
// component to [0,1] and rounding to nearest.
func (c PMColor4f) ToPMColor() PMColor {
	return PMColor(StoreL32(SwizzleRBIfBGRA(c.Vec4())))
}

// SrcOver composites c over dst: c + dst*(1 - c.A).
func (c PMColor4f) SrcOver(dst PMColor4f) PMColor4f {
	s := wide.F32x4(c.Vec4())
	d := wide.F32x4(dst.Vec4())
	return pmColor4fFromVec4(f32.Vec4(s.Add(d.Mul(wide.SplatF32(1 - c.A)))))
}

// Lerp interpolates from dst to c: t=0 returns dst, t=1 returns c.
func (c PMColor4f) Lerp(dst PMColor4f, t float32) PMColor4f {
	s := wide.F32x4(c.Vec4())
	d := wide.F32x4(dst.Vec4())
	return pmColor4fFromVec4(f32.Vec4(d.Lerp(s, wide.SplatF32(t))))
}

// IsOpaque reports whether alpha is exactly 1.
func (c PMColor4f) IsOpaque() bool {
	return c.A == 1
}

// FitsInBytes reports whether every component lies in [0,1], so that
// ToPMColor loses no information to clamping.
func (c PMColor4f) FitsInBytes() bool {
	return wide.F32x4(c.Vec4()).InRange(0, 1)
}
