// Package wide provides SIMD-friendly lane types for per-pixel float math.
//
// F32x4 holds the four channels of one color as float32 lanes. It is a
// fixed-size array with element-wise methods written as simple loops, the
// shape the Go compiler can keep in registers and, on supported
// architectures (SSE, NEON), vectorize.
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Avoid unsafe and assembly - rely on compiler optimization
//   - Keep functions small and inlineable
//   - Return values, never mutate receivers
//
// # Usage Example
//
//	// Composite premultiplied src over dst
//	out := src.Add(dst.Mul(wide.SplatF32(1 - src[3])))
package wide
